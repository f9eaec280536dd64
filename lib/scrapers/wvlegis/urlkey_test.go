package wvlegis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalKeyEquality(t *testing.T) {
	testCases := []struct {
		name  string
		left  string
		right string
		equal bool
	}{
		{
			name:  "query parameter order",
			left:  "http://www.legis.state.wv.us/Bill_Status/bills_text.cfm?billdoc=sb1.htm&yr=2012&i=1",
			right: "http://www.legis.state.wv.us/Bill_Status/bills_text.cfm?i=1&yr=2012&billdoc=sb1.htm",
			equal: true,
		},
		{
			name:  "casing",
			left:  "HTTP://WWW.LEGIS.STATE.WV.US/Bill_Status/Bills_Text.cfm?BillDoc=SB1.htm",
			right: "http://www.legis.state.wv.us/bill_status/bills_text.cfm?billdoc=sb1.htm",
			equal: true,
		},
		{
			name:  "percent-encoding case in path",
			left:  "http://example.com/a%2Fb",
			right: "http://example.com/a%2fb",
			equal: true,
		},
		{
			name:  "encoded space vs plus in path",
			left:  "http://example.com/sb1%20intr.htm",
			right: "http://example.com/sb1+intr.htm",
			equal: true,
		},
		{
			name:  "duplicate query pairs collapse",
			left:  "http://example.com/doc?a=1&a=1&b=2",
			right: "http://example.com/doc?b=2&a=1",
			equal: true,
		},
		{
			name:  "different hosts",
			left:  "http://www.legis.state.wv.us/doc",
			right: "ftp://www.legis.state.wv.us/doc",
			equal: false,
		},
		{
			name:  "different query values",
			left:  "http://example.com/doc?a=1",
			right: "http://example.com/doc?a=2",
			equal: false,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			left := CanonicalKey(test.left)
			right := CanonicalKey(test.right)
			if test.equal {
				require.Equal(t, left, right)
			} else {
				require.NotEqual(t, left, right)
			}
		})
	}
}

func TestCanonicalKeyAsMapKey(t *testing.T) {
	seen := map[URLKey]struct{}{}
	seen[CanonicalKey("http://example.com/doc?a=1&b=2")] = struct{}{}

	_, hit := seen[CanonicalKey("http://EXAMPLE.com/doc?b=2&a=1")]
	require.True(t, hit)

	_, hit = seen[CanonicalKey("http://example.com/doc?a=1")]
	require.False(t, hit)
}
