package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeBillID(t *testing.T) {
	require.Equal(t, "sb1", NormalizeBillID("SB 1"))
	require.Equal(t, "hcr12", NormalizeBillID("  HCR  12 "))
	require.Equal(t, "hb4001", NormalizeBillID("hb4001"))
}

func TestSplitFieldsN(t *testing.T) {
	testCases := []struct {
		input    string
		n        int
		expected []string
	}{
		{
			input:    "01-11-12  04:31PM               84511 SB1 INTR.wpd",
			n:        4,
			expected: []string{"01-11-12", "04:31PM", "84511", "SB1 INTR.wpd"},
		},
		{
			input:    "a b",
			n:        4,
			expected: []string{"a", "b"},
		},
		{
			input:    "",
			n:        4,
			expected: nil,
		},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, SplitFieldsN(test.input, test.n), "input: %q", test.input)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	require.Equal(t, "Passed House (Roll No. 12)", CollapseWhitespace("  Passed House\n\t (Roll  No. 12) "))
}
