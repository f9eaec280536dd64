package wvlegis

import (
	"net/url"
	"sort"
	"strings"
)

// URLKey is a normalized representation of a URL that can be compared
// with other keys without regard to the vagaries of casing, encoding,
// escaping, and ordering of parameters in query strings. It is a plain
// comparable struct, usable directly as a map key.
type URLKey struct {
	scheme string
	host   string
	path   string
	query  string
}

// CanonicalKey derives the URLKey of a raw URL. The entire URL is
// lowercased before parsing; this conflates paths that differ only by
// case, which matters on some servers, but the legislature's site is
// case-insensitive throughout. Malformed URLs are kept as an opaque
// path so they still compare structurally.
func CanonicalKey(raw string) URLKey {
	parts, err := url.Parse(strings.ToLower(raw))
	if err != nil {
		return URLKey{path: strings.ToLower(raw)}
	}

	path := strings.ReplaceAll(parts.EscapedPath(), "+", " ")
	if decoded, err := url.PathUnescape(path); err == nil {
		path = decoded
	}

	return URLKey{
		scheme: parts.Scheme,
		host:   parts.Host,
		path:   path,
		query:  canonicalQuery(parts.RawQuery),
	}
}

// canonicalQuery reduces a query string to a sorted, deduplicated
// key=value list so that parameter order and repeats don't affect
// equality.
func canonicalQuery(rawQuery string) string {
	pairs := map[string]struct{}{}
	for _, kv := range strings.Split(rawQuery, "&") {
		if kv == "" {
			continue
		}
		k, v, _ := strings.Cut(kv, "=")
		if decoded, err := url.QueryUnescape(k); err == nil {
			k = decoded
		}
		if decoded, err := url.QueryUnescape(v); err == nil {
			v = decoded
		}
		pairs[k+"="+v] = struct{}{}
	}

	list := make([]string, 0, len(pairs))
	for p := range pairs {
		list = append(list, p)
	}
	sort.Strings(list)
	return strings.Join(list, "&")
}
