package pure

import (
	"net/url"
	"strings"
)

// ParseQuery parses a URL query string into a map of decoded keys to decoded
// values. One leading '?' is stripped if present. Pairs are split on '&',
// each pair on its first '='; a pair without '=' yields an empty value, and
// a pair with an empty key is skipped. Later duplicate keys overwrite
// earlier ones. Parsing is best-effort and never fails: a component whose
// percent-encoding is malformed is kept verbatim.
//
// This is deliberately not url.ParseQuery, which keeps multiple values per
// key, rejects malformed escapes, and admits empty keys.
func ParseQuery(s string) map[string]string {
	s = strings.TrimPrefix(s, "?")

	params := make(map[string]string)
	for _, pair := range strings.Split(s, "&") {
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			continue
		}
		params[decodeComponent(key)] = decodeComponent(value)
	}
	return params
}

// decodeComponent percent-decodes s. Unlike query unescaping, '+' is not a
// space here; the wire format encodes spaces as %20.
func decodeComponent(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
