package oauth

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// percentEncode escapes everything except the RFC 5849 unreserved set
// (A-Za-z0-9-._~).
func percentEncode(s string) string {
	var b strings.Builder
	for _, c := range []byte(s) {
		if isUnreserved(c) {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

// percentDecode reverses percentEncode. A literal '+' stays a '+';
// the service does not use form encoding.
func percentDecode(s string) (string, error) {
	return url.PathUnescape(s)
}

// sortedQuery serializes params as key=value pairs with percent-encoded
// values, keys ordered case-insensitive ascending regardless of
// insertion order.
func sortedQuery(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := strings.ToLower(keys[i]), strings.ToLower(keys[j])
		if li == lj {
			return keys[i] < keys[j]
		}
		return li < lj
	})

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + percentEncode(params[k])
	}
	return strings.Join(pairs, "&")
}

// signature computes the base64 HMAC-SHA1 OAuth signature. The base URL
// and the already-encoded parameter block are each percent-encoded once
// more inside the base string; the target service expects exactly this
// double pass, so it must not be "fixed".
func signature(method, baseURL, paramQuery, consumerSecret, tokenSecret string) string {
	base := strings.ToUpper(method) + "&" + percentEncode(baseURL) + "&" + percentEncode(paramQuery)
	key := percentEncode(consumerSecret) + "&" + percentEncode(tokenSecret)

	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// signedURL runs the two-pass construction: first sign the sorted
// parameter set, then re-serialize it with oauth_signature appended.
func signedURL(method, baseURL string, params map[string]string, consumerSecret, tokenSecret string) string {
	query := sortedQuery(params)
	sig := signature(method, baseURL, query, consumerSecret, tokenSecret)
	return baseURL + "?" + query + "&oauth_signature=" + percentEncode(sig)
}
