// Package queryparse parses URL-style query strings into an ordered
// multi-value mapping. It exists instead of net/url.ParseQuery because
// the configuration grammar needs ordered accumulation of repeated
// keys and must keep undecodable tokens as raw text instead of
// dropping them.
package queryparse

import (
	"net/url"
	"strings"
)

// Values holds decoded query parameters. The first occurrence of a
// key fixes its position; later occurrences append to that key's
// value list in order.
type Values struct {
	m    map[string][]string
	keys []string
}

// Parse splits raw on "&" and each token on the first "=". A token
// without "=" maps to the empty string. "+" decodes to a space before
// percent-decoding. Empty input yields an empty Values. Parse never
// fails: tokens that do not percent-decode keep their raw text.
func Parse(raw string) Values {
	v := Values{m: make(map[string][]string)}
	if raw == "" {
		return v
	}
	for _, tok := range strings.Split(raw, "&") {
		if tok == "" {
			continue
		}
		key, val, _ := strings.Cut(tok, "=")
		key = decode(key)
		val = decode(val)
		if _, seen := v.m[key]; !seen {
			v.keys = append(v.keys, key)
		}
		v.m[key] = append(v.m[key], val)
	}
	return v
}

// decode applies x-www-form-urlencoded decoding, keeping the input
// as-is when it is malformed.
func decode(s string) string {
	d, err := url.QueryUnescape(s)
	if err != nil {
		return strings.ReplaceAll(s, "+", " ")
	}
	return d
}

// Get returns the first value for key, or "" if absent.
func (v Values) Get(key string) string {
	if vs := v.m[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// All returns every value for key in order of appearance. The
// returned slice is a copy.
func (v Values) All(key string) []string {
	vs := v.m[key]
	if vs == nil {
		return nil
	}
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}

// Has reports whether key appeared at least once.
func (v Values) Has(key string) bool {
	_, ok := v.m[key]
	return ok
}

// Keys returns the keys in order of first appearance.
func (v Values) Keys() []string {
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Len returns the number of distinct keys.
func (v Values) Len() int { return len(v.keys) }
