package senses

import "strings"

// KeyPrefix tags a sense key in the query syntax.
const KeyPrefix = "wn::"

// keyFields is the number of colon-separated fields of a complete sense key
// ("cat%1:05:00::").
const keyFields = 5

// NormalizeKey strips the query prefix, lowercases the key and pads it to a
// complete sense key.
func NormalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.TrimPrefix(key, KeyPrefix)
	if key == "" {
		return ""
	}
	if n := strings.Count(key, ":") + 1; n < keyFields {
		key += strings.Repeat(":", keyFields-n)
	}
	return key
}

// Stoplist excludes sense keys from indexing unless they are force-included.
// A nil *Stoplist blocks nothing.
type Stoplist struct {
	exclude map[string]struct{}
	include map[string]struct{}
}

// NewStoplist builds a stoplist from raw keys; both lists are normalized.
func NewStoplist(exclude, include []string) *Stoplist {
	s := &Stoplist{
		exclude: make(map[string]struct{}, len(exclude)),
		include: make(map[string]struct{}, len(include)),
	}
	for _, k := range exclude {
		if k = NormalizeKey(k); k != "" {
			s.exclude[k] = struct{}{}
		}
	}
	for _, k := range include {
		if k = NormalizeKey(k); k != "" {
			s.include[k] = struct{}{}
		}
	}
	return s
}

// Blocks reports whether key is stoplisted and not allow-listed.
func (s *Stoplist) Blocks(key string) bool {
	if s == nil || key == "" {
		return false
	}
	key = NormalizeKey(key)
	if _, ok := s.include[key]; ok {
		return false
	}
	_, ok := s.exclude[key]
	return ok
}

// Len returns the number of excluded keys.
func (s *Stoplist) Len() int {
	if s == nil {
		return 0
	}
	return len(s.exclude)
}
