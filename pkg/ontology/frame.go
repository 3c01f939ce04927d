package ontology

import (
	"reflect"
	"sort"
	"strings"
)

// DefaultFrameType is the type tag of a concept without semantic features.
const DefaultFrameType = "nil"

// typeFeature is ignored when comparing frames.
const typeFeature = "type"

// Frame is the semantic feature bag of a concept.
type Frame struct {
	typeTag  string
	features map[string]any
	defaults map[string]any
}

// NewFrame creates a frame, lowercasing feature keys.
func NewFrame(typeTag string, features, defaults map[string]any) Frame {
	if typeTag == "" {
		typeTag = DefaultFrameType
	}
	return Frame{
		typeTag:  strings.ToLower(typeTag),
		features: lowerKeys(features),
		defaults: lowerKeys(defaults),
	}
}

func lowerKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}

func (f Frame) Type() string {
	if f.typeTag == "" {
		return DefaultFrameType
	}
	return f.typeTag
}

// Features returns a copy of the explicit features.
func (f Frame) Features() map[string]any { return copyMap(f.features) }

// Defaults returns a copy of the default features.
func (f Frame) Defaults() map[string]any { return copyMap(f.defaults) }

// Effective returns features overlaid with defaults. Defaults take
// precedence on key collision.
func (f Frame) Effective() map[string]any {
	out := copyMap(f.features)
	for k, v := range f.defaults {
		out[k] = v
	}
	return out
}

// FeatureNames returns the effective feature keys in sorted order.
func (f Frame) FeatureNames() []string {
	eff := f.Effective()
	names := make([]string, 0, len(eff))
	for k := range eff {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// SubsumedBy reports whether every effective feature of f is present in
// other with the same value. The "type" feature only needs to be present.
func (f Frame) SubsumedBy(other Frame) bool {
	mine, theirs := f.Effective(), other.Effective()
	for k, v := range mine {
		ov, ok := theirs[k]
		if !ok {
			return false
		}
		if k != typeFeature && !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

// Differs reports whether the frames are distinguishable, i.e. not
// subsumed both ways.
func (f Frame) Differs(other Frame) bool {
	return !(f.SubsumedBy(other) && other.SubsumedBy(f))
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
