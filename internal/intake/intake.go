// Package intake defines the form-kind catalog for case collection: the
// intake variants navigators can complete, their fixed narrative question
// sets, and the section structure of generated follow-up questions.
package intake

import (
	"encoding/json"
	"slices"
	"strings"
)

// FormKind identifies an intake form variant. Follow-on kinds are synthetic
// draft partitions for the answering flow, derived from a base kind.
type FormKind string

// Base intake variants.
const (
	KindAbbreviated        FormKind = "abbrev"
	KindAbbreviatedGeneral FormKind = "abbrev_gen"
	KindFull               FormKind = "full"
)

const followOnPrefix = "follow_on_"

var baseKinds = []FormKind{
	KindAbbreviated,
	KindAbbreviatedGeneral,
	KindFull,
}

// Kinds returns the base intake variants.
func Kinds() []FormKind {
	return baseKinds
}

// ParseKind validates a string as a known form kind, base or follow-on.
// Returns ErrInvalidKind if the value is not recognized.
func ParseKind(s string) (FormKind, error) {
	v := FormKind(s)
	if slices.Contains(baseKinds, v) {
		return v, nil
	}
	if base, ok := strings.CutPrefix(s, followOnPrefix); ok {
		if slices.Contains(baseKinds, FormKind(base)) {
			return v, nil
		}
	}
	return "", ErrInvalidKind
}

// UnmarshalJSON validates that the decoded string is a known form kind.
func (k *FormKind) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseKind(raw)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// FollowOn returns the synthetic draft kind for answering a case of this kind.
func (k FormKind) FollowOn() FormKind {
	if k.IsFollowOn() {
		return k
	}
	return FormKind(followOnPrefix + string(k))
}

// IsFollowOn reports whether the kind is a follow-on draft partition.
func (k FormKind) IsFollowOn() bool {
	return strings.HasPrefix(string(k), followOnPrefix)
}

// Base returns the underlying intake variant for follow-on kinds, and the
// kind itself otherwise.
func (k FormKind) Base() FormKind {
	return FormKind(strings.TrimPrefix(string(k), followOnPrefix))
}
