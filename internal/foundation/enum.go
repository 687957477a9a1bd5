// Package foundation holds small generic helpers shared by the domain packages.
package foundation

import (
	"sort"
	"strings"

	"git.home.luguber.info/inful/housebuilder/internal/foundation/errors"
)

// defaultNormalizer provides standard string normalization.
func defaultNormalizer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Normalizer maps loosely formatted user input onto a closed set of enum values.
type Normalizer[T comparable] struct {
	kind         string
	validValues  map[string]T
	defaultValue T
}

// NewNormalizer creates a normalizer with a map of valid string->value pairs.
// kind names the enum in error messages ("step", "format", ...).
func NewNormalizer[T comparable](kind string, values map[string]T, defaultValue T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	for k, v := range values {
		normalized[defaultNormalizer(k)] = v
	}

	return &Normalizer[T]{
		kind:         kind,
		validValues:  normalized,
		defaultValue: defaultValue,
	}
}

// Normalize converts a string to the enum type, falling back to the default value.
func (n *Normalizer[T]) Normalize(raw string) T {
	if value, exists := n.validValues[defaultNormalizer(raw)]; exists {
		return value
	}
	return n.defaultValue
}

// NormalizeWithError converts a string to the enum type or returns a validation error
// listing the accepted values.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	if value, exists := n.validValues[defaultNormalizer(raw)]; exists {
		return value, nil
	}

	var zero T
	return zero, errors.ValidationError("invalid "+n.kind+": "+raw).
		WithContext("accepted", strings.Join(n.Keys(), ",")).
		Build()
}

// Keys returns the accepted (normalized) spellings in sorted order.
func (n *Normalizer[T]) Keys() []string {
	keys := make([]string, 0, len(n.validValues))
	for k := range n.validValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
