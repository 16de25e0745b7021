// Package sequence pairs slice elements with their index and renders the
// pairs as "value_index" labels.
package sequence

import (
	"strconv"

	"github.com/unclebandit/formatkit/internal/format"
)

// Numbered is a value together with its zero-based position in the source.
type Numbered[T any] struct {
	Value  T   `json:"value"`
	Number int `json:"number"`
}

// NumberedSlice returns a new slice pairing every element of s with its index.
func NumberedSlice[T any](s []T) []Numbered[T] {
	out := make([]Numbered[T], len(s))
	for i, v := range s {
		out[i] = Numbered[T]{Value: v, Number: i}
	}
	return out
}

// ToStringSlice renders each pair as "<value>_<number>", keeping order.
func ToStringSlice[T any](s []Numbered[T]) []string {
	out := make([]string, len(s))
	for i, n := range s {
		out[i] = format.ToString(n.Value) + "_" + strconv.Itoa(n.Number)
	}
	return out
}

// Labels is ToStringSlice(NumberedSlice(s)).
func Labels[T any](s []T) []string {
	return ToStringSlice(NumberedSlice(s))
}
