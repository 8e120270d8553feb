// Package filter composes record predicates from a free-text search, named
// select filters and boolean flags. One Spec describes how a record type is
// searched; every catalog reuses the same evaluation.
package filter

import "strings"

// Query is the user's current search state. The zero Query matches every
// record.
type Query struct {
	Text   string            `json:"q,omitempty"`
	Fields map[string]string `json:"filters,omitempty"`
	Flags  map[string]bool   `json:"flags,omitempty"`
}

// Predicate reports whether a record is kept.
type Predicate[T any] func(T) bool

// Field is a select-style filter over one string attribute.
type Field[T any] struct {
	Get func(T) string
	// Any is the selection that disables the filter ("All", "All States").
	// The empty selection always disables it too.
	Any string
	// Universal is a record value that satisfies every selection, e.g. a
	// record scoped to "All States". Empty means none.
	Universal string
}

// Spec describes how records of type T are searched.
type Spec[T any] struct {
	// Text returns the strings searched by Query.Text.
	Text   []func(T) []string
	Fields map[string]Field[T]
	Flags  map[string]Predicate[T]
}

// Apply returns the records accepted by q in their original order. The input
// slice is never modified and the result never aliases it.
func (s Spec[T]) Apply(records []T, q Query) []T {
	keep := s.Compile(q)
	out := make([]T, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Compile turns q into one predicate that ANDs every active criterion.
// Unknown field or flag names are ignored.
func (s Spec[T]) Compile(q Query) Predicate[T] {
	var preds []Predicate[T]

	if q.Text != "" && len(s.Text) > 0 {
		preds = append(preds, s.textPredicate(strings.ToLower(q.Text)))
	}

	for name, selected := range q.Fields {
		field, ok := s.Fields[name]
		if !ok || selected == "" || selected == field.Any {
			continue
		}
		preds = append(preds, field.predicate(selected))
	}

	for name, enabled := range q.Flags {
		flag, ok := s.Flags[name]
		if !ok || !enabled {
			continue
		}
		preds = append(preds, flag)
	}

	return And(preds...)
}

// Active reports whether q would exclude anything under s.
func (s Spec[T]) Active(q Query) bool {
	if q.Text != "" && len(s.Text) > 0 {
		return true
	}
	for name, selected := range q.Fields {
		if field, ok := s.Fields[name]; ok && selected != "" && selected != field.Any {
			return true
		}
	}
	for name, enabled := range q.Flags {
		if _, ok := s.Flags[name]; ok && enabled {
			return true
		}
	}
	return false
}

func (s Spec[T]) textPredicate(needle string) Predicate[T] {
	return func(r T) bool {
		for _, get := range s.Text {
			for _, v := range get(r) {
				if strings.Contains(strings.ToLower(v), needle) {
					return true
				}
			}
		}
		return false
	}
}

func (f Field[T]) predicate(selected string) Predicate[T] {
	return func(r T) bool {
		v := f.Get(r)
		if v == selected {
			return true
		}
		return f.Universal != "" && v == f.Universal
	}
}

// And is true when every p is true. And() accepts everything.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(r T) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// One adapts a single-string accessor for Spec.Text.
func One[T any](get func(T) string) func(T) []string {
	return func(r T) []string { return []string{get(r)} }
}

// HasAnyTag keeps records whose tags contain at least one of required.
func HasAnyTag[T any](tags func(T) []string, required ...string) Predicate[T] {
	return func(r T) bool {
		for _, tag := range tags(r) {
			for _, want := range required {
				if tag == want {
					return true
				}
			}
		}
		return false
	}
}

// Equals keeps records whose attribute is exactly want.
func Equals[T any](get func(T) string, want string) Predicate[T] {
	return func(r T) bool { return get(r) == want }
}
