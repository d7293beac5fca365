// Package model contains domain models passed between layers.
package model

// Record is a company's name plus its per-criterion raw values.
// The name is the unique key (case-insensitive, trimmed); values hold an
// integer per criterion key: a 1-5 rating for the weighted shape, or 1/0
// for yes/no on the boolean shape.
type Record struct {
	Name   string
	Values map[string]int
}

// Clone returns a deep copy so callers cannot mutate store-owned state.
func (r Record) Clone() Record {
	values := make(map[string]int, len(r.Values))
	for k, v := range r.Values {
		values[k] = v
	}
	return Record{Name: r.Name, Values: values}
}
