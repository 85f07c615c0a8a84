// Package stat defines the year-grouped collection of name records that
// the table parser produces and the stats engine reads.
package stat

import (
	"slices"
)

// NameRecord is one person from the source table.
type NameRecord struct {
	// Surname is the first token of a name row.
	Surname string `json:"surname"`

	// GivenName is the second token of a name row.
	GivenName string `json:"givenName"`
}

// Stat maps a 4-character year to name records found under that year
// heading. Records keep document order, years keep the order of their
// first heading. Stat is read-only after Builder.Stat returns it.
type Stat struct {
	years   []string
	records map[string][]NameRecord
}

// Years returns all years sorted in ascending order. Years are fixed-width
// strings, so lexicographic order is numeric order.
func (s *Stat) Years() []string {
	res := slices.Clone(s.years)
	slices.Sort(res)
	return res
}

// DocumentYears returns years in the order they appear in the document.
func (s *Stat) DocumentYears() []string {
	return slices.Clone(s.years)
}

// Records returns name records of a year and true, or nil and false if
// the year is absent.
func (s *Stat) Records(year string) ([]NameRecord, bool) {
	recs, ok := s.records[year]
	if !ok {
		return nil, false
	}
	return slices.Clone(recs), true
}

// HasYear is true if the year heading was present in the document.
func (s *Stat) HasYear(year string) bool {
	_, ok := s.records[year]
	return ok
}

// Len returns the total number of name records.
func (s *Stat) Len() int {
	var res int
	for _, v := range s.records {
		res += len(v)
	}
	return res
}

// Each calls fn for every record, years in document order.
func (s *Stat) Each(fn func(year string, rec NameRecord)) {
	for _, y := range s.years {
		for _, r := range s.records[y] {
			fn(y, r)
		}
	}
}
