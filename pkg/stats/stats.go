// Package stats answers frequency queries about given names over a
// parsed stat.Stat. Queries are read-only and build a fresh result on
// every call.
package stats

import (
	"context"
	"errors"

	"github.com/gnames/namestat/pkg/gender"
	"github.com/gnames/namestat/pkg/stat"
)

// ErrYearNotFound is wrapped by KeyNotFoundError.
var ErrYearNotFound = errors.New("year not found")

// Frequency is a number of occurrences of a given name.
type Frequency struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Engine computes frequency lists. Lists are sorted by count in
// descending order, names with equal counts keep the order of their first
// occurrence in the document.
type Engine struct {
	st  *stat.Stat
	cls gender.Classifier
}

// New creates an Engine. The classifier is used only by gender queries.
func New(st *stat.Stat, cls gender.Classifier) *Engine {
	return &Engine{st: st, cls: cls}
}

// Years returns all years in ascending order.
func (e *Engine) Years() []string {
	return e.st.Years()
}

// General counts given names across all years.
func (e *Engine) General() []Frequency {
	c := newCounter()
	e.st.Each(func(_ string, rec stat.NameRecord) {
		c.add(rec.GivenName)
	})
	return c.list()
}

// GeneralPerYear counts given names of every year independently.
func (e *Engine) GeneralPerYear() map[string][]Frequency {
	res := make(map[string][]Frequency)
	for _, y := range e.st.DocumentYears() {
		res[y] = e.countYear(y)
	}
	return res
}

// Year counts given names of one year. It returns KeyNotFoundError if the
// year is absent.
func (e *Engine) Year(year string) ([]Frequency, error) {
	if !e.st.HasYear(year) {
		return nil, KeyNotFoundError(year)
	}
	return e.countYear(year), nil
}

// ByGender keeps entries of General (if year is empty) or of Year whose
// names are classified as g. The order of entries is preserved. The first
// classification error aborts the query.
func (e *Engine) ByGender(
	ctx context.Context,
	g gender.Gender,
	year string,
) ([]Frequency, error) {
	var list []Frequency
	if year == "" {
		list = e.General()
	} else {
		var err error
		if list, err = e.Year(year); err != nil {
			return nil, err
		}
	}

	res := make([]Frequency, 0, len(list))
	for _, v := range list {
		cg, err := e.cls.Classify(ctx, v.Name)
		if err != nil {
			return nil, err
		}
		if cg == g {
			res = append(res, v)
		}
	}
	return res, nil
}

// Male is ByGender for gender.Male.
func (e *Engine) Male(ctx context.Context, year string) ([]Frequency, error) {
	return e.ByGender(ctx, gender.Male, year)
}

// Female is ByGender for gender.Female.
func (e *Engine) Female(ctx context.Context, year string) ([]Frequency, error) {
	return e.ByGender(ctx, gender.Female, year)
}

// Total sums counts of a frequency list.
func Total(list []Frequency) int {
	var res int
	for _, v := range list {
		res += v.Count
	}
	return res
}

func (e *Engine) countYear(year string) []Frequency {
	recs, _ := e.st.Records(year)
	c := newCounter()
	for _, r := range recs {
		c.add(r.GivenName)
	}
	return c.list()
}
