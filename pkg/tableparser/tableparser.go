// Package tableparser converts a decoded HTML document with a table of
// people grouped by year into a stat.Stat.
//
// The expected table body looks like
//
//	<tbody>
//	<tr><td><h3>2001</h3></td></tr>
//	<tr><td><a href="...">Иванов Пётр</a></td></tr>
//	...
//	</tbody>
//
// Rows with an h3 heading start a new year, rows with a link carry a
// surname and a given name separated by one space. Other rows are logged
// and skipped. This is a pure package, it does no I/O.
package tableparser

import (
	"errors"

	"github.com/gnames/namestat/pkg/stat"
)

// Kind selects a parsing strategy.
type Kind string

const (
	// Markers finds rows and their parts by literal substrings. It is the
	// default strategy.
	Markers Kind = "markers"

	// HTML walks a parsed HTML tree. It gives the same result as Markers
	// for documents of the expected shape.
	HTML Kind = "html"
)

var (
	// ErrNoTableBody means the document has no table body.
	ErrNoTableBody = errors.New("table body not found")

	// ErrMalformedRow means a name row cannot be assigned to a year or
	// does not contain two names.
	ErrMalformedRow = errors.New("malformed name row")
)

// Parser turns a decoded document into year-grouped name records.
type Parser interface {
	// Parse returns records grouped by year. It fails if the table body is
	// missing or a name row precedes the first year heading.
	Parse(text string) (*stat.Stat, error)
}

// New returns a Parser of a given kind. Unknown kinds fall back to
// Markers.
func New(kind Kind) Parser {
	switch kind {
	case HTML:
		return &htmlParser{}
	default:
		return &markersParser{}
	}
}
