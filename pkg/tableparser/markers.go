package tableparser

import (
	"log/slog"
	"strings"

	"github.com/gnames/namestat/pkg/stat"
)

const (
	bodyMarker    = "<tbody>"
	rowEnd        = "</tr>"
	headingMarker = "h3"
	linkMarker    = "a"
	textStart     = `">`
	linkEnd       = "</a></td>"
	nameSep       = " "
	yearLen       = 4
)

type markersParser struct{}

func (p *markersParser) Parse(text string) (*stat.Stat, error) {
	_, body, ok := strings.Cut(text, bodyMarker)
	if !ok {
		return nil, StructureError(bodyMarker)
	}
	// only the part up to a second body marker belongs to the table
	body, _, _ = strings.Cut(body, bodyMarker)

	rows := strings.Split(body, rowEnd)
	rows = rows[:len(rows)-1]

	b := stat.NewBuilder()
	for i, row := range rows {
		switch {
		case strings.Contains(row, headingMarker):
			year := yearAfter(row, strings.Index(row, headingMarker))
			if b.StartYear(year) {
				slog.Warn("Repeated year heading resets its records",
					"year", year, "row", i+1)
			}
		case strings.Contains(row, linkMarker):
			rec, err := nameRecord(row)
			if err != nil {
				return nil, MalformedRowError(i+1, row, err)
			}
			if !b.Add(rec) {
				return nil, MalformedRowError(i+1, row, errNoYear)
			}
		default:
			slog.Warn("Unknown row", "row", row, "num", i+1)
		}
	}
	return b.Stat(), nil
}

// yearAfter takes 4 characters that follow the heading marker and the
// closing bracket of its tag.
func yearAfter(row string, idx int) string {
	rs := []rune(row[idx+len(headingMarker):])
	if len(rs) == 0 {
		return ""
	}
	rs = rs[1:]
	if len(rs) > yearLen {
		rs = rs[:yearLen]
	}
	return string(rs)
}

func nameRecord(row string) (stat.NameRecord, error) {
	text := row
	if idx := strings.LastIndex(row, textStart); idx >= 0 {
		text = row[idx+len(textStart):]
	}
	text = strings.ReplaceAll(text, linkEnd, "")
	return splitName(text)
}

func splitName(text string) (stat.NameRecord, error) {
	parts := strings.Split(text, nameSep)
	if len(parts) < 2 {
		return stat.NameRecord{}, errOneName
	}
	return stat.NameRecord{Surname: parts[0], GivenName: parts[1]}, nil
}
