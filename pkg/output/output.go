// Package output renders frequency lists and name records as CSV, TSV or
// JSON.
package output

import (
	"strconv"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
	"github.com/gnames/namestat/pkg/stat"
	"github.com/gnames/namestat/pkg/stats"
)

// NewFormat converts a config value to gnfmt.Format. Unknown values give
// CSV.
func NewFormat(s string) gnfmt.Format {
	switch strings.ToLower(s) {
	case "tsv":
		return gnfmt.TSV
	case "compact":
		return gnfmt.CompactJSON
	case "pretty":
		return gnfmt.PrettyJSON
	default:
		return gnfmt.CSV
	}
}

// FrequencyRow is one line of a frequency report. NameID is UUID v5 of
// the given name, it is the same for the name in every report.
type FrequencyRow struct {
	Year   string `json:"year,omitempty"`
	Gender string `json:"gender,omitempty"`
	Name   string `json:"name"`
	NameID string `json:"nameId"`
	Count  int    `json:"count"`
}

// RecordRow is one parsed name record.
type RecordRow struct {
	Year      string `json:"year"`
	Surname   string `json:"surname"`
	GivenName string `json:"givenName"`
}

// FrequencyRows converts a frequency list to report rows. Empty year or
// gender mean the list is not restricted by them.
func FrequencyRows(
	year, gender string,
	list []stats.Frequency,
) []FrequencyRow {
	res := make([]FrequencyRow, len(list))
	for i, v := range list {
		res[i] = FrequencyRow{
			Year:   year,
			Gender: gender,
			Name:   v.Name,
			NameID: gnuuid.New(v.Name).String(),
			Count:  v.Count,
		}
	}
	return res
}

// RecordRows converts records of given years to rows. Years without
// records are skipped.
func RecordRows(st *stat.Stat, years []string) []RecordRow {
	var res []RecordRow
	for _, y := range years {
		recs, _ := st.Records(y)
		for _, r := range recs {
			res = append(res, RecordRow{
				Year:      y,
				Surname:   r.Surname,
				GivenName: r.GivenName,
			})
		}
	}
	return res
}

// Frequencies renders frequency rows. CSV and TSV outputs start with a
// header.
func Frequencies(rows []FrequencyRow, f gnfmt.Format) (string, error) {
	switch f {
	case gnfmt.CompactJSON, gnfmt.PrettyJSON:
		return toJSON(rows, f)
	}

	sep := separator(f)
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, gnfmt.ToCSV(
		[]string{"Year", "Gender", "Name", "NameID", "Count"}, sep,
	))
	for _, v := range rows {
		lines = append(lines, gnfmt.ToCSV([]string{
			v.Year, v.Gender, v.Name, v.NameID, strconv.Itoa(v.Count),
		}, sep))
	}
	return strings.Join(lines, "\n"), nil
}

// Records renders record rows.
func Records(rows []RecordRow, f gnfmt.Format) (string, error) {
	switch f {
	case gnfmt.CompactJSON, gnfmt.PrettyJSON:
		return toJSON(rows, f)
	}

	sep := separator(f)
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, gnfmt.ToCSV(
		[]string{"Year", "Surname", "GivenName"}, sep,
	))
	for _, v := range rows {
		lines = append(lines, gnfmt.ToCSV(
			[]string{v.Year, v.Surname, v.GivenName}, sep,
		))
	}
	return strings.Join(lines, "\n"), nil
}

// Years renders one year per line, or a JSON array.
func Years(years []string, f gnfmt.Format) (string, error) {
	switch f {
	case gnfmt.CompactJSON, gnfmt.PrettyJSON:
		return toJSON(years, f)
	}
	return strings.Join(years, "\n"), nil
}

func separator(f gnfmt.Format) rune {
	if f == gnfmt.TSV {
		return '\t'
	}
	return ','
}

func toJSON(v any, f gnfmt.Format) (string, error) {
	enc := gnfmt.GNjson{Pretty: f == gnfmt.PrettyJSON}
	bs, err := enc.Encode(v)
	if err != nil {
		return "", err
	}
	return string(bs), nil
}
