package output_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
	"github.com/gnames/namestat/pkg/output"
	"github.com/gnames/namestat/pkg/stats"
	"github.com/gnames/namestat/pkg/tableparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormat(t *testing.T) {
	tests := []struct {
		in  string
		res gnfmt.Format
	}{
		{"csv", gnfmt.CSV},
		{"TSV", gnfmt.TSV},
		{"compact", gnfmt.CompactJSON},
		{"pretty", gnfmt.PrettyJSON},
		{"xml", gnfmt.CSV},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, output.NewFormat(v.in), v.in)
	}
}

func TestFrequencyRows(t *testing.T) {
	list := []stats.Frequency{{Name: "Пётр", Count: 2}, {Name: "Анна", Count: 1}}
	rows := output.FrequencyRows("2001", "male", list)
	require.Len(t, rows, 2)
	assert.Equal(t, "2001", rows[0].Year)
	assert.Equal(t, "male", rows[0].Gender)
	assert.Equal(t, gnuuid.New("Пётр").String(), rows[0].NameID)
	assert.Equal(t, 1, rows[1].Count)

	other := output.FrequencyRows("", "", list[:1])
	assert.Equal(t, rows[0].NameID, other[0].NameID,
		"name id does not depend on the report")
}

func TestFrequencies(t *testing.T) {
	rows := output.FrequencyRows("2001", "", []stats.Frequency{
		{Name: "Пётр", Count: 2},
	})

	t.Run("csv", func(t *testing.T) {
		res, err := output.Frequencies(rows, gnfmt.CSV)
		require.NoError(t, err)
		lines := strings.Split(res, "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "Year,Gender,Name,NameID,Count", lines[0])
		assert.Equal(t, "2001,,Пётр,"+rows[0].NameID+",2", lines[1])
	})

	t.Run("tsv", func(t *testing.T) {
		res, err := output.Frequencies(rows, gnfmt.TSV)
		require.NoError(t, err)
		assert.Contains(t, res, "Year\tGender\tName\tNameID\tCount")
	})

	t.Run("json", func(t *testing.T) {
		res, err := output.Frequencies(rows, gnfmt.CompactJSON)
		require.NoError(t, err)
		var got []output.FrequencyRow
		require.NoError(t, json.Unmarshal([]byte(res), &got))
		assert.Equal(t, rows, got)
	})
}

func TestRecordsAndYears(t *testing.T) {
	doc := `<table><tbody><tr><td><h3>2001</h3></td></tr>` +
		`<tr><td><a href="1">Иванов Пётр</a></td></tr>` +
		`<tr><td><h3>2000</h3></td></tr>` +
		`<tr><td><a href="2">Петрова Анна</a></td></tr></tbody></table>`
	st, err := tableparser.New(tableparser.Markers).Parse(doc)
	require.NoError(t, err)

	rows := output.RecordRows(st, st.Years())
	require.Len(t, rows, 2)
	assert.Equal(t, output.RecordRow{
		Year: "2000", Surname: "Петрова", GivenName: "Анна",
	}, rows[0])

	res, err := output.Records(rows, gnfmt.CSV)
	require.NoError(t, err)
	assert.Equal(t,
		"Year,Surname,GivenName\n2000,Петрова,Анна\n2001,Иванов,Пётр", res)

	res, err = output.Years(st.Years(), gnfmt.CSV)
	require.NoError(t, err)
	assert.Equal(t, "2000\n2001", res)

	res, err = output.Years(st.Years(), gnfmt.CompactJSON)
	require.NoError(t, err)
	assert.Equal(t, `["2000","2001"]`, res)
}
