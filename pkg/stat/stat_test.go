package stat_test

import (
	"testing"

	"github.com/gnames/namestat/pkg/stat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildStat() *stat.Stat {
	b := stat.NewBuilder()
	b.StartYear("2003")
	b.Add(stat.NameRecord{Surname: "Иванов", GivenName: "Пётр"})
	b.StartYear("2001")
	b.Add(stat.NameRecord{Surname: "Петрова", GivenName: "Анна"})
	b.Add(stat.NameRecord{Surname: "Сидоров", GivenName: "Илья"})
	return b.Stat()
}

func TestYears(t *testing.T) {
	st := buildStat()
	assert.Equal(t, []string{"2001", "2003"}, st.Years())
	assert.Equal(t, []string{"2003", "2001"}, st.DocumentYears())
}

func TestRecords(t *testing.T) {
	st := buildStat()

	recs, ok := st.Records("2001")
	require.True(t, ok)
	require.Len(t, recs, 2)
	assert.Equal(t, "Анна", recs[0].GivenName)
	assert.Equal(t, "Сидоров", recs[1].Surname)

	_, ok = st.Records("1999")
	assert.False(t, ok)
	assert.False(t, st.HasYear("1999"))
	assert.Equal(t, 3, st.Len())

	// returned slice is a copy
	recs[0].GivenName = "Мария"
	again, _ := st.Records("2001")
	assert.Equal(t, "Анна", again[0].GivenName)
}

func TestBuilder(t *testing.T) {
	t.Run("record before heading", func(t *testing.T) {
		b := stat.NewBuilder()
		_, ok := b.CurrentYear()
		assert.False(t, ok)
		assert.False(t, b.Add(stat.NameRecord{Surname: "A", GivenName: "B"}))
	})

	t.Run("repeated heading resets year", func(t *testing.T) {
		b := stat.NewBuilder()
		assert.False(t, b.StartYear("2001"))
		b.Add(stat.NameRecord{Surname: "A", GivenName: "B"})
		b.StartYear("2002")
		assert.True(t, b.StartYear("2001"))
		b.Add(stat.NameRecord{Surname: "C", GivenName: "D"})
		st := b.Stat()

		assert.Equal(t, []string{"2001", "2002"}, st.DocumentYears())
		recs, _ := st.Records("2001")
		assert.Equal(t, []stat.NameRecord{{Surname: "C", GivenName: "D"}}, recs)
	})
}

func TestEach(t *testing.T) {
	st := buildStat()
	var years, names []string
	st.Each(func(year string, rec stat.NameRecord) {
		years = append(years, year)
		names = append(names, rec.GivenName)
	})
	assert.Equal(t, []string{"2003", "2001", "2001"}, years)
	assert.Equal(t, []string{"Пётр", "Анна", "Илья"}, names)
}
