package namelists_test

import (
	"testing"

	"github.com/gnames/namestat/pkg/namelists"
	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	nl := namelists.Default()
	assert.NoError(t, nl.Validate())
	assert.Equal(t, "аяь", nl.Heuristic.FemaleEndings)
	assert.Equal(t, []string{"лёва", "игорь", "илья", "никита"},
		nl.Heuristic.MaleExceptions)
	assert.Equal(t, []string{"Любовь"}, nl.Lookup.ForcedFemale)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		msg string
		nl  namelists.NameLists
		ok  bool
	}{
		{"empty endings", namelists.NameLists{}, false},
		{"good", namelists.NameLists{
			Heuristic: namelists.HeuristicLists{FemaleEndings: "а"},
		}, true},
		{"forced both ways", namelists.NameLists{
			Heuristic: namelists.HeuristicLists{FemaleEndings: "а"},
			Lookup: namelists.LookupLists{
				ForcedMale:   []string{"Саша"},
				ForcedFemale: []string{"саша"},
			},
		}, false},
	}

	for _, v := range tests {
		err := v.nl.Validate()
		if v.ok {
			assert.NoError(t, err, v.msg)
		} else {
			assert.Error(t, err, v.msg)
		}
	}
}

func TestMergeWithDefaults(t *testing.T) {
	nl := namelists.NameLists{
		Heuristic: namelists.HeuristicLists{MaleExceptions: []string{"кузьма"}},
	}
	nl.MergeWithDefaults()
	assert.Equal(t, "аяь", nl.Heuristic.FemaleEndings)
	assert.Equal(t, []string{"кузьма"}, nl.Heuristic.MaleExceptions)
	assert.Equal(t, namelists.Default().Lookup, nl.Lookup)
}
