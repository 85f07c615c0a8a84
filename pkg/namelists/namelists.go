// Package namelists describes the name lists used by gender classifiers.
//
// The lists are domain data and live in namelists.yaml so they can be
// extended without changes in code:
//
//	heuristic:
//	  female_endings: аяь
//	  male_exceptions: [лёва, игорь, илья, никита]
//	lookup:
//	  forced_male: [Лев, Лёва, Никита, Илья, Игорь]
//	  forced_female: [Любовь]
package namelists

import (
	"errors"
	"strings"
)

// Loader reads name lists from their storage.
type Loader interface {
	Load() (*NameLists, error)
}

// NameLists is the content of namelists.yaml.
type NameLists struct {
	Heuristic HeuristicLists `yaml:"heuristic"`
	Lookup    LookupLists    `yaml:"lookup"`
}

// HeuristicLists are used by the rule-based classifier.
type HeuristicLists struct {
	// FemaleEndings is a set of last letters that mark a female name.
	FemaleEndings string `yaml:"female_endings"`

	// MaleExceptions are masculine names that end with a female ending.
	MaleExceptions []string `yaml:"male_exceptions"`
}

// LookupLists are used by the lookup classifier. Names from these lists
// never reach external services.
type LookupLists struct {
	ForcedMale   []string `yaml:"forced_male"`
	ForcedFemale []string `yaml:"forced_female"`
}

// Default returns lists used when namelists.yaml does not provide them.
func Default() *NameLists {
	return &NameLists{
		Heuristic: HeuristicLists{
			FemaleEndings:  "аяь",
			MaleExceptions: []string{"лёва", "игорь", "илья", "никита"},
		},
		Lookup: LookupLists{
			ForcedMale:   []string{"Лев", "Лёва", "Никита", "Илья", "Игорь"},
			ForcedFemale: []string{"Любовь"},
		},
	}
}

// Validate checks that lists are usable. A name cannot be forced to both
// genders.
func (n *NameLists) Validate() error {
	if strings.TrimSpace(n.Heuristic.FemaleEndings) == "" {
		return errors.New("heuristic.female_endings cannot be empty")
	}
	male := make(map[string]struct{}, len(n.Lookup.ForcedMale))
	for _, v := range n.Lookup.ForcedMale {
		male[strings.ToLower(v)] = struct{}{}
	}
	for _, v := range n.Lookup.ForcedFemale {
		if _, ok := male[strings.ToLower(v)]; ok {
			return errors.New("name '" + v + "' is forced to both genders")
		}
	}
	return nil
}

// MergeWithDefaults fills empty sections with default values.
func (n *NameLists) MergeWithDefaults() {
	def := Default()
	if n.Heuristic.FemaleEndings == "" {
		n.Heuristic.FemaleEndings = def.Heuristic.FemaleEndings
	}
	if n.Heuristic.MaleExceptions == nil {
		n.Heuristic.MaleExceptions = def.Heuristic.MaleExceptions
	}
	if n.Lookup.ForcedMale == nil && n.Lookup.ForcedFemale == nil {
		n.Lookup = def.Lookup
	}
}
