package gender

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/gnames/namestat/pkg/namelists"
)

type heuristic struct {
	endings    string
	exceptions map[string]struct{}
}

// NewHeuristic creates a rule-based classifier. A lower-cased name that
// ends with one of the female endings and is not a male exception is
// female, any other name is male. It never returns Unknown or an error.
func NewHeuristic(lists namelists.HeuristicLists) Classifier {
	res := heuristic{
		endings:    strings.ToLower(lists.FemaleEndings),
		exceptions: make(map[string]struct{}, len(lists.MaleExceptions)),
	}
	for _, v := range lists.MaleExceptions {
		res.exceptions[strings.ToLower(v)] = struct{}{}
	}
	return &res
}

func (h *heuristic) Classify(_ context.Context, name string) (Gender, error) {
	name = strings.ToLower(name)
	last, _ := utf8.DecodeLastRuneInString(name)
	if last == utf8.RuneError || !strings.ContainsRune(h.endings, last) {
		return Male, nil
	}
	if _, ok := h.exceptions[name]; ok {
		return Male, nil
	}
	return Female, nil
}
