package gender

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gnames/namestat/pkg/namelists"
)

type lookup struct {
	tr       Translator
	det      Detector
	override map[string]Gender
}

// NewLookup creates a classifier that translates a name and asks a
// detector about the translation. Names from forced lists bypass both
// services. Errors of the services are returned as ClassificationError.
func NewLookup(
	tr Translator,
	det Detector,
	lists namelists.LookupLists,
) Classifier {
	res := lookup{
		tr:       tr,
		det:      det,
		override: make(map[string]Gender),
	}
	for _, v := range lists.ForcedMale {
		res.override[strings.ToLower(v)] = Male
	}
	for _, v := range lists.ForcedFemale {
		res.override[strings.ToLower(v)] = Female
	}
	return &res
}

func (l *lookup) Classify(ctx context.Context, name string) (Gender, error) {
	if g, ok := l.override[strings.ToLower(name)]; ok {
		return g, nil
	}

	text, err := l.tr.Translate(ctx, name)
	if err != nil {
		return Unknown, ClassificationError(name, err)
	}

	det, err := l.det.Detect(ctx, text)
	if err != nil {
		return Unknown, ClassificationError(name, err)
	}

	res := det.Gender()
	slog.Debug("Name classified",
		"name", name, "translation", text,
		"detection", string(det), "gender", res.String())
	return res, nil
}
