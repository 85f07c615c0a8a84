// Package gender assigns a gender to a given name. Classifiers are
// interchangeable: the stats engine depends only on the Classifier
// interface.
package gender

import (
	"context"
	"errors"
	"strings"
)

// Gender of a given name.
type Gender int

const (
	Unknown Gender = iota
	Male
	Female
)

var genderStr = map[Gender]string{
	Unknown: "unknown",
	Male:    "male",
	Female:  "female",
}

func (g Gender) String() string {
	if s, ok := genderStr[g]; ok {
		return s
	}
	return genderStr[Unknown]
}

// New converts a string to Gender. Unrecognized strings are Unknown.
func New(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male
	case "female", "f":
		return Female
	default:
		return Unknown
	}
}

// ErrClassification is wrapped by errors of external services.
var ErrClassification = errors.New("gender classification failed")

// Classifier assigns a gender to a given name. The result for a given
// name is deterministic.
type Classifier interface {
	Classify(ctx context.Context, name string) (Gender, error)
}

// Translator converts a name to the language known by a Detector.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Detection is an answer of a gender detector.
type Detection string

const (
	DetectMale         Detection = "male"
	DetectFemale       Detection = "female"
	DetectMostlyMale   Detection = "mostly_male"
	DetectMostlyFemale Detection = "mostly_female"
	DetectAndy         Detection = "andy"
	DetectUnknown      Detection = "unknown"
)

// Gender collapses a detector answer into three values.
func (d Detection) Gender() Gender {
	switch d {
	case DetectMale, DetectMostlyMale:
		return Male
	case DetectFemale, DetectMostlyFemale:
		return Female
	default:
		return Unknown
	}
}

// Detector guesses a gender of a name.
type Detector interface {
	Detect(ctx context.Context, name string) (Detection, error)
}
