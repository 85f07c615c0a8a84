package config

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int
	s = c.Parser.Kind
	if s != "" {
		res = append(res, OptParserKind(s))
	}
	s = c.Parser.Encoding
	if s != "" {
		res = append(res, OptParserEncoding(s))
	}

	s = c.Gender.Strategy
	if s != "" {
		res = append(res, OptGenderStrategy(s))
	}
	res = append(res, OptGenderWithCache(c.Gender.WithCache))

	lk := c.Gender.Lookup
	s = lk.TranslateURL
	if s != "" {
		res = append(res, OptGenderLookupTranslateURL(s))
	}
	s = lk.DetectURL
	if s != "" {
		res = append(res, OptGenderLookupDetectURL(s))
	}
	s = lk.APIKey
	if s != "" {
		res = append(res, OptGenderLookupAPIKey(s))
	}
	s = lk.SourceLang
	if s != "" {
		res = append(res, OptGenderLookupSourceLang(s))
	}
	s = lk.TargetLang
	if s != "" {
		res = append(res, OptGenderLookupTargetLang(s))
	}
	i = lk.TimeoutSec
	if i > 0 {
		res = append(res, OptGenderLookupTimeoutSec(i))
	}
	i = lk.RequestsPerSecond
	if i > 0 {
		res = append(res, OptGenderLookupRequestsPerSecond(i))
	}
	if lk.Certainty > 0 {
		res = append(res, OptGenderLookupCertainty(lk.Certainty))
	}

	s = c.Output.Format
	if s != "" {
		res = append(res, OptOutputFormat(s))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidProbability(name string, f float64) bool {
	res := f > 0 && f <= 1
	if !res {
		gn.Warn("<em>%s</em> has to be in (0, 1] range, ignoring %v", name, f)
	}
	return res
}

func isValidURL(name, s string) bool {
	u, err := url.Parse(s)
	res := err == nil && (u.Scheme == "http" || u.Scheme == "https") &&
		u.Host != ""
	if !res {
		gn.Warn("<em>%s</em> is not a valid URL, ignoring '%s'", name, s)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Parser.Kind":     {"markers": s, "html": s},
		"Parser.Encoding": {"cp1251": s, "utf-8": s},
		"Gender.Strategy": {"heuristic": s, "lookup": s},
		"Output.Format": {"csv": s, "tsv": s,
			"compact": s, "pretty": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	} else {
		gn.Warn(
			"<em>%s</em> does not support '%s' as a value. "+
				"Valid values are: \n%s\nIgnoring...",
			name, val, strings.Join(lines, "\n"),
		)
		return false
	}
}
