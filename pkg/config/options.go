package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptParserKind sets the parsing strategy.
// Valid values: "markers", "html".
func OptParserKind(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Parser.Kind", s) {
			c.Parser.Kind = s
		}
	}
}

// OptParserEncoding sets the encoding of the source file.
// Valid values: "cp1251", "utf-8".
func OptParserEncoding(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	switch s {
	case "windows-1251", "cp-1251":
		s = "cp1251"
	case "utf8":
		s = "utf-8"
	}
	return func(c *Config) {
		if isValidEnum("Parser.Encoding", s) {
			c.Parser.Encoding = s
		}
	}
}

// OptGenderStrategy sets the gender classification strategy.
// Valid values: "heuristic", "lookup".
func OptGenderStrategy(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Gender.Strategy", s) {
			c.Gender.Strategy = s
		}
	}
}

// OptGenderWithCache sets if classification results are remembered.
func OptGenderWithCache(b bool) Option {
	return func(c *Config) {
		c.Gender.WithCache = b
	}
}

// OptGenderLookupTranslateURL sets the translation service endpoint.
func OptGenderLookupTranslateURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("Gender Lookup Translate URL", s) {
			c.Gender.Lookup.TranslateURL = s
		}
	}
}

// OptGenderLookupDetectURL sets the gender detection service endpoint.
func OptGenderLookupDetectURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("Gender Lookup Detect URL", s) {
			c.Gender.Lookup.DetectURL = s
		}
	}
}

// OptGenderLookupAPIKey sets the key sent to the lookup services.
func OptGenderLookupAPIKey(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Gender Lookup API Key", s) {
			c.Gender.Lookup.APIKey = s
		}
	}
}

// OptGenderLookupSourceLang sets the language of names in the document.
func OptGenderLookupSourceLang(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidString("Gender Lookup Source Language", s) {
			c.Gender.Lookup.SourceLang = s
		}
	}
}

// OptGenderLookupTargetLang sets the language of the detection service.
func OptGenderLookupTargetLang(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidString("Gender Lookup Target Language", s) {
			c.Gender.Lookup.TargetLang = s
		}
	}
}

// OptGenderLookupTimeoutSec sets the timeout of every remote call.
func OptGenderLookupTimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("Gender Lookup Timeout", i) {
			c.Gender.Lookup.TimeoutSec = i
		}
	}
}

// OptGenderLookupRequestsPerSecond sets the rate limit of remote calls.
func OptGenderLookupRequestsPerSecond(i int) Option {
	return func(c *Config) {
		if isValidInt("Gender Lookup Requests Per Second", i) {
			c.Gender.Lookup.RequestsPerSecond = i
		}
	}
}

// OptGenderLookupCertainty sets the probability threshold of a certain
// detection. Valid values are in (0, 1].
func OptGenderLookupCertainty(f float64) Option {
	return func(c *Config) {
		if isValidProbability("Gender Lookup Certainty", f) {
			c.Gender.Lookup.Certainty = f
		}
	}
}

// OptOutputFormat sets the format of printed results.
// Valid values: "csv", "tsv", "compact", "pretty".
func OptOutputFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Output.Format", s) {
			c.Output.Format = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
