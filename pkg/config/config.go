// Package config provides configuration management for namestat.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Parser: kind, encoding
//   - Gender: strategy, with_cache, lookup settings
//   - Output: format
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use NAMESTAT_ prefix with underscores for nesting:
//
//	NAMESTAT_PARSER_ENCODING=cp1251
//	NAMESTAT_GENDER_STRATEGY=lookup
//	NAMESTAT_GENDER_LOOKUP_API_KEY=secret
//	NAMESTAT_LOG_LEVEL=debug
package config

// Config represents the complete namestat configuration.
type Config struct {
	// Parser contains settings of reading and parsing the source document.
	Parser ParserConfig `mapstructure:"parser" yaml:"parser"`

	// Gender contains settings of gender classification.
	Gender GenderConfig `mapstructure:"gender" yaml:"gender"`

	// Output contains settings of printed results.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// ParserConfig contains settings of the table parser.
type ParserConfig struct {
	// Kind of the parser: 'markers' finds rows by literal substrings,
	// 'html' walks an HTML tree.
	Kind string `mapstructure:"kind" yaml:"kind"`

	// Encoding of the source file: 'cp1251' or 'utf-8'.
	Encoding string `mapstructure:"encoding" yaml:"encoding"`
}

// GenderConfig contains settings of gender classification.
type GenderConfig struct {
	// Strategy is 'heuristic' (rule-based) or 'lookup' (external services).
	Strategy string `mapstructure:"strategy" yaml:"strategy"`

	// WithCache remembers classification of each name during a run.
	// Lookup strategy makes a remote call per name, so the cache saves
	// a lot of time.
	WithCache bool `mapstructure:"with_cache" yaml:"with_cache"`

	// Lookup contains settings of the remote services.
	Lookup LookupConfig `mapstructure:"lookup" yaml:"lookup"`
}

// LookupConfig contains settings of translation and gender detection
// services.
type LookupConfig struct {
	// TranslateURL is a LibreTranslate-compatible translation endpoint.
	TranslateURL string `mapstructure:"translate_url" yaml:"translate_url"`

	// DetectURL is a genderize-compatible gender detection endpoint.
	DetectURL string `mapstructure:"detect_url" yaml:"detect_url"`

	// APIKey is sent to both services if not empty.
	APIKey string `mapstructure:"api_key" yaml:"api_key"`

	// SourceLang is the language of names in the document.
	SourceLang string `mapstructure:"source_lang" yaml:"source_lang"`

	// TargetLang is the language known by the detection service.
	TargetLang string `mapstructure:"target_lang" yaml:"target_lang"`

	// TimeoutSec limits every remote call.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`

	// RequestsPerSecond limits the rate of remote calls.
	RequestsPerSecond int `mapstructure:"requests_per_second" yaml:"requests_per_second"`

	// Certainty is a probability from which detection is 'male' or
	// 'female' instead of 'mostly_male' or 'mostly_female'.
	Certainty float64 `mapstructure:"certainty" yaml:"certainty"`
}

// OutputConfig contains settings of printed results.
type OutputConfig struct {
	// Format is 'csv', 'tsv', 'compact' or 'pretty' (JSON).
	Format string `mapstructure:"format" yaml:"format"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Parser: ParserConfig{
			Kind:     "markers",
			Encoding: "cp1251",
		},
		Gender: GenderConfig{
			Strategy:  "heuristic",
			WithCache: true,
			Lookup: LookupConfig{
				TranslateURL:      "https://libretranslate.com/translate",
				DetectURL:         "https://api.genderize.io",
				SourceLang:        "ru",
				TargetLang:        "en",
				TimeoutSec:        10,
				RequestsPerSecond: 5,
				Certainty:         0.9,
			},
		},
		Output: OutputConfig{
			Format: "csv",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
