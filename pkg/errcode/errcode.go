package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	DecodeFileError

	// Logging errors
	CreateLogFileError

	// Configuration errors
	NameListsConfigError
	UnknownEncodingError

	// Parser errors
	ParserStructureError
	ParserMalformedRowError

	// Gender classification errors
	GenderClassificationError
	GenderTranslateError
	GenderDetectError

	// Stats errors
	StatsYearNotFoundError

	// CLI errors
	InvalidFlagError
)
