// Package namestat collects frequency statistics of given names registered
// per year. Pure building blocks live in sub-packages: tableparser turns a
// decoded document into a stat.Stat, gender classifies given names and stats
// answers frequency queries.
package namestat

var (
	// Version of the namestat, set by build flags.
	Version = "v0.1.0"

	// Build timestamp, set by build flags.
	Build = "n/a"
)
