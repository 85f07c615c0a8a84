/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"slices"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/namestat/pkg/config"
	"github.com/gnames/namestat/pkg/gender"
	"github.com/gnames/namestat/pkg/output"
	"github.com/gnames/namestat/pkg/stats"
	"github.com/spf13/cobra"
)

var genderValues = []string{"male", "female", "unknown"}

// namesQuery describes which frequency lists to print.
type namesQuery struct {
	// year restricts lists to one year.
	year string

	// perYear prints a separate list for every year.
	perYear bool

	// gender keeps only names of the gender, empty means all names.
	gender string

	// limit keeps the top entries of every list, 0 means no limit.
	limit int
}

// getNamesCmd returns the names command.
func getNamesCmd() *cobra.Command {
	var (
		q      namesQuery
		format string
	)

	namesCmd := &cobra.Command{
		Use:   "names FILE",
		Short: "Print frequencies of given names",
		Long: `Parse a document and print how many times every given name occurs.

Names are sorted by count in descending order, names with the same count
keep the order of their first occurrence.

Without flags the list covers all years. A list can be made for one year
(--year) or for every year separately (--per-year). The --gender flag keeps
only names of the given gender. Gender is assigned by the strategy set
in the config file (heuristic or lookup).

Examples:
  # All names of all years
  namestat names register.html

  # Female names of 2001
  namestat names -y 2001 -g female register.html

  # Top 10 names of every year as pretty JSON
  namestat names --per-year -n 10 -f pretty register.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				cfg.Update([]config.Option{config.OptOutputFormat(format)})
			}
			err := runNames(cmd, args[0], q)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	namesCmd.Flags().StringVarP(
		&q.year, "year", "y", "",
		"count names of one year only",
	)
	namesCmd.Flags().BoolVarP(
		&q.perYear, "per-year", "p", false,
		"count names of every year separately",
	)
	namesCmd.Flags().StringVarP(
		&q.gender, "gender", "g", "",
		"keep names of one gender: male, female, unknown",
	)
	namesCmd.Flags().IntVarP(
		&q.limit, "limit", "n", 0,
		"print only top N names of every list (0 = all)",
	)
	namesCmd.Flags().StringVarP(
		&format, "format", "f", "",
		"output format: csv, tsv, compact, pretty",
	)

	return namesCmd
}

func runNames(cmd *cobra.Command, path string, q namesQuery) error {
	ctx := context.Background()
	start := time.Now()

	if err := q.validate(); err != nil {
		return err
	}

	st, err := loadStat(cfg, path)
	if err != nil {
		return err
	}

	var cls gender.Classifier
	if q.gender != "" {
		if cls, err = newClassifier(cfg); err != nil {
			return err
		}
	}
	eng := stats.New(st, cls)

	if q.gender != "" && needsWarmUp(cfg) {
		if err = warmUp(ctx, cls, eng.General()); err != nil {
			return err
		}
	}

	rows, err := namesRows(ctx, eng, q)
	if err != nil {
		return err
	}

	res, err := output.Frequencies(rows, output.NewFormat(cfg.Output.Format))
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), res)
	summary(st, start)
	return nil
}

func (q *namesQuery) validate() error {
	if q.gender != "" && !slices.Contains(genderValues, q.gender) {
		return InvalidFlagError("gender", q.gender, genderValues)
	}
	if q.limit < 0 {
		return InvalidFlagError("limit", "negative", []string{"0", "N > 0"})
	}
	if q.year != "" && q.perYear {
		gn.Warn("<warn>--per-year is ignored when --year is set</warn>")
		q.perYear = false
	}
	return nil
}

// namesRows collects frequency lists requested by q.
func namesRows(
	ctx context.Context,
	eng *stats.Engine,
	q namesQuery,
) ([]output.FrequencyRow, error) {
	if q.perYear && q.gender == "" {
		var res []output.FrequencyRow
		perYear := eng.GeneralPerYear()
		for _, y := range eng.Years() {
			res = append(res, output.FrequencyRows(y, "", top(perYear[y], q.limit))...)
		}
		return res, nil
	}

	years := []string{q.year}
	if q.perYear {
		years = eng.Years()
	}

	var res []output.FrequencyRow
	for _, y := range years {
		list, err := q.frequencies(ctx, eng, y)
		if err != nil {
			return nil, err
		}
		res = append(res, output.FrequencyRows(y, q.gender, top(list, q.limit))...)
	}
	return res, nil
}

// frequencies returns the list of one year, or of all years if year is
// empty.
func (q namesQuery) frequencies(
	ctx context.Context,
	eng *stats.Engine,
	year string,
) ([]stats.Frequency, error) {
	switch gender.New(q.gender) {
	case gender.Male:
		return eng.Male(ctx, year)
	case gender.Female:
		return eng.Female(ctx, year)
	}

	if q.gender != "" {
		return eng.ByGender(ctx, gender.Unknown, year)
	}
	if year == "" {
		return eng.General(), nil
	}
	return eng.Year(year)
}

func top(list []stats.Frequency, limit int) []stats.Frequency {
	if limit > 0 && len(list) > limit {
		return list[:limit]
	}
	return list
}
