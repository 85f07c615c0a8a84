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
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/namestat/pkg/config"
	"github.com/gnames/namestat/pkg/output"
	"github.com/gnames/namestat/pkg/stat"
	"github.com/gnames/namestat/pkg/stats"
	"github.com/spf13/cobra"
)

// getRecordsCmd returns the records command.
func getRecordsCmd() *cobra.Command {
	var (
		year   string
		format string
	)

	recordsCmd := &cobra.Command{
		Use:   "records FILE",
		Short: "Print name records parsed from a document",
		Long: `Parse a document and print its surname and given name pairs.

Records are grouped by year, years go in ascending order, records of a
year keep the document order.

Examples:
  namestat records register.html
  namestat records -y 2001 -f tsv register.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				cfg.Update([]config.Option{config.OptOutputFormat(format)})
			}
			err := runRecords(cmd, args[0], year)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	recordsCmd.Flags().StringVarP(
		&year, "year", "y", "",
		"print records of one year only",
	)
	recordsCmd.Flags().StringVarP(
		&format, "format", "f", "",
		"output format: csv, tsv, compact, pretty",
	)

	return recordsCmd
}

func runRecords(cmd *cobra.Command, path, year string) error {
	start := time.Now()
	st, err := loadStat(cfg, path)
	if err != nil {
		return err
	}

	res, err := recordsReport(st, year, output.NewFormat(cfg.Output.Format))
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), res)
	summary(st, start)
	return nil
}

func recordsReport(st *stat.Stat, year string, f gnfmt.Format) (string, error) {
	years := st.Years()
	if year != "" {
		if !st.HasYear(year) {
			return "", stats.KeyNotFoundError(year)
		}
		years = []string{year}
	}
	return output.Records(output.RecordRows(st, years), f)
}
