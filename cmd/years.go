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
	"github.com/gnames/namestat/pkg/config"
	"github.com/gnames/namestat/pkg/output"
	"github.com/spf13/cobra"
)

// getYearsCmd returns the years command.
func getYearsCmd() *cobra.Command {
	var format string

	yearsCmd := &cobra.Command{
		Use:   "years FILE",
		Short: "Print years found in a document",
		Long: `Parse a document and print its years in ascending order.

Examples:
  namestat years register.html
  namestat years -f compact register.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				cfg.Update([]config.Option{config.OptOutputFormat(format)})
			}
			err := runYears(cmd, args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	yearsCmd.Flags().StringVarP(
		&format, "format", "f", "",
		"output format: csv, tsv, compact, pretty",
	)

	return yearsCmd
}

func runYears(cmd *cobra.Command, path string) error {
	start := time.Now()
	st, err := loadStat(cfg, path)
	if err != nil {
		return err
	}

	res, err := output.Years(st.Years(), output.NewFormat(cfg.Output.Format))
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), res)
	summary(st, start)
	return nil
}
