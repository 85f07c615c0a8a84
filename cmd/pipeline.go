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
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/namestat/internal/iofs"
	"github.com/gnames/namestat/internal/iogender"
	"github.com/gnames/namestat/internal/ionamelists"
	"github.com/gnames/namestat/pkg/config"
	"github.com/gnames/namestat/pkg/gender"
	"github.com/gnames/namestat/pkg/stat"
	"github.com/gnames/namestat/pkg/stats"
	"github.com/gnames/namestat/pkg/tableparser"
)

// loadStat reads, decodes and parses the source document.
func loadStat(cfg *config.Config, path string) (*stat.Stat, error) {
	text, err := iofs.ReadSource(path, cfg.Parser.Encoding)
	if err != nil {
		return nil, err
	}

	p := tableparser.New(tableparser.Kind(cfg.Parser.Kind))
	st, err := p.Parse(text)
	if err != nil {
		return nil, err
	}

	slog.Info("Document parsed",
		"file", path,
		"parser", cfg.Parser.Kind,
		"years", len(st.DocumentYears()),
		"records", st.Len(),
	)
	return st, nil
}

// newClassifier creates the gender classifier chosen by
// cfg.Gender.Strategy.
func newClassifier(cfg *config.Config) (gender.Classifier, error) {
	lists, err := ionamelists.New(cfg).Load()
	if err != nil {
		return nil, err
	}

	var res gender.Classifier
	switch cfg.Gender.Strategy {
	case "lookup":
		res = iogender.New(cfg, lists.Lookup)
	default:
		res = gender.NewHeuristic(lists.Heuristic)
	}

	if cfg.Gender.WithCache {
		res = gender.NewCached(res)
	}
	slog.Info("Gender classifier created",
		"strategy", cfg.Gender.Strategy,
		"with_cache", cfg.Gender.WithCache,
	)
	return res, nil
}

// warmUp classifies every distinct given name once, showing progress.
// Later queries take the results from the cache.
func warmUp(
	ctx context.Context,
	cls gender.Classifier,
	names []stats.Frequency,
) error {
	bar := pb.Full.Start(len(names))
	bar.Set("prefix", "Classifying names: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	for _, v := range names {
		if _, err := cls.Classify(ctx, v.Name); err != nil {
			return err
		}
		bar.Increment()
	}
	return nil
}

// needsWarmUp is true when gender queries go to remote services and
// their answers are remembered.
func needsWarmUp(cfg *config.Config) bool {
	return cfg.Gender.Strategy == "lookup" && cfg.Gender.WithCache
}

// summary reports the size of the processed document.
func summary(st *stat.Stat, start time.Time) {
	dur := time.Since(start)
	gn.Info("Processed <em>%s</em> records of <em>%s</em> years in %s",
		humanize.Comma(int64(st.Len())),
		humanize.Comma(int64(len(st.DocumentYears()))),
		gnfmt.TimeString(dur.Seconds()),
	)
	slog.Info("Done",
		"records", st.Len(),
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
}

func printResult(w io.Writer, s string) {
	if s == "" {
		return
	}
	fmt.Fprintln(w, s)
}
