package beq

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// Result is one canonicalized equation from a batch run.
type Result struct {
	Filename  string `json:"filename,omitempty"`
	Line      int    `json:"line,omitempty"`
	Input     string `json:"input"`
	Canonical string `json:"canonical"`
}

// ProcessFiles canonicalizes every equation in the given files, one equation
// per line. Blank lines and lines starting with '#' are skipped. Processing
// fails fast: the first malformed equation aborts the batch with an error
// carrying its file and line.
func ProcessFiles(ctx context.Context, logger *zap.Logger, engine *Engine, paths []string) ([]Result, error) {
	var allResults []Result

	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionSetDescription("canonicalizing"),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		src, err := os.ReadFile(path)
		if err != nil {
			if logger != nil {
				logger.Error("Error reading equation file", zap.String("file", path), zap.Error(err))
			}
			return nil, err
		}

		results, err := ProcessSource(engine, path, src)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing equation file", zap.String("file", path), zap.Error(err))
			}
			return nil, err
		}
		allResults = append(allResults, results...)
		_ = bar.Add(1)
	}

	fmt.Println()
	return allResults, nil
}

// ProcessSource canonicalizes equations from in-memory input, one per line.
// filename is used only for error context.
func ProcessSource(engine *Engine, filename string, src []byte) ([]Result, error) {
	var results []Result
	for i, line := range strings.Split(string(src), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		canonical, err := engine.Canonicalize(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", filename, i+1, err)
		}
		results = append(results, Result{
			Filename:  filename,
			Line:      i + 1,
			Input:     trimmed,
			Canonical: canonical,
		})
	}
	return results, nil
}
