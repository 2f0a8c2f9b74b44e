// Package processor evaluates files of Roman numeral expressions, falling back
// to interactive entry when the input file does not exist.
package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/romancalc/internal/constants"
	"github.com/wizzomafizzo/romancalc/internal/expression"
	"github.com/wizzomafizzo/romancalc/internal/logging"
	"github.com/wizzomafizzo/romancalc/internal/prompt"
	"github.com/wizzomafizzo/romancalc/internal/storage"
	"golang.org/x/sync/errgroup"
)

const filePerm = 0o644

// Recorder stores the evaluations of a run
type Recorder interface {
	Record(ctx context.Context, runID string, evaluations []storage.Evaluation) error
}

// Report describes one processed input file
type Report struct {
	RunID       string
	Input       string
	Output      string
	Results     []expression.Result
	Interactive bool
}

// Failed returns the number of lines that produced an error message
func (r *Report) Failed() int {
	failed := 0
	for i := range r.Results {
		if r.Results[i].Failed() {
			failed++
		}
	}
	return failed
}

// Processor reads expressions, evaluates them and writes the results
type Processor struct {
	fs          afero.Fs
	recorder    Recorder
	console     io.Writer
	newPrompter func() prompt.Prompter
	input       string
	output      string
	runID       string
	workers     int
	diagnostics bool
}

// Option configures a Processor
type Option func(*Processor)

// WithInput sets the input file path
func WithInput(path string) Option {
	return func(p *Processor) { p.input = path }
}

// WithOutput sets the output file path
func WithOutput(path string) Option {
	return func(p *Processor) { p.output = path }
}

// WithWorkers sets how many lines are evaluated concurrently. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(p *Processor) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithPrompter sets the factory used to create the interactive prompter
func WithPrompter(factory func() prompt.Prompter) Option {
	return func(p *Processor) { p.newPrompter = factory }
}

// WithRecorder records every processed file's results
func WithRecorder(recorder Recorder) Option {
	return func(p *Processor) { p.recorder = recorder }
}

// WithConsole sets where progress messages are written
func WithConsole(w io.Writer) Option {
	return func(p *Processor) { p.console = w }
}

// WithDiagnostics controls whether each line's decimal equation or rejection
// reason is printed to the console. It is enabled by default.
func WithDiagnostics(enabled bool) Option {
	return func(p *Processor) { p.diagnostics = enabled }
}

// WithRunID overrides the generated run identifier
func WithRunID(id string) Option {
	return func(p *Processor) { p.runID = id }
}

// New creates a Processor over fs with default paths and a single worker
func New(fs afero.Fs, opts ...Option) *Processor {
	p := &Processor{
		fs:          fs,
		input:       constants.DefaultInputFile,
		output:      constants.DefaultOutputFile,
		workers:     constants.DefaultWorkers,
		newPrompter: prompt.NewLinerPrompter,
		console:     os.Stdout,
		runID:       uuid.NewString(),
		diagnostics: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// RunID returns the identifier attached to this processor's logs and history
func (p *Processor) RunID() string {
	return p.runID
}

// Run processes the input file, or collects expressions interactively and
// saves them to the input file first when it does not exist.
func (p *Processor) Run(ctx context.Context) (*Report, error) {
	exists, err := afero.Exists(p.fs, p.input)
	if err != nil {
		return nil, fmt.Errorf("failed to check input file %s: %w", p.input, err)
	}
	if exists {
		return p.ProcessFile(ctx)
	}

	p.say(color.YellowString("File %q not found. Please enter Roman Numeral expressions:", p.input))

	lines, err := p.collect(ctx)
	if err != nil {
		return nil, err
	}

	if err := afero.WriteFile(p.fs, p.input, []byte(strings.Join(lines, "\n")), filePerm); err != nil {
		return nil, fmt.Errorf("failed to save input file %s: %w", p.input, err)
	}
	logging.Get(ctx).Info().Str("input", p.input).Int("lines", len(lines)).Msg("Saved interactive input")
	p.say(color.GreenString("Input saved to %s", p.input))

	report, err := p.ProcessFile(ctx)
	if err != nil {
		return nil, err
	}
	report.Interactive = true
	return report, nil
}

func (p *Processor) collect(ctx context.Context) ([]string, error) {
	prompter := p.newPrompter()
	lines, err := prompt.CollectExpressions(ctx, prompter)
	// liner must restore the terminal before anything else is printed
	if closeErr := prompter.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("failed to close prompt: %w", closeErr)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to collect expressions: %w", err)
	}
	return lines, nil
}

// ProcessFile evaluates every line of the input file and overwrites the
// output file with one result per line, in input order.
func (p *Processor) ProcessFile(ctx context.Context) (*Report, error) {
	log := logging.Get(ctx)

	data, err := afero.ReadFile(p.fs, p.input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", p.input, err)
	}
	p.say(color.CyanString("File %q found. Processing...", p.input))

	lines := SplitLines(string(data))
	results, err := p.EvaluateLines(ctx, lines)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(results))
	for i := range results {
		texts[i] = results[i].Text
		if p.diagnostics {
			for _, line := range expression.Diagnostics(results[i]) {
				p.say(line)
			}
		}
	}
	if err := afero.WriteFile(p.fs, p.output, []byte(strings.Join(texts, "\n")), filePerm); err != nil {
		return nil, fmt.Errorf("failed to write output file %s: %w", p.output, err)
	}
	p.say(color.GreenString("Results written to %s", p.output))

	report := &Report{
		RunID:   p.runID,
		Input:   p.input,
		Output:  p.output,
		Results: results,
	}
	log.Info().
		Str("input", p.input).
		Str("output", p.output).
		Int("lines", len(results)).
		Int("failed", report.Failed()).
		Msg("Processed expressions")

	p.record(ctx, results)
	return report, nil
}

// EvaluateLines evaluates lines on up to the configured number of workers.
// results[i] always belongs to lines[i].
func (p *Processor) EvaluateLines(ctx context.Context, lines []string) ([]expression.Result, error) {
	results := make([]expression.Result, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, line := range lines {
		i, line := i, line
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err //nolint:wrapcheck // context error reported below
			}
			results[i] = expression.Evaluate(gctx, line)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluation interrupted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("evaluation interrupted: %w", err)
	}
	return results, nil
}

func (p *Processor) record(ctx context.Context, results []expression.Result) {
	if p.recorder == nil {
		return
	}

	evaluations := make([]storage.Evaluation, len(results))
	for i := range results {
		evaluations[i] = storage.Evaluation{
			Input:  results[i].Line,
			Output: results[i].Text,
			Failed: results[i].Failed(),
		}
	}

	if err := p.recorder.Record(ctx, p.runID, evaluations); err != nil {
		logging.Get(ctx).Warn().Err(err).Msg("Failed to record history")
	}
}

func (p *Processor) say(message string) {
	if p.console == nil {
		return
	}
	_, _ = fmt.Fprintln(p.console, message)
}

// SplitLines splits file content on newlines and trims every line. A trailing
// newline yields a final empty line.
func SplitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
