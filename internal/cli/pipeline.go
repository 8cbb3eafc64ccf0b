package cli

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lgosselin/orthographe/internal/ortho"
	"github.com/lgosselin/orthographe/internal/phoneme"
	"github.com/lgosselin/orthographe/internal/syllable"
)

// pipelineOptions holds the flags shared by every command that runs the
// transcription pipeline.
type pipelineOptions struct {
	KeepStress  bool
	GlideVelar  bool
	Seed        uint64
	ClassesFile string
	TableFile   string
	SyllableSep string
	PhonemeSep  string
}

// register adds the pipeline flags to a command. Spelling-only flags are
// skipped for commands that never transduce.
func (o *pipelineOptions) register(cmd *cobra.Command, spelling bool) {
	cmd.Flags().BoolVar(&o.KeepStress, "keep-stress", false, "keep stress marks in syllabified output")
	cmd.Flags().BoolVar(&o.GlideVelar, "kw", false, "keep velar+glide onset clusters together")
	cmd.Flags().StringVar(&o.ClassesFile, "classes", "", "YAML file overriding the symbol classes")
	cmd.Flags().StringVar(&o.SyllableSep, "syllable-sep", syllable.DefaultSyllableSep, "separator between syllables")
	cmd.Flags().StringVar(&o.PhonemeSep, "phoneme-sep", "", "separator between phonemes within a syllable")
	if spelling {
		cmd.Flags().Uint64Var(&o.Seed, "seed", 0, "seed for randomized spelling choices (0 = draw fresh)")
		cmd.Flags().StringVar(&o.TableFile, "table", "", "YAML file replacing the built-in correspondence table")
	}
}

// WordResult is the per-word payload of syllabify, spell and lexicon add.
type WordResult struct {
	IPA       string `json:"ipa"`
	Syllables string `json:"syllables"`
	Spelling  string `json:"spelling,omitempty"`
}

// pipeline wires a classifier, syllabifier and transducer from one set of
// pipeline flags.
type pipeline struct {
	opts        *pipelineOptions
	syllabifier *syllable.Syllabifier
	transducer  *ortho.Transducer
}

func newPipeline(o *pipelineOptions) (*pipeline, error) {
	classes := phoneme.DefaultClasses()
	if o.ClassesFile != "" {
		var err error
		classes, err = phoneme.LoadClasses(o.ClassesFile)
		if err != nil {
			return nil, err
		}
	}

	var sylOpts []syllable.Option
	if o.GlideVelar {
		sylOpts = append(sylOpts, syllable.WithGlideVelarRetention())
	}

	rules := ortho.NewRules(classes)
	table := ortho.BuildFrenchTable(rules)
	if o.TableFile != "" {
		cfg, err := ortho.LoadTableConfig(o.TableFile)
		if err != nil {
			return nil, err
		}
		table, err = cfg.Build(rules)
		if err != nil {
			return nil, err
		}
	}

	var orthoOpts []ortho.Option
	if o.Seed != 0 {
		orthoOpts = append(orthoOpts, ortho.WithRand(rand.New(rand.NewPCG(o.Seed, o.Seed))))
	}

	return &pipeline{
		opts:        o,
		syllabifier: syllable.New(phoneme.NewClassifier(classes), sylOpts...),
		transducer:  ortho.New(table, orthoOpts...),
	}, nil
}

// syllabify runs segmentation and syllabification for one word.
func (p *pipeline) syllabify(ipa string) (WordResult, error) {
	phonemes, err := phoneme.Segment(ipa, p.opts.KeepStress)
	if err != nil {
		return WordResult{}, err
	}
	word := p.syllabifier.Syllabify(phonemes)
	return WordResult{
		IPA:       ipa,
		Syllables: word.Format(p.opts.SyllableSep, p.opts.PhonemeSep),
	}, nil
}

// spell runs the full pipeline for one word. Stress marks never reach the
// transducer; the table has no keys for them.
func (p *pipeline) spell(ipa string) (WordResult, error) {
	res, err := p.syllabify(ipa)
	if err != nil {
		return WordResult{}, err
	}

	spelling, err := p.transducer.Transduce(phoneme.StripStress(phoneme.Normalize(ipa)))
	if err != nil {
		return WordResult{}, err
	}
	res.Spelling = spelling
	return res, nil
}

// collectWords expands word arguments; a "-" argument reads further words
// line-wise from stdin, skipping blank lines.
func collectWords(args []string, stdin io.Reader) ([]string, error) {
	var out []string
	for _, a := range args {
		if a != "-" {
			out = append(out, a)
			continue
		}
		sc := bufio.NewScanner(stdin)
		for sc.Scan() {
			if w := strings.TrimSpace(sc.Text()); w != "" {
				out = append(out, w)
			}
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	}
	return out, nil
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// configError reports a pipeline construction failure. Bad class or table
// files are command errors (exit code 2).
func configError(f *OutputFormatter, err error) error {
	_ = f.Error(ErrCodeConfig, err.Error(), nil)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", ErrCodeConfig, err))
}

// inputError reports a word the pipeline rejected. Rejections are input
// failures (exit code 1), tagged with the matching error code.
func inputError(f *OutputFormatter, err error) error {
	code := ErrCodeGeneric
	switch {
	case phoneme.IsSegmentationError(err):
		code = ErrCodeSegmentation
	case ortho.IsUncoveredError(err):
		code = ErrCodeUncovered
	}
	_ = f.Error(code, err.Error(), nil)
	return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", code, err))
}

// outputResults renders one line per word in text mode and the full result
// list in JSON mode.
func outputResults(f *OutputFormatter, results []WordResult, line func(WordResult) string) error {
	if f.Format == "json" {
		return f.Success(results)
	}
	for _, r := range results {
		fmt.Fprintln(f.Writer, line(r))
	}
	return nil
}
