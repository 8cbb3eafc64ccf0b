package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// NewSyllabifyCommand creates the syllabify command.
func NewSyllabifyCommand(rootOpts *RootOptions) *cobra.Command {
	pOpts := &pipelineOptions{}

	cmd := &cobra.Command{
		Use:   "syllabify <transcription>...",
		Short: "Split transcriptions into syllables",
		Long: `Split continuous phonetic transcriptions into syllables.

Each argument is one word; a "-" argument reads further words line-wise
from stdin. Output is one syllabified word per line.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSyllabify(rootOpts, pOpts, cmd, args)
		},
	}

	pOpts.register(cmd, false)
	return cmd
}

func runSyllabify(opts *RootOptions, pOpts *pipelineOptions, cmd *cobra.Command, args []string) error {
	formatter := newFormatter(opts, cmd)

	p, err := newPipeline(pOpts)
	if err != nil {
		return configError(formatter, err)
	}

	words, err := collectWords(args, cmd.InOrStdin())
	if err != nil {
		return configError(formatter, err)
	}

	results := make([]WordResult, 0, len(words))
	for _, w := range words {
		res, err := p.syllabify(w)
		if err != nil {
			return inputError(formatter, err)
		}
		slog.Debug("syllabified", "ipa", w, "syllables", res.Syllables)
		results = append(results, res)
	}

	return outputResults(formatter, results, func(r WordResult) string {
		return r.Syllables
	})
}
