package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// NewSpellCommand creates the spell command.
func NewSpellCommand(rootOpts *RootOptions) *cobra.Command {
	pOpts := &pipelineOptions{}

	cmd := &cobra.Command{
		Use:   "spell <transcription>...",
		Short: "Render transcriptions as orthographic words",
		Long: `Render phonetic transcriptions in the historical orthography.

Each argument is one word; a "-" argument reads further words line-wise
from stdin. Output is one spelled word per line. Stress marks are
accepted and ignored for spelling.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpell(rootOpts, pOpts, cmd, args)
		},
	}

	pOpts.register(cmd, true)
	return cmd
}

func runSpell(opts *RootOptions, pOpts *pipelineOptions, cmd *cobra.Command, args []string) error {
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
		res, err := p.spell(w)
		if err != nil {
			return inputError(formatter, err)
		}
		slog.Debug("spelled", "ipa", w, "syllables", res.Syllables, "spelling", res.Spelling)
		results = append(results, res)
	}

	return outputResults(formatter, results, func(r WordResult) string {
		return r.Spelling
	})
}
