package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lgosselin/orthographe/internal/lexicon"
)

// NewLexiconCommand creates the lexicon command group.
func NewLexiconCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Record and review rendered words",
		Long: `Maintain a durable log of rendered words.

The same transcription may legitimately spell several ways; the lexicon
keeps every rendering so the attested spellings of a word stay
reviewable.`,
	}

	cmd.AddCommand(newLexiconAddCommand(rootOpts))
	cmd.AddCommand(newLexiconListCommand(rootOpts))
	cmd.AddCommand(newLexiconSpellingsCommand(rootOpts))

	return cmd
}

func newLexiconAddCommand(rootOpts *RootOptions) *cobra.Command {
	pOpts := &pipelineOptions{}
	var dbPath string

	cmd := &cobra.Command{
		Use:           "add <transcription>...",
		Short:         "Spell transcriptions and log the renderings",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLexiconAdd(rootOpts, pOpts, dbPath, cmd, args)
		},
	}

	pOpts.register(cmd, true)
	cmd.Flags().StringVar(&dbPath, "db", "", "lexicon database path (required)")
	cmd.MarkFlagRequired("db")
	return cmd
}

func runLexiconAdd(opts *RootOptions, pOpts *pipelineOptions, dbPath string, cmd *cobra.Command, args []string) error {
	formatter := newFormatter(opts, cmd)

	p, err := newPipeline(pOpts)
	if err != nil {
		return configError(formatter, err)
	}

	store, err := openStore(formatter, dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

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

		entry, err := store.Add(cmd.Context(), res.IPA, res.Syllables, res.Spelling)
		if err != nil {
			return storeError(formatter, err)
		}
		slog.Debug("logged rendering", "id", entry.ID, "ipa", entry.IPA, "spelling", entry.Spelling)
		results = append(results, res)
	}

	return outputResults(formatter, results, func(r WordResult) string {
		return fmt.Sprintf("%s\t%s\t%s", r.IPA, r.Syllables, r.Spelling)
	})
}

func newLexiconListCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		dbPath string
		ipa    string
		limit  int
	)

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List logged renderings, newest first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLexiconList(rootOpts, dbPath, ipa, limit, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "lexicon database path (required)")
	cmd.Flags().StringVar(&ipa, "ipa", "", "only renderings of this transcription")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of renderings (0 = all)")
	cmd.MarkFlagRequired("db")
	return cmd
}

// EntryResult is the JSON payload of lexicon list.
type EntryResult struct {
	ID        string `json:"id"`
	IPA       string `json:"ipa"`
	Syllables string `json:"syllables"`
	Spelling  string `json:"spelling"`
	CreatedAt string `json:"created_at"`
}

func runLexiconList(opts *RootOptions, dbPath, ipa string, limit int, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	store, err := openStore(formatter, dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(cmd.Context(), ipa, limit)
	if err != nil {
		return storeError(formatter, err)
	}

	if formatter.Format == "json" {
		results := make([]EntryResult, len(entries))
		for i, e := range entries {
			results[i] = EntryResult{
				ID:        e.ID,
				IPA:       e.IPA,
				Syllables: e.Syllables,
				Spelling:  e.Spelling,
				CreatedAt: e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
			}
		}
		return formatter.Success(results)
	}

	for _, e := range entries {
		fmt.Fprintf(formatter.Writer, "%s\t%s\t%s\t%s\n", e.ID, e.IPA, e.Syllables, e.Spelling)
	}
	return nil
}

func newLexiconSpellingsCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:           "spellings <transcription>",
		Short:         "List the distinct spellings logged for a transcription",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLexiconSpellings(rootOpts, dbPath, cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "lexicon database path (required)")
	cmd.MarkFlagRequired("db")
	return cmd
}

func runLexiconSpellings(opts *RootOptions, dbPath string, cmd *cobra.Command, ipa string) error {
	formatter := newFormatter(opts, cmd)

	store, err := openStore(formatter, dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	spellings, err := store.Spellings(cmd.Context(), ipa)
	if err != nil {
		return storeError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(spellings)
	}
	for _, s := range spellings {
		fmt.Fprintln(formatter.Writer, s)
	}
	return nil
}

func openStore(f *OutputFormatter, path string) (*lexicon.Store, error) {
	store, err := lexicon.Open(path)
	if err != nil {
		return nil, storeError(f, err)
	}
	return store, nil
}

func storeError(f *OutputFormatter, err error) error {
	_ = f.Error(ErrCodeStore, err.Error(), nil)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", ErrCodeStore, err))
}
