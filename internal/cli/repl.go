package cli

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

// NewReplCommand creates the repl command.
func NewReplCommand(rootOpts *RootOptions) *cobra.Command {
	pOpts := &pipelineOptions{}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Spell transcriptions interactively",
		Long: `Read transcriptions line by line and print the syllabified form
together with a spelling for each. Quit with ctrl-D or "quit".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(pOpts, cmd)
		},
	}

	pOpts.register(cmd, true)
	return cmd
}

func runRepl(pOpts *pipelineOptions, cmd *cobra.Command) error {
	p, err := newPipeline(pOpts)
	if err != nil {
		return NewExitError(ExitCommandError, err.Error())
	}

	rl, err := readline.New("ipa > ")
	if err != nil {
		return NewExitError(ExitCommandError, err.Error())
	}
	defer rl.Close()

	out := cmd.OutOrStdout()
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil { // io.EOF
			break
		}
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		if word == "quit" || word == "exit" {
			break
		}

		res, err := p.spell(word)
		if err != nil {
			fmt.Fprintf(rl.Stderr(), "error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", res.Syllables, res.Spelling)
	}

	return nil
}
