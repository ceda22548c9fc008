package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	envconf "github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/luckyComet55/whitebox-sim/internal/handler"
	"github.com/luckyComet55/whitebox-sim/internal/scenario"
)

var errScenarioFailed = errors.New("scenario failed")

type app struct {
	lookuper envconf.Lookuper
	handler  *handler.CommandHandler
}

func newRootCmd(lookuper envconf.Lookuper) *cobra.Command {
	a := &app{lookuper: lookuper}

	root := &cobra.Command{
		Use:           "whitebox",
		Short:         "Drive the state machine simulators and business rules",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfig(cmd.Context(), a.lookuper)
			if err != nil {
				return err
			}
			logger, err := configureLogger(c)
			if err != nil {
				return err
			}
			a.handler = newCommandHandler(c, logger)
			return nil
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "repl",
			Short: "Read commands from stdin, one per line",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.repl(cmd, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			},
		},
		&cobra.Command{
			Use:   "run <scenario.yaml>",
			Short: "Replay a scenario file and report each step",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(args[0], cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "rules",
			Short: "List the rules available to \"rules <name>\"",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(handler.RuleNames(), "\n"))
				return err
			},
		},
	)

	return root
}

func (a *app) repl(cmd *cobra.Command, in io.Reader, out, errOut io.Writer) error {
	ctx := cmd.Context()
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return nil
		}

		res, err := a.handler.Handle(line)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			continue
		}
		if res != "" {
			fmt.Fprintln(out, res)
		}
	}

	return scanner.Err()
}

func (a *app) run(path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := scenario.Load(f)
	if err != nil {
		return err
	}

	report := scenario.Run(s, a.handler)
	if err := scenario.WriteReport(out, report); err != nil {
		return err
	}
	if n := report.Failed(); n > 0 {
		return fmt.Errorf("%w: %d of %d steps", errScenarioFailed, n, len(report.Results))
	}
	return nil
}
