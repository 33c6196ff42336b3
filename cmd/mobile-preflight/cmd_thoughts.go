package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vertti/mobile-preflight/pkg/check"
	"github.com/vertti/mobile-preflight/pkg/output"
	"github.com/vertti/mobile-preflight/pkg/thought"
)

var thoughtsValidate bool

var thoughtsCmd = &cobra.Command{
	Use:   "thoughts [name]",
	Short: "List, print or validate the sequential-thinking example traces",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runThoughtsCmd,
}

func init() {
	thoughtsCmd.Flags().BoolVar(&thoughtsValidate, "validate", false, "validate traces against the numbering and branching convention")
	rootCmd.AddCommand(thoughtsCmd)
}

func runThoughtsCmd(cmd *cobra.Command, args []string) error {
	traces, err := thought.Examples()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		t, err := thought.Lookup(args[0])
		if err != nil {
			return err
		}
		traces = []thought.Trace{t}
	}

	w := cmd.OutOrStdout()
	switch {
	case thoughtsValidate:
		return validateTraces(w, traces)
	case len(args) > 0:
		printTrace(w, traces[0])
	default:
		for _, t := range traces {
			fmt.Fprintf(w, "%-20s %s\n", t.Name, t.Title)
		}
	}
	return nil
}

func validateTraces(w io.Writer, traces []thought.Trace) error {
	rep := output.NewTextReporter(w, false)
	var failed bool
	for _, t := range traces {
		err := t.Validate()
		if err == nil {
			rep.Result(check.New(t.Name))
			continue
		}
		failed = true
		result := check.Result{Name: t.Name, Status: check.StatusFail, Err: err}
		for _, line := range strings.Split(err.Error(), "\n") {
			result.AddDetail(line)
		}
		rep.Result(result)
	}
	if failed {
		return errors.New("trace validation failed")
	}
	return nil
}

func printTrace(w io.Writer, t thought.Trace) {
	fmt.Fprintln(w, t.Title)
	fmt.Fprintf(w, "Pattern:  %s\n", t.Pattern)
	fmt.Fprintf(w, "Use when: %s\n", t.UseWhen)

	for _, th := range t.Thoughts {
		fmt.Fprintf(w, "\n%s\n", th.Heading())
		for _, line := range strings.Split(th.Thought, "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
		for _, a := range t.ActionsAfter(th.ThoughtNumber) {
			fmt.Fprintf(w, "\n  > %s\n    = %s\n", a.Action, a.Result)
		}
	}

	if len(t.KeyPatterns) > 0 {
		fmt.Fprintln(w, "\nKey patterns:")
		for i, p := range t.KeyPatterns {
			fmt.Fprintf(w, "  %d. %s\n", i+1, p)
		}
	}
}
