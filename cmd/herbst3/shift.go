package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/1broseidon/herbst3/internal/herbst"
	"github.com/1broseidon/herbst3/internal/wm"
)

func newShiftCmd(a *app) *cobra.Command {
	var frame, dryRun bool

	cmd := &cobra.Command{
		Use:   "shift <left|right|up|down>",
		Short: "Move the focused window one step in a direction",
		Long: `Move the focused window one step in a direction.

The window first moves inside its own frame when the frame's layout allows
it. Otherwise it moves to the neighbouring frame, and a new frame is split
off when there is none on that side. A frame left empty is removed.`,
		Example:   "  herbst3 shift left\n  herbst3 shift -f down\n  herbst3 shift --dry-run right",
		Args:      usageArgs(cobra.ExactArgs(1)),
		ValidArgs: directionNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := wm.ParseDirection(args[0])
			if err != nil {
				return &usageError{err: err}
			}

			runner, release, err := a.dial(a.cfg)
			if err != nil {
				return err
			}
			defer release()

			if !dryRun {
				plan, err := a.shifter(runner).Shift(cmd.Context(), dir, frame)
				if err != nil {
					return err
				}
				a.logger.Debug("shifted", "plan", plan.String())
				return nil
			}

			rec := &herbst.Recorder{Runner: runner}
			sh := a.shifter(rec)
			plan, err := sh.Plan(cmd.Context(), dir, frame)
			if err != nil {
				return err
			}
			if err := sh.Execute(cmd.Context(), plan); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "# %s\n", plan)
			for _, c := range rec.Commands {
				fmt.Fprintln(a.stdout, commandLine(c))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&frame, "frame", "f", false, "move at frame level, even if the window could move inside its frame")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the herbstclient commands instead of running them")
	return cmd
}

func directionNames() []string {
	names := make([]string, len(wm.Directions))
	for i, d := range wm.Directions {
		names[i] = d.String()
	}
	return names
}

// commandLine renders args as a herbstclient invocation a shell would accept.
func commandLine(args []string) string {
	parts := []string{"herbstclient"}
	for _, arg := range args {
		parts = append(parts, shellQuote(arg))
	}
	return strings.Join(parts, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$|;&()<>*?`") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
