package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/1broseidon/herbst3/internal/shift"
)

func newStackCmd(a *app) *cobra.Command {
	var tree bool

	cmd := &cobra.Command{
		Use:   "stack",
		Short: "Show the focused frame index and the layouts above it",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, release, err := a.dial(a.cfg)
			if err != nil {
				return err
			}
			defer release()

			snap, err := a.shifter(runner).Snapshot(cmd.Context())
			if err != nil {
				return err
			}

			if a.isTerminal(a.stdout) {
				fmt.Fprintln(a.stdout, stackTable(snap))
			} else {
				fmt.Fprintf(a.stdout, "%s\t%s\n", snap.Path, snap.Stack)
			}
			if tree {
				fmt.Fprintln(a.stdout, snap.Frame)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&tree, "tree", false, "also print the focused frame in dump syntax")
	return cmd
}

func stackTable(snap *shift.Snapshot) string {
	rows := make([][]string, 0, len(snap.Stack))
	for depth, t := range snap.Stack {
		rows = append(rows, []string{
			strconv.Itoa(depth),
			snap.Path[:depth+1].String(),
			t.String(),
		})
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Depth", "Index", "Layout").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		String()
}
