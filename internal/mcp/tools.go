package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/herbst3/internal/herbst"
	"github.com/1broseidon/herbst3/internal/layout"
	"github.com/1broseidon/herbst3/internal/shift"
	"github.com/1broseidon/herbst3/internal/wm"
)

func (s *Server) handleShift(ctx context.Context, _ *mcpsdk.CallToolRequest, args ShiftInput) (*mcpsdk.CallToolResult, ShiftOutput, error) {
	dir, err := wm.ParseDirection(args.Direction)
	if err != nil {
		return nil, ShiftOutput{}, err
	}

	rec := &herbst.Recorder{Runner: s.runner, Execute: !args.DryRun}
	sh := s.shifter(rec)

	plan, err := sh.Plan(ctx, dir, args.Frame)
	if err != nil {
		s.logger.Info("shift refused", "direction", dir, "error", err)
		return nil, ShiftOutput{}, err
	}
	if err := sh.Execute(ctx, plan); err != nil {
		return nil, ShiftOutput{}, fmt.Errorf("shift %s after %d command(s): %w", dir, len(rec.Commands), err)
	}

	out := ShiftOutput{
		Direction:    dir.String(),
		Action:       actionName(plan),
		Local:        plan.Local,
		Index:        plan.Path.String(),
		Stack:        stackNames(plan.Stack),
		RemovesFrame: plan.RemovesFrame(),
		DryRun:       args.DryRun,
		Commands:     rec.Commands,
	}
	if out.Commands == nil {
		out.Commands = [][]string{}
	}

	verb := "Shifted"
	if args.DryRun {
		verb = "Would shift"
	}
	lines := []string{fmt.Sprintf("%s focused window %s (%s).", verb, dir, out.Action)}
	for _, cmd := range rec.Commands {
		lines = append(lines, "herbstclient "+strings.Join(cmd, " "))
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: strings.Join(lines, "\n")},
		},
	}, out, nil
}

func (s *Server) handleLayoutStack(ctx context.Context, _ *mcpsdk.CallToolRequest, _ LayoutStackInput) (*mcpsdk.CallToolResult, LayoutStackOutput, error) {
	snap, err := s.shifter(s.runner).Snapshot(ctx)
	if err != nil {
		return nil, LayoutStackOutput{}, err
	}
	out := LayoutStackOutput{
		Index: snap.Path.String(),
		Stack: stackNames(snap.Stack),
		Frame: snap.Frame.String(),
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: fmt.Sprintf("index %q stack %s", out.Index, snap.Stack)},
		},
	}, out, nil
}

func actionName(plan *shift.Plan) string {
	if plan.Local {
		return "within-frame"
	}
	return plan.Action.String()
}

func stackNames(stack layout.Stack) []string {
	names := make([]string, len(stack))
	for i, t := range stack {
		names[i] = t.String()
	}
	return names
}
