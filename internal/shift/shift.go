package shift

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/1broseidon/herbst3/internal/geometry"
	"github.com/1broseidon/herbst3/internal/layout"
	"github.com/1broseidon/herbst3/internal/wm"
)

// DefaultSplitRatio is the fraction used when a new split is created.
const DefaultSplitRatio = 0.5

// Plan is the decision for one shift, derived from a fresh snapshot of the
// window manager state.
type Plan struct {
	Direction   wm.Direction
	FrameOnly   bool
	ClientCount int
	ClientIndex int

	// Local is set when the window moves inside its own frame. Path and Stack
	// are left empty and Action is ActionNone in that case.
	Local  bool
	Path   layout.Path
	Stack  layout.Stack
	Action SplitAction
}

// RemovesFrame reports whether the final move leaves the source frame empty.
func (p *Plan) RemovesFrame() bool {
	return !p.Local && p.ClientCount == 1
}

func (p *Plan) String() string {
	if p.Local {
		return fmt.Sprintf("shift %s within frame", p.Direction)
	}
	return fmt.Sprintf("shift %s: index %q stack %s: %s", p.Direction, p.Path.String(), p.Stack, p.Action)
}

// Shifter moves the focused window of a window manager.
type Shifter struct {
	client     wm.Client
	logger     *slog.Logger
	SplitRatio float64
}

// New creates a Shifter. A nil logger discards all output.
func New(client wm.Client, logger *slog.Logger) *Shifter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Shifter{
		client:     client,
		logger:     logger,
		SplitRatio: DefaultSplitRatio,
	}
}

// Shift plans and performs the move of the focused window in dir. With
// frameOnly the window is moved at frame level even if it could move inside
// its frame. A failure after a split was created leaves the split in place.
func (s *Shifter) Shift(ctx context.Context, dir wm.Direction, frameOnly bool) (*Plan, error) {
	plan, err := s.Plan(ctx, dir, frameOnly)
	if err != nil {
		return nil, err
	}
	if err := s.Execute(ctx, plan); err != nil {
		return plan, err
	}
	return plan, nil
}

// Plan runs every query needed to decide how to shift, without changing
// anything.
func (s *Shifter) Plan(ctx context.Context, dir wm.Direction, frameOnly bool) (*Plan, error) {
	clients, err := s.client.FocusedFrameClientCount(ctx)
	if err != nil {
		return nil, err
	}
	if clients == 0 {
		return nil, wm.ErrEmptyFrame
	}

	index, err := s.client.FocusedClientIndex(ctx)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Direction:   dir,
		FrameOnly:   frameOnly,
		ClientCount: clients,
		ClientIndex: index,
	}

	if !frameOnly {
		local, err := s.canMoveWithinFrame(ctx, dir, clients, index)
		if err != nil {
			return nil, err
		}
		if local {
			s.logger.Debug("can be shifted within focused frame", "direction", dir, "clients", clients, "index", index)
			plan.Local = true
			return plan, nil
		}
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	plan.Path = snap.Path
	plan.Stack = snap.Stack
	s.logger.Debug("layout stack", "index", plan.Path.String(), "stack", plan.Stack.String())

	plan.Action = FindSplit(dir, clients, plan.Path, plan.Stack)
	s.logger.Debug("split decision", "action", plan.Action.String())

	if plan.Action.Kind == ActionMoveAcrossMonitor {
		exists, err := s.client.MonitorExists(ctx, dir)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w %s", wm.ErrNoMonitorInDirection, dir)
		}
	}

	return plan, nil
}

// Snapshot is the focused frame's place in the frame tree.
type Snapshot struct {
	Path  layout.Path
	Stack layout.Stack
	Frame *layout.Node
}

// Snapshot reads the focused frame index and the layout dump and resolves the
// layout stack along that index.
func (s *Shifter) Snapshot(ctx context.Context) (*Snapshot, error) {
	bits, err := s.client.FocusedFrameIndexPath(ctx)
	if err != nil {
		return nil, err
	}
	path := layout.Path(bits)
	if !path.Valid() {
		return nil, fmt.Errorf("%w: frame index %v contains a bit other than 0 or 1", wm.ErrMalformedLayoutDump, bits)
	}

	dump, err := s.client.LayoutDump(ctx)
	if err != nil {
		return nil, err
	}
	tree, err := layout.Parse(dump)
	if err != nil {
		return nil, err
	}
	stack, err := layout.ResolveStack(tree, path)
	if err != nil {
		return nil, err
	}
	frame, err := layout.Frame(tree, path)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Path: path, Stack: stack, Frame: frame}, nil
}

// Execute issues the commands for a plan produced by Plan.
func (s *Shifter) Execute(ctx context.Context, plan *Plan) error {
	if plan.Local {
		return s.client.ShiftFocusedWindow(ctx, plan.Direction, false)
	}

	switch plan.Action.Kind {
	case ActionNone:
		return fmt.Errorf("shift %s: plan has neither a local move nor a frame action", plan.Direction)
	case ActionSplit:
		if err := s.client.CreateSplit(ctx, plan.Action.Prefix, plan.Direction, s.SplitRatio); err != nil {
			return err
		}
	case ActionMoveWithinFrame:
		// The existing split already has a frame on the target side.
	case ActionMoveAcrossMonitor:
		// Plan has already checked for a monitor in this direction.
	}

	if plan.RemovesFrame() {
		return s.client.ShiftFocusedWindowRemoveFrame(ctx, plan.Direction, plan.FrameOnly)
	}
	return s.client.ShiftFocusedWindow(ctx, plan.Direction, plan.FrameOnly)
}

func (s *Shifter) canMoveWithinFrame(ctx context.Context, dir wm.Direction, clients, index int) (bool, error) {
	name, err := s.client.FocusedFrameAlgorithm(ctx)
	if err != nil {
		return false, err
	}
	algorithm, err := layout.ParseType(name)
	if err != nil {
		return false, fmt.Errorf("%w: frame algorithm: %v", wm.ErrTransport, err)
	}
	if algorithm == layout.Max {
		return CanMoveWithinFrame(dir, clients, index, algorithm, geometry.Geometry{}, geometry.Geometry{}), nil
	}

	frameText, err := s.client.FocusedFrameGeometry(ctx)
	if err != nil {
		return false, err
	}
	frame, err := geometry.Parse(frameText)
	if err != nil {
		return false, fmt.Errorf("frame geometry: %w", err)
	}
	clientText, err := s.client.FocusedClientGeometry(ctx)
	if err != nil {
		return false, err
	}
	client, err := geometry.Parse(clientText)
	if err != nil {
		return false, fmt.Errorf("client geometry: %w", err)
	}
	return CanMoveWithinFrame(dir, clients, index, algorithm, frame, client), nil
}
