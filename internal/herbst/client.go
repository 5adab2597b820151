package herbst

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/1broseidon/herbst3/internal/layout"
	"github.com/1broseidon/herbst3/internal/wm"
)

// Attributes are the herbstluftwm attribute paths read by Client.
type Attributes struct {
	ClientCount    string
	ClientIndex    string
	FrameIndex     string
	FrameGeometry  string
	ClientGeometry string
	FrameAlgorithm string
	WindowID       string
}

// DefaultAttributes returns the attribute paths of herbstluftwm 0.9.
func DefaultAttributes() Attributes {
	return Attributes{
		ClientCount:    "tags.focus.curframe_wcount",
		ClientIndex:    "tags.focus.curframe_windex",
		FrameIndex:     "clients.focus.parent_frame.index",
		FrameGeometry:  "tags.focus.tiling.focused_frame.content_geometry",
		ClientGeometry: "clients.focus.content_geometry",
		FrameAlgorithm: "tags.focus.tiling.focused_frame.algorithm",
		WindowID:       "clients.focus.winid",
	}
}

// Client implements wm.Client for herbstluftwm.
type Client struct {
	runner Runner
	attrs  Attributes
	logger *slog.Logger
}

var _ wm.Client = (*Client)(nil)

// NewClient creates a Client. Empty attribute paths fall back to the
// defaults; a nil logger discards output.
func NewClient(runner Runner, attrs Attributes, logger *slog.Logger) *Client {
	def := DefaultAttributes()
	fill := func(v *string, fallback string) {
		if strings.TrimSpace(*v) == "" {
			*v = fallback
		}
	}
	fill(&attrs.ClientCount, def.ClientCount)
	fill(&attrs.ClientIndex, def.ClientIndex)
	fill(&attrs.FrameIndex, def.FrameIndex)
	fill(&attrs.FrameGeometry, def.FrameGeometry)
	fill(&attrs.ClientGeometry, def.ClientGeometry)
	fill(&attrs.FrameAlgorithm, def.FrameAlgorithm)
	fill(&attrs.WindowID, def.WindowID)

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{runner: runner, attrs: attrs, logger: logger}
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	c.logger.Debug("herbstclient", "args", args)
	return c.runner.Run(ctx, args...)
}

func (c *Client) getAttr(ctx context.Context, path string) (string, error) {
	out, err := c.run(ctx, "get_attr", path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (c *Client) getInt(ctx context.Context, path string) (int, error) {
	out, err := c.getAttr(ctx, path)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(out)
	if err != nil {
		return 0, malformed([]string{"get_attr", path}, out, err)
	}
	return n, nil
}

func (c *Client) FocusedFrameClientCount(ctx context.Context) (int, error) {
	return c.getInt(ctx, c.attrs.ClientCount)
}

func (c *Client) FocusedClientIndex(ctx context.Context) (int, error) {
	return c.getInt(ctx, c.attrs.ClientIndex)
}

func (c *Client) FocusedFrameIndexPath(ctx context.Context) ([]uint8, error) {
	out, err := c.getAttr(ctx, c.attrs.FrameIndex)
	if err != nil {
		return nil, err
	}
	return layout.ParsePath(out), nil
}

func (c *Client) LayoutDump(ctx context.Context) (string, error) {
	return c.run(ctx, "dump")
}

func (c *Client) FocusedFrameGeometry(ctx context.Context) (string, error) {
	return c.getAttr(ctx, c.attrs.FrameGeometry)
}

func (c *Client) FocusedClientGeometry(ctx context.Context) (string, error) {
	return c.getAttr(ctx, c.attrs.ClientGeometry)
}

func (c *Client) FocusedFrameAlgorithm(ctx context.Context) (string, error) {
	return c.getAttr(ctx, c.attrs.FrameAlgorithm)
}

// MonitorExists reports whether a monitor lies next to the focused monitor in
// direction dir.
func (c *Client) MonitorExists(ctx context.Context, dir wm.Direction) (bool, error) {
	out, err := c.run(ctx, "list_monitors")
	if err != nil {
		return false, err
	}
	monitors, err := ParseMonitors(out)
	if err != nil {
		return false, malformed([]string{"list_monitors"}, out, err)
	}
	focused, ok := FocusedMonitor(monitors)
	if !ok {
		return false, malformed([]string{"list_monitors"}, out, fmt.Errorf("no focused monitor"))
	}
	for _, m := range monitors {
		if m.Index != focused.Index && focused.Geometry.Adjacent(m.Geometry, dir) {
			c.logger.Debug("found monitor", "direction", dir, "index", m.Index, "geometry", m.Geometry.String())
			return true, nil
		}
	}
	return false, nil
}

// CreateSplit splits the frame at path so that a new empty frame appears on
// the dir side of it.
func (c *Client) CreateSplit(ctx context.Context, path []uint8, dir wm.Direction, ratio float64) error {
	_, err := c.run(ctx, "split", alignment(dir), strconv.FormatFloat(ratio, 'f', -1, 64), layout.Path(path).String())
	return err
}

func (c *Client) ShiftFocusedWindow(ctx context.Context, dir wm.Direction, frameOnly bool) error {
	_, err := c.run(ctx, shiftArgs(dir, frameOnly)...)
	return err
}

// ShiftFocusedWindowRemoveFrame shifts the focused window and removes the
// frame it leaves behind, keeping the window focused.
func (c *Client) ShiftFocusedWindowRemoveFrame(ctx context.Context, dir wm.Direction, frameOnly bool) error {
	winid, err := c.getAttr(ctx, c.attrs.WindowID)
	if err != nil {
		return err
	}

	const sep = ","
	args := []string{"chain", sep}
	args = append(args, shiftArgs(dir, frameOnly)...)
	args = append(args, sep, "focus", "-e", dir.Opposite().String())
	args = append(args, sep, "remove")
	args = append(args, sep, "jumpto", winid)
	_, err = c.run(ctx, args...)
	return err
}

func shiftArgs(dir wm.Direction, frameOnly bool) []string {
	if frameOnly {
		return []string{"shift", "--level=frame", dir.String()}
	}
	return []string{"shift", dir.String()}
}

// alignment is the split alignment that places the new frame on the dir side.
func alignment(dir wm.Direction) string {
	switch dir {
	case wm.Up:
		return "top"
	case wm.Down:
		return "bottom"
	default:
		return dir.String()
	}
}

func malformed(args []string, out string, err error) error {
	return &wm.TransportError{
		Command: args,
		Err:     fmt.Errorf("malformed response %q: %w", out, err),
	}
}
