// Package wm defines the vocabulary shared between the shift decision code and
// the window manager transports: directions, error kinds and the Client
// capability.
package wm

import "context"

// Client is everything the shift logic needs from the window manager.
// Implementations block until the window manager has answered.
type Client interface {
	FocusedFrameClientCount(ctx context.Context) (int, error)
	FocusedClientIndex(ctx context.Context) (int, error)
	// FocusedFrameIndexPath returns the raw index path, one byte per level,
	// each 0 or 1.
	FocusedFrameIndexPath(ctx context.Context) ([]uint8, error)
	LayoutDump(ctx context.Context) (string, error)
	FocusedFrameGeometry(ctx context.Context) (string, error)
	FocusedClientGeometry(ctx context.Context) (string, error)
	FocusedFrameAlgorithm(ctx context.Context) (string, error)
	MonitorExists(ctx context.Context, dir Direction) (bool, error)

	CreateSplit(ctx context.Context, path []uint8, dir Direction, ratio float64) error
	ShiftFocusedWindow(ctx context.Context, dir Direction, frameOnly bool) error
	ShiftFocusedWindowRemoveFrame(ctx context.Context, dir Direction, frameOnly bool) error
}
