// Package x11 runs herbstluftwm commands over the window manager's X11 IPC
// protocol, without spawning herbstclient.
package x11

import (
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"
)

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window

	loopOnce sync.Once
}

// NewConnection connects to the X server on display. An empty display means
// $DISPLAY.
func NewConnection(display string) (*Connection, error) {
	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, err
	}

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// startEventLoop runs the xevent main loop in the background. Only the first
// call has an effect.
func (c *Connection) startEventLoop() {
	c.loopOnce.Do(func() {
		go xevent.Main(c.XUtil)
	})
}

// Close stops the event loop and disconnects from the X11 server
func (c *Connection) Close() {
	xevent.Quit(c.XUtil)
	c.XUtil.Conn().Close()
}
