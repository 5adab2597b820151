package x11

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/1broseidon/herbst3/internal/wm"
)

// herbstluftwm IPC names.
const (
	ipcClass      = "HERBST_IPC_CLASS"
	atomArgs      = "_HERBST_IPC_ARGS"
	atomOutput    = "_HERBST_IPC_OUTPUT"
	atomError     = "_HERBST_IPC_ERROR"
	atomExitState = "_HERBST_IPC_EXIT_STATUS"
)

// DefaultTimeout bounds a single command when the runner has no timeout.
const DefaultTimeout = 2 * time.Second

// Runner executes herbstluftwm commands the way herbstclient does: every
// command gets its own unmapped client window whose properties carry the
// arguments and the reply.
type Runner struct {
	conn    *Connection
	Timeout time.Duration

	mu sync.Mutex
}

// NewRunner creates a runner on an open connection.
func NewRunner(conn *Connection, timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{conn: conn, Timeout: timeout}
}

// Run implements herbst.Runner.
func (r *Runner) Run(ctx context.Context, args ...string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conn.startEventLoop()
	xu := r.conn.XUtil

	win, err := r.createClientWindow()
	if err != nil {
		return "", transportError(args, "", fmt.Errorf("create ipc window: %w", err))
	}
	defer func() {
		xevent.Detach(xu, win)
		xproto.DestroyWindow(xu.Conn(), win)
		xu.Sync()
	}()

	exitAtom, err := xprop.Atm(xu, atomExitState)
	if err != nil {
		return "", transportError(args, "", err)
	}

	done := make(chan struct{}, 1)
	xevent.PropertyNotifyFun(func(_ *xgbutil.XUtil, ev xevent.PropertyNotifyEvent) {
		if ev.Atom == exitAtom && ev.State == xproto.PropertyNewValue {
			select {
			case done <- struct{}{}:
			default:
			}
		}
	}).Connect(xu, win)

	if err := xprop.ChangeProp(xu, win, 8, atomArgs, "UTF8_STRING", encodeArgs(args)); err != nil {
		return "", transportError(args, "", fmt.Errorf("send arguments: %w", err))
	}
	xu.Sync()

	if err := waitForReply(ctx, done, r.Timeout); err != nil {
		return "", transportError(args, "", err)
	}
	return readReply(windowProps{xu: xu, win: win}, args)
}

// waitForReply blocks until done fires, the timeout elapses or ctx ends.
func waitForReply(ctx context.Context, done <-chan struct{}, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-done:
		return nil
	case <-timer.C:
		return fmt.Errorf("no reply from herbstluftwm within %v", timeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) createClientWindow() (xproto.Window, error) {
	xu := r.conn.XUtil
	conn := xu.Conn()

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return 0, err
	}

	// Never mapped; herbstluftwm only looks at its class and properties.
	err = xproto.CreateWindowChecked(
		conn,
		0, // depth (must be 0 for InputOnly)
		wid,
		r.conn.Root,
		0, 0, // x, y
		1, 1, // width, height
		0, // border_width
		xproto.WindowClassInputOnly,
		xproto.Visualid(0), // CopyFromParent
		xproto.CwEventMask,
		[]uint32{uint32(xproto.EventMaskPropertyChange)},
	).Check()
	if err != nil {
		return 0, err
	}

	if err := icccm.WmClassSet(xu, wid, &icccm.WmClass{Instance: ipcClass, Class: ipcClass}); err != nil {
		xproto.DestroyWindow(conn, wid)
		return 0, err
	}
	return wid, nil
}

// propertyReader reads properties off the IPC window.
type propertyReader interface {
	Num(name string) (uint, error)
	Str(name string) (string, error)
}

type windowProps struct {
	xu  *xgbutil.XUtil
	win xproto.Window
}

func (w windowProps) Num(name string) (uint, error) {
	return xprop.PropValNum(xprop.GetProperty(w.xu, w.win, name))
}

func (w windowProps) Str(name string) (string, error) {
	return xprop.PropValStr(xprop.GetProperty(w.xu, w.win, name))
}

func readReply(props propertyReader, args []string) (string, error) {
	status, err := props.Num(atomExitState)
	if err != nil {
		return "", transportError(args, "", fmt.Errorf("read exit status: %w", err))
	}
	// A command without output leaves the property unset.
	output, _ := props.Str(atomOutput)
	// Only herbstluftwm 0.9.2 and later report errors separately.
	errText, _ := props.Str(atomError)

	if code := int32(status); code != 0 {
		if errText == "" {
			errText = output
		}
		return "", transportError(args, strings.TrimSpace(errText), fmt.Errorf("exit status %d", code))
	}
	return output, nil
}

// encodeArgs lays out the argument vector as an X text list: UTF-8 strings
// separated by NUL bytes.
func encodeArgs(args []string) []byte {
	return []byte(strings.Join(args, "\x00"))
}

func transportError(args []string, stderr string, err error) error {
	return &wm.TransportError{Command: args, Stderr: stderr, Err: err}
}
