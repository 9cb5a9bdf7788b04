//go:build !ebiten

package display

import "github.com/pkg/errors"

// ErrNoWindow is returned by NewWindow in builds without the ebiten tag.
var ErrNoWindow = errors.New("window display requires building with the 'ebiten' tag")

// Window is a placeholder that satisfies the API expected by the GUI build.
type Window struct{}

// NewWindow always fails in the headless build.
func NewWindow(string, int, int, int) (*Window, error) {
	return nil, ErrNoWindow
}

// IsOpen always reports false in the headless build.
func (win *Window) IsOpen() bool { return false }

// QuitPressed always reports true in the headless build.
func (win *Window) QuitPressed() bool { return true }

// Present always reports that the GUI build tag is missing.
func (win *Window) Present([]uint32, int, int) error { return ErrNoWindow }

// Draw is a no-op placeholder to satisfy the interface shape.
func (win *Window) Draw(any) {}

// Layout returns zeros in the headless build.
func (win *Window) Layout() (int, int) { return 0, 0 }
