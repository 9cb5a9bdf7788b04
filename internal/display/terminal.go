package display

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const halfBlock = '▀'

// Terminal draws frames into a terminal, two pixel rows per text row: the
// upper pixel is the glyph's foreground, the lower its background.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}

	quit   bool
	closed bool
}

// NewTerminal takes over the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewTerminal] failed to create screen")
	}
	return newTerminal(screen)
}

func newTerminal(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewTerminal] failed to initialize screen")
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 16),
		done:   make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

// pump forwards screen events until the screen is finalized.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *Terminal) drain() {
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					t.quit = true
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return
		}
	}
}

// IsOpen reports false once Close has been called.
func (t *Terminal) IsOpen() bool {
	t.drain()
	return !t.closed
}

// QuitPressed reports whether Esc, q or Ctrl-C has been received.
func (t *Terminal) QuitPressed() bool {
	t.drain()
	return t.quit
}

// Present draws the frame clipped to the terminal size.
func (t *Terminal) Present(pixels []uint32, width, height int) error {
	if t.closed {
		return errors.New("[Present] terminal closed")
	}
	if err := checkFrame(pixels, width, height); err != nil {
		return err
	}
	cols, rows := t.screen.Size()
	for row := 0; row < rows && 2*row < height; row++ {
		top := pixels[2*row*width:]
		var bottom []uint32
		if 2*row+1 < height {
			bottom = pixels[(2*row+1)*width:]
		}
		for x := 0; x < cols && x < width; x++ {
			style := tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(top[x] & 0xFFFFFF)))
			if bottom != nil {
				style = style.Background(tcell.NewHexColor(int32(bottom[x] & 0xFFFFFF)))
			}
			t.screen.SetContent(x, row, halfBlock, nil, style)
		}
	}
	t.screen.Show()
	return nil
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() {
	if t.closed {
		return
	}
	t.closed = true
	close(t.done)
	t.screen.Fini()
}
