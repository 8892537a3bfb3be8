package catch

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// Advancer moves the session to the next scene.
type Advancer interface {
	Advance() error
}

// Menu is the title scene. Confirm starts the game.
type Menu struct {
	title  string
	next   Advancer
	logger *log.Logger
}

// NewMenu creates the title scene. next is usually the owning sketch.
func NewMenu(title string, next Advancer, logger *log.Logger) *Menu {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Menu{title: title, next: next, logger: logger}
}

// Name identifies the scene in logs.
func (m *Menu) Name() string {
	return "menu"
}

// Draw renders the title and the start prompt centered on the canvas.
func (m *Menu) Draw(c core.Canvas) {
	c.Background(core.ColorBlack)

	cx := c.Width() / 2
	cy := c.Height() / 2

	c.TextAlign(core.AlignCenter)
	c.TextStyle(core.StyleBold)
	c.TextSize(32)
	c.Fill(core.ColorBrightYellow)
	c.Text(m.title, cx, cy-4)

	c.TextStyle(core.StyleNormal)
	c.TextSize(16)
	c.Fill(core.ColorWhite)
	c.Text("Press ENTER to start", cx, cy+2)

	c.Fill(core.ColorGray)
	c.Text("A/D move  SPACE jump  P pause", cx, cy+6)
}

// KeyPressed advances to the game on Confirm. A failed advance is logged
// and the menu stays active.
func (m *Menu) KeyPressed(ev core.KeyEvent) {
	if !ev.Is(core.KeyConfirm) {
		return
	}
	if err := m.next.Advance(); err != nil {
		m.logger.Warn("cannot start game", "err", err)
	}
}
