// Package term presents a simulation in a terminal. Each cell is two
// character columns wide so the grid keeps a roughly square aspect.
package term

import (
	"context"
	"time"

	"torus-life/internal/core"

	"github.com/gdamore/tcell/v2"
)

// Painter draws cells onto a tcell screen as coloured blanks.
type Painter struct {
	screen tcell.Screen
}

// NewPainter wraps an initialised screen.
func NewPainter(s tcell.Screen) *Painter {
	return &Painter{screen: s}
}

// Style returns the style used for a cell of the given grey intensity.
func Style(intensity uint8) tcell.Style {
	v := int32(intensity)
	return tcell.StyleDefault.Background(tcell.NewRGBColor(v, v, v))
}

// DrawCell fills the two columns of cell (x, y). Nothing is visible until
// the screen is shown.
func (p *Painter) DrawCell(x, y int, intensity uint8) {
	style := Style(intensity)
	p.screen.SetContent(x*2, y, ' ', nil, style)
	p.screen.SetContent(x*2+1, y, ' ', nil, style)
}

// Load repaints every cell from per-cell intensities.
func (p *Painter) Load(cells []uint8, w int) {
	for i, v := range cells {
		p.DrawCell(i%w, i/w, v)
	}
}

// Runner drives a simulation on a terminal screen.
type Runner struct {
	Screen   tcell.Screen
	Sim      core.Sim
	Interval time.Duration
	Seed     int64

	painter  *Painter
	drawable bool
	paused   bool
}

// Run attaches the painter, then advances the simulation once per Interval
// until ctx is cancelled or the user quits with q, Esc or Ctrl-C. Space
// pauses, n steps once, r resets with Seed and s reseeds from the clock.
func (r *Runner) Run(ctx context.Context) error {
	if r.Interval <= 0 {
		r.Interval = 50 * time.Millisecond
	}
	r.painter = NewPainter(r.Screen)
	if d, ok := r.Sim.(core.Drawable); ok {
		r.drawable = true
		d.Attach(r.painter)
	} else {
		r.repaint()
	}
	r.Screen.Show()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := r.Screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if r.handle(ev) {
				return nil
			}
			r.Screen.Show()
		case <-ticker.C:
			if r.paused {
				continue
			}
			r.step()
			r.Screen.Show()
		}
	}
}

// handle applies a terminal event and reports whether the runner should
// stop.
func (r *Runner) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		r.Screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				r.paused = !r.paused
			case 'n':
				r.step()
			case 'r':
				r.reset(r.Seed)
			case 's':
				r.reset(time.Now().UnixNano())
			}
		}
	}
	return false
}

func (r *Runner) step() {
	r.Sim.Step()
	if !r.drawable {
		r.repaint()
	}
}

func (r *Runner) reset(seed int64) {
	r.Seed = seed
	r.Sim.Reset(seed)
	if !r.drawable {
		r.repaint()
	}
}

func (r *Runner) repaint() {
	r.painter.Load(r.Sim.Cells(), r.Sim.Size().W)
}
