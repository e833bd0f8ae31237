package main

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/gdamore/tcell/v2"
	anchor "github.com/grindlemire/go-anchor"
	"github.com/grindlemire/go-anchor/internal/debug"
	"github.com/grindlemire/go-anchor/pkg/geom"
	"github.com/grindlemire/go-anchor/pkg/scene"
	"github.com/mattn/go-runewidth"
	"golang.org/x/sync/errgroup"
)

const (
	demoItems   = 30
	tooltipText = "anchored tooltip"
)

var (
	styleBox     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleItem    = tcell.StyleDefault
	styleTrigger = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	stylePopup   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

// demo is the interactive terminal demo: a scrollable list whose
// highlighted item anchors a tooltip.
type demo struct {
	screen tcell.Screen

	root    *scene.Node
	list    *scene.Node
	items   []*scene.Node
	trigger *scene.Node
	popup   *scene.Node

	frames   *anchor.TickerFrames
	watchers []anchor.Watcher
	pos      *anchor.Positioner

	side   anchor.Side
	align  anchor.Alignment
	flip   bool
	sticky bool
	hide   bool

	eventQueue chan func()
	stopCh     chan struct{}
	stopOnce   sync.Once
	dirty      bool
}

// runDemo implements the demo subcommand.
func runDemo(args []string) error {
	fps := 60
	for i := 0; i < len(args); i++ {
		if args[i] == "--fps" && i+1 < len(args) {
			n, err := strconv.Atoi(args[i+1])
			if err != nil {
				return fmt.Errorf("invalid --fps: %w", err)
			}
			fps = n
			i++
		}
	}

	frames, err := anchor.NewTickerFrames(anchor.WithFrameRate(fps))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	d := newDemo(screen, frames)
	if err := d.rebuild(); err != nil {
		screen.Fini()
		return err
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(d.pump)
	g.Go(func() error { return d.loop(ctx) })
	return g.Wait()
}

func newDemo(screen tcell.Screen, frames *anchor.TickerFrames) *demo {
	w, h := screen.Size()
	d := &demo{
		screen:     screen,
		frames:     frames,
		watchers:   []anchor.Watcher{frames},
		side:       anchor.SideBottom,
		align:      anchor.AlignCenter,
		flip:       true,
		eventQueue: make(chan func(), 256),
		stopCh:     make(chan struct{}),
		dirty:      true,
	}

	d.root = scene.NewRoot(float64(w), float64(h))
	d.list = scene.New(scene.WithName("list"), scene.WithClip())
	d.root.AddChild(d.list)
	for i := range demoItems {
		item := scene.Label(fmt.Sprintf("item %02d", i), scene.WithRect(1, float64(i), 0, 0))
		d.items = append(d.items, item)
		d.list.AddChild(item)
	}
	d.trigger = d.items[demoItems/2]

	d.popup = scene.New(scene.WithName("tooltip"), scene.WithRect(0, 0, float64(runewidth.StringWidth(tooltipText)+2), 3))
	d.root.AddChild(d.popup)

	d.layout()
	return d
}

// layout centers the list box in the root.
func (d *demo) layout() {
	r := d.root.Rect()
	lw, lh := 20.0, min(12.0, max(r.Height-4, 3))
	d.list.SetRect(geom.NewRect(math.Floor((r.Width-lw)/2), math.Floor((r.Height-lh)/2), lw, lh))
}

// rebuild replaces the positioner with one built from the current toggles.
func (d *demo) rebuild() error {
	if d.pos != nil {
		d.pos.Unmount()
	}
	pos, err := anchor.NewPositioner(d.popup,
		anchor.WithAnchor(anchor.ElementAnchor(d.trigger)),
		anchor.WithViewport(d.root),
		anchor.WithSide(d.side),
		anchor.WithAlignment(d.align),
		anchor.WithCollisionPadding(1),
		anchor.WithAllowAxisFlip(d.flip),
		anchor.WithSticky(d.sticky),
		anchor.WithHideWhenDetached(d.hide),
		anchor.WithArrowSize(geom.Size{Width: 1, Height: 1}),
		anchor.WithArrowPadding(1),
		anchor.WithPositionMethod(anchor.PositionFixed),
		anchor.WithFrames(d.frames),
		anchor.WithOnChange(func(anchor.Result) { d.dirty = true }),
	)
	if err != nil {
		return err
	}
	d.pos = pos
	d.pos.Mount()
	d.dirty = true
	return nil
}

// pump forwards terminal events onto the event queue. It returns once the
// screen is finalized.
func (d *demo) pump() error {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case d.eventQueue <- func() { d.handle(ev) }:
		case <-d.stopCh:
			return nil
		}
	}
}

// loop runs queued events and redraws when something changed.
func (d *demo) loop(ctx context.Context) error {
	defer d.screen.Fini()
	defer func() { d.pos.Unmount() }()

	for _, w := range d.watchers {
		w.Start(d.eventQueue, d.stopCh)
	}

	for {
		if d.dirty {
			d.draw()
			d.dirty = false
		}
		select {
		case fn := <-d.eventQueue:
			fn()
		case <-d.stopCh:
			return nil
		case <-ctx.Done():
			d.stop()
			return ctx.Err()
		}
	}
}

func (d *demo) stop() {
	d.stopOnce.Do(func() { close(d.stopCh) })
}

func (d *demo) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			d.stop()
		case tcell.KeyUp:
			d.list.ScrollBy(0, -1)
		case tcell.KeyDown:
			d.list.ScrollBy(0, 1)
		case tcell.KeyLeft:
			d.list.MoveBy(-1, 0)
		case tcell.KeyRight:
			d.list.MoveBy(1, 0)
		case tcell.KeyRune:
			d.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		w, h := d.screen.Size()
		d.root.Resize(float64(w), float64(h))
		d.layout()
		d.screen.Sync()
		d.dirty = true
	}
}

func (d *demo) handleRune(r rune) {
	switch r {
	case 'q':
		d.stop()
		return
	case 's':
		d.side = (d.side + 1) % (anchor.SideLeft + 1)
	case 'a':
		d.align = (d.align + 1) % (anchor.AlignEnd + 1)
	case 'f':
		d.flip = !d.flip
	case 't':
		d.sticky = !d.sticky
	case 'h':
		d.hide = !d.hide
	default:
		return
	}
	if err := d.rebuild(); err != nil {
		debug.Log("demo: rebuild failed: %v", err)
	}
}

func (d *demo) draw() {
	d.screen.Clear()

	box := d.list.BoundingRect()
	d.drawFrame(box, styleBox, tcell.StyleDefault)
	for _, item := range d.items {
		r := item.BoundingRect()
		if !box.ContainsRect(r) {
			continue
		}
		style := styleItem
		if item == d.trigger {
			style = styleTrigger
		}
		d.drawText(cell(r.X), cell(r.Y), item.Name(), style)
	}

	res := d.pos.Result()
	if res.IsPositioned && !res.Hidden {
		d.drawPopup(res)
	}

	_, h := d.screen.Size()
	status := fmt.Sprintf("side=%s align=%s x=%s y=%s flip=%v sticky=%v hide=%v [%s]  s/a/f/t/h toggle, arrows move, q quit",
		res.Side, res.Alignment, num(res.X), num(res.Y), d.flip, d.sticky, d.hide, res.Degraded)
	d.drawText(0, h-1, status, styleStatus)

	d.screen.Show()
}

func (d *demo) drawPopup(res anchor.Result) {
	r := geom.NewRect(res.X, res.Y, res.Popup.Width, res.Popup.Height)
	d.drawFrame(r, stylePopup, stylePopup)
	d.drawText(cell(r.X)+1, cell(r.Y)+1, tooltipText, stylePopup)

	if res.Side == anchor.SideNone {
		return
	}
	x, y := cell(r.X), cell(r.Y)
	off := cell(res.Arrow.Offset)
	var glyph rune
	switch res.Arrow.StaticSide {
	case anchor.SideTop:
		x, glyph = x+off, '▲'
	case anchor.SideBottom:
		x, y, glyph = x+off, y+cell(r.Height)-1, '▼'
	case anchor.SideLeft:
		y, glyph = y+off, '◀'
	case anchor.SideRight:
		x, y, glyph = x+cell(r.Width)-1, y+off, '▶'
	}
	d.screen.SetContent(x, y, glyph, nil, stylePopup)
}

// drawFrame draws a box border and fills its interior.
func (d *demo) drawFrame(r geom.Rect, border, fill tcell.Style) {
	x0, y0 := cell(r.X), cell(r.Y)
	x1, y1 := x0+cell(r.Width)-1, y0+cell(r.Height)-1
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			ch, style := ' ', fill
			switch {
			case (y == y0 || y == y1) && (x == x0 || x == x1):
				ch, style = '+', border
			case y == y0 || y == y1:
				ch, style = '-', border
			case x == x0 || x == x1:
				ch, style = '|', border
			}
			d.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (d *demo) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		d.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func cell(v float64) int {
	return int(math.Round(v))
}
