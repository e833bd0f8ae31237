package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	anchor "github.com/grindlemire/go-anchor"
	"github.com/grindlemire/go-anchor/pkg/config"
	"github.com/grindlemire/go-anchor/pkg/scene"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const defaultTableWidth = 80

// runSolve implements the solve subcommand.
func runSolve(args []string) error {
	verbose := false
	only := ""
	var paths []string

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-v", "--verbose":
			verbose = true
		case "-s", "--scenario":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a scenario name", arg)
			}
			i++
			only = args[i]
		default:
			paths = append(paths, arg)
		}
	}

	if len(paths) == 0 {
		return fmt.Errorf("no scenario files given")
	}

	width := defaultTableWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	var rows []solveRow
	for _, path := range paths {
		f, err := config.Load(path)
		if err != nil {
			return err
		}
		for _, s := range f.Scenarios {
			if only != "" && s.Name != only {
				continue
			}
			row, err := solveScenario(f, s)
			if err != nil {
				return fmt.Errorf("%s: scenario %q: %w", path, s.Name, err)
			}
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		return fmt.Errorf("no scenarios matched")
	}

	writeTable(os.Stdout, rows, width, verbose)
	return nil
}

// solveRow is one resolved scenario.
type solveRow struct {
	name    string
	result  anchor.Result
	payload anchor.Payload
}

// solveScenario builds a scene for the scenario, runs one pass and returns
// the placement.
func solveScenario(f *config.File, s config.Scenario) (solveRow, error) {
	preset, err := f.PresetFor(s)
	if err != nil {
		return solveRow{}, err
	}
	opts, err := preset.Options()
	if err != nil {
		return solveRow{}, err
	}

	root := scene.NewRoot(s.Viewport.Width, s.Viewport.Height)

	// Clip boxes nest outermost first; each child's rect is relative to
	// its parent's origin.
	parent := root
	var ox, oy float64
	for i, c := range s.Clip {
		n := scene.New(
			scene.WithName("clip"+strconv.Itoa(i)),
			scene.WithRect(c.X-ox, c.Y-oy, c.Width, c.Height),
			scene.WithClip(),
		)
		parent.AddChild(n)
		parent = n
		ox, oy = c.X, c.Y
	}

	anchorNode := scene.New(
		scene.WithName("anchor"),
		scene.WithRect(s.Anchor.X-ox, s.Anchor.Y-oy, s.Anchor.Width, s.Anchor.Height),
	)
	parent.AddChild(anchorNode)

	popup := scene.New(scene.WithName("popup"), scene.WithRect(0, 0, s.Popup.Width, s.Popup.Height))
	root.AddChild(popup)

	opts = append([]anchor.Option{
		anchor.WithViewport(root),
		anchor.WithContainer(root),
		anchor.WithTrackAnchor(false),
	}, opts...)
	opts = append(opts, anchor.WithAnchor(anchor.ElementAnchor(anchorNode)))
	if s.Boundary != nil {
		opts = append(opts, anchor.WithCollisionBoundary(anchor.RectBoundary(s.Boundary.Rect())))
	}
	if s.Arrow != nil {
		opts = append(opts, anchor.WithArrowSize(s.Arrow.Size()))
	}

	p, err := anchor.NewPositioner(popup, opts...)
	if err != nil {
		return solveRow{}, err
	}
	p.Mount()
	defer p.Unmount()

	return solveRow{name: s.Name, result: p.Result(), payload: p.Payload()}, nil
}

// writeTable prints rows as a fixed-width table no wider than width. The
// scenario column absorbs any shortfall.
func writeTable(w io.Writer, rows []solveRow, width int, verbose bool) {
	headers := []string{"SCENARIO", "SIDE", "ALIGN", "X", "Y", "ARROW", "FLAGS"}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		res := r.result
		arrow := "-"
		if r.payload.Arrow.Property != "" {
			arrow = r.payload.Arrow.Property + "=" + num(res.Arrow.Offset)
		}
		flags := res.Degraded.String()
		if res.Hidden {
			flags += "+hidden"
		}
		cells = append(cells, []string{r.name, res.Side.String(), res.Alignment.String(), num(res.X), num(res.Y), arrow, flags})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range cells {
		for i, c := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	const gap = 2
	total := 0
	for _, cw := range widths {
		total += cw + gap
	}
	if over := total - width; over > 0 {
		widths[0] = max(widths[0]-over, runewidth.StringWidth(headers[0]))
	}

	line := func(row []string) {
		var b strings.Builder
		for i, c := range row {
			c = runewidth.Truncate(c, widths[i], "…")
			b.WriteString(c)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(c)+gap))
			}
		}
		fmt.Fprintln(w, b.String())
	}

	line(headers)
	for i, row := range cells {
		line(row)
		if verbose {
			fmt.Fprintf(w, "  style: %s\n", rows[i].payload.Style.CSS())
			if css := rows[i].payload.Arrow.CSS(); css != "" {
				fmt.Fprintf(w, "  arrow: %s\n", css)
			}
		}
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
