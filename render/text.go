package render

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/cells"
	"github.com/npillmayer/cells/axis"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var graphemeSetup sync.Once

// row is a cell prepared for output.
type row struct {
	label string
	text  string
	value float64
}

type glyphs struct {
	pos, neg, sep string
}

var (
	utf8Glyphs  = glyphs{pos: "█", neg: "░", sep: "│"}
	asciiGlyphs = glyphs{pos: "=", neg: "-", sep: "|"}
)

// Text writes one line per cell of src to w. Every line holds the cell's label
// (its index, or its bin interval if config.Axis is set), the cell's value as
// extracted by value, and a bar proportional to the value.
//
// If config is nil, a configuration is derived from the terminal (see
// ConfigFromTerminal).
func Text[V any](w io.Writer, src cells.Source[V], value func(V) float64, config *Config) error {
	if w == nil || src == nil || value == nil {
		return fmt.Errorf("%w: nil argument", cells.ErrIllegalArguments)
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	if err := config.validate(); err != nil {
		return err
	}
	cfg := config.normalized()
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
	rows := tabulate(src, value, cfg.Axis)
	labelW, textW := 0, 0
	maxAbs := 0.0
	for _, r := range rows {
		labelW = max(labelW, width(r.label, cfg.Context))
		textW = max(textW, width(r.text, cfg.Context))
		maxAbs = max(maxAbs, math.Abs(r.value))
	}
	barW := max(cfg.Width-labelW-textW-4, 1)
	T().Debugf("render %d cells, bar width %d", len(rows), barW)
	g := asciiGlyphs
	if cfg.UTF8 {
		g = utf8Glyphs
	}
	out := bufio.NewWriter(w)
	for _, r := range rows {
		out.WriteString(pad(r.label, labelW, cfg.Context))
		out.WriteString("  ")
		out.WriteString(pad(r.text, textW, cfg.Context))
		out.WriteString(" ")
		out.WriteString(g.sep)
		n := 0
		if maxAbs > 0 {
			n = int(math.Round(math.Abs(r.value) / maxAbs * float64(barW)))
		}
		bar, c := strings.Repeat(g.pos, n), cfg.BarColor
		if r.value < 0 {
			bar, c = strings.Repeat(g.neg, n), cfg.NegColor
		}
		if cfg.Color && n > 0 {
			c.Fprint(out, bar)
		} else {
			out.WriteString(bar)
		}
		out.WriteString("\n")
	}
	return out.Flush()
}

func tabulate[V any](src cells.Source[V], value func(V) float64, ax axis.Axis) []row {
	n := src.Len()
	rows := make([]row, n)
	for i := 0; i < n; i++ {
		v := value(src.At(i))
		rows[i] = row{
			label: label(i, ax),
			text:  strconv.FormatFloat(v, 'g', 6, 64),
			value: v,
		}
	}
	return rows
}

func label(i int, ax axis.Axis) string {
	if ax == nil {
		return strconv.Itoa(i)
	}
	bin := axis.Bin(ax, i)
	return fmt.Sprintf("[%g, %g)", bin.Lower(), bin.Upper())
}

// width measures s in fixed-width positions. A single ASCII character is one
// position; uax11 treats digits as emoji and would count them as two.
func width(s string, context *uax11.Context) int {
	gstr := grapheme.StringFromString(s)
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		if len(g) == 1 && g[0] < utf8.RuneSelf {
			w++
			continue
		}
		w += uax11.Width([]byte(g), context)
	}
	return w
}

// pad right-aligns s within w fixed-width positions.
func pad(s string, w int, context *uax11.Context) string {
	if d := w - width(s, context); d > 0 {
		return strings.Repeat(" ", d) + s
	}
	return s
}
