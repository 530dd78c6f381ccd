package render

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/cells/axis"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// DefaultWidth is the line width used if the terminal width is unknown.
const DefaultWidth = 78

const minWidth = 20

// ErrInvalidConfig signals an unusable rendering configuration.
var ErrInvalidConfig = errors.New("render: invalid configuration")

// Config represents a set of configuration parameters for rendering.
type Config struct {
	Width    int            // line width in fixed-width positions
	UTF8     bool           // use block characters for bars
	Color    bool           // colorize bars
	Context  *uax11.Context // for measuring label widths
	Axis     axis.Axis      // optional; if set, cells are labeled with bin intervals
	BarColor *color.Color   // color for bars of non-negative cells
	NegColor *color.Color   // color for bars of negative cells
}

func (config Config) normalized() Config {
	if config.Width == 0 {
		config.Width = DefaultWidth
	} else if config.Width < minWidth {
		config.Width = minWidth
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	if config.BarColor == nil {
		config.BarColor = color.New(color.FgBlue)
	}
	if config.NegColor == nil {
		config.NegColor = color.New(color.FgRed)
	}
	return config
}

func (config Config) validate() error {
	if config.Width < 0 {
		return fmt.Errorf("%w: negative line width %d", ErrInvalidConfig, config.Width)
	}
	return nil
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and enables colors. UTF-8 support is derived from the LANG environment
// variable.
func ConfigFromTerminal() *Config {
	config := &Config{
		Width:   DefaultWidth,
		UTF8:    utf8FromEnvironment(),
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			config.Width = w
		}
		config.Color = true
	}
	T().P("render", "console").Infof("setting line width to %d, utf8=%v", config.Width, config.UTF8)
	return config
}

// utf8FromEnvironment assumes UTF-8 unless LANG says otherwise.
func utf8FromEnvironment() bool {
	lang := os.Getenv("LANG")
	if lang == "" {
		return true
	}
	return strings.Contains(lang, "UTF") || strings.Contains(lang, "utf")
}
