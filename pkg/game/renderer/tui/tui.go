// Package tui renders the cage as text on a terminal.
package tui

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"hamstercage/pkg/engine/terminal"
	"hamstercage/pkg/game/renderer"
	"hamstercage/pkg/game/state"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out   io.Writer
	width func() int

	colorSubtle   color.Style
	colorOccupied color.Style
	colorHouse    color.Style
	colorFood     color.Style
	colorWheel    color.Style
	colorTube     color.Style
	colorSpawner  color.Style
	colorHamster  color.Style
	colorObject   color.Style
	colorHeading  color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a TUI renderer writing to out. A nil out writes to stdout.
func New(out io.Writer) *TUIRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TUIRenderer{out: out, width: terminal.GetWidth}
}

// SetWidth overrides the terminal width lookup
func (t *TUIRenderer) SetWidth(width func() int) {
	t.width = width
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorSubtle = color.Style{color.FgGray}
	t.colorOccupied = color.Style{color.FgGray, color.OpBold}
	t.colorHouse = color.Style{color.FgYellow, color.OpBold}
	t.colorFood = color.Style{color.FgGreen}
	t.colorWheel = color.Style{color.FgCyan, color.OpBold}
	t.colorTube = color.Style{color.FgBlue}
	t.colorSpawner = color.Style{color.FgMagenta}
	t.colorHamster = color.Style{color.FgRed, color.BgBlack, color.OpBold}
	t.colorObject = color.Style{color.FgMagenta, color.OpBold}
	t.colorHeading = color.Style{color.FgMagenta}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:.]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, "\033[H\033[2J")
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleOccupied:
		return t.colorOccupied.Sprint(text)
	case renderer.StyleHouse:
		return t.colorHouse.Sprint(text)
	case renderer.StyleFood:
		return t.colorFood.Sprint(text)
	case renderer.StyleWheel:
		return t.colorWheel.Sprint(text)
	case renderer.StyleTube:
		return t.colorTube.Sprint(text)
	case renderer.StyleSpawner:
		return t.colorSpawner.Sprint(text)
	case renderer.StyleHamster:
		return t.colorHamster.Sprint(text)
	case renderer.StyleObject:
		return t.colorObject.Sprint(text)
	case renderer.StyleHeading:
		return t.colorHeading.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "HAMSTER":
			val = t.colorHamster.Sprint(dynamicGet("HAMSTER") + " #" + operand)
		case "OBJECT":
			val = t.colorObject.Sprint(operand)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// RenderFrame renders a complete frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	mode := "GT{MODE_EDIT}"
	if g.Playing {
		mode = "GT{MODE_PLAY}"
	}
	fmt.Fprintln(t.out, t.colorHeading.Sprint(t.FormatText("GT{CAGE_TITLE} - %s", mode)))
	fmt.Fprintln(t.out)

	t.printMap(g)
	t.printStatusBar(g)
	t.printMessagesPane(g)
}

// printMap draws the grid, clipped to the terminal width
func (t *TUIRenderer) printMap(g *state.Game) {
	width := t.width()
	for _, row := range renderer.MapSymbols(g) {
		if len(row) > width {
			row = row[:width]
		}
		var b strings.Builder
		for _, symbol := range row {
			b.WriteString(t.StyleText(symbol, renderer.StyleFor(symbol)))
		}
		fmt.Fprintln(t.out, b.String())
	}
}

// printStatusBar renders the clock and population
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	fmt.Fprintln(t.out)

	spawns := g.SpawnRegistry()
	parts := []string{
		t.FormatText("GT{STATUS_TIME} %.1fs", g.Now()),
		t.FormatText("GT{STATUS_HAMSTERS} %s/%s", humanize.Comma(int64(len(g.Hamsters()))), humanize.Comma(int64(spawns.Max()))),
		t.FormatText("GT{STATUS_OBJECTS} %s", humanize.Comma(int64(len(g.Entities())))),
	}
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(terminal.Clip(strings.Join(parts, "  "), t.width())))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width := t.width()

	label := " " + t.FormatText("GT{MESSAGES}") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))

	if len(g.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+t.FormatText("GT{NO_MESSAGES}")))
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(t.out, "  %s\n", msg)
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}

var _ renderer.Renderer = (*TUIRenderer)(nil)
