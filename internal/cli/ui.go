package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal colors (ANSI 256).
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
	styleOK     = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarn   = lipgloss.NewStyle().Foreground(colorYellow)
	styleFail   = lipgloss.NewStyle().Foreground(colorRed)
	styleLabel  = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCmd    = lipgloss.NewStyle().Foreground(colorBlue)
)

// A mark is the glyph that leads a status line. When tint is set the
// message takes the glyph's color too.
type mark struct {
	glyph string
	style lipgloss.Style
	tint  bool
}

var (
	markOK   = mark{glyph: "✓", style: styleOK}
	markFail = mark{glyph: "✗", style: styleFail}
	markWarn = mark{glyph: "!", style: styleWarn, tint: true}
	markInfo = mark{glyph: "›", style: lipgloss.NewStyle().Foreground(colorGray)}
)

// status prints one line led by m.
func status(m mark, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if m.tint {
		msg = m.style.Render(msg)
	}
	fmt.Println(m.style.Render(m.glyph) + " " + msg)
}

func printSuccess(format string, args ...any) { status(markOK, format, args...) }
func printError(format string, args ...any)   { status(markFail, format, args...) }
func printWarning(format string, args ...any) { status(markWarn, format, args...) }
func printInfo(format string, args ...any)    { status(markInfo, format, args...) }

// printDetail prints an indented, dimmed line under a status line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + styleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile lists a written file under a status line.
func printFile(path string) {
	fmt.Println("  " + styleDim.Render("→") + " " + styleValue.Render(path))
}

// printKeyValue prints a label padded to a fixed column, then its value.
func printKeyValue(key, value string) {
	fmt.Println(styleLabel.Render(key) + " " + styleValue.Render(value))
}

// printStats prints "N vertices · M edges" followed by any extra tags.
func printStats(vertices, edges int, tags ...string) {
	parts := []string{
		styleDim.Render(plural(vertices, "vertex", "vertices")),
		styleDim.Render(plural(edges, "edge", "edges")),
	}
	parts = append(parts, tags...)
	fmt.Println("  " + strings.Join(parts, styleDim.Render(" · ")))
}

// cacheTag labels whether a result came from the cache.
func cacheTag(cached bool) string {
	if cached {
		return styleOK.Render("cached")
	}
	return styleDim.Render("fresh")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}

// printNextStep suggests the command that usually follows.
func printNextStep(description, cmd string) {
	fmt.Println(styleDim.Render(description+":") + " " + styleCmd.Render(cmd))
}

func printNewline() {
	fmt.Println()
}
