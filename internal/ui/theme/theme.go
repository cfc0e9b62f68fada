package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/topics"
)

// Color palette, muted like an exam paper under a desk lamp.
var (
	Primary   = lipgloss.Color("#3B82F6") // Ink Blue
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#EAB308") // Highlighter
	Success   = lipgloss.Color("#16A34A") // Green
	Error     = lipgloss.Color("#DC2626") // Red Pen
	Text      = lipgloss.Color("#E5E7EB") // Paper
	TextDim   = lipgloss.Color("#9CA3AF") // Pencil
	BgDark    = lipgloss.Color("#111827") // Desk
	BgCard    = lipgloss.Color("#1F2937") // Clipboard
	Border    = lipgloss.Color("#374151") // Ruled line
)

// strandColors tints topic names by strand.
var strandColors = map[problemgen.Strand]color.Color{
	topics.StrandNumber:     Primary,
	topics.StrandFractions:  Secondary,
	topics.StrandAlgebra:    lipgloss.Color("#A855F7"),
	topics.StrandGeometry:   lipgloss.Color("#F97316"),
	topics.StrandStatistics: lipgloss.Color("#14B8A6"),
	topics.StrandPhysics:    Accent,
}

// StrandColor returns the tint for strand, falling back to Text.
func StrandColor(strand problemgen.Strand) color.Color {
	if c, ok := strandColors[strand]; ok {
		return c
	}
	return Text
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)
