package ui

import (
	"strings"

	"github.com/Makepad-fr/tadaboard/internal/model"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending string
	Columns                                       map[model.Column]string
	BoxUnchecked, BoxChecked                      string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
	SymSub, SymLink, SymDeleted                   string
}

var current = classic()

func classic() Theme {
	return Theme{
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed, Pending: fgYellow,
		Columns: map[model.Column]string{
			model.OnIt: fgGreen, model.NextUp: fgYellow, model.BackLog: fgBlue,
		},
		BoxUnchecked: "☐", BoxChecked: "☑",
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
		SymSub: "└", SymLink: "↗", SymDeleted: "🗑",
	}
}

// SetTheme switches the palette; unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		disableColor = false
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Pending: "\033[93m",
			Columns: map[model.Column]string{
				model.OnIt: "\033[92m", model.NextUp: fgMagenta, model.BackLog: fgCyan,
			},
			BoxUnchecked: "◻", BoxChecked: "◼",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymSub: "╰", SymLink: "⇗", SymDeleted: "✗",
		}
	case "mono":
		disableColor = true
		current = Theme{
			Columns:      map[model.Column]string{},
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymSub: "`-", SymLink: "->", SymDeleted: "x",
		}
	default:
		disableColor = false
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }
