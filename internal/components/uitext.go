package components

import (
	"strings"

	"visualcues/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextAlignment controls horizontal text alignment
type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
)

// UIText draws a block of text from the top of its rect, one line per
// newline, over an optional background.
type UIText struct {
	engine.BaseComponent

	Text        string
	FontSize    int32
	LineSpacing int32 // extra pixels between lines
	Color       rl.Color
	Background  rl.Color // skipped when fully transparent
	Alignment   TextAlignment

	// Highlight recolors lines that match exactly, e.g. warnings.
	Highlight map[string]rl.Color
}

func NewUIText() *UIText {
	return &UIText{
		FontSize:    20,
		LineSpacing: 4,
		Color:       rl.White,
		Alignment:   TextAlignLeft,
	}
}

// Lines splits the text for drawing; a trailing newline adds no line.
func (t *UIText) Lines() []string {
	if t.Text == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(t.Text, "\n"), "\n")
}

// LineColor is the color line is drawn in.
func (t *UIText) LineColor(line string) rl.Color {
	if c, ok := t.Highlight[line]; ok {
		return c
	}
	return t.Color
}

// Draw renders the text within the given rect
func (t *UIText) Draw(rect rl.Rectangle) {
	lines := t.Lines()
	if len(lines) == 0 {
		return
	}
	if t.Background.A > 0 {
		rl.DrawRectangleRec(rect, t.Background)
	}

	y := rect.Y
	for _, line := range lines {
		textWidth := float32(rl.MeasureText(line, t.FontSize))

		var x float32
		switch t.Alignment {
		case TextAlignLeft:
			x = rect.X
		case TextAlignCenter:
			x = rect.X + (rect.Width-textWidth)/2
		case TextAlignRight:
			x = rect.X + rect.Width - textWidth
		}

		rl.DrawText(line, int32(x), int32(y), t.FontSize, t.LineColor(line))
		y += float32(t.FontSize + t.LineSpacing)
	}
}
