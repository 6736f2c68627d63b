package view

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/thingmaker/constants"
)

func rgb(c [3]int32) tcell.Color {
	return tcell.NewRGBColor(c[0], c[1], c[2])
}

// Theme holds the resolved styles used by the board
type Theme struct {
	Background     tcell.Style
	Panel          tcell.Style
	PanelBorder    tcell.Style
	Button         tcell.Style
	ButtonDisabled tcell.Style
	StatusBar      tcell.Style
	StatusPaused   tcell.Style
}

// DefaultTheme mirrors the light palette: white board, grey cards, dark text
func DefaultTheme() Theme {
	bg := rgb(constants.ColorBackground)
	panel := rgb(constants.ColorPanel)
	text := rgb(constants.ColorText)
	status := rgb(constants.ColorStatusBar)

	return Theme{
		Background:     tcell.StyleDefault.Background(bg).Foreground(text),
		Panel:          tcell.StyleDefault.Background(panel).Foreground(text),
		PanelBorder:    tcell.StyleDefault.Background(panel).Foreground(rgb(constants.ColorPanelBorder)),
		Button:         tcell.StyleDefault.Background(rgb(constants.ColorButton)).Foreground(text),
		ButtonDisabled: tcell.StyleDefault.Background(rgb(constants.ColorButtonDisabled)).Foreground(rgb(constants.ColorTextDisabled)),
		StatusBar:      tcell.StyleDefault.Background(status).Foreground(rgb(constants.ColorStatusText)),
		StatusPaused:   tcell.StyleDefault.Background(rgb(constants.ColorStatusPaused)).Foreground(status).Bold(true),
	}
}
