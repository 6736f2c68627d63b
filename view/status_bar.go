package view

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/lixenwraith/thingmaker/constants"
)

// StatusLine is the data shown in the bottom bar
type StatusLine struct {
	Paused      bool
	FPS         float64
	GameSeconds float64
	Prestiges   int64
	Activations int64
	Rejections  int64
	Policy      string
	Audio       string
	Message     string
}

// Draw renders the bar into a one-row region
func (sl StatusLine) Draw(r Region, theme Theme) {
	r.Fill(theme.StatusBar)

	mode, modeStyle := constants.ModeTextRunning, theme.StatusBar.Reverse(true)
	if sl.Paused {
		mode, modeStyle = constants.ModeTextPaused, theme.StatusPaused
	}
	x := r.Text(0, 0, mode, modeStyle)

	audio := sl.Audio
	if audio == "" {
		audio = "off"
	}
	played := time.Duration(sl.GameSeconds * float64(time.Second)).Truncate(time.Second)
	info := fmt.Sprintf(" %s | prestige %d | bought %s denied %s | %s | sound %s | %.0f fps",
		played, sl.Prestiges, humanize.Comma(sl.Activations), humanize.Comma(sl.Rejections),
		sl.Policy, audio, sl.FPS)
	x += r.Text(x, 0, info, theme.StatusBar)

	if sl.Message != "" {
		r.Text(x, 0, " | "+sl.Message, theme.StatusBar.Bold(true))
	}
	r.TextRight(0, "p pause  q quit ", theme.StatusBar)
}
