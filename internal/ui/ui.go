package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

const LinkColor = "#87CEEB"

// Tone picks the color of a message.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneSuccess
	TonePending
	ToneFailure
	ToneInfo
)

var toneColors = map[Tone]string{
	ToneNeutral: "8",
	ToneSuccess: "2",
	TonePending: "3",
	ToneFailure: "1",
	ToneInfo:    "4",
}

type UI struct {
	Out          io.Writer
	Err          io.Writer
	Output       *termenv.Output
	ErrOutput    *termenv.Output
	ColorEnabled bool
}

func New(out io.Writer, err io.Writer, mode ColorMode, disableColor bool) *UI {
	output := termenv.NewOutput(out)
	return &UI{
		Out:          out,
		Err:          err,
		Output:       output,
		ErrOutput:    termenv.NewOutput(err),
		ColorEnabled: shouldEnableColor(output, mode, disableColor),
	}
}

func shouldEnableColor(output *termenv.Output, mode ColorMode, disableColor bool) bool {
	if disableColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return output.ColorProfile() != termenv.Ascii
	}
}

func (u *UI) Errorf(format string, args ...any) {
	u.write(u.Err, u.ErrOutput, ToneFailure, false, format, args...)
}

func (u *UI) Warnf(format string, args ...any) {
	u.write(u.Err, u.ErrOutput, TonePending, false, format, args...)
}

func (u *UI) Infof(format string, args ...any) {
	u.write(u.Out, u.Output, ToneInfo, false, format, args...)
}

func (u *UI) Successf(format string, args ...any) {
	u.write(u.Out, u.Output, ToneSuccess, false, format, args...)
}

// Statusf prints a bold verdict on the error stream, away from exported data.
func (u *UI) Statusf(tone Tone, format string, args ...any) {
	u.write(u.Err, u.ErrOutput, tone, true, format, args...)
}

func (u *UI) write(w io.Writer, output *termenv.Output, tone Tone, bold bool, format string, args ...any) {
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	if u.ColorEnabled && output != nil {
		style := output.String(msg).Foreground(output.Color(toneColors[tone]))
		if bold {
			style = style.Bold()
		}
		msg = style.String()
	}
	fmt.Fprintln(w, msg)
}

func ColorizeLink(output *termenv.Output, enabled bool, text string) string {
	if !enabled || output == nil {
		return text
	}
	return output.String(text).Foreground(output.Color(LinkColor)).String()
}

func NormalizeColorMode(value string) ColorMode {
	switch ColorMode(strings.ToLower(strings.TrimSpace(value))) {
	case ColorAlways:
		return ColorAlways
	case ColorNever:
		return ColorNever
	default:
		return ColorAuto
	}
}
