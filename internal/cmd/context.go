package cmd

import (
	"io"

	"github.com/JeyZu/FreelanceFinder/internal/config"
	"github.com/JeyZu/FreelanceFinder/internal/ui"
	"github.com/rs/zerolog"
)

type Context struct {
	// In is nil when stdin is a terminal.
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
	UI         *ui.UI
	Config     config.Config
	ConfigDir  string
	Logger     zerolog.Logger
	Verbose    bool
	JSONOutput bool
	PlainText  bool
	Version    string
	ColorMode  ui.ColorMode
}
