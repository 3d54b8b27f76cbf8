package cmd

import "github.com/alecthomas/kong"

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Plain   bool   `help:"TSV output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version VersionCmd `cmd:"" help:"Print version."`
	Config  ConfigCmd  `cmd:"" help:"Manage configuration."`
	Detect  DetectCmd  `cmd:"" help:"Detect FreeWork offers in a rendered HTML page."`
	Batch   BatchCmd   `cmd:"" help:"Detect offers for every page listed in a manifest."`
}

func NewCLI() *CLI {
	return &CLI{}
}
