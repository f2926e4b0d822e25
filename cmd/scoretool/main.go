// Command scoretool inspects packaged score files: load summaries,
// embedded images, chord symbol parsing and raw document queries.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/Maestro/core/chord"
	"github.com/FocuswithJustin/Maestro/core/reader"
	"github.com/FocuswithJustin/Maestro/core/score"
	"github.com/FocuswithJustin/Maestro/internal/container"
	"github.com/FocuswithJustin/Maestro/internal/imagestore"
	"github.com/FocuswithJustin/Maestro/internal/logging"
	"github.com/FocuswithJustin/Maestro/internal/xmlutil"
)

const version = "0.1.0"

// CLI defines the command-line interface for scoretool.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log output format"`

	Info    InfoCmd    `cmd:"" help:"Load a score file and print a summary"`
	Images  ImagesCmd  `cmd:"" help:"List embedded images with content hashes"`
	Chords  ChordsCmd  `cmd:"" help:"Parse chord symbol names"`
	Query   QueryCmd   `cmd:"" help:"Run an XPath query over the raw score document"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// loadFlags are the load knobs shared by file-reading commands.
type loadFlags struct {
	IgnoreVersion bool `name:"ignore-version" help:"Force a best-effort parse of out-of-band versions"`
	TestMode      bool `name:"test-mode" help:"Force the previous-generation parser"`
}

func (f loadFlags) options() reader.Options {
	return reader.Options{
		IgnoreVersionError: f.IgnoreVersion,
		TestMode:           f.TestMode,
	}
}

type InfoCmd struct {
	loadFlags
	Path string `arg:"" type:"existingfile" help:"Score file (.mzp package or single document)"`
}

func (c *InfoCmd) Run() error {
	master := score.NewMaster()
	opts := c.options()
	opts.SkipImages = true

	compat, err := reader.LoadFile(master, c.Path, nil, opts)
	if err != nil {
		return err
	}

	fmt.Printf("file:             %s\n", c.Path)
	fmt.Printf("format version:   %d.%d\n", master.Version()/100, master.Version()%100)
	if master.ProgramVersion() != "" {
		fmt.Printf("written by:       %s (rev %x)\n", master.ProgramVersion(), master.ProgramRevision())
	}
	fmt.Printf("division:         %d\n", master.Division())
	fmt.Printf("parts:            %d\n", len(master.Parts()))
	fmt.Printf("staves:           %d\n", len(master.Staves()))
	fmt.Printf("measures:         %d\n", len(master.Measures()))
	fmt.Printf("chord symbols:    %d\n", len(master.Harmonies()))
	if master.Audio() != nil {
		fmt.Printf("audio:            %d bytes\n", len(master.Audio().Data()))
	}

	if len(master.Excerpts()) > 0 {
		fmt.Printf("excerpts:\n")
		for _, ex := range master.Excerpts() {
			sub := ex.ExcerptScore()
			fmt.Printf("  %-20s %d measures, %d tracks mapped\n",
				ex.Name(), len(sub.Measures()), len(ex.TracksMapping()))
		}
	}

	if len(compat.MigratedStyleIDs) > 0 {
		fmt.Printf("migrated style IDs:\n")
		ids := make([]string, 0, len(compat.MigratedStyleIDs))
		for id := range compat.MigratedStyleIDs {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Printf("  %s -> %s\n", id, compat.MigratedStyleIDs[id])
		}
	}
	return nil
}

type ImagesCmd struct {
	loadFlags
	Path  string `arg:"" type:"existingfile" help:"Score file"`
	Store string `name:"store" type:"path" help:"Persist images to a SQLite store at this path"`
}

func (c *ImagesCmd) Run() error {
	var images imagestore.Store
	if c.Store != "" {
		st, err := imagestore.OpenSQLite(c.Store)
		if err != nil {
			return err
		}
		if closer, ok := st.(interface{ Close() error }); ok {
			defer closer.Close()
		}
		images = st
	} else {
		images = imagestore.NewMemory()
	}

	master := score.NewMaster()
	if _, err := reader.LoadFile(master, c.Path, images, c.options()); err != nil {
		return err
	}

	entries, err := images.Entries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no embedded images")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s  %8d  %s\n", e.BLAKE3, e.Size, e.Name)
	}
	return nil
}

type ChordsCmd struct {
	Names []string `arg:"" help:"Chord symbol names (e.g. Cmaj7, F#m7b5/A)"`
}

func (c *ChordsCmd) Run() error {
	for _, name := range c.Names {
		sym, err := chord.ParseSymbol(name)
		if err != nil {
			fmt.Printf("%-12s unparseable: %v\n", name, err)
			continue
		}
		fmt.Printf("%-12s root=%s%s", name, sym.Root, sym.RootAccidental)
		if sym.Quality != "" {
			fmt.Printf(" quality=%s", sym.Quality)
		}
		if sym.Extension != 0 {
			fmt.Printf(" ext=%d", sym.Extension)
		}
		if sym.Bass != "" {
			fmt.Printf(" bass=%s", sym.Bass)
		}
		fmt.Println()
	}
	return nil
}

type QueryCmd struct {
	Path  string `arg:"" type:"existingfile" help:"Score file"`
	Query string `arg:"" help:"XPath expression (e.g. //Part/name)"`
}

func (c *QueryCmd) Run() error {
	acc, err := container.Open(c.Path)
	if err != nil {
		return err
	}
	if closer, ok := acc.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	data, err := acc.ReadScoreFile()
	if err != nil {
		return err
	}
	doc, err := xmlutil.Parse(data)
	if err != nil {
		return err
	}
	nodes, err := xmlutil.Query(doc, c.Query)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		fmt.Println(xmlutil.Text(n))
	}
	return nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("scoretool version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("scoretool"),
		kong.Description("Maestro - versioned score file inspector"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	logging.InitLogger(logLevel(CLI.LogLevel), logFormat(CLI.LogFormat))
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "scoretool: %v\n", err)
		os.Exit(1)
	}
}

func logLevel(s string) logging.Level {
	switch s {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func logFormat(s string) logging.Format {
	if s == "json" {
		return logging.FormatJSON
	}
	return logging.FormatText
}
