// Gang War is a turn-based street hustling game for the terminal.
// Usage: gangwar [--version] [--plain] [--script <file>] [--trace] [--config <file>]
//
//	[--db <path>] [--seed <n>] [--content <dir>] [--name <player>] [--gang <gang>]
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/nathoo/gangwar/cli"
	"github.com/nathoo/gangwar/config"
	"github.com/nathoo/gangwar/engine"
	"github.com/nathoo/gangwar/loader"
	"github.com/nathoo/gangwar/logger"
	"github.com/nathoo/gangwar/session"
	"github.com/nathoo/gangwar/storage"
	"github.com/nathoo/gangwar/tui"
	"github.com/nathoo/gangwar/types"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: gangwar [--version] [--plain] [--script <file>] [--trace] [--config <file>] [--db <path>] [--seed <n>] [--content <dir>] [--name <player>] [--gang <gang>]"

func main() {
	plain := false
	trace := false
	var scriptFile, configFile, dbPath, contentDir, seedArg string
	player, gang := "Player", "Southside"

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("gangwar %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--script", "--config", "--db", "--seed", "--content", "--name", "--gang":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "%s requires a value\n", args[i])
				os.Exit(1)
			}
			flag, val := args[i], args[i+1]
			i++
			switch flag {
			case "--script":
				scriptFile = val
			case "--config":
				configFile = val
			case "--db":
				dbPath = val
			case "--seed":
				seedArg = val
			case "--content":
				contentDir = val
			case "--name":
				player = val
			case "--gang":
				gang = val
			}
		default:
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(1)
		}
	}

	if configFile == "" {
		configFile = filepath.Join(config.DefaultDir(), "config.yaml")
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if contentDir != "" {
		cfg.ContentDir = contentDir
	}
	if seedArg != "" {
		seed, err := strconv.ParseInt(seedArg, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "--seed: %v\n", err)
			os.Exit(1)
		}
		cfg.Seed = seed
	}
	plain = plain || cfg.Plain

	// Lua content replaces the built-in catalog.
	var catalog []types.RandomEvent
	if cfg.ContentDir != "" {
		catalog, err = loader.Load(cfg.ContentDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading content: %v\n", err)
			os.Exit(1)
		}
		// Before the TUI owns the screen.
		warn := logger.New(os.Stderr)
		for _, w := range loader.Lint(catalog) {
			warn.Warn(w)
		}
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	useTUI := scriptFile == "" && !plain && isTerminal()

	// The TUI owns the screen, so its log goes to a file.
	var log *logger.Logger
	if useTUI && cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err == nil {
			if f, err := tea.LogToFile(cfg.LogFile, ""); err == nil {
				defer f.Close()
				log = logger.New(f)
			}
		}
	} else if !useTUI {
		log = logger.New(io.Discard)
		if trace {
			log = logger.New(os.Stderr)
		}
	}

	eng := engine.New(player, gang, catalog, session.NewRNG(cfg.Seed))
	sess := session.New(eng, store, log, cfg.Seed)
	log = sess.Log
	log.Info(fmt.Sprintf("starting %s (%s), db %s, seed %d", player, gang, cfg.DBPath, cfg.Seed))

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(sess)
		c.In = f
		c.EchoInput = true
		c.Trace = trace
		runCLI(c, log)
		return
	}

	if !useTUI {
		c := cli.New(sess)
		c.Trace = trace
		runCLI(c, log)
		return
	}

	if err := tui.Run(sess); err != nil {
		log.Error(err.Error())
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCLI(c *cli.CLI, log *logger.Logger) {
	if err := c.Run(); err != nil {
		log.Error(fmt.Sprintf("reading input: %v", err))
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
