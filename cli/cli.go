// Package cli runs the game as a plain line-oriented loop, for pipes,
// scripts and terminals that cannot host the TUI.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/gangwar/session"
	"github.com/nathoo/gangwar/types"
)

const prompt = "> "

// CLI handles line-oriented interaction with the player.
type CLI struct {
	Session   *session.Session
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool // echo each input line after the prompt (for script playback)
}

// New creates a CLI on stdin and stdout.
func New(s *session.Session) *CLI {
	return &CLI{Session: s, In: os.Stdin, Out: os.Stdout}
}

// Run prints the intro and reads commands until /quit or end of input.
// It returns the reader's error, if any.
func (c *CLI) Run() error {
	c.printLines(c.Session.Intro())
	fmt.Fprintln(c.Out)

	scanner := bufio.NewScanner(c.In)
	for {
		fmt.Fprint(c.Out, prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		if quit := c.handleLine(scanner.Text()); quit {
			return nil
		}
	}
}

// handleLine runs one line of input and reports whether to exit.
func (c *CLI) handleLine(raw string) bool {
	input := strings.TrimSpace(raw)
	if input == "" || strings.HasPrefix(input, "#") {
		return false
	}
	if c.EchoInput {
		fmt.Fprintln(c.Out, input)
	}

	if strings.HasPrefix(input, "/") {
		lines, quit := c.meta(input)
		for _, line := range lines {
			c.printSystem(line)
		}
		return quit
	}

	cmd, ok := c.Session.Expand(input)
	if !ok {
		fmt.Fprintln(c.Out, "Nothing to repeat.")
		return false
	}
	result := c.Session.Step(cmd)
	c.printLines(result.Output)
	if c.Trace {
		for _, line := range TraceLines(result) {
			c.printSystem(line)
		}
	}
	return false
}

// meta toggles tracing locally and hands other slash commands to the session.
func (c *CLI) meta(input string) ([]string, bool) {
	if strings.Fields(input)[0] != "/trace" {
		return c.Session.Meta(input)
	}
	c.Trace = !c.Trace
	if c.Trace {
		return []string{"Trace output enabled."}, false
	}
	return []string{"Trace output disabled."}, false
}

// TraceLines describes the event and combat behind a result.
func TraceLines(result types.Result) []string {
	var lines []string
	if ev := result.Event; ev != nil {
		lines = append(lines, fmt.Sprintf("[trace] Event: %s (%s, weight %d)", ev.ID, ev.Type, ev.Weight))
	}
	if result.Skipped != "" {
		lines = append(lines, fmt.Sprintf("[trace] Event: %s skipped, unmet: %s", result.Skipped, strings.Join(result.Unmet, ", ")))
	}
	if cr := result.Combat; cr != nil {
		lines = append(lines, fmt.Sprintf("[trace] Combat: dealt %d, took %d, killed %d, %d left (%.0f hp)",
			cr.DamageDealt, cr.DamageTaken, cr.EnemiesKilled, cr.EnemiesRemaining, cr.EnemyHealthRemaining))
	}
	return lines
}

func (c *CLI) printLines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(c.Out, line)
	}
}

// printSystem brackets out-of-game messages. Blank lines stay blank.
func (c *CLI) printSystem(text string) {
	if text == "" {
		fmt.Fprintln(c.Out)
		return
	}
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
