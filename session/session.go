// Package session ties one engine to its persistence and logging, and
// implements the slash commands shared by the terminal front ends.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/nathoo/gangwar/engine"
	"github.com/nathoo/gangwar/engine/rng"
	"github.com/nathoo/gangwar/engine/save"
	"github.com/nathoo/gangwar/logger"
	"github.com/nathoo/gangwar/storage"
	"github.com/nathoo/gangwar/types"
)

// DefaultSlot is used by /save and /load without an argument.
const DefaultSlot = "default"

// Session is one player's run plus the handles it needs.
type Session struct {
	Engine *engine.Engine
	Store  *storage.Store // nil disables saves and the score board
	Log    *logger.Logger

	// Seed for /new; 0 seeds from the clock.
	Seed int64

	scored  bool   // the current run is already on the board
	lastCmd string // for "again"/"g"
}

// New creates a session. A nil logger discards.
func New(eng *engine.Engine, store *storage.Store, log *logger.Logger, seed int64) *Session {
	if log == nil {
		log = logger.Discard()
	}
	return &Session{Engine: eng, Store: store, Log: log, Seed: seed}
}

// NewRNG returns the RNG a fresh game starts with.
func NewRNG(seed int64) *rng.RNG {
	if seed == 0 {
		return rng.NewRandom()
	}
	return rng.New(seed)
}

// Intro is shown when a game starts.
func (s *Session) Intro() []string {
	st := s.Engine.State
	return []string{
		"GANG WAR",
		"",
		fmt.Sprintf("%s runs %s with $%s in their pocket and %d squidies on the other side of town.",
			st.PlayerName, st.GangName, humanize.Comma(int64(st.Money)), st.Squidies),
		"Hustle, fight, and stay alive. Type help for commands, /help for system commands.",
	}
}

// Expand resolves "again" and "g" to the previous game command and
// remembers anything else. It reports false when there is nothing to repeat.
func (s *Session) Expand(input string) (string, bool) {
	switch strings.ToLower(input) {
	case "again", "g":
		return s.lastCmd, s.lastCmd != ""
	}
	s.lastCmd = input
	return input, true
}

// Step runs one game command, logs what happened and records the score
// when the run ends.
func (s *Session) Step(input string) types.Result {
	result := s.Engine.Step(input)
	player := s.Engine.State.PlayerName

	if result.Event != nil {
		s.Log.Event(string(result.Event.Type), player, result.Event.ID)
	}
	if c := result.Combat; c != nil {
		s.Log.Event("combat", player, fmt.Sprintf("dealt %d, took %d, killed %d, victory=%v defeat=%v",
			c.DamageDealt, c.DamageTaken, c.EnemiesKilled, c.Victory, c.Defeat))
	}
	if result.GameOver && !s.scored {
		s.scored = true
		result.Output = append(result.Output, s.recordScore()...)
	}
	return result
}

// Meta dispatches a slash command. It returns output lines and whether the
// program should exit.
func (s *Session) Meta(input string) ([]string, bool) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil, false
	}
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true
	case "/save":
		return s.cmdSave(arg), false
	case "/load":
		return s.cmdLoad(arg), false
	case "/new":
		return s.cmdNew(), false
	case "/scores":
		return s.cmdScores(), false
	case "/help":
		return append([]string(nil), HelpLines...), false
	case "/state":
		return s.cmdState(), false
	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
	}
}

// HelpLines lists the slash commands.
var HelpLines = []string{
	"System:",
	"  /save [slot]  Save game (default slot: default)",
	"  /load [slot]  Load game (default slot: default)",
	"  /new          Start over with a fresh crew",
	"  /scores       Show the high score board",
	"  /state        Debug: dump current state",
	"  /help         Show this help",
	"  /quit         Exit game",
	"",
	"Type help for game commands. again (g) repeats your last command.",
}

func (s *Session) cmdSave(slot string) []string {
	if slot == "" {
		slot = DefaultSlot
	}
	if s.Store == nil {
		return []string{"Save failed: no database configured."}
	}

	data, err := save.Save(s.Engine.State, s.Engine.RNG)
	if err != nil {
		s.Log.Error(fmt.Sprintf("encoding save: %v", err))
		return []string{fmt.Sprintf("Save failed: %v", err)}
	}
	if err := s.Store.SaveGame(context.Background(), slot, s.Engine.State.Day, data); err != nil {
		s.Log.Error(err.Error())
		return []string{fmt.Sprintf("Save failed: %v", err)}
	}

	s.Log.Event("save", s.Engine.State.PlayerName, slot)
	return []string{fmt.Sprintf("Game saved to %s.", slot)}
}

func (s *Session) cmdLoad(slot string) []string {
	if slot == "" {
		slot = DefaultSlot
	}
	if s.Store == nil {
		return []string{"Load failed: no database configured."}
	}

	data, err := s.Store.LoadGame(context.Background(), slot)
	if errors.Is(err, storage.ErrNoSave) {
		return []string{fmt.Sprintf("Nothing saved in %s.", slot)}
	}
	if err != nil {
		s.Log.Error(err.Error())
		return []string{fmt.Sprintf("Load failed: %v", err)}
	}

	sd, err := save.Load(data)
	if err != nil {
		s.Log.Error(fmt.Sprintf("slot %s: %v", slot, err))
		return []string{fmt.Sprintf("Load failed: %v", err)}
	}

	s.Engine.Resume(save.Apply(sd))
	s.scored = false
	s.Log.Event("load", s.Engine.State.PlayerName, slot)

	output := []string{fmt.Sprintf("Game loaded from %s (day %d).", slot, s.Engine.State.Day)}
	return append(output, s.Engine.Step("status").Output...)
}

func (s *Session) cmdNew() []string {
	old := s.Engine.State
	s.Engine = engine.New(old.PlayerName, old.GangName, s.Engine.Catalog, NewRNG(s.Seed))
	s.scored = false
	s.Log.Event("new_game", old.PlayerName, old.GangName)
	return append([]string{"A fresh start."}, s.Intro()...)
}

func (s *Session) cmdScores() []string {
	if s.Store == nil {
		return []string{"No database configured."}
	}
	scores, err := s.Store.TopScores(context.Background())
	if err != nil {
		s.Log.Error(err.Error())
		return []string{fmt.Sprintf("Could not read scores: %v", err)}
	}
	return ScoreLines(scores)
}

// ScoreLines formats the board.
func ScoreLines(scores []types.HighScore) []string {
	lines := []string{"High scores:"}
	for i, hs := range scores {
		lines = append(lines, fmt.Sprintf("  %2d. %-18s %s", i+1, hs.Name, humanize.Comma(int64(hs.Score))))
	}
	return lines
}

func (s *Session) cmdState() []string {
	st := s.Engine.State
	output := []string{
		fmt.Sprintf("Day: %d  Steps: %d/%d  Score: %d", st.Day, st.Steps, st.MaxSteps, st.Score),
		fmt.Sprintf("Money: %d  Account: %d  Loan: %d", st.Money, st.Account, st.Loan),
		fmt.Sprintf("Health: %d/%d  Lives: %d  Members: %d  Squidies: %d", st.Health, st.MaxHealth, st.Lives, st.Members, st.Squidies),
		fmt.Sprintf("Weapons: %+v", st.Weapons),
		fmt.Sprintf("Drugs: %+v", st.Drugs),
		fmt.Sprintf("Flags: %+v", st.Flags),
		fmt.Sprintf("Upgrade: %s (on=%v)", st.PistolUpgradeType, st.PistolUpgraded),
		fmt.Sprintf("RNG: seed %d, position %d", s.Engine.RNG.Seed(), s.Engine.RNG.Position()),
	}
	if st.Fight != nil {
		output = append(output, fmt.Sprintf("Fight: %+v", *st.Fight))
	}
	return output
}

func (s *Session) recordScore() []string {
	st := s.Engine.State
	lines := []string{fmt.Sprintf("Final score: %s.", humanize.Comma(int64(st.Score)))}
	if s.Store == nil {
		return lines
	}
	made, err := s.Store.AddHighScore(context.Background(), st.PlayerName, st.Score)
	if err != nil {
		s.Log.Error(err.Error())
		return append(lines, fmt.Sprintf("Could not record your score: %v", err))
	}
	s.Log.Event("game_over", st.PlayerName, fmt.Sprintf("score %d, board=%v", st.Score, made))
	if made {
		return append(lines, "You made the high score board! Type /scores to see it.")
	}
	return lines
}
