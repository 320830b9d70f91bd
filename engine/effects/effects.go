// Package effects applies an event's stat deltas to the game state.
// Every delta goes through the state mutators; nothing here decides
// eligibility.
package effects

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/nathoo/gangwar/engine/state"
	"github.com/nathoo/gangwar/types"
)

// labels are display names for stats in effect lines.
var labels = map[string]string{
	"money":             "cash",
	"account":           "bank account",
	"loan":              "loan",
	"members":           "gang members",
	"squidies":          "Squidies",
	"health":            "health",
	"lives":             "lives",
	"steps":             "steps",
	"bullets":           "bullets",
	"exploding_bullets": "exploding bullets",
	"pistols":           "pistols",
	"ghost_guns":        "ghost guns",
	"uzis":              "uzis",
	"grenades":          "grenades",
	"missile_launcher":  "missile launcher",
	"missiles":          "missiles",
	"barbed_wire_bat":   "barbed wire bat",
	"brass_knuckles":    "brass knuckles",
	"vest":              "vest points",
	"pixie_dust":        "pixie dust",
}

var flagLines = map[string][2]string{
	"has_id":     {"You got yourself a fake ID.", "You lost your fake ID."},
	"has_info":   {"You've got inside info now.", "Your info went stale."},
	"has_switch": {"You picked up a switch.", "You lost the switch."},
}

// ApplyEffects applies every delta of ev to s and returns the narrative:
// the interpolated description followed by one line per stat that changed.
// Deltas apply in stat-name order. A health loss that drops the player is
// resolved through state.ResolveDefeat.
func ApplyEffects(ev types.RandomEvent, s *types.GameState) []string {
	var output []string
	if ev.Description != "" {
		output = append(output, Interpolate(ev.Description, s))
	}

	stats := make([]string, 0, len(ev.Effects))
	for stat := range ev.Effects {
		stats = append(stats, stat)
	}
	sort.Strings(stats)

	for _, stat := range stats {
		delta := ev.Effects[stat]
		if delta == 0 {
			continue
		}
		before, ok := state.Stat(s, stat)
		if !ok {
			// Unknown stats are rejected by the loader; the built-in catalog has none.
			continue
		}
		if err := state.AddStat(s, stat, delta); err != nil {
			continue
		}
		after, _ := state.Stat(s, stat)
		if line := describe(stat, after-before); line != "" {
			output = append(output, line)
		}
	}

	if s.Health <= 0 {
		lifeLost, gameOver := state.ResolveDefeat(s)
		switch {
		case gameOver:
			output = append(output, "That was the last straw. GAME OVER.")
		case lifeLost:
			output = append(output, fmt.Sprintf("You black out and wake up in the ER. Lives left: %d.", s.Lives))
		}
	}
	return output
}

// describe renders one applied change. Zero changes render nothing.
func describe(stat string, change int) string {
	if change == 0 {
		return ""
	}
	if lines, ok := flagLines[stat]; ok {
		if change > 0 {
			return lines[0]
		}
		return lines[1]
	}
	sign := "+"
	if change < 0 {
		sign = "-"
		change = -change
	}
	if stat == "money" || stat == "account" || stat == "loan" {
		return fmt.Sprintf("%s $%s %s", sign, Money(change), labels[stat])
	}
	label, ok := labels[stat]
	if !ok {
		label = stat
	}
	return fmt.Sprintf("%s%d %s", sign, change, label)
}

// Interpolate replaces {player}, {gang} and {day} in text.
func Interpolate(text string, s *types.GameState) string {
	r := strings.NewReplacer(
		"{player}", s.PlayerName,
		"{gang}", s.GangName,
		"{day}", strconv.Itoa(s.Day),
	)
	return r.Replace(text)
}

// Money formats an amount with thousands separators.
func Money(n int) string {
	return humanize.Comma(int64(n))
}
