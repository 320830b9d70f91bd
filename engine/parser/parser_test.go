package parser

import (
	"testing"

	"github.com/nathoo/gangwar/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Intent
	}{
		// Empty / whitespace
		{"empty string", "", types.Intent{}},
		{"whitespace only", "   ", types.Intent{}},

		// Basic verbs
		{"wander", "wander", types.Intent{Verb: "wander"}},
		{"flee", "flee", types.Intent{Verb: "flee"}},
		{"status", "STATUS", types.Intent{Verb: "status"}},

		// Verb aliases
		{"w → wander", "w", types.Intent{Verb: "wander"}},
		{"run → flee", "run", types.Intent{Verb: "flee"}},
		{"shoot → attack", "shoot pistol", types.Intent{Verb: "attack", Object: "pistol"}},
		{"pop → use", "pop a perc", types.Intent{Verb: "use", Object: "percs"}},
		{"doc → heal", "doc", types.Intent{Verb: "heal"}},

		// Multi-word objects
		{"attack with bat", "attack with the bat", types.Intent{Verb: "attack", Object: "barbed_wire_bat"}},
		{"ghost gun", "attack ghost gun", types.Intent{Verb: "attack", Object: "ghost_gun"}},
		{"pixie dust", "sell pixie dust 3", types.Intent{Verb: "sell", Object: "pixie_dust", Amount: 3}},
		{"light vest", "buy light vest", types.Intent{Verb: "buy", Object: "vest_light"}},
		{"fake id", "buy fake id", types.Intent{Verb: "buy", Object: "fake_id"}},

		// Amounts
		{"buy qty first", "buy 2 bullets", types.Intent{Verb: "buy", Object: "bullets", Amount: 2}},
		{"deposit dollars", "deposit $1,500", types.Intent{Verb: "deposit", Amount: 1500}},
		{"qty suffix", "buy grenade 3x", types.Intent{Verb: "buy", Object: "grenade", Amount: 3}},
		{"only first number", "sell weed 2 5", types.Intent{Verb: "sell", Object: "weed_5", Amount: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	weapons := []string{"knife", "brass_knuckles", "barbed_wire_bat", "pistol", "ghost_gun", "uzi", "grenade", "missile_launcher"}
	drugs := []string{"weed", "crack", "coke", "ice", "percs", "pixie_dust"}

	tests := []struct {
		name       string
		token      string
		candidates []string
		want       string
		wantOK     bool
	}{
		{"exact", "uzi", weapons, "uzi", true},
		{"prefix", "gren", weapons, "grenade", true},
		{"prefix multiword", "missile", weapons, "missile_launcher", true},
		{"typo", "pistal", weapons, "pistol", true},
		{"alias", "bat", weapons, "barbed_wire_bat", true},
		{"drug typo", "perks", drugs, "percs", true},
		{"case", "WEED", drugs, "weed", true},
		{"too far", "bazooka", weapons, "", false},
		{"empty", "", weapons, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Match(tt.token, tt.candidates)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Match(%q) = (%q, %v), want (%q, %v)", tt.token, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLevenshteinLimit(t *testing.T) {
	tests := []struct{ length, want int }{{3, 1}, {4, 1}, {5, 2}, {8, 2}, {9, 3}, {16, 3}}
	for _, tt := range tests {
		if got := levenshteinLimit(tt.length); got != tt.want {
			t.Errorf("levenshteinLimit(%d) = %d, want %d", tt.length, got, tt.want)
		}
	}
}
