// Package parser converts command strings into Intent structs.
// Intentionally dumb: aliases, a numeric argument, and fuzzy item names.
package parser

import (
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/nathoo/gangwar/types"
)

var verbAliases = map[string]string{
	// Wander
	"w":       "wander",
	"walk":    "wander",
	"explore": "wander",
	"roam":    "wander",
	"hustle":  "wander",

	// Combat
	"a":      "attack",
	"hit":    "attack",
	"fight":  "attack",
	"shoot":  "attack",
	"strike": "attack",
	"kill":   "attack",
	"f":      "flee",
	"run":    "flee",
	"escape": "flee",
	"bail":   "flee",

	// Drugs
	"take":  "use",
	"smoke": "use",
	"pop":   "use",
	"snort": "use",

	// Shop
	"purchase": "buy",
	"get":      "buy",
	"mod":      "upgrade",
	"switch":   "toggle",

	// Bank
	"dep":    "deposit",
	"stash":  "deposit",
	"wd":     "withdraw",
	"loan":   "borrow",
	"pay":    "repay",
	"payoff": "repay",

	// Services
	"doc":   "heal",
	"medic": "heal",
	"hire":  "recruit",

	// Info
	"s":       "status",
	"stats":   "status",
	"st":      "status",
	"i":       "status",
	"inv":     "status",
	"guns":    "weapons",
	"arsenal": "weapons",
	"market":  "prices",
	"board":   "prices",
	"price":   "prices",
	"sc":      "score",
	"h":       "help",
	"?":       "help",
}

// itemAliases map street names onto canonical item IDs.
var itemAliases = map[string]string{
	"bat":         "barbed_wire_bat",
	"knuckles":    "brass_knuckles",
	"brass":       "brass_knuckles",
	"gun":         "pistol",
	"glock":       "pistol",
	"piece":       "pistol",
	"ghost":       "ghost_gun",
	"launcher":    "missile_launcher",
	"rpg":         "missile_launcher",
	"rounds":      "bullets",
	"ammo":        "bullets",
	"bullet":      "bullets",
	"explosive":   "exploding_bullets",
	"exploding":   "exploding_bullets",
	"nade":        "grenade",
	"light_vest":  "vest_light",
	"medium_vest": "vest_medium",
	"heavy_vest":  "vest_heavy",
	"vest":        "vest_light",
	"id":          "fake_id",
	"papers":      "fake_id",
	"meds":        "medical",
	"dust":        "pixie_dust",
	"pixie":       "pixie_dust",
	"perc":        "percs",
	"pills":       "percs",
	"rock":        "crack",
	"meth":        "ice",
	"mod":         "upgrade",
}

var fillers = map[string]bool{
	"the": true, "a": true, "an": true, "some": true,
	"with": true, "my": true, "of": true, "x": true,
}

// Parse converts a raw command string into an Intent. The first number in
// the arguments becomes Amount; the remaining words become Object.
func Parse(input string) types.Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Intent{}
	}

	words := strings.Fields(strings.ToLower(input))
	if alias, ok := verbAliases[words[0]]; ok {
		words[0] = alias
	}

	intent := types.Intent{Verb: words[0]}
	var rest []string
	for _, w := range words[1:] {
		if fillers[w] {
			continue
		}
		if n, ok := parseAmount(w); ok && intent.Amount == 0 {
			intent.Amount = n
			continue
		}
		rest = append(rest, w)
	}
	object := strings.Join(rest, "_")
	if alias, ok := itemAliases[object]; ok {
		object = alias
	}
	intent.Object = object
	return intent
}

// parseAmount accepts "500", "$1,500" and "10x".
func parseAmount(w string) (int, bool) {
	w = strings.TrimPrefix(w, "$")
	w = strings.TrimSuffix(w, "x")
	w = strings.ReplaceAll(w, ",", "")
	if w == "" {
		return 0, false
	}
	n, err := strconv.Atoi(w)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

type scored struct {
	val   string
	score float64
}

// Match resolves a typed name against candidates: exact, then prefix, then
// the closest name within a length-scaled edit distance. Ties go to the
// alphabetically first candidate.
func Match(token string, candidates []string) (string, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return "", false
	}
	if alias, ok := itemAliases[token]; ok {
		token = alias
	}
	var results []scored
	for _, cand := range candidates {
		var score float64
		switch {
		case token == cand:
			score = 1.0
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			score = 0.72 - 0.08*float64(dist)
		}
		results = append(results, scored{val: cand, score: score})
	}
	if len(results) == 0 {
		return "", false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})
	return results[0].val, true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
