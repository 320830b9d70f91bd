// Package events picks random street events, runs them through the
// requirement and effect pipeline, and hands combat events off as fights.
package events

import (
	"github.com/nathoo/gangwar/engine/effects"
	"github.com/nathoo/gangwar/engine/rng"
	"github.com/nathoo/gangwar/engine/rules"
	"github.com/nathoo/gangwar/types"
)

// DefaultWeight applies to catalog entries with no positive weight.
const DefaultWeight = 10

// MonsterChance is the chance an NPC encounter turns into a monster fight.
const MonsterChance = 0.15

// MonsterHealth is the Sewer Monster's health pool.
const MonsterHealth = 300

// Generate picks one event by weight. An empty catalog yields the zero event.
func Generate(catalog []types.RandomEvent, r *rng.RNG) types.RandomEvent {
	if len(catalog) == 0 {
		return types.RandomEvent{}
	}
	weights := make([]int, len(catalog))
	for i, ev := range catalog {
		weights[i] = weightOf(ev)
	}
	return catalog[r.WeightedSelect(weights)]
}

func weightOf(ev types.RandomEvent) int {
	if ev.Weight <= 0 {
		return DefaultWeight
	}
	return ev.Weight
}

// IsCombat reports whether an event type always opens a fight.
func IsCombat(t types.EventType) bool {
	switch t {
	case types.EventPoliceChase, types.EventGangFight, types.EventHitSquad:
		return true
	}
	return false
}

// EncounterFor derives the fight an event opens, if any. Police come 2-5
// strong at 10-12 hp each, rival gangs 2-4 at 15, hit squads 3-6 at 20-25.
// NPC encounters turn into a Sewer Monster fight MonsterChance of the time.
func EncounterFor(ev types.RandomEvent, r *rng.RNG) (*types.Fight, bool) {
	var enemy types.EnemyType
	var count, perUnit int
	switch ev.Type {
	case types.EventPoliceChase:
		enemy = types.EnemyPolice
		count = r.Range(2, 5)
		perUnit = r.Range(10, 12)
	case types.EventGangFight:
		enemy = types.EnemyGang
		count = r.Range(2, 4)
		perUnit = 15
	case types.EventHitSquad:
		enemy = types.EnemyHitSquad
		count = r.Range(3, 6)
		perUnit = r.Range(20, 25)
	case types.EventNPCEncounter:
		if !r.Chance(MonsterChance) {
			return nil, false
		}
		enemy = types.EnemyMonster
		count = 1
		perUnit = MonsterHealth
	default:
		return nil, false
	}
	return &types.Fight{
		Enemy:   enemy,
		Count:   count,
		Health:  float64(count * perUnit),
		EventID: ev.ID,
	}, true
}

// Outcome is what one wander step produced.
type Outcome struct {
	Event    types.RandomEvent
	Eligible bool
	Unmet    []string // failing requirement stats when not eligible
	Output   []string
	Fight    *types.Fight
}

// NeutralLine is shown when the picked event does not apply.
const NeutralLine = "You walk the block. Nothing happens."

// Run picks an event and resolves it against s. Ineligible events leave s
// untouched and produce the neutral line. Eligible events apply their
// effects; combat events and escalated NPC encounters return a Fight for the
// caller to open.
func Run(catalog []types.RandomEvent, s *types.GameState, r *rng.RNG) Outcome {
	ev := Generate(catalog, r)
	out := Outcome{Event: ev}
	if ev.ID == "" {
		out.Output = []string{NeutralLine}
		return out
	}
	if !rules.MeetsRequirements(ev, s) {
		out.Unmet = rules.Failing(ev, s)
		out.Output = []string{NeutralLine}
		return out
	}
	out.Eligible = true
	lives := s.Lives
	if ev.Title != "" {
		out.Output = append(out.Output, "== "+ev.Title+" ==")
	}
	out.Output = append(out.Output, effects.ApplyEffects(ev, s)...)
	if s.Lives < lives {
		return out
	}
	if fight, ok := EncounterFor(ev, r); ok {
		out.Fight = fight
	}
	return out
}
