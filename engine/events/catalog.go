package events

import (
	"github.com/nathoo/gangwar/types"
)

func atLeast(v int) types.Requirement { return types.Requirement{Op: "min", Value: v} }
func equals(v int) types.Requirement  { return types.Requirement{Op: "eq", Value: v} }

// defaultCatalog is the built-in street event table.
var defaultCatalog = []types.RandomEvent{
	{
		ID:           "child_support",
		Title:        "Baby Momma Drama",
		Description:  "Your baby momma tracks you down on the corner. She wants her child support, {player}, and she wants it now.",
		Type:         types.EventBabyMomma,
		Weight:       8,
		Effects:      map[string]int{"money": -500},
		Requirements: map[string]types.Requirement{"money": atLeast(500)},
	},
	{
		ID:          "keyed_car",
		Title:       "She Keyed Your Ride",
		Description: "You come out to find your ride keyed and your tires slashed. You twist an ankle chasing her down the block.",
		Type:        types.EventBabyMomma,
		Weight:      6,
		Effects:     map[string]int{"money": -200, "health": -5},
	},
	{
		ID:          "five_o",
		Title:       "Five-O Rolls Up",
		Description: "Blue lights behind you. The cops jump out swinging.",
		Type:        types.EventPoliceChase,
		Weight:      10,
	},
	{
		ID:           "checkpoint",
		Title:        "Checkpoint",
		Description:  "A checkpoint on the boulevard. Without papers you'll have to fight your way through.",
		Type:         types.EventPoliceChase,
		Weight:       6,
		Requirements: map[string]types.Requirement{"has_id": equals(0)},
	},
	{
		ID:          "squidie_corner",
		Title:       "Squidies on the Corner",
		Description: "A pack of Squidies is posted up on {gang} turf. Time to run them off.",
		Type:        types.EventGangFight,
		Weight:      12,
	},
	{
		ID:           "turf_war",
		Title:        "Turf War",
		Description:  "The Squidies roll up on your crew at the park. It's going down.",
		Type:         types.EventGangFight,
		Weight:       6,
		Requirements: map[string]types.Requirement{"members": atLeast(3)},
	},
	{
		ID:           "contract",
		Title:        "Contract on Your Head",
		Description:  "Word is the Squidies put a price on {player}. The hit squad found you.",
		Type:         types.EventHitSquad,
		Weight:       5,
		Requirements: map[string]types.Requirement{"day": atLeast(3)},
	},
	{
		ID:          "old_head",
		Title:       "Old Head on the Stoop",
		Description: "An old head waves you over and tells you which blocks are hot tonight.",
		Type:        types.EventNPCEncounter,
		Weight:      8,
		Effects:     map[string]int{"has_info": 1},
	},
	{
		ID:           "switch_dealer",
		Title:        "Guy With a Switch",
		Description:  "A kid in a hoodie sells you a switch out of his backpack.",
		Type:         types.EventNPCEncounter,
		Weight:       4,
		Effects:      map[string]int{"money": -1000, "has_switch": 1},
		Requirements: map[string]types.Requirement{"money": atLeast(1000), "has_switch": equals(0)},
	},
	{
		ID:          "sewer_grate",
		Title:       "Noises From the Sewer",
		Description: "Something is scraping around under the manhole cover.",
		Type:        types.EventNPCEncounter,
		Weight:      6,
	},
	{
		ID:           "stash_house",
		Title:        "Stash House",
		Description:  "Your info was good. The stash house is empty and the safe is open.",
		Type:         types.EventTreasureFind,
		Weight:       5,
		Effects:      map[string]int{"money": 2500, "has_info": -1},
		Requirements: map[string]types.Requirement{"has_info": equals(1)},
	},
	{
		ID:          "dumpster_safe",
		Title:       "Dumpster Safe",
		Description: "Somebody tossed a safe in the dumpster. It wasn't locked.",
		Type:        types.EventTreasureFind,
		Weight:      4,
		Effects:     map[string]int{"money": 800},
	},
	{
		ID:          "grandmas_couch",
		Title:       "Grandma's Couch",
		Description: "You crash at grandma's. She feeds you and doesn't ask questions.",
		Type:        types.EventHealthRest,
		Weight:      8,
		Effects:     map[string]int{"health": 20},
	},
	{
		ID:          "free_clinic",
		Title:       "Free Clinic",
		Description: "The free clinic stitches you up, no insurance needed.",
		Type:        types.EventHealthRest,
		Weight:      6,
		Effects:     map[string]int{"health": 10},
	},
	{
		ID:          "dropped_wallet",
		Title:       "Dropped Wallet",
		Description: "A fat wallet on the sidewalk. Finders keepers.",
		Type:        types.EventMoneyFind,
		Weight:      10,
		Effects:     map[string]int{"money": 150},
	},
	{
		ID:          "scratcher",
		Title:       "Lucky Scratcher",
		Description: "The corner store scratcher hits on day {day}.",
		Type:        types.EventMoneyFind,
		Weight:      5,
		Effects:     map[string]int{"money": 500},
	},
	{
		ID:          "abandoned_backpack",
		Title:       "Abandoned Backpack",
		Description: "Someone ditched a backpack running from the cops. It smells like weed.",
		Type:        types.EventDrugFind,
		Weight:      8,
		Effects:     map[string]int{types.DrugWeed: 3},
	},
	{
		ID:          "busted_stash",
		Title:       "Busted Stash",
		Description: "A Squidie stash spot behind a loose brick. Their loss.",
		Type:        types.EventDrugFind,
		Weight:      5,
		Effects:     map[string]int{types.DrugCrack: 2, types.DrugCoke: 1},
	},
	{
		ID:          "full_mag",
		Title:       "Full Mag",
		Description: "A full magazine in the gutter, still wrapped in a bandana.",
		Type:        types.EventAmmoFind,
		Weight:      8,
		Effects:     map[string]int{"bullets": 10},
	},
	{
		ID:           "ammo_crate",
		Title:        "Crate in the Alley",
		Description:  "A crate of hot rounds fell off a truck.",
		Type:         types.EventAmmoFind,
		Weight:       3,
		Effects:      map[string]int{"exploding_bullets": 5},
		Requirements: map[string]types.Requirement{"day": atLeast(2)},
	},
	{
		ID:          "gutter_knuckles",
		Title:       "Knuckles in the Gutter",
		Description: "A set of brass knuckles glints in the gutter.",
		Type:        types.EventWeaponFind,
		Weight:      5,
		Effects:     map[string]int{"brass_knuckles": 1},
	},
	{
		ID:           "pipe_bomb",
		Title:        "Army Surplus",
		Description:  "Your cousin's army surplus connect hooks {gang} up with a grenade.",
		Type:         types.EventWeaponFind,
		Weight:       3,
		Effects:      map[string]int{"grenades": 1},
		Requirements: map[string]types.Requirement{"members": atLeast(2)},
	},
}

// DefaultCatalog returns the built-in event catalog. The returned slice is a
// copy; the entries' maps are shared and must be treated as read-only.
func DefaultCatalog() []types.RandomEvent {
	return append([]types.RandomEvent(nil), defaultCatalog...)
}
