// Package types defines the shared data structures for the gang war engine.
// This package contains only type definitions. No logic, no methods.
package types

// Weapon identifies a weapon kind the player can attack with.
type Weapon string

const (
	WeaponKnife         Weapon = "knife"
	WeaponBrassKnuckles Weapon = "brass_knuckles"
	WeaponBat           Weapon = "barbed_wire_bat"
	WeaponPistol        Weapon = "pistol"
	WeaponGhostGun      Weapon = "ghost_gun"
	WeaponUzi           Weapon = "uzi"
	WeaponGrenade       Weapon = "grenade"
	WeaponMissile       Weapon = "missile_launcher"
)

// EnemyType is the closed set of enemy archetypes.
type EnemyType string

const (
	EnemyGang     EnemyType = "gang"
	EnemyPolice   EnemyType = "police"
	EnemyHitSquad EnemyType = "hit_squad"
	EnemyMonster  EnemyType = "monster"
)

// Drug kinds tracked in inventory and on the price board.
const (
	DrugWeed      = "weed"
	DrugCrack     = "crack"
	DrugCoke      = "coke"
	DrugIce       = "ice"
	DrugPercs     = "percs"
	DrugPixieDust = "pixie_dust"
)

// Pistol upgrade types. The first purchase locks the type.
const (
	UpgradeNone     = "none"
	UpgradeDamage   = "damage"
	UpgradeAccuracy = "accuracy"
	UpgradeMagazine = "magazine"
)

// EventType tags a catalog entry.
type EventType string

const (
	EventBabyMomma    EventType = "baby_momma"
	EventPoliceChase  EventType = "police_chase"
	EventGangFight    EventType = "gang_fight"
	EventHitSquad     EventType = "hit_squad"
	EventNPCEncounter EventType = "npc_encounter"
	EventTreasureFind EventType = "treasure_find"
	EventHealthRest   EventType = "health_rest"
	EventMoneyFind    EventType = "money_find"
	EventDrugFind     EventType = "drug_find"
	EventAmmoFind     EventType = "ammo_find"
	EventWeaponFind   EventType = "weapon_find"
)

// Flags are narrative capability switches.
type Flags struct {
	HasID     bool `json:"has_id"`
	HasInfo   bool `json:"has_info"`
	HasSwitch bool `json:"has_switch"`
}

// Weapons holds ownership and ammo counts.
type Weapons struct {
	Pistols             int  `json:"pistols"`
	GhostGuns           int  `json:"ghost_guns"`
	Uzis                int  `json:"uzis"`
	Grenades            int  `json:"grenades"`
	MissileLauncher     int  `json:"missile_launcher"`
	Missiles            int  `json:"missiles"`
	BarbedWireBat       int  `json:"barbed_wire_bat"`
	BrassKnuckles       int  `json:"brass_knuckles"`
	Knife               int  `json:"knife"` // informational; the knife is always usable
	Vest                int  `json:"vest"`  // defense points
	Bullets             int  `json:"bullets"`
	ExplodingBullets    int  `json:"exploding_bullets"`
	UseExplodingBullets bool `json:"use_exploding_bullets"`
}

// Drugs holds per-kind inventory counts.
type Drugs struct {
	Weed      int `json:"weed"`
	Crack     int `json:"crack"`
	Coke      int `json:"coke"`
	Ice       int `json:"ice"`
	Percs     int `json:"percs"`
	PixieDust int `json:"pixie_dust"`
}

// Fight is an open combat encounter handed off by the event generator.
// The enemy health pool is shared across all enemies.
type Fight struct {
	Enemy   EnemyType `json:"enemy"`
	Count   int       `json:"count"`
	Health  float64   `json:"health"`
	EventID string    `json:"event_id,omitempty"`
}

// GameState is the complete mutable session state.
type GameState struct {
	PlayerName string `json:"player_name"`
	GangName   string `json:"gang_name"`

	Money   int `json:"money"`
	Account int `json:"account"`
	Loan    int `json:"loan"`

	Members  int `json:"members"`
	Squidies int `json:"squidies"`

	Health    int `json:"health"`
	MaxHealth int `json:"max_health"`
	Lives     int `json:"lives"`

	Day      int `json:"day"`
	Steps    int `json:"steps"`
	MaxSteps int `json:"max_steps"`
	Score    int `json:"current_score"`

	DrugPrices map[string]int `json:"drug_prices"`

	Flags   Flags   `json:"flags"`
	Weapons Weapons `json:"weapons"`
	Drugs   Drugs   `json:"drugs"`

	PistolUpgradeType string `json:"pistol_upgrade_type"`
	PistolUpgraded    bool   `json:"pistol_upgraded"`

	Fight *Fight `json:"fight,omitempty"`
}

// Requirement is a predicate on a named stat or flag.
type Requirement struct {
	Op    string `json:"op"` // "min" or "eq"
	Value int    `json:"value"`
}

// RandomEvent is an immutable catalog entry.
type RandomEvent struct {
	ID           string
	Title        string
	Description  string // may contain {player}, {gang}, {day}
	Type         EventType
	Weight       int
	Effects      map[string]int
	Requirements map[string]Requirement
}

// CombatResult is the outcome of one resolver call.
type CombatResult struct {
	DamageDealt          int
	DamageTaken          int
	EnemiesKilled        int
	EnemiesRemaining     int
	EnemyHealthRemaining float64
	Log                  []string
	Victory              bool
	Defeat               bool
	LifeLost             bool
	GameOver             bool
	Recruited            bool
}

// DrugResult is the outcome of using one unit of a drug.
type DrugResult struct {
	Success     bool
	Message     string
	HealthDelta int
}

// Result is the output of a single session step.
type Result struct {
	Output   []string
	Event    *RandomEvent
	Combat   *CombatResult
	GameOver bool

	// Skipped names a picked event whose requirements failed; Unmet lists
	// the failing stats.
	Skipped string
	Unmet   []string
}

// HighScore is one entry on the score board.
type HighScore struct {
	Name  string
	Score int
}

// Intent is a parsed player command.
type Intent struct {
	Verb   string
	Object string // canonical-ish item name, words joined with "_"
	Amount int    // numeric argument, 0 when absent
}
