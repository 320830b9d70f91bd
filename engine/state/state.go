// Package state holds the invariant-preserving mutators over GameState and
// named-stat lookups used by event effects and requirements.
package state

import (
	"errors"
	"fmt"
	"sort"

	"github.com/nathoo/gangwar/engine/economy"
	"github.com/nathoo/gangwar/engine/rng"
	"github.com/nathoo/gangwar/types"
)

// Gameplay refusals. These are never fatal.
var (
	ErrInsufficientFunds = errors.New("not enough money")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrNoLoan            = errors.New("no outstanding loan")
	ErrUnknownStat       = errors.New("unknown stat")
	ErrLoanLimit         = errors.New("the loan shark won't lend that much")
	ErrAccountFull       = errors.New("the bank won't hold that much")
	ErrPocketsFull       = errors.New("you can't carry that much cash")
)

// MaxBalance caps cash, the bank account and every inventory count so
// balances stay far from integer overflow.
const MaxBalance = 1_000_000_000_000_000

// Defaults for a new game.
const (
	StartMoney    = 1000
	StartHealth   = 30
	MaxHealth     = 100
	StartLives    = 3
	StartMaxSteps = 15
	StartSquidies = 25
	StartBullets  = 10
	StartCrack    = 5
)

// NewState creates a fresh game state.
func NewState(player, gang string) *types.GameState {
	return &types.GameState{
		PlayerName:        player,
		GangName:          gang,
		Money:             StartMoney,
		Members:           1,
		Squidies:          StartSquidies,
		Health:            StartHealth,
		MaxHealth:         MaxHealth,
		Lives:             StartLives,
		Day:               1,
		MaxSteps:          StartMaxSteps,
		DrugPrices:        economy.InitialPrices(),
		Weapons:           types.Weapons{Pistols: 1, Bullets: StartBullets, Knife: 1},
		Drugs:             types.Drugs{Crack: StartCrack},
		PistolUpgradeType: types.UpgradeNone,
	}
}

func mustNotBeNegative(op string, amount int) {
	if amount < 0 {
		panic(fmt.Sprintf("state: %s called with negative amount %d", op, amount))
	}
}

// CanAfford reports whether the player holds at least amount in cash.
func CanAfford(s *types.GameState, amount int) bool {
	return s.Money >= amount
}

// SpendMoney deducts amount from cash. It returns false and leaves money
// untouched when the player cannot afford it.
func SpendMoney(s *types.GameState, amount int) bool {
	mustNotBeNegative("SpendMoney", amount)
	if !CanAfford(s, amount) {
		return false
	}
	s.Money -= amount
	return true
}

// Credit adds amount to cash, saturating at MaxBalance, and returns what
// was actually credited.
func Credit(s *types.GameState, amount int) int {
	mustNotBeNegative("Credit", amount)
	amount = min(amount, MaxBalance-s.Money)
	s.Money += amount
	return amount
}

// addCapped applies delta to *p without passing MaxBalance.
func addCapped(p *int, delta int) {
	if delta > 0 && *p > MaxBalance-delta {
		*p = MaxBalance
		return
	}
	*p += delta
}

// Heal raises health, capped at MaxHealth.
func Heal(s *types.GameState, amount int) {
	mustNotBeNegative("Heal", amount)
	s.Health += amount
	if s.Health > s.MaxHealth {
		s.Health = s.MaxHealth
	}
}

// TakeDamage lowers health with no floor. Callers interpret health <= 0
// through ResolveDefeat.
func TakeDamage(s *types.GameState, amount int) {
	mustNotBeNegative("TakeDamage", amount)
	s.Health -= amount
}

// ResolveDefeat applies the game-over rule after any health loss. When
// health is at or below zero a life is spent; with lives left the player is
// patched back up to full health, otherwise health is clamped to zero and
// the game is over.
func ResolveDefeat(s *types.GameState) (lifeLost, gameOver bool) {
	if s.Health > 0 {
		return false, IsGameOver(s)
	}
	if s.Lives > 0 {
		s.Lives--
		lifeLost = true
	}
	if s.Lives <= 0 {
		s.Health = 0
		s.Fight = nil
		return lifeLost, true
	}
	s.Health = s.MaxHealth
	s.Fight = nil
	return lifeLost, false
}

// IsGameOver reports whether the session has ended.
func IsGameOver(s *types.GameState) bool {
	return s.Lives <= 0
}

// AdvanceDay starts a new day and re-rolls drug prices.
func AdvanceDay(s *types.GameState, r *rng.RNG) {
	s.Day++
	s.Steps = 0
	economy.UpdatePrices(s, r)
}

// UpdateScore recomputes and stores the derived score.
func UpdateScore(s *types.GameState) int {
	s.Score = (s.Money+s.Account)/1000 + s.Day*100
	return s.Score
}

// intStats maps stat names to their integer fields.
var intStats = map[string]func(*types.GameState) *int{
	"money":             func(s *types.GameState) *int { return &s.Money },
	"account":           func(s *types.GameState) *int { return &s.Account },
	"loan":              func(s *types.GameState) *int { return &s.Loan },
	"members":           func(s *types.GameState) *int { return &s.Members },
	"squidies":          func(s *types.GameState) *int { return &s.Squidies },
	"health":            func(s *types.GameState) *int { return &s.Health },
	"lives":             func(s *types.GameState) *int { return &s.Lives },
	"day":               func(s *types.GameState) *int { return &s.Day },
	"steps":             func(s *types.GameState) *int { return &s.Steps },
	"pistols":           func(s *types.GameState) *int { return &s.Weapons.Pistols },
	"ghost_guns":        func(s *types.GameState) *int { return &s.Weapons.GhostGuns },
	"uzis":              func(s *types.GameState) *int { return &s.Weapons.Uzis },
	"grenades":          func(s *types.GameState) *int { return &s.Weapons.Grenades },
	"missile_launcher":  func(s *types.GameState) *int { return &s.Weapons.MissileLauncher },
	"missiles":          func(s *types.GameState) *int { return &s.Weapons.Missiles },
	"barbed_wire_bat":   func(s *types.GameState) *int { return &s.Weapons.BarbedWireBat },
	"brass_knuckles":    func(s *types.GameState) *int { return &s.Weapons.BrassKnuckles },
	"vest":              func(s *types.GameState) *int { return &s.Weapons.Vest },
	"bullets":           func(s *types.GameState) *int { return &s.Weapons.Bullets },
	"exploding_bullets": func(s *types.GameState) *int { return &s.Weapons.ExplodingBullets },
	types.DrugWeed:      func(s *types.GameState) *int { return &s.Drugs.Weed },
	types.DrugCrack:     func(s *types.GameState) *int { return &s.Drugs.Crack },
	types.DrugCoke:      func(s *types.GameState) *int { return &s.Drugs.Coke },
	types.DrugIce:       func(s *types.GameState) *int { return &s.Drugs.Ice },
	types.DrugPercs:     func(s *types.GameState) *int { return &s.Drugs.Percs },
	types.DrugPixieDust: func(s *types.GameState) *int { return &s.Drugs.PixieDust },
}

// flagStats maps flag names to their boolean fields.
var flagStats = map[string]func(*types.GameState) *bool{
	"has_id":     func(s *types.GameState) *bool { return &s.Flags.HasID },
	"has_info":   func(s *types.GameState) *bool { return &s.Flags.HasInfo },
	"has_switch": func(s *types.GameState) *bool { return &s.Flags.HasSwitch },
}

// StatNames returns every name Stat and AddStat accept, sorted.
func StatNames() []string {
	names := make([]string, 0, len(intStats)+len(flagStats))
	for n := range intStats {
		names = append(names, n)
	}
	for n := range flagStats {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IsStat reports whether name is a known stat or flag.
func IsStat(name string) bool {
	_, ok := intStats[name]
	if ok {
		return true
	}
	_, ok = flagStats[name]
	return ok
}

// Stat returns the value of a named stat. Flags read as 0 or 1.
func Stat(s *types.GameState, name string) (int, bool) {
	if f, ok := intStats[name]; ok {
		return *f(s), true
	}
	if f, ok := flagStats[name]; ok {
		if *f(s) {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// AddStat applies a signed delta to a named stat through the matching
// mutator: cash losses go through SpendMoney (draining what is there),
// health through Heal/TakeDamage, counts never drop below zero, the gang
// never drops below the player, and flags are set by positive deltas and
// cleared by negative ones.
func AddStat(s *types.GameState, name string, delta int) error {
	if f, ok := flagStats[name]; ok {
		if delta > 0 {
			*f(s) = true
		} else if delta < 0 {
			*f(s) = false
		}
		return nil
	}
	f, ok := intStats[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStat, name)
	}
	switch name {
	case "money":
		if delta >= 0 {
			Credit(s, delta)
		} else {
			SpendMoney(s, min(s.Money, -delta))
		}
		return nil
	case "health":
		if delta >= 0 {
			Heal(s, delta)
		} else {
			TakeDamage(s, -delta)
		}
		return nil
	}
	p := f(s)
	addCapped(p, delta)
	floor := 0
	if name == "members" {
		floor = 1
	}
	if *p < floor {
		*p = floor
	}
	return nil
}

// DrugKinds returns the drug kinds in display order.
func DrugKinds() []string {
	return append([]string(nil), economy.Kinds...)
}

// DrugCount returns the inventory count for a drug kind.
func DrugCount(s *types.GameState, kind string) (int, bool) {
	if !IsDrug(kind) {
		return 0, false
	}
	return Stat(s, kind)
}

// AddDrug changes a drug inventory count, clamped at zero.
func AddDrug(s *types.GameState, kind string, delta int) error {
	if !IsDrug(kind) {
		return fmt.Errorf("%w: %q is not a drug", ErrUnknownStat, kind)
	}
	return AddStat(s, kind, delta)
}

// IsDrug reports whether kind is a known drug.
func IsDrug(kind string) bool {
	_, ok := economy.BasePrices[kind]
	return ok
}

// Deposit moves cash into the bank account.
func Deposit(s *types.GameState, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > MaxBalance-s.Account {
		return ErrAccountFull
	}
	if !SpendMoney(s, amount) {
		return ErrInsufficientFunds
	}
	s.Account += amount
	return nil
}

// Withdraw moves money from the bank account into cash.
func Withdraw(s *types.GameState, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > s.Account {
		return ErrInsufficientFunds
	}
	if amount > MaxBalance-s.Money {
		return ErrPocketsFull
	}
	s.Account -= amount
	s.Money += amount
	return nil
}

// Borrow takes out a loan paid in cash. The total owed never passes
// economy.MaxLoan.
func Borrow(s *types.GameState, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > economy.MaxLoan-s.Loan {
		return ErrLoanLimit
	}
	if amount > MaxBalance-s.Money {
		return ErrPocketsFull
	}
	s.Loan += amount
	s.Money += amount
	return nil
}

// Repay pays down the loan from cash. Paying more than is owed is capped
// at the outstanding principal.
func Repay(s *types.GameState, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if s.Loan <= 0 {
		return ErrNoLoan
	}
	amount = min(amount, s.Loan)
	if !SpendMoney(s, amount) {
		return ErrInsufficientFunds
	}
	s.Loan -= amount
	return nil
}
