// Package shop implements the gun shack, the drug corner and street
// services. Every refusal is a sentinel error; nothing here panics on bad
// player input.
package shop

import (
	"errors"
	"fmt"

	"github.com/nathoo/gangwar/engine/economy"
	"github.com/nathoo/gangwar/engine/effects"
	"github.com/nathoo/gangwar/engine/rng"
	"github.com/nathoo/gangwar/engine/state"
	"github.com/nathoo/gangwar/types"
)

// Refusals.
var (
	ErrInsufficientFunds = state.ErrInsufficientFunds
	ErrUnknownItem       = errors.New("no such item")
	ErrUpgradeLocked     = errors.New("pistol is already upgraded with a different mod")
	ErrNoPistol          = errors.New("you need a pistol or ghost gun first")
	ErrNotEnough         = errors.New("not enough to sell")
	ErrNoUpgrade         = errors.New("no pistol upgrade purchased")
	ErrAlreadyOwned      = errors.New("already owned")
)

// Item is one line of the gun shack's stock.
type Item struct {
	ID    string
	Name  string
	Price int
	Stat  string // stat credited on purchase
	Units int    // stat units per purchase
	Once  bool   // can only be owned once
	Set   bool   // purchase replaces the stat instead of adding to it
}

// Catalog is the gun shack in display order.
var Catalog = []Item{
	{ID: "pistol", Name: "Pistol", Price: 1200, Stat: "pistols", Units: 1},
	{ID: "bullets", Name: "Bullets (50 rounds)", Price: 100, Stat: "bullets", Units: 50},
	{ID: "exploding_bullets", Name: "Exploding Bullets (20 rounds)", Price: 500, Stat: "exploding_bullets", Units: 20},
	{ID: "brass_knuckles", Name: "Brass Knuckles", Price: 1500, Stat: "brass_knuckles", Units: 1, Once: true},
	{ID: "barbed_wire_bat", Name: "Barbed Wire Bat", Price: 2500, Stat: "barbed_wire_bat", Units: 1, Once: true},
	{ID: "ghost_gun", Name: "Ghost Gun", Price: 5000, Stat: "ghost_guns", Units: 1},
	{ID: "grenade", Name: "Grenade", Price: 1000, Stat: "grenades", Units: 1},
	{ID: "uzi", Name: "Uzi", Price: 100000, Stat: "uzis", Units: 1},
	{ID: "missile_launcher", Name: "Missile Launcher", Price: 1000000, Stat: "missile_launcher", Units: 1, Once: true},
	{ID: "missile", Name: "Missile", Price: 100000, Stat: "missiles", Units: 1},
	{ID: "vest_light", Name: "Light Vest (5 pts)", Price: 30000, Stat: "vest", Units: 5, Set: true},
	{ID: "vest_medium", Name: "Medium Vest (10 pts)", Price: 55000, Stat: "vest", Units: 10, Set: true},
	{ID: "vest_heavy", Name: "Heavy Vest (15 pts)", Price: 75000, Stat: "vest", Units: 15, Set: true},
}

// UpgradePrices are the one-time prices of the pistol mods.
var UpgradePrices = map[string]int{
	types.UpgradeDamage:   5000,
	types.UpgradeAccuracy: 4500,
	types.UpgradeMagazine: 3000,
}

// Service prices.
const (
	MedicalPrice = 1000
	MedicalHeal  = 50
	RecruitPrice = 10000
	FakeIDPrice  = 5000
	InfoPrice    = 2000
)

// Big drug sales can bring in a new member.
const (
	BigSaleThreshold  = 5000
	BigSaleRecruitPct = 0.25
)

// Find returns the catalog item with the given ID.
func Find(id string) (Item, bool) {
	for _, it := range Catalog {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Services are sold with "buy" alongside the gun shack stock.
var Services = []string{"medical", "fake_id", "info"}

// IDs lists every gun shack item and service ID.
func IDs() []string {
	ids := make([]string, 0, len(Catalog)+len(Services))
	for _, it := range Catalog {
		ids = append(ids, it.ID)
	}
	return append(ids, Services...)
}

// BuyService buys a street service by ID.
func BuyService(s *types.GameState, id string) (string, error) {
	switch id {
	case "medical":
		return Medical(s)
	case "fake_id":
		return FakeID(s)
	case "info":
		return Info(s)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownItem, id)
}

// BuyWeapon buys qty of an item from the gun shack.
func BuyWeapon(s *types.GameState, id string, qty int) (string, error) {
	it, ok := Find(id)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	if qty <= 0 {
		return "", state.ErrInvalidAmount
	}
	if it.Once {
		if have, _ := state.Stat(s, it.Stat); have > 0 || qty > 1 {
			return "", fmt.Errorf("%w: %s", ErrAlreadyOwned, it.Name)
		}
	}
	if it.Set && qty > 1 {
		return "", fmt.Errorf("%w: one %s at a time", state.ErrInvalidAmount, it.Name)
	}
	// Checked by division so a huge quantity cannot overflow the cost.
	if qty > s.Money/it.Price {
		return "", fmt.Errorf("%w: %s costs $%s each", ErrInsufficientFunds, it.Name, effects.Money(it.Price))
	}
	cost := it.Price * qty
	state.SpendMoney(s, cost)
	if it.Set {
		// A new vest replaces the old one.
		have, _ := state.Stat(s, it.Stat)
		_ = state.AddStat(s, it.Stat, it.Units-have)
		return fmt.Sprintf("You strap on a %s for $%s.", it.Name, effects.Money(cost)), nil
	}
	_ = state.AddStat(s, it.Stat, it.Units*qty)
	if qty == 1 {
		return fmt.Sprintf("You bought a %s for $%s.", it.Name, effects.Money(cost)), nil
	}
	return fmt.Sprintf("You bought %d x %s for $%s.", qty, it.Name, effects.Money(cost)), nil
}

// BuyUpgrade buys a pistol mod. The first mod bought locks the type; buying
// the same type again is refused as well.
func BuyUpgrade(s *types.GameState, kind string) (string, error) {
	price, ok := UpgradePrices[kind]
	if !ok {
		return "", fmt.Errorf("%w: upgrade %q", ErrUnknownItem, kind)
	}
	if s.Weapons.Pistols < 1 && s.Weapons.GhostGuns < 1 {
		return "", ErrNoPistol
	}
	if s.PistolUpgradeType != types.UpgradeNone && s.PistolUpgradeType != "" {
		return "", fmt.Errorf("%w (%s)", ErrUpgradeLocked, s.PistolUpgradeType)
	}
	if !state.SpendMoney(s, price) {
		return "", fmt.Errorf("%w: the %s mod costs $%s", ErrInsufficientFunds, kind, effects.Money(price))
	}
	s.PistolUpgradeType = kind
	s.PistolUpgraded = true
	return fmt.Sprintf("Your piece now has the %s mod. It's switched on.", kind), nil
}

// ToggleUpgrade switches the purchased pistol mod on or off.
func ToggleUpgrade(s *types.GameState) (string, error) {
	if s.PistolUpgradeType == types.UpgradeNone || s.PistolUpgradeType == "" {
		return "", ErrNoUpgrade
	}
	s.PistolUpgraded = !s.PistolUpgraded
	if s.PistolUpgraded {
		return fmt.Sprintf("%s mod ON.", s.PistolUpgradeType), nil
	}
	return fmt.Sprintf("%s mod OFF.", s.PistolUpgradeType), nil
}

// ToggleExploding switches the exploding-rounds preference.
func ToggleExploding(s *types.GameState) string {
	s.Weapons.UseExplodingBullets = !s.Weapons.UseExplodingBullets
	if s.Weapons.UseExplodingBullets {
		return "Loading exploding rounds first."
	}
	return "Loading regular rounds."
}

// BuyDrug buys qty units of a drug at today's price.
func BuyDrug(s *types.GameState, kind string, qty int) (string, error) {
	if !state.IsDrug(kind) {
		return "", fmt.Errorf("%w: %q", ErrUnknownItem, kind)
	}
	if qty <= 0 {
		return "", state.ErrInvalidAmount
	}
	price := max(s.DrugPrices[kind], economy.MinPrice)
	if qty > s.Money/price {
		return "", fmt.Errorf("%w: %s is $%s a unit", ErrInsufficientFunds, kind, effects.Money(price))
	}
	cost := price * qty
	state.SpendMoney(s, cost)
	_ = state.AddDrug(s, kind, qty)
	return fmt.Sprintf("You bought %d %s for $%s.", qty, kind, effects.Money(cost)), nil
}

// SellDrug sells qty units of a drug at today's price. A sale worth
// BigSaleThreshold or more recruits a new member BigSaleRecruitPct of the
// time.
func SellDrug(s *types.GameState, r *rng.RNG, kind string, qty int) (string, error) {
	have, ok := state.DrugCount(s, kind)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownItem, kind)
	}
	if qty <= 0 {
		return "", state.ErrInvalidAmount
	}
	if have < qty {
		return "", fmt.Errorf("%w: you only have %d %s", ErrNotEnough, have, kind)
	}
	price := max(s.DrugPrices[kind], economy.MinPrice)
	total := state.MaxBalance
	if qty <= state.MaxBalance/price {
		total = price * qty
	}
	_ = state.AddDrug(s, kind, -qty)
	total = state.Credit(s, total)
	msg := fmt.Sprintf("You sold %d %s for $%s.", qty, kind, effects.Money(total))
	if total >= BigSaleThreshold && r.Chance(BigSaleRecruitPct) {
		s.Members++
		msg += " Word gets around. A new member joins your gang."
	}
	return msg, nil
}

// Medical buys medical supplies.
func Medical(s *types.GameState) (string, error) {
	if s.Health >= s.MaxHealth {
		return "You're already in perfect health.", nil
	}
	if !state.SpendMoney(s, MedicalPrice) {
		return "", fmt.Errorf("%w: medical supplies cost $%s", ErrInsufficientFunds, effects.Money(MedicalPrice))
	}
	before := s.Health
	state.Heal(s, MedicalHeal)
	return fmt.Sprintf("The doc patches you up (+%d health).", s.Health-before), nil
}

// Recruit pays a new member to join.
func Recruit(s *types.GameState) (string, error) {
	if !state.SpendMoney(s, RecruitPrice) {
		return "", fmt.Errorf("%w: recruiting costs $%s", ErrInsufficientFunds, effects.Money(RecruitPrice))
	}
	s.Members++
	return fmt.Sprintf("A new member joins %s. You're %d strong.", s.GangName, s.Members), nil
}

// FakeID buys a fake ID.
func FakeID(s *types.GameState) (string, error) {
	if s.Flags.HasID {
		return "", fmt.Errorf("%w: fake ID", ErrAlreadyOwned)
	}
	if !state.SpendMoney(s, FakeIDPrice) {
		return "", fmt.Errorf("%w: a fake ID costs $%s", ErrInsufficientFunds, effects.Money(FakeIDPrice))
	}
	s.Flags.HasID = true
	return "You've got papers now. The cops at checkpoints won't look twice.", nil
}

// Info buys street information.
func Info(s *types.GameState) (string, error) {
	if s.Flags.HasInfo {
		return "", fmt.Errorf("%w: you already have info", ErrAlreadyOwned)
	}
	if !state.SpendMoney(s, InfoPrice) {
		return "", fmt.Errorf("%w: info costs $%s", ErrInsufficientFunds, effects.Money(InfoPrice))
	}
	s.Flags.HasInfo = true
	return "The bartender leans in and tells you where a stash house is.", nil
}
