package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/gangwar/engine/combat"
	"github.com/nathoo/gangwar/engine/economy"
	"github.com/nathoo/gangwar/engine/effects"
	"github.com/nathoo/gangwar/engine/shop"
	"github.com/nathoo/gangwar/types"
)

var helpLines = []string{
	"Street:   wander (w), status, weapons, prices, score",
	"Fight:    attack [weapon], use <drug>, flee",
	"Shop:     buy <item> [qty], sell <drug> [qty], upgrade <damage|accuracy|magazine>",
	"          toggle upgrade, toggle exploding, heal, recruit",
	"Bank:     deposit|withdraw|borrow|repay <amount>",
}

func statusLines(s *types.GameState) []string {
	lines := []string{
		fmt.Sprintf("%s of %s. Day %d, step %d/%d.", s.PlayerName, s.GangName, s.Day, s.Steps, s.MaxSteps),
		fmt.Sprintf("Health %d/%d  Lives %d  Gang %d  Squidies left %d", s.Health, s.MaxHealth, s.Lives, s.Members, s.Squidies),
		fmt.Sprintf("Cash $%s  Bank $%s  Loan $%s", effects.Money(s.Money), effects.Money(s.Account), effects.Money(s.Loan)),
		fmt.Sprintf("Stash: weed %d, crack %d, coke %d, ice %d, percs %d, pixie dust %d (worth $%s)",
			s.Drugs.Weed, s.Drugs.Crack, s.Drugs.Coke, s.Drugs.Ice, s.Drugs.Percs, s.Drugs.PixieDust,
			effects.Money(economy.PortfolioValue(s))),
	}
	var extras []string
	if s.Flags.HasID {
		extras = append(extras, "fake ID")
	}
	if s.Flags.HasInfo {
		extras = append(extras, "inside info")
	}
	if s.Flags.HasSwitch {
		extras = append(extras, "switch")
	}
	if len(extras) > 0 {
		lines = append(lines, "Carrying: "+strings.Join(extras, ", "))
	}
	if s.Fight != nil {
		lines = append(lines, fightLine(s.Fight))
	}
	return lines
}

func weaponLines(s *types.GameState) []string {
	var lines []string
	for _, w := range combat.Available(s) {
		spec, _ := combat.Lookup(w)
		ammo := combat.AmmoLeft(s, w)
		switch {
		case ammo < 0:
			lines = append(lines, fmt.Sprintf("  %-18s %d-%d dmg", spec.Name, spec.MinDmg, spec.MaxDmg))
		default:
			lines = append(lines, fmt.Sprintf("  %-18s %d-%d dmg, %d attacks left", spec.Name, spec.MinDmg, spec.MaxDmg, ammo))
		}
	}
	w := s.Weapons
	lines = append(lines, fmt.Sprintf("Bullets %d  Exploding %d (%s)  Vest %d pts",
		w.Bullets, w.ExplodingBullets, onOff(w.UseExplodingBullets), w.Vest))
	if s.PistolUpgradeType != types.UpgradeNone && s.PistolUpgradeType != "" {
		lines = append(lines, fmt.Sprintf("Pistol mod: %s (%s)", s.PistolUpgradeType, onOff(s.PistolUpgraded)))
	}
	return lines
}

func priceLines(s *types.GameState) []string {
	lines := []string{fmt.Sprintf("Street prices, day %d:", s.Day)}
	for _, kind := range economy.Kinds {
		lines = append(lines, fmt.Sprintf("  %-11s $%s", kind, effects.Money(s.DrugPrices[kind])))
	}
	return lines
}

func shopLines() []string {
	lines := []string{"Gun shack:"}
	for _, it := range shop.Catalog {
		lines = append(lines, fmt.Sprintf("  %-18s %-30s $%s", it.ID, it.Name, effects.Money(it.Price)))
	}
	lines = append(lines,
		fmt.Sprintf("Services: medical $%s, fake_id $%s, info $%s, recruit $%s",
			effects.Money(shop.MedicalPrice), effects.Money(shop.FakeIDPrice),
			effects.Money(shop.InfoPrice), effects.Money(shop.RecruitPrice)),
		"Drugs sell at today's prices (see prices).")
	return lines
}

func upgradeLines() []string {
	kinds := make([]string, 0, len(shop.UpgradePrices))
	for k := range shop.UpgradePrices {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	lines := []string{"Pistol mods (one per piece, pick wisely):"}
	for _, k := range kinds {
		lines = append(lines, fmt.Sprintf("  %-9s $%s", k, effects.Money(shop.UpgradePrices[k])))
	}
	return lines
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
