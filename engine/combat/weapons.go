package combat

import (
	"github.com/nathoo/gangwar/types"
)

// WeaponSpec describes how a weapon attacks.
type WeaponSpec struct {
	Kind    types.Weapon
	Name    string
	MinDmg  int
	MaxDmg  int
	Rounds  int  // ammo units consumed per attack; 0 for melee
	Pistol  bool // pistol upgrades apply
	Special bool // grenades and missiles have their own stock
}

// Weapons is the weapon table in display order.
var Weapons = []WeaponSpec{
	{Kind: types.WeaponKnife, Name: "Knife", MinDmg: 10, MaxDmg: 20},
	{Kind: types.WeaponBrassKnuckles, Name: "Brass Knuckles", MinDmg: 15, MaxDmg: 25},
	{Kind: types.WeaponBat, Name: "Barbed Wire Bat", MinDmg: 20, MaxDmg: 40},
	{Kind: types.WeaponPistol, Name: "Pistol", MinDmg: 15, MaxDmg: 29, Rounds: 1, Pistol: true},
	{Kind: types.WeaponGhostGun, Name: "Ghost Gun", MinDmg: 15, MaxDmg: 34, Rounds: 1, Pistol: true},
	{Kind: types.WeaponUzi, Name: "Uzi", MinDmg: 20, MaxDmg: 49, Rounds: 3},
	{Kind: types.WeaponGrenade, Name: "Grenade", MinDmg: 30, MaxDmg: 99, Rounds: 1, Special: true},
	{Kind: types.WeaponMissile, Name: "Missile Launcher", MinDmg: 50, MaxDmg: 199, Rounds: 1, Special: true},
}

// Lookup returns the spec for a weapon kind.
func Lookup(kind types.Weapon) (WeaponSpec, bool) {
	for _, w := range Weapons {
		if w.Kind == kind {
			return w, true
		}
	}
	return WeaponSpec{}, false
}

// Owns reports whether the player has the weapon at all, ignoring ammo.
func Owns(s *types.GameState, kind types.Weapon) bool {
	w := s.Weapons
	switch kind {
	case types.WeaponKnife:
		return true
	case types.WeaponBrassKnuckles:
		return w.BrassKnuckles > 0
	case types.WeaponBat:
		return w.BarbedWireBat > 0
	case types.WeaponPistol:
		return w.Pistols > 0
	case types.WeaponGhostGun:
		return w.GhostGuns > 0
	case types.WeaponUzi:
		return w.Uzis > 0
	case types.WeaponGrenade:
		return w.Grenades > 0
	case types.WeaponMissile:
		return w.MissileLauncher > 0
	}
	return false
}

// Available lists the weapons the player owns, in display order.
func Available(s *types.GameState) []types.Weapon {
	var out []types.Weapon
	for _, w := range Weapons {
		if Owns(s, w.Kind) {
			out = append(out, w.Kind)
		}
	}
	return out
}

// AmmoLeft reports how many attacks the current stock allows.
func AmmoLeft(s *types.GameState, kind types.Weapon) int {
	spec, ok := Lookup(kind)
	if !ok || !Owns(s, kind) {
		return 0
	}
	w := s.Weapons
	switch kind {
	case types.WeaponGrenade:
		return w.Grenades
	case types.WeaponMissile:
		return w.Missiles
	}
	if spec.Rounds == 0 {
		return -1
	}
	return (w.Bullets + w.ExplodingBullets) / spec.Rounds
}

// consumeAmmo takes the rounds for one attack. It reports whether the
// attack can proceed and whether exploding rounds were used. When free is
// set the check still runs but nothing is deducted.
func consumeAmmo(s *types.GameState, spec WeaponSpec, free bool) (ok, exploding bool) {
	w := &s.Weapons
	switch spec.Kind {
	case types.WeaponGrenade:
		if w.Grenades < 1 {
			return false, false
		}
		if !free {
			w.Grenades--
		}
		return true, false
	case types.WeaponMissile:
		if w.Missiles < 1 {
			return false, false
		}
		if !free {
			w.Missiles--
		}
		return true, false
	}
	if spec.Rounds == 0 {
		return true, false
	}
	canExplode := spec.Kind == types.WeaponPistol || spec.Kind == types.WeaponUzi
	if canExplode && w.UseExplodingBullets && w.ExplodingBullets >= spec.Rounds {
		if !free {
			w.ExplodingBullets -= spec.Rounds
		}
		return true, true
	}
	if w.Bullets >= spec.Rounds {
		if !free {
			w.Bullets -= spec.Rounds
		}
		return true, false
	}
	return false, false
}

// hasAmmo is consumeAmmo without side effects.
func hasAmmo(s *types.GameState, spec WeaponSpec) bool {
	ok, _ := consumeAmmo(s, spec, true)
	return ok
}
