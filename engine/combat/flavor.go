package combat

import (
	"github.com/nathoo/gangwar/engine/rng"
	"github.com/nathoo/gangwar/types"
)

// attackLines hold one %s for the enemy name.
var attackLines = map[types.Weapon][]string{
	types.WeaponKnife: {
		"You slash at the %s with your knife",
		"You lunge at the %s, blade first",
		"You stick the %s and twist",
	},
	types.WeaponBrassKnuckles: {
		"You crack the %s across the jaw with your brass knuckles",
		"Your knuckles find the %s's ribs",
		"You throw a brass-loaded haymaker at the %s",
	},
	types.WeaponBat: {
		"You swing the barbed wire bat into the %s",
		"The bat's wire tears into the %s",
		"You take a home-run cut at the %s",
	},
	types.WeaponPistol: {
		"You squeeze off a round at the %s",
		"Your pistol barks at the %s",
		"You pop a shot into the %s",
	},
	types.WeaponGhostGun: {
		"Your ghost gun spits at the %s",
		"You fire the untraceable piece at the %s",
		"A quiet shot from the ghost gun hits the %s",
	},
	types.WeaponUzi: {
		"You spray the %s with the uzi",
		"The uzi rattles a burst into the %s",
		"You hose down the %s",
	},
	types.WeaponGrenade: {
		"You lob a grenade at the %s",
		"You pull the pin and toss it at the %s",
		"The grenade rolls right under the %s",
	},
	types.WeaponMissile: {
		"You shoulder the launcher and fire at the %s",
		"A missile screams toward the %s",
		"You turn the block into a crater along with the %s",
	},
}

var counterLines = map[types.EnemyType][]string{
	types.EnemyGang: {
		"The %s jump you from every side",
		"The %s fire back from behind a parked car",
		"The %s swarm you with bats and chains",
	},
	types.EnemyPolice: {
		"The %s open fire",
		"The %s swing their batons",
		"The %s tase and tackle you",
	},
	types.EnemyHitSquad: {
		"The %s return professional fire",
		"The %s flank you with suppressing fire",
		"The %s move in tight and hit hard",
	},
	types.EnemyMonster: {
		"The %s lashes out with its claws",
		"The %s slams you into the sewer wall",
		"The %s bites down hard",
	},
}

var victoryLines = map[types.EnemyType][]string{
	types.EnemyGang: {
		"The rival crew scatters. The block is yours.",
		"The last rival drops. Nobody else wants any.",
	},
	types.EnemyPolice: {
		"The cops back off and call for backup that never comes.",
		"The squad cars peel away. You're clear.",
	},
	types.EnemyHitSquad: {
		"The hit squad is wiped out. Word will get back to the Squidies.",
		"The professionals weren't professional enough.",
	},
	types.EnemyMonster: {
		"The Sewer Monster sinks back into the muck.",
		"The thing from the sewer stops moving.",
	},
}

// missLines follow an empty weapon.
var missLines = []string{
	"Your attack does nothing.",
	"All you get is a dry click.",
	"You point it and pray. Nothing happens.",
}

// EnemyName returns the display name for an enemy type.
func EnemyName(enemy types.EnemyType) string {
	switch enemy {
	case types.EnemyGang:
		return "Rival Gang Members"
	case types.EnemyPolice:
		return "Police Officers"
	case types.EnemyHitSquad:
		return "Squidie Hit Squad"
	case types.EnemyMonster:
		return "Sewer Monster"
	}
	return "Enemy"
}

func pick(r *rng.RNG, lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[r.Intn(len(lines))]
}
