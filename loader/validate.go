package loader

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/nathoo/gangwar/engine/rules"
	"github.com/nathoo/gangwar/engine/state"
	"github.com/nathoo/gangwar/types"
)

// ValidationError collects all validation errors.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Known event types.
var validEventTypes = map[types.EventType]bool{
	types.EventBabyMomma:    true,
	types.EventPoliceChase:  true,
	types.EventGangFight:    true,
	types.EventHitSquad:     true,
	types.EventNPCEncounter: true,
	types.EventTreasureFind: true,
	types.EventHealthRest:   true,
	types.EventMoneyFind:    true,
	types.EventDrugFind:     true,
	types.EventAmmoFind:     true,
	types.EventWeaponFind:   true,
}

// Placeholders the description interpolator understands.
var knownPlaceholders = map[string]bool{
	"player": true,
	"gang":   true,
	"day":    true,
}

var placeholderRe = regexp.MustCompile(`\{([a-z_]+)\}`)

// validate checks the compiled catalog for consistency.
func validate(catalog []types.RandomEvent) error {
	ve := &ValidationError{}

	if len(catalog) == 0 {
		ve.Errors = append(ve.Errors, "no events defined")
	}

	ids := map[string]bool{}
	for _, ev := range catalog {
		if ev.ID == "" {
			ve.Errors = append(ve.Errors, "event with empty ID")
		}
		if ids[ev.ID] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate event ID %q", ev.ID))
		}
		ids[ev.ID] = true

		if !validEventTypes[ev.Type] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"event %q has unknown type %q", ev.ID, ev.Type))
		}
		if ev.Weight <= 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"event %q weight must be positive, got %d", ev.ID, ev.Weight))
		}

		validateEffects(ev, ve)
		validateRequirements(ev, ve)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

// Lint returns warnings for a catalog that loads but probably is not what
// its author meant. Warnings never fail a load.
func Lint(catalog []types.RandomEvent) []string {
	var warnings []string
	for _, ev := range catalog {
		if ev.Title == "" {
			warnings = append(warnings, fmt.Sprintf("event %q has no title", ev.ID))
		}
		for _, m := range placeholderRe.FindAllStringSubmatch(ev.Description, -1) {
			if !knownPlaceholders[m[1]] {
				warnings = append(warnings, fmt.Sprintf(
					"event %q description uses unknown placeholder {%s}", ev.ID, m[1]))
			}
		}
	}
	return warnings
}

func validateEffects(ev types.RandomEvent, ve *ValidationError) {
	for stat := range ev.Effects {
		if !state.IsStat(stat) {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"event %q effect references unknown stat %q%s", ev.ID, stat, suggestStat(stat)))
		}
	}
}

func validateRequirements(ev types.RandomEvent, ve *ValidationError) {
	for stat, req := range ev.Requirements {
		if !state.IsStat(stat) {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"event %q requirement references unknown stat %q%s", ev.ID, stat, suggestStat(stat)))
		}
		if !rules.KnownOp(req.Op) {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"event %q requirement on %q has unknown operator %q", ev.ID, stat, req.Op))
		}
	}
}

// suggestStat names the closest known stat when it is within two edits.
func suggestStat(name string) string {
	best, bestDist := "", 3
	for _, cand := range state.StatNames() {
		if d := levenshtein.ComputeDistance(name, cand); d < bestDist {
			best, bestDist = cand, d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}
