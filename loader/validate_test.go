package loader

import (
	"strings"
	"testing"

	"github.com/nathoo/gangwar/engine/events"
	"github.com/nathoo/gangwar/types"
)

// validCatalog returns a minimal valid catalog for testing.
func validCatalog() []types.RandomEvent {
	return []types.RandomEvent{{
		ID:           "tip_jar",
		Title:        "Tip Jar",
		Description:  "{player} eyes the tip jar on day {day}.",
		Type:         types.EventMoneyFind,
		Weight:       5,
		Effects:      map[string]int{"money": 100},
		Requirements: map[string]types.Requirement{"has_id": {Op: "eq", Value: 0}},
	}}
}

func TestValidate_ValidCatalog(t *testing.T) {
	if err := validate(validCatalog()); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_BuiltInCatalog(t *testing.T) {
	if err := validate(events.DefaultCatalog()); err != nil {
		t.Fatalf("built-in catalog fails validation: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c []types.RandomEvent) []types.RandomEvent
		want   string
	}{
		{"empty id", func(c []types.RandomEvent) []types.RandomEvent {
			c[0].ID = ""
			return c
		}, "empty ID"},
		{"duplicate id", func(c []types.RandomEvent) []types.RandomEvent {
			return append(c, c[0])
		}, "duplicate event ID"},
		{"unknown type", func(c []types.RandomEvent) []types.RandomEvent {
			c[0].Type = "picnic"
			return c
		}, "unknown type"},
		{"negative weight", func(c []types.RandomEvent) []types.RandomEvent {
			c[0].Weight = -2
			return c
		}, "weight must be positive"},
		{"unknown effect stat", func(c []types.RandomEvent) []types.RandomEvent {
			c[0].Effects["gold"] = 1
			return c
		}, `unknown stat "gold"`},
		{"unknown requirement stat", func(c []types.RandomEvent) []types.RandomEvent {
			c[0].Requirements["karma"] = types.Requirement{Op: "min", Value: 1}
			return c
		}, `unknown stat "karma"`},
		{"unknown operator", func(c []types.RandomEvent) []types.RandomEvent {
			c[0].Requirements["money"] = types.Requirement{Op: "gt", Value: 1}
			return c
		}, `unknown operator "gt"`},
		{"empty catalog", func(c []types.RandomEvent) []types.RandomEvent {
			return nil
		}, "no events"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.mutate(validCatalog()))
			if err == nil {
				t.Fatal("expected validation error")
			}
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			assertContains(t, ve.Errors, tt.want)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	c := validCatalog()
	c[0].Type = "picnic"
	c[0].Weight = 0
	c[0].Effects["gold"] = 1

	ve, ok := validate(c).(*ValidationError)
	if !ok {
		t.Fatal("expected *ValidationError")
	}
	if len(ve.Errors) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(ve.Errors), ve.Errors)
	}
	if !strings.Contains(ve.Error(), "3 error(s)") {
		t.Errorf("Error() = %q", ve.Error())
	}
}

func TestLint(t *testing.T) {
	c := validCatalog()
	c[0].Title = ""
	c[0].Description = "{player} meets {boss}."

	// Warnings never fail validation.
	if err := validate(c); err != nil {
		t.Fatalf("warnings should not fail validation: %v", err)
	}
	warnings := Lint(c)
	if len(warnings) != 2 {
		t.Fatalf("warnings = %q, want 2", warnings)
	}
	assertContains(t, warnings, `"tip_jar" has no title`)
	assertContains(t, warnings, "unknown placeholder {boss}")

	if w := Lint(validCatalog()); len(w) != 0 {
		t.Errorf("clean catalog warned: %q", w)
	}
}

func TestValidate_SuggestsCloseStat(t *testing.T) {
	tests := []struct {
		stat string
		want string
	}{
		{"mony", `unknown stat "mony" (did you mean "money"?)`},
		{"bulets", `unknown stat "bulets" (did you mean "bullets"?)`},
		{"karma", `unknown stat "karma"`},
	}
	for _, tt := range tests {
		t.Run(tt.stat, func(t *testing.T) {
			c := validCatalog()
			c[0].Effects[tt.stat] = 1
			ve, ok := validate(c).(*ValidationError)
			if !ok {
				t.Fatal("expected *ValidationError")
			}
			assertContains(t, ve.Errors, tt.want)
		})
	}
	if got := suggestStat("karma"); got != "" {
		t.Errorf("suggestStat(karma) = %q, want none", got)
	}
}

func assertContains(t *testing.T, strs []string, substr string) {
	t.Helper()
	for _, s := range strs {
		if strings.Contains(s, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got %v", substr, strs)
}
