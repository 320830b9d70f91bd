// Package engine provides the Step() orchestrator that wires together
// parsing, the event pipeline, combat, the shop and the bank into a single
// session turn.
package engine

import (
	"fmt"
	"slices"

	"github.com/nathoo/gangwar/engine/combat"
	"github.com/nathoo/gangwar/engine/economy"
	"github.com/nathoo/gangwar/engine/effects"
	"github.com/nathoo/gangwar/engine/events"
	"github.com/nathoo/gangwar/engine/parser"
	"github.com/nathoo/gangwar/engine/rng"
	"github.com/nathoo/gangwar/engine/shop"
	"github.com/nathoo/gangwar/engine/state"
	"github.com/nathoo/gangwar/types"
)

// Engine owns one session: the state, its random source and the event
// catalog.
type Engine struct {
	State   *types.GameState
	RNG     *rng.RNG
	Catalog []types.RandomEvent
}

// New creates a session for a new game. A nil catalog selects the built-in
// one; a nil RNG is seeded from the clock.
func New(player, gang string, catalog []types.RandomEvent, r *rng.RNG) *Engine {
	if catalog == nil {
		catalog = events.DefaultCatalog()
	}
	if r == nil {
		r = rng.NewRandom()
	}
	return &Engine{
		State:   state.NewState(player, gang),
		RNG:     r,
		Catalog: catalog,
	}
}

// Resume swaps in a loaded state and its RNG, keeping the catalog.
func (e *Engine) Resume(s *types.GameState, r *rng.RNG) {
	e.State = s
	e.RNG = r
}

// Step processes one player command and returns the result.
func (e *Engine) Step(input string) types.Result {
	var result types.Result

	// 0. Game over: block all gameplay commands.
	if state.IsGameOver(e.State) {
		result.Output = append(result.Output, "Game over. Use /new to start again, /load to restore a save, or /quit to exit.")
		result.GameOver = true
		return result
	}

	// 1. Parse input.
	intent := parser.Parse(input)
	if intent.Verb == "" {
		result.Output = append(result.Output, "What do you want to do?")
		return result
	}

	// 2. Fight mode restricts commands.
	if e.State.Fight != nil && !isCombatVerb(intent.Verb) {
		result.Output = append(result.Output, "You're in the middle of a fight! (attack <weapon>, use <drug>, flee)")
		return result
	}

	// 3. Dispatch.
	switch intent.Verb {
	case "wander":
		e.wander(&result)
	case "attack":
		e.attack(intent, &result)
	case "flee":
		e.flee(&result)
	case "use":
		e.use(intent, &result)
	case "buy":
		e.buy(intent, &result)
	case "sell":
		e.sell(intent, &result)
	case "upgrade":
		e.upgrade(intent, &result)
	case "toggle":
		e.toggle(intent, &result)
	case "deposit", "withdraw", "borrow", "repay":
		e.bank(intent, &result)
	case "heal":
		e.say(&result)(shop.Medical(e.State))
	case "recruit":
		e.say(&result)(shop.Recruit(e.State))
	case "status":
		result.Output = append(result.Output, statusLines(e.State)...)
	case "weapons":
		result.Output = append(result.Output, weaponLines(e.State)...)
	case "prices":
		result.Output = append(result.Output, priceLines(e.State)...)
	case "score":
		result.Output = append(result.Output, fmt.Sprintf("Score: %s", effects.Money(state.UpdateScore(e.State))))
	case "help":
		result.Output = append(result.Output, helpLines...)
	default:
		result.Output = append(result.Output, fmt.Sprintf("I don't know how to %q. Type help for commands.", intent.Verb))
	}

	// 4. Bookkeeping.
	state.UpdateScore(e.State)
	result.GameOver = state.IsGameOver(e.State)
	return result
}

// wander spends one step on the street: an event, maybe a fight, and the
// day rollover once the step budget is used up.
func (e *Engine) wander(result *types.Result) {
	s := e.State
	s.Steps++

	out := events.Run(e.Catalog, s, e.RNG)
	result.Output = append(result.Output, out.Output...)
	if out.Eligible {
		ev := out.Event
		result.Event = &ev
	} else if len(out.Unmet) > 0 {
		result.Skipped = out.Event.ID
		result.Unmet = out.Unmet
	}
	if out.Fight != nil && !state.IsGameOver(s) {
		s.Fight = out.Fight
		result.Output = append(result.Output, fightLine(out.Fight))
	}

	if s.Steps >= s.MaxSteps && !state.IsGameOver(s) {
		result.Output = append(result.Output, e.newDay()...)
	}
}

// newDay rolls the calendar, re-prices the board and charges loan interest.
func (e *Engine) newDay() []string {
	s := e.State
	state.AdvanceDay(s, e.RNG)
	lines := []string{fmt.Sprintf("The sun comes up on day %d. Prices on the street have moved.", s.Day)}
	if interest := economy.AccrueInterest(s); interest > 0 {
		lines = append(lines, fmt.Sprintf("The loan shark adds $%s interest. You owe $%s.", effects.Money(interest), effects.Money(s.Loan)))
	}
	return lines
}

func (e *Engine) buy(intent types.Intent, result *types.Result) {
	if intent.Object == "" {
		result.Output = append(result.Output, shopLines()...)
		return
	}
	qty := max(1, intent.Amount)
	candidates := append(state.DrugKinds(), shop.IDs()...)
	id, ok := parser.Match(intent.Object, candidates)
	if !ok {
		result.Output = append(result.Output, fmt.Sprintf("Nobody around here sells %q.", intent.Object))
		return
	}
	switch {
	case state.IsDrug(id):
		e.say(result)(shop.BuyDrug(e.State, id, qty))
	case slices.Contains(shop.Services, id):
		e.say(result)(shop.BuyService(e.State, id))
	default:
		e.say(result)(shop.BuyWeapon(e.State, id, qty))
	}
}

func (e *Engine) sell(intent types.Intent, result *types.Result) {
	kind, ok := parser.Match(intent.Object, state.DrugKinds())
	if !ok {
		result.Output = append(result.Output, "Sell what? (weed, crack, coke, ice, percs, pixie_dust)")
		return
	}
	e.say(result)(shop.SellDrug(e.State, e.RNG, kind, max(1, intent.Amount)))
}

var upgradeKinds = []string{types.UpgradeDamage, types.UpgradeAccuracy, types.UpgradeMagazine}

func (e *Engine) upgrade(intent types.Intent, result *types.Result) {
	kind, ok := parser.Match(intent.Object, upgradeKinds)
	if !ok {
		result.Output = append(result.Output, upgradeLines()...)
		return
	}
	e.say(result)(shop.BuyUpgrade(e.State, kind))
}

func (e *Engine) toggle(intent types.Intent, result *types.Result) {
	what, ok := parser.Match(intent.Object, []string{"upgrade", "exploding_bullets"})
	if !ok {
		result.Output = append(result.Output, "Toggle what? (upgrade, exploding)")
		return
	}
	if what == "upgrade" {
		e.say(result)(shop.ToggleUpgrade(e.State))
		return
	}
	result.Output = append(result.Output, shop.ToggleExploding(e.State))
}

func (e *Engine) bank(intent types.Intent, result *types.Result) {
	if intent.Amount <= 0 {
		result.Output = append(result.Output, fmt.Sprintf("How much do you want to %s?", intent.Verb))
		return
	}
	s := e.State
	amt := effects.Money(intent.Amount)
	var err error
	var msg string
	switch intent.Verb {
	case "deposit":
		err = state.Deposit(s, intent.Amount)
		msg = fmt.Sprintf("Deposited $%s. Account: $%s.", amt, effects.Money(s.Account))
	case "withdraw":
		err = state.Withdraw(s, intent.Amount)
		msg = fmt.Sprintf("Withdrew $%s. Account: $%s.", amt, effects.Money(s.Account))
	case "borrow":
		err = state.Borrow(s, intent.Amount)
		msg = fmt.Sprintf("The loan shark hands you $%s. You owe $%s. Interest is charged daily.", amt, effects.Money(s.Loan))
	case "repay":
		owed := s.Loan
		err = state.Repay(s, intent.Amount)
		msg = fmt.Sprintf("Paid $%s. You owe $%s.", effects.Money(owed-s.Loan), effects.Money(s.Loan))
	}
	if err != nil {
		result.Output = append(result.Output, refusal(err))
		return
	}
	result.Output = append(result.Output, msg)
}

// say returns a sink for the (message, error) pairs the shop produces.
func (e *Engine) say(result *types.Result) func(string, error) {
	return func(msg string, err error) {
		if err != nil {
			result.Output = append(result.Output, refusal(err))
			return
		}
		result.Output = append(result.Output, msg)
	}
}

func refusal(err error) string {
	return "No dice: " + err.Error() + "."
}

// weaponNames lists weapon kinds as strings for matching.
func weaponNames() []string {
	names := make([]string, len(combat.Weapons))
	for i, w := range combat.Weapons {
		names[i] = string(w.Kind)
	}
	return names
}
