package state

import (
	"errors"
	"testing"

	"github.com/nathoo/gangwar/engine/economy"
	"github.com/nathoo/gangwar/engine/rng"
	"github.com/nathoo/gangwar/types"
)

func TestNewState_Defaults(t *testing.T) {
	s := NewState("Dre", "Eastsiders")

	if s.PlayerName != "Dre" || s.GangName != "Eastsiders" {
		t.Errorf("names = %q/%q", s.PlayerName, s.GangName)
	}
	if s.Money != 1000 {
		t.Errorf("money = %d, want 1000", s.Money)
	}
	if s.Health != 30 || s.MaxHealth != 100 {
		t.Errorf("health = %d/%d, want 30/100", s.Health, s.MaxHealth)
	}
	if s.Lives != 3 || s.Day != 1 || s.Members != 1 {
		t.Errorf("lives=%d day=%d members=%d", s.Lives, s.Day, s.Members)
	}
	if s.Weapons.Pistols != 1 || s.Weapons.Bullets != 10 {
		t.Errorf("weapons = %+v", s.Weapons)
	}
	if s.Drugs.Crack != 5 {
		t.Errorf("crack = %d, want 5", s.Drugs.Crack)
	}
	if s.PistolUpgradeType != types.UpgradeNone {
		t.Errorf("upgrade = %q, want none", s.PistolUpgradeType)
	}
	for kind, base := range economy.BasePrices {
		if s.DrugPrices[kind] != base {
			t.Errorf("price[%s] = %d, want %d", kind, s.DrugPrices[kind], base)
		}
	}
}

func TestSpendMoney(t *testing.T) {
	tests := []struct {
		name      string
		money     int
		amount    int
		wantOK    bool
		wantMoney int
	}{
		{"exact", 500, 500, true, 0},
		{"under", 1000, 300, true, 700},
		{"zero", 100, 0, true, 100},
		{"over", 400, 500, false, 400},
		{"broke", 0, 1, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState("p", "g")
			s.Money = tt.money
			ok := SpendMoney(s, tt.amount)
			if ok != tt.wantOK {
				t.Errorf("SpendMoney(%d) = %v, want %v", tt.amount, ok, tt.wantOK)
			}
			if s.Money != tt.wantMoney {
				t.Errorf("money = %d, want %d", s.Money, tt.wantMoney)
			}
		})
	}
}

func TestSpendMoney_NegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative amount")
		}
	}()
	SpendMoney(NewState("p", "g"), -1)
}

func TestHeal_ClampsAtMax(t *testing.T) {
	s := NewState("p", "g")
	s.Health = 95
	Heal(s, 20)
	if s.Health != 100 {
		t.Errorf("health = %d, want 100", s.Health)
	}
}

func TestTakeDamage_CanGoNegative(t *testing.T) {
	s := NewState("p", "g")
	s.Health = 10
	TakeDamage(s, 25)
	if s.Health != -15 {
		t.Errorf("health = %d, want -15", s.Health)
	}
}

func TestResolveDefeat(t *testing.T) {
	tests := []struct {
		name       string
		health     int
		lives      int
		wantLost   bool
		wantOver   bool
		wantHealth int
		wantLives  int
	}{
		{"alive", 5, 3, false, false, 5, 3},
		{"first death", -4, 3, true, false, 100, 2},
		{"zero health", 0, 2, true, false, 100, 1},
		{"last life", -10, 1, true, true, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState("p", "g")
			s.Health = tt.health
			s.Lives = tt.lives
			s.Fight = &types.Fight{Enemy: types.EnemyGang, Count: 2, Health: 30}

			lost, over := ResolveDefeat(s)
			if lost != tt.wantLost || over != tt.wantOver {
				t.Errorf("ResolveDefeat = (%v, %v), want (%v, %v)", lost, over, tt.wantLost, tt.wantOver)
			}
			if s.Health != tt.wantHealth || s.Lives != tt.wantLives {
				t.Errorf("health=%d lives=%d, want %d/%d", s.Health, s.Lives, tt.wantHealth, tt.wantLives)
			}
			if tt.wantLost && s.Fight != nil {
				t.Error("fight should be closed after a death")
			}
			if IsGameOver(s) != tt.wantOver {
				t.Errorf("IsGameOver = %v", IsGameOver(s))
			}
		})
	}
}

func TestAdvanceDay(t *testing.T) {
	s := NewState("p", "g")
	s.Steps = 9
	r := rng.New(42)

	for i := 0; i < 50; i++ {
		AdvanceDay(s, r)
		if s.Steps != 0 {
			t.Fatalf("steps = %d after AdvanceDay", s.Steps)
		}
		for kind, p := range s.DrugPrices {
			if p < economy.MinPrice {
				t.Fatalf("day %d: price[%s] = %d below floor", s.Day, kind, p)
			}
		}
	}
	if s.Day != 51 {
		t.Errorf("day = %d, want 51", s.Day)
	}
}

func TestUpdateScore(t *testing.T) {
	s := NewState("p", "g")
	s.Money = 12_500
	s.Account = 3_700
	s.Day = 4
	if got := UpdateScore(s); got != 16+400 {
		t.Errorf("score = %d, want 416", got)
	}
	if s.Score != 416 {
		t.Errorf("stored score = %d", s.Score)
	}
}

func TestStat_Lookup(t *testing.T) {
	s := NewState("p", "g")
	s.Flags.HasID = true

	if v, ok := Stat(s, "bullets"); !ok || v != 10 {
		t.Errorf("bullets = %d, %v", v, ok)
	}
	if v, ok := Stat(s, "has_id"); !ok || v != 1 {
		t.Errorf("has_id = %d, %v", v, ok)
	}
	if v, ok := Stat(s, "has_info"); !ok || v != 0 {
		t.Errorf("has_info = %d, %v", v, ok)
	}
	if _, ok := Stat(s, "charisma"); ok {
		t.Error("unknown stat should not resolve")
	}
}

func TestAddStat(t *testing.T) {
	s := NewState("p", "g")
	s.Money = 300

	if err := AddStat(s, "money", -500); err != nil {
		t.Fatal(err)
	}
	if s.Money != 0 {
		t.Errorf("money = %d, want 0 (drained)", s.Money)
	}
	if err := AddStat(s, "bullets", -50); err != nil {
		t.Fatal(err)
	}
	if s.Weapons.Bullets != 0 {
		t.Errorf("bullets = %d, want 0", s.Weapons.Bullets)
	}
	if err := AddStat(s, "members", -3); err != nil {
		t.Fatal(err)
	}
	if s.Members != 1 {
		t.Errorf("members = %d, want 1", s.Members)
	}
	if err := AddStat(s, "health", 500); err != nil {
		t.Fatal(err)
	}
	if s.Health != s.MaxHealth {
		t.Errorf("health = %d, want max", s.Health)
	}
	if err := AddStat(s, "has_switch", 1); err != nil {
		t.Fatal(err)
	}
	if !s.Flags.HasSwitch {
		t.Error("has_switch not set")
	}
	if err := AddStat(s, "mana", 1); !errors.Is(err, ErrUnknownStat) {
		t.Errorf("err = %v, want ErrUnknownStat", err)
	}
}

func TestStatNames_CoverDrugs(t *testing.T) {
	names := map[string]bool{}
	for _, n := range StatNames() {
		names[n] = true
	}
	for _, d := range DrugKinds() {
		if !names[d] {
			t.Errorf("drug %q missing from stat names", d)
		}
	}
}

func TestAddDrug_RejectsNonDrug(t *testing.T) {
	s := NewState("p", "g")
	if err := AddDrug(s, "bullets", 1); err == nil {
		t.Error("expected error for non-drug")
	}
	if err := AddDrug(s, types.DrugPercs, 2); err != nil {
		t.Fatal(err)
	}
	if n, _ := DrugCount(s, types.DrugPercs); n != 2 {
		t.Errorf("percs = %d, want 2", n)
	}
}

func TestBank(t *testing.T) {
	s := NewState("p", "g")

	if err := Deposit(s, 2000); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("overdeposit err = %v", err)
	}
	if err := Deposit(s, 600); err != nil {
		t.Fatal(err)
	}
	if s.Money != 400 || s.Account != 600 {
		t.Errorf("after deposit money=%d account=%d", s.Money, s.Account)
	}
	if err := Withdraw(s, 700); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("overdraw err = %v", err)
	}
	if err := Withdraw(s, 100); err != nil {
		t.Fatal(err)
	}
	if err := Repay(s, 10); !errors.Is(err, ErrNoLoan) {
		t.Errorf("repay without loan err = %v", err)
	}
	if err := Borrow(s, 5000); err != nil {
		t.Fatal(err)
	}
	if s.Loan != 5000 || s.Money != 5500 {
		t.Errorf("after borrow loan=%d money=%d", s.Loan, s.Money)
	}
	if err := Repay(s, 9000); err != nil {
		t.Fatal(err)
	}
	if s.Loan != 0 || s.Money != 500 {
		t.Errorf("after repay loan=%d money=%d", s.Loan, s.Money)
	}
	for _, fn := range []func(*types.GameState, int) error{Deposit, Withdraw, Borrow, Repay} {
		if err := fn(s, 0); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("zero amount err = %v", err)
		}
	}
}

func TestBank_Ceilings(t *testing.T) {
	s := NewState("Dre", "Eastsiders")

	if err := Borrow(s, int(^uint(0)>>1)); !errors.Is(err, ErrLoanLimit) {
		t.Errorf("max int borrow err = %v", err)
	}
	if s.Money != 1000 || s.Loan != 0 {
		t.Errorf("refused borrow mutated state: money=%d loan=%d", s.Money, s.Loan)
	}
	if err := Borrow(s, economy.MaxLoan); err != nil {
		t.Fatalf("borrow up to the limit: %v", err)
	}
	if err := Borrow(s, 1); !errors.Is(err, ErrLoanLimit) {
		t.Errorf("borrow past the limit err = %v", err)
	}

	s = NewState("Dre", "Eastsiders")
	s.Money = MaxBalance
	s.Account = 500
	if err := Withdraw(s, 500); !errors.Is(err, ErrPocketsFull) {
		t.Errorf("withdraw into full pockets err = %v", err)
	}
	s.Account = MaxBalance
	s.Money = 10
	if err := Deposit(s, 10); !errors.Is(err, ErrAccountFull) {
		t.Errorf("deposit into a full account err = %v", err)
	}
	if s.Money != 10 || s.Account != MaxBalance {
		t.Errorf("refused deposit mutated state: money=%d account=%d", s.Money, s.Account)
	}
}

func TestCredit_Saturates(t *testing.T) {
	s := NewState("Dre", "Eastsiders")
	s.Money = MaxBalance - 5
	if got := Credit(s, 100); got != 5 || s.Money != MaxBalance {
		t.Errorf("credited %d, money %d", got, s.Money)
	}

	if err := AddStat(s, "money", int(^uint(0)>>1)); err != nil {
		t.Fatal(err)
	}
	if s.Money != MaxBalance {
		t.Errorf("money = %d after a huge gain", s.Money)
	}
	if err := AddStat(s, "grenades", int(^uint(0)>>1)); err != nil {
		t.Fatal(err)
	}
	if err := AddStat(s, "grenades", 1); err != nil {
		t.Fatal(err)
	}
	if s.Weapons.Grenades != MaxBalance {
		t.Errorf("grenades = %d, want the cap", s.Weapons.Grenades)
	}
}
