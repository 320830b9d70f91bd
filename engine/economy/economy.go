// Package economy drives the daily drug-price board.
package economy

import (
	"math"

	"github.com/nathoo/gangwar/engine/rng"
	"github.com/nathoo/gangwar/types"
)

// MinPrice is the floor every price is clamped to.
const MinPrice = 10

// LoanInterestRate is charged on the outstanding loan once per day.
const LoanInterestRate = 0.05

// MaxLoan is the most the loan shark will ever be owed, interest included.
const MaxLoan = 10_000_000_000

// BasePrices are the fixed reference prices each day's price fluctuates around.
var BasePrices = map[string]int{
	types.DrugWeed:      500,
	types.DrugCrack:     1000,
	types.DrugCoke:      2000,
	types.DrugIce:       1500,
	types.DrugPercs:     800,
	types.DrugPixieDust: 3000,
}

// Volatility is the half-width of the daily fluctuation interval. It starts
// at 10% on day 1 and grows by one point per elapsed day.
func Volatility(day int) float64 {
	elapsed := day - 1
	if elapsed < 0 {
		elapsed = 0
	}
	return 0.10 + 0.01*float64(elapsed)
}

// Fluctuate draws a new price for one drug: base*(1+v) with v uniform in
// [-volatility, +volatility], rounded and floored at MinPrice.
func Fluctuate(base, day int, r *rng.RNG) int {
	vol := Volatility(day)
	variation := r.Float64()*(2*vol) - vol
	price := int(math.Round(float64(base) * (1 + variation)))
	if price < MinPrice {
		price = MinPrice
	}
	return price
}

// UpdatePrices re-rolls every drug price independently for the current day.
func UpdatePrices(s *types.GameState, r *rng.RNG) {
	if s.DrugPrices == nil {
		s.DrugPrices = make(map[string]int, len(BasePrices))
	}
	// Fixed order keeps a seeded session reproducible.
	for _, drug := range Kinds {
		s.DrugPrices[drug] = Fluctuate(BasePrices[drug], s.Day, r)
	}
}

// Kinds lists drug kinds in display order.
var Kinds = []string{
	types.DrugWeed,
	types.DrugCrack,
	types.DrugCoke,
	types.DrugIce,
	types.DrugPercs,
	types.DrugPixieDust,
}

// InitialPrices returns a fresh copy of the base price board.
func InitialPrices() map[string]int {
	prices := make(map[string]int, len(BasePrices))
	for k, v := range BasePrices {
		prices[k] = v
	}
	return prices
}

// PortfolioValue prices the drug inventory at the current board.
func PortfolioValue(s *types.GameState) int {
	d := s.Drugs
	p := s.DrugPrices
	return d.Weed*p[types.DrugWeed] +
		d.Crack*p[types.DrugCrack] +
		d.Coke*p[types.DrugCoke] +
		d.Ice*p[types.DrugIce] +
		d.Percs*p[types.DrugPercs] +
		d.PixieDust*p[types.DrugPixieDust]
}

// AccrueInterest adds one day of interest (rounded up) to the loan and
// returns the amount added. The loan stops growing at MaxLoan.
func AccrueInterest(s *types.GameState) int {
	if s.Loan <= 0 {
		return 0
	}
	interest := min(int(math.Ceil(float64(s.Loan)*LoanInterestRate)), MaxLoan-s.Loan)
	s.Loan += interest
	return interest
}
