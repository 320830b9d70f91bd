// Package save implements JSON serialization and deserialization of game state.
package save

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nathoo/gangwar/engine/economy"
	"github.com/nathoo/gangwar/engine/rng"
	"github.com/nathoo/gangwar/engine/state"
	"github.com/nathoo/gangwar/types"
)

// Version is written into every save.
const Version = "1"

// MaxRNGPosition bounds the draws a restore will replay.
const MaxRNGPosition = 1 << 26

var (
	// ErrNoState is returned when a save carries no game state.
	ErrNoState = errors.New("save has no game state")
	// ErrBadPosition is returned for an RNG position that is negative or
	// too far into the stream to replay.
	ErrBadPosition = errors.New("save has an unusable rng position")
)

// SaveData is the JSON-serializable save format.
type SaveData struct {
	Version     string           `json:"version"`
	State       *types.GameState `json:"state"`
	RNGSeed     int64            `json:"rng_seed"`
	RNGPosition int64            `json:"rng_position"`
}

// Save serializes game state and the RNG position to JSON bytes.
func Save(s *types.GameState, r *rng.RNG) ([]byte, error) {
	data := SaveData{
		Version:     Version,
		State:       s,
		RNGSeed:     r.Seed(),
		RNGPosition: r.Position(),
	}
	return json.MarshalIndent(data, "", "  ")
}

// Load deserializes JSON bytes into SaveData.
func Load(data []byte) (*SaveData, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("decoding save: %w", err)
	}
	if sd.State == nil {
		return nil, ErrNoState
	}
	if sd.RNGPosition < 0 || sd.RNGPosition > MaxRNGPosition {
		return nil, fmt.Errorf("%w: %d", ErrBadPosition, sd.RNGPosition)
	}
	// Old saves may predate a drug kind; fill the board from base prices.
	if sd.State.DrugPrices == nil {
		sd.State.DrugPrices = economy.InitialPrices()
	}
	for kind, price := range economy.BasePrices {
		if _, ok := sd.State.DrugPrices[kind]; !ok {
			sd.State.DrugPrices[kind] = price
		}
	}
	if sd.State.PistolUpgradeType == "" {
		sd.State.PistolUpgradeType = types.UpgradeNone
	}
	if sd.State.Members < 1 {
		sd.State.Members = 1
	}
	s := sd.State
	s.Money = min(max(s.Money, 0), state.MaxBalance)
	s.Account = min(max(s.Account, 0), state.MaxBalance)
	s.Loan = min(max(s.Loan, 0), economy.MaxLoan)
	// A fight with nobody left or no health pool is already over.
	if f := s.Fight; f != nil && (f.Count < 1 || !(f.Health > 0)) {
		s.Fight = nil
	}
	return &sd, nil
}

// Apply returns the saved state and an RNG restored to the saved position.
func Apply(sd *SaveData) (*types.GameState, *rng.RNG) {
	return sd.State, rng.Restore(sd.RNGSeed, sd.RNGPosition)
}
