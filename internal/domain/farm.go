package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Farm is the persisted record around a GameState
type Farm struct {
	ID        string          `json:"id"`
	State     GameState       `json:"state"`
	OnChain   OnChainSnapshot `json:"onChain"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// IncrementActivity bumps the named activity counter by amount
func (b *Bumpkin) IncrementActivity(name string, amount decimal.Decimal) {
	if b.Activity == nil {
		b.Activity = make(map[string]decimal.Decimal)
	}
	b.Activity[name] = b.Activity[name].Add(amount)
}

// NewStarterState returns the state a new farm begins with: a bumpkin, a
// few seeds and one expansion with empty plots, fruit patches, a tree and
// a stone.
func NewStarterState(bumpkinID string, createdAt time.Time) GameState {
	ms := createdAt.UnixMilli()
	one := decimal.NewFromInt(1)

	return GameState{
		Balance: decimal.Zero,
		Inventory: Inventory{
			"Sunflower Seed": decimal.NewFromInt(5),
			ItemAxe:          decimal.NewFromInt(3),
			ItemPickaxe:      decimal.NewFromInt(1),
		},
		Bumpkin: &Bumpkin{
			ID:         bumpkinID,
			Experience: decimal.Zero,
			Activity:   map[string]decimal.Decimal{},
		},
		Expansions: []Expansion{
			{
				CreatedAt: ms,
				ReadyAt:   ms,
				Plots: map[int]Plot{
					0: {X: -2, Y: 0, Width: 1, Height: 1},
					1: {X: -1, Y: 0, Width: 1, Height: 1},
					2: {X: 0, Y: 0, Width: 1, Height: 1},
				},
				FruitPatches: map[int]Plot{
					0: {X: -2, Y: 2, Width: 2, Height: 2},
				},
				Trees: map[int]Tree{
					0: {X: 3, Y: 3, Width: 2, Height: 2, Wood: Resource{Amount: one}},
				},
				Stones: map[int]Stone{
					0: {X: 4, Y: -1, Width: 1, Height: 1, Stone: Resource{Amount: one}},
				},
			},
		},
		Collectibles: map[string][]PlacedItem{},
	}
}
