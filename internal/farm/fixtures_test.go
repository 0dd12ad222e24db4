package farm

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ykatyhoney/sunflower-land/internal/domain"
)

var (
	testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	d       = decimal.RequireFromString
)

func intPtr(v int) *int { return &v }

// newTestState returns a farm with a bumpkin and a single expansion with two
// fruit patches, two plots, a tree and a rock.
func newTestState() domain.GameState {
	return domain.GameState{
		Balance:   decimal.Zero,
		Inventory: domain.Inventory{},
		Bumpkin: &domain.Bumpkin{
			ID:         "bumpkin-1",
			Experience: decimal.Zero,
			Activity:   map[string]decimal.Decimal{},
		},
		Expansions: []domain.Expansion{
			{
				FruitPatches: map[int]domain.Plot{
					0: {X: 1, Y: 1, Width: 2, Height: 2},
					1: {X: 3, Y: 1, Width: 2, Height: 2},
				},
				Plots: map[int]domain.Plot{
					0: {X: 0, Y: 0, Width: 1, Height: 1},
					1: {X: 1, Y: 0, Width: 1, Height: 1},
				},
				Trees: map[int]domain.Tree{
					0: {X: 5, Y: 5, Width: 2, Height: 2, Wood: domain.Resource{Amount: d("1")}},
				},
				Stones: map[int]domain.Stone{
					0: {X: 7, Y: 5, Width: 1, Height: 1, Stone: domain.Resource{Amount: d("1")}},
				},
			},
		},
		Collectibles: map[string][]domain.PlacedItem{},
	}
}

func place(s *domain.GameState, names ...string) {
	for _, name := range names {
		s.Collectibles[name] = append(s.Collectibles[name], domain.PlacedItem{
			ID:          name + "-1",
			Coordinates: domain.Coordinates{X: 0, Y: 0},
			CreatedAt:   testNow.Add(-time.Hour).UnixMilli(),
			ReadyAt:     testNow.Add(-time.Hour).UnixMilli(),
		})
	}
}

func withFruit(s domain.GameState, patch int, f domain.Fruit) domain.GameState {
	p := s.Expansions[0].FruitPatches[patch]
	p.Fruit = &f
	s.Expansions[0].FruitPatches[patch] = p
	return s
}

func withCrop(s domain.GameState, plot int, c domain.Crop) domain.GameState {
	p := s.Expansions[0].Plots[plot]
	p.Crop = &c
	s.Expansions[0].Plots[plot] = p
	return s
}
