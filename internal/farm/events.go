package farm

import (
	"github.com/shopspring/decimal"

	"github.com/ykatyhoney/sunflower-land/internal/domain"
)

// Event is the closed set of farm events. The unexported marker keeps the
// set sealed to this package so Process can switch over it exhaustively.
type Event interface {
	Type() string
	isEvent()
}

// FruitPlanted plants a fruit seed on a fruit patch
type FruitPlanted struct {
	ExpansionIndex Index  `json:"expansionIndex"`
	Index          Index  `json:"index"`
	Seed           string `json:"seed"`
	// HarvestsLeft overrides the species default when set
	HarvestsLeft *int `json:"harvestsLeft,omitempty"`
}

// FruitHarvested harvests a planted fruit patch
type FruitHarvested struct {
	ExpansionIndex Index `json:"expansionIndex"`
	Index          Index `json:"index"`
}

// SeedPlanted plants a crop seed on a plot
type SeedPlanted struct {
	ExpansionIndex Index  `json:"expansionIndex"`
	Index          Index  `json:"index"`
	Seed           string `json:"seed"`
}

// CropHarvested harvests a mature crop, freeing the plot
type CropHarvested struct {
	ExpansionIndex Index `json:"expansionIndex"`
	Index          Index `json:"index"`
}

// TimberChopped chops a tree with an axe
type TimberChopped struct {
	ExpansionIndex Index `json:"expansionIndex"`
	Index          Index `json:"index"`
}

// StoneMined mines a rock with a pickaxe
type StoneMined struct {
	ExpansionIndex Index `json:"expansionIndex"`
	Index          Index `json:"index"`
}

// SeedBought buys seeds from the shop
type SeedBought struct {
	Item   string          `json:"item"`
	Amount decimal.Decimal `json:"amount"`
}

// ItemSold sells harvested produce to the shop
type ItemSold struct {
	Item   string          `json:"item"`
	Amount decimal.Decimal `json:"amount"`
}

func (FruitPlanted) Type() string   { return domain.EventTypeFruitPlanted }
func (FruitHarvested) Type() string { return domain.EventTypeFruitHarvested }
func (SeedPlanted) Type() string    { return domain.EventTypeSeedPlanted }
func (CropHarvested) Type() string  { return domain.EventTypeCropHarvested }
func (TimberChopped) Type() string  { return domain.EventTypeTimberChopped }
func (StoneMined) Type() string     { return domain.EventTypeStoneMined }
func (SeedBought) Type() string     { return domain.EventTypeSeedBought }
func (ItemSold) Type() string       { return domain.EventTypeItemSold }

func (FruitPlanted) isEvent()   {}
func (FruitHarvested) isEvent() {}
func (SeedPlanted) isEvent()    {}
func (CropHarvested) isEvent()  {}
func (TimberChopped) isEvent()  {}
func (StoneMined) isEvent()     {}
func (SeedBought) isEvent()     {}
func (ItemSold) isEvent()       {}
