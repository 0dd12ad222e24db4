package domain

import (
	"github.com/shopspring/decimal"
)

// GameState is the root aggregate of a farm. Handlers receive it by value and
// return a new value; use Clone before mutating anything reachable from it.
type GameState struct {
	Balance      decimal.Decimal         `json:"balance"`
	Inventory    Inventory               `json:"inventory"`
	Bumpkin      *Bumpkin                `json:"bumpkin,omitempty"`
	Expansions   []Expansion             `json:"expansions"`
	Collectibles map[string][]PlacedItem `json:"collectibles"`
}

// Bumpkin is the player character
type Bumpkin struct {
	ID         string                     `json:"id"`
	Experience decimal.Decimal            `json:"experience"`
	Activity   map[string]decimal.Decimal `json:"activity"`
}

// Coordinates locate a placed item on the map
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PlacedItem is one placed instance of a collectible
type PlacedItem struct {
	ID          string      `json:"id"`
	Coordinates Coordinates `json:"coordinates"`
	CreatedAt   int64       `json:"createdAt"`
	ReadyAt     int64       `json:"readyAt"`
}

// Expansion is a piece of land owning the resource slots built on it.
type Expansion struct {
	CreatedAt    int64         `json:"createdAt"`
	ReadyAt      int64         `json:"readyAt"`
	FruitPatches map[int]Plot  `json:"fruitPatches,omitempty"`
	Plots        map[int]Plot  `json:"plots,omitempty"`
	Trees        map[int]Tree  `json:"trees,omitempty"`
	Stones       map[int]Stone `json:"stones,omitempty"`
}

// Plot is a planting slot. Fruit patches hold Fruit, crop plots hold Crop.
type Plot struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Fruit  *Fruit `json:"fruit,omitempty"`
	Crop   *Crop  `json:"crop,omitempty"`
}

// Fruit is a multi-harvest planting. Amount is locked in at planting time.
type Fruit struct {
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	PlantedAt    int64           `json:"plantedAt"`
	HarvestedAt  int64           `json:"harvestedAt"`
	HarvestsLeft int             `json:"harvestsLeft"`
}

// Crop is a single-harvest planting
type Crop struct {
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	PlantedAt int64           `json:"plantedAt"`
}

// Tree yields wood and regrows after being chopped
type Tree struct {
	X      int      `json:"x"`
	Y      int      `json:"y"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Wood   Resource `json:"wood"`
}

// Stone yields stone and recovers after being mined
type Stone struct {
	X      int      `json:"x"`
	Y      int      `json:"y"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Stone  Resource `json:"stone"`
}

// Resource is the replenishing yield of a tree or a rock
type Resource struct {
	Amount      decimal.Decimal `json:"amount"`
	CollectedAt int64           `json:"collectedAt"`
}

// OnChainSnapshot is the last settled, trusted state read from the chain.
type OnChainSnapshot struct {
	Balance   decimal.Decimal `json:"balance"`
	Inventory Inventory       `json:"inventory"`
}

// HasCollectible reports whether at least one instance of name is placed.
func (s GameState) HasCollectible(name string) bool {
	return len(s.Collectibles[name]) > 0
}

// Clone returns a deep copy of the state. Decimals are immutable values and
// are shared.
func (s GameState) Clone() GameState {
	out := GameState{
		Balance:   s.Balance,
		Inventory: s.Inventory.Clone(),
	}

	if s.Bumpkin != nil {
		b := *s.Bumpkin
		b.Activity = make(map[string]decimal.Decimal, len(s.Bumpkin.Activity))
		for k, v := range s.Bumpkin.Activity {
			b.Activity[k] = v
		}
		out.Bumpkin = &b
	}

	if s.Expansions != nil {
		out.Expansions = make([]Expansion, len(s.Expansions))
		for i, e := range s.Expansions {
			out.Expansions[i] = e.clone()
		}
	}

	if s.Collectibles != nil {
		out.Collectibles = make(map[string][]PlacedItem, len(s.Collectibles))
		for name, placed := range s.Collectibles {
			out.Collectibles[name] = append([]PlacedItem(nil), placed...)
		}
	}

	return out
}

func (e Expansion) clone() Expansion {
	out := Expansion{CreatedAt: e.CreatedAt, ReadyAt: e.ReadyAt}
	if e.FruitPatches != nil {
		out.FruitPatches = clonePlots(e.FruitPatches)
	}
	if e.Plots != nil {
		out.Plots = clonePlots(e.Plots)
	}
	if e.Trees != nil {
		out.Trees = make(map[int]Tree, len(e.Trees))
		for i, t := range e.Trees {
			out.Trees[i] = t
		}
	}
	if e.Stones != nil {
		out.Stones = make(map[int]Stone, len(e.Stones))
		for i, r := range e.Stones {
			out.Stones[i] = r
		}
	}
	return out
}

func clonePlots(in map[int]Plot) map[int]Plot {
	out := make(map[int]Plot, len(in))
	for i, p := range in {
		if p.Fruit != nil {
			f := *p.Fruit
			p.Fruit = &f
		}
		if p.Crop != nil {
			c := *p.Crop
			p.Crop = &c
		}
		out[i] = p
	}
	return out
}
