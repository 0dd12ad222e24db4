package farm

import (
	"fmt"
	"time"

	"github.com/ykatyhoney/sunflower-land/internal/bonus"
	"github.com/ykatyhoney/sunflower-land/internal/catalog"
	"github.com/ykatyhoney/sunflower-land/internal/domain"
)

// Processor routes events to their handlers. Handlers are pure: they read
// the prior state, never mutate it, and return either a new state or a
// domain rule violation. Time only enters through the at argument.
type Processor struct {
	catalog  *catalog.Catalog
	resolver *bonus.Resolver
}

// NewProcessor creates a processor over a species catalog and a boost resolver
func NewProcessor(c *catalog.Catalog, r *bonus.Resolver) *Processor {
	return &Processor{catalog: c, resolver: r}
}

// NewDefaultProcessor uses the embedded catalog and the default boost rules
func NewDefaultProcessor() *Processor {
	return NewProcessor(catalog.Default(), bonus.NewDefaultResolver())
}

// Process applies event to state at the given instant. On failure the
// returned state is the zero value and must be discarded.
func (p *Processor) Process(state domain.GameState, event Event, at time.Time) (domain.GameState, error) {
	switch e := event.(type) {
	case FruitPlanted:
		return p.plantFruit(state, e, at)
	case FruitHarvested:
		return p.harvestFruit(state, e, at)
	case SeedPlanted:
		return p.plantCrop(state, e, at)
	case CropHarvested:
		return p.harvestCrop(state, e, at)
	case TimberChopped:
		return p.chopTree(state, e, at)
	case StoneMined:
		return p.mineStone(state, e, at)
	case SeedBought:
		return p.buySeed(state, e)
	case ItemSold:
		return p.sellItem(state, e)
	default:
		return domain.GameState{}, fmt.Errorf("%w: %T", domain.ErrUnknownEventType, event)
	}
}

// ProcessRaw decodes a wire event and applies it
func (p *Processor) ProcessRaw(state domain.GameState, raw []byte, at time.Time) (domain.GameState, error) {
	ev, err := Decode(raw)
	if err != nil {
		return domain.GameState{}, err
	}
	return p.Process(state, ev, at)
}
