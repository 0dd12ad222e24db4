package farm

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ykatyhoney/sunflower-land/internal/bonus"
	"github.com/ykatyhoney/sunflower-land/internal/domain"
)

var one = decimal.NewFromInt(1)

func (p *Processor) plantFruit(state domain.GameState, e FruitPlanted, at time.Time) (domain.GameState, error) {
	if err := requireBumpkin(state); err != nil {
		return domain.GameState{}, err
	}
	loc, patch, err := locate(state, e.ExpansionIndex, e.Index, fruitPatches, domain.ErrNoFruitPatches, domain.ErrFruitPatchNotFound)
	if err != nil {
		return domain.GameState{}, err
	}
	if patch.Fruit != nil {
		return domain.GameState{}, domain.ErrFruitAlreadyPlanted
	}
	species, ok := p.catalog.FruitBySeed(e.Seed)
	if !ok {
		return domain.GameState{}, domain.ErrNotFruitSeed
	}
	if !state.Inventory.Has(e.Seed, one) {
		return domain.GameState{}, domain.ErrNotEnoughSeeds
	}
	harvests := species.DefaultHarvests
	if e.HarvestsLeft != nil {
		if *e.HarvestsLeft < 1 || *e.HarvestsLeft > species.MaxHarvests {
			return domain.GameState{}, domain.ErrInvalidHarvestsLeft
		}
		harvests = *e.HarvestsLeft
	}

	boost := p.resolver.Resolve(state, bonus.Fruit(species.Name))
	now := at.UnixMilli()

	next := state.Clone()
	next.Inventory.Sub(e.Seed, one)
	patch.Fruit = &domain.Fruit{
		Name:         species.Name,
		Amount:       boost.Yield(species.BaseYield),
		PlantedAt:    now - boost.SkipMillis(species.PlantDuration().Milliseconds()),
		HarvestedAt:  0,
		HarvestsLeft: harvests + boost.ExtraHarvests,
	}
	next.Expansions[loc.expansion].FruitPatches[loc.index] = patch
	next.Bumpkin.IncrementActivity(e.Seed+" Planted", one)

	return next, nil
}

func (p *Processor) harvestFruit(state domain.GameState, e FruitHarvested, at time.Time) (domain.GameState, error) {
	if err := requireBumpkin(state); err != nil {
		return domain.GameState{}, err
	}
	loc, patch, err := locate(state, e.ExpansionIndex, e.Index, fruitPatches, domain.ErrNoFruitPatches, domain.ErrFruitPatchNotFound)
	if err != nil {
		return domain.GameState{}, err
	}
	if patch.Fruit == nil {
		return domain.GameState{}, domain.ErrNothingPlanted
	}
	fruit := *patch.Fruit
	species, ok := p.catalog.Fruit(fruit.Name)
	if !ok {
		return domain.GameState{}, fmt.Errorf("%w: unknown fruit %q", domain.ErrInvalidInput, fruit.Name)
	}

	now := at.UnixMilli()
	if now-fruit.PlantedAt < species.PlantDuration().Milliseconds() {
		return domain.GameState{}, domain.ErrNotReady
	}
	if fruit.HarvestedAt > 0 && now-fruit.HarvestedAt < species.ReplenishDuration().Milliseconds() {
		return domain.GameState{}, domain.ErrFruitStillReplenishing
	}
	if fruit.HarvestsLeft <= 0 {
		return domain.GameState{}, domain.ErrNoHarvestLeft
	}

	next := state.Clone()
	next.Inventory.Add(fruit.Name, fruit.Amount)
	fruit.HarvestsLeft--
	fruit.HarvestedAt = now
	patch.Fruit = &fruit
	next.Expansions[loc.expansion].FruitPatches[loc.index] = patch
	next.Bumpkin.IncrementActivity(fruit.Name+" Harvested", one)

	return next, nil
}
