package farm

import (
	"fmt"
	"time"

	"github.com/ykatyhoney/sunflower-land/internal/bonus"
	"github.com/ykatyhoney/sunflower-land/internal/domain"
)

func (p *Processor) plantCrop(state domain.GameState, e SeedPlanted, at time.Time) (domain.GameState, error) {
	if err := requireBumpkin(state); err != nil {
		return domain.GameState{}, err
	}
	loc, plot, err := locate(state, e.ExpansionIndex, e.Index, plots, domain.ErrNoPlots, domain.ErrPlotNotFound)
	if err != nil {
		return domain.GameState{}, err
	}
	if plot.Crop != nil {
		return domain.GameState{}, domain.ErrCropAlreadyPlanted
	}
	species, ok := p.catalog.CropBySeed(e.Seed)
	if !ok {
		return domain.GameState{}, domain.ErrNotCropSeed
	}
	if !state.Inventory.Has(e.Seed, one) {
		return domain.GameState{}, domain.ErrNotEnoughSeeds
	}

	boost := p.resolver.Resolve(state, bonus.Crop(species.Name))

	next := state.Clone()
	next.Inventory.Sub(e.Seed, one)
	plot.Crop = &domain.Crop{
		Name:      species.Name,
		Amount:    boost.Yield(species.BaseYield),
		PlantedAt: at.UnixMilli() - boost.SkipMillis(species.PlantDuration().Milliseconds()),
	}
	next.Expansions[loc.expansion].Plots[loc.index] = plot
	next.Bumpkin.IncrementActivity(e.Seed+" Planted", one)

	return next, nil
}

// harvestCrop collects a mature crop. Crops yield once, so the plot is
// cleared for the next planting.
func (p *Processor) harvestCrop(state domain.GameState, e CropHarvested, at time.Time) (domain.GameState, error) {
	if err := requireBumpkin(state); err != nil {
		return domain.GameState{}, err
	}
	loc, plot, err := locate(state, e.ExpansionIndex, e.Index, plots, domain.ErrNoPlots, domain.ErrPlotNotFound)
	if err != nil {
		return domain.GameState{}, err
	}
	if plot.Crop == nil {
		return domain.GameState{}, domain.ErrNothingPlanted
	}
	crop := *plot.Crop
	species, ok := p.catalog.Crop(crop.Name)
	if !ok {
		return domain.GameState{}, fmt.Errorf("%w: unknown crop %q", domain.ErrInvalidInput, crop.Name)
	}
	if at.UnixMilli()-crop.PlantedAt < species.PlantDuration().Milliseconds() {
		return domain.GameState{}, domain.ErrNotReady
	}

	next := state.Clone()
	next.Inventory.Add(crop.Name, crop.Amount)
	plot.Crop = nil
	next.Expansions[loc.expansion].Plots[loc.index] = plot
	next.Bumpkin.IncrementActivity(crop.Name+" Harvested", one)

	return next, nil
}
