package farm

import (
	"fmt"
	"time"

	"github.com/ykatyhoney/sunflower-land/internal/bonus"
	"github.com/ykatyhoney/sunflower-land/internal/catalog"
	"github.com/ykatyhoney/sunflower-land/internal/domain"
)

func (p *Processor) chopTree(state domain.GameState, e TimberChopped, at time.Time) (domain.GameState, error) {
	if err := requireBumpkin(state); err != nil {
		return domain.GameState{}, err
	}
	loc, tree, err := locate(state, e.ExpansionIndex, e.Index, trees, domain.ErrNoTrees, domain.ErrTreeNotFound)
	if err != nil {
		return domain.GameState{}, err
	}
	wood, err := p.gatherable(state, domain.ItemWood, tree.Wood, at, domain.ErrNotEnoughAxes, domain.ErrTreeStillGrowing)
	if err != nil {
		return domain.GameState{}, err
	}

	next := state.Clone()
	tree.Wood = p.gather(&next, wood, tree.Wood, at)
	next.Expansions[loc.expansion].Trees[loc.index] = tree
	next.Bumpkin.IncrementActivity(domain.ActivityTreeChopped, one)

	return next, nil
}

func (p *Processor) mineStone(state domain.GameState, e StoneMined, at time.Time) (domain.GameState, error) {
	if err := requireBumpkin(state); err != nil {
		return domain.GameState{}, err
	}
	loc, rock, err := locate(state, e.ExpansionIndex, e.Index, stones, domain.ErrNoStones, domain.ErrStoneNotFound)
	if err != nil {
		return domain.GameState{}, err
	}
	stone, err := p.gatherable(state, domain.ItemStone, rock.Stone, at, domain.ErrNotEnoughPickaxe, domain.ErrRockRecovering)
	if err != nil {
		return domain.GameState{}, err
	}

	next := state.Clone()
	rock.Stone = p.gather(&next, stone, rock.Stone, at)
	next.Expansions[loc.expansion].Stones[loc.index] = rock
	next.Bumpkin.IncrementActivity(domain.ActivityStoneMined, one)

	return next, nil
}

// gatherable checks the tool and recovery preconditions shared by trees and
// rocks and returns the catalog entry of the gathered resource.
func (p *Processor) gatherable(state domain.GameState, name string, res domain.Resource, at time.Time, noTool, recovering error) (catalog.Resource, error) {
	def, ok := p.catalog.Resource(name)
	if !ok {
		return catalog.Resource{}, fmt.Errorf("%w: unknown resource %q", domain.ErrInvalidInput, name)
	}
	if !state.Inventory.Has(def.Tool, one) {
		return catalog.Resource{}, noTool
	}
	if at.UnixMilli()-res.CollectedAt < def.RecoveryDuration().Milliseconds() {
		return catalog.Resource{}, recovering
	}
	return def, nil
}

// gather spends one tool, collects the standing amount and returns the
// source's next yield, boosted as of now.
func (p *Processor) gather(next *domain.GameState, def catalog.Resource, res domain.Resource, at time.Time) domain.Resource {
	next.Inventory.Sub(def.Tool, one)
	next.Inventory.Add(def.Name, res.Amount)

	boost := p.resolver.Resolve(*next, bonus.Resource(def.Name))
	return domain.Resource{
		Amount:      boost.Yield(def.BaseYield),
		CollectedAt: at.UnixMilli(),
	}
}
