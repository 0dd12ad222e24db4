package farm

import "github.com/ykatyhoney/sunflower-land/internal/domain"

// buySeed spends balance on whole seeds
func (p *Processor) buySeed(state domain.GameState, e SeedBought) (domain.GameState, error) {
	if err := requireBumpkin(state); err != nil {
		return domain.GameState{}, err
	}
	price, ok := p.catalog.SeedPrice(e.Item)
	if !ok {
		return domain.GameState{}, domain.ErrNotASeed
	}
	if !e.Amount.IsPositive() || !e.Amount.IsInteger() {
		return domain.GameState{}, domain.ErrInvalidAmount
	}
	cost := price.Mul(e.Amount)
	if state.Balance.LessThan(cost) {
		return domain.GameState{}, domain.ErrInsufficientTokens
	}

	next := state.Clone()
	next.Balance = next.Balance.Sub(cost)
	next.Inventory.Add(e.Item, e.Amount)
	next.Bumpkin.IncrementActivity(domain.ActivitySFLSpent, cost)
	next.Bumpkin.IncrementActivity(e.Item+" Bought", e.Amount)

	return next, nil
}

// sellItem sells harvested produce. Boosted harvests leave fractional
// stacks, so fractional amounts may be sold.
func (p *Processor) sellItem(state domain.GameState, e ItemSold) (domain.GameState, error) {
	price, ok := p.catalog.SellPrice(e.Item)
	if !ok {
		return domain.GameState{}, domain.ErrNotForSale
	}
	if !e.Amount.IsPositive() {
		return domain.GameState{}, domain.ErrInvalidAmount
	}
	if !state.Inventory.Has(e.Item, e.Amount) {
		return domain.GameState{}, domain.ErrInsufficientStock
	}
	earned := price.Mul(e.Amount)

	next := state.Clone()
	next.Inventory.Sub(e.Item, e.Amount)
	next.Balance = next.Balance.Add(earned)
	if next.Bumpkin != nil {
		next.Bumpkin.IncrementActivity(domain.ActivitySFLEarned, earned)
		next.Bumpkin.IncrementActivity(e.Item+" Sold", e.Amount)
	}

	return next, nil
}
