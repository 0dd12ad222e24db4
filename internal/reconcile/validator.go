package reconcile

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ykatyhoney/sunflower-land/internal/domain"
	"github.com/ykatyhoney/sunflower-land/internal/farm"
)

// Verdict is the outcome of a reconciliation. Item names the first
// offending resource when Valid is false.
type Verdict struct {
	Valid bool            `json:"valid"`
	Item  string          `json:"violatingItem,omitempty"`
	Delta decimal.Decimal `json:"delta"`
	Limit decimal.Decimal `json:"limit"`
}

func valid() Verdict {
	return Verdict{Valid: true}
}

// Validator compares candidate states against a trusted on-chain snapshot.
// It never returns an error; what to do with an invalid verdict is up to
// the caller.
type Validator struct {
	processor  *farm.Processor
	caps       Caps
	maxBalance decimal.Decimal
}

// NewValidator creates a validator replaying events through processor
func NewValidator(processor *farm.Processor, caps Caps, maxSessionBalance decimal.Decimal) *Validator {
	return &Validator{processor: processor, caps: caps, maxBalance: maxSessionBalance}
}

// Validate replays event on prior and inspects the result. An event the
// handlers reject cannot change state, so it is valid here.
func (v *Validator) Validate(prior domain.GameState, event farm.Event, onChain domain.OnChainSnapshot, at time.Time) Verdict {
	next, err := v.processor.Process(prior, event, at)
	if err != nil {
		return valid()
	}
	return v.Inspect(next, onChain)
}

// Inspect checks an already computed state. The balance is checked first,
// then inventory items in ascending name order; the first violation wins.
func (v *Validator) Inspect(next domain.GameState, onChain domain.OnChainSnapshot) Verdict {
	if delta := next.Balance.Sub(onChain.Balance); delta.GreaterThan(v.maxBalance) {
		return Verdict{Item: domain.CurrencyName, Delta: delta, Limit: v.maxBalance}
	}

	for _, item := range next.Inventory.Names() {
		delta := next.Inventory.Amount(item).Sub(onChain.Inventory.Amount(item))
		limit := v.caps.Limit(item)
		if delta.GreaterThan(limit) {
			return Verdict{Item: item, Delta: delta, Limit: limit}
		}
	}
	return valid()
}
