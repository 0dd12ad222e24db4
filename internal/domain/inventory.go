package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Epsilon is the smallest quantity treated as non-zero. Anything below it
// is logically an empty stack.
var Epsilon = decimal.New(1, -8)

// Inventory maps an item name to the quantity held
type Inventory map[string]decimal.Decimal

// Amount returns the held quantity of name, zero when absent or below Epsilon.
func (inv Inventory) Amount(name string) decimal.Decimal {
	v, ok := inv[name]
	if !ok || v.LessThan(Epsilon) {
		return decimal.Zero
	}
	return v
}

// Has reports whether at least qty of name is held
func (inv Inventory) Has(name string, qty decimal.Decimal) bool {
	return inv.Amount(name).GreaterThanOrEqual(qty)
}

// Add increases name by qty. The caller owns inv.
func (inv Inventory) Add(name string, qty decimal.Decimal) {
	inv[name] = inv.Amount(name).Add(qty)
}

// Sub decreases name by qty, flooring dust below Epsilon to zero. Callers
// check Has first; Sub never produces a negative entry.
func (inv Inventory) Sub(name string, qty decimal.Decimal) {
	next := inv.Amount(name).Sub(qty)
	if next.LessThan(Epsilon) {
		next = decimal.Zero
	}
	inv[name] = next
}

// Names returns the item names in ascending order. This is the canonical
// scan order wherever the first match matters.
func (inv Inventory) Names() []string {
	names := make([]string, 0, len(inv))
	for name := range inv {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy
func (inv Inventory) Clone() Inventory {
	if inv == nil {
		return Inventory{}
	}
	out := make(Inventory, len(inv))
	for k, v := range inv {
		out[k] = v
	}
	return out
}
