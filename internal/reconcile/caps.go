package reconcile

import "github.com/shopspring/decimal"

// DefaultMaxSessionBalance is the most currency a single session can
// plausibly earn above the settled balance
var DefaultMaxSessionBalance = decimal.NewFromInt(255)

// Caps maps an item to the most it can plausibly grow within one session.
// Items without an entry may not grow at all.
type Caps map[string]decimal.Decimal

// Limit returns the ceiling for item, zero when it has no entry
func (c Caps) Limit(item string) decimal.Decimal {
	if v, ok := c[item]; ok {
		return v
	}
	return decimal.Zero
}

// DefaultCaps returns the production cap table. Seed ceilings are sized at
// the shop's stock plus a buffer.
func DefaultCaps() Caps {
	n := decimal.NewFromInt
	return Caps{
		// Crops
		"Sunflower":   n(9000),
		"Potato":      n(4500),
		"Pumpkin":     n(2400),
		"Carrot":      n(1000),
		"Cabbage":     n(1000),
		"Beetroot":    n(1000),
		"Cauliflower": n(1000),
		"Parsnip":     n(500),
		"Radish":      n(500),
		"Wheat":       n(500),
		"Kale":        n(500),

		// Fruits
		"Apple":     n(100),
		"Orange":    n(100),
		"Blueberry": n(100),

		// Animals
		"Chicken": n(20),
		"Egg":     n(200),

		// Seeds
		"Sunflower Seed":   n(420),
		"Potato Seed":      n(220),
		"Pumpkin Seed":     n(170),
		"Carrot Seed":      n(120),
		"Cabbage Seed":     n(110),
		"Beetroot Seed":    n(100),
		"Cauliflower Seed": n(100),
		"Parsnip Seed":     n(80),
		"Radish Seed":      n(60),
		"Wheat Seed":       n(60),
		"Kale Seed":        n(60),
		"Apple Seed":       n(50),
		"Blueberry Seed":   n(50),
		"Orange Seed":      n(50),

		// Resources
		"Gold":  n(90),
		"Iron":  n(400),
		"Stone": n(500),
		"Wood":  n(1000),
	}
}
