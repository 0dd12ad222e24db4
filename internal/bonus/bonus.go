package bonus

import (
	"github.com/shopspring/decimal"

	"github.com/ykatyhoney/sunflower-land/internal/domain"
)

// Family groups species that share planting rules
type Family string

const (
	FamilyFruit    Family = "fruit"
	FamilyCrop     Family = "crop"
	FamilyResource Family = "resource"
)

// Species identifies what a boost is being resolved for
type Species struct {
	Family Family
	Name   string
}

// Fruit is shorthand for a fruit species
func Fruit(name string) Species { return Species{Family: FamilyFruit, Name: name} }

// Crop is shorthand for a crop species
func Crop(name string) Species { return Species{Family: FamilyCrop, Name: name} }

// Resource is shorthand for a gathered resource
func Resource(name string) Species { return Species{Family: FamilyResource, Name: name} }

// ModifierType defines which axis a rule acts on
type ModifierType string

const (
	// ModifierTypeYield multiplies the base yield: 1 * 1.25 = 1.25
	ModifierTypeYield ModifierType = "yield"

	// ModifierTypeTimeSkip moves plantedAt back by a fraction of the
	// maturation window: 0.5 on a 8h fruit = 4h earlier
	ModifierTypeTimeSkip ModifierType = "time_skip"

	// ModifierTypeExtraHarvests adds whole harvests to a fruit planting
	ModifierTypeExtraHarvests ModifierType = "extra_harvests"
)

// Rule grants a modifier while Collectible is placed. An empty Species
// applies the rule to the whole Family.
type Rule struct {
	Collectible  string
	Family       Family
	Species      string
	ModifierType ModifierType
	Value        decimal.Decimal
}

func (r Rule) appliesTo(s Species) bool {
	if r.Family != s.Family {
		return false
	}
	return r.Species == "" || r.Species == s.Name
}

// Boost is the composed effect of every applicable rule
type Boost struct {
	YieldFactor   decimal.Decimal
	TimeSkip      decimal.Decimal
	ExtraHarvests int
}

// None is the identity boost
func None() Boost {
	return Boost{YieldFactor: decimal.NewFromInt(1), TimeSkip: decimal.Zero}
}

// Yield applies the yield factor to base
func (b Boost) Yield(base decimal.Decimal) decimal.Decimal {
	return base.Mul(b.YieldFactor)
}

// SkipMillis is the time skip in milliseconds for a window of windowMs
func (b Boost) SkipMillis(windowMs int64) int64 {
	return b.TimeSkip.Mul(decimal.NewFromInt(windowMs)).IntPart()
}

// Resolver composes boosts from placed collectibles. It holds no mutable
// state and is safe for concurrent use.
type Resolver struct {
	rules []Rule
}

// NewResolver creates a resolver over rules
func NewResolver(rules []Rule) *Resolver {
	return &Resolver{rules: append([]Rule(nil), rules...)}
}

// NewDefaultResolver creates a resolver over DefaultRules
func NewDefaultResolver() *Resolver {
	return NewResolver(DefaultRules())
}

// Resolve composes every rule whose collectible is placed in state and
// which applies to species. Yield factors multiply, time-skip fractions add
// and are capped at one full window, extra harvests add. All three
// compositions are commutative so rule order never matters.
func (r *Resolver) Resolve(state domain.GameState, species Species) Boost {
	boost := None()
	one := decimal.NewFromInt(1)

	for _, rule := range r.rules {
		if !rule.appliesTo(species) || !state.HasCollectible(rule.Collectible) {
			continue
		}
		switch rule.ModifierType {
		case ModifierTypeYield:
			boost.YieldFactor = boost.YieldFactor.Mul(rule.Value)
		case ModifierTypeTimeSkip:
			boost.TimeSkip = decimal.Min(boost.TimeSkip.Add(rule.Value), one)
		case ModifierTypeExtraHarvests:
			boost.ExtraHarvests += int(rule.Value.IntPart())
		}
	}
	return boost
}
