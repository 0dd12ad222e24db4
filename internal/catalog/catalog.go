package catalog

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Fruit is a multi-harvest species planted on fruit patches
type Fruit struct {
	Name             string          `json:"name" validate:"required"`
	Seed             string          `json:"seed" validate:"required"`
	PlantSeconds     int64           `json:"plant_seconds" validate:"gt=0"`
	ReplenishSeconds int64           `json:"replenish_seconds" validate:"gte=0"`
	BaseYield        decimal.Decimal `json:"base_yield"`
	DefaultHarvests  int             `json:"default_harvests" validate:"gte=1"`
	MaxHarvests      int             `json:"max_harvests" validate:"gte=1"`
	SeedPrice        decimal.Decimal `json:"seed_price"`
	SellPrice        decimal.Decimal `json:"sell_price"`
}

// PlantDuration is the maturation window of a fresh planting
func (f Fruit) PlantDuration() time.Duration {
	return time.Duration(f.PlantSeconds) * time.Second
}

// ReplenishDuration is the minimum time between two harvests
func (f Fruit) ReplenishDuration() time.Duration {
	return time.Duration(f.ReplenishSeconds) * time.Second
}

// Crop is a single-harvest species planted on plots
type Crop struct {
	Name         string          `json:"name" validate:"required"`
	Seed         string          `json:"seed" validate:"required"`
	PlantSeconds int64           `json:"plant_seconds" validate:"gt=0"`
	BaseYield    decimal.Decimal `json:"base_yield"`
	SeedPrice    decimal.Decimal `json:"seed_price"`
	SellPrice    decimal.Decimal `json:"sell_price"`
}

// PlantDuration is the maturation window of a fresh planting
func (c Crop) PlantDuration() time.Duration {
	return time.Duration(c.PlantSeconds) * time.Second
}

// Resource is a natural resource gathered with a tool
type Resource struct {
	Name            string          `json:"name" validate:"required"`
	Source          string          `json:"source" validate:"required"`
	Tool            string          `json:"tool" validate:"required"`
	RecoverySeconds int64           `json:"recovery_seconds" validate:"gt=0"`
	BaseYield       decimal.Decimal `json:"base_yield"`
}

// RecoveryDuration is the time a gathered source needs before it yields again
func (r Resource) RecoveryDuration() time.Duration {
	return time.Duration(r.RecoverySeconds) * time.Second
}

// Catalog is the read-only species table handlers consult. It is safe for
// concurrent use once built.
type Catalog struct {
	version   string
	fruits    map[string]Fruit
	crops     map[string]Crop
	resources map[string]Resource

	fruitSeeds map[string]string
	cropSeeds  map[string]string
}

func newCatalog(cfg *Config) *Catalog {
	c := &Catalog{
		version:    cfg.Version,
		fruits:     make(map[string]Fruit, len(cfg.Fruits)),
		crops:      make(map[string]Crop, len(cfg.Crops)),
		resources:  make(map[string]Resource, len(cfg.Resources)),
		fruitSeeds: make(map[string]string, len(cfg.Fruits)),
		cropSeeds:  make(map[string]string, len(cfg.Crops)),
	}
	for _, f := range cfg.Fruits {
		c.fruits[f.Name] = f
		c.fruitSeeds[f.Seed] = f.Name
	}
	for _, cr := range cfg.Crops {
		c.crops[cr.Name] = cr
		c.cropSeeds[cr.Seed] = cr.Name
	}
	for _, r := range cfg.Resources {
		c.resources[r.Name] = r
	}
	return c
}

// Version of the loaded catalog document
func (c *Catalog) Version() string {
	return c.version
}

// Fruit looks up a fruit by product name
func (c *Catalog) Fruit(name string) (Fruit, bool) {
	f, ok := c.fruits[name]
	return f, ok
}

// FruitBySeed looks up the fruit grown from seed
func (c *Catalog) FruitBySeed(seed string) (Fruit, bool) {
	name, ok := c.fruitSeeds[seed]
	if !ok {
		return Fruit{}, false
	}
	return c.fruits[name], true
}

// Crop looks up a crop by product name
func (c *Catalog) Crop(name string) (Crop, bool) {
	cr, ok := c.crops[name]
	return cr, ok
}

// CropBySeed looks up the crop grown from seed
func (c *Catalog) CropBySeed(seed string) (Crop, bool) {
	name, ok := c.cropSeeds[seed]
	if !ok {
		return Crop{}, false
	}
	return c.crops[name], true
}

// Resource looks up a gathered resource by product name, e.g. "Wood"
func (c *Catalog) Resource(name string) (Resource, bool) {
	r, ok := c.resources[name]
	return r, ok
}

// SeedPrice is the shop price of one fruit or crop seed
func (c *Catalog) SeedPrice(seed string) (decimal.Decimal, bool) {
	if f, ok := c.FruitBySeed(seed); ok {
		return f.SeedPrice, true
	}
	if cr, ok := c.CropBySeed(seed); ok {
		return cr.SeedPrice, true
	}
	return decimal.Zero, false
}

// SellPrice is what the shop pays for one unit of a harvested product.
// Resources and seeds are not sellable.
func (c *Catalog) SellPrice(item string) (decimal.Decimal, bool) {
	if f, ok := c.fruits[item]; ok {
		return f.SellPrice, true
	}
	if cr, ok := c.crops[item]; ok {
		return cr.SellPrice, true
	}
	return decimal.Zero, false
}

// Seeds returns every seed name, sorted
func (c *Catalog) Seeds() []string {
	seeds := make([]string, 0, len(c.fruitSeeds)+len(c.cropSeeds))
	for s := range c.fruitSeeds {
		seeds = append(seeds, s)
	}
	for s := range c.cropSeeds {
		seeds = append(seeds, s)
	}
	sort.Strings(seeds)
	return seeds
}
