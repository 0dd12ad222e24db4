package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/ykatyhoney/sunflower-land/internal/validation"
)

// ErrInvalidCatalog is returned for documents that pass the schema but break
// a cross-entry rule
var ErrInvalidCatalog = errors.New("invalid catalog")

//go:embed catalog.json
var defaultCatalog []byte

//go:embed catalog.schema.json
var catalogSchema []byte

// Config is the JSON document a catalog is built from
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Fruits    []Fruit    `json:"fruits" validate:"dive"`
	Crops     []Crop     `json:"crops" validate:"dive"`
	Resources []Resource `json:"resources" validate:"dive"`
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the catalog compiled into the binary. It panics if the
// embedded document is invalid, which the package tests rule out.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultCatalog)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}

// Load reads a catalog override from path
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse validates data against the catalog schema and the struct rules and
// builds a Catalog from it
func Parse(data []byte) (*Catalog, error) {
	sv := validation.NewSchemaValidator()
	if err := sv.Register(SchemaName, catalogSchema); err != nil {
		return nil, err
	}
	if err := sv.ValidateBytes(data, SchemaName); err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return newCatalog(&cfg), nil
}

// Validate checks struct tags and the rules a schema cannot express:
// unique names, unique seeds, positive yields and non-negative prices.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	names := make(map[string]bool)
	seeds := make(map[string]bool)
	claim := func(set map[string]bool, key, format string) error {
		if set[key] {
			return fmt.Errorf(format, ErrInvalidCatalog, key)
		}
		set[key] = true
		return nil
	}

	for _, f := range cfg.Fruits {
		if err := claim(names, f.Name, ErrFmtDuplicateName); err != nil {
			return err
		}
		if err := claim(seeds, f.Seed, ErrFmtDuplicateSeed); err != nil {
			return err
		}
		if f.DefaultHarvests > f.MaxHarvests {
			return fmt.Errorf(ErrFmtHarvestBounds, ErrInvalidCatalog, f.Name)
		}
		if err := checkAmounts(f.Name, f.BaseYield, f.SeedPrice, f.SellPrice); err != nil {
			return err
		}
	}
	for _, c := range cfg.Crops {
		if err := claim(names, c.Name, ErrFmtDuplicateName); err != nil {
			return err
		}
		if err := claim(seeds, c.Seed, ErrFmtDuplicateSeed); err != nil {
			return err
		}
		if err := checkAmounts(c.Name, c.BaseYield, c.SeedPrice, c.SellPrice); err != nil {
			return err
		}
	}
	for _, r := range cfg.Resources {
		if err := claim(names, r.Name, ErrFmtDuplicateName); err != nil {
			return err
		}
		if !r.BaseYield.IsPositive() {
			return fmt.Errorf(ErrFmtNonPositive, ErrInvalidCatalog, "base yield", r.Name)
		}
	}
	return nil
}

func checkAmounts(name string, yield, seedPrice, sellPrice decimal.Decimal) error {
	if !yield.IsPositive() {
		return fmt.Errorf(ErrFmtNonPositive, ErrInvalidCatalog, "base yield", name)
	}
	if seedPrice.IsNegative() {
		return fmt.Errorf(ErrFmtNegative, ErrInvalidCatalog, "seed price", name)
	}
	if sellPrice.IsNegative() {
		return fmt.Errorf(ErrFmtNegative, ErrInvalidCatalog, "sell price", name)
	}
	return nil
}
