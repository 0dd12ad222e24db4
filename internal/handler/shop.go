package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ykatyhoney/sunflower-land/internal/catalog"
)

// SeedPrice is one entry of the seed price list
type SeedPrice struct {
	Seed  string          `json:"seed"`
	Price decimal.Decimal `json:"price"`
}

// SeedPricesResponse is the shop's seed price list
type SeedPricesResponse struct {
	CatalogVersion string      `json:"catalogVersion"`
	Seeds          []SeedPrice `json:"seeds"`
}

// HandleGetSeedPrices lists every seed with its shop price
// GET /api/v1/shop/seeds
func HandleGetSeedPrices(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seeds := c.Seeds()
		resp := SeedPricesResponse{
			CatalogVersion: c.Version(),
			Seeds:          make([]SeedPrice, 0, len(seeds)),
		}
		for _, seed := range seeds {
			price, _ := c.SeedPrice(seed)
			resp.Seeds = append(resp.Seeds, SeedPrice{Seed: seed, Price: price})
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
