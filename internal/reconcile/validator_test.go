package reconcile

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ykatyhoney/sunflower-land/internal/domain"
	"github.com/ykatyhoney/sunflower-land/internal/farm"
)

var (
	testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	d       = decimal.RequireFromString
)

func newValidator() *Validator {
	return NewValidator(farm.NewDefaultProcessor(), DefaultCaps(), DefaultMaxSessionBalance)
}

func bumpkinState(balance string, inv domain.Inventory) domain.GameState {
	return domain.GameState{
		Balance:   d(balance),
		Inventory: inv,
		Bumpkin:   &domain.Bumpkin{ID: "b", Activity: map[string]decimal.Decimal{}},
	}
}

func TestValidate_CapBoundary(t *testing.T) {
	v := newValidator()
	prior := bumpkinState("1000", domain.Inventory{})
	onChain := domain.OnChainSnapshot{Balance: d("1000"), Inventory: domain.Inventory{}}

	tests := []struct {
		name    string
		amount  string
		want    bool
		wantErr string
	}{
		{name: "exactly the cap", amount: "60", want: true},
		{name: "one above the cap", amount: "61", want: false, wantErr: "Kale Seed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := v.Validate(prior, farm.SeedBought{Item: "Kale Seed", Amount: d(tt.amount)}, onChain, testNow)
			assert.Equal(t, tt.want, verdict.Valid)
			assert.Equal(t, tt.wantErr, verdict.Item)
		})
	}
}

func TestValidate_Currency(t *testing.T) {
	v := newValidator()
	prior := bumpkinState("0", domain.Inventory{"Kale": d("100")})
	onChain := domain.OnChainSnapshot{Balance: d("0"), Inventory: domain.Inventory{"Kale": d("100")}}

	verdict := v.Validate(prior, farm.ItemSold{Item: "Kale", Amount: d("25")}, onChain, testNow)
	assert.True(t, verdict.Valid)

	verdict = v.Validate(prior, farm.ItemSold{Item: "Kale", Amount: d("30")}, onChain, testNow)
	assert.False(t, verdict.Valid)
	assert.Equal(t, domain.CurrencyName, verdict.Item)
	assert.True(t, verdict.Delta.Equal(d("300")))
	assert.True(t, verdict.Limit.Equal(d("255")))
}

func TestValidate_HandlerFailureIsValid(t *testing.T) {
	v := newValidator()
	prior := bumpkinState("0", domain.Inventory{})
	prior.Bumpkin = nil

	verdict := v.Validate(prior, farm.SeedBought{Item: "Kale Seed", Amount: d("1000")}, domain.OnChainSnapshot{}, testNow)
	assert.True(t, verdict.Valid)
	assert.Empty(t, verdict.Item)
}

func TestInspect(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name     string
		next     domain.GameState
		onChain  domain.OnChainSnapshot
		want     bool
		wantItem string
	}{
		{
			name: "missing on-chain entry counts as zero",
			next: bumpkinState("0", domain.Inventory{"Apple": d("100")}),
			want: true,
		},
		{
			name:     "item without a cap may not grow",
			next:     bumpkinState("0", domain.Inventory{domain.ItemAxe: d("1")}),
			want:     false,
			wantItem: domain.ItemAxe,
		},
		{
			name:    "item without a cap may stay level",
			next:    bumpkinState("0", domain.Inventory{domain.ItemAxe: d("3")}),
			onChain: domain.OnChainSnapshot{Inventory: domain.Inventory{domain.ItemAxe: d("3")}},
			want:    true,
		},
		{
			name:     "first violation in name order wins",
			next:     bumpkinState("0", domain.Inventory{"Wood": d("5000"), "Apple": d("101"), "Stone": d("9999")}),
			want:     false,
			wantItem: "Apple",
		},
		{
			name:     "currency checked before inventory",
			next:     bumpkinState("256", domain.Inventory{"Apple": d("101")}),
			want:     false,
			wantItem: domain.CurrencyName,
		},
		{
			name: "currency at the limit",
			next: bumpkinState("255", domain.Inventory{}),
			want: true,
		},
		{
			name: "dust below epsilon is ignored",
			next: bumpkinState("0", domain.Inventory{"Pickaxe": d("0.000000001")}),
			want: true,
		},
		{
			name:    "spending is always fine",
			next:    bumpkinState("0", domain.Inventory{"Wood": d("0")}),
			onChain: domain.OnChainSnapshot{Balance: d("100"), Inventory: domain.Inventory{"Wood": d("50")}},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := v.Inspect(tt.next, tt.onChain)
			assert.Equal(t, tt.want, verdict.Valid)
			assert.Equal(t, tt.wantItem, verdict.Item)
		})
	}
}

func TestCaps_Limit(t *testing.T) {
	caps := DefaultCaps()
	assert.True(t, caps.Limit("Sunflower").Equal(d("9000")))
	assert.True(t, caps.Limit("Apple Seed").Equal(d("50")))
	assert.True(t, caps.Limit("Golden Cauliflower").IsZero())
}
