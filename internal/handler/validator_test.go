package handler

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidator_SettleRequest(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		req     SettleRequest
		wantErr bool
	}{
		{"zero balance, no items", SettleRequest{Balance: decimal.Zero}, false},
		{"fractional amounts", SettleRequest{
			Balance:   decimal.RequireFromString("0.01"),
			Inventory: map[string]decimal.Decimal{"Apple": decimal.RequireFromString("2.5")},
		}, false},
		{"negative balance", SettleRequest{Balance: decimal.NewFromInt(-1)}, true},
		{"tiny negative balance", SettleRequest{Balance: decimal.RequireFromString("-0.0001")}, true},
		{"negative item", SettleRequest{
			Balance:   decimal.Zero,
			Inventory: map[string]decimal.Decimal{"Wood": decimal.NewFromInt(-1)},
		}, true},
		{"empty item name", SettleRequest{
			Balance:   decimal.Zero,
			Inventory: map[string]decimal.Decimal{"": decimal.NewFromInt(1)},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))

	errs := FormatValidationError(errors.New("not a validation error"))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, errs)

	err := GetValidator().ValidateStruct(SettleRequest{Balance: decimal.NewFromInt(-5)})
	errs = FormatValidationError(err)
	assert.Equal(t, "Must be at least 0", errs["balance"])
}
