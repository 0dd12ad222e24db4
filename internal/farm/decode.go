package farm

import (
	"encoding/json"
	"fmt"

	"github.com/ykatyhoney/sunflower-land/internal/domain"
)

type envelope struct {
	Type string `json:"type"`
}

// Decode parses a wire event {"type": ..., ...fields}. An unrecognised type
// fails with domain.ErrUnknownEventType carrying the literal tag; malformed
// JSON fails with domain.ErrInvalidInput.
func Decode(raw []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	var (
		ev  Event
		err error
	)
	switch env.Type {
	case domain.EventTypeFruitPlanted:
		ev, err = decodeInto[FruitPlanted](raw)
	case domain.EventTypeFruitHarvested:
		ev, err = decodeInto[FruitHarvested](raw)
	case domain.EventTypeSeedPlanted:
		ev, err = decodeInto[SeedPlanted](raw)
	case domain.EventTypeCropHarvested:
		ev, err = decodeInto[CropHarvested](raw)
	case domain.EventTypeTimberChopped:
		ev, err = decodeInto[TimberChopped](raw)
	case domain.EventTypeStoneMined:
		ev, err = decodeInto[StoneMined](raw)
	case domain.EventTypeSeedBought:
		ev, err = decodeInto[SeedBought](raw)
	case domain.EventTypeItemSold:
		ev, err = decodeInto[ItemSold](raw)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEventType, env.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: malformed %s payload: %w", domain.ErrInvalidInput, env.Type, err)
	}
	return ev, nil
}

func decodeInto[T Event](raw []byte) (Event, error) {
	var ev T
	if err := json.Unmarshal(raw, &ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// Encode renders ev in the wire form Decode accepts
func Encode(ev Event) ([]byte, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", ev.Type(), err)
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", ev.Type(), err)
	}
	tag, _ := json.Marshal(ev.Type())
	fields["type"] = tag

	return json.Marshal(fields)
}
