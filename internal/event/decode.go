package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns an event payload as T. MemoryBus publishers hand
// over the typed struct itself; payloads read back from JSON arrive as raw
// bytes or generic maps and are converted.
func DecodePayload[T any](payload interface{}) (T, error) {
	var out T

	var data []byte
	switch v := payload.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, fmt.Errorf("decode %T payload: nil pointer", out)
		}
		return *v, nil
	case json.RawMessage:
		data = v
	case []byte:
		data = v
	default:
		raw, err := json.Marshal(payload)
		if err != nil {
			return out, fmt.Errorf("decode %T payload: %w", out, err)
		}
		data = raw
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode %T payload: %w", out, err)
	}
	return out, nil
}
