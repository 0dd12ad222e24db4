package sse

import "encoding/json"

// Event is one message sent over a farm stream
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	FarmID    string      `json:"farmId"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AppliedPayload announces an accepted farm event
type AppliedPayload struct {
	EventType string          `json:"eventType"`
	Version   int64           `json:"version"`
	Event     json.RawMessage `json:"event"`
}

// RejectedPayload announces a turned down farm event
type RejectedPayload struct {
	EventType string `json:"eventType"`
	Reason    string `json:"reason"`
	Item      string `json:"item,omitempty"`
}

// SettledPayload announces a new on-chain snapshot
type SettledPayload struct {
	Balance string `json:"balance"`
	Items   int    `json:"items"`
}
