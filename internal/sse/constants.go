package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50
)

// KeepaliveInterval is how often idle streams get a keepalive ping
const KeepaliveInterval = 30 * time.Second

// Stream-only event types; farm events keep their bus type names
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// ParamFarmID is the chi URL parameter naming the streamed farm
const ParamFarmID = "id"

// QueryTypes optionally restricts a stream to a comma-separated set of event types
const QueryTypes = "types"

// Log messages
const (
	LogMsgClientConnected     = "SSE client connected"
	LogMsgClientDisconnected  = "SSE client disconnected"
	LogMsgEventBroadcast      = "Broadcasting SSE event"
	LogMsgEventDropped        = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError          = "Failed to write SSE event"
	LogMsgDecodePayloadFailed = "SSE payload could not be decoded"
	LogMsgSubscriberReady     = "SSE subscriber registered for event types"
)
