package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgRequestTooLarge       = "Request body too large"

	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgFarmNotFoundError  = "Farm not found"
	ErrMsgUnknownEventError  = "Unknown event type"
	ErrMsgInvalidEventError  = "Invalid event. Please check the payload."
	ErrMsgConflictError      = "Farm was changed by another request. Please retry."
	ErrMsgProgressError      = "Progress exceeds what this session allows"
)

// Log messages
const (
	LogMsgEventRejected   = "Farm event rejected"
	LogMsgServiceError    = "Service call failed"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
)

// URL and query parameter names
const (
	ParamFarmID = "id"
	QueryLimit  = "limit"
)

// maxEventBodyBytes bounds a single submitted event
const maxEventBodyBytes = 64 << 10
