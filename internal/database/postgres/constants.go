package postgres

// Error messages - farm repository
const (
	ErrMsgFailedToCreateFarm  = "failed to create farm"
	ErrMsgFailedToGetFarm     = "failed to get farm"
	ErrMsgFailedToSaveFarm    = "failed to save farm"
	ErrMsgFailedToEncodeState = "failed to encode farm state"
	ErrMsgFailedToDecodeState = "failed to decode farm state"
	ErrMsgFailedToBeginTx     = "failed to begin transaction"
)
