package session

import (
	"fmt"

	"github.com/ykatyhoney/sunflower-land/internal/domain"
	"github.com/ykatyhoney/sunflower-land/internal/reconcile"
)

// ProgressError carries the reconciliation verdict that turned an event
// down. It matches domain.ErrProgressRejected with errors.Is.
type ProgressError struct {
	Verdict reconcile.Verdict
}

func (e *ProgressError) Error() string {
	return fmt.Sprintf("%s: %s gained %s, limit %s",
		domain.ErrMsgProgressRejected, e.Verdict.Item, e.Verdict.Delta.String(), e.Verdict.Limit.String())
}

func (e *ProgressError) Unwrap() error {
	return domain.ErrProgressRejected
}
