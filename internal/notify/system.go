package notify

import "context"

// Report summarizes a dispatch run. Unmatched counts agreements that
// carry an active alert but have no registered recipient.
type Report struct {
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	Unmatched int `json:"unmatched"`
}

// System defines the public contract for notification operations.
type System interface {
	Handler() *Handler

	Dispatch(ctx context.Context) (*Report, error)
	SendTest(to string) error
}
