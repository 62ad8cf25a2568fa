package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrphanRetryIntervals is the unpin backoff schedule; the last interval repeats.
var OrphanRetryIntervals = []time.Duration{
	15 * time.Second,
	1 * time.Minute,
	5 * time.Minute,
	30 * time.Minute,
	2 * time.Hour,
}

// OrphanPin is pinned content with no metadata row pointing at it.
type OrphanPin struct {
	ID          uuid.UUID `json:"id"`
	CID         string    `json:"cid"`
	Reason      string    `json:"reason"`
	Attempts    int       `json:"attempts"`
	NextRetryAt time.Time `json:"next_retry_at"`
	LastError   *string   `json:"last_error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NextRetryDelay returns the wait after Attempts failed unpins.
func (o *OrphanPin) NextRetryDelay() time.Duration {
	i := o.Attempts
	if i >= len(OrphanRetryIntervals) {
		i = len(OrphanRetryIntervals) - 1
	}
	if i < 0 {
		i = 0
	}
	return OrphanRetryIntervals[i]
}

// Fail records an unsuccessful unpin attempt at now.
func (o *OrphanPin) Fail(now time.Time, err error) {
	msg := err.Error()
	o.LastError = &msg
	o.Attempts++
	o.NextRetryAt = now.Add(o.NextRetryDelay())
	o.UpdatedAt = now
}
