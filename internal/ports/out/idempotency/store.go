package idempotency

import (
	"context"
	"time"
)

// Key is the caller-provided idempotency key (Idempotency-Key header).
type Key string

// Fingerprint identifies a request for replay. Session is the caller's
// X-Session-ID; Route is the method-less path template (e.g. "/trips").
type Fingerprint struct {
	Key      Key
	Session  string
	Method   string
	Route    string
	BodyHash string
}

// Record is the stored response we can replay for a duplicate request.
type Record struct {
	StatusCode  int
	ContentType string
	Body        []byte
	CreatedAt   time.Time
}

// Store persists idempotency records for replaying responses on retries.
type Store interface {
	Get(ctx context.Context, fp Fingerprint) (Record, bool, error)
	Put(ctx context.Context, fp Fingerprint, rec Record) error
	// PutIfAbsent stores rec only when fp has no record yet. It reports
	// whether rec was stored; otherwise it returns the record already held.
	PutIfAbsent(ctx context.Context, fp Fingerprint, rec Record) (Record, bool, error)
	// Delete drops the record for fp. Deleting a missing record is a no-op.
	Delete(ctx context.Context, fp Fingerprint) error
}
