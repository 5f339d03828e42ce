package chat

import (
	"time"

	"github.com/google/uuid"
)

// Role says who authored a turn.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Turn is one immutable message of the transcript.
type Turn struct {
	ID   uuid.UUID
	Role Role
	Text string
	At   time.Time
}

// PendingIndicator is the "request in flight" placeholder. Its label is
// fixed when it is created.
type PendingIndicator struct {
	ID    uuid.UUID
	Label string
}

// Stats counts indicator lifecycles; PendingCreated and PendingRemoved are
// equal whenever no request is in flight.
type Stats struct {
	Submitted      int
	PendingCreated int
	PendingRemoved int
}
