package system

import (
	"time"

	"github.com/google/uuid"
)

// Clock implements domain.Clock with the local wall clock.
type Clock struct{}

func (Clock) Now() time.Time { return time.Now() }

// UUIDGenerator implements domain.IDGenerator with random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }
