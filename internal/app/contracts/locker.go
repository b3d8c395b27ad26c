package contracts

import (
	"context"
	"time"
)

// LockerService is the distributed lock guarding per-clinic dispatch runs.
// TryLock returns the owner token needed to Unlock or Refresh the lock.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
	Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error
}
