package ports

import (
	"context"

	"github.com/stpnv0/BlockBooker/internal/domain"
)

// ActivityLog records audit entries. Implementations must not block callers
// on failure.
type ActivityLog interface {
	Record(ctx context.Context, a domain.Activity)
}

type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}
