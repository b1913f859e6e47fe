package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

// ActivityRepository appends to activity_log. Failures are logged and
// swallowed: the log must never fail the operation that produced it.
type ActivityRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
	logger   logger.Logger
}

func NewActivityRepo(db *dbpg.DB, logger logger.Logger) *ActivityRepository {
	return &ActivityRepository{
		db:       db,
		strategy: defaultStrategy(),
		logger:   logger,
	}
}

func (r *ActivityRepository) Record(ctx context.Context, a domain.Activity) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO activity_log (id, event_id, kind, entity_id, message, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		a.ID, a.EventID, a.Kind, a.EntityID, a.Message, a.CreatedAt)
	if err != nil {
		r.logger.Error("failed to record activity",
			logger.String("event_id", a.EventID),
			logger.String("kind", string(a.Kind)),
			logger.String("error", err.Error()),
		)
	}
}
