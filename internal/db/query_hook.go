package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-pg/pg/v10"
)

// QueryHook implements pg.QueryHook interface for logging SQL queries
type QueryHook struct {
	logger *slog.Logger
}

// NewQueryHook creates a new QueryHook instance
func NewQueryHook(logger *slog.Logger) *QueryHook {
	return &QueryHook{
		logger: logger.With("component", "pg"),
	}
}

// BeforeQuery is called before executing a query
func (h *QueryHook) BeforeQuery(ctx context.Context, event *pg.QueryEvent) (context.Context, error) {
	return ctx, nil
}

// AfterQuery logs the formatted statement at debug level and failures at warn level
func (h *QueryHook) AfterQuery(ctx context.Context, event *pg.QueryEvent) error {
	query, err := event.FormattedQuery()
	if err != nil {
		h.logger.Error("failed to format query", "error", err)
		return nil
	}

	duration := time.Since(event.StartTime)
	if event.Err != nil {
		h.logger.WarnContext(ctx, "sql query failed",
			"query", string(query),
			"duration", duration,
			"error", event.Err,
		)
		return nil
	}

	h.logger.DebugContext(ctx, "sql query executed",
		"query", string(query),
		"duration", duration,
	)

	return nil
}
