package app

import (
	"github.com/ghuser/charmstore/pkg/database"
	"github.com/ghuser/charmstore/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route registration calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "listing products", "limit", limit)
//	app.Logger.ErrorContext(ctx, "query failed", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db     *database.Mongo
	Logger logger.Logger
}
