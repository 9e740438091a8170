package logger

import "go.uber.org/fx"

// Module wires slog logger for dependency injection.
var Module = fx.Provide(New)

// FxEvents sends fx's own events to the service logger.
var FxEvents = fx.WithLogger(NewFxLogger)
