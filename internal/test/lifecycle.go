package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder captures lifecycle hooks appended during tests.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append stores hook for later invocation.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub records shutdown requests made after a server failure.
type ShutdownerStub struct {
	Called  chan struct{}
	Options []fx.ShutdownOption
}

// Shutdown keeps the options and signals Called without blocking.
func (s *ShutdownerStub) Shutdown(opts ...fx.ShutdownOption) error {
	s.Options = append(s.Options, opts...)
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
