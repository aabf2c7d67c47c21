package usecase

import (
	"time"

	"tailortalk/internal/appointment"
	"tailortalk/pkg/keyword"
	pkgLog "tailortalk/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	gateway appointment.Gateway
	parser  *keyword.Parser
	now     func() time.Time
}

var _ appointment.UseCase = (*implUseCase)(nil)

// Option customizes the use case, mainly for tests.
type Option func(*implUseCase)

// WithNow overrides the clock used as the parser's reference point.
func WithNow(now func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.now = now
	}
}

// New creates a new appointment UseCase instance.
func New(l pkgLog.Logger, gateway appointment.Gateway, parser *keyword.Parser, opts ...Option) *implUseCase {
	uc := &implUseCase{
		l:       l,
		gateway: gateway,
		parser:  parser,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
