package impl

import (
	"context"
	"log/slog"
	"time"

	"containerview/config"
	"containerview/internal/domain/service"
	"containerview/internal/usecase"

	"go.uber.org/fx"
)

// CodeSweeper periodically deletes expired verification codes.
// Expiry is enforced at verify time; the sweeper only bounds table growth.
type CodeSweeper struct {
	codes    usecase.VerificationCodeUsecase
	metrics  service.AuthMetrics
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// CodeSweeperParams holds dependencies for CodeSweeper, injected by Fx.
type CodeSweeperParams struct {
	fx.In

	Lc      fx.Lifecycle
	Codes   usecase.VerificationCodeUsecase
	Metrics service.AuthMetrics
	Config  *config.Config
	Logger  *slog.Logger
}

// NewCodeSweeper registers the sweeper with the fx lifecycle. A zero interval disables it.
func NewCodeSweeper(params CodeSweeperParams) *CodeSweeper {
	var interval time.Duration
	if params.Config != nil && params.Config.Auth != nil {
		interval = params.Config.Auth.CodeSweepInterval
	}

	sweeper := &CodeSweeper{
		codes:    params.Codes,
		metrics:  params.Metrics,
		interval: interval,
		logger:   params.Logger.With(slog.String("component", "code_sweeper")),
	}

	if interval <= 0 {
		sweeper.logger.Info("Expired code sweeper disabled")

		return sweeper
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			sweeper.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return sweeper.Stop(ctx)
		},
	})

	return sweeper
}

// Start launches the ticker loop.
func (s *CodeSweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	}()

	s.logger.Info("Expired code sweeper started", slog.Duration("interval", s.interval))
}

// Stop cancels the loop and waits for an in-flight sweep.
func (s *CodeSweeper) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Sweep runs one purge.
func (s *CodeSweeper) Sweep(ctx context.Context) {
	purged, err := s.codes.PurgeExpired(ctx)
	if err != nil {
		s.logger.Error("Failed to purge expired codes", slog.Any("error", err))

		return
	}

	s.metrics.CodesPurged(purged)
	if purged > 0 {
		s.logger.Debug("Purged expired codes", slog.Int64("count", purged))
	}
}
