package main

import (
	"context"
	"log/slog"
	"os"

	"containerview/config"
	"containerview/internal/delivery"
	"containerview/internal/delivery/api"
	apimiddleware "containerview/internal/delivery/api/middleware"
	"containerview/internal/delivery/api/router/handler"
	"containerview/internal/domain/service"
	"containerview/internal/infra/auth"
	logs "containerview/internal/infra/log"
	"containerview/internal/infra/mail"
	"containerview/internal/infra/metrics"
	"containerview/internal/infra/persistence/postgres"
	"containerview/internal/infra/pubsub"
	"containerview/internal/infra/qrcode"
	"containerview/internal/infra/ratelimit"
	"containerview/internal/usecase"
	"containerview/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			bootstrapAdmin,
			func(*impl.CodeSweeper) {},
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(service.AuthMetrics)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewVerificationCodeRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewSessionTokenCodec,
			auth.NewStepUpTokenCodec,
			auth.NewTOTPService,
			qrcode.NewQRCodeService,
			mail.NewCodeSender,
			pubsub.NewEventPublisher,
			ratelimit.NewAttemptLimiter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialVerifier,
			impl.NewVerificationCodeService,
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewTOTPUsecase,
			impl.NewCodeSweeper,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewTOTPHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// bootstrapAdmin creates the configured first administrator before the server accepts traffic.
func bootstrapAdmin(ctx context.Context, userUC usecase.UserUsecase) error {
	return userUC.BootstrapAdmin(ctx)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
