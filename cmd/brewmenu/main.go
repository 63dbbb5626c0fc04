package main

import (
	"context"
	"log/slog"
	"os"

	"brewmenu/config"
	"brewmenu/internal/delivery"
	"brewmenu/internal/delivery/api"
	"brewmenu/internal/delivery/api/middleware"
	"brewmenu/internal/delivery/api/router/handler"
	"brewmenu/internal/delivery/worker"
	workerhandler "brewmenu/internal/delivery/worker/handler"
	"brewmenu/internal/domain/repository"
	"brewmenu/internal/domain/service"
	"brewmenu/internal/infra/auth"
	"brewmenu/internal/infra/kv"
	logs "brewmenu/internal/infra/log"
	"brewmenu/internal/infra/media"
	"brewmenu/internal/infra/persistence/local"
	"brewmenu/internal/infra/persistence/postgres"
	"brewmenu/internal/infra/pubsub"
	"brewmenu/internal/infra/qrcode"
	"brewmenu/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
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
		kv.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
			newProductRepository,
		),
	)
}

// newProductRepository picks the products table or the key-value document per persistence.productStore.
func newProductRepository(cfg *config.Config, db *gorm.DB, store repository.KeyValueStore, logger *slog.Logger) repository.ProductRepository {
	if cfg.Persistence.ProductStore == config.ProductStoreLocal {
		logger.Info("product store: key-value document")

		return local.NewProductRepository(store, cfg.Persistence.SeedDefaults)
	}

	logger.Info("product store: sql", slog.String("driver", cfg.Persistence.Driver))

	return postgres.NewProductRepository(db)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			media.New,
			newQRCodeService,
		),
	)
}

// newQRCodeService sizes menu QR codes from config. ApplyDefaults guarantees the section.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMenuController,
			impl.NewProductService,
			impl.NewSettingsService,
			impl.NewLanguageService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewMenuHandler,
			handler.NewLanguageHandler,
			handler.NewSettingsHandler,
			handler.NewEventsHandler,
			handler.NewAuthHandler,
			handler.NewProductHandler,
			workerhandler.NewPushHandler,
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
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
