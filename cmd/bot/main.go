package main

import (
	"context"
	"log"
	"time"

	"workout-plan-bot/internal/bot"
	"workout-plan-bot/internal/conversation"
	"workout-plan-bot/internal/importer"
	"workout-plan-bot/internal/models/config"
	"workout-plan-bot/internal/repository"
	"workout-plan-bot/internal/repository/program"
	"workout-plan-bot/internal/repository/progress"
	"workout-plan-bot/internal/repository/session"
	"workout-plan-bot/internal/repository/user"
	"workout-plan-bot/internal/schedule"
	"workout-plan-bot/internal/scheduler"
	"workout-plan-bot/internal/service"
	catalog_service "workout-plan-bot/internal/service/catalog"
	progress_service "workout-plan-bot/internal/service/progress"
	user_service "workout-plan-bot/internal/service/user"
	database "workout-plan-bot/pkg"
	"workout-plan-bot/pkg/locales"

	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			newLogger,
			newLocation,
			newDatabase,
			locales.Load,
			newResolver,

			// Репозитории
			user.NewUserRepository,
			program.NewProgramRepository,
			progress.NewProgressRepository,
			session.NewSessionRepository,

			// Сервисы
			user_service.NewUserService,
			catalog_service.NewCatalogService,
			progress_service.NewProgressService,

			newSessionStore,
			newMachine,
			newBot,
			importer.New,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		// порядок важен: каталог загружается до того, как бот начнёт принимать сообщения
		fx.Invoke(importCatalog, runBot, runReminders),
	)

	app.Run()
}

func newLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	logger.Info("starting", zap.String("env", cfg.Environment))
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			_ = logger.Sync()
			return nil
		},
	})
	return logger, nil
}

func newLocation(cfg *config.Config) (*time.Location, error) {
	return cfg.Location()
}

func newDatabase(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*sqlx.DB, error) {
	db, err := database.New(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return db.Close()
		},
	})
	return db, nil
}

func newResolver(text *locales.Locales) *schedule.Resolver {
	return schedule.NewResolver(text.WeekdayNames())
}

func newSessionStore(cfg *config.Config, repo repository.SessionRepository) conversation.SessionStore {
	if cfg.Bot.SessionStore == config.SessionStoreMemory {
		return conversation.NewMemoryStore()
	}
	return conversation.NewRepositoryStore(repo)
}

type machineParams struct {
	fx.In

	Users    service.UserService
	Catalog  service.CatalogService
	Progress service.ProgressService
	Sessions conversation.SessionStore
	Resolver *schedule.Resolver
	Locales  *locales.Locales
	Logger   *zap.Logger
	Location *time.Location
}

func newMachine(p machineParams) *conversation.Machine {
	return conversation.NewMachine(conversation.Deps{
		Users:    p.Users,
		Catalog:  p.Catalog,
		Progress: p.Progress,
		Sessions: p.Sessions,
		Resolver: p.Resolver,
		Locales:  p.Locales,
		Logger:   p.Logger.Named("conversation"),
		Now:      func() time.Time { return time.Now().In(p.Location) },
	})
}

func newBot(cfg *config.Config, machine *conversation.Machine, text *locales.Locales, log *zap.Logger) (*bot.Bot, error) {
	return bot.NewBot(cfg.Bot, machine, text, log.Named("bot"))
}

// importCatalog загружает каталог программ при старте, если задан CATALOG_PATH.
func importCatalog(lc fx.Lifecycle, cfg *config.Config, im *importer.Importer, catalog service.CatalogService, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Catalog.Path != "" {
				_, err := im.Import(ctx, importer.ImportConfig{
					FilePath:  cfg.Catalog.Path,
					SheetName: cfg.Catalog.Sheet,
				})
				if err != nil {
					// бот работает и без каталога, дни покажутся как незагруженные
					log.Error("catalog import failed", zap.String("file", cfg.Catalog.Path), zap.Error(err))
				}
			}

			n, err := catalog.Count(ctx)
			if err != nil {
				return err
			}
			if n == 0 {
				log.Warn("program catalog is empty")
			}
			return nil
		},
	})
}

func runBot(lc fx.Lifecycle, b *bot.Bot) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return b.Start()
		},
		OnStop: func(context.Context) error {
			b.Stop()
			return nil
		},
	})
}

func runReminders(
	lc fx.Lifecycle,
	cfg *config.Config,
	loc *time.Location,
	users service.UserService,
	resolver *schedule.Resolver,
	text *locales.Locales,
	b *bot.Bot,
	log *zap.Logger,
) {
	if !cfg.Reminder.Enabled {
		return
	}

	s := scheduler.New(cfg.Reminder.At, loc, users, resolver, text, b, log.Named("scheduler"))
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return s.Start()
		},
		OnStop: func(context.Context) error {
			s.Stop()
			return nil
		},
	})
}
