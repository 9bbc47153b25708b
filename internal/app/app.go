package app

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/gorm"

	"github.com/talkincode/restopos/config"
	"github.com/talkincode/restopos/internal/adminapi"
	"github.com/talkincode/restopos/internal/catalog"
	"github.com/talkincode/restopos/internal/customer"
	"github.com/talkincode/restopos/internal/domain"
	"github.com/talkincode/restopos/internal/store"
)

type Application struct {
	appConfig *config.AppConfig
	gormDB    *gorm.DB
	sched     *cron.Cron
	bus       EventBus.Bus
	location  *time.Location
	catalog   *catalog.Service
	customers *customer.Service
}

// Ensure Application implements all interfaces
var (
	_ DBProvider        = (*Application)(nil)
	_ ConfigProvider    = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
	_ adminapi.Services = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig, location: time.Local}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) DB() *gorm.DB {
	return a.gormDB
}

// OverrideDB replaces the application's database handle (used in tests).
func (a *Application) OverrideDB(db *gorm.DB) {
	a.gormDB = db
}

func (a *Application) Catalog() *catalog.Service {
	return a.catalog
}

func (a *Application) Customers() *customer.Service {
	return a.customers
}

func (a *Application) Bus() EventBus.Bus {
	return a.bus
}

func (a *Application) Location() *time.Location {
	return a.location
}

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

// InitLogger installs the global zap logger described by cfg
func InitLogger(cfg config.LogConfig) error {
	var zapConfig zap.Config
	if cfg.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			return err
		}
	}

	zap.ReplaceGlobals(logger)
	return nil
}

// Init sets up logging, the database and the services. Background jobs
// start only when startJobs is set.
func (a *Application) Init(startJobs bool) error {
	cfg := a.appConfig
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
		a.location = loc
	}

	if cfg.Logger.FileEnable {
		if err := cfg.InitDirs(); err != nil {
			return fmt.Errorf("create work dirs: %w", err)
		}
	}
	if err := InitLogger(cfg.Logger); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	db, err := getDatabase(cfg.Database)
	if err != nil {
		return err
	}
	a.gormDB = db
	zap.S().Infof("Database connection successful, type: %s", cfg.Database.Type)

	if err := a.MigrateDB(cfg.Database.Debug); err != nil {
		zap.S().Errorf("database migration failed: %v", err)
	}

	a.initServices()
	if cfg.Catalog.Seed {
		a.Seed()
	}
	if startJobs {
		a.initJob()
	}
	return nil
}

// initServices wires the store, the facades and the audit subscriber
func (a *Application) initServices() {
	provider := store.NewGormStore(a.gormDB)
	a.catalog = catalog.NewService(provider)
	a.customers = customer.NewService(provider)
	a.bus = EventBus.New()
	if err := a.bus.SubscribeAsync(domain.TopicOprLog, a.saveOprLog, false); err != nil {
		zap.S().Errorf("subscribe operation log: %v", err)
	}
}

func (a *Application) MigrateDB(track bool) (err error) {
	defer func() {
		if err1 := recover(); err1 != nil {
			if os.Getenv("GO_DEGUB_TRACE") != "" {
				debug.PrintStack()
			}
			err2, ok := err1.(error)
			if ok {
				err = err2
				zap.S().Error(err2.Error())
			}
		}
	}()
	db := a.gormDB
	if track {
		db = db.Debug()
	}
	return db.Migrator().AutoMigrate(domain.Tables...)
}

func (a *Application) DropAll() {
	_ = a.gormDB.Migrator().DropTable(domain.Tables...)
}

func (a *Application) InitDb() {
	_ = a.gormDB.Migrator().DropTable(domain.Tables...)
	err := a.gormDB.Migrator().AutoMigrate(domain.Tables...)
	if err != nil {
		zap.S().Error(err)
	}
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.bus != nil {
		a.bus.WaitAsync()
	}
	if a.gormDB != nil {
		if sqlDB, err := a.gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = zap.L().Sync()
}
