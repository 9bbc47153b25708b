package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/talkincode/restopos/internal/customer"
	"github.com/talkincode/restopos/internal/domain"
)

const oprLogRetention = 365 * 24 * time.Hour

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	a.sched = cron.New(cron.WithLocation(a.location), cron.WithParser(cronParser))

	var err error
	if spec := a.appConfig.Catalog.StatsCron; spec != "" {
		_, err = a.sched.AddFunc(spec, a.SchedCatalogStatsTask)
		if err != nil {
			zap.S().Errorf("init job error %s", err.Error())
		}
	}

	_, err = a.sched.AddFunc("@daily", a.SchedClearOprLogTask)
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedCatalogStatsTask logs a snapshot of the catalog and customer figures
func (a *Application) SchedCatalogStatsTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products, err := a.catalog.Stats(ctx)
	if err != nil {
		return
	}
	rows, err := a.customers.List(ctx)
	if err != nil {
		return
	}
	customers := customer.ComputeStats(rows, time.Now())

	zap.L().Info("catalog statistics",
		zap.String("namespace", "jobs"),
		zap.Int64("products", products.Total),
		zap.Int64("active", products.Active),
		zap.Int64("suspended", products.Suspended),
		zap.Int64("favorites", products.Favorites),
		zap.Int("customers", customers.Total),
		zap.Int("active_customers", customers.Active),
		zap.Float64("average_spend", customers.AverageSpend))
}

// SchedClearOprLogTask removes audit entries older than a year
func (a *Application) SchedClearOprLogTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()
	err := a.gormDB.
		Where("opt_time < ?", time.Now().Add(-oprLogRetention)).
		Delete(&domain.SysOprLog{}).Error
	if err != nil {
		zap.L().Error("failed to clear operation logs", zap.Error(err))
	}
}
