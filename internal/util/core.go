package util

import (
	"errors"
	"time"

	"github.com/spf13/viper"
	"github.com/tbeaulieu/modscout/internal/config"
	"github.com/tbeaulieu/modscout/internal/core"
	"github.com/tbeaulieu/modscout/internal/discovery"
	"github.com/tbeaulieu/modscout/internal/event"
	"github.com/tbeaulieu/modscout/internal/exception"
	"github.com/tbeaulieu/modscout/internal/modserver"
	"github.com/tbeaulieu/modscout/internal/poll"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// getSqliteDbConnection creates and returns a sqlite database connection
func getSqliteDbConnection(dbFile string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})

	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&config.ConfigModel{})

	if err != nil {
		return nil, err
	}

	return db, nil
}

// loadActiveConfig returns the most recently loaded stored profile,
// seeding the database from the user's yaml config (or the built-in
// defaults) on first run
func loadActiveConfig(configService config.Service) (*config.Config, error) {
	conf, err := configService.LastLoaded()

	if err == nil {
		return conf, nil
	}

	if !errors.Is(err, exception.ErrRecordNotFound) {
		return nil, err
	}

	configFile := viper.Get("config-file").(string)

	conf, err = config.New(configFile)

	if err != nil {
		conf = config.Default()
	}

	return configService.Create(conf)
}

// CreateNewAppCore creates and returns a new instance of *core.Core
func CreateNewAppCore() (*core.Core, event.Manager, error) {
	dbFile := viper.Get("database-file").(string)

	db, err := getSqliteDbConnection(dbFile)

	if err != nil {
		return nil, nil, err
	}

	configRepo := config.NewSqliteRepo(db)
	configService := config.NewConfigService(configRepo)

	conf, err := loadActiveConfig(configService)

	if err != nil {
		return nil, nil, err
	}

	client := modserver.NewHTTPClient()

	prober := discovery.NewHTTPProber(client)

	var resolver discovery.SubnetResolver = discovery.NewIPLookupResolver(
		discovery.DefaultLookupURL,
	)

	if len(conf.Scan.Subnets) > 0 {
		// profile pins its subnets; skip the public-IP heuristic
		resolver = discovery.NewStaticResolver(conf.Scan.Subnets)
	}

	scanner, err := discovery.NewSubnetScanner(prober, resolver, conf.Scan.Targets)

	if err != nil {
		return nil, nil, err
	}

	events := event.NewEventManager()

	poller := poll.NewService(client, events)
	poller.SetInterval(time.Duration(conf.Poll.IntervalMs) * time.Millisecond)
	poller.SetCallTimeout(time.Duration(conf.Poll.TimeoutMs) * time.Millisecond)

	appCore := core.New(conf, configService, scanner, poller, events)

	return appCore, events, nil
}
