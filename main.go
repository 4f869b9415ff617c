package main

import (
	"context"
	"errors"
	"os"
	"path"

	"github.com/spf13/viper"
	"github.com/tbeaulieu/modscout/cli/commands"
	"github.com/tbeaulieu/modscout/internal/logger"
	"github.com/tbeaulieu/modscout/internal/name"
	"github.com/tbeaulieu/modscout/internal/util"
)

/**
 * Main entry point for all commands
 * Here we setup environment config via viper
 */

func setRunTimeConfig() error {
	userHomeDir, err := os.UserHomeDir()

	if err != nil {
		return err
	}

	configDir := path.Join(userHomeDir, ".config", name.APP_NAME)

	if err := os.MkdirAll(configDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}

	userCacheDir, err := os.UserCacheDir()

	if err != nil {
		return err
	}

	cacheDir := path.Join(userCacheDir, name.APP_NAME)

	if err := os.MkdirAll(cacheDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}

	logFile := path.Join(configDir, name.APP_NAME+".log")

	configFile := path.Join(configDir, name.APP_NAME+".yml")

	databaseFile := path.Join(cacheDir, name.APP_NAME+".db")

	// share run-time config globally using viper
	viper.Set("log-file", logFile)
	viper.Set("config-dir", configDir)
	viper.Set("config-file", configFile)
	viper.Set("cache-dir", cacheDir)
	viper.Set("database-file", databaseFile)

	return nil
}

// Entry point for the cli
func main() {
	log := logger.New()

	err := setRunTimeConfig()

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	appCore, events, err := util.CreateNewAppCore()

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	defer appCore.Stop()

	// Get the "root" cobra cli command
	cmd := commands.Root(&commands.CommandProps{
		Core:   appCore,
		Events: events,
	})

	cmd.SetOutput(os.Stdout)

	// execute the cobra command and exit with error code if necessary
	err = cmd.ExecuteContext(context.Background())

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
