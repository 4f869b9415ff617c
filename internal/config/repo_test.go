package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tbeaulieu/modscout/internal/config"
	"github.com/tbeaulieu/modscout/internal/exception"
	"github.com/tbeaulieu/modscout/internal/test_util"
)

func assertEqualConf(t *testing.T, expected, actual *config.Config) {
	assert.Equal(t, expected.Name, actual.Name)
	assert.Equal(t, expected.Scan.Port, actual.Scan.Port)
	assert.Equal(t, expected.Scan.Subnets, actual.Scan.Subnets)
	assert.Equal(t, expected.Scan.Targets, actual.Scan.Targets)
	assert.Equal(t, expected.Poll.IntervalMs, actual.Poll.IntervalMs)
	assert.Equal(t, expected.Poll.TimeoutMs, actual.Poll.TimeoutMs)
}

func TestConfigSqliteRepo(t *testing.T) {
	testDBFile := "config.db"

	defer func() {
		os.RemoveAll(testDBFile)
	}()

	db, err := test_util.GetDBConnection(testDBFile)

	if err != nil {
		t.Logf("failed to create test db: %s", err.Error())
		t.FailNow()
	}

	if err := test_util.Migrate(db, config.ConfigModel{}); err != nil {
		t.Logf("failed to migrate test db: %s", err.Error())
		t.FailNow()
	}

	repo := config.NewSqliteRepo(db)

	t.Run("returns record not found error", func(st *testing.T) {
		_, err := repo.Get("noop")

		assert.Error(st, err)
		assert.Equal(st, exception.ErrRecordNotFound, err)
	})

	t.Run("creates, reads, updates, and destroys profile", func(st *testing.T) {
		conf := &config.Config{
			Name: "test",
			Scan: config.ScanConfig{
				Port:    8080,
				Subnets: []string{"192.168.1"},
				Targets: []string{"10.0.0.0/28"},
			},
			Poll: config.PollConfig{
				IntervalMs: 500,
				TimeoutMs:  3000,
			},
		}

		newConf, err := repo.Create(conf)

		assert.NoError(st, err)
		assertEqualConf(st, conf, newConf)

		foundConf, err := repo.Get(newConf.Name)

		assert.NoError(st, err)
		assertEqualConf(st, newConf, foundConf)

		toUpdate := *newConf
		toUpdate.Scan.Port = 9090
		updatedConf, err := repo.Update(&toUpdate)

		assert.NoError(st, err)
		assert.Equal(st, 9090, updatedConf.Scan.Port)

		err = repo.Delete(conf.Name)

		assert.NoError(st, err)

		deletedConfig, err := repo.Get(conf.Name)

		assert.Error(st, err)
		assert.Equal(st, exception.ErrRecordNotFound, err)
		assert.Nil(st, deletedConfig)
	})

	t.Run("tracks the most recently loaded profile", func(st *testing.T) {
		conf1 := &config.Config{
			Name: "first",
			Scan: config.ScanConfig{Port: 8080},
			Poll: config.PollConfig{IntervalMs: 500, TimeoutMs: 3000},
		}

		conf2 := &config.Config{
			Name: "second",
			Scan: config.ScanConfig{Port: 8081},
			Poll: config.PollConfig{IntervalMs: 500, TimeoutMs: 3000},
		}

		_, err := repo.Create(conf1)
		assert.NoError(st, err)

		_, err = repo.Create(conf2)
		assert.NoError(st, err)

		err = repo.SetLastLoaded("first")
		assert.NoError(st, err)

		lastLoaded, err := repo.LastLoaded()

		assert.NoError(st, err)
		assert.Equal(st, "first", lastLoaded.Name)
	})
}
