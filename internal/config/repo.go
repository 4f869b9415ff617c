package config

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/tbeaulieu/modscout/internal/exception"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SqliteRepo is our repo implementation for sqlite
type SqliteRepo struct {
	db *gorm.DB
}

// NewSqliteRepo returns a new modscout sqlite repo
func NewSqliteRepo(db *gorm.DB) *SqliteRepo {
	return &SqliteRepo{
		db: db,
	}
}

// Get returns a profile from the db by name
func (r *SqliteRepo) Get(name string) (*Config, error) {
	if name == "" {
		return nil, errors.New("config name cannot be empty")
	}

	confModel := ConfigModel{}

	if result := r.db.First(&confModel, "name = ?", name); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return modelToConfig(&confModel)
}

// GetAll returns all profiles in db
func (r *SqliteRepo) GetAll() ([]*Config, error) {
	confModels := []ConfigModel{}

	if result := r.db.Find(&confModels); result.Error != nil {
		return nil, result.Error
	}

	confs := []*Config{}

	for _, m := range confModels {
		c, err := modelToConfig(&m)

		if err != nil {
			return nil, err
		}

		confs = append(confs, c)
	}

	return confs, nil
}

// Create creates a new profile in db
func (r *SqliteRepo) Create(conf *Config) (*Config, error) {
	if conf.Name == "" {
		return nil, errors.New("config name cannot be empty")
	}

	confModel, err := configToModel(conf)

	if err != nil {
		return nil, err
	}

	confModel.Loaded = time.Now()

	if result := r.db.Create(confModel); result.Error != nil {
		return nil, result.Error
	}

	return modelToConfig(confModel)
}

// Update updates a profile in db
func (r *SqliteRepo) Update(conf *Config) (*Config, error) {
	if conf.ID == 0 {
		return nil, errors.New("config ID cannot be empty")
	}

	confModel, err := configToModel(conf)

	if err != nil {
		return nil, err
	}

	if result := r.db.Save(confModel); result.Error != nil {
		return nil, result.Error
	}

	return modelToConfig(confModel)
}

// Delete deletes a profile from db by name
func (r *SqliteRepo) Delete(name string) error {
	if name == "" {
		return errors.New("config name cannot be empty")
	}

	return r.db.Delete(&ConfigModel{}, "name = ?", name).Error
}

// SetLastLoaded updates a profile's "loaded" field to the current timestamp
func (r *SqliteRepo) SetLastLoaded(name string) error {
	confModel := ConfigModel{}

	if result := r.db.First(&confModel, "name = ?", name); result.Error != nil {
		return result.Error
	}

	confModel.Loaded = time.Now()

	return r.db.Save(&confModel).Error
}

// LastLoaded returns the most recently loaded profile
func (r *SqliteRepo) LastLoaded() (*Config, error) {
	confModel := ConfigModel{}

	if result := r.db.Order("loaded desc").First(&confModel); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return modelToConfig(&confModel)
}

// helpers
func modelToConfig(model *ConfigModel) (*Config, error) {
	scan := ScanConfig{}

	if err := json.Unmarshal([]byte(model.Scan.String()), &scan); err != nil {
		return nil, err
	}

	poll := PollConfig{}

	if err := json.Unmarshal([]byte(model.Poll.String()), &poll); err != nil {
		return nil, err
	}

	return &Config{
		ID:     model.ID,
		Name:   model.Name,
		Scan:   scan,
		Poll:   poll,
		Loaded: model.Loaded,
	}, nil
}

func configToModel(conf *Config) (*ConfigModel, error) {
	scanBytes, err := json.Marshal(conf.Scan)

	if err != nil {
		return nil, err
	}

	pollBytes, err := json.Marshal(conf.Poll)

	if err != nil {
		return nil, err
	}

	return &ConfigModel{
		ID:     conf.ID,
		Name:   conf.Name,
		Scan:   datatypes.JSON(scanBytes),
		Poll:   datatypes.JSON(pollBytes),
		Loaded: conf.Loaded,
	}, nil
}
