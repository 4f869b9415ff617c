package config

import (
	"time"

	"gorm.io/datatypes"
)

// ConfigModel database model for a stored profile. Scan and Poll settings
// are stored as json blobs so profile shape changes don't require schema
// migrations.
type ConfigModel struct {
	ID     int    `gorm:"primaryKey"`
	Name   string `gorm:"uniqueIndex"`
	Scan   datatypes.JSON
	Poll   datatypes.JSON
	Loaded time.Time
}
