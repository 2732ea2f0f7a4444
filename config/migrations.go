package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"p9e.in/brandsurvey/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250812_create_surveys",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Survey{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("surveys")
			},
		},
		{
			ID: "20250819_index_surveys_submitted_at",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec("CREATE INDEX IF NOT EXISTS idx_surveys_submitted_at ON surveys (submitted_at DESC, id DESC)").Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec("DROP INDEX IF EXISTS idx_surveys_submitted_at").Error
			},
		},
	})

	return m.Migrate()
}
