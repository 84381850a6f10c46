package migration

import (
	"gorm.io/gorm"

	"github.com/beesaferoot/blog-api/internal/models"
)

// All returns the registered schema migrations in application order.
func All() []*Migration {
	return []*Migration{
		{
			Version: "20240101000000",
			Name:    "create_blog_tables",
			Up: func(db *gorm.DB) error {
				// AutoMigrate orders authors before posts so the cascade
				// foreign key can be created.
				return db.AutoMigrate(&models.Author{}, &models.Post{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&models.Post{}, &models.Author{})
			},
		},
	}
}

// RunAll applies every pending migration against db. It is idempotent and is
// called on server startup to guarantee the schema exists.
func RunAll(db *gorm.DB) error {
	migrator := NewMigrator(db)
	for _, m := range All() {
		migrator.Register(m)
	}
	return migrator.Up()
}
