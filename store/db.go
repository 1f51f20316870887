package store

import (
	"github.com/devhub/devhub/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenPostgres opens a gorm connection and returns SQL-backed stores.
// Schema management is goose's job (see migrate/), not gorm's.
func OpenPostgres(dsn string) (*Stores, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	return &Stores{
		Users:     NewUserStore(db),
		BlogPosts: NewBlogPostStore(db),
		Projects:  NewProjectStore(db),
		Comments:  NewCommentStore(db),
	}, nil
}

// notFound translates gorm's record miss to the platform taxonomy.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.ErrNotFound
	}
	return err
}
