package store

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/devhub/devhub/models"
)

// UserSQLStore provides user operations over gorm.
type UserSQLStore struct {
	DB *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserSQLStore { return &UserSQLStore{DB: db} }

func (s *UserSQLStore) FindByID(ctx context.Context, id uint64) (*models.User, error) {
	var u models.User
	if err := s.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *UserSQLStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := s.DB.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *UserSQLStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.DB.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *UserSQLStore) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.DB.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserSQLStore) SearchByUsername(ctx context.Context, fragment string) ([]models.User, error) {
	var users []models.User
	pattern := "%" + strings.ToLower(fragment) + "%"
	if err := s.DB.WithContext(ctx).Where("LOWER(username) LIKE ?", pattern).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserSQLStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var one int
	err := s.DB.WithContext(ctx).Raw(`SELECT 1 FROM users WHERE username = ? LIMIT 1`, username).Row().Scan(&one)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (s *UserSQLStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var one int
	err := s.DB.WithContext(ctx).Raw(`SELECT 1 FROM users WHERE email = ? LIMIT 1`, email).Row().Scan(&one)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (s *UserSQLStore) Save(ctx context.Context, u *models.User) error {
	return s.DB.WithContext(ctx).Save(u).Error
}

func (s *UserSQLStore) Delete(ctx context.Context, u *models.User) error {
	return s.DB.WithContext(ctx).Delete(u).Error
}
