package user

import (
	"Burger-App-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		Create(ctx context.Context, user *entities.User) error
		GetByEmail(ctx context.Context, email string) (*entities.User, error)
		EmailExists(ctx context.Context, email string) (bool, error)
		VerifyByCode(ctx context.Context, email, code string) (int64, error)
		CountUsers(ctx context.Context) (int64, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

// VerifyByCode flips is_verified in a single conditional update and reports
// the number of rows affected; zero means no unverified account matched.
func (r *userRepository) VerifyByCode(ctx context.Context, email, code string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("email = ? AND verify_code = ? AND is_verified = ?", email, code, false).
		Update("is_verified", true)
	return res.RowsAffected, res.Error
}

func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error
	return count, err
}
