package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo-service/internal/domain/entities"
	"todo-service/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) ExistsByUserName(ctx context.Context, userName string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&UserModel{}).Where("user_name = ?", userName).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) FindByUserName(ctx context.Context, userName string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("user_name = ?", userName).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	userModel := UserModel{
		CreatedAt: userEntity.CreatedAt,
		UpdatedAt: userEntity.UpdatedAt,
		UserName:  userEntity.UserName,
		Password:  userEntity.PasswordHash,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		Id:           userModel.Id,
		CreatedAt:    userModel.CreatedAt,
		UpdatedAt:    userModel.UpdatedAt,
		UserName:     userModel.UserName,
		PasswordHash: userModel.Password,
	}
}
