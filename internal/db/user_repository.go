package db

import (
	"github.com/terraincognita07/rota/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) List() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

// DeleteWithSchedules removes the user's schedules and then the user in one
// transaction. Deleting an unknown id is not an error.
func (repo *UserRepository) DeleteWithSchedules(userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Schedule{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}

func (repo *UserRepository) UpdatePassword(userID uint, passwordHash string) (int64, error) {
	result := repo.database.Model(&models.User{}).Where("id = ?", userID).Update("password", passwordHash)
	return result.RowsAffected, result.Error
}
