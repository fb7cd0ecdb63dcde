package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/rota/internal/models"
	"github.com/terraincognita07/rota/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

const TemporaryPasswordLength = 12

type UserRepository interface {
	List() ([]models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	DeleteWithSchedules(userID uint) error
	UpdatePassword(userID uint, passwordHash string) (int64, error)
}

type UserService struct {
	users UserRepository
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

func (service *UserService) ListUsers() ([]models.User, error) {
	return service.users.List()
}

func (service *UserService) FindUser(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// CreateUser validates the input and stores the user with a bcrypt hash in
// place of the submitted password.
func (service *UserService) CreateUser(input UserInput) (models.User, error) {
	normalized, err := NormalizeUserInput(input)
	if err != nil {
		return models.User{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(normalized.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		FirstName: normalized.FirstName,
		LastName:  normalized.LastName,
		Email:     normalized.Email,
		Password:  string(passwordHash),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// DeleteUser removes the user together with every schedule that references it.
func (service *UserService) DeleteUser(userID uint) error {
	return service.users.DeleteWithSchedules(userID)
}

// ResetPassword replaces the stored hash with one for a freshly generated
// temporary password and returns that password in clear text.
func (service *UserService) ResetPassword(userID uint) (string, error) {
	temporaryPassword, err := security.TemporaryPassword(TemporaryPasswordLength)
	if err != nil {
		return "", fmt.Errorf("generate temporary password: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash temporary password: %w", err)
	}

	affected, err := service.users.UpdatePassword(userID, string(passwordHash))
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", ErrUserNotFound
	}
	return temporaryPassword, nil
}
