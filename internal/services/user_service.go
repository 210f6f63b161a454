package services

import (
	"errors"
	"fmt"

	"furniture_store/internal/models"
	"furniture_store/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	Register(user *models.User, password string) error
	Authenticate(email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	UpdateProfile(id uint, username, phoneNumber, address string) (*models.User, error)
	SetRole(id uint, role models.UserRole) (*models.User, error)
	SetActive(id uint, active bool) (*models.User, error)
	DeleteUser(id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(user *models.User, password string) error {
	existing, err := s.userRepo.GetByEmail(user.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hashed)
	if user.Role == "" {
		user.Role = string(models.RoleCustomer)
	}
	user.IsActive = true

	return s.userRepo.Create(user)
}

func (s *userService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err, ErrUserNotFound)
	}
	return user, nil
}

func (s *userService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *userService) UpdateProfile(id uint, username, phoneNumber, address string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err, ErrUserNotFound)
	}

	if username != "" {
		user.Username = username
	}
	user.PhoneNumber = phoneNumber
	user.Address = address

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) SetRole(id uint, role models.UserRole) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err, ErrUserNotFound)
	}

	user.Role = string(role)
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) SetActive(id uint, active bool) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err, ErrUserNotFound)
	}

	user.IsActive = active
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(id uint) error {
	if _, err := s.userRepo.GetByID(id); err != nil {
		return asNotFound(err, ErrUserNotFound)
	}
	return s.userRepo.Delete(id)
}
