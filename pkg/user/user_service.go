package user

import (
	"SmartMenza-Backend/domain"
	"SmartMenza-Backend/entities"
	"SmartMenza-Backend/internal/utils/mailing"
	"SmartMenza-Backend/pkg/jwt"
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, domain.SessionDescriptor, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, domain.SessionDescriptor, error)
		Me(ctx context.Context, userID string) (domain.MeResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, domain.SessionDescriptor, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepository.CheckEmailExists(ctx, email)
	if err != nil {
		return domain.AuthResponse{}, domain.SessionDescriptor{}, err
	}
	if exists {
		return domain.AuthResponse{}, domain.SessionDescriptor{}, domain.ErrEmailAlreadyExists
	}

	role, err := s.userRepository.GetRoleByName(ctx, req.RoleName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.SessionDescriptor{}, domain.ErrRoleNotFound
		}
		return domain.AuthResponse{}, domain.SessionDescriptor{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, domain.SessionDescriptor{}, err
	}

	user := &entities.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       role.ID,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.AuthResponse{}, domain.SessionDescriptor{}, err
	}

	go func() {
		if err := mailing.SendWelcomeMail(user.Email, user.Username); err != nil {
			log.Printf("failed to send welcome mail to %s: %v", user.Email, err)
		}
	}()

	token := s.jwtService.GenerateTokenUser(user.ID.String(), role.Name)

	return domain.AuthResponse{
			Message:  domain.MessageSuccessRegister,
			Username: user.Username,
			Email:    user.Email,
			Role:     role.Name,
		}, domain.SessionDescriptor{
			UserID:   user.ID.String(),
			Username: user.Username,
			Role:     role.Name,
			Token:    token,
		}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, domain.SessionDescriptor, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		// Unknown email and bad password produce the same error so callers
		// cannot probe which emails are registered.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.SessionDescriptor{}, domain.ErrCredentialsInvalid
		}
		return domain.AuthResponse{}, domain.SessionDescriptor{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.SessionDescriptor{}, domain.ErrCredentialsInvalid
	}

	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), roleName)

	return domain.AuthResponse{
			Message:  domain.MessageSuccessLogin,
			Username: user.Username,
			Email:    user.Email,
			Role:     roleName,
		}, domain.SessionDescriptor{
			UserID:   user.ID.String(),
			Username: user.Username,
			Role:     roleName,
			Token:    token,
		}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.MeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}

	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	}

	return domain.MeResponse{
		UserID:   user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     roleName,
	}, nil
}
