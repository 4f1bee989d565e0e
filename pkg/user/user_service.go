package user

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/entities"
	"Yoriview-Backend/internal/utils/mailing"
	"Yoriview-Backend/pkg/jwt"
	"context"
	"errors"
	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"strings"
	"sync"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.UserRegisterRequest) (domain.UserRegisterResponse, error)
		Login(ctx context.Context, req domain.UserLoginRequest) (domain.UserLoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateMe(ctx context.Context, userID string, req domain.UpdateUserRequest) (domain.UserResponse, error)
		ChangePassword(ctx context.Context, userID string, req domain.ChangePasswordRequest) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		mailer         mailing.Mailer
	}
)

// NewUserService accepts a nil mailer, in which case no notifications are sent.
func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, mailer mailing.Mailer) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		mailer:         mailer,
	}
}

var (
	dummyHash     []byte
	dummyHashOnce sync.Once
)

// compareDummy burns the same bcrypt time as a real comparison so unknown
// emails cannot be told apart from wrong passwords.
func compareDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("yoriview-dummy-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

func (s *userService) Register(ctx context.Context, req domain.UserRegisterRequest) (domain.UserRegisterResponse, error) {
	email := strings.TrimSpace(req.Email)

	exists, err := s.userRepository.CheckUserByEmail(ctx, email)
	if err != nil {
		return domain.UserRegisterResponse{}, err
	}
	if exists {
		return domain.UserRegisterResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserRegisterResponse{}, domain.ErrHashPassword
	}

	user := &entities.User{
		Email:            email,
		PasswordHash:     string(hashed),
		Nickname:         strings.TrimSpace(req.Nickname),
		DefaultStyleID:   req.DefaultStyleID,
		LocationEnabled:  true,
		ReviewVisibility: false,
	}
	if err := s.userRepository.RegisterUser(ctx, user); err != nil {
		// two registrations raced past CheckUserByEmail
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserRegisterResponse{}, domain.ErrEmailAlreadyExists
		}
		return domain.UserRegisterResponse{}, err
	}

	subject, body := mailing.WelcomeMail(user.Nickname)
	s.notify(user.Email, subject, body)

	return domain.UserRegisterResponse{
		ID:       user.ID,
		Email:    user.Email,
		Nickname: user.Nickname,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.UserLoginRequest) (domain.UserLoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			compareDummy(req.Password)
			return domain.UserLoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.UserLoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return domain.UserLoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateTokenUser(user.ID, user.Email)
	if err != nil {
		return domain.UserLoginResponse{}, err
	}

	return domain.UserLoginResponse{
		Token:    token,
		Nickname: user.Nickname,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateMe(ctx context.Context, userID string, req domain.UpdateUserRequest) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}

	if nickname := strings.TrimSpace(req.Nickname); nickname != "" {
		user.Nickname = nickname
	}
	if req.DefaultStyleID != "" {
		user.DefaultStyleID = req.DefaultStyleID
	}
	if req.LocationEnabled != nil {
		user.LocationEnabled = *req.LocationEnabled
	}
	if req.ReviewVisibility != nil {
		user.ReviewVisibility = *req.ReviewVisibility
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) ChangePassword(ctx context.Context, userID string, req domain.ChangePasswordRequest) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return domain.ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.ErrHashPassword
	}
	user.PasswordHash = string(hashed)

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return err
	}

	subject, body := mailing.PasswordChangedMail(user.Nickname)
	s.notify(user.Email, subject, body)
	return nil
}

func (s *userService) getUser(ctx context.Context, userID string) (*entities.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) notify(to, subject, body string) {
	if s.mailer == nil {
		return
	}
	go func() {
		if err := s.mailer.SendMail(to, subject, body); err != nil {
			log.Warnf("failed to send %q mail to %s: %v", subject, to, err)
		}
	}()
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		Nickname:         user.Nickname,
		DefaultStyleID:   user.DefaultStyleID,
		LocationEnabled:  user.LocationEnabled,
		ReviewVisibility: user.ReviewVisibility,
		CreatedAt:        user.CreatedAt,
	}
}
