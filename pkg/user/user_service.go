package user

import (
	"Burger-App-Backend/domain"
	"Burger-App-Backend/entities"
	"Burger-App-Backend/internal/utils/mailing"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) error
		Verify(ctx context.Context, req domain.VerifyRequest) error
		Login(ctx context.Context, req domain.LoginRequest) (domain.UserProjection, error)
	}

	userService struct {
		userRepository UserRepository
		mailer         mailing.Mailer
	}
)

func NewUserService(userRepository UserRepository, mailer mailing.Mailer) UserService {
	return &userService{
		userRepository: userRepository,
		mailer:         mailer,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) error {
	exists, err := s.userRepository.EmailExists(ctx, req.Email)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrEmailTaken
	}

	code, err := generateVerifyCode()
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &entities.User{
		ID:         uuid.New(),
		Name:       req.FullName,
		Email:      req.Email,
		Password:   string(hash),
		Role:       domain.RoleUser,
		IsVerified: false,
		VerifyCode: code,
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		return err
	}

	logger.Info().Str("email", req.Email).Str("code", code).Msg("verification code issued")

	// Delivery failure must not surface to the caller; the account row is
	// already written and the code was logged above.
	if err := s.mailer.Send(req.Email, mailing.SubjectVerifyAccount, mailing.VerificationEmailBody(code)); err != nil {
		logger.Warn().Err(err).Str("email", req.Email).Msg("verification email delivery failed")
	}

	return nil
}

func (s *userService) Verify(ctx context.Context, req domain.VerifyRequest) error {
	affected, err := s.userRepository.VerifyByCode(ctx, req.Email, req.Code)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrInvalidCode
	}
	return nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.UserProjection, error) {
	user, err := s.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProjection{}, domain.ErrInvalidCredentials
		}
		return domain.UserProjection{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.UserProjection{}, domain.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return domain.UserProjection{}, domain.ErrUnverified
	}

	return domain.UserProjection{
		ID:   user.ID.String(),
		Name: user.Name,
		Role: user.Role,
	}, nil
}

// generateVerifyCode returns a uniform random 6-digit code in [100000, 999999].
func generateVerifyCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
