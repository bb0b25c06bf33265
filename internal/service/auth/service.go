package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hraxis/hr-backend-go/internal/domain/auth"
	"github.com/hraxis/hr-backend-go/internal/domain/employee"
	"github.com/hraxis/hr-backend-go/internal/domain/user"
	"github.com/hraxis/hr-backend-go/internal/pkg/database"
	"github.com/hraxis/hr-backend-go/internal/pkg/jwt"
	"github.com/hraxis/hr-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	db           *database.DB
	userRepo     user.UserRepository
	employeeRepo employee.EmployeeRepository
	jwt          *jwt.Service
	logger       *slog.Logger
}

func NewService(
	db *database.DB,
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService *jwt.Service,
	logger *slog.Logger,
) *Service {
	return &Service{
		db:           db,
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		jwt:          jwtService,
		logger:       logger,
	}
}

// Register creates a login account, optionally linked to an employee so the
// employee can file their own leave. Accounts are created by staff; there is
// no self-signup.
func (s *Service) Register(ctx context.Context, req auth.RegisterRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, err
	}
	hashStr := string(hash)

	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		created, err = s.userRepo.Create(txCtx, user.User{
			Email:        req.Email,
			PasswordHash: &hashStr,
			IsStaff:      req.IsStaff,
		})
		if err != nil {
			return err
		}

		if req.EmployeeID != nil {
			if err := s.employeeRepo.LinkUser(txCtx, *req.EmployeeID, created.ID); err != nil {
				return err
			}
			created.EmployeeID = req.EmployeeID
		}

		return nil
	})
	if err != nil {
		return user.User{}, err
	}

	s.logger.Info("user registered",
		slog.String("user_id", created.ID),
		slog.Bool("is_staff", created.IsStaff),
	)

	return created, nil
}

func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if u.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(u.ID, u.EmployeeID, u.IsStaff)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	s.logger.Info("user logged in", slog.String("user_id", u.ID))

	return auth.TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt.Unix(),
		IsStaff:     u.IsStaff,
	}, nil
}
