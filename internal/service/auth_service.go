package service

import (
	"errors"

	"go-commerce-ledger/internal/model"
	"go-commerce-ledger/internal/repository"
	"go-commerce-ledger/pkg/jwt"
	"go-commerce-ledger/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
)

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	ValidateToken(tokenString string) (*model.User, error)
	RegisterUser(caller Caller, req *RegisterUserRequest) (*model.User, error)
}

type LoginResponse struct {
	Token      string      `json:"token"`
	User       *model.User `json:"user"`
	Privileges []string    `json:"privileges"`
}

type RegisterUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FullName  string `json:"full_name" validate:"required"`
	AccountID string `json:"account_id" validate:"required"`
	RoleCode  string `json:"role_code" validate:"required,oneof=PLATFORM_ADMIN MERCHANT CLIENT"`
}

type authService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewAuthService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) AuthService {
	return &authService{userRepo: userRepo, roleRepo: roleRepo}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	roleCode := ""
	if user.Role != nil {
		roleCode = user.Role.Code
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.FullName, user.AccountID, roleCode, user.GetPrivilegeCodes())
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:      token,
		User:       user,
		Privileges: user.GetPrivilegeCodes(),
	}, nil
}

func (s *authService) ValidateToken(tokenString string) (*model.User, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	return user, nil
}

// RegisterUser creates an API user bound to a ledger account. Admin only;
// merchants and clients get their role's default privilege set.
func (s *authService) RegisterUser(caller Caller, req *RegisterUserRequest) (*model.User, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validator.FirstError(errs)
	}

	role, err := s.roleRepo.FindByCode(req.RoleCode)
	if err != nil {
		return nil, ErrNotFound
	}

	user := &model.User{
		Email:      req.Email,
		FullName:   req.FullName,
		AccountID:  req.AccountID,
		RoleID:     &role.ID,
		IsActive:   true,
		Privileges: role.Privileges,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
