package service

import (
	"notekeeper/internal/auth"
	"notekeeper/internal/contract"
	"notekeeper/internal/domain/entity"
	"notekeeper/internal/utils"
	"notekeeper/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type UserRepository interface {
	FindByEmail(email string) (*entity.User, error)
	ExistsByEmail(email string) (bool, error)
	Save(user *entity.User) error
}

type UserService struct {
	UserRepo UserRepository
	Tokens   *auth.TokenService
	Validate *validator.Validate
}

func NewUserService(userRepo UserRepository, tokens *auth.TokenService, validate *validator.Validate) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Tokens:   tokens,
		Validate: validate,
	}
}

// SignUp validates the request before any store access, rejects
// duplicate emails, then stores the account with a hashed password.
// The returned record is the raw entity, bcrypt digest included.
func (u *UserService) SignUp(req *contract.SignUpRequest) (*entity.User, apierror.ErrorResponse) {
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	exists, err := u.UserRepo.ExistsByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check existing email: %v", err)
		return nil, apierror.InternalServerError
	}
	if exists {
		return nil, apierror.ExistingEmailError
	}

	digest, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		return nil, apierror.InternalServerError
	}

	now := utils.NowUTC()
	user := &entity.User{
		ID:        uuid.NewString(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  digest,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.UserRepo.Save(user); err != nil {
		log.Errorf("failed to save user: %v", err)
		return nil, apierror.InternalServerError
	}
	return user, nil
}

// Login resolves the account by email, checks the password and issues
// a fresh session token for the subject.
func (u *UserService) Login(req *contract.LoginRequest) (*entity.User, string, apierror.ErrorResponse) {
	user, err := u.UserRepo.FindByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch user by email: %v", err)
		return nil, "", apierror.InternalServerError
	}
	if user == nil {
		return nil, "", apierror.UserNotFoundError
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		return nil, "", apierror.InvalidPasswordError
	}

	token, err := u.Tokens.Issue(user.ID)
	if err != nil {
		log.Errorf("failed to issue token: %v", err)
		return nil, "", apierror.InternalServerError
	}
	return user, token, nil
}
