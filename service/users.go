package service

import (
	"context"
	"errors"
	"strings"

	"github.com/storelab/catalog-api/auth"
	"github.com/storelab/catalog-api/models"
)

// UserInput is the creation payload for a user. The raw password is hashed
// immediately and never stored or echoed back.
type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserView is the public shape of a user. It never carries the password hash.
type UserView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginInput is the login payload.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the login success body.
type LoginResult struct {
	Message string `json:"message"`
	Role    string `json:"role"`
}

type Users struct {
	repo *models.UsersRepository
}

func NewUsers(repo *models.UsersRepository) *Users {
	return &Users{repo: repo}
}

// Create validates the payload and inserts a new user. Any role other than
// "user" or "admin" is silently coerced to "user"; this is deliberate, not a
// validation error. The email pre-check is an early exit, the store's unique
// index decides races.
func (s *Users) Create(ctx context.Context, in UserInput) (*UserView, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("name is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, validationf("email is required")
	}
	if in.Password == "" {
		return nil, validationf("password is required")
	}

	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, models.ErrEmailTaken
	} else if !errors.Is(err, models.ErrUserNotFound) {
		return nil, err
	}

	role := in.Role
	if role != models.RoleUser && role != models.RoleAdmin {
		role = models.RoleUser
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: auth.HashPassword(in.Password),
		Role:         role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	view := viewUser(user)
	return &view, nil
}

func (s *Users) Get(ctx context.Context, id uint) (*UserView, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := viewUser(user)
	return &view, nil
}

// List returns all users newest-first.
func (s *Users) List(ctx context.Context) ([]UserView, error) {
	users, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]UserView, len(users))
	for i := range users {
		views[i] = viewUser(&users[i])
	}
	return views, nil
}

// Login checks the credentials. Unknown email and wrong password both come
// back as the same ErrInvalidCredentials so the endpoint cannot be used to
// enumerate accounts.
func (s *Users) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	user, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.VerifyPassword(in.Password, user.PasswordHash) {
		return nil, models.ErrInvalidCredentials
	}
	return &LoginResult{Message: "login ok", Role: user.Role}, nil
}

// VerifyAdmin resolves a claimed identity and requires the admin role.
// Unknown emails and non-admin users both fail with ErrAdminRequired; only a
// missing identity is reported differently, by the handler.
func (s *Users) VerifyAdmin(ctx context.Context, email string) (*UserView, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrAdminRequired
		}
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, models.ErrAdminRequired
	}
	view := viewUser(user)
	return &view, nil
}

func viewUser(u *models.User) UserView {
	return UserView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
