package service

import (
	"context"

	"github.com/devhub/devhub/auth"
	"github.com/devhub/devhub/dto"
	"github.com/devhub/devhub/errors"
	"github.com/devhub/devhub/models"
	"github.com/devhub/devhub/store"
)

// AuthService handles registration and credential logins.
type AuthService struct {
	Users  store.UserStore
	Hasher auth.PasswordHasher
	Codec  *auth.TokenCodec
}

func NewAuthService(users store.UserStore, hasher auth.PasswordHasher, codec *auth.TokenCodec) *AuthService {
	return &AuthService{Users: users, Hasher: hasher, Codec: codec}
}

// PrincipalOf derives the request principal from a stored user record.
func PrincipalOf(u *models.User) *auth.Principal {
	return &auth.Principal{ID: u.ID, Username: u.Username, Roles: u.Roles}
}

// Register creates a user and issues a token for it. Uniqueness is checked
// before any record is written; no token is issued on failure.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, string, error) {
	if taken, err := s.Users.ExistsByUsername(ctx, req.Username); err != nil {
		return nil, "", err
	} else if taken {
		return nil, "", errors.WithMessagef(errors.ErrDuplicateEntry, "username '%s' already taken", req.Username)
	}
	if taken, err := s.Users.ExistsByEmail(ctx, req.Email); err != nil {
		return nil, "", err
	} else if taken {
		return nil, "", errors.WithMessagef(errors.ErrDuplicateEntry, "email '%s' already registered", req.Email)
	}

	roles := auth.NormalizeRoles(req.Roles)
	if len(roles) == 0 {
		roles = auth.DefaultRoles()
	}
	hash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		return nil, "", err
	}
	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Roles:        roles,
	}
	if err := s.Users.Save(ctx, user); err != nil {
		return nil, "", err
	}
	token, err := s.Codec.Issue(PrincipalOf(user))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and issues a token. Bad username and bad
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*models.User, string, error) {
	user, err := s.Users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return nil, "", errors.WithMessage(errors.ErrAuthenticationRequired, "invalid username or password")
		}
		return nil, "", err
	}
	if !s.Hasher.Matches(req.Password, user.PasswordHash) {
		return nil, "", errors.WithMessage(errors.ErrAuthenticationRequired, "invalid username or password")
	}
	token, err := s.Codec.Issue(PrincipalOf(user))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// AdminLogin is Login restricted to principals holding the admin role.
func (s *AuthService) AdminLogin(ctx context.Context, req dto.LoginRequest) (*models.User, string, error) {
	user, token, err := s.Login(ctx, req)
	if err != nil {
		return nil, "", err
	}
	if !PrincipalOf(user).HasRole(auth.RoleAdmin) {
		return nil, "", errors.WithMessage(errors.ErrForbidden, "admin access denied")
	}
	return user, token, nil
}
