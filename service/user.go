package service

import (
	"context"

	"github.com/devhub/devhub/auth"
	"github.com/devhub/devhub/dto"
	"github.com/devhub/devhub/errors"
	"github.com/devhub/devhub/models"
	"github.com/devhub/devhub/store"
)

// UserService exposes user reads and self-service account operations.
// For update/delete the owner id is the target user's own id: a non-admin
// may only ever target their own account.
type UserService struct {
	Users  store.UserStore
	Hasher auth.PasswordHasher
}

func NewUserService(users store.UserStore, hasher auth.PasswordHasher) *UserService {
	return &UserService{Users: users, Hasher: hasher}
}

func (s *UserService) GetByID(ctx context.Context, p *auth.Principal, id uint64) (*models.User, error) {
	if p == nil {
		return nil, errors.ErrAuthenticationRequired
	}
	return s.Users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, p *auth.Principal) ([]models.User, error) {
	if p == nil {
		return nil, errors.ErrAuthenticationRequired
	}
	return s.Users.List(ctx)
}

func (s *UserService) Search(ctx context.Context, p *auth.Principal, fragment string) ([]models.User, error) {
	if p == nil {
		return nil, errors.ErrAuthenticationRequired
	}
	return s.Users.SearchByUsername(ctx, fragment)
}

// Update applies a self-service account update. Username/email changes are
// checked for collisions with other users; the password hash is replaced only
// when a new non-empty password is supplied.
func (s *UserService) Update(ctx context.Context, p *auth.Principal, id uint64, req dto.UserUpdateRequest) (*models.User, error) {
	user, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(p, user.ID, auth.RoleAdmin); err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != user.Username {
		if taken, err := s.Users.ExistsByUsername(ctx, *req.Username); err != nil {
			return nil, err
		} else if taken {
			return nil, errors.WithMessagef(errors.ErrDuplicateEntry, "username '%s' already taken", *req.Username)
		}
		user.Username = *req.Username
	}
	if req.Email != nil && *req.Email != user.Email {
		if taken, err := s.Users.ExistsByEmail(ctx, *req.Email); err != nil {
			return nil, err
		} else if taken {
			return nil, errors.WithMessagef(errors.ErrDuplicateEntry, "email '%s' already registered", *req.Email)
		}
		user.Email = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := s.Hasher.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.LinkedinURL != nil {
		user.LinkedinURL = *req.LinkedinURL
	}
	if req.GithubURL != nil {
		user.GithubURL = *req.GithubURL
	}
	// Role changes pass through normalization; an all-invalid list leaves
	// the stored roles untouched.
	if len(req.Roles) > 0 {
		if roles := auth.NormalizeRoles(req.Roles); len(roles) > 0 {
			user.Roles = roles
		}
	}

	if err := s.Users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, p *auth.Principal, id uint64) error {
	user, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.Authorize(p, user.ID, auth.RoleAdmin); err != nil {
		return err
	}
	return s.Users.Delete(ctx, user)
}
