package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/devhub/devhub/auth"
	"github.com/devhub/devhub/dto"
	"github.com/devhub/devhub/errors"
)

func TestRegisterDefaultRoles(t *testing.T) {
	st := newTestStores(t)
	svc := NewAuthService(st.Users, testHasher(), testCodec())

	user, token, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "P@ssw0rd!",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !reflect.DeepEqual([]string(user.Roles), []string{auth.RoleUser}) {
		t.Fatalf("expected default roles [USER], got %v", user.Roles)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	claims, err := testCodec().Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Subject != "alice" || claims.UserID != user.ID {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterRolesNormalized(t *testing.T) {
	st := newTestStores(t)
	svc := NewAuthService(st.Users, testHasher(), testCodec())

	user, _, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "root",
		Email:    "root@example.com",
		Password: "P@ssw0rd!",
		Roles:    []string{"role_admin", "wizard"},
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !reflect.DeepEqual([]string(user.Roles), []string{auth.RoleAdmin}) {
		t.Fatalf("expected [ADMIN], got %v", user.Roles)
	}

	// An all-invalid role list falls back to the default set.
	user, _, err = svc.Register(context.Background(), dto.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "P@ssw0rd!",
		Roles:    []string{"wizard", ""},
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !reflect.DeepEqual([]string(user.Roles), []string{auth.RoleUser}) {
		t.Fatalf("expected [USER], got %v", user.Roles)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	st := newTestStores(t)
	svc := NewAuthService(st.Users, testHasher(), testCodec())
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, dto.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "P@ssw0rd!"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, token, err := svc.Register(ctx, dto.RegisterRequest{Username: "alice", Email: "other@example.com", Password: "P@ssw0rd!"})
	if !errors.Is(err, errors.ErrDuplicateEntry) {
		t.Fatalf("expected duplicate entry for username, got %v", err)
	}
	if token != "" {
		t.Fatal("no token may be issued on a failed registration")
	}

	_, token, err = svc.Register(ctx, dto.RegisterRequest{Username: "alice2", Email: "alice@example.com", Password: "P@ssw0rd!"})
	if !errors.Is(err, errors.ErrDuplicateEntry) {
		t.Fatalf("expected duplicate entry for email, got %v", err)
	}
	if token != "" {
		t.Fatal("no token may be issued on a failed registration")
	}

	// The failed attempts must not have persisted anything.
	users, err := st.Users.List(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected exactly 1 user, got %d", len(users))
	}
}

func TestLogin(t *testing.T) {
	st := newTestStores(t)
	svc := NewAuthService(st.Users, testHasher(), testCodec())
	ctx := context.Background()
	saveTestUser(t, st, "alice", []string{auth.RoleUser})

	user, token, err := svc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "P@ssw0rd!"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Username != "alice" || token == "" {
		t.Fatalf("unexpected login result: %v %q", user.Username, token)
	}

	// Wrong password and unknown user are indistinguishable.
	_, _, badPass := svc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "wrong"})
	_, _, badUser := svc.Login(ctx, dto.LoginRequest{Username: "nobody", Password: "P@ssw0rd!"})
	for _, err := range []error{badPass, badUser} {
		if !errors.Is(err, errors.ErrAuthenticationRequired) {
			t.Fatalf("expected authentication required, got %v", err)
		}
	}
	if errors.Description(badPass) != errors.Description(badUser) {
		t.Fatalf("login failures must be indistinguishable: %q vs %q",
			errors.Description(badPass), errors.Description(badUser))
	}
}

func TestAdminLogin(t *testing.T) {
	st := newTestStores(t)
	svc := NewAuthService(st.Users, testHasher(), testCodec())
	ctx := context.Background()
	saveTestUser(t, st, "alice", []string{auth.RoleUser})
	saveTestUser(t, st, "root", []string{auth.RoleAdmin, auth.RoleUser})

	if _, _, err := svc.AdminLogin(ctx, dto.LoginRequest{Username: "alice", Password: "P@ssw0rd!"}); !errors.Is(err, errors.ErrForbidden) {
		t.Fatalf("expected forbidden for non-admin, got %v", err)
	}
	if _, _, err := svc.AdminLogin(ctx, dto.LoginRequest{Username: "root", Password: "P@ssw0rd!"}); err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
}
