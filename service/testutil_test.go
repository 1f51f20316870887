package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/devhub/devhub/auth"
	"github.com/devhub/devhub/models"
	"github.com/devhub/devhub/store"
)

func newTestStores(t *testing.T) *store.Stores {
	t.Helper()
	st, err := store.NewMemoryStore()
	if err != nil {
		t.Fatalf("memory store: %v", err)
	}
	return st
}

func testHasher() auth.PasswordHasher {
	return &auth.BcryptHasher{Cost: bcrypt.MinCost}
}

func testCodec() *auth.TokenCodec {
	return auth.NewTokenCodec([]byte("test-signing-key"), time.Hour)
}

// saveTestUser writes a user fixture directly to the store and returns it with
// its principal.
func saveTestUser(t *testing.T, st *store.Stores, username string, roles []string) (*models.User, *auth.Principal) {
	t.Helper()
	hash, err := testHasher().Hash("P@ssw0rd!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Roles:        roles,
	}
	if err := st.Users.Save(context.Background(), u); err != nil {
		t.Fatalf("save user %s: %v", username, err)
	}
	return u, PrincipalOf(u)
}

func saveTestBlogPost(t *testing.T, st *store.Stores, authorID uint64) *models.BlogPost {
	t.Helper()
	p := &models.BlogPost{Title: "First post", Content: "Hello", AuthorID: authorID}
	if err := st.BlogPosts.Save(context.Background(), p); err != nil {
		t.Fatalf("save blog post: %v", err)
	}
	return p
}

func saveTestProject(t *testing.T, st *store.Stores, creatorID uint64) *models.Project {
	t.Helper()
	p := &models.Project{Title: "devhub", Description: "platform", TechStack: "Go", CreatedByID: creatorID}
	if err := st.Projects.Save(context.Background(), p); err != nil {
		t.Fatalf("save project: %v", err)
	}
	return p
}
