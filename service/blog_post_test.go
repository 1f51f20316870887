package service

import (
	"context"
	"testing"

	"github.com/devhub/devhub/auth"
	"github.com/devhub/devhub/dto"
	"github.com/devhub/devhub/errors"
)

func TestBlogPostCreateStampsAuthor(t *testing.T) {
	st := newTestStores(t)
	svc := NewBlogPostService(st.BlogPosts)
	ctx := context.Background()

	alice, aliceP := saveTestUser(t, st, "alice", []string{auth.RoleUser})

	post, err := svc.Create(ctx, aliceP, dto.BlogPostRequest{Title: "Hello", Content: "world", Tags: []string{"go"}})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.AuthorID != alice.ID {
		t.Fatalf("author must come from the principal, got %d want %d", post.AuthorID, alice.ID)
	}
	if post.ID == 0 {
		t.Fatal("expected an assigned id")
	}

	if _, err := svc.Create(ctx, nil, dto.BlogPostRequest{Title: "x", Content: "y"}); !errors.Is(err, errors.ErrAuthenticationRequired) {
		t.Fatalf("expected authentication required for anonymous create, got %v", err)
	}
}

func TestBlogPostUpdateOwnership(t *testing.T) {
	st := newTestStores(t)
	svc := NewBlogPostService(st.BlogPosts)
	ctx := context.Background()

	alice, aliceP := saveTestUser(t, st, "alice", []string{auth.RoleUser})
	_, bobP := saveTestUser(t, st, "bob", []string{auth.RoleUser})
	_, adminP := saveTestUser(t, st, "root", []string{auth.RoleAdmin})
	post := saveTestBlogPost(t, st, alice.ID)

	req := dto.BlogPostRequest{Title: "Edited", Content: "changed"}

	if _, err := svc.Update(ctx, bobP, post.ID, req); !errors.Is(err, errors.ErrForbidden) {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}
	stored, err := st.BlogPosts.FindByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("find post: %v", err)
	}
	if stored.Title != "First post" {
		t.Fatalf("rejected update must not persist, title=%q", stored.Title)
	}

	updated, err := svc.Update(ctx, aliceP, post.ID, req)
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != "Edited" || updated.AuthorID != alice.ID {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if _, err := svc.Update(ctx, adminP, post.ID, dto.BlogPostRequest{Title: "Moderated", Content: "c"}); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestBlogPostUpdateMissing(t *testing.T) {
	st := newTestStores(t)
	svc := NewBlogPostService(st.BlogPosts)
	ctx := context.Background()

	_, bobP := saveTestUser(t, st, "bob", []string{auth.RoleUser})

	// A missing post reports not found before any ownership check, for
	// authenticated and anonymous callers alike.
	if _, err := svc.Update(ctx, bobP, 999, dto.BlogPostRequest{Title: "x", Content: "y"}); !errors.Is(err, errors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.Update(ctx, nil, 999, dto.BlogPostRequest{Title: "x", Content: "y"}); !errors.Is(err, errors.ErrNotFound) {
		t.Fatalf("expected not found for anonymous, got %v", err)
	}
}

func TestBlogPostDelete(t *testing.T) {
	st := newTestStores(t)
	svc := NewBlogPostService(st.BlogPosts)
	ctx := context.Background()

	alice, aliceP := saveTestUser(t, st, "alice", []string{auth.RoleUser})
	_, bobP := saveTestUser(t, st, "bob", []string{auth.RoleUser})
	post := saveTestBlogPost(t, st, alice.ID)

	if err := svc.Delete(ctx, bobP, post.ID); !errors.Is(err, errors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if err := svc.Delete(ctx, aliceP, post.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := st.BlogPosts.FindByID(ctx, post.ID); !errors.Is(err, errors.ErrNotFound) {
		t.Fatalf("expected post to be gone, got %v", err)
	}
}

func TestBlogPostListByAuthor(t *testing.T) {
	st := newTestStores(t)
	svc := NewBlogPostService(st.BlogPosts)
	ctx := context.Background()

	alice, aliceP := saveTestUser(t, st, "alice", []string{auth.RoleUser})
	bob, _ := saveTestUser(t, st, "bob", []string{auth.RoleUser})
	saveTestBlogPost(t, st, alice.ID)
	saveTestBlogPost(t, st, alice.ID)
	saveTestBlogPost(t, st, bob.ID)

	posts, err := svc.ListByAuthor(ctx, aliceP, alice.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	all, err := svc.List(ctx, aliceP)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(all))
	}
}
