package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/buntdb"

	"github.com/devhub/devhub/errors"
	"github.com/devhub/devhub/models"
)

// NewMemoryStore returns buntdb-backed in-memory stores. Used when no
// database DSN is configured and by tests; the backing store handles its own
// concurrency control, matching the SQL posture.
func NewMemoryStore() (*Stores, error) {
	db, err := buntdb.Open(":memory:")
	if err != nil {
		return nil, err
	}
	b := &memoryBackend{db: db, seq: make(map[string]uint64)}
	return &Stores{
		Users:     &memoryUserStore{b},
		BlogPosts: &memoryBlogPostStore{b},
		Projects:  &memoryProjectStore{b},
		Comments:  &memoryCommentStore{b},
	}, nil
}

type memoryBackend struct {
	db  *buntdb.DB
	mu  sync.Mutex
	seq map[string]uint64
}

func memKey(kind string, id uint64) string { return fmt.Sprintf("%s:%020d", kind, id) }

func (b *memoryBackend) nextID(kind string) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq[kind]++
	return b.seq[kind]
}

func (b *memoryBackend) put(kind string, id uint64, v interface{}) error {
	jv, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(memKey(kind, id), string(jv), nil)
		return err
	})
}

func (b *memoryBackend) get(kind string, id uint64, out interface{}) error {
	err := b.db.View(func(tx *buntdb.Tx) error {
		jv, err := tx.Get(memKey(kind, id))
		if err != nil {
			return err
		}
		return json.Unmarshal([]byte(jv), out)
	})
	if err == buntdb.ErrNotFound {
		return errors.ErrNotFound
	}
	return err
}

func (b *memoryBackend) remove(kind string, id uint64) error {
	return b.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(memKey(kind, id))
		if err == buntdb.ErrNotFound {
			return nil
		}
		return err
	})
}

// each visits every record of a kind in id order.
func (b *memoryBackend) each(kind string, fn func(jv string) error) error {
	return b.db.View(func(tx *buntdb.Tx) error {
		var inner error
		err := tx.AscendKeys(kind+":*", func(_, jv string) bool {
			inner = fn(jv)
			return inner == nil
		})
		if err != nil {
			return err
		}
		return inner
	})
}

const (
	kindUser     = "user"
	kindBlogPost = "blogpost"
	kindProject  = "project"
	kindComment  = "comment"
)

type memoryUserStore struct{ b *memoryBackend }

func (s *memoryUserStore) FindByID(ctx context.Context, id uint64) (*models.User, error) {
	var u models.User
	if err := s.b.get(kindUser, id, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *memoryUserStore) findWhere(match func(*models.User) bool) (*models.User, error) {
	var found *models.User
	err := s.b.each(kindUser, func(jv string) error {
		var u models.User
		if err := json.Unmarshal([]byte(jv), &u); err != nil {
			return err
		}
		if found == nil && match(&u) {
			found = &u
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.ErrNotFound
	}
	return found, nil
}

func (s *memoryUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findWhere(func(u *models.User) bool { return u.Username == username })
}

func (s *memoryUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findWhere(func(u *models.User) bool { return u.Email == email })
}

func (s *memoryUserStore) List(ctx context.Context) ([]models.User, error) {
	return s.listWhere(func(*models.User) bool { return true })
}

func (s *memoryUserStore) SearchByUsername(ctx context.Context, fragment string) ([]models.User, error) {
	needle := strings.ToLower(fragment)
	return s.listWhere(func(u *models.User) bool {
		return strings.Contains(strings.ToLower(u.Username), needle)
	})
}

func (s *memoryUserStore) listWhere(match func(*models.User) bool) ([]models.User, error) {
	users := []models.User{}
	err := s.b.each(kindUser, func(jv string) error {
		var u models.User
		if err := json.Unmarshal([]byte(jv), &u); err != nil {
			return err
		}
		if match(&u) {
			users = append(users, u)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *memoryUserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := s.FindByUsername(ctx, username)
	if errors.Is(err, errors.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (s *memoryUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.FindByEmail(ctx, email)
	if errors.Is(err, errors.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (s *memoryUserStore) Save(ctx context.Context, u *models.User) error {
	now := time.Now()
	if u.ID == 0 {
		u.ID = s.b.nextID(kindUser)
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return s.b.put(kindUser, u.ID, u)
}

func (s *memoryUserStore) Delete(ctx context.Context, u *models.User) error {
	return s.b.remove(kindUser, u.ID)
}

type memoryBlogPostStore struct{ b *memoryBackend }

func (s *memoryBlogPostStore) FindByID(ctx context.Context, id uint64) (*models.BlogPost, error) {
	var p models.BlogPost
	if err := s.b.get(kindBlogPost, id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *memoryBlogPostStore) List(ctx context.Context) ([]models.BlogPost, error) {
	return s.listWhere(func(*models.BlogPost) bool { return true })
}

func (s *memoryBlogPostStore) ListByAuthor(ctx context.Context, authorID uint64) ([]models.BlogPost, error) {
	return s.listWhere(func(p *models.BlogPost) bool { return p.AuthorID == authorID })
}

func (s *memoryBlogPostStore) listWhere(match func(*models.BlogPost) bool) ([]models.BlogPost, error) {
	posts := []models.BlogPost{}
	err := s.b.each(kindBlogPost, func(jv string) error {
		var p models.BlogPost
		if err := json.Unmarshal([]byte(jv), &p); err != nil {
			return err
		}
		if match(&p) {
			posts = append(posts, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *memoryBlogPostStore) Save(ctx context.Context, p *models.BlogPost) error {
	now := time.Now()
	if p.ID == 0 {
		p.ID = s.b.nextID(kindBlogPost)
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return s.b.put(kindBlogPost, p.ID, p)
}

func (s *memoryBlogPostStore) Delete(ctx context.Context, p *models.BlogPost) error {
	return s.b.remove(kindBlogPost, p.ID)
}

type memoryProjectStore struct{ b *memoryBackend }

func (s *memoryProjectStore) FindByID(ctx context.Context, id uint64) (*models.Project, error) {
	var p models.Project
	if err := s.b.get(kindProject, id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *memoryProjectStore) List(ctx context.Context) ([]models.Project, error) {
	return s.listWhere(func(*models.Project) bool { return true })
}

func (s *memoryProjectStore) ListByCreator(ctx context.Context, creatorID uint64) ([]models.Project, error) {
	return s.listWhere(func(p *models.Project) bool { return p.CreatedByID == creatorID })
}

func (s *memoryProjectStore) listWhere(match func(*models.Project) bool) ([]models.Project, error) {
	projects := []models.Project{}
	err := s.b.each(kindProject, func(jv string) error {
		var p models.Project
		if err := json.Unmarshal([]byte(jv), &p); err != nil {
			return err
		}
		if match(&p) {
			projects = append(projects, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *memoryProjectStore) Save(ctx context.Context, p *models.Project) error {
	now := time.Now()
	if p.ID == 0 {
		p.ID = s.b.nextID(kindProject)
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return s.b.put(kindProject, p.ID, p)
}

func (s *memoryProjectStore) Delete(ctx context.Context, p *models.Project) error {
	return s.b.remove(kindProject, p.ID)
}

type memoryCommentStore struct{ b *memoryBackend }

func (s *memoryCommentStore) FindByID(ctx context.Context, id uint64) (*models.Comment, error) {
	var c models.Comment
	if err := s.b.get(kindComment, id, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *memoryCommentStore) List(ctx context.Context) ([]models.Comment, error) {
	return s.listWhere(func(*models.Comment) bool { return true })
}

func (s *memoryCommentStore) ListByUser(ctx context.Context, userID uint64) ([]models.Comment, error) {
	return s.listWhere(func(c *models.Comment) bool { return c.UserID == userID })
}

func (s *memoryCommentStore) ListByBlogPost(ctx context.Context, blogPostID uint64) ([]models.Comment, error) {
	return s.listWhere(func(c *models.Comment) bool {
		return c.BlogPostID != nil && *c.BlogPostID == blogPostID
	})
}

func (s *memoryCommentStore) ListByProject(ctx context.Context, projectID uint64) ([]models.Comment, error) {
	return s.listWhere(func(c *models.Comment) bool {
		return c.ProjectID != nil && *c.ProjectID == projectID
	})
}

func (s *memoryCommentStore) listWhere(match func(*models.Comment) bool) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := s.b.each(kindComment, func(jv string) error {
		var c models.Comment
		if err := json.Unmarshal([]byte(jv), &c); err != nil {
			return err
		}
		if match(&c) {
			comments = append(comments, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *memoryCommentStore) Save(ctx context.Context, c *models.Comment) error {
	if c.ID == 0 {
		c.ID = s.b.nextID(kindComment)
	}
	return s.b.put(kindComment, c.ID, c)
}

func (s *memoryCommentStore) Delete(ctx context.Context, c *models.Comment) error {
	return s.b.remove(kindComment, c.ID)
}
