// Package query implements the read side of the API: listing with
// case-insensitive substring search, and the one-hop relationship lookups the
// transport layer resolves per entity. Every expansion is an equality scan
// over the relevant collection, so expanding a list costs O(n) per parent.
package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/postwire/postwire/entities"
	"github.com/postwire/postwire/internal/store"
)

// Service answers read requests straight from the store. Reads never touch
// the event bus.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// ListPosts returns all posts, or the posts whose title or body contains
// query as a case-insensitive substring. Results are in insertion order.
func (s *Service) ListPosts(ctx context.Context, query string) []entities.Post {
	var ans []entities.Post

	needle := strings.ToLower(query)

	_ = s.store.View(func(tx *store.Tx) error {
		ans = tx.Posts(func(p entities.Post) bool {
			if needle == "" {
				return true
			}

			return strings.Contains(strings.ToLower(p.Title), needle) ||
				strings.Contains(strings.ToLower(p.Body), needle)
		})

		return nil
	})

	return ans
}

// ListUsers returns all users, or the users whose name contains query as a
// case-insensitive substring.
func (s *Service) ListUsers(ctx context.Context, query string) []entities.User {
	var ans []entities.User

	needle := strings.ToLower(query)

	_ = s.store.View(func(tx *store.Tx) error {
		ans = tx.Users(func(u entities.User) bool {
			return needle == "" || strings.Contains(strings.ToLower(u.Name), needle)
		})

		return nil
	})

	return ans
}

// ListComments returns every comment, unfiltered, in insertion order.
func (s *Service) ListComments(ctx context.Context) []entities.Comment {
	var ans []entities.Comment

	_ = s.store.View(func(tx *store.Tx) error {
		ans = tx.Comments(nil)

		return nil
	})

	return ans
}

// GetUser returns one user by id.
func (s *Service) GetUser(ctx context.Context, id string) (entities.User, error) {
	var ans entities.User

	err := s.store.View(func(tx *store.Tx) error {
		u, ok := tx.User(id)
		if !ok {
			return fmt.Errorf("user %q: %w", id, entities.ErrUserNotFound)
		}

		ans = u

		return nil
	})

	return ans, err
}

// GetPost returns one post by id.
func (s *Service) GetPost(ctx context.Context, id string) (entities.Post, error) {
	var ans entities.Post

	err := s.store.View(func(tx *store.Tx) error {
		p, ok := tx.Post(id)
		if !ok {
			return fmt.Errorf("post %q: %w", id, entities.ErrPostNotFound)
		}

		ans = p

		return nil
	})

	return ans, err
}

// GetComment returns one comment by id.
func (s *Service) GetComment(ctx context.Context, id string) (entities.Comment, error) {
	var ans entities.Comment

	err := s.store.View(func(tx *store.Tx) error {
		c, ok := tx.Comment(id)
		if !ok {
			return fmt.Errorf("comment %q: %w", id, entities.ErrCommentNotFound)
		}

		ans = c

		return nil
	})

	return ans, err
}

// PostAuthor resolves a post's author.
func (s *Service) PostAuthor(ctx context.Context, post entities.Post) (entities.User, error) {
	return s.GetUser(ctx, post.Author)
}

// PostComments resolves the comments attached to a post.
func (s *Service) PostComments(ctx context.Context, post entities.Post) []entities.Comment {
	var ans []entities.Comment

	_ = s.store.View(func(tx *store.Tx) error {
		ans = tx.Comments(func(c entities.Comment) bool {
			return c.Post == post.ID
		})

		return nil
	})

	return ans
}

// UserPosts resolves the posts authored by a user.
func (s *Service) UserPosts(ctx context.Context, user entities.User) []entities.Post {
	var ans []entities.Post

	_ = s.store.View(func(tx *store.Tx) error {
		ans = tx.Posts(func(p entities.Post) bool {
			return p.Author == user.ID
		})

		return nil
	})

	return ans
}

// UserComments resolves the comments authored by a user.
func (s *Service) UserComments(ctx context.Context, user entities.User) []entities.Comment {
	var ans []entities.Comment

	_ = s.store.View(func(tx *store.Tx) error {
		ans = tx.Comments(func(c entities.Comment) bool {
			return c.Author == user.ID
		})

		return nil
	})

	return ans
}

// CommentAuthor resolves a comment's author.
func (s *Service) CommentAuthor(ctx context.Context, comment entities.Comment) (entities.User, error) {
	return s.GetUser(ctx, comment.Author)
}

// CommentPost resolves the post a comment is attached to.
func (s *Service) CommentPost(ctx context.Context, comment entities.Comment) (entities.Post, error) {
	return s.GetPost(ctx, comment.Post)
}

// Counts reports the dataset sizes.
func (s *Service) Counts(ctx context.Context) (users, posts, comments int) {
	_ = s.store.View(func(tx *store.Tx) error {
		users, posts, comments = tx.Counts()

		return nil
	})

	return users, posts, comments
}
