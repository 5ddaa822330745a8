package mutation

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/postwire/postwire/entities"
	"github.com/postwire/postwire/internal/store"
)

// CreatePostInput holds the arguments of a createPost command.
type CreatePostInput struct {
	Title     string `json:"title" validate:"required"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
	Author    string `json:"author" validate:"required"`
}

func (in *CreatePostInput) validate(s *Service) error {
	if err := s.validate.Struct(in); err != nil {
		return multierr.Append(entities.ErrInvalidInput, err)
	}

	return nil
}

// CreatePost adds a new post for an existing author. A post created with
// Published=true emits CREATED on the post topic; drafts emit nothing.
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (entities.Post, error) {
	if err := input.validate(s); err != nil {
		return entities.Post{}, err
	}

	var created entities.Post

	err := s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.User(input.Author); !ok {
			return fmt.Errorf("author %q: %w", input.Author, entities.ErrUserNotFound)
		}

		created = tx.InsertPost(entities.Post{
			Title:     input.Title,
			Body:      input.Body,
			Published: input.Published,
			Author:    input.Author,
		})

		return nil
	})
	if err != nil {
		return entities.Post{}, err
	}

	if created.Published {
		snapshot := created
		s.publish(entities.TopicPost, entities.Event{
			Kind: entities.EventCreated,
			Post: &snapshot,
		})
	}

	s.logger.Debug("post created",
		zap.String("id", created.ID),
		zap.Bool("published", created.Published),
	)

	return created, nil
}
