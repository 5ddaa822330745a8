package mutation

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/postwire/postwire/entities"
	"github.com/postwire/postwire/internal/store"
)

// CreateCommentInput holds the arguments of a createComment command.
type CreateCommentInput struct {
	Text   string `json:"text" validate:"required"`
	Author string `json:"author" validate:"required"`
	Post   string `json:"post" validate:"required"`
}

func (in *CreateCommentInput) validate(s *Service) error {
	if err := s.validate.Struct(in); err != nil {
		return multierr.Append(entities.ErrInvalidInput, err)
	}

	return nil
}

// CreateComment adds a comment to a post. The target post must exist and be
// published at creation time; this gate is never re-checked when the post is
// unpublished later. On success CREATED is emitted on the post's comment
// topic.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (entities.Comment, error) {
	if err := input.validate(s); err != nil {
		return entities.Comment{}, err
	}

	var created entities.Comment

	err := s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.User(input.Author); !ok {
			return fmt.Errorf("author %q: %w", input.Author, entities.ErrUserNotFound)
		}

		post, ok := tx.Post(input.Post)
		if !ok || !post.Published {
			return fmt.Errorf("post %q: %w", input.Post, entities.ErrInvalidPost)
		}

		created = tx.InsertComment(entities.Comment{
			Text:   input.Text,
			Author: input.Author,
			Post:   input.Post,
		})

		return nil
	})
	if err != nil {
		return entities.Comment{}, err
	}

	snapshot := created
	s.publish(entities.TopicComment(created.Post), entities.Event{
		Kind:    entities.EventCreated,
		Comment: &snapshot,
	})

	s.logger.Debug("comment created",
		zap.String("id", created.ID),
		zap.String("post", created.Post),
	)

	return created, nil
}
