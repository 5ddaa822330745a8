package mutation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/postwire/postwire/entities"
	"github.com/postwire/postwire/internal/store"
)

// UpdateComment applies a patch to an existing comment and always emits
// UPDATED on the comment topic of the post it belongs to.
func (s *Service) UpdateComment(ctx context.Context, id string, patch entities.CommentPatch) (entities.Comment, error) {
	var updated entities.Comment

	err := s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Comment(id); !ok {
			return fmt.Errorf("comment %q: %w", id, entities.ErrCommentNotFound)
		}

		updated, _ = tx.UpdateComment(id, func(c *entities.Comment) {
			if patch.Text != nil {
				c.Text = *patch.Text
			}
		})

		return nil
	})
	if err != nil {
		return entities.Comment{}, err
	}

	snapshot := updated
	s.publish(entities.TopicComment(updated.Post), entities.Event{
		Kind:    entities.EventUpdated,
		Comment: &snapshot,
	})

	s.logger.Debug("comment updated", zap.String("id", id))

	return updated, nil
}
