package mutation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/postwire/postwire/entities"
	"github.com/postwire/postwire/internal/store"
)

// DeleteComment removes a comment and always emits DELETED on the comment
// topic of the post it belonged to, carrying the pre-deletion snapshot.
func (s *Service) DeleteComment(ctx context.Context, id string) (entities.Comment, error) {
	var deleted entities.Comment

	err := s.store.Update(func(tx *store.Tx) error {
		removed, ok := tx.RemoveComment(id)
		if !ok {
			return fmt.Errorf("comment %q: %w", id, entities.ErrCommentNotFound)
		}

		deleted = removed

		return nil
	})
	if err != nil {
		return entities.Comment{}, err
	}

	snapshot := deleted
	s.publish(entities.TopicComment(deleted.Post), entities.Event{
		Kind:    entities.EventDeleted,
		Comment: &snapshot,
	})

	s.logger.Debug("comment deleted", zap.String("id", id))

	return deleted, nil
}
