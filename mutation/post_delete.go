package mutation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/postwire/postwire/entities"
	"github.com/postwire/postwire/internal/store"
)

// DeletePost removes a post and every comment attached to it.
//
// No event is emitted, even for published posts. This mirrors the historical
// behavior clients rely on: a post is retracted from subscribers by
// unpublishing it, not by deleting it.
// TODO: decide whether deleting a still-published post should emit DELETED on
// the post topic, and version the event contract if so.
func (s *Service) DeletePost(ctx context.Context, id string) (entities.Post, error) {
	var deleted entities.Post

	err := s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Post(id); !ok {
			return fmt.Errorf("post %q: %w", id, entities.ErrPostNotFound)
		}

		attached := tx.Comments(func(c entities.Comment) bool {
			return c.Post == id
		})

		for _, c := range attached {
			tx.RemoveComment(c.ID)
		}

		deleted, _ = tx.RemovePost(id)

		return nil
	})
	if err != nil {
		return entities.Post{}, err
	}

	s.logger.Debug("post deleted", zap.String("id", id))

	return deleted, nil
}
