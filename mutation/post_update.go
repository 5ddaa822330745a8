package mutation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/postwire/postwire/entities"
	"github.com/postwire/postwire/internal/store"
)

// UpdatePost applies a patch to an existing post and derives at most one
// lifecycle event from the published transition:
//
//	published -> unpublished   DELETED, carrying the pre-update snapshot
//	unpublished -> published   CREATED
//	published -> published     UPDATED
//	unpublished -> unpublished nothing
//
// When the patch does not touch Published, an UPDATED event is emitted only
// if the post is currently visible to subscribers (i.e. was published).
func (s *Service) UpdatePost(ctx context.Context, id string, patch entities.PostPatch) (entities.Post, error) {
	var (
		before  entities.Post
		updated entities.Post
	)

	err := s.store.Update(func(tx *store.Tx) error {
		current, ok := tx.Post(id)
		if !ok {
			return fmt.Errorf("post %q: %w", id, entities.ErrPostNotFound)
		}

		before = current

		updated, _ = tx.UpdatePost(id, func(p *entities.Post) {
			if patch.Title != nil {
				p.Title = *patch.Title
			}

			if patch.Body != nil {
				p.Body = *patch.Body
			}

			if patch.Published != nil {
				p.Published = *patch.Published
			}
		})

		return nil
	})
	if err != nil {
		return entities.Post{}, err
	}

	s.publishPostTransition(before, updated, patch.Published != nil)

	s.logger.Debug("post updated", zap.String("id", id))

	return updated, nil
}

func (s *Service) publishPostTransition(before, after entities.Post, publishedChanged bool) {
	wasPublished := before.Published

	if !publishedChanged {
		if wasPublished {
			snapshot := after
			s.publish(entities.TopicPost, entities.Event{
				Kind: entities.EventUpdated,
				Post: &snapshot,
			})
		}

		return
	}

	switch {
	case wasPublished && !after.Published:
		// The post vanishes for subscribers; hand them the last state they
		// were allowed to see.
		snapshot := before
		s.publish(entities.TopicPost, entities.Event{
			Kind: entities.EventDeleted,
			Post: &snapshot,
		})
	case !wasPublished && after.Published:
		snapshot := after
		s.publish(entities.TopicPost, entities.Event{
			Kind: entities.EventCreated,
			Post: &snapshot,
		})
	case wasPublished && after.Published:
		snapshot := after
		s.publish(entities.TopicPost, entities.Event{
			Kind: entities.EventUpdated,
			Post: &snapshot,
		})
	}
}
