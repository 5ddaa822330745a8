package mutation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/postwire/postwire/entities"
	"github.com/postwire/postwire/internal/store"
)

// DeleteUser removes a user together with every entity hanging off it:
// first the comments attached to the user's posts, then the posts
// themselves, then the user's remaining comments on other posts. The full
// removal set is computed before anything is touched, so the cascade applies
// all-or-nothing, and no lifecycle events are emitted for cascaded removals.
func (s *Service) DeleteUser(ctx context.Context, id string) (entities.User, error) {
	var deleted entities.User

	err := s.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.User(id); !ok {
			return fmt.Errorf("user %q: %w", id, entities.ErrUserNotFound)
		}

		posts := tx.Posts(func(p entities.Post) bool {
			return p.Author == id
		})

		ownedPosts := make(map[string]struct{}, len(posts))
		for _, p := range posts {
			ownedPosts[p.ID] = struct{}{}
		}

		onOwnedPosts := tx.Comments(func(c entities.Comment) bool {
			_, ok := ownedPosts[c.Post]
			return ok
		})

		authored := tx.Comments(func(c entities.Comment) bool {
			if c.Author != id {
				return false
			}
			_, onOwned := ownedPosts[c.Post]
			return !onOwned
		})

		for _, c := range onOwnedPosts {
			tx.RemoveComment(c.ID)
		}

		for _, p := range posts {
			tx.RemovePost(p.ID)
		}

		for _, c := range authored {
			tx.RemoveComment(c.ID)
		}

		deleted, _ = tx.RemoveUser(id)

		return nil
	})
	if err != nil {
		return entities.User{}, err
	}

	s.logger.Debug("user deleted", zap.String("id", id))

	return deleted, nil
}
