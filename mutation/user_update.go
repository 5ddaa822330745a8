package mutation

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/postwire/postwire/entities"
	"github.com/postwire/postwire/internal/store"
)

// UpdateUser applies a patch to an existing user. Unset patch fields are left
// untouched. When the patch changes the email, uniqueness is re-checked
// against every other user before anything is applied. No lifecycle event is
// emitted.
func (s *Service) UpdateUser(ctx context.Context, id string, patch entities.UserPatch) (entities.User, error) {
	if err := s.validate.Struct(&patch); err != nil {
		return entities.User{}, multierr.Append(entities.ErrInvalidInput, err)
	}

	var updated entities.User

	err := s.store.Update(func(tx *store.Tx) error {
		current, ok := tx.User(id)
		if !ok {
			return fmt.Errorf("user %q: %w", id, entities.ErrUserNotFound)
		}

		if patch.Email != nil && *patch.Email != current.Email {
			taken := tx.Users(func(u entities.User) bool {
				return u.ID != id && u.Email == *patch.Email
			})
			if len(taken) > 0 {
				return fmt.Errorf("email %q: %w", *patch.Email, entities.ErrEmailTaken)
			}
		}

		updated, _ = tx.UpdateUser(id, func(u *entities.User) {
			if patch.Name != nil {
				u.Name = *patch.Name
			}

			if patch.Email != nil {
				u.Email = *patch.Email
			}

			if patch.Age != nil {
				u.Age = patch.Age
			}
		})

		return nil
	})
	if err != nil {
		return entities.User{}, err
	}

	s.logger.Debug("user updated", zap.String("id", id))

	return updated, nil
}
