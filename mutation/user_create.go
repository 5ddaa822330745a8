package mutation

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/postwire/postwire/entities"
	"github.com/postwire/postwire/internal/store"
)

// CreateUserInput holds the arguments of a createUser command.
type CreateUserInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Age   *int   `json:"age,omitempty" validate:"omitempty,gte=0"`
}

func (in *CreateUserInput) validate(s *Service) error {
	if err := s.validate.Struct(in); err != nil {
		return multierr.Append(entities.ErrInvalidInput, err)
	}

	return nil
}

// CreateUser adds a new user. It fails with entities.ErrEmailTaken when
// another user already holds the email. No lifecycle event is emitted; the
// account lifecycle is not a subscribable topic.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (entities.User, error) {
	if err := input.validate(s); err != nil {
		return entities.User{}, err
	}

	var created entities.User

	err := s.store.Update(func(tx *store.Tx) error {
		taken := tx.Users(func(u entities.User) bool {
			return u.Email == input.Email
		})
		if len(taken) > 0 {
			return fmt.Errorf("email %q: %w", input.Email, entities.ErrEmailTaken)
		}

		created = tx.InsertUser(entities.User{
			Name:  input.Name,
			Email: input.Email,
			Age:   input.Age,
		})

		return nil
	})
	if err != nil {
		return entities.User{}, err
	}

	s.logger.Debug("user created", zap.String("id", created.ID))

	return created, nil
}
