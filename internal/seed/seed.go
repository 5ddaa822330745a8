// Package seed loads the embedded demo fixture into a store. Fixtures carry
// explicit ids so they can reference each other; they are written straight
// into the store, bypassing the mutation engine's gates, the same way a
// restored snapshot would be.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/postwire/postwire/entities"
	"github.com/postwire/postwire/internal/store"
)

//go:embed fixtures.json
var fixtures []byte

type fixture struct {
	Users    []entities.User    `json:"users"`
	Posts    []entities.Post    `json:"posts"`
	Comments []entities.Comment `json:"comments"`
}

// Load inserts the demo dataset into st.
func Load(st *store.Store) error {
	var fx fixture

	if err := json.Unmarshal(fixtures, &fx); err != nil {
		return fmt.Errorf("parse fixtures: %w", err)
	}

	return st.Update(func(tx *store.Tx) error {
		for _, u := range fx.Users {
			tx.InsertUser(u)
		}

		for _, p := range fx.Posts {
			tx.InsertPost(p)
		}

		for _, c := range fx.Comments {
			tx.InsertComment(c)
		}

		return nil
	})
}
