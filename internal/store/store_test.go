package store_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postwire/postwire/entities"
	"github.com/postwire/postwire/internal/store"
)

func sequentialIDs() store.IDFunc {
	n := 0

	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestInsertAssignsID(t *testing.T) {
	st := store.New()

	var first, second entities.User

	err := st.Update(func(tx *store.Tx) error {
		first = tx.InsertUser(entities.User{Name: "Jacob", Email: "jacob@example.com"})
		second = tx.InsertUser(entities.User{Name: "Sarah", Email: "sarah@example.com"})

		return nil
	})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestInsertKeepsExplicitID(t *testing.T) {
	st := store.New()

	err := st.Update(func(tx *store.Tx) error {
		u := tx.InsertUser(entities.User{ID: "u1", Name: "Jacob", Email: "jacob@example.com"})
		assert.Equal(t, "u1", u.ID)

		return nil
	})
	require.NoError(t, err)
}

func TestWithIDFunc(t *testing.T) {
	st := store.New(store.WithIDFunc(sequentialIDs()))

	err := st.Update(func(tx *store.Tx) error {
		u := tx.InsertUser(entities.User{Name: "Jacob", Email: "jacob@example.com"})
		assert.Equal(t, "id-1", u.ID)

		p := tx.InsertPost(entities.Post{Title: "t", Author: u.ID})
		assert.Equal(t, "id-2", p.ID)

		return nil
	})
	require.NoError(t, err)
}

func TestScanInsertionOrder(t *testing.T) {
	st := store.New()

	names := []string{"a", "b", "c", "d"}

	err := st.Update(func(tx *store.Tx) error {
		for _, name := range names {
			tx.InsertUser(entities.User{Name: name, Email: name + "@example.com"})
		}

		return nil
	})
	require.NoError(t, err)

	err = st.View(func(tx *store.Tx) error {
		users := tx.Users(nil)
		require.Len(t, users, len(names))

		for i, u := range users {
			assert.Equal(t, names[i], u.Name)
		}

		return nil
	})
	require.NoError(t, err)
}

func TestScanOrderSurvivesRemoval(t *testing.T) {
	st := store.New(store.WithIDFunc(sequentialIDs()))

	err := st.Update(func(tx *store.Tx) error {
		for _, name := range []string{"a", "b", "c"} {
			tx.InsertUser(entities.User{Name: name, Email: name + "@example.com"})
		}

		_, ok := tx.RemoveUser("id-2")
		require.True(t, ok)

		tx.InsertUser(entities.User{Name: "d", Email: "d@example.com"})

		return nil
	})
	require.NoError(t, err)

	err = st.View(func(tx *store.Tx) error {
		users := tx.Users(nil)
		require.Len(t, users, 3)

		assert.Equal(t, "a", users[0].Name)
		assert.Equal(t, "c", users[1].Name)
		assert.Equal(t, "d", users[2].Name)

		return nil
	})
	require.NoError(t, err)
}

func TestRemoveNotFound(t *testing.T) {
	st := store.New()

	err := st.Update(func(tx *store.Tx) error {
		_, ok := tx.RemoveUser("missing")
		assert.False(t, ok)

		_, ok = tx.RemovePost("missing")
		assert.False(t, ok)

		_, ok = tx.RemoveComment("missing")
		assert.False(t, ok)

		return nil
	})
	require.NoError(t, err)
}

func TestUpdateMutatesInPlace(t *testing.T) {
	st := store.New(store.WithIDFunc(sequentialIDs()))

	err := st.Update(func(tx *store.Tx) error {
		tx.InsertPost(entities.Post{Title: "before", Author: "u1"})

		updated, ok := tx.UpdatePost("id-1", func(p *entities.Post) {
			p.Title = "after"
			p.Published = true
		})
		require.True(t, ok)
		assert.Equal(t, "after", updated.Title)
		assert.True(t, updated.Published)

		got, ok := tx.Post("id-1")
		require.True(t, ok)
		assert.Equal(t, "after", got.Title)

		return nil
	})
	require.NoError(t, err)
}

func TestUpdateNotFound(t *testing.T) {
	st := store.New()

	err := st.Update(func(tx *store.Tx) error {
		_, ok := tx.UpdateUser("missing", func(u *entities.User) {
			u.Name = "x"
		})
		assert.False(t, ok)

		return nil
	})
	require.NoError(t, err)
}

func TestCounts(t *testing.T) {
	st := store.New()

	err := st.Update(func(tx *store.Tx) error {
		u := tx.InsertUser(entities.User{Name: "a", Email: "a@example.com"})
		p := tx.InsertPost(entities.Post{Title: "t", Author: u.ID})
		tx.InsertComment(entities.Comment{Text: "c", Author: u.ID, Post: p.ID})
		tx.InsertComment(entities.Comment{Text: "c2", Author: u.ID, Post: p.ID})

		return nil
	})
	require.NoError(t, err)

	err = st.View(func(tx *store.Tx) error {
		users, posts, comments := tx.Counts()
		assert.Equal(t, 1, users)
		assert.Equal(t, 1, posts)
		assert.Equal(t, 2, comments)

		return nil
	})
	require.NoError(t, err)
}

func TestUpdateErrorPropagates(t *testing.T) {
	st := store.New()

	wantErr := fmt.Errorf("boom")

	err := st.Update(func(tx *store.Tx) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}
