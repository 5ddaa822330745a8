package mutation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/postwire/postwire/entities"
	"github.com/postwire/postwire/internal/store"
	"github.com/postwire/postwire/internal/testutils"
	"github.com/postwire/postwire/mutation"
	"github.com/postwire/postwire/pubsub"
)

type fixture struct {
	svc   *mutation.Service
	store *store.Store
	bus   *pubsub.Bus
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st := store.New()
	bus := pubsub.New(zap.NewNop())

	return &fixture{
		svc:   mutation.NewService(st, bus, zap.NewNop()),
		store: st,
		bus:   bus,
	}
}

func (f *fixture) mustCreateUser(t *testing.T) entities.User {
	t.Helper()

	user, err := f.svc.CreateUser(context.Background(), mutation.CreateUserInput{
		Name:  testutils.RandomString(8),
		Email: testutils.RandomEmail(),
	})
	require.NoError(t, err)

	return user
}

func (f *fixture) mustCreatePost(t *testing.T, author string, published bool) entities.Post {
	t.Helper()

	post, err := f.svc.CreatePost(context.Background(), mutation.CreatePostInput{
		Title:     testutils.RandomString(12),
		Body:      testutils.RandomString(32),
		Published: published,
		Author:    author,
	})
	require.NoError(t, err)

	return post
}

func (f *fixture) mustCreateComment(t *testing.T, author, post string) entities.Comment {
	t.Helper()

	comment, err := f.svc.CreateComment(context.Background(), mutation.CreateCommentInput{
		Text:   testutils.RandomString(16),
		Author: author,
		Post:   post,
	})
	require.NoError(t, err)

	return comment
}

// drain collects every event currently buffered on sub.
func drain(sub *pubsub.Subscription) []entities.Event {
	var ans []entities.Event

	for {
		select {
		case ev := <-sub.C():
			ans = append(ans, ev)
		default:
			return ans
		}
	}
}

func (f *fixture) listUsers(t *testing.T) []entities.User {
	t.Helper()

	var users []entities.User

	require.NoError(t, f.store.View(func(tx *store.Tx) error {
		users = tx.Users(nil)
		return nil
	}))

	return users
}

func (f *fixture) listPosts(t *testing.T) []entities.Post {
	t.Helper()

	var posts []entities.Post

	require.NoError(t, f.store.View(func(tx *store.Tx) error {
		posts = tx.Posts(nil)
		return nil
	}))

	return posts
}

func (f *fixture) listComments(t *testing.T) []entities.Comment {
	t.Helper()

	var comments []entities.Comment

	require.NoError(t, f.store.View(func(tx *store.Tx) error {
		comments = tx.Comments(nil)
		return nil
	}))

	return comments
}

func (f *fixture) userCount(t *testing.T) int {
	t.Helper()

	var users int

	require.NoError(t, f.store.View(func(tx *store.Tx) error {
		users, _, _ = tx.Counts()
		return nil
	}))

	return users
}
