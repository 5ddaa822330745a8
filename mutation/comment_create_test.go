package mutation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postwire/postwire/entities"
	"github.com/postwire/postwire/mutation"
)

func TestCreateComment(t *testing.T) {
	f := newFixture(t)

	author := f.mustCreateUser(t)
	post := f.mustCreatePost(t, author.ID, true)

	comment, err := f.svc.CreateComment(context.Background(), mutation.CreateCommentInput{
		Text:   "This is a nice comment!",
		Author: author.ID,
		Post:   post.ID,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, "This is a nice comment!", comment.Text)
	assert.Equal(t, author.ID, comment.Author)
	assert.Equal(t, post.ID, comment.Post)
}

func TestCreateCommentAuthorNotFound(t *testing.T) {
	f := newFixture(t)

	author := f.mustCreateUser(t)
	post := f.mustCreatePost(t, author.ID, true)

	_, err := f.svc.CreateComment(context.Background(), mutation.CreateCommentInput{
		Text:   "hi",
		Author: "missing",
		Post:   post.ID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrUserNotFound)

	assert.Empty(t, f.listComments(t))
}

func TestCreateCommentPostMissing(t *testing.T) {
	f := newFixture(t)

	author := f.mustCreateUser(t)

	_, err := f.svc.CreateComment(context.Background(), mutation.CreateCommentInput{
		Text:   "hi",
		Author: author.ID,
		Post:   "missing",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrInvalidPost)
}

func TestCreateCommentPostUnpublished(t *testing.T) {
	f := newFixture(t)

	author := f.mustCreateUser(t)
	draft := f.mustCreatePost(t, author.ID, false)

	_, err := f.svc.CreateComment(context.Background(), mutation.CreateCommentInput{
		Text:   "hi",
		Author: author.ID,
		Post:   draft.ID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrInvalidPost)

	assert.Empty(t, f.listComments(t))
}

func TestCreateCommentEmitsCreatedOnPostTopic(t *testing.T) {
	f := newFixture(t)

	author := f.mustCreateUser(t)
	post := f.mustCreatePost(t, author.ID, true)
	other := f.mustCreatePost(t, author.ID, true)

	sub := f.bus.Subscribe(entities.TopicComment(post.ID))
	defer sub.Unsubscribe()

	otherSub := f.bus.Subscribe(entities.TopicComment(other.ID))
	defer otherSub.Unsubscribe()

	comment := f.mustCreateComment(t, author.ID, post.ID)

	events := drain(sub)
	require.Len(t, events, 1)
	assert.Equal(t, entities.EventCreated, events[0].Kind)
	require.NotNil(t, events[0].Comment)
	assert.Equal(t, comment, *events[0].Comment)

	// Events stay scoped to their own post.
	assert.Empty(t, drain(otherSub))
}

// The published gate applies at creation time only; comments on a post that
// is unpublished later are kept.
func TestExistingCommentsSurviveUnpublish(t *testing.T) {
	f := newFixture(t)

	author := f.mustCreateUser(t)
	post := f.mustCreatePost(t, author.ID, true)
	comment := f.mustCreateComment(t, author.ID, post.ID)

	falseVal := false
	_, err := f.svc.UpdatePost(context.Background(), post.ID, entities.PostPatch{
		Published: &falseVal,
	})
	require.NoError(t, err)

	comments := f.listComments(t)
	require.Len(t, comments, 1)
	assert.Equal(t, comment.ID, comments[0].ID)
}
