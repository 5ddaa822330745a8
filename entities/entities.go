// Package entities holds the domain model shared by the store, the mutation
// engine, the query service and the transport layer.
package entities

import (
	"errors"
	"fmt"
)

var (
	ErrEmailTaken      = errors.New("email taken")
	ErrUserNotFound    = errors.New("user not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrInvalidPost     = errors.New("post is not valid")
	ErrInvalidInput    = errors.New("invalid input")
)

// User is an account holder. Age is optional and nil when unset.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   *int   `json:"age,omitempty"`
}

// Post belongs to one User via Author. The Published flag gates comment
// creation and controls whether lifecycle events are visible to subscribers.
type Post struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
	Author    string `json:"author"`
}

// Comment belongs to one User (Author) and one Post.
type Comment struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
	Post   string `json:"post"`
}

// UserPatch carries the fields of a user update. Nil fields are left
// untouched.
type UserPatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Age   *int    `json:"age,omitempty"`
}

// PostPatch carries the fields of a post update. Nil fields are left
// untouched.
type PostPatch struct {
	Title     *string `json:"title,omitempty"`
	Body      *string `json:"body,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

// CommentPatch carries the fields of a comment update.
type CommentPatch struct {
	Text *string `json:"text,omitempty"`
}

// EventKind is the lifecycle transition derived from a mutation.
type EventKind string

const (
	EventCreated EventKind = "CREATED"
	EventUpdated EventKind = "UPDATED"
	EventDeleted EventKind = "DELETED"
)

// Event is what subscribers receive. Exactly one of Post or Comment is set
// and it is a full snapshot taken at emission time.
type Event struct {
	Kind    EventKind `json:"mutation"`
	Post    *Post     `json:"post,omitempty"`
	Comment *Comment  `json:"comment,omitempty"`
}

// TopicPost carries every post lifecycle event.
const TopicPost = "post"

// TopicComment returns the topic carrying comment events scoped to one post.
func TopicComment(postID string) string {
	return fmt.Sprintf("comment:%s", postID)
}
