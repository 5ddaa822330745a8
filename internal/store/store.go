// Package store implements the in-memory dataset holding users, posts and
// comments. All access goes through closure transactions so that a cascade is
// never observable half-applied: Update takes the write lock for the whole
// closure, View the read lock.
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/postwire/postwire/entities"
)

// IDFunc produces a new unique identifier. Any collision resistant generator
// will do; uniqueness is the only requirement.
type IDFunc func() string

type Option func(*Store)

// WithIDFunc overrides the identifier generator. Useful for deterministic
// ids in tests.
func WithIDFunc(fn IDFunc) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// Store owns the three entity collections. It is safe for concurrent use;
// writers are serialized by the single write lock.
type Store struct {
	mu    sync.RWMutex
	newID IDFunc

	users    table[entities.User]
	posts    table[entities.Post]
	comments table[entities.Comment]
}

func New(opts ...Option) *Store {
	ans := Store{
		newID:    uuid.NewString,
		users:    newTable[entities.User](),
		posts:    newTable[entities.Post](),
		comments: newTable[entities.Comment](),
	}

	for _, opt := range opts {
		opt(&ans)
	}

	return &ans
}

// Update runs fn under the write lock. Everything fn does is applied
// atomically with respect to View and other Update calls.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(&Tx{s: s, writable: true})
}

// View runs fn under the read lock. fn must not call any Insert/Update/Remove
// method of the transaction.
func (s *Store) View(fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(&Tx{s: s})
}

// Tx is a handle onto the collections, valid only for the duration of the
// Update or View closure it was passed to.
type Tx struct {
	s        *Store
	writable bool
}

// InsertUser adds a user, assigning a fresh id when none is set. Explicit ids
// are kept as-is so fixtures can reference each other.
func (tx *Tx) InsertUser(u entities.User) entities.User {
	if u.ID == "" {
		u.ID = tx.s.newID()
	}

	tx.s.users.insert(u.ID, u)

	return u
}

func (tx *Tx) User(id string) (entities.User, bool) {
	return tx.s.users.get(id)
}

// Users returns users matching pred in insertion order. A nil pred matches
// everything.
func (tx *Tx) Users(pred func(entities.User) bool) []entities.User {
	return tx.s.users.scan(pred)
}

func (tx *Tx) UpdateUser(id string, fn func(*entities.User)) (entities.User, bool) {
	return tx.s.users.update(id, fn)
}

func (tx *Tx) RemoveUser(id string) (entities.User, bool) {
	return tx.s.users.remove(id)
}

func (tx *Tx) InsertPost(p entities.Post) entities.Post {
	if p.ID == "" {
		p.ID = tx.s.newID()
	}

	tx.s.posts.insert(p.ID, p)

	return p
}

func (tx *Tx) Post(id string) (entities.Post, bool) {
	return tx.s.posts.get(id)
}

func (tx *Tx) Posts(pred func(entities.Post) bool) []entities.Post {
	return tx.s.posts.scan(pred)
}

func (tx *Tx) UpdatePost(id string, fn func(*entities.Post)) (entities.Post, bool) {
	return tx.s.posts.update(id, fn)
}

func (tx *Tx) RemovePost(id string) (entities.Post, bool) {
	return tx.s.posts.remove(id)
}

func (tx *Tx) InsertComment(c entities.Comment) entities.Comment {
	if c.ID == "" {
		c.ID = tx.s.newID()
	}

	tx.s.comments.insert(c.ID, c)

	return c
}

func (tx *Tx) Comment(id string) (entities.Comment, bool) {
	return tx.s.comments.get(id)
}

func (tx *Tx) Comments(pred func(entities.Comment) bool) []entities.Comment {
	return tx.s.comments.scan(pred)
}

func (tx *Tx) UpdateComment(id string, fn func(*entities.Comment)) (entities.Comment, bool) {
	return tx.s.comments.update(id, fn)
}

func (tx *Tx) RemoveComment(id string) (entities.Comment, bool) {
	return tx.s.comments.remove(id)
}

// Counts reports the number of live entities per collection.
func (tx *Tx) Counts() (users, posts, comments int) {
	return tx.s.users.len(), tx.s.posts.len(), tx.s.comments.len()
}
