// Package storage contains a storage interface.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/wat-net/hermes/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned on unique constraint violations (duplicate
// email, duplicate follow edge).
var ErrAlreadyExists = errors.New("already exists")

// Storage provides methods for interacting with database.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error

	CreateAccount(ctx context.Context, id, email, passwordHash string) error
	DeleteAccount(ctx context.Context, id string) error
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)

	CreateProfile(ctx context.Context, p *entities.Profile) error
	GetProfile(ctx context.Context, id string) (*entities.Profile, error)
	GetProfiles(ctx context.Context, ids ...string) ([]*entities.Profile, error)
	SearchProfiles(ctx context.Context, query string, limit uint16) ([]*entities.Profile, error)

	CreatePost(ctx context.Context, p *entities.Post) error
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	ListPosts(ctx context.Context, p *ListPostsParams) ([]*entities.Post, error)

	ToggleLike(ctx context.Context, postID, userID string) (bool, error)
	GetLikes(ctx context.Context, likedBy string, postIDs ...string) (map[string]bool, error)

	CreateComment(ctx context.Context, c *entities.Comment) error
	ListComments(ctx context.Context, postID string) ([]*entities.Comment, error)

	Follow(ctx context.Context, follower, followee string) error
	Unfollow(ctx context.Context, follower, followee string) error
	IsFollowing(ctx context.Context, follower, followee string) (bool, error)

	GetOrCreateConversation(ctx context.Context, userA, userB string) (*entities.Conversation, error)
	ListConversations(ctx context.Context, userID string) ([]*entities.Conversation, error)
	GetConversation(ctx context.Context, id string) (*entities.Conversation, error)

	CreateMessage(ctx context.Context, m *entities.Message) error
	ListMessages(ctx context.Context, conversationID string) ([]*entities.Message, error)
	MarkMessagesRead(ctx context.Context, conversationID, userID string) error

	CreateNotification(ctx context.Context, n *entities.Notification) error
	ListNotifications(ctx context.Context, recipientID string) ([]*entities.Notification, error)
	UnreadNotificationsCount(ctx context.Context, recipientID string) (uint32, error)
	MarkNotificationRead(ctx context.Context, id, recipientID string) error
	MarkAllNotificationsRead(ctx context.Context, recipientID string) error

	CreateRequest(ctx context.Context, r *entities.Request) error
	ListRequests(ctx context.Context) ([]*entities.Request, error)
}

// Account is an auth record, separate from the profile so registration can
// compensate: the account row is deleted if the profile insert fails.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// ListPostsParams ...
type ListPostsParams struct {
	Limit    uint16
	Offset   uint32
	AuthorID *string
	// Query filters by case-insensitive substring match on content.
	Query *string
}
