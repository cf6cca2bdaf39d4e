// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"

	"github.com/wat-net/hermes/internal/entities"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrInvalidCredentials is returned on login with an unknown email or a wrong
// password. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmptyContent is returned when a comment, message, post or request is
// submitted without content.
var ErrEmptyContent = errors.New("content is empty")

// ErrNotParticipant is returned when a user touches a conversation they are
// not part of.
var ErrNotParticipant = errors.New("not a conversation participant")

// ErrSameUser is returned when a conversation is requested with oneself.
var ErrSameUser = errors.New("conversation requires two distinct users")

// Service ...
type Service interface {
	Register(ctx context.Context, form entities.RegistrationForm) (*entities.Profile, error)
	Login(ctx context.Context, email, password string) (*entities.Profile, error)

	GetProfile(ctx context.Context, id string) (*entities.Profile, error)
	SearchProfiles(ctx context.Context, query string) ([]*entities.Profile, error)

	CreatePost(ctx context.Context, p *CreatePostParams) (*entities.Post, error)
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	GetExplorePosts(ctx context.Context, limit uint16, offset uint32, requestedBy string) ([]*entities.Post, map[string]bool, error)
	GetUserPosts(ctx context.Context, userID string) ([]*entities.Post, error)
	SearchPosts(ctx context.Context, query string) ([]*entities.Post, error)

	ToggleLike(ctx context.Context, postID, userID string) (bool, error)
	CheckUserLiked(ctx context.Context, postID, userID string) (bool, error)
	AddComment(ctx context.Context, postID, userID, content string) (*entities.Comment, error)
	GetComments(ctx context.Context, postID string) ([]*entities.Comment, error)

	FollowUser(ctx context.Context, followerID, followingID string) error
	UnfollowUser(ctx context.Context, followerID, followingID string) error
	CheckIsFollowing(ctx context.Context, followerID, followingID string) (bool, error)

	GetOrCreateConversation(ctx context.Context, userID, peerID string) (*entities.Conversation, error)
	GetUserConversations(ctx context.Context, userID string) ([]*entities.Conversation, error)
	GetMessages(ctx context.Context, conversationID, userID string) ([]*entities.Message, error)
	SendMessage(ctx context.Context, conversationID, senderID, content string) (*entities.Message, error)
	MarkMessagesAsRead(ctx context.Context, conversationID, userID string) error

	GetNotifications(ctx context.Context, userID string) ([]*entities.Notification, error)
	GetUnreadNotificationCount(ctx context.Context, userID string) (uint32, error)
	MarkNotificationAsRead(ctx context.Context, id, userID string) error
	MarkAllNotificationsAsRead(ctx context.Context, userID string) error

	CreateRequest(ctx context.Context, p *CreateRequestParams) (*entities.Request, error)
	GetRequests(ctx context.Context) ([]*entities.Request, error)
}

// CreatePostParams ...
type CreatePostParams struct {
	AuthorID  string
	Content   string
	MediaType entities.MediaType
	MediaURL  string
}

// CreateRequestParams ...
type CreateRequestParams struct {
	UserID      string
	Title       string
	Description string
	BudgetRange string
}
