// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/wat-net/hermes/internal/entities"
	"github.com/wat-net/hermes/internal/service"
	"github.com/wat-net/hermes/internal/storage"
)

var log = logrus.WithField("layer", "service")

const searchLimit = 20

type srv struct {
	s storage.Storage
}

// New creates new instance of service.
func New(s storage.Storage) service.Service {
	return srv{
		s: s,
	}
}

// Register creates the account row first and the profile second. If the
// profile insert fails the account row is deleted so a retry with the same
// email succeeds.
func (s srv) Register(ctx context.Context, form entities.RegistrationForm) (*entities.Profile, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id := uuid.New().String()

	if err := s.s.CreateAccount(ctx, id, form.Email, string(hash)); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	p := form.Profile()
	p.ID = id

	if err := s.s.CreateProfile(ctx, &p); err != nil {
		if err := s.s.DeleteAccount(ctx, id); err != nil {
			log.WithError(err).WithField("account", id).Error("failed to compensate account creation")
		}

		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return s.s.GetProfile(ctx, id)
}

func (s srv) Login(ctx context.Context, email, password string) (*entities.Profile, error) {
	a, err := s.s.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrInvalidCredentials
		}

		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, service.ErrInvalidCredentials
	}

	p, err := s.s.GetProfile(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

func (s srv) GetProfile(ctx context.Context, id string) (*entities.Profile, error) {
	p, err := s.s.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

func (s srv) SearchProfiles(ctx context.Context, query string) ([]*entities.Profile, error) {
	pp, err := s.s.SearchProfiles(ctx, query, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}

	return pp, nil
}

func (s srv) CreatePost(ctx context.Context, params *service.CreatePostParams) (*entities.Post, error) {
	content := strings.TrimSpace(params.Content)
	if content == "" && params.MediaURL == "" {
		return nil, service.ErrEmptyContent
	}

	mediaType := params.MediaType
	if mediaType == "" {
		mediaType = entities.TextMediaType
	}

	p := entities.Post{
		ID:        uuid.New().String(),
		AuthorID:  params.AuthorID,
		Content:   content,
		MediaType: mediaType,
		MediaURL:  params.MediaURL,
	}

	if err := s.s.CreatePost(ctx, &p); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return s.s.GetPost(ctx, p.ID)
}

func (s srv) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	p, err := s.s.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return p, nil
}

func (s srv) GetExplorePosts(ctx context.Context, limit uint16, offset uint32, requestedBy string) ([]*entities.Post, map[string]bool, error) {
	pp, err := s.s.ListPosts(ctx, &storage.ListPostsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list posts: %w", err)
	}

	if requestedBy == "" {
		return pp, nil, nil
	}

	ids := make([]string, len(pp))
	for i, v := range pp {
		ids[i] = v.ID
	}

	liked, err := s.s.GetLikes(ctx, requestedBy, ids...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get likes: %w", err)
	}

	return pp, liked, nil
}

func (s srv) GetUserPosts(ctx context.Context, userID string) ([]*entities.Post, error) {
	pp, err := s.s.ListPosts(ctx, &storage.ListPostsParams{
		Limit:    searchLimit,
		AuthorID: &userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return pp, nil
}

func (s srv) SearchPosts(ctx context.Context, query string) ([]*entities.Post, error) {
	pp, err := s.s.ListPosts(ctx, &storage.ListPostsParams{
		Limit: searchLimit,
		Query: &query,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	return pp, nil
}

// ToggleLike flips the like and, when the flip direction is "liked", fans a
// notification out to the post's author. Unlike produces no notification.
func (s srv) ToggleLike(ctx context.Context, postID, userID string) (bool, error) {
	var liked bool

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		var err error
		if liked, err = tx.ToggleLike(ctx, postID, userID); err != nil {
			return err
		}

		if !liked {
			return nil
		}

		p, err := tx.GetPost(ctx, postID)
		if err != nil {
			return err
		}

		if p.AuthorID == userID {
			return nil
		}

		actor, err := tx.GetProfile(ctx, userID)
		if err != nil {
			return err
		}

		return tx.CreateNotification(ctx, &entities.Notification{
			ID:          uuid.New().String(),
			RecipientID: p.AuthorID,
			Type:        entities.LikeNotification,
			ActorID:     userID,
			RelatedID:   postID,
			Content:     fmt.Sprintf("%s liked your post", actor.DisplayName()),
		})
	}); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, err
		}

		return false, fmt.Errorf("failed to toggle like: %w", err)
	}

	return liked, nil
}

func (s srv) CheckUserLiked(ctx context.Context, postID, userID string) (bool, error) {
	liked, err := s.s.GetLikes(ctx, userID, postID)
	if err != nil {
		return false, fmt.Errorf("failed to get likes: %w", err)
	}

	return liked[postID], nil
}

func (s srv) AddComment(ctx context.Context, postID, userID, content string) (*entities.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, service.ErrEmptyContent
	}

	c := entities.Comment{
		ID:       uuid.New().String(),
		PostID:   postID,
		AuthorID: userID,
		Content:  content,
	}

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		p, err := tx.GetPost(ctx, postID)
		if err != nil {
			return err
		}

		if err := tx.CreateComment(ctx, &c); err != nil {
			return err
		}

		actor, err := tx.GetProfile(ctx, userID)
		if err != nil {
			return err
		}

		c.Author = entities.ProfileSummary{
			ID:          actor.ID,
			FullName:    actor.FullName,
			CompanyName: actor.CompanyName,
			Role:        actor.Role,
			AvatarURL:   actor.AvatarURL,
		}

		if p.AuthorID == userID {
			return nil
		}

		return tx.CreateNotification(ctx, &entities.Notification{
			ID:          uuid.New().String(),
			RecipientID: p.AuthorID,
			Type:        entities.CommentNotification,
			ActorID:     userID,
			RelatedID:   postID,
			Content:     fmt.Sprintf("%s commented on your post", actor.DisplayName()),
		})
	}); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	return &c, nil
}

func (s srv) GetComments(ctx context.Context, postID string) ([]*entities.Comment, error) {
	cc, err := s.s.ListComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return cc, nil
}

func (s srv) FollowUser(ctx context.Context, followerID, followingID string) error {
	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if err := tx.Follow(ctx, followerID, followingID); err != nil {
			return err
		}

		actor, err := tx.GetProfile(ctx, followerID)
		if err != nil {
			return err
		}

		return tx.CreateNotification(ctx, &entities.Notification{
			ID:          uuid.New().String(),
			RecipientID: followingID,
			Type:        entities.FollowNotification,
			ActorID:     followerID,
			RelatedID:   followerID,
			Content:     fmt.Sprintf("%s started following you", actor.DisplayName()),
		})
	}); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) || errors.Is(err, storage.ErrNotFound) {
			return err
		}

		return fmt.Errorf("failed to follow: %w", err)
	}

	return nil
}

func (s srv) UnfollowUser(ctx context.Context, followerID, followingID string) error {
	if err := s.s.Unfollow(ctx, followerID, followingID); err != nil {
		return fmt.Errorf("failed to unfollow: %w", err)
	}

	return nil
}

func (s srv) CheckIsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	following, err := s.s.IsFollowing(ctx, followerID, followingID)
	if err != nil {
		return false, fmt.Errorf("failed to check following: %w", err)
	}

	return following, nil
}

func (s srv) GetOrCreateConversation(ctx context.Context, userID, peerID string) (*entities.Conversation, error) {
	if userID == peerID {
		return nil, service.ErrSameUser
	}

	a, b := entities.CanonicalPair(userID, peerID)

	c, err := s.s.GetOrCreateConversation(ctx, a, b)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get or create conversation: %w", err)
	}

	return c, nil
}

func (s srv) GetUserConversations(ctx context.Context, userID string) ([]*entities.Conversation, error) {
	cc, err := s.s.ListConversations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	return cc, nil
}

func (s srv) GetMessages(ctx context.Context, conversationID, userID string) ([]*entities.Message, error) {
	if err := s.checkParticipant(ctx, conversationID, userID); err != nil {
		return nil, err
	}

	mm, err := s.s.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return mm, nil
}

func (s srv) SendMessage(ctx context.Context, conversationID, senderID, content string) (*entities.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, service.ErrEmptyContent
	}

	c, err := s.s.GetConversation(ctx, conversationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	if c.UserA != senderID && c.UserB != senderID {
		return nil, service.ErrNotParticipant
	}

	recipient := c.UserA
	if recipient == senderID {
		recipient = c.UserB
	}

	m := entities.Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
	}

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if err := tx.CreateMessage(ctx, &m); err != nil {
			return err
		}

		actor, err := tx.GetProfile(ctx, senderID)
		if err != nil {
			return err
		}

		return tx.CreateNotification(ctx, &entities.Notification{
			ID:          uuid.New().String(),
			RecipientID: recipient,
			Type:        entities.MessageNotification,
			ActorID:     senderID,
			RelatedID:   conversationID,
			Content:     fmt.Sprintf("%s sent you a message", actor.DisplayName()),
		})
	}); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	return &m, nil
}

func (s srv) MarkMessagesAsRead(ctx context.Context, conversationID, userID string) error {
	if err := s.checkParticipant(ctx, conversationID, userID); err != nil {
		return err
	}

	if err := s.s.MarkMessagesRead(ctx, conversationID, userID); err != nil {
		return fmt.Errorf("failed to mark messages read: %w", err)
	}

	return nil
}

func (s srv) checkParticipant(ctx context.Context, conversationID, userID string) error {
	c, err := s.s.GetConversation(ctx, conversationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return err
		}

		return fmt.Errorf("failed to get conversation: %w", err)
	}

	if c.UserA != userID && c.UserB != userID {
		return service.ErrNotParticipant
	}

	return nil
}

func (s srv) GetNotifications(ctx context.Context, userID string) ([]*entities.Notification, error) {
	nn, err := s.s.ListNotifications(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return nn, nil
}

func (s srv) GetUnreadNotificationCount(ctx context.Context, userID string) (uint32, error) {
	count, err := s.s.UnreadNotificationsCount(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	return count, nil
}

func (s srv) MarkNotificationAsRead(ctx context.Context, id, userID string) error {
	if err := s.s.MarkNotificationRead(ctx, id, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return err
		}

		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

func (s srv) MarkAllNotificationsAsRead(ctx context.Context, userID string) error {
	if err := s.s.MarkAllNotificationsRead(ctx, userID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}

func (s srv) CreateRequest(ctx context.Context, params *service.CreateRequestParams) (*entities.Request, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, service.ErrEmptyContent
	}

	r := entities.Request{
		ID:          uuid.New().String(),
		UserID:      params.UserID,
		Title:       title,
		Description: strings.TrimSpace(params.Description),
		BudgetRange: params.BudgetRange,
		Status:      "open",
	}

	if err := s.s.CreateRequest(ctx, &r); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return &r, nil
}

func (s srv) GetRequests(ctx context.Context) ([]*entities.Request, error) {
	rr, err := s.s.ListRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	return rr, nil
}
