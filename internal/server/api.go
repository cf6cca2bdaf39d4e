package server

import (
	"github.com/wat-net/hermes/internal/entities"
)

const maxLimit = 100
const defaultLimit = 20

// RegisterRequest ...
// swagger:model
type RegisterRequest = entities.RegistrationForm

// LoginRequest ...
// swagger:model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse ...
// swagger:model
type AuthResponse struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

// Profile ...
type Profile struct {
	ID                string `json:"id"`
	Role              string `json:"role"`
	FullName          string `json:"fullName,omitempty"`
	CompanyName       string `json:"companyName,omitempty"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	Address           string `json:"address,omitempty"`
	IndustryCategory  string `json:"industryCategory,omitempty"`
	Subcategory       string `json:"subcategory,omitempty"`
	Specialization    string `json:"specialization,omitempty"`
	InterestCategory  string `json:"interestCategory,omitempty"`
	SpecificInterests string `json:"specificInterests,omitempty"`
	AvatarURL         string `json:"avatarUrl,omitempty"`
	FollowersCount    uint32 `json:"followersCount"`
	FollowingCount    uint32 `json:"followingCount"`
	CreatedAt         uint64 `json:"createdAt"`
}

// ProfileSummary ...
type ProfileSummary struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Role        string `json:"role"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

// Post ...
type Post struct {
	ID            string         `json:"id"`
	Content       string         `json:"content,omitempty"`
	MediaType     string         `json:"mediaType"`
	MediaURL      string         `json:"mediaUrl,omitempty"`
	LikesCount    uint32         `json:"likesCount"`
	CommentsCount uint32         `json:"commentsCount"`
	CreatedAt     uint64         `json:"createdAt"`
	Author        ProfileSummary `json:"author"`
	UserLiked     *bool          `json:"userLiked,omitempty"`
}

// CreatePostRequest ...
// swagger:model
type CreatePostRequest struct {
	Content   string `json:"content"`
	MediaType string `json:"mediaType"`
	MediaURL  string `json:"mediaUrl"`
}

// Comment ...
type Comment struct {
	ID        string         `json:"id"`
	PostID    string         `json:"postId"`
	Content   string         `json:"content"`
	CreatedAt uint64         `json:"createdAt"`
	Author    ProfileSummary `json:"author"`
}

// CommentRequest ...
// swagger:model
type CommentRequest struct {
	Content string `json:"content"`
}

// LikedResponse ...
// swagger:model
type LikedResponse struct {
	Liked bool `json:"liked"`
}

// FollowingResponse ...
// swagger:model
type FollowingResponse struct {
	Following bool `json:"following"`
}

// ConversationRequest ...
// swagger:model
type ConversationRequest struct {
	PeerID string `json:"peerId"`
}

// Conversation ...
type Conversation struct {
	ID            string            `json:"id"`
	Participants  [2]ProfileSummary `json:"participants"`
	LastMessageAt uint64            `json:"lastMessageAt"`
	UnreadCount   uint32            `json:"unreadCount"`
}

// Message ...
type Message struct {
	ID             string         `json:"id"`
	ConversationID string         `json:"conversationId"`
	SenderID       string         `json:"senderId"`
	Content        string         `json:"content"`
	Read           bool           `json:"read"`
	CreatedAt      uint64         `json:"createdAt"`
	Sender         ProfileSummary `json:"sender"`
}

// MessageRequest ...
// swagger:model
type MessageRequest struct {
	Content string `json:"content"`
}

// Notification ...
type Notification struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	RelatedID string         `json:"relatedId,omitempty"`
	Content   string         `json:"content"`
	Read      bool           `json:"read"`
	CreatedAt uint64         `json:"createdAt"`
	Actor     ProfileSummary `json:"actor"`
}

// CountResponse ...
// swagger:model
type CountResponse struct {
	Count uint32 `json:"count"`
}

// Request ...
type Request struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	BudgetRange string         `json:"budgetRange,omitempty"`
	Status      string         `json:"status"`
	CreatedAt   uint64         `json:"createdAt"`
	Author      ProfileSummary `json:"author"`
}

// CreateRequestRequest ...
// swagger:model
type CreateRequestRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	BudgetRange string `json:"budgetRange"`
}

// UploadResponse ...
// swagger:model
type UploadResponse struct {
	URL string `json:"url"`
}

func toAPIProfile(p *entities.Profile) Profile {
	return Profile{
		ID:                p.ID,
		Role:              string(p.Role),
		FullName:          p.FullName,
		CompanyName:       p.CompanyName,
		Email:             p.Email,
		Phone:             p.Phone,
		Address:           p.Address,
		IndustryCategory:  p.IndustryCategory,
		Subcategory:       p.Subcategory,
		Specialization:    p.Specialization,
		InterestCategory:  p.InterestCategory,
		SpecificInterests: p.SpecificInterests,
		AvatarURL:         p.AvatarURL,
		FollowersCount:    p.FollowersCount,
		FollowingCount:    p.FollowingCount,
		CreatedAt:         uint64(p.CreatedAt.Unix()),
	}
}

func toAPIProfiles(pp []*entities.Profile) []Profile {
	out := make([]Profile, len(pp))
	for i, v := range pp {
		out[i] = toAPIProfile(v)
	}

	return out
}

func toAPISummary(s entities.ProfileSummary) ProfileSummary {
	return ProfileSummary{
		ID:          s.ID,
		FullName:    s.FullName,
		CompanyName: s.CompanyName,
		Role:        string(s.Role),
		AvatarURL:   s.AvatarURL,
	}
}

func toAPIPost(p *entities.Post, liked map[string]bool) Post {
	out := Post{
		ID:            p.ID,
		Content:       p.Content,
		MediaType:     string(p.MediaType),
		MediaURL:      p.MediaURL,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		CreatedAt:     uint64(p.CreatedAt.Unix()),
		Author:        toAPISummary(p.Author),
	}

	if liked != nil {
		v := liked[p.ID]
		out.UserLiked = &v
	}

	return out
}

func toAPIPosts(pp []*entities.Post, liked map[string]bool) []Post {
	out := make([]Post, len(pp))
	for i, v := range pp {
		out[i] = toAPIPost(v, liked)
	}

	return out
}

func toAPIComment(c *entities.Comment) Comment {
	return Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		Content:   c.Content,
		CreatedAt: uint64(c.CreatedAt.Unix()),
		Author:    toAPISummary(c.Author),
	}
}

func toAPIConversation(c *entities.Conversation) Conversation {
	return Conversation{
		ID: c.ID,
		Participants: [2]ProfileSummary{
			toAPISummary(c.Participants[0]),
			toAPISummary(c.Participants[1]),
		},
		LastMessageAt: uint64(c.LastMessageAt.Unix()),
		UnreadCount:   c.UnreadCount,
	}
}

func toAPIMessage(m *entities.Message) Message {
	return Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Content:        m.Content,
		Read:           m.Read,
		CreatedAt:      uint64(m.CreatedAt.Unix()),
		Sender:         toAPISummary(m.Sender),
	}
}

func toAPINotification(n *entities.Notification) Notification {
	return Notification{
		ID:        n.ID,
		Type:      string(n.Type),
		RelatedID: n.RelatedID,
		Content:   n.Content,
		Read:      n.Read,
		CreatedAt: uint64(n.CreatedAt.Unix()),
		Actor:     toAPISummary(n.Actor),
	}
}

func toAPIRequest(r *entities.Request) Request {
	return Request{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		BudgetRange: r.BudgetRange,
		Status:      r.Status,
		CreatedAt:   uint64(r.CreatedAt.Unix()),
		Author:      toAPISummary(r.Author),
	}
}
