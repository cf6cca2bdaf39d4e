// Package entities contains main entities of service.
package entities

import (
	"time"
)

// Role is a profile's business role, chosen at registration and immutable after.
type Role string

const (
	// ManufacturerRole ...
	ManufacturerRole Role = "manufacturer"
	// SellerRole ...
	SellerRole Role = "seller"
	// BuyerRole ...
	BuyerRole Role = "buyer"
	// StartupRole ...
	StartupRole Role = "startup"
	// ExplorerRole ...
	ExplorerRole Role = "explorer"
)

// IsValid ...
func (r Role) IsValid() bool {
	switch r {
	case ManufacturerRole, SellerRole, BuyerRole, StartupRole, ExplorerRole:
		return true
	}
	return false
}

// MediaType ...
type MediaType string

const (
	// TextMediaType means a post carries no media.
	TextMediaType MediaType = "text"
	// ImageMediaType ...
	ImageMediaType MediaType = "image"
	// VideoMediaType ...
	VideoMediaType MediaType = "video"
)

// NotificationType ...
type NotificationType string

const (
	// FollowNotification ...
	FollowNotification NotificationType = "follow"
	// LikeNotification ...
	LikeNotification NotificationType = "like"
	// CommentNotification ...
	CommentNotification NotificationType = "comment"
	// MessageNotification ...
	MessageNotification NotificationType = "message"
)

// Profile ...
type Profile struct {
	ID                string
	Role              Role
	FullName          string
	CompanyName       string
	Email             string
	Phone             string
	Address           string
	IndustryCategory  string
	Subcategory       string
	Specialization    string
	InterestCategory  string
	SpecificInterests string
	AvatarURL         string
	FollowersCount    uint32
	FollowingCount    uint32
	CreatedAt         time.Time
}

// DisplayName returns the name the profile is presented under: persons have a
// full name, companies a company name.
func (p Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.CompanyName
}

// ProfileSummary is the short form joined into posts, comments, conversations
// and notifications.
type ProfileSummary struct {
	ID          string
	FullName    string
	CompanyName string
	Role        Role
	AvatarURL   string
}

// Post ...
type Post struct {
	ID            string
	AuthorID      string
	Content       string
	MediaType     MediaType
	MediaURL      string
	LikesCount    uint32
	CommentsCount uint32
	CreatedAt     time.Time

	Author ProfileSummary
}

// Comment ...
type Comment struct {
	ID        string
	PostID    string
	AuthorID  string
	Content   string
	CreatedAt time.Time

	Author ProfileSummary
}

// Conversation is a two-party thread. UserA and UserB are stored in canonical
// order: UserA < UserB lexicographically, so exactly one row exists per
// unordered pair.
type Conversation struct {
	ID            string
	UserA         string
	UserB         string
	LastMessageAt time.Time

	Participants [2]ProfileSummary
	UnreadCount  uint32
}

// Peer returns the participant other than the given user.
func (c Conversation) Peer(userID string) ProfileSummary {
	if c.Participants[0].ID == userID {
		return c.Participants[1]
	}
	return c.Participants[0]
}

// Message ...
type Message struct {
	ID             string
	ConversationID string
	SenderID       string
	Content        string
	Read           bool
	CreatedAt      time.Time

	Sender ProfileSummary
}

// Notification ...
type Notification struct {
	ID          string
	RecipientID string
	Type        NotificationType
	ActorID     string
	RelatedID   string
	Content     string
	Read        bool
	CreatedAt   time.Time

	Actor ProfileSummary
}

// Request is a marketplace request.
type Request struct {
	ID          string
	UserID      string
	Title       string
	Description string
	BudgetRange string
	Status      string
	CreatedAt   time.Time

	Author ProfileSummary
}

// CanonicalPair orders two user ids so the smaller one comes first. Every
// conversation lookup and insert must go through it, otherwise duplicate
// threads appear for the same two users.
func CanonicalPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}
