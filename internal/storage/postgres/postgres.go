// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/wat-net/hermes/internal/entities"
	"github.com/wat-net/hermes/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx within tx")

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

type pg struct {
	ext sqlx.ExtContext
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

type accountDTO struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type profileDTO struct {
	ID                string    `db:"id"`
	Role              string    `db:"role"`
	FullName          string    `db:"full_name"`
	CompanyName       string    `db:"company_name"`
	Email             string    `db:"email"`
	Phone             string    `db:"phone"`
	Address           string    `db:"address"`
	IndustryCategory  string    `db:"industry_category"`
	Subcategory       string    `db:"subcategory"`
	Specialization    string    `db:"specialization"`
	InterestCategory  string    `db:"interest_category"`
	SpecificInterests string    `db:"specific_interests"`
	AvatarURL         string    `db:"avatar_url"`
	FollowersCount    uint32    `db:"followers_count"`
	FollowingCount    uint32    `db:"following_count"`
	CreatedAt         time.Time `db:"created_at"`
}

type summaryDTO struct {
	ID          string `db:"author_id"`
	FullName    string `db:"author_full_name"`
	CompanyName string `db:"author_company_name"`
	Role        string `db:"author_role"`
	AvatarURL   string `db:"author_avatar_url"`
}

func (d summaryDTO) toEntity() entities.ProfileSummary {
	return entities.ProfileSummary{
		ID:          d.ID,
		FullName:    d.FullName,
		CompanyName: d.CompanyName,
		Role:        entities.Role(d.Role),
		AvatarURL:   d.AvatarURL,
	}
}

const summaryColumns = `p.id AS author_id, p.full_name AS author_full_name, p.company_name AS author_company_name,
		p.role AS author_role, p.avatar_url AS author_avatar_url`

type postDTO struct {
	ID            string    `db:"id"`
	AuthorID      string    `db:"user_id"`
	Content       string    `db:"content"`
	MediaType     string    `db:"media_type"`
	MediaURL      string    `db:"media_url"`
	LikesCount    uint32    `db:"likes_count"`
	CommentsCount uint32    `db:"comments_count"`
	CreatedAt     time.Time `db:"created_at"`

	summaryDTO
}

func (d postDTO) toEntity() *entities.Post {
	return &entities.Post{
		ID:            d.ID,
		AuthorID:      d.AuthorID,
		Content:       d.Content,
		MediaType:     entities.MediaType(d.MediaType),
		MediaURL:      d.MediaURL,
		LikesCount:    d.LikesCount,
		CommentsCount: d.CommentsCount,
		CreatedAt:     d.CreatedAt,
		Author:        d.summaryDTO.toEntity(),
	}
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) CreateAccount(ctx context.Context, id, email, passwordHash string) error {
	if _, err := s.ext.ExecContext(ctx,
		`INSERT INTO account(id, email, password_hash) VALUES($1, LOWER($2), $3)`,
		id, email, passwordHash,
	); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) DeleteAccount(ctx context.Context, id string) error {
	if _, err := s.ext.ExecContext(ctx, `DELETE FROM account WHERE id=$1`, id); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetAccountByEmail(ctx context.Context, email string) (*storage.Account, error) {
	var a accountDTO

	if err := sqlx.GetContext(ctx, s.ext, &a,
		`SELECT id, email, password_hash, created_at FROM account WHERE email=LOWER($1)`, email,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &storage.Account{
		ID:           a.ID,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
	}, nil
}

func (s pg) CreateProfile(ctx context.Context, p *entities.Profile) error {
	dto := profileDTO{
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
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO profile(id, role, full_name, company_name, email, phone, address,
				industry_category, subcategory, specialization, interest_category, specific_interests, avatar_url)
			VALUES(:id, :role, :full_name, :company_name, :email, :phone, :address,
				:industry_category, :subcategory, :specialization, :interest_category, :specific_interests, :avatar_url)
		`, dto,
	); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

const profileColumns = `id, role, full_name, company_name, email, phone, address,
	industry_category, subcategory, specialization, interest_category, specific_interests,
	avatar_url, followers_count, following_count, created_at`

func (s pg) GetProfile(ctx context.Context, id string) (*entities.Profile, error) {
	var p profileDTO

	if err := sqlx.GetContext(ctx, s.ext, &p,
		fmt.Sprintf(`SELECT %s FROM profile WHERE id=$1`, profileColumns), id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return p.toEntity(), nil
}

func (s pg) GetProfiles(ctx context.Context, ids ...string) ([]*entities.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(
		fmt.Sprintf(`SELECT %s FROM profile WHERE id IN (?)`, profileColumns), stringsUnique(ids),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var pp []*profileDTO
	if err := sqlx.SelectContext(ctx, s.ext, &pp, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Profile, len(pp))
	for i, v := range pp {
		out[i] = v.toEntity()
	}

	return out, nil
}

// likeEscaper neutralizes LIKE metacharacters in user input, so a search for
// a literal % or _ matches only that character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s pg) SearchProfiles(ctx context.Context, q string, limit uint16) ([]*entities.Profile, error) {
	var pp []*profileDTO

	if err := sqlx.SelectContext(ctx, s.ext, &pp,
		fmt.Sprintf(`
			SELECT %s FROM profile
			WHERE full_name ILIKE '%%' || $1 || '%%' OR company_name ILIKE '%%' || $1 || '%%'
			ORDER BY created_at DESC
			LIMIT $2
		`, profileColumns), likeEscaper.Replace(q), limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Profile, len(pp))
	for i, v := range pp {
		out[i] = v.toEntity()
	}

	return out, nil
}

func (d profileDTO) toEntity() *entities.Profile {
	return &entities.Profile{
		ID:                d.ID,
		Role:              entities.Role(d.Role),
		FullName:          d.FullName,
		CompanyName:       d.CompanyName,
		Email:             d.Email,
		Phone:             d.Phone,
		Address:           d.Address,
		IndustryCategory:  d.IndustryCategory,
		Subcategory:       d.Subcategory,
		Specialization:    d.Specialization,
		InterestCategory:  d.InterestCategory,
		SpecificInterests: d.SpecificInterests,
		AvatarURL:         d.AvatarURL,
		FollowersCount:    d.FollowersCount,
		FollowingCount:    d.FollowingCount,
		CreatedAt:         d.CreatedAt,
	}
}

func (s pg) CreatePost(ctx context.Context, p *entities.Post) error {
	if err := sqlx.GetContext(ctx, s.ext, &p.CreatedAt,
		`
			INSERT INTO post(id, user_id, content, media_type, media_url)
			VALUES($1, $2, $3, $4, $5)
			RETURNING created_at
		`, p.ID, p.AuthorID, p.Content, string(p.MediaType), p.MediaURL,
	); err != nil {
		if isForeignKeyViolation(err) {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

const postColumns = `t.id, t.user_id, t.content, t.media_type, t.media_url,
		t.likes_count, t.comments_count, t.created_at`

func (s pg) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, fmt.Sprintf(`
			SELECT %s, %s
			FROM post t
			JOIN profile p ON p.id = t.user_id
			WHERE t.id = $1
		`, postColumns, summaryColumns), id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return p.toEntity(), nil
}

func (s pg) ListPosts(ctx context.Context, params *storage.ListPostsParams) ([]*entities.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM post t
		JOIN profile p ON p.id = t.user_id
		WHERE 1=1
	`, postColumns, summaryColumns)

	args := make([]interface{}, 0, 4)

	if params.AuthorID != nil {
		args = append(args, *params.AuthorID)
		query += fmt.Sprintf(" AND t.user_id = $%d", len(args))
	}

	if params.Query != nil {
		args = append(args, likeEscaper.Replace(*params.Query))
		query += fmt.Sprintf(" AND t.content ILIKE '%%' || $%d || '%%'", len(args))
	}

	args = append(args, params.Limit)
	query += fmt.Sprintf(" ORDER BY t.created_at DESC LIMIT $%d", len(args))

	args = append(args, params.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	var pp []*postDTO
	if err := sqlx.SelectContext(ctx, s.ext, &pp, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Post, len(pp))
	for i, v := range pp {
		out[i] = v.toEntity()
	}

	return out, nil
}

// ToggleLike flips like existence for the (post, user) pair and keeps
// post.likes_count in step. Call it within InTx so the flip and the counter
// move together.
func (s pg) ToggleLike(ctx context.Context, postID, userID string) (bool, error) {
	res, err := s.ext.ExecContext(ctx,
		`DELETE FROM "like" WHERE post_id=$1 AND user_id=$2`, postID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c > 0 {
		if _, err := s.ext.ExecContext(ctx,
			`UPDATE post SET likes_count = likes_count - 1 WHERE id=$1`, postID,
		); err != nil {
			return false, fmt.Errorf("failed to exec: %w", err)
		}

		return false, nil
	}

	res, err = s.ext.ExecContext(ctx,
		`INSERT INTO "like"(post_id, user_id) VALUES($1, $2) ON CONFLICT DO NOTHING`, postID, userID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, storage.ErrNotFound
		}

		return false, fmt.Errorf("failed to exec: %w", err)
	}

	// lost a race with an identical like, the winner moved the counter
	if c, _ := res.RowsAffected(); c == 0 {
		return true, nil
	}

	if _, err := s.ext.ExecContext(ctx,
		`UPDATE post SET likes_count = likes_count + 1 WHERE id=$1`, postID,
	); err != nil {
		return false, fmt.Errorf("failed to exec: %w", err)
	}

	return true, nil
}

func (s pg) GetLikes(ctx context.Context, likedBy string, postIDs ...string) (map[string]bool, error) {
	out := make(map[string]bool, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(
		`SELECT post_id FROM "like" WHERE user_id = ? AND post_id IN (?)`, likedBy, stringsUnique(postIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var liked []string
	if err := sqlx.SelectContext(ctx, s.ext, &liked, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	for _, id := range liked {
		out[id] = true
	}

	return out, nil
}

type commentDTO struct {
	ID        string    `db:"id"`
	PostID    string    `db:"post_id"`
	AuthorID  string    `db:"user_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`

	summaryDTO
}

func (s pg) CreateComment(ctx context.Context, c *entities.Comment) error {
	if err := sqlx.GetContext(ctx, s.ext, &c.CreatedAt,
		`INSERT INTO comment(id, post_id, user_id, content) VALUES($1, $2, $3, $4) RETURNING created_at`,
		c.ID, c.PostID, c.AuthorID, c.Content,
	); err != nil {
		if isForeignKeyViolation(err) {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	if _, err := s.ext.ExecContext(ctx,
		`UPDATE post SET comments_count = comments_count + 1 WHERE id=$1`, c.PostID,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListComments(ctx context.Context, postID string) ([]*entities.Comment, error) {
	var cc []*commentDTO

	if err := sqlx.SelectContext(ctx, s.ext, &cc, fmt.Sprintf(`
			SELECT t.id, t.post_id, t.user_id, t.content, t.created_at, %s
			FROM comment t
			JOIN profile p ON p.id = t.user_id
			WHERE t.post_id = $1
			ORDER BY t.created_at ASC
		`, summaryColumns), postID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Comment, len(cc))
	for i, v := range cc {
		out[i] = &entities.Comment{
			ID:        v.ID,
			PostID:    v.PostID,
			AuthorID:  v.AuthorID,
			Content:   v.Content,
			CreatedAt: v.CreatedAt,
			Author:    v.summaryDTO.toEntity(),
		}
	}

	return out, nil
}

// Follow inserts the edge and moves both follower counters. Duplicate edges
// are reported as ErrAlreadyExists without touching the counters.
func (s pg) Follow(ctx context.Context, follower, followee string) error {
	res, err := s.ext.ExecContext(ctx,
		`INSERT INTO follow(follower_id, following_id) VALUES($1, $2) ON CONFLICT DO NOTHING`,
		follower, followee,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrAlreadyExists
	}

	if _, err := s.ext.ExecContext(ctx,
		`UPDATE profile SET followers_count = followers_count + 1 WHERE id=$1`, followee,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if _, err := s.ext.ExecContext(ctx,
		`UPDATE profile SET following_count = following_count + 1 WHERE id=$1`, follower,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) Unfollow(ctx context.Context, follower, followee string) error {
	res, err := s.ext.ExecContext(ctx,
		`DELETE FROM follow WHERE follower_id=$1 AND following_id=$2`, follower, followee,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	// absent edge is a no-op, counters stay put
	if c, _ := res.RowsAffected(); c == 0 {
		return nil
	}

	if _, err := s.ext.ExecContext(ctx,
		`UPDATE profile SET followers_count = followers_count - 1 WHERE id=$1 AND followers_count > 0`, followee,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if _, err := s.ext.ExecContext(ctx,
		`UPDATE profile SET following_count = following_count - 1 WHERE id=$1 AND following_count > 0`, follower,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) IsFollowing(ctx context.Context, follower, followee string) (bool, error) {
	var exists bool

	if err := sqlx.GetContext(ctx, s.ext, &exists,
		`SELECT EXISTS(SELECT 1 FROM follow WHERE follower_id=$1 AND following_id=$2)`,
		follower, followee,
	); err != nil {
		return false, fmt.Errorf("failed to query: %w", err)
	}

	return exists, nil
}

type conversationDTO struct {
	ID            string    `db:"id"`
	UserA         string    `db:"user_a"`
	UserB         string    `db:"user_b"`
	LastMessageAt time.Time `db:"last_message_at"`
}

// GetOrCreateConversation expects the pair in canonical order. The insert is
// ON CONFLICT DO NOTHING against the unique (user_a, user_b) index, so two
// callers racing on the same pair converge on one row.
func (s pg) GetOrCreateConversation(ctx context.Context, userA, userB string) (*entities.Conversation, error) {
	if _, err := s.ext.ExecContext(ctx,
		`INSERT INTO conversation(id, user_a, user_b) VALUES($1, $2, $3) ON CONFLICT (user_a, user_b) DO NOTHING`,
		uuid.New().String(), userA, userB,
	); err != nil {
		if isForeignKeyViolation(err) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to exec: %w", err)
	}

	var c conversationDTO
	if err := sqlx.GetContext(ctx, s.ext, &c,
		`SELECT id, user_a, user_b, last_message_at FROM conversation WHERE user_a=$1 AND user_b=$2`,
		userA, userB,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Conversation{
		ID:            c.ID,
		UserA:         c.UserA,
		UserB:         c.UserB,
		LastMessageAt: c.LastMessageAt,
	}, nil
}

func (s pg) GetConversation(ctx context.Context, id string) (*entities.Conversation, error) {
	var c conversationDTO

	if err := sqlx.GetContext(ctx, s.ext, &c,
		`SELECT id, user_a, user_b, last_message_at FROM conversation WHERE id=$1`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Conversation{
		ID:            c.ID,
		UserA:         c.UserA,
		UserB:         c.UserB,
		LastMessageAt: c.LastMessageAt,
	}, nil
}

type conversationListDTO struct {
	conversationDTO

	AFullName    string `db:"a_full_name"`
	ACompanyName string `db:"a_company_name"`
	ARole        string `db:"a_role"`
	AAvatarURL   string `db:"a_avatar_url"`

	BFullName    string `db:"b_full_name"`
	BCompanyName string `db:"b_company_name"`
	BRole        string `db:"b_role"`
	BAvatarURL   string `db:"b_avatar_url"`

	UnreadCount uint32 `db:"unread_count"`
}

func (s pg) ListConversations(ctx context.Context, userID string) ([]*entities.Conversation, error) {
	var cc []*conversationListDTO

	if err := sqlx.SelectContext(ctx, s.ext, &cc, `
			SELECT c.id, c.user_a, c.user_b, c.last_message_at,
				pa.full_name AS a_full_name, pa.company_name AS a_company_name, pa.role AS a_role, pa.avatar_url AS a_avatar_url,
				pb.full_name AS b_full_name, pb.company_name AS b_company_name, pb.role AS b_role, pb.avatar_url AS b_avatar_url,
				(
					SELECT COUNT(*) FROM message m
					WHERE m.conversation_id = c.id AND m.sender_id <> $1 AND NOT m.read
				) AS unread_count
			FROM conversation c
			JOIN profile pa ON pa.id = c.user_a
			JOIN profile pb ON pb.id = c.user_b
			WHERE c.user_a = $1 OR c.user_b = $1
			ORDER BY c.last_message_at DESC
		`, userID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Conversation, len(cc))
	for i, v := range cc {
		out[i] = &entities.Conversation{
			ID:            v.ID,
			UserA:         v.UserA,
			UserB:         v.UserB,
			LastMessageAt: v.LastMessageAt,
			Participants: [2]entities.ProfileSummary{
				{ID: v.UserA, FullName: v.AFullName, CompanyName: v.ACompanyName, Role: entities.Role(v.ARole), AvatarURL: v.AAvatarURL},
				{ID: v.UserB, FullName: v.BFullName, CompanyName: v.BCompanyName, Role: entities.Role(v.BRole), AvatarURL: v.BAvatarURL},
			},
			UnreadCount: v.UnreadCount,
		}
	}

	return out, nil
}

type messageDTO struct {
	ID             string    `db:"id"`
	ConversationID string    `db:"conversation_id"`
	SenderID       string    `db:"sender_id"`
	Content        string    `db:"content"`
	Read           bool      `db:"read"`
	CreatedAt      time.Time `db:"created_at"`

	summaryDTO
}

// CreateMessage appends to the log and bumps the thread's last_message_at.
// getUserConversations ordering depends on the bump, so call it within InTx.
func (s pg) CreateMessage(ctx context.Context, m *entities.Message) error {
	var createdAt time.Time

	if err := sqlx.GetContext(ctx, s.ext, &createdAt,
		`
			INSERT INTO message(id, conversation_id, sender_id, content)
			VALUES($1, $2, $3, $4)
			RETURNING created_at
		`, m.ID, m.ConversationID, m.SenderID, m.Content,
	); err != nil {
		if isForeignKeyViolation(err) {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	m.CreatedAt = createdAt

	if _, err := s.ext.ExecContext(ctx,
		`UPDATE conversation SET last_message_at=$2 WHERE id=$1`, m.ConversationID, createdAt,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListMessages(ctx context.Context, conversationID string) ([]*entities.Message, error) {
	var mm []*messageDTO

	if err := sqlx.SelectContext(ctx, s.ext, &mm, fmt.Sprintf(`
			SELECT t.id, t.conversation_id, t.sender_id, t.content, t.read, t.created_at, %s
			FROM message t
			JOIN profile p ON p.id = t.sender_id
			WHERE t.conversation_id = $1
			ORDER BY t.created_at ASC
		`, summaryColumns), conversationID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Message, len(mm))
	for i, v := range mm {
		out[i] = &entities.Message{
			ID:             v.ID,
			ConversationID: v.ConversationID,
			SenderID:       v.SenderID,
			Content:        v.Content,
			Read:           v.Read,
			CreatedAt:      v.CreatedAt,
			Sender:         v.summaryDTO.toEntity(),
		}
	}

	return out, nil
}

func (s pg) MarkMessagesRead(ctx context.Context, conversationID, userID string) error {
	if _, err := s.ext.ExecContext(ctx,
		`UPDATE message SET read=TRUE WHERE conversation_id=$1 AND sender_id<>$2 AND NOT read`,
		conversationID, userID,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

type notificationDTO struct {
	ID          string    `db:"id"`
	RecipientID string    `db:"recipient_id"`
	Type        string    `db:"type"`
	ActorID     string    `db:"actor_id"`
	RelatedID   string    `db:"related_id"`
	Content     string    `db:"content"`
	Read        bool      `db:"read"`
	CreatedAt   time.Time `db:"created_at"`

	summaryDTO
}

func (s pg) CreateNotification(ctx context.Context, n *entities.Notification) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO notification(id, recipient_id, type, actor_id, related_id, content)
			VALUES($1, $2, $3, $4, $5, $6)
		`, n.ID, n.RecipientID, string(n.Type), n.ActorID, n.RelatedID, n.Content,
	); err != nil {
		if isForeignKeyViolation(err) {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListNotifications(ctx context.Context, recipientID string) ([]*entities.Notification, error) {
	var nn []*notificationDTO

	if err := sqlx.SelectContext(ctx, s.ext, &nn, fmt.Sprintf(`
			SELECT t.id, t.recipient_id, t.type, t.actor_id, t.related_id, t.content, t.read, t.created_at, %s
			FROM notification t
			JOIN profile p ON p.id = t.actor_id
			WHERE t.recipient_id = $1
			ORDER BY t.created_at DESC
		`, summaryColumns), recipientID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Notification, len(nn))
	for i, v := range nn {
		out[i] = &entities.Notification{
			ID:          v.ID,
			RecipientID: v.RecipientID,
			Type:        entities.NotificationType(v.Type),
			ActorID:     v.ActorID,
			RelatedID:   v.RelatedID,
			Content:     v.Content,
			Read:        v.Read,
			CreatedAt:   v.CreatedAt,
			Actor:       v.summaryDTO.toEntity(),
		}
	}

	return out, nil
}

func (s pg) UnreadNotificationsCount(ctx context.Context, recipientID string) (uint32, error) {
	var count uint32

	if err := sqlx.GetContext(ctx, s.ext, &count,
		`SELECT COUNT(*) FROM notification WHERE recipient_id=$1 AND NOT read`, recipientID,
	); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return count, nil
}

// MarkNotificationRead flips only the recipient's own notification; someone
// else's id is indistinguishable from a missing one.
func (s pg) MarkNotificationRead(ctx context.Context, id, recipientID string) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE notification SET read=TRUE WHERE id=$1 AND recipient_id=$2`, id, recipientID,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) MarkAllNotificationsRead(ctx context.Context, recipientID string) error {
	if _, err := s.ext.ExecContext(ctx,
		`UPDATE notification SET read=TRUE WHERE recipient_id=$1 AND NOT read`, recipientID,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

type requestDTO struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	BudgetRange string    `db:"budget_range"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`

	summaryDTO
}

func (s pg) CreateRequest(ctx context.Context, r *entities.Request) error {
	if err := sqlx.GetContext(ctx, s.ext, &r.CreatedAt,
		`
			INSERT INTO request(id, user_id, title, description, budget_range, status)
			VALUES($1, $2, $3, $4, $5, $6)
			RETURNING created_at
		`, r.ID, r.UserID, r.Title, r.Description, r.BudgetRange, r.Status,
	); err != nil {
		if isForeignKeyViolation(err) {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListRequests(ctx context.Context) ([]*entities.Request, error) {
	var rr []*requestDTO

	if err := sqlx.SelectContext(ctx, s.ext, &rr, fmt.Sprintf(`
			SELECT t.id, t.user_id, t.title, t.description, t.budget_range, t.status, t.created_at, %s
			FROM request t
			JOIN profile p ON p.id = t.user_id
			ORDER BY t.created_at DESC
		`, summaryColumns),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Request, len(rr))
	for i, v := range rr {
		out[i] = &entities.Request{
			ID:          v.ID,
			UserID:      v.UserID,
			Title:       v.Title,
			Description: v.Description,
			BudgetRange: v.BudgetRange,
			Status:      v.Status,
			CreatedAt:   v.CreatedAt,
			Author:      v.summaryDTO.toEntity(),
		}
	}

	return out, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}

func stringsUnique(s []string) []string {
	m := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))

	for _, v := range s {
		if _, ok := m[v]; !ok {
			m[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}
