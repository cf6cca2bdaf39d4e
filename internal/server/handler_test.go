package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wat-net/hermes/internal/entities"
	"github.com/wat-net/hermes/internal/service"
	"github.com/wat-net/hermes/internal/service/mock"
	"github.com/wat-net/hermes/internal/storage"
	"github.com/wat-net/hermes/internal/token"
)

var testIssuer = token.New("secret", time.Hour)

func authorize(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userCtxKey{}, userID))
}

func Test_register(t *testing.T) {
	body := `{
		"role": "explorer",
		"fullName": "Jane Doe",
		"email": "jane@example.com",
		"phone": "+12025550100",
		"address": "1 Main Street",
		"password": "verysecret"
	}`

	r, err := http.NewRequest(http.MethodPost, "/v1/register", strings.NewReader(body))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, form entities.RegistrationForm) (*entities.Profile, error) {
			assert.Equal(t, entities.ExplorerRole, form.Role)
			assert.Equal(t, "Jane Doe", form.FullName)
			return &entities.Profile{
				ID:        "user-1",
				Role:      entities.ExplorerRole,
				FullName:  "Jane Doe",
				Email:     "jane@example.com",
				CreatedAt: time.Unix(100, 0),
			}, nil
		})

	router := chi.NewRouter()
	srv := server{s: s, t: testIssuer}
	router.Post("/v1/register", srv.register)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.Profile.ID)

	userID, err := testIssuer.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func Test_register_errors(t *testing.T) {
	tt := []struct {
		name string
		err  error

		code int
	}{
		{
			name: "invalid form",
			err:  fmt.Errorf("%w: invalid phone", entities.ErrInvalidRegistration),
			code: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			err:  storage.ErrAlreadyExists,
			code: http.StatusConflict,
		},
		{
			name: "internal",
			err:  context.Canceled,
			code: http.StatusInternalServerError,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			r, err := http.NewRequest(http.MethodPost, "/v1/register", strings.NewReader(`{"role":"explorer"}`))
			require.NoError(t, err)

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			s := mock.NewMockService(ctrl)

			s.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			router := chi.NewRouter()
			srv := server{s: s, t: testIssuer}
			router.Post("/v1/register", srv.register)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func Test_login(t *testing.T) {
	r, err := http.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"email":"jane@example.com","password":"verysecret"}`))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().Login(gomock.Any(), "jane@example.com", "verysecret").Return(&entities.Profile{
		ID:        "user-1",
		Role:      entities.ExplorerRole,
		FullName:  "Jane Doe",
		Email:     "jane@example.com",
		CreatedAt: time.Unix(100, 0),
	}, nil)

	router := chi.NewRouter()
	srv := server{s: s, t: testIssuer}
	router.Post("/v1/login", srv.login)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.Profile.ID)
	assert.NotEmpty(t, resp.Token)
}

func Test_login_invalidCredentials(t *testing.T) {
	r, err := http.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"email":"jane@example.com","password":"wrong"}`))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().Login(gomock.Any(), "jane@example.com", "wrong").Return(nil, service.ErrInvalidCredentials)

	router := chi.NewRouter()
	srv := server{s: s, t: testIssuer}
	router.Post("/v1/login", srv.login)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"invalid credentials"}`, w.Body.String())
}

func Test_getProfile(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/profiles/user-1", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().GetProfile(gomock.Any(), "user-1").Return(&entities.Profile{
		ID:             "user-1",
		Role:           entities.ManufacturerRole,
		CompanyName:    "Acme",
		Email:          "acme@example.com",
		FollowersCount: 2,
		CreatedAt:      time.Unix(100, 0),
	}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/profiles/{id}", srv.getProfile)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
	"id": "user-1",
	"role": "manufacturer",
	"companyName": "Acme",
	"email": "acme@example.com",
	"followersCount": 2,
	"followingCount": 0,
	"createdAt": 100
}
	`, w.Body.String())
}

func Test_getProfile_notFound(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/profiles/missing", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().GetProfile(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/profiles/{id}", srv.getProfile)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_getExplorePosts(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/posts?limit=2&offset=4&requestedBy=viewer", nil)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().GetExplorePosts(gomock.Any(), uint16(2), uint32(4), "viewer").Return(
		[]*entities.Post{
			{
				ID:         "post-1",
				AuthorID:   "user-1",
				Content:    "hello",
				MediaType:  entities.TextMediaType,
				LikesCount: 3,
				CreatedAt:  time.Unix(100, 0),
				Author:     entities.ProfileSummary{ID: "user-1", FullName: "Jane Doe", Role: entities.ExplorerRole},
			},
		},
		map[string]bool{"post-1": true},
		nil,
	)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/posts", srv.getExplorePosts)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
[
	{
		"id": "post-1",
		"content": "hello",
		"mediaType": "text",
		"likesCount": 3,
		"commentsCount": 0,
		"createdAt": 100,
		"author": {"id": "user-1", "fullName": "Jane Doe", "role": "explorer"},
		"userLiked": true
	}
]
	`, w.Body.String())
}

func Test_getExplorePosts_badPagination(t *testing.T) {
	for _, query := range []string{"limit=0", "limit=101", "limit=abc", "offset=-1"} {
		r, err := http.NewRequest(http.MethodGet, "/v1/posts?"+query, nil)
		require.NoError(t, err)

		ctrl := gomock.NewController(t)
		s := mock.NewMockService(ctrl)

		router := chi.NewRouter()
		srv := server{s: s}
		router.Get("/v1/posts", srv.getExplorePosts)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code, query)
		ctrl.Finish()
	}
}

func Test_createPost(t *testing.T) {
	r, err := http.NewRequest(http.MethodPost, "/v1/posts", strings.NewReader(`{"content":"hello","mediaType":"image","mediaUrl":"http://cdn/1.png"}`))
	require.NoError(t, err)
	r = authorize(r, "user-1")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().CreatePost(gomock.Any(), &service.CreatePostParams{
		AuthorID:  "user-1",
		Content:   "hello",
		MediaType: entities.ImageMediaType,
		MediaURL:  "http://cdn/1.png",
	}).Return(&entities.Post{
		ID:        "post-1",
		AuthorID:  "user-1",
		Content:   "hello",
		MediaType: entities.ImageMediaType,
		MediaURL:  "http://cdn/1.png",
		CreatedAt: time.Unix(100, 0),
		Author:    entities.ProfileSummary{ID: "user-1", FullName: "Jane Doe", Role: entities.ExplorerRole},
	}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/posts", srv.createPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `
{
	"id": "post-1",
	"content": "hello",
	"mediaType": "image",
	"mediaUrl": "http://cdn/1.png",
	"likesCount": 0,
	"commentsCount": 0,
	"createdAt": 100,
	"author": {"id": "user-1", "fullName": "Jane Doe", "role": "explorer"}
}
	`, w.Body.String())
}

func Test_toggleLike(t *testing.T) {
	r, err := http.NewRequest(http.MethodPost, "/v1/posts/post-1/like", nil)
	require.NoError(t, err)
	r = authorize(r, "user-1")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().ToggleLike(gomock.Any(), "post-1", "user-1").Return(true, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/posts/{id}/like", srv.toggleLike)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"liked": true}`, w.Body.String())
}

func Test_toggleLike_notFound(t *testing.T) {
	r, err := http.NewRequest(http.MethodPost, "/v1/posts/missing/like", nil)
	require.NoError(t, err)
	r = authorize(r, "user-1")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().ToggleLike(gomock.Any(), "missing", "user-1").Return(false, storage.ErrNotFound)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/posts/{id}/like", srv.toggleLike)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_addComment(t *testing.T) {
	r, err := http.NewRequest(http.MethodPost, "/v1/posts/post-1/comments", strings.NewReader(`{"content":"nice"}`))
	require.NoError(t, err)
	r = authorize(r, "user-2")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().AddComment(gomock.Any(), "post-1", "user-2", "nice").Return(&entities.Comment{
		ID:        "comment-1",
		PostID:    "post-1",
		AuthorID:  "user-2",
		Content:   "nice",
		CreatedAt: time.Unix(100, 0),
		Author:    entities.ProfileSummary{ID: "user-2", FullName: "Bob", Role: entities.BuyerRole},
	}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/posts/{id}/comments", srv.addComment)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `
{
	"id": "comment-1",
	"postId": "post-1",
	"content": "nice",
	"createdAt": 100,
	"author": {"id": "user-2", "fullName": "Bob", "role": "buyer"}
}
	`, w.Body.String())
}

func Test_addComment_empty(t *testing.T) {
	r, err := http.NewRequest(http.MethodPost, "/v1/posts/post-1/comments", strings.NewReader(`{"content":"  "}`))
	require.NoError(t, err)
	r = authorize(r, "user-2")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().AddComment(gomock.Any(), "post-1", "user-2", "  ").Return(nil, service.ErrEmptyContent)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/posts/{id}/comments", srv.addComment)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_follow(t *testing.T) {
	tt := []struct {
		name string
		err  error

		code int
	}{
		{
			name: "success",
			code: http.StatusNoContent,
		},
		{
			name: "already following",
			err:  storage.ErrAlreadyExists,
			code: http.StatusConflict,
		},
		{
			name: "missing profile",
			err:  storage.ErrNotFound,
			code: http.StatusNotFound,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			r, err := http.NewRequest(http.MethodPost, "/v1/profiles/user-2/follow", nil)
			require.NoError(t, err)
			r = authorize(r, "user-1")

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			s := mock.NewMockService(ctrl)

			s.EXPECT().FollowUser(gomock.Any(), "user-1", "user-2").Return(tc.err)

			router := chi.NewRouter()
			srv := server{s: s}
			router.Post("/v1/profiles/{id}/follow", srv.follow)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func Test_unfollow(t *testing.T) {
	r, err := http.NewRequest(http.MethodDelete, "/v1/profiles/user-2/follow", nil)
	require.NoError(t, err)
	r = authorize(r, "user-1")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().UnfollowUser(gomock.Any(), "user-1", "user-2").Return(nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Delete("/v1/profiles/{id}/follow", srv.unfollow)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func Test_getOrCreateConversation(t *testing.T) {
	r, err := http.NewRequest(http.MethodPost, "/v1/conversations", strings.NewReader(`{"peerId":"user-2"}`))
	require.NoError(t, err)
	r = authorize(r, "user-1")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().GetOrCreateConversation(gomock.Any(), "user-1", "user-2").Return(&entities.Conversation{
		ID:            "conv-1",
		UserA:         "user-1",
		UserB:         "user-2",
		LastMessageAt: time.Unix(100, 0),
		Participants: [2]entities.ProfileSummary{
			{ID: "user-1", FullName: "Alice", Role: entities.ExplorerRole},
			{ID: "user-2", FullName: "Bob", Role: entities.BuyerRole},
		},
	}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/conversations", srv.getOrCreateConversation)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
	"id": "conv-1",
	"participants": [
		{"id": "user-1", "fullName": "Alice", "role": "explorer"},
		{"id": "user-2", "fullName": "Bob", "role": "buyer"}
	],
	"lastMessageAt": 100,
	"unreadCount": 0
}
	`, w.Body.String())
}

func Test_getOrCreateConversation_errors(t *testing.T) {
	// missing peerId is rejected before the service is touched
	r, err := http.NewRequest(http.MethodPost, "/v1/conversations", strings.NewReader(`{}`))
	require.NoError(t, err)
	r = authorize(r, "user-1")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/conversations", srv.getOrCreateConversation)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	r, err = http.NewRequest(http.MethodPost, "/v1/conversations", strings.NewReader(`{"peerId":"user-1"}`))
	require.NoError(t, err)
	r = authorize(r, "user-1")

	s.EXPECT().GetOrCreateConversation(gomock.Any(), "user-1", "user-1").Return(nil, service.ErrSameUser)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_sendMessage(t *testing.T) {
	r, err := http.NewRequest(http.MethodPost, "/v1/conversations/conv-1/messages", strings.NewReader(`{"content":"hi"}`))
	require.NoError(t, err)
	r = authorize(r, "user-1")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().SendMessage(gomock.Any(), "conv-1", "user-1", "hi").Return(&entities.Message{
		ID:             "msg-1",
		ConversationID: "conv-1",
		SenderID:       "user-1",
		Content:        "hi",
		CreatedAt:      time.Unix(100, 0),
		Sender:         entities.ProfileSummary{ID: "user-1", FullName: "Alice", Role: entities.ExplorerRole},
	}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/conversations/{id}/messages", srv.sendMessage)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `
{
	"id": "msg-1",
	"conversationId": "conv-1",
	"senderId": "user-1",
	"content": "hi",
	"read": false,
	"createdAt": 100,
	"sender": {"id": "user-1", "fullName": "Alice", "role": "explorer"}
}
	`, w.Body.String())
}

func Test_sendMessage_notParticipant(t *testing.T) {
	r, err := http.NewRequest(http.MethodPost, "/v1/conversations/conv-1/messages", strings.NewReader(`{"content":"hi"}`))
	require.NoError(t, err)
	r = authorize(r, "mallory")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().SendMessage(gomock.Any(), "conv-1", "mallory", "hi").Return(nil, service.ErrNotParticipant)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/conversations/{id}/messages", srv.sendMessage)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_getUnreadNotificationCount(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/v1/profiles/user-1/notifications/count", nil)
	require.NoError(t, err)
	r = authorize(r, "user-1")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().GetUnreadNotificationCount(gomock.Any(), "user-1").Return(uint32(5), nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/profiles/{id}/notifications/count", srv.getUnreadNotificationCount)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count": 5}`, w.Body.String())
}

func Test_markNotificationAsRead(t *testing.T) {
	tt := []struct {
		name string
		err  error

		code int
	}{
		{
			name: "own notification",
			code: http.StatusNoContent,
		},
		{
			// flipping another recipient's notification looks like a miss
			name: "foreign notification",
			err:  storage.ErrNotFound,
			code: http.StatusNotFound,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			r, err := http.NewRequest(http.MethodPost, "/v1/notifications/notif-1/read", nil)
			require.NoError(t, err)
			r = authorize(r, "user-1")

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			s := mock.NewMockService(ctrl)

			s.EXPECT().MarkNotificationAsRead(gomock.Any(), "notif-1", "user-1").Return(tc.err)

			router := chi.NewRouter()
			srv := server{s: s}
			router.Post("/v1/notifications/{id}/read", srv.markNotificationAsRead)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func Test_getNotifications_forbidden(t *testing.T) {
	// notification routes are owner-only
	r, err := http.NewRequest(http.MethodGet, "/v1/profiles/user-2/notifications", nil)
	require.NoError(t, err)
	r = authorize(r, "user-1")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/profiles/{id}/notifications", srv.getNotifications)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_createRequest(t *testing.T) {
	r, err := http.NewRequest(http.MethodPost, "/v1/requests", strings.NewReader(`{"title":"CNC parts","description":"aluminium","budgetRange":"$1k-$5k"}`))
	require.NoError(t, err)
	r = authorize(r, "user-1")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().CreateRequest(gomock.Any(), &service.CreateRequestParams{
		UserID:      "user-1",
		Title:       "CNC parts",
		Description: "aluminium",
		BudgetRange: "$1k-$5k",
	}).Return(&entities.Request{
		ID:          "req-1",
		UserID:      "user-1",
		Title:       "CNC parts",
		Description: "aluminium",
		BudgetRange: "$1k-$5k",
		Status:      "open",
		CreatedAt:   time.Unix(100, 0),
	}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/requests", srv.createRequest)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `
{
	"id": "req-1",
	"title": "CNC parts",
	"description": "aluminium",
	"budgetRange": "$1k-$5k",
	"status": "open",
	"createdAt": 100,
	"author": {"id": "", "role": ""}
}
	`, w.Body.String())
}

func Test_authMiddleware(t *testing.T) {
	srv := server{t: testIssuer}

	handler := srv.authMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "user-1", requestUser(r))
		w.WriteHeader(http.StatusOK)
	}))

	// no header
	r, err := http.NewRequest(http.MethodGet, "/v1/conversations", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// garbage token
	r, err = http.NewRequest(http.MethodGet, "/v1/conversations", nil)
	require.NoError(t, err)
	r.Header.Set("Authorization", "Bearer garbage")

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// valid token
	tkn, err := testIssuer.Issue("user-1")
	require.NoError(t, err)

	r, err = http.NewRequest(http.MethodGet, "/v1/conversations", nil)
	require.NoError(t, err)
	r.Header.Set("Authorization", "Bearer "+tkn)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}
