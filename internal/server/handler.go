package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/wat-net/hermes/internal/api"
	"github.com/wat-net/hermes/internal/blob"
	"github.com/wat-net/hermes/internal/entities"
	"github.com/wat-net/hermes/internal/service"
	"github.com/wat-net/hermes/internal/storage"
)

func (s server) register(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /register Auth Register
	//
	// Register a new account with a role-dependent form.
	//
	// ---
	// parameters:
	// - name: body
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/RegisterRequest"
	// responses:
	//   '201':
	//     description: profile and session token
	//     schema:
	//       "$ref": "#/definitions/AuthResponse"
	//   '400':
	//     description: invalid form
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: email already registered
	//     schema:
	//       "$ref": "#/definitions/Error"

	var form RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	p, err := s.s.Register(r.Context(), form)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrInvalidRegistration):
			api.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, storage.ErrAlreadyExists):
			api.WriteError(w, http.StatusConflict, "email already registered")
		default:
			api.WriteInternalErrorf(r.Context(), w, "failed to register: %s", err.Error())
		}
		return
	}

	s.writeAuthResponse(w, r, http.StatusCreated, p)
}

func (s server) login(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /login Auth Login
	//
	// Login with email and password.
	//
	// ---
	// responses:
	//   '200':
	//     description: profile and session token
	//     schema:
	//       "$ref": "#/definitions/AuthResponse"
	//   '401':
	//     description: invalid credentials
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	p, err := s.s.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			api.WriteError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to login: %s", err.Error())
		return
	}

	s.writeAuthResponse(w, r, http.StatusOK, p)
}

func (s server) writeAuthResponse(w http.ResponseWriter, r *http.Request, status int, p *entities.Profile) {
	t, err := s.t.Issue(p.ID)
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to issue token: %s", err.Error())
		return
	}

	api.WriteOK(w, status, AuthResponse{
		Token:   t,
		Profile: toAPIProfile(p),
	})
}

func (s server) getProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.s.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "profile not found")
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to get profile: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIProfile(p))
}

func (s server) searchProfiles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		api.WriteError(w, http.StatusBadRequest, "query is required")
		return
	}

	pp, err := s.s.SearchProfiles(r.Context(), query)
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to search profiles: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIProfiles(pp))
}

func (s server) getExplorePosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts Posts GetExplorePosts
	//
	// Return the explore feed, newest first.
	//
	// ---
	// parameters:
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   maximum: 100
	// - name: offset
	//   in: query
	//   required: false
	//   default: 0
	// - name: requestedBy
	//   in: query
	//   description: adds userLiked flag to response
	//   required: false
	// responses:
	//   '200':
	//     description: posts
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	limit, offset, err := extractPagination(r)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	pp, liked, err := s.s.GetExplorePosts(r.Context(), limit, offset, r.URL.Query().Get("requestedBy"))
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to get explore posts: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIPosts(pp, liked))
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	p, err := s.s.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "post not found")
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to get post: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIPost(p, nil))
}

func (s server) getUserPosts(w http.ResponseWriter, r *http.Request) {
	pp, err := s.s.GetUserPosts(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to get user posts: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIPosts(pp, nil))
}

func (s server) searchPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		api.WriteError(w, http.StatusBadRequest, "query is required")
		return
	}

	pp, err := s.s.SearchPosts(r.Context(), query)
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to search posts: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIPosts(pp, nil))
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	p, err := s.s.CreatePost(r.Context(), &service.CreatePostParams{
		AuthorID:  requestUser(r),
		Content:   req.Content,
		MediaType: entities.MediaType(req.MediaType),
		MediaURL:  req.MediaURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyContent) {
			api.WriteError(w, http.StatusBadRequest, "post needs content or media")
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to create post: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIPost(p, nil))
}

func (s server) toggleLike(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/like Posts ToggleLike
	//
	// Flip the caller's like on the post.
	//
	// ---
	// responses:
	//   '200':
	//     description: resulting like state
	//     schema:
	//       "$ref": "#/definitions/LikedResponse"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	liked, err := s.s.ToggleLike(r.Context(), chi.URLParam(r, "id"), requestUser(r))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "post not found")
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to toggle like: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, LikedResponse{Liked: liked})
}

func (s server) checkUserLiked(w http.ResponseWriter, r *http.Request) {
	liked, err := s.s.CheckUserLiked(r.Context(), chi.URLParam(r, "id"), requestUser(r))
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to check like: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, LikedResponse{Liked: liked})
}

func (s server) addComment(w http.ResponseWriter, r *http.Request) {
	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	c, err := s.s.AddComment(r.Context(), chi.URLParam(r, "id"), requestUser(r), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyContent):
			api.WriteError(w, http.StatusBadRequest, "comment is empty")
		case errors.Is(err, storage.ErrNotFound):
			api.WriteError(w, http.StatusNotFound, "post not found")
		default:
			api.WriteInternalErrorf(r.Context(), w, "failed to add comment: %s", err.Error())
		}
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIComment(c))
}

func (s server) getComments(w http.ResponseWriter, r *http.Request) {
	cc, err := s.s.GetComments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to get comments: %s", err.Error())
		return
	}

	out := make([]Comment, len(cc))
	for i, v := range cc {
		out[i] = toAPIComment(v)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) follow(w http.ResponseWriter, r *http.Request) {
	err := s.s.FollowUser(r.Context(), requestUser(r), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			api.WriteError(w, http.StatusConflict, "already following")
		case errors.Is(err, storage.ErrNotFound):
			api.WriteError(w, http.StatusNotFound, "profile not found")
		default:
			api.WriteInternalErrorf(r.Context(), w, "failed to follow: %s", err.Error())
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) unfollow(w http.ResponseWriter, r *http.Request) {
	if err := s.s.UnfollowUser(r.Context(), requestUser(r), chi.URLParam(r, "id")); err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to unfollow: %s", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) checkIsFollowing(w http.ResponseWriter, r *http.Request) {
	following, err := s.s.CheckIsFollowing(r.Context(), requestUser(r), chi.URLParam(r, "id"))
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to check following: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, FollowingResponse{Following: following})
}

func (s server) getOrCreateConversation(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /conversations Messaging GetOrCreateConversation
	//
	// Return the conversation with the peer, creating it when absent. The
	// same conversation is returned regardless of who initiates.
	//
	// ---
	// responses:
	//   '200':
	//     description: conversation
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req ConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PeerID == "" {
		api.WriteError(w, http.StatusBadRequest, "peerId is required")
		return
	}

	c, err := s.s.GetOrCreateConversation(r.Context(), requestUser(r), req.PeerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSameUser):
			api.WriteError(w, http.StatusBadRequest, "cannot start a conversation with yourself")
		case errors.Is(err, storage.ErrNotFound):
			api.WriteError(w, http.StatusNotFound, "profile not found")
		default:
			api.WriteInternalErrorf(r.Context(), w, "failed to get conversation: %s", err.Error())
		}
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIConversation(c))
}

func (s server) getUserConversations(w http.ResponseWriter, r *http.Request) {
	cc, err := s.s.GetUserConversations(r.Context(), requestUser(r))
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to get conversations: %s", err.Error())
		return
	}

	out := make([]Conversation, len(cc))
	for i, v := range cc {
		out[i] = toAPIConversation(v)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) getMessages(w http.ResponseWriter, r *http.Request) {
	mm, err := s.s.GetMessages(r.Context(), chi.URLParam(r, "id"), requestUser(r))
	if err != nil {
		s.writeConversationError(w, r, err, "failed to get messages")
		return
	}

	out := make([]Message, len(mm))
	for i, v := range mm {
		out[i] = toAPIMessage(v)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	m, err := s.s.SendMessage(r.Context(), chi.URLParam(r, "id"), requestUser(r), req.Content)
	if err != nil {
		if errors.Is(err, service.ErrEmptyContent) {
			api.WriteError(w, http.StatusBadRequest, "message is empty")
			return
		}
		s.writeConversationError(w, r, err, "failed to send message")
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIMessage(m))
}

func (s server) markMessagesAsRead(w http.ResponseWriter, r *http.Request) {
	if err := s.s.MarkMessagesAsRead(r.Context(), chi.URLParam(r, "id"), requestUser(r)); err != nil {
		s.writeConversationError(w, r, err, "failed to mark messages read")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) writeConversationError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		api.WriteError(w, http.StatusNotFound, "conversation not found")
	case errors.Is(err, service.ErrNotParticipant):
		api.WriteError(w, http.StatusForbidden, "not a conversation participant")
	default:
		api.WriteInternalErrorf(r.Context(), w, "%s: %s", msg, err.Error())
	}
}

func (s server) getNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireSelf(w, r)
	if !ok {
		return
	}

	nn, err := s.s.GetNotifications(r.Context(), userID)
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to get notifications: %s", err.Error())
		return
	}

	out := make([]Notification, len(nn))
	for i, v := range nn {
		out[i] = toAPINotification(v)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) getUnreadNotificationCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireSelf(w, r)
	if !ok {
		return
	}

	count, err := s.s.GetUnreadNotificationCount(r.Context(), userID)
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to count notifications: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, CountResponse{Count: count})
}

func (s server) markNotificationAsRead(w http.ResponseWriter, r *http.Request) {
	if err := s.s.MarkNotificationAsRead(r.Context(), chi.URLParam(r, "id"), requestUser(r)); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "notification not found")
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to mark notification read: %s", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) markAllNotificationsAsRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireSelf(w, r)
	if !ok {
		return
	}

	if err := s.s.MarkAllNotificationsAsRead(r.Context(), userID); err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to mark notifications read: %s", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requireSelf allows profile-scoped routes only for the profile's owner.
func (s server) requireSelf(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := requestUser(r)

	if chi.URLParam(r, "id") != userID {
		api.WriteError(w, http.StatusForbidden, "forbidden")
		return "", false
	}

	return userID, true
}

func (s server) createRequest(w http.ResponseWriter, r *http.Request) {
	var req CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	out, err := s.s.CreateRequest(r.Context(), &service.CreateRequestParams{
		UserID:      requestUser(r),
		Title:       req.Title,
		Description: req.Description,
		BudgetRange: req.BudgetRange,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyContent) {
			api.WriteError(w, http.StatusBadRequest, "title is required")
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to create request: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIRequest(out))
}

func (s server) getRequests(w http.ResponseWriter, r *http.Request) {
	rr, err := s.s.GetRequests(r.Context())
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to get requests: %s", err.Error())
		return
	}

	out := make([]Request, len(rr))
	for i, v := range rr {
		out[i] = toAPIRequest(v)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) uploadMedia(w http.ResponseWriter, r *http.Request) {
	f, header, err := r.FormFile("file")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer f.Close()

	bucket := r.FormValue("bucket")
	if bucket == "" {
		bucket = blob.DefaultBucket
	}

	url, err := s.b.Save(bucket, header.Filename, f)
	if err != nil {
		if errors.Is(err, blob.ErrInvalidBucket) {
			api.WriteError(w, http.StatusBadRequest, "invalid bucket")
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to save media: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusCreated, UploadResponse{URL: url})
}

func extractPagination(r *http.Request) (uint16, uint32, error) {
	limit := uint16(defaultLimit)
	offset := uint32(0)

	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil || v == 0 {
			return 0, 0, errors.New("failed to parse limit")
		}

		if v > maxLimit {
			return 0, 0, errors.New("limit is too big")
		}

		limit = uint16(v)
	}

	if s := r.URL.Query().Get("offset"); s != "" {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return 0, 0, errors.New("failed to parse offset")
		}

		offset = uint32(v)
	}

	return limit, offset, nil
}
