// Package server Hermes
//
// The Hermes is a social graph and messaging service for the wAt network
// (profiles, posts, likes, comments, follows, conversations, notifications)
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	"github.com/wat-net/hermes/internal/api"
	"github.com/wat-net/hermes/internal/blob"
	mm "github.com/wat-net/hermes/internal/middleware"
	"github.com/wat-net/hermes/internal/service"
	"github.com/wat-net/hermes/internal/token"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

// uploads go through this limit too, keep it large enough for post media
const maxBodySize = 8 << 20

// clients poll the unread counter at this interval, cache responses for it
const unreadCountTTL = 30 * time.Second

type server struct {
	s service.Service
	t *token.Issuer
	b *blob.Store
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, t *token.Issuer, b *blob.Store, r chi.Router, timeout time.Duration) {
	r.Use(
		api.FileServerMiddleware("/media/", b.Root()),
		api.RequestIDMiddleware,
		api.LoggerMiddleware,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		api.RecovererMiddleware,
		api.TimeoutMiddleware(timeout),
		api.BodyLimiterMiddleware(maxBodySize),
	)

	srv := server{
		s: s,
		t: t,
		b: b,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/register", srv.register)
		r.Post("/login", srv.login)

		r.Get("/posts", srv.getExplorePosts)
		r.Get("/posts/{id}", srv.getPost)
		r.Get("/posts/{id}/comments", srv.getComments)
		r.Get("/profiles/{id}", srv.getProfile)
		r.Get("/profiles/{id}/posts", srv.getUserPosts)
		r.Get("/search/posts", srv.searchPosts)
		r.Get("/search/profiles", srv.searchProfiles)
		r.Get("/requests", srv.getRequests)

		r.Group(func(r chi.Router) {
			r.Use(srv.authMiddleware)

			r.Post("/posts", srv.createPost)
			r.Post("/posts/{id}/like", srv.toggleLike)
			r.Get("/posts/{id}/like", srv.checkUserLiked)
			r.Post("/posts/{id}/comments", srv.addComment)

			r.Post("/profiles/{id}/follow", srv.follow)
			r.Delete("/profiles/{id}/follow", srv.unfollow)
			r.Get("/profiles/{id}/follow", srv.checkIsFollowing)

			r.Post("/conversations", srv.getOrCreateConversation)
			r.Get("/conversations", srv.getUserConversations)
			r.Get("/conversations/{id}/messages", srv.getMessages)
			r.Post("/conversations/{id}/messages", srv.sendMessage)
			r.Post("/conversations/{id}/read", srv.markMessagesAsRead)

			// the ownership check has to run on cache hits too, so it sits
			// outside Cached
			countHandler := mm.Cached(unreadCountTTL, srv.getUnreadNotificationCount)

			r.Get("/profiles/{id}/notifications", srv.getNotifications)
			r.Get("/profiles/{id}/notifications/count", func(w http.ResponseWriter, r *http.Request) {
				if _, ok := srv.requireSelf(w, r); !ok {
					return
				}

				countHandler(w, r)
			})
			r.Post("/profiles/{id}/notifications/read", srv.markAllNotificationsAsRead)
			r.Post("/notifications/{id}/read", srv.markNotificationAsRead)

			r.Post("/requests", srv.createRequest)
			r.Post("/media", srv.uploadMedia)
		})
	})
}
