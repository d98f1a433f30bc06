// Package server Kairos
//
// Kairos is the post lifecycle and time-economy engine of a social-content
// platform: posting and reacting consume and grant per-post time, funded by
// token transfers to the platform treasury.
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
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	mm "github.com/kairos-net/kairos/internal/middleware"
	"github.com/kairos-net/kairos/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const maxBodySize = 64 * 1024

// AccountHeader carries the acting account of a mutating call. Verifying that
// the caller actually is this account is the host's concern, not ours.
const AccountHeader = "X-Kairos-Account"

type server struct {
	s service.Service
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, timeout time.Duration) {
	r.Use(
		loggerMiddleware,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		requestIDMiddleware,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		bodyLimiterMiddleware(maxBodySize),
	)

	srv := server{
		s: s,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/posts", srv.createPost)
		r.Post("/posts/{uuid}/like", srv.likePost)
		r.Post("/posts/{uuid}/dislike", srv.dislikePost)
		r.Post("/posts/{uuid}/time/withdraw", srv.withdrawTime)

		r.Get("/posts", srv.listPosts)
		r.Get("/posts/{uuid}", srv.getPost)
		r.Get("/posts/{uuid}/nft", srv.getPostNFT)

		r.Get("/accounts/{account}/stats", mm.Cached(time.Minute, srv.getAccountStats))
		r.Get("/accounts/{account}/posts/{uuid}/stats", srv.getOwnPostStats)
		r.Get("/accounts/{account}/balance", srv.getBalance)
	})
}
