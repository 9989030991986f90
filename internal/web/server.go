package web

import (
	"net/http"

	"cricket-app/internal/logging"
	"cricket-app/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

type Options struct {
	// StrictPayloads rejects create/update bodies missing any field with a
	// 400 instead of storing NULL for it.
	StrictPayloads bool
}

type Server struct {
	store     store.Store
	logger    *logging.Logger
	validator *validator.Validate
	opts      Options
}

func NewServer(store store.Store, logger *logging.Logger, opts Options) *Server {
	if logger == nil {
		logger = logging.Default()
	}
	return &Server{
		store:     store,
		logger:    logger.With("component", "players"),
		validator: validator.New(),
		opts:      opts,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(withRequestID)
	r.Use(s.logRequests)
	r.Use(s.recoverPanic)
	r.Use(middleware.StripSlashes)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Route("/players", func(r chi.Router) {
		r.Get("/", s.handlePlayerList)
		r.Post("/", s.handlePlayerCreate)
		r.Get("/{playerID}", s.handlePlayerShow)
		r.Put("/{playerID}", s.handlePlayerUpdate)
		r.Delete("/{playerID}", s.handlePlayerDelete)
	})

	return r
}
