// Package staticcache is a small HTTP file server that serves GET
// requests through an in-memory LRU content cache, falling back to a
// persistent content store on a miss.
package staticcache

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/static-cache/static-cache/core"
	"github.com/static-cache/static-cache/storage"
)

const notFoundAsset = "/404.html"

// Server answers GET requests by resolving the request path through
// the content pipeline. It implements http.Handler.
type Server struct {
	pipeline     *core.Pipeline
	files        storage.Store
	notFoundPath string
	router       chi.Router
}

// Options carries the server's collaborators. Files is the store the
// not-found asset is read from; it is deliberately separate from the
// pipeline so the asset is re-read on every not-found event instead
// of being cached.
type Options struct {
	Pipeline    *core.Pipeline
	Files       storage.Store
	ServerFiles string
}

// NewServer wires up the request router around the given
// collaborators.
func NewServer(opts Options) *Server {
	s := &Server{
		pipeline:     opts.Pipeline,
		files:        opts.Files,
		notFoundPath: opts.ServerFiles + notFoundAsset,
	}

	r := chi.NewRouter()
	r.Get("/d20", s.handleDice)
	r.Get("/*", s.handleContent)
	s.router = r

	return s
}

// FromConfig builds a fully wired server from a Config: content
// store per the configured backend, LRU cache, resolution pipeline
// and router. It verifies the not-found asset is loadable so a
// misconfiguration surfaces at startup rather than on the first
// failed request.
func FromConfig(cfg Config) (*Server, error) {
	var store storage.Store
	if cfg.Storage == "sqlite" {
		sqliteStore, err := storage.NewSQLiteStore(cfg.DB)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	} else {
		store = storage.NewFileStore()
	}

	pipeline := core.NewPipeline(
		core.NewCache(cfg.CacheSize),
		store,
		core.Resolver{Root: cfg.ServerRoot},
	)

	s := NewServer(Options{
		Pipeline:    pipeline,
		Files:       store,
		ServerFiles: cfg.ServerFiles,
	})

	if _, err := s.files.Load(s.notFoundPath); err != nil {
		return nil, err
	}
	return s, nil
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	entry, err := s.pipeline.Resolve(r.URL.Path)
	if err != nil {
		s.respondNotFound(w, r)
		return
	}
	log.Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", http.StatusOK).
		Int("size", entry.Size).
		Msg("Sending response to client")
	sendResponse(w, http.StatusOK, entry.ContentType, entry.Content)
}

// respondNotFound serves the fixed not-found asset. The asset is
// read from the files store on every not-found event and is never
// cached. The server cannot report failures to clients without it,
// so a missing asset halts the process.
func (s *Server) respondNotFound(w http.ResponseWriter, r *http.Request) {
	body, err := s.files.Load(s.notFoundPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", s.notFoundPath).Msg("Cannot load not-found asset")
	}
	log.Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", http.StatusNotFound).
		Msg("Sending response to client")
	sendResponse(w, http.StatusNotFound, core.MimeType(s.notFoundPath), body)
}

func sendResponse(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("Error writing to client")
	}
}
