package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/BuzzLyutic/tasklist-server/internal/handler"
)

type RouterConfig struct {
	SavePath string
	// StaticDir is served on GET/HEAD when set; otherwise every GET is 404.
	StaticDir   string
	LogRequests bool
}

func NewRouter(h *handler.TaskListHandler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter() // Создаем роутер
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if cfg.LogRequests {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(handler.CORS)

	r.Post(cfg.SavePath, h.Save)

	if cfg.StaticDir != "" {
		files := http.FileServer(http.Dir(cfg.StaticDir))
		r.Get("/*", files.ServeHTTP)
		r.Head("/*", files.ServeHTTP)
	}

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	return r
}
