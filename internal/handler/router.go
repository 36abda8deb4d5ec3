package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vaultpass/passforge/internal/middleware"
	"github.com/vaultpass/passforge/internal/service"
)

// Services are the dependencies of the HTTP API. Auth and Settings are
// optional; their routes are only mounted when both are present and an
// operator passphrase is configured.
type Services struct {
	Generator *service.GeneratorService
	Share     *service.ShareService
	Auth      *service.AuthService
	Settings  *service.SettingsService
	JWTSecret string
}

// NewRouter mounts every API route.
func NewRouter(s Services) http.Handler {
	genHandler := NewGeneratorHandler(s.Generator)
	shareHandler := NewShareHandler(s.Share)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/generate", genHandler.HandleGenerate)
		r.Post("/generate/bulk", genHandler.HandleBulk)
		r.Post("/evaluate", genHandler.HandleEvaluate)
		r.Get("/wordlists", genHandler.HandleWordLists)
		r.Get("/presets", genHandler.HandlePresets)

		r.Post("/share", shareHandler.HandleCreate)
		r.Get("/share/{token}", shareHandler.HandleResolve)

		if s.Auth == nil || !s.Auth.Enabled() || s.Settings == nil {
			return
		}
		authHandler := NewAuthHandler(s.Auth)
		settingsHandler := NewSettingsHandler(s.Settings)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(s.JWTSecret))
			r.Get("/settings", settingsHandler.HandleGet)
			r.Put("/settings", settingsHandler.HandlePut)
		})
	})

	return r
}
