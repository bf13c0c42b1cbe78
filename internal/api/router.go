package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/samandr77/microservices/dashboard/docs" //nolint:revive,nolintlint
	"github.com/samandr77/microservices/dashboard/internal/ui"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/clients", h.GetClients)
			r.Get("/clients/info", h.GetClientInfo)
			r.Get("/audit", h.AuditLog)

			r.Group(func(r chi.Router) {
				r.Use(mw.CanManageClients)

				r.Post("/clients", h.CreateClient)
				r.Put("/clients/update", h.UpdateClient)
				r.Delete("/clients", h.DeleteClient)
			})
		})
	})

	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(ui.Static()))))

	router.Group(func(r chi.Router) {
		r.Use(mw.Auth)

		r.Get("/", h.Dashboard)
		r.Post(ui.ToggleInputURL, h.ToggleInput)

		r.Group(func(r chi.Router) {
			r.Use(mw.CanManageClients)

			r.Post(ui.AddClientURL, h.OpenAddClientModal)
			r.Post(ui.CreateClientURL, h.SubmitAddClientModal)
		})
	})

	return router
}
