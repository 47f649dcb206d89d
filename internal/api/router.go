package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/softsales/api/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
			r.Post("/refresh", h.Refresh)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/individual", h.CreateIndividualClient)
			r.Post("/business", h.CreateBusinessClient)
			r.Put("/individual/{client_id}", h.UpdateIndividualClient)
			r.Put("/business/{client_id}", h.UpdateBusinessClient)
			r.Delete("/{client_id}", h.DeleteClient)
			r.Post("/{client_id}/software/{software_id}/agreement", h.CreateAgreement)
			r.Post("/{client_id}/agreement/{agreement_id}/payment", h.RecordPayment)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/totalIncome/{currency}", h.TotalIncome)
			r.Get("/productIncome/{currency}/software/{software_id}", h.ProductIncome)
		})
	})

	return mux
}
