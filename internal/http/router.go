package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	clientHandler "github.com/dsandoval/suds/internal/http/client"
	productHandler "github.com/dsandoval/suds/internal/http/product"
	reportHandler "github.com/dsandoval/suds/internal/http/report"
	saleHandler "github.com/dsandoval/suds/internal/http/sale"
)

func New(
	productsV1 *productHandler.Handler,
	clientsV1 *clientHandler.Handler,
	salesV1 *saleHandler.Handler,
	reportsV1 *reportHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", productsV1.Routes)

		r.Route("/clients", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			clientsV1.Routes(r)
		})

		r.Route("/sales", salesV1.Routes)

		r.Route("/reports", reportsV1.Routes)
	})

	return router
}
