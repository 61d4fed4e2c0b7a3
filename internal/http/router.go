package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/gestor-maestro/gestor/internal/auth"
	advisorHandler "github.com/gestor-maestro/gestor/internal/http/advisor"
	authHandler "github.com/gestor-maestro/gestor/internal/http/auth"
	fixedcostHandler "github.com/gestor-maestro/gestor/internal/http/fixedcost"
	obligationHandler "github.com/gestor-maestro/gestor/internal/http/obligation"
	pricingHandler "github.com/gestor-maestro/gestor/internal/http/pricing"
)

func New(
	authSvc *auth.Service,
	allowedOrigins []string,
	authV1 *authHandler.Handler,
	obligationsV1 *obligationHandler.Handler,
	fixedCostsV1 *fixedcostHandler.Handler,
	pricingV1 *pricingHandler.Handler,
	advisorV1 *advisorHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))

		r.Route("/auth", authV1.Routes)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(authSvc))

			r.Route("/obligations", obligationsV1.Routes)
			r.Get("/payments", obligationsV1.ListPayments)
			r.Route("/fixed-costs", fixedCostsV1.Routes)
			r.Route("/pricing", pricingV1.Routes)

			if advisorV1 != nil {
				r.Route("/advisor", advisorV1.Routes)
			}
		})
	})

	return router
}
