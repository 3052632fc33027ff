package apiapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	authsvc "github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/services/auth"
	matchessvc "github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/services/matches"
	ratesvc "github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/services/rate"
	swipesvc "github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/services/swipes"
	"github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/transport/http/handlers"
)

type Dependencies struct {
	JWTManager   *authsvc.JWTManager
	RateLimiter  *ratesvc.Limiter
	SwipeService *swipesvc.Service
	MatchService *matchessvc.Service
	Logger       *zap.Logger
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	swipeHandler := handlers.NewSwipeHandler(deps.SwipeService)
	matchesHandler := handlers.NewMatchesHandler(deps.MatchService)

	authMW := AuthMiddleware(deps.JWTManager, deps.Logger)
	rateMW := RateLimitMiddleware(deps.RateLimiter, deps.Logger)

	r.Get("/healthz", healthHandler.Get)
	r.With(authMW, rateMW).Post("/swipe", swipeHandler.Handle)
	r.With(authMW).Get("/matches", matchesHandler.Handle)

	r.Route("/v1", func(r chi.Router) {
		r.With(authMW, rateMW).Post("/swipes", swipeHandler.Handle)
		r.With(authMW).Get("/matches", matchesHandler.Handle)
	})
}
