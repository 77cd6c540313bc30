package handlers

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	"churchapi/internal/security"
	"churchapi/internal/service"
)

// Services bundles everything the routes call into
type Services struct {
	Auth          *service.AuthService
	Users         *service.UserService
	Children      *service.ChildService
	Events        *service.EventService
	Checkins      *service.CheckinService
	Announcements *service.AnnouncementService
	Prayers       *service.PrayerService
	Donations     *service.DonationService
}

// RouterOptions configures the HTTP surface
type RouterOptions struct {
	CORSAllowedOrigins []string
	HidePasswordHash   bool
	// AuthRateLimiter throttles /auth/*; nil disables throttling
	AuthRateLimiter *security.RateLimiter
	// TrustProxyHeaders takes the client address from X-Forwarded-For or
	// X-Real-IP. Enable only behind a proxy that overwrites them.
	TrustProxyHeaders bool
}

// NewRouter wires every route. Each protected route declares the capability
// it needs here; handlers assume the check has passed.
func NewRouter(svc Services, opts RouterOptions) http.Handler {
	mw := NewMiddleware(svc.Auth)
	admin := mw.Require(service.AdminOnly)

	authHandler := NewAuthHandler(svc.Auth, opts.HidePasswordHash)
	userHandler := NewUserHandler(svc.Users, opts.HidePasswordHash)
	childHandler := NewChildHandler(svc.Children)
	eventHandler := NewEventHandler(svc.Events)
	checkinHandler := NewCheckinHandler(svc.Checkins)
	announcementHandler := NewAnnouncementHandler(svc.Announcements)
	prayerHandler := NewPrayerHandler(svc.Prayers)
	donationHandler := NewDonationHandler(svc.Donations)

	r := chi.NewRouter()
	if opts.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.RequestID)
	r.Use(Logging)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: opts.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}).Handler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, ErrRouteNotFound, "", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, ErrMethodNotAllowed, "", nil)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"msg": HealthMessage})
	})

	r.Route("/auth", func(r chi.Router) {
		if opts.AuthRateLimiter != nil {
			r.Use(opts.AuthRateLimiter.Middleware)
		}
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(mw.RequireAuth)
		r.Use(mw.Require(service.Authenticated))

		r.Route("/children", func(r chi.Router) {
			r.Get("/me", childHandler.ListMine)
			r.Post("/", childHandler.Create)
			r.Get("/{id}", childHandler.Get)
			r.Put("/{id}", childHandler.Update)
			r.Delete("/{id}", childHandler.Delete)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", eventHandler.List)
			r.Get("/{id}", eventHandler.Get)
			r.With(admin).Post("/", eventHandler.Create)
			r.With(admin).Put("/{id}", eventHandler.Update)
			r.With(admin).Delete("/{id}", eventHandler.Delete)
		})

		r.Route("/checkins", func(r chi.Router) {
			r.Post("/", checkinHandler.Create)
			r.Get("/by_child/{child_id}", checkinHandler.ListByChild)
			r.With(admin).Get("/by_event/{event_id}", checkinHandler.ListByEvent)
		})

		r.Route("/announcements", func(r chi.Router) {
			r.Get("/", announcementHandler.List)
			r.Get("/{id}", announcementHandler.Get)
			r.With(admin).Post("/", announcementHandler.Create)
		})

		r.Route("/prayers", func(r chi.Router) {
			r.Post("/", prayerHandler.Create)
			r.With(admin).Get("/", prayerHandler.List)
			r.With(admin).Patch("/{id}", prayerHandler.UpdateStatus)
		})

		r.Route("/donations", func(r chi.Router) {
			r.Get("/me", donationHandler.ListMine)
			r.Post("/", donationHandler.Create)
			r.With(admin).Get("/", donationHandler.List)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/me", userHandler.Me)
			r.Put("/me", userHandler.UpdateMe)
			r.With(admin).Get("/", userHandler.List)
		})
	})

	return r
}
