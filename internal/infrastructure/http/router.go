package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/yosefin19/sinac-turismo-api/internal/infrastructure/http/handlers"
	"github.com/yosefin19/sinac-turismo-api/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	UserHandler        *handlers.UserHandler
	ProfileHandler     *handlers.ProfileHandler
	GalleryHandler     *handlers.GalleryHandler
	AreaHandler        *handlers.AreaHandler
	DestinationHandler *handlers.DestinationHandler
	ReviewHandler      *handlers.ReviewHandler
	FavoriteHandler    *handlers.MarkHandler
	VisitedHandler     *handlers.MarkHandler
	HealthHandler      *handlers.HealthHandler
	RequireJWT         func(http.Handler) http.Handler
	RequireAdmin       func(http.Handler) http.Handler // runs after RequireJWT
	Log                zerolog.Logger
	Secure             func(http.Handler) http.Handler
	IPRateLimit        func(http.Handler) http.Handler
	CORS               func(http.Handler) http.Handler
	MediaDir           string // data repository root served at /data_repository/*
	Metrics            bool   // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	if cfg.IPRateLimit != nil {
		r.Use(cfg.IPRateLimit)
	}

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	if cfg.MediaDir != "" {
		fs := http.StripPrefix("/data_repository/", http.FileServer(http.Dir(cfg.MediaDir)))
		r.Get("/data_repository/*", fs.ServeHTTP)
	}

	// Public routes: authentication plus the read-only catalog the mobile
	// app shows before login.
	r.Post("/login", cfg.UserHandler.Login)
	r.Post("/add-user", cfg.UserHandler.Add)
	r.Post("/find-user", cfg.UserHandler.FindUser)
	r.Post("/reset-password", cfg.UserHandler.ResetPassword)
	r.Post("/add-profile", cfg.ProfileHandler.Add)
	r.Get("/users/{user_id}/profiles/", cfg.ProfileHandler.GetByUser)

	r.Get("/conservation-area", cfg.AreaHandler.List)
	r.Get("/conservation-area/{id}", cfg.AreaHandler.Get)

	r.Get("/tourist-destination", cfg.DestinationHandler.List)
	r.Get("/tourist-destination/season/{month}", cfg.DestinationHandler.Season)
	r.Get("/tourist-destination/{id}", cfg.DestinationHandler.Get)
	r.Get("/tourist-destination/{id}/reviews", cfg.ReviewHandler.ListByDestination)

	// Routes that require a bearer token.
	r.Group(func(r chi.Router) {
		r.Use(cfg.RequireJWT)

		r.Get("/user", cfg.UserHandler.Me)
		r.Post("/update-user", cfg.UserHandler.UpdateSelf)
		r.Delete("/delete-user", cfg.UserHandler.DeleteSelf)

		r.Get("/profile", cfg.ProfileHandler.Me)
		r.Post("/update-profile", cfg.ProfileHandler.UpdateSelf)
		r.Delete("/delete-profile", cfg.ProfileHandler.DeleteSelf)
		r.Get("/users/all/auth-profiles/", cfg.ProfileHandler.Me)
		r.Get("/profiles/photo/{type}", cfg.ProfileHandler.GetPhoto)
		r.Post("/profiles/photo/{type}", cfg.ProfileHandler.AddPhoto)
		r.Delete("/profiles/photo/{type}", cfg.ProfileHandler.DeletePhoto)

		r.Get("/profile/recommendation/", cfg.DestinationHandler.Recommendation)

		r.Get("/gallery", cfg.GalleryHandler.Get)
		r.Post("/add-gallery", cfg.GalleryHandler.Add)
		r.Post("/add-photo", cfg.GalleryHandler.AddPhotos)
		r.Delete("/delete-photo", cfg.GalleryHandler.DeletePhoto)

		r.Get("/tourist-destination/{id}/user-review", cfg.ReviewHandler.GetOwn)
		r.Post("/tourist-destination/{id}/user-review", cfg.ReviewHandler.Add)
		r.Patch("/tourist-destination/{id}/update-review", cfg.ReviewHandler.Update)
		r.Post("/tourist-destination/{id}/review-image", cfg.ReviewHandler.AddImage)
		r.Delete("/tourist-destination/{id}/user-review/{review_id}", cfg.ReviewHandler.Delete)

		r.Post("/add-favorite-destination/{id}", cfg.FavoriteHandler.Add)
		r.Delete("/delete-favorite-destination/{id}", cfg.FavoriteHandler.Remove)
		r.Get("/favorite-destination", cfg.FavoriteHandler.List)

		r.Post("/add-visited-destination/{id}", cfg.VisitedHandler.Add)
		r.Delete("/delete-visited-destination/{id}", cfg.VisitedHandler.Remove)
		r.Get("/visited-destination", cfg.VisitedHandler.List)
	})

	// Management routes: bearer token plus the admin flag.
	r.Group(func(r chi.Router) {
		r.Use(cfg.RequireJWT)
		r.Use(cfg.RequireAdmin)

		r.Get("/users", cfg.UserHandler.List)
		r.Get("/user/{id}", cfg.UserHandler.GetByID)
		r.Post("/update-user/{id}", cfg.UserHandler.UpdateByID)
		r.Delete("/delete-user/{id}", cfg.UserHandler.DeleteByID)

		r.Get("/profiles", cfg.ProfileHandler.List)
		r.Get("/profile/{id}", cfg.ProfileHandler.GetByID)
		r.Post("/update-profile/{id}", cfg.ProfileHandler.UpdateByID)
		r.Delete("/delete-profile/{id}", cfg.ProfileHandler.DeleteByID)
		r.Post("/profiles/photo/{type}/{id}", cfg.ProfileHandler.AddPhotoByID)
		r.Delete("/profiles/photo/{type}/{id}", cfg.ProfileHandler.DeletePhotoByID)

		r.Post("/add-conservation-area", cfg.AreaHandler.Add)
		r.Post("/add-conservation-area/{id}/photos", cfg.AreaHandler.AddPhotos)
		r.Post("/update-conservation-area/{id}", cfg.AreaHandler.Update)
		r.Post("/update-conservation-area/{id}/photos", cfg.AreaHandler.UpdatePhotos)
		r.Delete("/delete-conservation-area/{id}", cfg.AreaHandler.Delete)

		r.Post("/add-tourist-destination", cfg.DestinationHandler.Add)
		r.Post("/add-tourist-destination/{id}/photos", cfg.DestinationHandler.AddPhotos)
		r.Post("/update-tourist-destination/{id}", cfg.DestinationHandler.Update)
		r.Post("/update-tourist-destination/{id}/photos", cfg.DestinationHandler.UpdatePhotos)
		r.Delete("/delete-tourist-destination/{id}", cfg.DestinationHandler.Delete)
	})

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
