// Package httpapi exposes the REST surface of the server: auth, favorites,
// and the weather/country lookup proxies. It verifies bearer tokens at the
// boundary and hands the authenticated username to the flows as an explicit
// argument.
package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/enzomv1999/GloboClima/internal/logging"
	"github.com/enzomv1999/GloboClima/internal/server/config"
	"github.com/enzomv1999/GloboClima/internal/server/countries"
	"github.com/enzomv1999/GloboClima/internal/server/services"
	"github.com/enzomv1999/GloboClima/internal/server/weatherapi"
)

type Server struct {
	address        string
	logger         logging.Logger
	users          *services.UserService
	favorites      *services.FavoriteService
	weather        *weatherapi.Client
	countries      *countries.Client
	jwtSecret      []byte
	allowedOrigins []string
}

func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService, fs *services.FavoriteService, wc *weatherapi.Client, cc *countries.Client) *Server {
	return &Server{
		address:        cfg.EndpointAddrHTTP,
		logger:         l.With("module", "http_server"),
		users:          us,
		favorites:      fs,
		weather:        wc,
		countries:      cc,
		jwtSecret:      []byte(cfg.SecretKey),
		allowedOrigins: splitOrigins(cfg.CORSAllowedOrigins),
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// Handler builds the gin engine with all middleware and routes registered.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.accessLog())

	corsConfig := cors.DefaultConfig()
	if len(s.allowedOrigins) == 1 && s.allowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = s.allowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		api.GET("/health", s.handleHealth)

		api.POST("/auth/register", s.handleRegister)
		api.POST("/auth/login", s.handleLogin)

		api.GET("/weather", s.handleWeather)
		api.GET("/city/search", s.handleCitySearch)
		api.GET("/country/:code", s.handleCountry)

		favorite := api.Group("/favorite", s.requireAuth())
		{
			favorite.POST("", s.handleCreateFavorite)
			favorite.GET("", s.handleListFavorites)
			favorite.DELETE("/:id", s.handleDeleteFavorite)
		}
	}

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is done.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
