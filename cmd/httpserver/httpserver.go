// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/cash-card/internal/cashcarddelivery"
	"github.com/go-petr/cash-card/internal/cashcardrepo"
	"github.com/go-petr/cash-card/internal/cashcardservice"
	"github.com/go-petr/cash-card/internal/middleware"
	"github.com/go-petr/cash-card/internal/userdelivery"
	"github.com/go-petr/cash-card/internal/userrepo"
	"github.com/go-petr/cash-card/internal/userservice"
	"github.com/go-petr/cash-card/pkg/configpkg"
	"github.com/go-petr/cash-card/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	tokenMaker, err := tokenpkg.New(config.TokenType, config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	userService := userservice.New(userrepo.NewRepoPGS(conn))
	cashCardService := cashcardservice.New(cashcardrepo.NewRepoPGS(conn), config)

	userHandler := userdelivery.NewHandler(userService, tokenMaker, config.AccessTokenDuration)
	cashCardHandler := cashcarddelivery.NewHandler(cashCardService)

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/users", userHandler.Create)
	engine.POST("/users/login", userHandler.Login)

	authRoutes := engine.Group(cashcardservice.ResourceRoot).Use(middleware.AuthMiddleware(tokenMaker))

	authRoutes.POST("", cashCardHandler.Create)
	authRoutes.GET("", cashCardHandler.List)
	authRoutes.GET("/:id", cashCardHandler.Get)
	authRoutes.PUT("/:id", cashCardHandler.Update)
	authRoutes.DELETE("/:id", cashCardHandler.Delete)

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
