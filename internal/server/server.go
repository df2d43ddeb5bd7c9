package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "lello/docs"
	"lello/internal/auth"
	"lello/internal/config"
	"lello/internal/database"
	"lello/internal/handler"
	"lello/internal/middleware"
	"lello/internal/repository"
	"lello/internal/service"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Log    *zap.Logger
}

func Init(cfg *config.Config, log *zap.Logger) (*Server, error) {
	db, err := database.Open(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)

	return &Server{
		Engine: NewRouter(db, tokens, log),
		DB:     db,
		Config: cfg,
		Log:    log,
	}, nil
}

// NewRouter registers every route on a fresh engine. Collection and instance
// routes answer with and without a trailing slash.
func NewRouter(db *gorm.DB, tokens *auth.TokenManager, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(log, true))

	store := repository.NewStore(db)
	svc := service.New(store, log)

	userHandler := handler.NewUserHandler(store.Users, tokens, log)
	boardHandler := handler.NewBoardHandler(svc, store.Grants, log)
	grantHandler := handler.NewGrantHandler(svc, store.Grants, log)
	listHandler := handler.NewListHandler(svc, store.Grants, log)
	cardHandler := handler.NewCardHandler(svc, store.Grants, log)
	labelHandler := handler.NewLabelHandler(svc, store.Grants, log)
	teamHandler := handler.NewTeamHandler(svc, store.Grants, log)
	notificationHandler := handler.NewNotificationHandler(svc, log)

	// Public routes
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)
	r.GET("/health", health(db))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(tokens))
	{
		slashed(authorized, http.MethodPost, "/boards", boardHandler.Create)
		slashed(authorized, http.MethodGet, "/boards", boardHandler.GetAll)
		slashed(authorized, http.MethodGet, "/boards/:id", boardHandler.GetByID)
		slashed(authorized, http.MethodPut, "/boards/:id", boardHandler.Update)
		slashed(authorized, http.MethodPatch, "/boards/:id", boardHandler.Update)
		slashed(authorized, http.MethodDelete, "/boards/:id", boardHandler.Delete)
		authorized.GET("/boards/:id/lists", boardHandler.Lists)
		authorized.GET("/boards/:id/audits", boardHandler.Audits)
		authorized.GET("/boards/:id/calendar-events", boardHandler.CalendarEvents)

		authorized.POST("/boards/:id/grants", grantHandler.ShareBoard)
		authorized.GET("/boards/:id/grants", grantHandler.GetBoardShares)
		authorized.DELETE("/boards/:id/grants/:user_id", grantHandler.RemoveShare)

		slashed(authorized, http.MethodPost, "/teams", teamHandler.Create)
		slashed(authorized, http.MethodGet, "/teams/:id", teamHandler.GetByID)
		authorized.POST("/teams/:id/members/:user_id", teamHandler.AddMember)

		slashed(authorized, http.MethodPost, "/lists", listHandler.Create)
		slashed(authorized, http.MethodGet, "/lists", listHandler.GetAll)
		slashed(authorized, http.MethodGet, "/lists/:id", listHandler.GetByID)
		slashed(authorized, http.MethodPut, "/lists/:id", listHandler.Update)
		slashed(authorized, http.MethodPatch, "/lists/:id", listHandler.Update)
		slashed(authorized, http.MethodDelete, "/lists/:id", listHandler.Delete)
		authorized.GET("/lists/:id/cards", listHandler.Cards)

		slashed(authorized, http.MethodPost, "/cards", cardHandler.Create)
		slashed(authorized, http.MethodGet, "/cards", cardHandler.GetAll)
		slashed(authorized, http.MethodGet, "/cards/:id", cardHandler.GetByID)
		slashed(authorized, http.MethodPut, "/cards/:id", cardHandler.Update)
		slashed(authorized, http.MethodPatch, "/cards/:id", cardHandler.Update)
		slashed(authorized, http.MethodDelete, "/cards/:id", cardHandler.Delete)
		authorized.GET("/cards/:id/checklist", cardHandler.Checklist)
		authorized.PUT("/cards/:id/checklist", cardHandler.SetChecklist)
		authorized.POST("/cards/:id/checklist/elements", cardHandler.AddElement)
		authorized.POST("/cards/:id/labels/:label_id", cardHandler.AddLabel)
		authorized.DELETE("/cards/:id/labels/:label_id", cardHandler.RemoveLabel)
		authorized.POST("/cards/:id/assignees/:user_id", cardHandler.AssignUser)
		authorized.DELETE("/cards/:id/assignees/:user_id", cardHandler.UnassignUser)

		slashed(authorized, http.MethodPost, "/labels", labelHandler.Create)
		slashed(authorized, http.MethodGet, "/labels", labelHandler.GetAll)
		slashed(authorized, http.MethodGet, "/labels/:id", labelHandler.GetByID)
		slashed(authorized, http.MethodPut, "/labels/:id", labelHandler.Update)
		slashed(authorized, http.MethodPatch, "/labels/:id", labelHandler.Update)
		slashed(authorized, http.MethodDelete, "/labels/:id", labelHandler.Delete)

		authorized.GET("/notifications", notificationHandler.GetMine)
	}
	return r
}

func slashed(g *gin.RouterGroup, method, path string, h gin.HandlerFunc) {
	g.Handle(method, path, h)
	g.Handle(method, path+"/", h)
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		s.Log.Info("Server running", zap.String("port", s.Config.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Log.Fatal("Failed to listen", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.Log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		sqlDB.Close()
	}
	s.Log.Info("Server exited properly")
}
