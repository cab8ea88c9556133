package wire

import (
	"net/http"

	"coffee-house/internal/adaptor"
	"coffee-house/internal/data/repository"
	"coffee-house/internal/usecase"
	"coffee-house/pkg/middleware"
	"coffee-house/pkg/payment"
	"coffee-house/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, gateway payment.Gateway, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, gateway, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, logger)
	wireMenu(r, handler.Menu, repo, logger)
	wireOrder(r, handler.Order, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)
	wireEvent(r, handler.Event, repo, logger)
	wireTicket(r, handler.Ticket, handler.Analytics, repo, logger)
	wireBlog(r, handler.Blog, repo, logger)
	wireMessage(r, handler.Message, repo, logger)
	wireContent(r, handler.Content, handler.Analytics, repo, logger)

	// Uploaded images are served straight off disk
	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.App.UploadDir)))
	r.Get("/uploads/*", uploads.ServeHTTP)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
