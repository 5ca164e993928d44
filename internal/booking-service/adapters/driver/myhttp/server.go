package myhttp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"bookmycar/internal/booking-service/adapters/driven/bm"
	"bookmycar/internal/booking-service/adapters/driven/db"
	"bookmycar/internal/booking-service/adapters/driven/places"
	"bookmycar/internal/booking-service/adapters/driver/myhttp/handle"
	"bookmycar/internal/booking-service/adapters/driver/myhttp/middleware"
	"bookmycar/internal/booking-service/adapters/driver/myhttp/ws"
	"bookmycar/internal/booking-service/core/ports/driven"
	"bookmycar/internal/booking-service/core/services"
	"bookmycar/internal/config"
	"bookmycar/internal/mylogger"

	"github.com/go-playground/validator/v10"
)

var ErrServerClosed = errors.New("Server closed")

const WaitTime = 10

type Server struct {
	mux    *http.ServeMux
	cfg    *config.Config
	srv    *http.Server
	mylog  mylogger.Logger
	db     *db.DB
	mb     driven.IBookingBroker
	ctx    context.Context
	appCtx context.Context
	mu     sync.Mutex
	wg     sync.WaitGroup
}

func NewServer(ctx, appCtx context.Context, mylog mylogger.Logger, cfg *config.Config) *Server {
	s := &Server{
		ctx:    ctx,
		appCtx: appCtx,
		cfg:    cfg,
		mylog:  mylog,
		mux:    http.NewServeMux(),
	}

	return s
}

// Run initializes routes and starts listening. It returns when the server stops.
func (s *Server) Run() error {
	mylog := s.mylog.Action("server_started")

	// Initialize database connection
	db, err := db.New(s.ctx, s.cfg.DB, mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	mylog.Info("Successful database connection")

	// Initialize RabbitMQ connection
	mb, err := bm.New(s.appCtx, *s.cfg.RabbitMq, s.mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	s.mb = mb
	mylog.Info("Successful message broker connection")

	// Configure routes and handlers
	s.Configure()

	s.mu.Lock()
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%v", s.cfg.Srv.BookingServicePort),
		Handler: s.mux,
	}
	s.mu.Unlock()

	mylog = mylog.WithGroup("details").With("port", s.cfg.Srv.BookingServicePort)

	mylog.Info("server is running")
	return s.startHTTPServer()
}

// Stop provides a programmatic shutdown. Accepts a context for timeout control.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mylog.Info("Shutting down HTTP server...")

	s.wg.Wait()

	if s.srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, WaitTime*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.mylog.Error("Failed to shut down HTTP server gracefully", err)
			return fmt.Errorf("http server shutdown: %w", err)
		}
	}

	if s.mb != nil {
		if err := s.mb.Close(); err != nil {
			s.mylog.Error("Failed to close message broker", err)
		} else {
			s.mylog.Info("Message broker closed")
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.mylog.Error("Failed to close database", err)
			return fmt.Errorf("db close: %w", err)
		}
		s.mylog.Info("Database closed")
	}

	s.mylog.Info("HTTP server shut down gracefully")
	return nil
}

func (s *Server) startHTTPServer() error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		} else {
			errCh <- nil
		}
	}()

	select {
	case <-s.ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Configure wires repositories, services, handlers and routes.
func (s *Server) Configure() {
	// Repositories
	userRepo := db.NewUserRepo(s.db)
	bookingRepo := db.NewBookingRepo(s.db)
	cardRepo := db.NewCardRepo(s.db)
	placeSearch := places.NewStaticSearch()

	// websocket dispatcher
	dispatcher := ws.NewDispatcher(s.mylog)

	// services
	authService := services.NewAuthService(s.appCtx, s.cfg, userRepo, s.mylog)
	bookingService := services.NewBookingService(s.appCtx, s.mylog, bookingRepo, cardRepo, s.mb, dispatcher)
	historyService := services.NewHistoryService(s.appCtx, bookingRepo, s.mylog)
	cardService := services.NewCardService(s.appCtx, cardRepo, s.mylog)

	validate := validator.New()

	// handlers
	authHandler := handle.NewAuthHandler(authService, validate, s.mylog)
	flowHandler := handle.NewFlowHandler(bookingService, validate, s.mylog)
	historyHandler := handle.NewHistoryHandler(historyService, s.mylog)
	cardHandler := handle.NewCardHandler(cardService, validate, s.mylog)
	placeHandler := handle.NewPlaceHandler(placeSearch, s.mylog)

	authMiddleware := middleware.NewAuthMiddleware(s.cfg.App.JwtSecret)

	// Register routes
	s.mux.Handle("POST /auth/register", authHandler.Register())
	s.mux.Handle("POST /auth/login", authHandler.Login())

	s.mux.Handle("GET /places", authMiddleware.Wrap(placeHandler.Search()))

	s.mux.Handle("GET /flow", authMiddleware.Wrap(flowHandler.Snapshot()))
	s.mux.Handle("POST /flow/pickup", authMiddleware.Wrap(flowHandler.SelectPickup()))
	s.mux.Handle("POST /flow/destination", authMiddleware.Wrap(flowHandler.SelectDestination()))
	s.mux.Handle("POST /flow/vehicle-class", authMiddleware.Wrap(flowHandler.SelectVehicleClass()))
	s.mux.Handle("POST /flow/confirm", authMiddleware.Wrap(flowHandler.Confirm()))
	s.mux.Handle("POST /flow/payment-method", authMiddleware.Wrap(flowHandler.SelectPaymentMethod()))
	s.mux.Handle("POST /flow/rating", authMiddleware.Wrap(flowHandler.SubmitRating()))
	s.mux.Handle("POST /flow/reset", authMiddleware.Wrap(flowHandler.Reset()))

	s.mux.Handle("GET /bookings", authMiddleware.Wrap(historyHandler.List()))
	s.mux.Handle("POST /bookings/{booking_id}/favorite", authMiddleware.Wrap(historyHandler.ToggleFavorite()))
	s.mux.Handle("DELETE /bookings/{booking_id}", authMiddleware.Wrap(historyHandler.Delete()))

	s.mux.Handle("GET /cards", authMiddleware.Wrap(cardHandler.List()))
	s.mux.Handle("POST /cards", authMiddleware.Wrap(cardHandler.Add()))
	s.mux.Handle("POST /cards/{card_id}/default", authMiddleware.Wrap(cardHandler.SetDefault()))
	s.mux.Handle("DELETE /cards/{card_id}", authMiddleware.Wrap(cardHandler.Delete()))

	// websocket routes
	s.mux.Handle("/ws/passengers/{user_id}", dispatcher.WsHandler())
}
