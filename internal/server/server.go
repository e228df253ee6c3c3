// Package server boots the Tradeport HTTP server: config, logging, Mongo,
// Redis, storage, queue workers, event listeners, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/tradeport/app/jobs"
	"github.com/shashiranjanraj/tradeport/app/models"
	"github.com/shashiranjanraj/tradeport/app/repositories"
	"github.com/shashiranjanraj/tradeport/app/routes"
	"github.com/shashiranjanraj/tradeport/app/services"
	"github.com/shashiranjanraj/tradeport/config"
	"github.com/shashiranjanraj/tradeport/pkg/cache"
	"github.com/shashiranjanraj/tradeport/pkg/database"
	"github.com/shashiranjanraj/tradeport/pkg/event"
	"github.com/shashiranjanraj/tradeport/pkg/logger"
	"github.com/shashiranjanraj/tradeport/pkg/metrics"
	"github.com/shashiranjanraj/tradeport/pkg/middleware"
	"github.com/shashiranjanraj/tradeport/pkg/queue"
	"github.com/shashiranjanraj/tradeport/pkg/reqid"
	"github.com/shashiranjanraj/tradeport/pkg/router"
	"github.com/shashiranjanraj/tradeport/pkg/storage"
	"github.com/shashiranjanraj/tradeport/pkg/ws"
)

// Start boots every subsystem and serves until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelBoot()
	if err := database.EnsureIndexes(bootCtx); err != nil {
		logger.Warn("index creation failed", "error", err)
	}

	if config.LogToMongo() {
		text := slog.NewJSONHandler(os.Stdout, nil)
		mongoSink := logger.NewMongoHandler(database.C(database.ColLogs))
		logger.SetHandler(logger.NewMultiHandler(text, mongoSink))
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, running without it", "error", err)
	}
	storage.Connect()

	if cache.RDB != nil {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	queue.UseMongo(database.C(database.ColFailedJobs))
	jobs.RegisterAll()

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	queue.StartWorkers(workerCtx, 4)

	go ws.OrderFeed.Run()
	registerListeners()

	r := router.New()
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.CORSOptionsFromConfig()),
		middleware.RateLimitFromConfig(),
	)
	routes.Register(r)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("tradeport listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	stopWorkers()
	event.Flush()
	if err := database.Disconnect(shutdownCtx); err != nil {
		logger.Error("mongo disconnect", "error", err)
	}
	return nil
}

// registerListeners wires domain events to the websocket feed and the
// notification queue.
func registerListeners() {
	orders := repositories.NewOrderRepository(database.C(database.ColOrders))
	users := repositories.NewUserRepository(database.C(database.ColUsers))

	event.Listen("order.status_changed", func(payload interface{}) {
		change, ok := payload.(services.StatusChange)
		if !ok {
			return
		}

		ws.OrderFeed.BroadcastJSON(change)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		order, err := orders.FindByID(ctx, change.OrderID)
		if err != nil {
			logger.Warn("order lookup for notification failed", "order_id", change.OrderID, "error", err)
			return
		}
		buyer, err := users.FindByID(ctx, order.UserID)
		if err != nil {
			logger.Warn("buyer lookup for notification failed", "user_id", order.UserID, "error", err)
			return
		}

		if err := queue.Dispatch(&jobs.OrderStatusChangedJob{
			OrderID:    change.OrderID,
			BuyerEmail: buyer.Email,
			BuyerName:  buyer.Name,
			From:       string(change.From),
			To:         string(change.To),
		}); err != nil {
			logger.Error("dispatch order status job", "error", err)
		}
	})

	event.Listen("profile.submitted", func(payload interface{}) {
		p, ok := payload.(*models.OnboardingProgress)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		seller, err := users.FindByID(ctx, p.SellerID)
		if err != nil {
			logger.Warn("seller lookup for notification failed", "seller_id", p.SellerID, "error", err)
			return
		}

		if err := queue.Dispatch(&jobs.ProfileSubmittedJob{
			SellerID:    p.SellerID,
			SellerName:  seller.Name,
			SellerEmail: seller.Email,
		}); err != nil {
			logger.Error("dispatch profile submitted job", "error", err)
		}
	})

	event.Listen("profile.reviewed", func(payload interface{}) {
		decision, ok := payload.(services.ReviewDecision)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		seller, err := users.FindByID(ctx, decision.SellerID)
		if err != nil {
			logger.Warn("seller lookup for notification failed", "seller_id", decision.SellerID, "error", err)
			return
		}

		if err := queue.Dispatch(&jobs.ProfileReviewedJob{
			SellerEmail: seller.Email,
			SellerName:  seller.Name,
			SellerPhone: seller.Phone,
			Approved:    decision.Approved,
		}); err != nil {
			logger.Error("dispatch profile reviewed job", "error", err)
		}
	})
}
