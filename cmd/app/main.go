package main

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/slot-appointment-service/internal/adapters/in/http"
	inrabbitmq "github.com/suchimauz/slot-appointment-service/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/slot-appointment-service/internal/adapters/out/availability"
	"github.com/suchimauz/slot-appointment-service/internal/adapters/out/cache"
	"github.com/suchimauz/slot-appointment-service/internal/adapters/out/clock"
	"github.com/suchimauz/slot-appointment-service/internal/adapters/out/logger"
	outrabbitmq "github.com/suchimauz/slot-appointment-service/internal/adapters/out/rabbitmq"
	"github.com/suchimauz/slot-appointment-service/internal/config"
	"github.com/suchimauz/slot-appointment-service/internal/core/ports/out"
	"github.com/suchimauz/slot-appointment-service/internal/core/services/slot_appointment_service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера с таймзоной
	mainLogger, err := logger.NewZapLogger(cfg)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer mainLogger.Sync()
	logger := mainLogger.WithModule("Main")

	logger.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        config.TimeZone.String(),
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
		"maxMonths":       cfg.Appointment.MaxMonthsForAnAppointment,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация адаптеров
	systemClock := clock.NewSystemClock()
	availabilityAdapter := availability.NewAvailabilityAdapter(cfg, mainLogger.WithModule("AvailabilityAdapter"))

	var cacheAdapter out.CachePort
	lruCache, err := cache.NewLRUCacheAdapter(cfg, mainLogger.WithModule("CacheAdapter"))
	if err != nil {
		logger.Error("app.cache.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	if lruCache != nil {
		cacheAdapter = lruCache
	}

	var eventAdapter out.EventPort
	publisher, err := outrabbitmq.NewBookingPublisher(cfg, mainLogger.WithModule("BookingPublisher"))
	if err != nil {
		logger.Error("app.rabbitmq.publisher.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	if publisher != nil {
		eventAdapter = publisher
		defer func() {
			if err := publisher.Stop(); err != nil {
				logger.Error("app.rabbitmq.publisher.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	// Инициализация сервиса
	slotAppointmentService := slot_appointment_service.NewSlotAppointmentService(
		cfg,
		availabilityAdapter,
		cacheAdapter,
		eventAdapter,
		systemClock,
		mainLogger,
	)

	// Настройка RabbitMQ слушателя только если он включен
	listener, err := inrabbitmq.NewCacheHitListener(
		slotAppointmentService,
		cfg,
		mainLogger.WithModule("RabbitMQListener"),
	)
	if err != nil {
		logger.Error("app.rabbitmq.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	if listener != nil {
		if err := listener.Start(ctx); err != nil {
			logger.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				logger.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	// Настройка HTTP сервера
	router := gin.Default()
	controller := http.NewSlotAppointmentController(
		slotAppointmentService,
		systemClock,
		cfg,
		mainLogger.WithModule("HttpController"),
	)
	controller.RegisterRoutes(router)

	server := &nethttp.Server{
		Addr:    cfg.HTTP.Host + ":" + cfg.HTTP.Port,
		Handler: router,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			logger.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	logger.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("app.http.shutdown_failed", out.LogFields{
			"error": err.Error(),
		})
	}

	// Дополнительное логирование для разработки
	if cfg.IsLocal() {
		logger.Debug("app.config.debug", out.LogFields{
			"config": map[string]interface{}{
				"http": map[string]string{
					"host": cfg.HTTP.Host,
					"port": cfg.HTTP.Port,
				},
				"availability": map[string]string{
					"url":      cfg.Availability.URL,
					"username": cfg.Availability.Username,
				},
				"rabbitmq": map[string]interface{}{
					"enabled":  cfg.RabbitMQ.Enabled,
					"exchange": cfg.RabbitMQ.Exchange,
					"queue":    cfg.RabbitMQ.Queue,
				},
				"cache": map[string]interface{}{
					"enabled": cfg.Cache.Enabled,
					"size":    cfg.Cache.Size,
					"ttl":     cfg.Cache.TTL.String(),
				},
			},
		})
	}
}
