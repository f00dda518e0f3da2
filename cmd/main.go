package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/shifty-eyed/esp-ac-control/internal/clock"
	"github.com/shifty-eyed/esp-ac-control/internal/device"
	"github.com/shifty-eyed/esp-ac-control/internal/gpio"
	"github.com/shifty-eyed/esp-ac-control/internal/handlers"
	"github.com/shifty-eyed/esp-ac-control/internal/logger"
	"github.com/shifty-eyed/esp-ac-control/internal/mqtt"
	"github.com/shifty-eyed/esp-ac-control/internal/repository"
	"github.com/shifty-eyed/esp-ac-control/internal/server"
	"github.com/shifty-eyed/esp-ac-control/internal/service"
)

func main() {
	// init logger early; reconfigure level once config is loaded
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	// open DB
	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// appliance I/O
	port, err := openGPIO()
	if err != nil {
		log.Fatalw("failed to init gpio", "err", err)
	}
	defer func() {
		if cerr := port.Close(); cerr != nil {
			log.Errorw("failed to close gpio", "err", cerr)
		}
	}()

	sensor := device.NewSensor(port,
		viper.GetInt("appliance.debounce_samples"),
		viper.GetDuration("appliance.debounce_interval"))
	actuator := device.NewActuator(port, sensor, loadTimings(), log)

	clk, err := clock.NewSystemClock(
		viper.GetString("clock.timezone"),
		viper.GetString("clock.resync_url"))
	if err != nil {
		log.Fatalw("failed to init clock", "err", err)
	}

	pub, err := openPublisher()
	if err != nil {
		log.Fatalw("failed to connect mqtt broker", "err", err)
	}
	defer func() { _ = pub.Close() }()

	// wire dependencies
	repos := repository.NewRepository(db)
	services := service.NewService(repos, sensor, actuator, clk, pub,
		viper.GetInt("journal.capacity"), log)
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// hydrate the schedule table once at startup
	if err := services.Schedules.LoadAll(ctx); err != nil {
		log.Fatalw("failed to load schedules", "err", err)
	}
	log.Infow("startup",
		"appliance_on", sensor.Read(),
		"schedules", len(services.Schedules.ListValid()))

	// start scheduler loop
	go services.Scheduler.Run(ctx, viper.GetDuration("scheduler.tick"))

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.SetDefault("port", "8080")
	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetDefault("db.path", "app.db")
	viper.SetDefault("gpio.chip", "gpiochip0")
	viper.SetDefault("gpio.button_pin", gpio.PinButton)
	viper.SetDefault("gpio.sense_pin", gpio.PinSense)
	viper.SetDefault("appliance.debounce_samples", device.DefaultSamples)
	viper.SetDefault("appliance.debounce_interval", device.DefaultSampleInterval)
	viper.SetDefault("scheduler.tick", service.DefaultTick)
	viper.SetDefault("journal.capacity", service.DefaultJournalCapacity)
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "app.db")
		dbPath = "app.db"
	}
	return repository.InitDB(dbPath)
}

func openGPIO() (gpio.Port, error) {
	return gpio.NewRealPort(
		viper.GetString("gpio.chip"),
		viper.GetInt("gpio.button_pin"),
		viper.GetInt("gpio.sense_pin"))
}

func loadTimings() device.Timings {
	t := device.DefaultTimings()
	if d := viper.GetDuration("appliance.press"); d > 0 {
		t.Press = d
	}
	if d := viper.GetDuration("appliance.settle"); d > 0 {
		t.Settle = d
	}
	if d := viper.GetDuration("appliance.cooldown"); d > 0 {
		t.Cooldown = d
	}
	if n := viper.GetInt("appliance.max_attempts"); n > 0 {
		t.MaxAttempts = n
	}
	return t
}

func openPublisher() (mqtt.Publisher, error) {
	broker := viper.GetString("mqtt.broker")
	if broker == "" {
		return mqtt.NewNoopPublisher(), nil
	}
	return mqtt.NewRealPublisher(broker, viper.GetString("mqtt.topic"))
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests (possibly a running actuation) to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
