package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"account_manager/internal/handlers"
	"account_manager/internal/logger"
	"account_manager/internal/repository"
	"account_manager/internal/repository/db"
	"account_manager/internal/server"
	"account_manager/internal/service"
	"account_manager/internal/session"
	"account_manager/internal/storage"

	"github.com/spf13/viper"
)

func main() {
	// load config.yml first; the log level lives there
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	// open DB
	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// photo blob store
	photos, err := openPhotoStore()
	if err != nil {
		log.Fatalw("failed to init photo store", "err", err)
	}

	// session store behind the signed cookie
	sessions := session.NewManager(
		viper.GetString("session.secret"),
		session.NewMemoryStore(viper.GetDuration("session.ttl")),
	)

	// wire dependencies
	repos := repository.NewRepository(database)
	services := service.NewService(repos, photos)
	apiHandler := handlers.NewHandler(services, sessions, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "accounts.db")
		dbPath = "accounts.db"
	}
	return db.InitDB(dbPath)
}

// openPhotoStore picks the configured blob-store backend.
func openPhotoStore() (storage.PhotoStore, error) {
	if viper.GetString("storage.backend") == "minio" {
		return storage.NewMinIOStore(
			context.Background(),
			viper.GetString("storage.minio.endpoint"),
			viper.GetString("storage.minio.access_key"),
			viper.GetString("storage.minio.secret_key"),
			viper.GetString("storage.minio.bucket"),
			viper.GetBool("storage.minio.use_ssl"),
		)
	}
	dir := viper.GetString("storage.dir")
	if dir == "" {
		dir = "uploads"
	}
	return storage.NewDiskStore(dir)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
