package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/pawdopt/internal/adoptapet"
	"github.com/mrlokans/pawdopt/internal/config"
	"github.com/mrlokans/pawdopt/internal/database"
	"github.com/mrlokans/pawdopt/internal/database/animals"
	"github.com/mrlokans/pawdopt/internal/database/settings"
	"github.com/mrlokans/pawdopt/internal/filter"
	"github.com/mrlokans/pawdopt/internal/follow"
	http_controllers "github.com/mrlokans/pawdopt/internal/http"
	"github.com/mrlokans/pawdopt/internal/mockfeed"
	"github.com/mrlokans/pawdopt/internal/notify"
	"github.com/mrlokans/pawdopt/internal/settingsstore"
	"github.com/mrlokans/pawdopt/internal/sync"
	"github.com/mrlokans/pawdopt/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM. SIGKILL cannot be caught.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue and scheduler)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Pawdopt v%s", version)

	if cfg.AdoptAPet.APIKey == "" {
		log.Printf("WARNING: AdoptAPet API key is not set. Primary source will likely fail and the fallback feed will be used. Set 'ADOPTAPET_API_KEY' environment variable.")
	}

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	animalsRepo := animals.NewRepository(db.DB)
	settingsRepo := settings.NewRepository(db.DB)
	settingsStore := settingsstore.New(settingsRepo, cfg)

	// Remote sources, primary first
	primary := adoptapet.NewClient(adoptapet.Config{
		BaseURL:     cfg.AdoptAPet.BaseURL,
		APIKey:      cfg.AdoptAPet.APIKey,
		CityOrZip:   cfg.AdoptAPet.CityOrZip,
		GeoRange:    cfg.AdoptAPet.GeoRange,
		StartNumber: cfg.AdoptAPet.StartNumber,
		EndNumber:   cfg.AdoptAPet.EndNumber,
		Timeout:     cfg.Sync.FetchTimeout,
	})
	fallback := mockfeed.NewClient(cfg.MockFeed.URL, cfg.Sync.FetchTimeout)

	engine := sync.NewEngine(animalsRepo, []sync.Source{primary, fallback}, settingsStore.CacheTTL)
	followService := follow.NewService(animalsRepo)
	filters := filter.NewManager()

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			MaxRetries:        cfg.Tasks.MaxRetries,
			RetryDelay:        cfg.Tasks.RetryDelay,
			TaskTimeout:       cfg.Tasks.TaskTimeout,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewRefreshQueue(engine),
		)

		// Start task workers in background
		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Daily notification scheduler
	scheduler := notify.NewScheduler(settingsStore, animalsRepo, notify.LogSender{})
	if err := scheduler.Start(context.Background()); err != nil {
		log.Printf("WARNING: Failed to start notification scheduler: %v", err)
	}

	// Build router configuration with all dependencies
	routerCfg := http_controllers.RouterConfig{
		Database:      db,
		Version:       version,
		AnimalsStore:  animalsRepo,
		FollowService: followService,
		Engine:        engine,
		Filters:       filters,
		SettingsStore: settingsStore,
		TaskClient:    taskClient,
		Scheduler:     scheduler,
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		scheduler.Stop()
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
