package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/callboardhq/callboard/internal/config"
	"github.com/callboardhq/callboard/internal/database"
	"github.com/callboardhq/callboard/internal/github"
	"github.com/callboardhq/callboard/internal/handler"
	"github.com/callboardhq/callboard/internal/queue"
	"github.com/callboardhq/callboard/internal/repository"
	"github.com/callboardhq/callboard/internal/router"
	"github.com/callboardhq/callboard/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, cache and rate limiting disabled")
	}

	gh, err := github.NewClient(cfg.GitHubToken, cfg.GitHubRepo, cfg.GitHubBranch, cfg.GitHubPathPrefix)
	if err != nil {
		// The commit backend and the file endpoints answer 503 without a
		// client; the rest of the service runs fine.
		log.Printf("github: %v (file endpoints disabled)", err)
		gh = nil
	}

	castingRepo := repository.NewCastingRepo(db)
	directoryRepo := repository.NewDirectoryRepo(db)
	resourceRepo := repository.NewResourceRepo(db)

	var dirStore store.DirectoryStore
	if cfg.DirectoryUseDatabase {
		dirStore = store.NewDatabaseDirectoryStore(directoryRepo)
		log.Println("directory backend: database")
	} else {
		dirStore = store.NewCommitFileDirectoryStore(gh, cfg.DirectoryFilePath, "")
		log.Println("directory backend: commit file")
	}

	pub := handler.NewPublicHandler(castingRepo, dirStore, resourceRepo)
	adm := handler.NewAdminHandler(cfg, dirStore, gh)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()
	router.RegisterPublicRoutes(e, pub, rdb, cacheCfg, rlCfg)
	router.RegisterAdminRoutes(e, adm, rdb, rlCfg)

	go queue.StartAuditConsumer()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
