package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "github.com/skidvd/HomeAdvisor/internal/adapters/http_server"
	"github.com/skidvd/HomeAdvisor/internal/adapters/observability"
	"github.com/skidvd/HomeAdvisor/internal/app"
	"github.com/skidvd/HomeAdvisor/internal/shared"
	mysqlrepo "github.com/skidvd/HomeAdvisor/internal/storage/mysql"
	"github.com/skidvd/HomeAdvisor/internal/validation"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	q := app.NewQueryService(repo)
	c := app.NewCommandService(repo)
	v := validation.New()

	// http
	srv := server.New(cfg.ThrottleRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, C: c, V: v})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
