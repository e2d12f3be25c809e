package main

import (
	"os"
	"os/signal"
	"syscall"

	httpmock "github.com/jhoicas/Repuestos-sync/internal/interfaces/http"
	"github.com/jhoicas/Repuestos-sync/pkg/config"
	"github.com/jhoicas/Repuestos-sync/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	log.Info().
		Str("env", cfg.App.Env).
		Str("addr", cfg.Mock.Addr).
		Msg("iniciando almacén de listas simulado")

	app := httpmock.NewApp(httpmock.NewStoreHandler())

	go func() {
		if err := app.Listen(cfg.Mock.Addr); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("apagando almacén simulado")
	_ = app.Shutdown()
}
