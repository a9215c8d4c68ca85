package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/dmitrijs2005/leo/internal/buildinfo"
	"github.com/dmitrijs2005/leo/internal/client/api"
	"github.com/dmitrijs2005/leo/internal/client/cli"
	"github.com/dmitrijs2005/leo/internal/client/config"
	"github.com/dmitrijs2005/leo/internal/client/download"
	"github.com/dmitrijs2005/leo/internal/client/i18n"
	"github.com/dmitrijs2005/leo/internal/client/render"
	"github.com/dmitrijs2005/leo/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("%v", err)
	}

	gw, err := api.New(cfg.APIBaseURL,
		api.WithLogger(logger),
		api.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
	)
	if err != nil {
		log.Fatalf("%v", err)
	}

	saver := download.NewDirSaver(cfg.DownloadDir)
	ctx := context.Background()

	tr := i18n.NewTranslator(cfg.Locale, logger)
	app := cli.NewApp(cli.Deps{
		Backend:    gw,
		Saver:      saver,
		Translator: tr,
		Renderer:   render.New(os.Stdout, tr),
		In:         os.Stdin,
		Out:        os.Stdout,
		Log:        logger,
	})

	logger.Info(ctx, "starting", "api", gw.BaseURL(), "downloads", saver.Dir, "locale", cfg.Locale)
	app.Run(ctx, cfg.HealthInterval)
}
