package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/unft/unftd/internal/config"
	"github.com/unft/unftd/internal/interface/web"
	"github.com/urfave/cli/v2"
)

func mainAction(ctx *cli.Context) error {
	cfg, err := config.LoadConfig(ctx)
	if err != nil {
		return fmt.Errorf("invalid config: %s", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %s", err)
	}

	log.SetLevel(log.Level(cfg.LogLevel))
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.Infof("config: %s", cfg)

	svc, err := cfg.AppService()
	if err != nil {
		return fmt.Errorf("failed to initialize app service: %s", err)
	}

	srv := web.NewServer(cfg.Port, svc)
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	log.Infof("listening on port %d", cfg.Port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		cfg.Close()
		return fmt.Errorf("server error: %s", err)
	case <-sigChan:
	}

	log.Info("shutting down...")

	if err := srv.Stop(); err != nil {
		log.WithError(err).Warn("error while stopping server")
	}
	cfg.Close()

	log.Info("shutdown complete, exiting")
	return nil
}

func main() {
	viper.SetEnvPrefix("UNFTD")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	app := cli.NewApp()
	app.Name = "unftd"
	app.Usage = "cross-chain nft bridge daemon"
	app.Flags = config.Flags()
	app.Action = mainAction

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
