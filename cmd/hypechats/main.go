package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/nexuzy/hypechats-go/api"
	"github.com/nexuzy/hypechats-go/auth"
	"github.com/nexuzy/hypechats-go/credstore"
	"github.com/nexuzy/hypechats-go/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("hypechats")
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	username := flag.String("username", "", "username for login")
	password := flag.String("password", "", "password for login")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		return err
	}
	setupLogging(cfg)
	displayAppName(cfg.GetAppName())

	service, store, err := buildService(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.GetConnectTimeout())*time.Second)
	defer cancel()

	switch flag.Arg(0) {
	case "login":
		result, err := service.Login(ctx, *username, *password)
		if err != nil {
			return errors.Wrap(err, result.Message)
		}
		fmt.Printf("Logged in as %s (user id %d)\n", store.Username(), store.UserID())
	case "logout":
		result, _ := service.Logout(ctx)
		// the local session is gone either way
		fmt.Printf("Logged out (remote: %s)\n", result.State)
	case "status":
		if store.IsLoggedIn() {
			fmt.Printf("Logged in as %s (user id %d)\n", store.Username(), store.UserID())
		} else {
			fmt.Println("Not logged in")
		}
	default:
		return errors.New("usage: hypechats [flags] login|logout|status")
	}
	return nil
}

func buildService(cfg config.Config) (*auth.Service, *credstore.Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, nil, errors.Wrap(err, "user config dir")
	}

	keys := credstore.NewKeyringSource(cfg.GetKeyringService())
	store, err := credstore.New(filepath.Join(dir, "hypechats", "session.enc"), keys)
	if err != nil {
		return nil, nil, err
	}

	client, err := api.NewClient(cfg, store)
	if err != nil {
		return nil, nil, err
	}

	service, err := auth.NewService(store, client)
	if err != nil {
		return nil, nil, err
	}
	return service, store, nil
}

func setupLogging(cfg config.Config) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if cfg.GetEnv() == "DEV" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func displayAppName(appName string) {
	myFigure := figure.NewFigure(appName, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
