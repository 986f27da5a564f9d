package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raihanzaky/portfolio-backend/api"
	"github.com/raihanzaky/portfolio-backend/auth"
	"github.com/raihanzaky/portfolio-backend/config"
	"github.com/raihanzaky/portfolio-backend/database"
	"github.com/raihanzaky/portfolio-backend/images"
	"github.com/raihanzaky/portfolio-backend/localstore"
	"github.com/raihanzaky/portfolio-backend/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Info().Msg("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("Error loading .env file")
	}

	c := config.New()

	storePath := config.GetString(c, "STORE_PATH", "portfolio.db")
	local, err := localstore.Open(storePath)
	if err != nil {
		log.Error().Err(err).Msg("Error opening durable storage")
		os.Exit(1)
	}
	defer local.Close()

	// Connect to the hosted backend only when the remote config is present
	// and not the placeholder sentinels
	var remote *store.Remote
	remoteCfg := config.RemoteConfig(c)
	if remoteCfg.Configured() {
		db, err := database.Open(remoteCfg)
		if err != nil {
			log.Warn().Err(err).Msg("Remote backend unreachable, continuing with durable storage")
		} else {
			remote = &store.Remote{
				Experiences:  db.ExperienceRepo(),
				Certificates: db.CertificateRepo(),
				Projects:     db.ProjectRepo(),
			}
		}
	} else {
		log.Info().Msg("Remote backend not configured, using durable storage")
	}

	dataStore := store.New(local, remote)
	if err := dataStore.Init(context.Background()); err != nil {
		log.Error().Err(err).Msg("Error initializing data store")
		os.Exit(1)
	}
	log.Info().Str("mode", string(dataStore.Mode())).Msg("Data store ready")

	registry, err := images.NewRegistry(local)
	if err != nil {
		log.Error().Err(err).Msg("Error loading image registry")
		os.Exit(1)
	}
	processor := images.NewProcessor(registry)

	gate := auth.NewGate(local)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(api.Deps{
		Store:     dataStore,
		Gate:      gate,
		Processor: processor,
		Registry:  registry,
	})
	if err != nil {
		log.Error().Err(err).Msg("Error initializing server")
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
