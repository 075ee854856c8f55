package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/greenfieldhq/provisioning/internal/bootstrap"
	"github.com/greenfieldhq/provisioning/internal/config"
	fb "github.com/greenfieldhq/provisioning/internal/infrastructure/firebase"
	"github.com/greenfieldhq/provisioning/internal/infrastructure/memstore"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	deps := bootstrap.Dependencies{Config: cfg, Log: log}

	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		store := memstore.New()
		deps.Identities = store
		deps.Profiles = store
		log.Warn("using in-memory store; created accounts do not survive restart")

	case config.StoreBackendFirebase:
		creds := fb.Credentials{
			ProjectID:   cfg.FirebaseProjectID,
			ClientEmail: cfg.FirebaseClientEmail,
			PrivateKey:  cfg.FirebasePrivateKey,
		}
		if !creds.Complete() {
			log.Warn("firebase credentials missing; provisioning endpoints will report 500")
			break
		}

		client, err := fb.NewClient(context.Background(), creds)
		if err != nil {
			log.Fatalf("init firebase: %v", err)
		}
		defer client.Close()

		deps.Identities = fb.NewIdentityStore(client)
		deps.Profiles = fb.NewProfileStore(client)
		if cfg.AdminGuardEnabled {
			deps.Verifier = fb.NewTokenVerifier(client)
		}
	}

	if cfg.AdminGuardEnabled && deps.Verifier == nil {
		log.Warn("ADMIN_GUARD enabled but no verifier available; user routes are unguarded")
	}

	server := bootstrap.NewHTTPServer(deps)

	go func() {
		if err := server.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
}
