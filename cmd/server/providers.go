package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/senthamizh/panchangam/internal/bootstrap"
	"github.com/senthamizh/panchangam/internal/domain/chart"
	"github.com/senthamizh/panchangam/internal/domain/location"
	"github.com/senthamizh/panchangam/internal/domain/muhurta"
	"github.com/senthamizh/panchangam/internal/domain/panchang"
	"github.com/senthamizh/panchangam/internal/domain/tamilcal"
	"github.com/senthamizh/panchangam/internal/infra/config"
	"github.com/senthamizh/panchangam/internal/infra/ephemeris"
	"github.com/senthamizh/panchangam/internal/infra/panchangstore"
	"github.com/senthamizh/panchangam/internal/infra/suncache"
	httpiface "github.com/senthamizh/panchangam/internal/interface/http"
	"github.com/senthamizh/panchangam/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New()

	eph := ephemeris.NewMeeus()
	cities := location.NewRegistry()

	sunLookup := provideSunLookup(cfg, log)
	sunTimes := muhurta.NewResolver(eph, sunLookup)
	store := providePanchangStore(cfg, log)

	chartSvc := chart.NewService(eph, cities, log)
	muhurtaSvc := muhurta.NewService(sunTimes, cities, log)
	panchangSvc := panchang.NewService(eph, cities, store, cfg.Panchang.Cache.TTL, log)
	tamilcalSvc := tamilcal.NewService(eph, panchangSvc, cities, log)

	handler := httpiface.NewHandler(chartSvc, muhurtaSvc, panchangSvc, tamilcalSvc, cities, log)
	server := httpiface.NewRouter(cfg, handler)
	return bootstrap.NewApp(cfg, log, server), nil
}

func provideSunLookup(cfg *config.Config, log *slog.Logger) muhurta.Lookup {
	store, err := suncache.Load(cfg.Panchang.SunCachePath)
	if err != nil {
		log.Error("sun cache load failed, continuing without it", "path", cfg.Panchang.SunCachePath, "error", err)
		return nil
	}
	if store.Len() > 0 {
		log.Info("sun cache loaded", "path", cfg.Panchang.SunCachePath, "entries", store.Len())
	}
	return store
}

func providePanchangStore(cfg *config.Config, log *slog.Logger) panchang.Store {
	if cfg.Panchang.Cache.Enabled {
		opt, err := buildValkeyOptions(cfg.Panchang.Cache.Addr)
		if err != nil {
			log.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return panchangstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			log.Error("failed to create valkey client, falling back to memory store", "error", err)
			return panchangstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			log.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			log.Info("panchang valkey store enabled", "addr", cfg.Panchang.Cache.Addr)
			return panchangstore.NewValkeyStore(client, "panchang")
		}
	}
	return panchangstore.NewMemoryStore()
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
