package healthos

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Artemoon13/health-os/internal/config"
	"github.com/Artemoon13/health-os/internal/db"
	"github.com/Artemoon13/health-os/internal/logging"
	"github.com/Artemoon13/health-os/internal/model"
	"github.com/Artemoon13/health-os/internal/remote"
	"github.com/Artemoon13/health-os/internal/store"
)

// App wires one command invocation: config, local database, the entity
// store hydrated from disk, and the optional sync boundary.
type App struct {
	Cfg    *config.Config
	Log    *zap.SugaredLogger
	DB     *sql.DB
	Store  *store.Store
	Remote remote.Store
	Syncer *remote.Syncer
	UserID string
}

// withApp opens the local database, loads state, runs the day rollover
// if the calendar date advanced, executes run, and flushes any
// debounce-pending push before exit. Local save failures never fail
// the command.
func withApp(run func(app *App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	sqldb, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer sqldb.Close()
	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}

	snap, found, err := db.LoadState(sqldb)
	if err != nil {
		return err
	}
	var st *store.Store
	if found {
		st = store.NewFromSnapshot(snap)
	} else {
		st = store.New()
	}

	app := &App{Cfg: cfg, Log: log, DB: sqldb, Store: st}

	// Best-effort local persistence of every mutation.
	st.OnChange(func(s model.Snapshot) {
		if err := db.SaveState(sqldb, s); err != nil {
			log.Warnf("local save failed: %v", err)
		}
	})

	if err := app.connectRemote(); err != nil {
		return err
	}

	// Close out the previous day before the command touches anything.
	st.CloseDay(st.TodayISO())

	if err := run(app); err != nil {
		return err
	}

	// Short-lived process: deliver a still-pending debounced push now
	// instead of dropping it on exit.
	if app.Syncer != nil && app.Syncer.Pending() {
		if err := app.Syncer.Flush(context.Background()); err != nil {
			log.Warnf("sync push failed, state kept locally: %v", err)
		}
	}
	return nil
}

func (a *App) connectRemote() error {
	userID, err := db.Setting(a.DB, "sync_user_id")
	if err != nil {
		return err
	}
	a.UserID = userID
	if a.Cfg.SyncBackend == config.SyncDisabled || userID == "" {
		return nil
	}
	deviceID, err := db.DeviceID(a.DB)
	if err != nil {
		return err
	}
	rs, err := remote.NewStore(context.Background(), a.Cfg, deviceID)
	if err != nil {
		return err
	}
	a.Remote = rs
	a.Syncer = remote.NewSyncer(rs, userID, func() remote.Payload {
		return payloadFromSnapshot(a.Store.Snapshot())
	}, a.Cfg.SyncDebounce, a.Log)
	a.Store.OnChange(func(model.Snapshot) { a.Syncer.Schedule() })
	return nil
}

func payloadFromSnapshot(s model.Snapshot) remote.Payload {
	profile, goals, sleep := s.Profile, s.Goals, s.Sleep
	return remote.Payload{
		Profile:    &profile,
		Goals:      &goals,
		Sleep:      &sleep,
		FoodLog:    s.FoodLog,
		Activities: s.Activities,
		WeightLog:  s.WeightLog,
		Water:      s.WaterGlasses,
	}
}

func hydratePayload(p *remote.Payload) store.HydratePayload {
	water := p.Water
	return store.HydratePayload{
		Profile:    p.Profile,
		Goals:      p.Goals,
		Sleep:      p.Sleep,
		FoodLog:    p.FoodLog,
		Activities: p.Activities,
		WeightLog:  p.WeightLog,
		Water:      &water,
	}
}

func parseID(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return v, nil
}
