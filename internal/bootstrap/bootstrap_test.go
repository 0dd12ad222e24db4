package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykatyhoney/sunflower-land/internal/config"
	"github.com/ykatyhoney/sunflower-land/internal/domain"
	"github.com/ykatyhoney/sunflower-land/internal/event"
	"github.com/ykatyhoney/sunflower-land/internal/eventlog"
	"github.com/ykatyhoney/sunflower-land/internal/farm"
	"github.com/ykatyhoney/sunflower-land/internal/reconcile"
	"github.com/ykatyhoney/sunflower-land/internal/session"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		LogLevel:                "debug",
		LogFormat:               config.LogFormatText,
		Environment:             "test",
		StorageDriver:           config.StorageDriverSQLite,
		SQLitePath:              filepath.Join(dir, "data", "farm.db"),
		EventRetryDelay:         10 * time.Millisecond,
		EventDeadLetterPath:     filepath.Join(dir, "dl", "deadletter.jsonl"),
		WorkerCount:             1,
		WorkerQueueSize:         4,
		EventLogRetentionDays:   30,
		EventLogCleanupInterval: time.Hour,
		MaxSessionBalance:       decimal.NewFromInt(255),
	}
}

func TestOpenStorage_SQLite(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	store, err := OpenStorage(ctx, cfg)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Pinger.Ping(ctx))
	assert.FileExists(t, cfg.SQLitePath)

	_, err = store.Farms.GetFarm(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrFarmNotFound)
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.StorageDriver = "mongo"

	_, err := OpenStorage(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"mongo"`)
}

func TestInitializeEventSystem(t *testing.T) {
	cfg := testConfig(t)
	cfg.EventMaxRetries = 0

	bus, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	require.NotNil(t, bus)
	require.NotNil(t, publisher)
	defer publisher.Shutdown(context.Background())

	assert.DirExists(t, filepath.Dir(cfg.EventDeadLetterPath))
}

func TestPublisherSettingsFrom(t *testing.T) {
	defaults := publisherSettingsFrom(&config.Config{})
	assert.Equal(t, EventDefaultMaxRetries, defaults.maxRetries)
	assert.Equal(t, EventDefaultRetryDelay, defaults.retryDelay)
	assert.Equal(t, EventDefaultDeadLetterPath, defaults.deadLetterPath)

	set := publisherSettingsFrom(&config.Config{EventMaxRetries: 2, EventRetryDelay: time.Second, EventDeadLetterPath: "x/dl.jsonl"})
	assert.Equal(t, publisherSettings{maxRetries: 2, retryDelay: time.Second, deadLetterPath: "x/dl.jsonl"}, set)
}

// TestWiring runs one event through the same collaborators cmd/app builds
// and checks it lands in the event log.
func TestWiring(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	store, err := OpenStorage(ctx, cfg)
	require.NoError(t, err)

	bus, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)

	history := eventlog.NewService(store.EventLog)
	require.NoError(t, RegisterEventHandlers(EventHandlerDependencies{EventBus: bus, EventLogService: history}))

	processor := farm.NewDefaultProcessor()
	sessions := session.NewService(store.Farms, processor,
		reconcile.NewValidator(processor, reconcile.DefaultCaps(), cfg.MaxSessionBalance),
		publisher, session.Options{})

	pool, sched := StartBackgroundJobs(cfg, history)

	f, err := sessions.CreateFarm(ctx)
	require.NoError(t, err)
	_, err = sessions.Apply(ctx, f.ID, []byte(`{"type":"seed.planted","expansionIndex":0,"index":0,"seed":"Sunflower Seed"}`))
	require.NoError(t, err)

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	GracefulShutdown(shutdownCtx, ShutdownComponents{
		Scheduler:          sched,
		WorkerPool:         pool,
		SessionService:     sessions,
		ResilientPublisher: publisher,
	})

	events, err := history.History(ctx, f.ID, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, string(event.FarmEventApplied), events[0].EventType)

	require.NoError(t, store.Close())
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}

func TestSetupLogger(t *testing.T) {
	t.Run("stdout only", func(t *testing.T) {
		cfg := testConfig(t)

		f, err := SetupLogger(cfg)
		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("with log dir", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.LogDir = filepath.Join(t.TempDir(), "logs")

		f, err := SetupLogger(cfg)
		require.NoError(t, err)
		require.NotNil(t, f)
		defer f.Close()

		entries, err := os.ReadDir(cfg.LogDir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2024-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

	cleanupLogs(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, LogFileRetentionCount)
	assert.NotContains(t, logs, fmt.Sprintf(LogFileNamePattern, "2024-01-01_00-00-00"))
	assert.Contains(t, logs, fmt.Sprintf(LogFileNamePattern, "2024-01-12_00-00-00"))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}
