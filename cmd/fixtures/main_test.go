package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/judgekit/team-fixtures/fixtures"
	"github.com/judgekit/team-fixtures/internal/database"
	"github.com/judgekit/team-fixtures/internal/logger"
	"github.com/judgekit/team-fixtures/models"
)

// useTempDatabase points the CLI at a fresh SQLite file and returns its path.
func useTempDatabase(t *testing.T) string {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "cli.db")
	t.Setenv("DATABASE_DRIVER", database.DriverSQLite)
	t.Setenv("DATABASE_DSN", dsn)
	t.Setenv("DATABASE_LOG_LEVEL", "silent")
	t.Setenv("LOG_LEVEL", "error")
	return dsn
}

func openCategories(t *testing.T, dsn string) *models.TeamCategoriesRepository {
	t.Helper()
	db, err := database.Open(context.Background(), database.Config{Driver: database.DriverSQLite, DSN: dsn, LogLevel: "silent"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	return models.NewTeamCategoriesRepository(db)
}

func TestRunMigratesAndLoads(t *testing.T) {
	dsn := useTempDatabase(t)

	err := run([]string{"--env-file=", "--migrate", "default-team-categories", "enable-self-register"}, &bytes.Buffer{})
	require.NoError(t, err)

	observers, err := openCategories(t, dsn).GetByName(context.Background(), "Observers")
	require.NoError(t, err)
	assert.True(t, observers.AllowSelfRegistration)
}

func TestRunList(t *testing.T) {
	useTempDatabase(t)
	var out bytes.Buffer

	err := run([]string{"--env-file=", "--list"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "default-team-categories\nenable-self-register\n", out.String())
}

func TestRunFailures(t *testing.T) {
	testCases := []struct {
		name      string
		args      []string
		expectErr error
	}{
		{
			name:      "No fixture names",
			args:      []string{"--migrate"},
			expectErr: errNoFixtures,
		},
		{
			name:      "Unknown fixture",
			args:      []string{"--migrate", "nope"},
			expectErr: fixtures.ErrUnknownFixture,
		},
		{
			name:      "Observers missing",
			args:      []string{"--migrate", "enable-self-register"},
			expectErr: fixtures.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			useTempDatabase(t)

			err := run(append([]string{"--env-file="}, tc.args...), &bytes.Buffer{})

			assert.ErrorIs(t, err, tc.expectErr)
		})
	}
}

func TestRunHelp(t *testing.T) {
	assert.NoError(t, run([]string{"--help"}, &bytes.Buffer{}))
}

func TestServeLogsShutdownTimeout(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	entered := make(chan struct{})
	release := make(chan struct{})
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
	})}

	var logs bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, srv, ln, logger.NewWithWriter(&logs, "info", "test"), 10*time.Millisecond)
	}()

	go http.Get("http://" + ln.Addr().String() + "/slow")
	<-entered
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
	close(release)

	assert.Contains(t, logs.String(), "Server shutdown failed")
	assert.Contains(t, logs.String(), context.DeadlineExceeded.Error())
}
