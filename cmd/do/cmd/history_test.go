package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/brightlog/internal/app"
	"github.com/templui/brightlog/internal/config"
	"github.com/templui/brightlog/internal/model"
)

func TestPrintHistory(t *testing.T) {
	stores, err := app.OpenStores(&config.Config{
		DBDriver:     config.DriverSQLite,
		DBConnection: filepath.Join(t.TempDir(), "cli.db") + "?_pragma=foreign_keys(1)",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = stores.Close() })

	ctx := context.Background()
	alice := &model.UserProfile{UserUUID: "7b0d8f0e-6a55-4c8e-9a57-3f0b5d1c2e11", Nickname: "alice"}
	_, err = stores.Profiles.Create(ctx, alice)
	require.NoError(t, err)
	require.NoError(t, stores.Goals.Upsert(ctx, &model.GoalsRecord{
		UserUUID: alice.UserUUID,
		Nickname: alice.Nickname,
		Goals:    model.Goals{Career: "ship v1"},
	}))
	for i, text := range []string{"first", "second"} {
		require.NoError(t, stores.Logs.Create(ctx, &model.LogEntry{
			UserUUID: alice.UserUUID,
			Nickname: alice.Nickname,
			Date:     time.Date(2024, 5, 1+i, 0, 0, 0, 0, time.UTC),
			Entry:    text,
		}))
	}

	var buf bytes.Buffer
	require.NoError(t, printHistory(ctx, &buf, stores, "alice", 5))
	out := buf.String()
	assert.Contains(t, out, "career:        ship v1")
	assert.Contains(t, out, "body_mind:     (not set)")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("2024-05-02  second")), bytes.Index(buf.Bytes(), []byte("2024-05-01  first")))

	err = printHistory(ctx, &buf, stores, "nobody", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nobody")
}
