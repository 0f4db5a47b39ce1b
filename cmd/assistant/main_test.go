package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yourusername/voice-assistant/config"
)

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"serve"},
		{"ask"},
		{"history", "export"},
		{"history", "import"},
		{"history", "clear"},
	} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	flag := rootCmd.PersistentFlags().Lookup("user")
	require.NotNil(t, flag)
	assert.Equal(t, "cli", flag.DefValue)
}

func TestOpenStorage(t *testing.T) {
	a := &app{}
	history, profiles, err := a.openStorage(&config.Config{HistoryBackend: config.BackendMemory, MaxHistorySize: 5})
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.NotNil(t, profiles)
	assert.Empty(t, a.closers)

	history, profiles, err = a.openStorage(&config.Config{
		HistoryBackend: config.BackendSQLite,
		HistoryDBPath:  filepath.Join(t.TempDir(), "assistant.db"),
		MaxHistorySize: 5,
	})
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.NotNil(t, profiles)
	assert.Len(t, a.closers, 1)
	assert.NoError(t, a.Close())
	assert.Empty(t, a.closers)

	_, _, err = a.openStorage(&config.Config{HistoryBackend: "redis"})
	assert.Error(t, err)
}

func TestNewBot(t *testing.T) {
	prevCfg, prevLogger := cfg, logger
	t.Cleanup(func() { cfg, logger = prevCfg, prevLogger })
	logger = zap.NewNop()

	cfg = &config.Config{}
	bot, err := newBot(&app{})
	require.NoError(t, err)
	assert.Nil(t, bot)

	// Noto'g'ri token bilan xato serverlar ishga tushishidan oldin qaytadi
	cfg = &config.Config{TelegramToken: "not-a-token"}
	bot, err = newBot(&app{})
	assert.Error(t, err)
	assert.Nil(t, bot)
}
