package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempLogDir(t *testing.T) {
	t.Helper()
	prev := logDir
	logDir = filepath.Join(t.TempDir(), "logs")
	t.Cleanup(func() {
		logDir = prev
		log.SetOutput(os.Stderr)
	})
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	useTempLogDir(t)

	logFile := setupLogging(false, uuid.New())
	assert.Nil(t, logFile)
	assert.Equal(t, io.Discard, log.Writer())

	_, err := os.Stat(logDir)
	assert.True(t, os.IsNotExist(err), "no directory without debug")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	useTempLogDir(t)
	id := uuid.New()

	logFile := setupLogging(true, id)
	require.NotNil(t, logFile)
	defer logFile.Close()

	log.Println("Test log message")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), id.String())
	assert.Contains(t, string(data), "Test log message")

	assert.NotEqual(t, os.Stdout, log.Writer())
	assert.NotEqual(t, os.Stderr, log.Writer())
}

func TestSetupLogging_Rotation(t *testing.T) {
	useTempLogDir(t)
	require.NoError(t, os.MkdirAll(logDir, 0755))

	logPath := filepath.Join(logDir, logFileName)
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644))

	logFile := setupLogging(true, uuid.New())
	require.NotNil(t, logFile)
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	assert.True(t, rotatedFound, "expected rotated log file")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))
}
