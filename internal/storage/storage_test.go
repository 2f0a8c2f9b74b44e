package storage

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/romancalc/internal/constants"
)

func TestStorageManagerPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		methodCall   func(*Manager) (string, error)
		expectedPath func() string
		name         string
	}{
		{
			name: "GetDataDir returns correct path",
			methodCall: func(m *Manager) (string, error) {
				return m.GetDataDir()
			},
			expectedPath: func() string {
				return filepath.Join(xdg.DataHome, AppName)
			},
		},
		{
			name: "GetLogPath returns correct path",
			methodCall: func(m *Manager) (string, error) {
				return m.GetLogPath()
			},
			expectedPath: func() string {
				return filepath.Join(xdg.DataHome, AppName, constants.LogFilename)
			},
		},
		{
			name: "GetHistoryPath returns correct path",
			methodCall: func(m *Manager) (string, error) {
				return m.GetHistoryPath()
			},
			expectedPath: func() string {
				return filepath.Join(xdg.DataHome, AppName, constants.HistoryFilename)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			manager := New(afero.NewMemMapFs())

			actualPath, err := tt.methodCall(manager)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPath(), actualPath)
		})
	}
}

func TestGetDataDirCreatesDirectory(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	dataDir, err := New(fs).GetDataDir()
	require.NoError(t, err)

	exists, err := afero.DirExists(fs, dataDir)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGetDataDirReadOnlyFilesystem(t *testing.T) {
	t.Parallel()

	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	_, err := New(fs).GetLogPath()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create data directory")
}
