package internal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/regiellis/qode-chair-go/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAppDir(t *testing.T, withRuntime, withEntry bool) string {
	t.Helper()
	dir := t.TempDir()
	if withRuntime {
		err := os.WriteFile(filepath.Join(dir, internal.RuntimeFileName()), []byte("#!/bin/sh\nexit 0\n"), 0o755)
		require.NoError(t, err)
	}
	if withEntry {
		err := os.WriteFile(filepath.Join(dir, internal.EntryScriptFile), []byte("console.log('ready');\n"), 0o644)
		require.NoError(t, err)
	}
	return dir
}

func TestNewPathsDerivesFixedFilenames(t *testing.T) {
	dir := t.TempDir()
	paths := internal.NewPaths(dir)

	assert.Equal(t, dir, paths.AppDir)
	assert.Equal(t, filepath.Join(dir, internal.RuntimeFileName()), paths.Runtime)
	assert.Equal(t, filepath.Join(dir, internal.EntryScriptFile), paths.EntryScript)
	assert.Equal(t, filepath.Join(dir, internal.PlatformsDir), paths.Platforms)
}

func TestMissingFilesAllPresent(t *testing.T) {
	dir := writeAppDir(t, true, true)
	paths := internal.NewPaths(dir)

	assert.Empty(t, paths.MissingFiles())
	assert.NoError(t, paths.Check())
}

func TestMissingFilesNoRuntime(t *testing.T) {
	dir := writeAppDir(t, false, true)
	paths := internal.NewPaths(dir)

	assert.Equal(t, []string{internal.RuntimeFileName()}, paths.MissingFiles())
	assert.Error(t, paths.Check())
}

func TestMissingFilesNoEntryScript(t *testing.T) {
	dir := writeAppDir(t, true, false)
	paths := internal.NewPaths(dir)

	assert.Equal(t, []string{internal.EntryScriptFile}, paths.MissingFiles())
}

func TestMissingFilesReportsBoth(t *testing.T) {
	dir := writeAppDir(t, false, false)
	paths := internal.NewPaths(dir)

	assert.Equal(t, []string{internal.RuntimeFileName(), internal.EntryScriptFile}, paths.MissingFiles())
	err := paths.Check()
	require.Error(t, err)
	assert.Contains(t, err.Error(), internal.RuntimeFileName())
	assert.Contains(t, err.Error(), internal.EntryScriptFile)
}

func TestMissingFilesDirectoryDoesNotCount(t *testing.T) {
	dir := writeAppDir(t, true, false)
	require.NoError(t, os.Mkdir(filepath.Join(dir, internal.EntryScriptFile), 0o755))
	paths := internal.NewPaths(dir)

	// A directory named main.js is not a usable entry script.
	assert.Equal(t, []string{internal.EntryScriptFile}, paths.MissingFiles())
}

func TestResolvePathsUsesWorkingDirectory(t *testing.T) {
	dir := writeAppDir(t, true, true)
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(orig) }()

	paths, err := internal.ResolvePaths()
	require.NoError(t, err)

	wantDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	gotDir, err := filepath.EvalSymlinks(paths.AppDir)
	require.NoError(t, err)
	assert.Equal(t, wantDir, gotDir)
	assert.True(t, filepath.IsAbs(paths.AppDir))
}

func TestExpandUserPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "launcher.log"), internal.ExpandUserPath("{HOME}/launcher.log"))
}
