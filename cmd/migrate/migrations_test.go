package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blogapi/internal/testutil"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectMigrations_ParsesMigrationsDir(t *testing.T) {
	migrations, err := goose.CollectMigrations(testutil.MigrationsDir(), 0, goose.MaxVersion)
	require.NoError(t, err)
	assert.Len(t, migrations, 2)
}

func TestMigrations_DeclareNameConstraint(t *testing.T) {
	b, err := os.ReadFile(filepath.Join(testutil.MigrationsDir(), "00001_create_authors.sql"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "CONSTRAINT authors_name_key UNIQUE (name)")
}

func TestRun_RejectsBadCommands(t *testing.T) {
	_, err := run(nil, "sideways", "", testutil.MigrationsDir())
	assert.ErrorContains(t, err, "unknown command")

	_, err = run(nil, "create", "", t.TempDir())
	assert.ErrorContains(t, err, "name is required")
}

func TestRun_CreateWritesSQLFile(t *testing.T) {
	dir := t.TempDir()

	msg, err := run(nil, "create", "add_tags", dir)
	require.NoError(t, err)
	assert.Contains(t, msg, "add_tags")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "_add_tags.sql"))
}
