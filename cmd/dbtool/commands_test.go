package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLoadAirlinesCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("STORE", "memory")

	path := filepath.Join(dir, "airlines.csv")
	csv := "IDAerolinea,NombreAerolinea,IATA,Pais,Activa\n1,LATAM,LA,Chile,Y\nx,Bad,BA,Chile,Y\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o600))

	out, err := runCLI(t, "load-airlines", path)
	require.NoError(t, err)
	out = strings.ToLower(out)
	assert.Contains(t, out, "airlines.csv")
	assert.Contains(t, out, "created")
	assert.Contains(t, out, "row 3:")
}

func TestImportAirportsCommandMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE", "memory")

	_, err := runCLI(t, "import-airports", "nope.dat")
	assert.ErrorContains(t, err, "import airports")
}

func TestMigrateRequiresPostgres(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE", "memory")

	_, err := runCLI(t, "migrate")
	assert.ErrorContains(t, err, "requires the postgres store")
}

func TestWindowFromFlags(t *testing.T) {
	w, err := windowFromFlags("2024-03-01", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), w.From)
	assert.True(t, w.To.IsZero())

	_, err = windowFromFlags("", "03/01/2024")
	assert.ErrorContains(t, err, "--to")
}

func TestRenderErrorsTruncates(t *testing.T) {
	var out bytes.Buffer
	renderErrors(&out, []string{"first", "second", "third"}, 2)

	// go-pretty upper-cases footers by default.
	text := strings.ToLower(out.String())
	assert.Contains(t, text, "first")
	assert.NotContains(t, text, "third")
	assert.Contains(t, text, "1 more")
}
