package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/rostercheck/cmd/rostercheck/cmd/validate"
	"github.com/agentstation/rostercheck/pkg/errors"
	"github.com/agentstation/rostercheck/pkg/reconciler"
)

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	t.Setenv("LOG_OUTPUT", "discard")
	app, err := New("1.0.0", "abc123", "2026-01-01", "test", opts...)
	require.NoError(t, err)
	return app
}

func TestApp_New(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, "1.0.0", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2026-01-01", app.Date())
	assert.Equal(t, "test", app.BuiltBy())
	assert.NotNil(t, app.Logger())
	assert.NotNil(t, app.Config())
}

func TestApp_Reconciler_Singleton(t *testing.T) {
	app := newTestApp(t)

	r1, err := app.Reconciler()
	require.NoError(t, err)
	r2, err := app.Reconciler()
	require.NoError(t, err)
	assert.Same(t, r1, r2)
}

func TestApp_Reconciler_ThreadSafe(t *testing.T) {
	app := newTestApp(t)

	const goroutines = 50
	var wg sync.WaitGroup
	results := make([]reconciler.Reconciler, goroutines)
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = app.Reconciler()
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i])
	}
}

func TestApp_ReconcilerWithOptions(t *testing.T) {
	app := newTestApp(t)

	r1, err := app.ReconcilerWithOptions(reconciler.WithLinearScan())
	require.NoError(t, err)
	r2, err := app.ReconcilerWithOptions(reconciler.WithLinearScan())
	require.NoError(t, err)
	assert.NotSame(t, r1, r2)

	def, err := app.Reconciler()
	require.NoError(t, err)
	assert.NotSame(t, r1, def)

	_, err = app.ReconcilerWithOptions(reconciler.WithDocumentLabels("", ""))
	assert.True(t, errors.IsValidationError(err))
}

func TestApp_WithOptions(t *testing.T) {
	custom := &Config{Format: "json", Strategy: "linear"}
	logger := zerolog.Nop()
	r, err := reconciler.New()
	require.NoError(t, err)

	app := newTestApp(t, WithConfig(custom), WithLogger(&logger), WithReconciler(r))
	assert.Same(t, custom, app.Config())
	assert.Same(t, &logger, app.Logger())
	assert.Equal(t, "json", app.OutputFormat())

	got, err := app.Reconciler()
	require.NoError(t, err)
	assert.Same(t, r, got)

	_, err = New("1.0.0", "", "", "", WithConfig(nil))
	assert.Error(t, err)
}

func TestApp_Execute_Version(t *testing.T) {
	var out bytes.Buffer
	app := newTestApp(t, WithOutput(&out))

	require.NoError(t, app.Execute(context.Background(), []string{"version"}))
	assert.Equal(t, "rostercheck 1.0.0\n", out.String())

	out.Reset()
	require.NoError(t, app.Execute(context.Background(), []string{"version", "-v"}))
	assert.Contains(t, out.String(), "commit:   abc123")
}

func writeRosters(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	master := filepath.Join(dir, "master.csv")
	validation := filepath.Join(dir, "validation.csv")
	require.NoError(t, os.WriteFile(master, []byte("CEDULA,NOMBRE\n123,John Smith\n456,Maria Lopez\n"), 0o644))
	require.NoError(t, os.WriteFile(validation, []byte("ID,NAME\n123,John Smith\n777,Pedro Ruiz\n"), 0o644))
	return master, validation
}

func TestApp_Execute_Validate(t *testing.T) {
	master, validation := writeRosters(t)

	var out bytes.Buffer
	app := newTestApp(t, WithOutput(&out))

	err := app.Execute(context.Background(), []string{
		"validate", "--master", master, "--validation", validation, "--auto-map", "-o", "json",
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"notFound"`)
	assert.Contains(t, out.String(), "PEDRO RUIZ")
	assert.Equal(t, "json", app.OutputFormat())

	err = app.Execute(context.Background(), []string{
		"validate", "--master", master, "--validation", validation, "--auto-map", "--fail-on-findings",
	})
	assert.ErrorIs(t, err, validate.ErrFindings)
}

func TestApp_Execute_ConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)
	master, validation := writeRosters(t)

	cfg := filepath.Join(t.TempDir(), "rostercheck.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`mapping:
  master:
    identifier: CEDULA
    name: NOMBRE
  validation:
    identifier: ID
    name: NAME
labels:
  master: Nomina
`), 0o644))

	var out bytes.Buffer
	app := newTestApp(t, WithOutput(&out))

	err := app.Execute(context.Background(), []string{
		"validate", "--config", cfg, "--master", master, "--validation", validation, "-o", "json",
	})
	require.NoError(t, err)
	assert.Equal(t, "CEDULA", app.Mapping().Master.Identifier)
	assert.Contains(t, out.String(), `"masterLabel": "Nomina"`)
}

func TestApp_Execute_MissingConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)
	app := newTestApp(t, WithOutput(&bytes.Buffer{}))

	err := app.Execute(context.Background(), []string{"version", "--config", filepath.Join(t.TempDir(), "nope.yaml")})
	var cfgErr *errors.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}
