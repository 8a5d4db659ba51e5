package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/opalloc/pkg/config"
	"github.com/ajitpratap0/opalloc/pkg/errors"
	"github.com/ajitpratap0/opalloc/pkg/pool"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfiles(t *testing.T) {
	path := writeFile(t, `
profiles:
  - name: sessions
    object_size: 128
    initial_count: 32
    growth: doubling
    allocation: chunked
  - name: events
    object_size: 48
    initial_count: 8
    growth: linear
    allocation: individual
`)

	f, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, f.Profiles, 2)

	sessions, ok := f.Profile("sessions")
	require.True(t, ok)
	cfg, err := sessions.Pool()
	require.NoError(t, err)
	assert.Equal(t, pool.Config{
		ObjectSize:   128,
		InitialCount: 32,
		Growth:       pool.GrowDoubling,
		Allocation:   pool.AllocChunked,
	}, cfg)

	events, ok := f.Profile("events")
	require.True(t, ok)
	cfg, err = events.Pool()
	require.NoError(t, err)
	assert.Equal(t, pool.GrowLinear, cfg.Growth)
	assert.Equal(t, pool.AllocIndividual, cfg.Allocation)

	_, ok = f.Profile("missing")
	assert.False(t, ok)
}

func TestLoadSubstitutesEnvVars(t *testing.T) {
	t.Setenv("POOL_INITIAL", "64")
	path := writeFile(t, `
profiles:
  - name: tuned
    object_size: 16
    initial_count: ${POOL_INITIAL}
    growth: doubling
    allocation: chunked
`)

	f, err := config.Load(path)
	require.NoError(t, err)
	tuned, ok := f.Profile("tuned")
	require.True(t, ok)
	assert.Equal(t, 64, tuned.InitialCount)
}

func TestLoadRejectsInvalidProfiles(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing name", "profiles:\n  - object_size: 8\n    initial_count: 4\n"},
		{"zero object size", "profiles:\n  - name: bad\n    object_size: 0\n    initial_count: 4\n"},
		{"unknown growth", "profiles:\n  - name: bad\n    object_size: 8\n    initial_count: 4\n    growth: exponential\n"},
		{"unknown allocation", "profiles:\n  - name: bad\n    object_size: 8\n    initial_count: 4\n    allocation: mmap\n"},
		{"duplicate names", "profiles:\n  - name: dup\n    object_size: 8\n    initial_count: 4\n  - name: dup\n    object_size: 8\n    initial_count: 4\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.content))
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
		})
	}
}

func TestProfileDefaults(t *testing.T) {
	p := config.Profile{Name: "defaults", ObjectSize: 8, InitialCount: 4}
	cfg, err := p.Pool()
	require.NoError(t, err)
	assert.Equal(t, pool.GrowDoubling, cfg.Growth)
	assert.Equal(t, pool.AllocIndividual, cfg.Allocation)
}

func TestSaveRoundTrip(t *testing.T) {
	f := &config.File{Profiles: []config.Profile{{
		Name:         "round",
		ObjectSize:   64,
		InitialCount: 16,
		Growth:       "linear",
		Allocation:   "chunked",
	}}}

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, config.Save(path, f))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, f.Profiles, loaded.Profiles)
}

func TestProfileBuildsWorkingPool(t *testing.T) {
	p := config.Profile{
		Name:         "live",
		ObjectSize:   32,
		InitialCount: 4,
		Growth:       "linear",
		Allocation:   "chunked",
	}
	cfg, err := p.Pool()
	require.NoError(t, err)

	pl, err := pool.New(cfg)
	require.NoError(t, err)
	defer pl.Close()

	buf, err := pl.Acquire()
	require.NoError(t, err)
	assert.Len(t, buf, 32)
}
