package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpalmer79/agentforge-sub001/registry"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "windows.yaml", `
context_windows:
  gpt-4-turbo-2024-04-09: 128000
  internal-finetune: 32768
default_window: 16384
reserved_for_response: 2000
`)

	o, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 128000, o.ContextWindows["gpt-4-turbo-2024-04-09"])
	assert.Equal(t, 32768, o.ContextWindows["internal-finetune"])
	assert.Equal(t, 16384, o.DefaultWindow)
	assert.Equal(t, 2000, o.ReservedForResponse)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "windows.toml", `
default_window = 16384

[context_windows]
"internal-finetune" = 32768
`)

	o, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 32768, o.ContextWindows["internal-finetune"])
	assert.Equal(t, 16384, o.DefaultWindow)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "windows.json", `{
  "context_windows": {"internal-finetune": 32768},
  "reserved_for_response": 1500
}`)

	o, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 32768, o.ContextWindows["internal-finetune"])
	assert.Equal(t, 1500, o.ReservedForResponse)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "unsupported extension",
			file:    "windows.ini",
			content: "default_window = 1",
		},
		{
			name:    "malformed yaml",
			file:    "windows.yaml",
			content: "context_windows: [not a map",
		},
		{
			name:    "non-positive window",
			file:    "windows.yaml",
			content: "context_windows:\n  bad-model: 0\n",
		},
		{
			name:    "negative default",
			file:    "windows.yaml",
			content: "default_window: -5\n",
		},
		{
			name:    "negative reserve",
			file:    "windows.yaml",
			content: "reserved_for_response: -1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestOverrides_Window(t *testing.T) {
	o := &Overrides{
		ContextWindows: map[string]int{
			"gpt-4":             16384, // overrides the built-in 8192
			"internal-finetune": 32768,
		},
		DefaultWindow: 4096,
	}

	tests := []struct {
		name     string
		modelID  string
		expected int
	}{
		{
			name:     "override beats built-in entry",
			modelID:  "gpt-4",
			expected: 16384,
		},
		{
			name:     "override for model unknown to registry",
			modelID:  "internal-finetune",
			expected: 32768,
		},
		{
			name:     "built-in entry without override",
			modelID:  "claude-3-opus",
			expected: 200000,
		},
		{
			name:     "unknown model uses configured default",
			modelID:  "some-unknown-model",
			expected: 4096,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, o.Window(tt.modelID))
		})
	}
}

func TestOverrides_Window_NilAndEmpty(t *testing.T) {
	var nilOverrides *Overrides
	assert.Equal(t, 8192, nilOverrides.Window("gpt-4"))
	assert.Equal(t, registry.DefaultContextWindow, nilOverrides.Window("some-unknown-model"))

	empty := &Overrides{}
	assert.Equal(t, registry.DefaultContextWindow, empty.Window("some-unknown-model"))
}

func TestOverrides_Reserve(t *testing.T) {
	o := &Overrides{ReservedForResponse: 2000}
	assert.Equal(t, 2000, o.Reserve(1000))

	empty := &Overrides{}
	assert.Equal(t, 1000, empty.Reserve(1000))

	var nilOverrides *Overrides
	assert.Equal(t, 1000, nilOverrides.Reserve(1000))
}

func TestSchema(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, "context_windows")
	assert.Contains(t, s, "default_window")
	assert.Contains(t, s, "reserved_for_response")
}

func TestWatch_DeliversInitialAndUpdates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "windows.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_window: 16384\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, path)
	require.NoError(t, err)

	select {
	case o := <-ch:
		assert.Equal(t, 16384, o.DefaultWindow)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for initial snapshot")
	}

	require.NoError(t, os.WriteFile(path, []byte("default_window: 32768\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case o, ok := <-ch:
			require.True(t, ok, "channel closed before update arrived")
			if o.DefaultWindow == 32768 {
				return
			}
			// Editors and filesystems can produce several events per save;
			// keep draining until the new value arrives.
		case <-deadline:
			t.Fatal("timed out waiting for updated snapshot")
		}
	}
}

func TestWatch_InvalidInitialFile(t *testing.T) {
	path := writeFile(t, "windows.yaml", "default_window: -1\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := Watch(ctx, path)
	assert.Error(t, err)
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	path := writeFile(t, "windows.yaml", "default_window: 16384\n")

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := Watch(ctx, path)
	require.NoError(t, err)

	<-ch // initial snapshot
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should close after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("channel did not close after cancel")
	}
}
