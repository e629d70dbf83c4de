package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDebugFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want DebugConfig
	}{
		{name: "empty", env: nil, want: DebugConfig{}},
		{
			name: "all set",
			env:  map[string]string{EnvDebug: "true", EnvLevel: "4", EnvTuning: " tuning.yaml "},
			want: DebugConfig{Enabled: true, StartLevel: 4, TuningPath: "tuning.yaml"},
		},
		{name: "bad bool", env: map[string]string{EnvDebug: "yes please"}, want: DebugConfig{}},
		{name: "bad level", env: map[string]string{EnvLevel: "zero"}, want: DebugConfig{}},
		{name: "level below one", env: map[string]string{EnvLevel: "0"}, want: DebugConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := debugFromEnv(func(k string) string { return tt.env[k] })
			if got != tt.want {
				t.Errorf("debugFromEnv() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	// Setenv restores the variable after the test; unset it so the file wins.
	t.Setenv(EnvLevel, "")
	os.Unsetenv(EnvLevel)
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(EnvLevel+"=3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	LoadEnv(path)

	if Debug.StartLevel != 3 {
		t.Errorf("StartLevel = %d, want 3", Debug.StartLevel)
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	t.Setenv(EnvDebug, "1")
	LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	if !Debug.Enabled {
		t.Error("process environment ignored when .env is missing")
	}
}

func TestWorldBounds(t *testing.T) {
	w := C.WorldBounds()
	if w.Width != 800 || w.Height != 600 {
		t.Errorf("WorldBounds() = %+v, want 800x600", w)
	}
}
