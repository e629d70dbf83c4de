package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read at startup
const (
	EnvDebug  = "SHAPESHIFTER_DEBUG"
	EnvLevel  = "SHAPESHIFTER_LEVEL"
	EnvTuning = "SHAPESHIFTER_TUNING"
)

// DebugConfig contains debug/testing options from the environment
type DebugConfig struct {
	Enabled    bool   // draw collision boxes and state text
	StartLevel int    // 1-based; skips the menu when set
	TuningPath string // YAML physics overrides, watched for edits
}

var Debug DebugConfig

// LoadEnv reads an optional .env file and then the process environment
// into Debug. Malformed values are logged and ignored.
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: Could not load .env: %v", err)
	}
	Debug = debugFromEnv(os.Getenv)
}

func debugFromEnv(getenv func(string) string) DebugConfig {
	var d DebugConfig

	if v := strings.TrimSpace(getenv(EnvDebug)); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("Warning: %s=%q is not a boolean", EnvDebug, v)
		}
		d.Enabled = enabled
	}

	if v := strings.TrimSpace(getenv(EnvLevel)); v != "" {
		level, err := strconv.Atoi(v)
		if err != nil || level < 1 {
			log.Printf("Warning: %s=%q is not a level number", EnvLevel, v)
		} else {
			d.StartLevel = level
		}
	}

	d.TuningPath = strings.TrimSpace(getenv(EnvTuning))
	return d
}
