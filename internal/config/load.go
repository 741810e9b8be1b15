package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the per-directory configuration file picked up automatically.
const FileName = "mkv2mp4.toml"

// DefaultConfigPath returns the user-level configuration file location.
func DefaultConfigPath() (string, error) {
	if base, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "mkv2mp4", "config.toml"), nil
	}
	return expandPath("~/.config/mkv2mp4/config.toml")
}

// Load starts from [DefaultConfig] and overlays the first configuration
// file found. An explicit path must exist; otherwise <dir>/mkv2mp4.toml is
// tried, then the user-level file. It returns the resolved path and whether
// a file was read. The result is not validated; callers apply flags first
// and then call [Config.Validate].
func Load(explicitPath, dir string) (*Config, string, bool, error) {
	cfg := DefaultConfig()
	cfg.Dir = NormalizeDirArg(dir)

	resolvedPath, exists, err := resolveConfigPath(explicitPath, cfg.Dir)
	if err != nil {
		return nil, "", false, err
	}
	if !exists {
		return &cfg, resolvedPath, false, nil
	}

	file, err := os.Open(resolvedPath)
	if err != nil {
		return nil, "", false, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, "", false, fmt.Errorf("parse config %s: %s", resolvedPath, strict.String())
		}
		return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
	}

	return &cfg, resolvedPath, true, nil
}

func resolveConfigPath(explicitPath, dir string) (string, bool, error) {
	if strings.TrimSpace(explicitPath) != "" {
		expanded, err := expandPath(explicitPath)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, fmt.Errorf("config file %s not found", expanded)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("config path %s is a directory", expanded)
		}
		return expanded, true, nil
	}

	candidates := []string{filepath.Join(dir, FileName)}
	if userPath, err := DefaultConfigPath(); err == nil {
		candidates = append(candidates, userPath)
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true, nil
		}
	}
	return "", false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
