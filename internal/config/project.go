package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rshade/datagrid/internal/logging"
)

// ProjectFileName is the per-directory overlay file looked up from the
// working directory upwards.
const ProjectFileName = ".datagrid.yaml"

// FindProjectFile walks up from startDir looking for ProjectFileName and
// returns its absolute path, or "" when none exists.
func FindProjectFile(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, ProjectFileName)
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// NewWithOverlay creates a Config by loading the user config then merging
// overlayPath on top. If overlayPath is empty, behaves identically to New().
// A broken overlay is logged and skipped.
func NewWithOverlay(ctx context.Context, overlayPath string) *Config {
	cfg := New()

	if overlayPath == "" {
		return cfg
	}

	merged := New()
	if err := MergeYAML(merged, overlayPath); err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using user defaults")
		return cfg
	}

	// Environment still wins over the project file.
	merged.ApplyEnv()
	return merged
}
