package config

import (
	"os"
	"path/filepath"
	"testing"

	"img-stitcher/internal/features"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stitcher.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultOptions(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	o := cfg.Options()
	assert.Equal(t, features.Horizontal, o.Axis)
	assert.Equal(t, 10, o.Threshold)
	assert.Equal(t, 900, o.Similarity)
	assert.Equal(t, 1000, o.Band)
	assert.Equal(t, 200, o.Span)
	assert.False(t, o.Local)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
detector:
  threshold: 20
  max_points: 500
stitch:
  axis: vertical
  span: 50
  local: false
  workers: 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	o := cfg.Options()
	assert.Equal(t, features.Vertical, o.Axis)
	assert.Equal(t, 20, o.Threshold)
	assert.Equal(t, features.DefaultRadius, o.Radius)
	assert.Equal(t, 500, o.MaxPoints)
	assert.Equal(t, 1100, o.Band)
	assert.Equal(t, 50, o.Span)
	assert.False(t, o.Local)
	assert.True(t, o.Consensus)
	assert.Equal(t, 2, o.Workers)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "detector:\n  treshold: 5\n"))
	assert.Error(t, err)
}

func TestLoadRejectsBadAxis(t *testing.T) {
	_, err := Load(writeConfig(t, "stitch:\n  axis: diagonal\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Detector.Threshold = 300
	cfg.Matcher.Similarity = 2000
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "detector.threshold")
	assert.Contains(t, err.Error(), "matcher.similarity")
}
