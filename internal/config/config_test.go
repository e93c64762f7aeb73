package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: https://backend.example.com/api/v1
  timeout: 10s
asset:
  upload_url: https://assets.example.com/upload
  cloud_name: vexr-demo
logger:
  level: debug
`)

	cfg, err := Load(path)
	assert.NoError(t, err)

	assert.Equal(t, "https://backend.example.com/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "vexr-demo", cfg.Asset.CloudName)
	assert.Equal(t, "debug", cfg.Logger.Level)

	// Defaults fill the unspecified fields.
	assert.Equal(t, "service_report", cfg.Asset.ReportPreset)
	assert.Equal(t, "delivery_note", cfg.Asset.DeliveryPreset)
	assert.Equal(t, 60*time.Second, cfg.Asset.Timeout)
	assert.Equal(t, "exports", cfg.Export.OutputDir)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FIELDSERVE_ASSET_CLOUD_NAME", "vexr-prod")
	path := writeConfig(t, `
api:
  base_url: https://backend.example.com/api/v1
asset:
  upload_url: https://assets.example.com/upload
  cloud_name: vexr-demo
`)

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "vexr-prod", cfg.Asset.CloudName)
}

func TestLoad_ConsecutiveLoadsAreIndependent(t *testing.T) {
	first := writeConfig(t, `
api:
  base_url: https://one.example.com/api/v1
  timeout: 5s
asset:
  upload_url: https://assets.example.com/upload
  cloud_name: vexr-one
`)
	second := writeConfig(t, `
api:
  base_url: https://two.example.com/api/v1
asset:
  upload_url: https://assets.example.com/upload
  cloud_name: vexr-two
`)

	_, err := Load(first)
	assert.NoError(t, err)

	cfg, err := Load(second)
	assert.NoError(t, err)
	assert.Equal(t, "https://two.example.com/api/v1", cfg.API.BaseURL)
	assert.Equal(t, "vexr-two", cfg.Asset.CloudName)
	// Nothing from the first load bleeds into the second.
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"no api base url",
			`
asset:
  upload_url: https://assets.example.com/upload
  cloud_name: vexr-demo
`,
		},
		{
			"no asset upload url",
			`
api:
  base_url: https://backend.example.com/api/v1
asset:
  cloud_name: vexr-demo
`,
		},
		{
			"no cloud name",
			`
api:
  base_url: https://backend.example.com/api/v1
asset:
  upload_url: https://assets.example.com/upload
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
