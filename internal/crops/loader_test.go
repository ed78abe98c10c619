package crops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AutomateGardenPot_Go/internal/domain"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crops.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func intPtr(v int) *int { return &v }

func TestCropLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("valid JSON file", func(t *testing.T) {
		path := createTempFile(t, `{
			"version": "1.0",
			"description": "Test crops",
			"crops": [
				{
					"internal_name": "tomato",
					"harvest_index": 256,
					"phase_days": [2, 2, 2, 2, 3],
					"regrow_after_harvest": 4
				},
				{
					"internal_name": "fairy_rose",
					"harvest_index": 595,
					"phase_days": [1, 4, 4, 3],
					"tint_colors": ["#8c4eff"]
				}
			]
		}`)

		config, err := loader.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "1.0", config.Version)
		require.Len(t, config.Crops, 2)
		assert.Equal(t, 4, config.Crops[0].Regrow())
		assert.Equal(t, domain.NoRegrow, config.Crops[1].Regrow())
		assert.Equal(t, []string{"#8c4eff"}, config.Crops[1].TintColors)
	})

	t.Run("shipped config is valid", func(t *testing.T) {
		config, err := loader.Load(filepath.Join("..", "..", "configs", "crops.json"))
		require.NoError(t, err)
		require.NoError(t, loader.Validate(config))
		assert.NotEmpty(t, config.Crops)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/path.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read crops config file")
	})

	t.Run("schema violations", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
		}{
			{"invalid JSON", `{invalid json}`},
			{"missing crops", `{"version": "1.0"}`},
			{"empty crop list", `{"version": "1.0", "crops": []}`},
			{"missing phase days", `{"version": "1.0", "crops": [{"internal_name": "x", "harvest_index": 1}]}`},
			{"negative phase", `{"version": "1.0", "crops": [{"internal_name": "x", "harvest_index": 1, "phase_days": [-1]}]}`},
			{"regrow below sentinel", `{"version": "1.0", "crops": [{"internal_name": "x", "harvest_index": 1, "phase_days": [1], "regrow_after_harvest": -2}]}`},
			{"bad tint", `{"version": "1.0", "crops": [{"internal_name": "x", "harvest_index": 1, "phase_days": [1], "tint_colors": ["red"]}]}`},
			{"unknown field", `{"version": "1.0", "crops": [{"internal_name": "x", "harvest_index": 1, "phase_days": [1], "quality": 2}]}`},
			{"upper case name", `{"version": "1.0", "crops": [{"internal_name": "Tomato", "harvest_index": 1, "phase_days": [1]}]}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := loader.Load(createTempFile(t, tt.content))
				require.Error(t, err)
				assert.Contains(t, err.Error(), "schema validation failed")
			})
		}
	})
}

func TestCropLoader_Validate(t *testing.T) {
	loader := NewLoader()

	valid := func() Def {
		return Def{InternalName: "tomato", HarvestIndex: 256, PhaseDays: []int{2, 2}, RegrowAfterHarvest: intPtr(4)}
	}

	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, loader.Validate(&Config{Crops: []Def{valid()}}))
	})

	t.Run("nil config", func(t *testing.T) {
		err := loader.Validate(nil)
		assert.ErrorIs(t, err, domain.ErrInvalidCropDefinition)
		assert.Contains(t, err.Error(), ErrMsgConfigNil)
	})

	t.Run("no crops", func(t *testing.T) {
		err := loader.Validate(&Config{})
		assert.ErrorIs(t, err, domain.ErrInvalidCropDefinition)
		assert.Contains(t, err.Error(), ErrMsgNoCropsDefined)
	})

	t.Run("duplicate internal name", func(t *testing.T) {
		err := loader.Validate(&Config{Crops: []Def{valid(), valid()}})
		assert.ErrorIs(t, err, ErrDuplicateInternalName)
		assert.Contains(t, err.Error(), "tomato")
	})

	t.Run("invalid definitions", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(d *Def)
			errMsg string
		}{
			{"empty name", func(d *Def) { d.InternalName = "" }, "index 0"},
			{"no phases", func(d *Def) { d.PhaseDays = nil }, "PhaseDays"},
			{"negative phase", func(d *Def) { d.PhaseDays = []int{1, -1} }, "PhaseDays[1]"},
			{"regrow below sentinel", func(d *Def) { d.RegrowAfterHarvest = intPtr(-2) }, "RegrowAfterHarvest"},
			{"max below min", func(d *Def) { d.MinHarvest, d.MaxHarvest = 3, 2 }, "max_harvest below min_harvest"},
			{"default max below min", func(d *Def) { d.MinHarvest = 2 }, "max_harvest below min_harvest"},
			{"non hex tint", func(d *Def) { d.TintColors = []string{"purple"} }, "TintColors"},
			{"short hex tint", func(d *Def) { d.TintColors = []string{"#fff"} }, "invalid tint"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				def := valid()
				tt.mutate(&def)

				err := loader.Validate(&Config{Crops: []Def{def}})

				assert.ErrorIs(t, err, domain.ErrInvalidCropDefinition)
				assert.Contains(t, err.Error(), tt.errMsg)
			})
		}
	})
}
