package crops

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/AutomateGardenPot_Go/internal/domain"
	"github.com/osse101/AutomateGardenPot_Go/internal/validation"
)

//go:embed schema/crops.schema.json
var cropsSchema []byte

// ErrDuplicateInternalName is returned when two crops share an internal name
var ErrDuplicateInternalName = errors.New("duplicate internal name")

// Config represents the JSON configuration for crops
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Crops []Def `json:"crops"`
}

// Def represents a single crop definition in the JSON
type Def struct {
	InternalName                      string   `json:"internal_name" validate:"required"`
	HarvestName                       string   `json:"harvest_name,omitempty"`
	HarvestIndex                      int      `json:"harvest_index" validate:"min=0"`
	PhaseDays                         []int    `json:"phase_days" validate:"required,min=1,dive,min=0"`
	RegrowAfterHarvest                *int     `json:"regrow_after_harvest,omitempty" validate:"omitempty,min=-1"`
	MinHarvest                        int      `json:"min_harvest,omitempty" validate:"omitempty,min=1"`
	MaxHarvest                        int      `json:"max_harvest,omitempty" validate:"omitempty,min=1"`
	MaxHarvestIncreasePerFarmingLevel int      `json:"max_harvest_increase_per_farming_level,omitempty" validate:"min=0"`
	TintColors                        []string `json:"tint_colors,omitempty" validate:"dive,hexcolor"`
}

// Regrow returns the regrowth delay, NoRegrow when unset
func (d Def) Regrow() int {
	if d.RegrowAfterHarvest == nil {
		return domain.NoRegrow
	}
	return *d.RegrowAfterHarvest
}

// HarvestRange returns the min and max harvest with defaults applied
func (d Def) HarvestRange() (int, int) {
	minHarvest, maxHarvest := d.MinHarvest, d.MaxHarvest
	if minHarvest == 0 {
		minHarvest = DefaultMinHarvest
	}
	if maxHarvest == 0 {
		maxHarvest = DefaultMaxHarvest
	}
	return minHarvest, maxHarvest
}

// Loader handles loading and validating crop configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type cropLoader struct {
	schemaValidator validation.SchemaValidator
	structValidator *validator.Validate
	initErr         error
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	v := validation.NewSchemaValidator()
	l := &cropLoader{
		schemaValidator: v,
		structValidator: validator.New(),
	}
	if err := v.Register(SchemaName, cropsSchema); err != nil {
		l.initErr = fmt.Errorf(ErrMsgSchemaRegister, err)
	}
	return l
}

// Load reads, schema-checks and parses a crops JSON file
func (l *cropLoader) Load(path string) (*Config, error) {
	if l.initErr != nil {
		return nil, l.initErr
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the crop configuration for errors the schema cannot express
func (l *cropLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCropDefinition, ErrMsgConfigNil)
	}
	if len(config.Crops) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCropDefinition, ErrMsgNoCropsDefined)
	}

	names := make(map[string]bool, len(config.Crops))
	for i := range config.Crops {
		if err := l.validateDef(i, &config.Crops[i], names); err != nil {
			return err
		}
	}
	return nil
}

func (l *cropLoader) validateDef(index int, def *Def, names map[string]bool) error {
	if def.InternalName == "" {
		return fmt.Errorf(ErrFmtCropAtIndexEmpty, domain.ErrInvalidCropDefinition, index)
	}
	if names[def.InternalName] {
		return fmt.Errorf("%w: '%s'", ErrDuplicateInternalName, def.InternalName)
	}
	names[def.InternalName] = true

	if err := l.structValidator.Struct(def); err != nil {
		return fmt.Errorf(ErrFmtCropInvalid, domain.ErrInvalidCropDefinition, def.InternalName, describe(err))
	}

	if minHarvest, maxHarvest := def.HarvestRange(); maxHarvest < minHarvest {
		return fmt.Errorf(ErrFmtCropInvalid, domain.ErrInvalidCropDefinition, def.InternalName, "max_harvest below min_harvest")
	}

	for _, tint := range def.TintColors {
		if _, err := parseHexColor(tint); err != nil {
			return fmt.Errorf(ErrFmtBadTint, domain.ErrInvalidCropDefinition, def.InternalName, tint)
		}
	}
	return nil
}

func describe(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}
	parts := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
