package crops

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/AutomateGardenPot_Go/internal/domain"
	"github.com/osse101/AutomateGardenPot_Go/internal/utils"
)

// Catalog indexes validated crop definitions by internal name
type Catalog struct {
	defs map[string]Def
}

// NewCatalog indexes a validated config
func NewCatalog(config *Config) *Catalog {
	c := &Catalog{defs: make(map[string]Def, len(config.Crops))}
	for _, def := range config.Crops {
		c.defs[def.InternalName] = def
	}
	return c
}

// Names returns the internal names of all crops in sorted order
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.defs))
	for name := range c.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the definition for a crop
func (c *Catalog) Get(name string) (Def, bool) {
	def, ok := c.defs[name]
	return def, ok
}

// DisplayName turns an internal name such as "fairy_rose" into "Fairy Rose"
func DisplayName(internalName string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(internalName, "_", " "))
}

// Plant creates a fresh crop from its definition and puts it in the dirt.
// Coloured crops pick one of their tints using rng.
func (c *Catalog) Plant(name string, dirt *domain.HoeDirt, rng utils.Rand) (*domain.Crop, error) {
	def, ok := c.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCropNotFound, name)
	}
	if dirt == nil {
		return nil, fmt.Errorf("%w: cannot plant %s", domain.ErrNoHoeDirt, name)
	}
	if dirt.Crop != nil {
		return nil, fmt.Errorf("%w: %s already growing", domain.ErrTileOccupied, dirt.Crop.Name)
	}

	crop := newCrop(def)
	if len(def.TintColors) > 0 {
		tint, err := parseHexColor(def.TintColors[utils.RandomInt(rng, 0, len(def.TintColors)-1)])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidCropDefinition, name, err)
		}
		crop.ProgramColored = true
		crop.TintColor = tint
	}

	dirt.Crop = crop
	return crop, nil
}

func newCrop(def Def) *domain.Crop {
	phases := make([]int, 0, len(def.PhaseDays)+1)
	phases = append(phases, def.PhaseDays...)
	phases = append(phases, domain.FinalPhaseDays)

	harvestName := def.HarvestName
	if harvestName == "" {
		harvestName = DisplayName(def.InternalName)
	}

	minHarvest, maxHarvest := def.HarvestRange()
	return &domain.Crop{
		Name:                              def.InternalName,
		PhaseDays:                         phases,
		RegrowAfterHarvest:                def.Regrow(),
		MinHarvest:                        minHarvest,
		MaxHarvest:                        maxHarvest,
		MaxHarvestIncreasePerFarmingLevel: def.MaxHarvestIncreasePerFarmingLevel,
		IndexOfHarvest:                    def.HarvestIndex,
		HarvestName:                       harvestName,
	}
}

// parseHexColor parses "#rrggbb" into an opaque colour
func parseHexColor(s string) (domain.Color, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
	if err != nil || len(raw) != 3 || !strings.HasPrefix(s, "#") {
		return domain.Color{}, fmt.Errorf("invalid hex colour %q", s)
	}
	return domain.Color{R: raw[0], G: raw[1], B: raw[2], A: 255}, nil
}
