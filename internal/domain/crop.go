package domain

// Color is an RGBA tint applied to program-coloured produce
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Crop is the growth slot held by a patch of hoe dirt.
//
// PhaseDays holds the length of every growth phase; the last entry is the
// harvestable phase and is normally FinalPhaseDays. While FullyGrown is set
// DayOfCurrentPhase counts down to the next regrowth harvest.
type Crop struct {
	Name string `json:"name"`

	PhaseDays         []int `json:"phase_days"`
	CurrentPhase      int   `json:"current_phase"`
	DayOfCurrentPhase int   `json:"day_of_current_phase"`
	FullyGrown        bool  `json:"fully_grown"`
	Dead              bool  `json:"dead"`

	RegrowAfterHarvest                int `json:"regrow_after_harvest"`
	MinHarvest                        int `json:"min_harvest"`
	MaxHarvest                        int `json:"max_harvest"`
	MaxHarvestIncreasePerFarmingLevel int `json:"max_harvest_increase_per_farming_level"`

	IndexOfHarvest int    `json:"index_of_harvest"`
	HarvestName    string `json:"harvest_name"`
	ProgramColored bool   `json:"program_colored"`
	TintColor      Color  `json:"tint_color"`

	// Draw state refreshed by UpdateDrawMath
	DrawTile Vector2 `json:"draw_tile"`
	Redraws  int     `json:"-"`
}

// LastPhase returns the index of the harvestable phase
func (c *Crop) LastPhase() int {
	return len(c.PhaseDays) - 1
}

// CanHarvest reports whether the crop is ripe: final phase reached, alive,
// and no regrowth days pending
func (c *Crop) CanHarvest() bool {
	return c.CurrentPhase >= c.LastPhase() && !c.Dead && c.DayOfCurrentPhase == 0
}

// Regrows reports whether the crop survives a harvest
func (c *Crop) Regrows() bool {
	return c.RegrowAfterHarvest != NoRegrow
}

// UpdateDrawMath recomputes the crop's draw position for the given tile
func (c *Crop) UpdateDrawMath(tile Vector2) {
	c.DrawTile = tile
	c.Redraws++
}

// Grow advances the crop by one watered day
func (c *Crop) Grow() {
	if c.Dead || len(c.PhaseDays) == 0 {
		return
	}

	if c.FullyGrown {
		if c.DayOfCurrentPhase > 0 {
			c.DayOfCurrentPhase--
		}
		return
	}

	// Ripe crops wait for harvest
	if c.CurrentPhase >= c.LastPhase() {
		return
	}

	c.DayOfCurrentPhase++
	if c.DayOfCurrentPhase >= c.PhaseDays[c.CurrentPhase] {
		c.CurrentPhase++
		c.DayOfCurrentPhase = 0
	}

	// Zero-length phases are skipped
	for c.CurrentPhase < c.LastPhase() && c.PhaseDays[c.CurrentPhase] <= 0 {
		c.CurrentPhase++
	}
}
