package domain

// HoeDirt is a tilled patch that can hold a crop
type HoeDirt struct {
	State int   `json:"state"`
	Crop  *Crop `json:"crop,omitempty"`
}

// Watered reports whether the dirt has been watered today
func (d *HoeDirt) Watered() bool {
	return d.State == DirtWatered
}

// ReadyForHarvest reports whether the dirt holds a ripe crop
func (d *HoeDirt) ReadyForHarvest() bool {
	return d.Crop != nil && d.Crop.CanHarvest()
}

// DayUpdate grows a watered crop by one day and dries the soil
func (d *HoeDirt) DayUpdate() {
	if d.Crop != nil && d.Watered() {
		d.Crop.Grow()
	}
	d.State = DirtDry
}

// IndoorPot is a placeable garden pot holding its own hoe dirt
type IndoorPot struct {
	HoeDirt *HoeDirt `json:"hoe_dirt,omitempty"`
}

// NewIndoorPot creates a pot with empty, dry soil
func NewIndoorPot() *IndoorPot {
	return &IndoorPot{HoeDirt: &HoeDirt{State: DirtDry}}
}

// Name implements Placeable
func (p *IndoorPot) Name() string {
	return ItemNameGardenPot
}

// DayUpdate implements DayUpdater
func (p *IndoorPot) DayUpdate(_ Vector2) {
	if p.HoeDirt != nil {
		p.HoeDirt.DayUpdate()
	}
}

// Crop returns the crop growing in the pot, or nil
func (p *IndoorPot) Crop() *Crop {
	if p.HoeDirt == nil {
		return nil
	}
	return p.HoeDirt.Crop
}
