package domain

// Item is anything that can sit in an inventory or chest slot
type Item interface {
	Name() string
	Stack() int
	SetStack(n int)
	Copy() Item
}

// Waterer is implemented by tools that can water hoe dirt. Items opt in by
// implementing it rather than being matched by concrete type.
type Waterer interface {
	Item
	WaterLeft() int
	UseWater(amount int)
}

// Object is a plain stackable item such as harvested produce
type Object struct {
	ParentSheetIndex int    `json:"parent_sheet_index"`
	DisplayName      string `json:"display_name"`
	Count            int    `json:"stack"`
	Quality          int    `json:"quality"`
}

// NewObject creates a stack of produce
func NewObject(index int, name string, stack, quality int) *Object {
	return &Object{
		ParentSheetIndex: index,
		DisplayName:      name,
		Count:            stack,
		Quality:          quality,
	}
}

// Name implements Item
func (o *Object) Name() string { return o.DisplayName }

// Stack implements Item
func (o *Object) Stack() int { return o.Count }

// SetStack implements Item
func (o *Object) SetStack(n int) {
	if n < 0 {
		n = 0
	}
	o.Count = n
}

// Copy implements Item
func (o *Object) Copy() Item {
	c := *o
	return &c
}

// CanStackWith reports whether two items merge into one slot
func (o *Object) CanStackWith(other Item) bool {
	that, ok := other.(*Object)
	if !ok {
		return false
	}
	return o.ParentSheetIndex == that.ParentSheetIndex && o.Quality == that.Quality
}

// ColoredObject is produce tinted per crop instance (e.g. flowers)
type ColoredObject struct {
	Object
	Color Color `json:"color"`
}

// NewColoredObject creates a stack of tinted produce
func NewColoredObject(index int, name string, stack int, color Color) *ColoredObject {
	return &ColoredObject{
		Object: Object{ParentSheetIndex: index, DisplayName: name, Count: stack, Quality: QualityNormal},
		Color:  color,
	}
}

// Copy implements Item
func (o *ColoredObject) Copy() Item {
	c := *o
	return &c
}

// CanStackWith reports whether two items merge into one slot
func (o *ColoredObject) CanStackWith(other Item) bool {
	that, ok := other.(*ColoredObject)
	if !ok {
		return false
	}
	return o.ParentSheetIndex == that.ParentSheetIndex && o.Quality == that.Quality && o.Color == that.Color
}

// WateringCan is the tool that waters hoe dirt
type WateringCan struct {
	UpgradeLevel  int `json:"upgrade_level"`
	Water         int `json:"water_left"`
	WaterCapacity int `json:"water_capacity"`
}

// NewWateringCan creates a full basic watering can
func NewWateringCan() *WateringCan {
	return &WateringCan{Water: WaterCapacityBasic, WaterCapacity: WaterCapacityBasic}
}

// Name implements Item
func (w *WateringCan) Name() string { return ItemNameWateringCan }

// Stack implements Item; tools never stack
func (w *WateringCan) Stack() int { return 1 }

// SetStack implements Item; tools never stack
func (w *WateringCan) SetStack(int) {}

// Copy implements Item
func (w *WateringCan) Copy() Item {
	c := *w
	return &c
}

// WaterLeft implements Waterer
func (w *WateringCan) WaterLeft() int { return w.Water }

// UseWater implements Waterer
func (w *WateringCan) UseWater(amount int) {
	w.Water -= amount
	if w.Water < 0 {
		w.Water = 0
	}
}

// Refill tops the can up to capacity
func (w *WateringCan) Refill() {
	w.Water = w.WaterCapacity
}

// stacker is implemented by items that merge with like items
type stacker interface {
	CanStackWith(other Item) bool
}
