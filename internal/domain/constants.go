package domain

// Hoe dirt moisture states
const (
	DirtDry     = 0
	DirtWatered = 1
)

// Crop sentinels
const (
	// NoRegrow marks a crop that is removed by the host after harvest
	NoRegrow = -1

	// FinalPhaseDays is the length appended to a crop's phase list for its harvestable phase
	FinalPhaseDays = 99999
)

// Item quality levels
const (
	QualityNormal  = 0
	QualitySilver  = 1
	QualityGold    = 2
	QualityIridium = 4
)

// Item display names
const (
	ItemNameWateringCan = "Watering Can"
	ItemNameGardenPot   = "Garden Pot"
	ItemNameChest       = "Chest"
)

// Watering can capacities by upgrade level
const (
	WaterCapacityBasic  = 40
	WaterCapacityCopper = 55
	WaterCapacitySteel  = 70
	WaterCapacityGold   = 85
	WaterCapacityIrid   = 100
)

// DefaultChestCapacity is the number of item slots in a standard chest
const DefaultChestCapacity = 36
