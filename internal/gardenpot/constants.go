package gardenpot

// MachineTypeID groups every indoor pot machine; all pots share input logic
const MachineTypeID = "AutomateGardenPot/IndoorPot"

// harvestQuality is the quality of every automated harvest
const harvestQuality = 0

// wateringCost is the water used to water one pot
const wateringCost = 1
