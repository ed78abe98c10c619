package bootstrap

// Demo world layout
const (
	GreenhouseName = "Greenhouse"

	// PotsPerRow is how many pots are placed per row before wrapping
	PotsPerRow = 8
)

// Mod manifests loaded by the demo host
const (
	AutomateModName    = "Automate"
	AutomateModVersion = "1.0.0"
	PluginModName      = "Automate Garden Pot"
	PluginModVersion   = "1.0.0"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized = "Event system initialized"
)

// Log messages for config sync
const (
	LogMsgLoadingCrops    = "Loading crops from JSON config..."
	LogMsgCropsLoaded     = "Crops loaded successfully"
	ErrMsgFailedLoadCrops = "failed to load crops config"
	ErrMsgInvalidCrops    = "invalid crops config"
)

// Log messages for world setup
const (
	LogMsgWorldBuilt  = "World built"
	ErrMsgPlaceObject = "failed to place object"
	ErrMsgPlantCrop   = "failed to plant crop"
	ErrMsgStockChest  = "failed to stock chest"
	ErrMsgLoadMod     = "failed to load mod"
)

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgReplanterRegistered        = "Replanter registered"
)

// Shutdown messages
const (
	LogMsgShuttingDown       = "Shutting down simulation..."
	LogMsgSchedulerStopped   = "Scheduler stopped"
	LogMsgWorkerPoolStopped  = "Worker pool stopped"
	LogMsgShutdownTimeout    = "Shutdown timed out waiting for in-flight jobs"
	LogMsgSimulationFinished = "Simulation finished"
)
