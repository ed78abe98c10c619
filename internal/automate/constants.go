package automate

import "time"

// ModID is the unique ID the automation framework registers under
const ModID = "Pathoschild.Automate"

// Machine cache sizing
const (
	MachineCacheSize = 1024
	MachineCacheTTL  = 10 * time.Minute
)

// Machine state names
const (
	StateNameDisabled   = "disabled"
	StateNameEmpty      = "empty"
	StateNameProcessing = "processing"
	StateNameDone       = "done"
	StateNameUnknown    = "unknown"
)

// Log messages
const (
	LogMsgMachinesDiscovered = "Machines discovered"
	LogMsgOutputStored       = "Machine output stored"
	LogMsgOutputNoRoom       = "No room for machine output, discarding"
	LogMsgInputAccepted      = "Machine accepted input"
	LogMsgInputMissing       = "No input for machine type, skipping remaining empty machines"
	LogMsgTickComplete       = "Automation tick complete"
	LogMsgPublishFailed      = "Failed to publish machine event"
	LogMsgFactoryAdded       = "Machine factory added"
)
