package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Automation metric names
const (
	MetricNameMachinePolls        = "automate_machine_polls_total"
	MetricNameFactoriesRegistered = "automate_factories_registered_total"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Garden pot metric names
const (
	MetricNameHarvestsStored = "gardenpot_harvests_stored_total"
	MetricNameHarvestItems   = "gardenpot_harvest_items_total"
	MetricNameWaterings      = "gardenpot_waterings_total"
	MetricNameDaysStarted    = "gardenpot_days_started_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextMachinePolls        = "Total number of machine state polls by machine type and state"
	HelpTextFactoriesRegistered = "Total number of machine factories registered with the automation API"
	HelpTextEventsPublished     = "Total number of events published"
	HelpTextHarvestsStored      = "Total number of machine outputs moved into storage"
	HelpTextHarvestItems        = "Total quantity of harvested items moved into storage"
	HelpTextWaterings           = "Total number of times a machine accepted watering input"
	HelpTextDaysStarted         = "Total number of simulated days started"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelType        = "type"
	LabelMachineType = "machine_type"
	LabelState       = "state"
	LabelItem        = "item"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnexpectedPayload = "Unexpected event payload type"
)
