package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "machine.harvested")
const (
	// EventTypeGameLaunched is published once after all mods are loaded
	EventTypeGameLaunched = "gameloop.game_launched"

	// EventTypeDayStarted is published after the overnight update of every location
	EventTypeDayStarted = "gameloop.day_started"

	// EventTypeMachineHarvested is published when a machine's output is committed into storage
	EventTypeMachineHarvested = "machine.harvested"

	// EventTypeMachineInputAccepted is published when a machine accepts input from storage
	EventTypeMachineInputAccepted = "machine.input_accepted"
)
