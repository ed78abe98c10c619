package domain

// MachineHarvestedPayload is the event payload for machine.harvested events
type MachineHarvestedPayload struct {
	MachineTypeID string  `json:"machine_type_id"`
	Location      string  `json:"location"`
	Tile          Vector2 `json:"tile"`
	ItemName      string  `json:"item_name"`
	Quantity      int     `json:"quantity"`
	Timestamp     int64   `json:"timestamp"`
}

// MachineInputAcceptedPayload is the event payload for machine.input_accepted events
type MachineInputAcceptedPayload struct {
	MachineTypeID string  `json:"machine_type_id"`
	Location      string  `json:"location"`
	Tile          Vector2 `json:"tile"`
	Timestamp     int64   `json:"timestamp"`
}
