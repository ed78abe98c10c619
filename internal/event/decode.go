package event

import (
	"encoding/json"
	"fmt"

	"github.com/osse101/AutomateGardenPot_Go/internal/domain"
)

// DecodePayload returns the payload of an event as T. Payloads published on the
// MemoryBus are already T or *T; anything else, such as a generic map from a
// replayed event, is converted through JSON. Failures wrap
// domain.ErrInvalidEventPayload.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, fmt.Errorf("%w: nil %T", domain.ErrInvalidEventPayload, v)
		}
		return *v, nil
	case nil:
		return result, fmt.Errorf("%w: missing, want %T", domain.ErrInvalidEventPayload, result)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("%w: %v", domain.ErrInvalidEventPayload, err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("%w: %T into %T: %v", domain.ErrInvalidEventPayload, input, result, err)
	}
	return result, nil
}
