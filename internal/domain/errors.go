package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// World errors
	ErrMsgNoCrop        = "no crop planted"
	ErrMsgNoHoeDirt     = "no hoe dirt"
	ErrMsgTileOccupied  = "tile is occupied"
	ErrMsgNoPlaceable   = "nothing placed at tile"
	ErrMsgChestFull     = "chest is full"
	ErrMsgInvalidObject = "invalid object"

	// Crop data errors
	ErrMsgCropNotFound          = "crop not found"
	ErrMsgInvalidCropDefinition = "invalid crop definition"

	// Mod loader errors
	ErrMsgModNotLoaded     = "mod not loaded"
	ErrMsgModAlreadyLoaded = "mod already loaded"
	ErrMsgAPIUnavailable   = "mod API unavailable"

	// Event errors
	ErrMsgInvalidEventPayload = "invalid event payload"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// World errors
	ErrNoCrop        = errors.New(ErrMsgNoCrop)
	ErrNoHoeDirt     = errors.New(ErrMsgNoHoeDirt)
	ErrTileOccupied  = errors.New(ErrMsgTileOccupied)
	ErrNoPlaceable   = errors.New(ErrMsgNoPlaceable)
	ErrChestFull     = errors.New(ErrMsgChestFull)
	ErrInvalidObject = errors.New(ErrMsgInvalidObject)

	// Crop data errors
	ErrCropNotFound          = errors.New(ErrMsgCropNotFound)
	ErrInvalidCropDefinition = errors.New(ErrMsgInvalidCropDefinition)

	// Mod loader errors
	ErrModNotLoaded     = errors.New(ErrMsgModNotLoaded)
	ErrModAlreadyLoaded = errors.New(ErrMsgModAlreadyLoaded)
	ErrAPIUnavailable   = errors.New(ErrMsgAPIUnavailable)

	// Event errors
	ErrInvalidEventPayload = errors.New(ErrMsgInvalidEventPayload)
)
