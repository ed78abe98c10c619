package worker

// Log messages for the worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgJobDropped      = "Worker pool stopped, job dropped"
)

// Log messages for the game loop
const (
	LogMsgDayStarted     = "Day started"
	LogMsgDayEventFailed = "Day started handlers reported errors"
	LogMsgLoopTick       = "Game loop tick"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 1
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)

// Log messages for the replanter
const (
	LogMsgCropCleared   = "Harvested crop cleared"
	LogMsgCropReplanted = "Crop replanted"
)
