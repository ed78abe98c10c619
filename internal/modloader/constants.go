package modloader

// Log messages
const (
	LogMsgModLoaded        = "Mod loaded"
	LogMsgGameLaunched     = "Game launched"
	LogMsgLaunchPublishErr = "Game launched handlers reported errors"
)
