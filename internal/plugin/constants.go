package plugin

// UniqueID is the manifest ID this mod is loaded under
const UniqueID = "AutomateGardenPot"

// Log messages
const (
	LogMsgAutomatePatchAdvisory = "This mod patches Automate. If you notice issues with Automate, make sure it happens without this mod before reporting it to the Automate page."
	LogMsgAutomateAPIMissing    = "Automate API unavailable, garden pots will not be automated"
	LogMsgFactoryRegistered     = "Registered indoor pot machine factory"
)
