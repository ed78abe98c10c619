package bootstrap

import (
	"fmt"

	"github.com/osse101/AutomateGardenPot_Go/internal/automate"
	"github.com/osse101/AutomateGardenPot_Go/internal/modloader"
	"github.com/osse101/AutomateGardenPot_Go/internal/plugin"
)

// LoadMods loads the automation framework, exposing registry as its API, then the garden pot plugin
func LoadMods(loader *modloader.Loader, registry *automate.Registry, entry *plugin.ModEntry) error {
	framework := modloader.Manifest{UniqueID: automate.ModID, Name: AutomateModName, Version: AutomateModVersion}
	if err := loader.Load(framework, nil, automate.API(registry)); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgLoadMod, framework.UniqueID, err)
	}

	manifest := modloader.Manifest{UniqueID: plugin.UniqueID, Name: PluginModName, Version: PluginModVersion}
	if err := loader.Load(manifest, entry, nil); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgLoadMod, manifest.UniqueID, err)
	}
	return nil
}
