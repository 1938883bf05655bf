package app

import (
	"github.com/specialistvlad/espgen/internal/component"
	"github.com/specialistvlad/espgen/internal/components/wifi"
)

// coreComponents is the definitive list of all components that are compiled
// into the espgen binary.
func coreComponents() []component.Component {
	return []component.Component{
		wifi.New(),
	}
}
