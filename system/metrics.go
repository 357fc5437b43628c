package system

import (
	"github.com/lixenwraith/worldstream/engine"
	"github.com/lixenwraith/worldstream/status"
)

// metrics returns the world's registry, or a detached one when the host installed none
func metrics(w *engine.World) *status.Registry {
	if reg, ok := engine.GetResource[*status.Registry](w.Resources); ok && reg != nil {
		return reg
	}
	return status.NewRegistry()
}
