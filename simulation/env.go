package simulation

import (
	"github.com/bumpmine-sim/subtick/debug"
	"github.com/bumpmine-sim/subtick/player/movement"
	"github.com/bumpmine-sim/subtick/settings"
	"github.com/bumpmine-sim/subtick/world"
)

// Env is everything a world state needs from the outside to advance. It must not be modified while an
// advancement is running.
type Env struct {
	// World is the collision geometry. A nil World means no world is loaded, in which case advancing
	// only moves simulation time forward.
	World      world.Provider
	Settings   settings.Settings
	Integrator movement.Integrator
	Dbg        *debug.Debugger
}

// NewEnv returns an Env using the default movement integrator for the given settings.
func NewEnv(w world.Provider, s settings.Settings, dbg *debug.Debugger) Env {
	return Env{
		World:      w,
		Settings:   s,
		Integrator: movement.NewSourceIntegrator(s.Movement, dbg),
		Dbg:        dbg,
	}
}
