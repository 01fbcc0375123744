package movement

import (
	"sync"

	"github.com/bumpmine-sim/subtick/settings"
)

var ctxPool = sync.Pool{
	New: func() any {
		return &movementContext{}
	},
}

// movementContext holds the values shared by the steps of one integration segment.
type movementContext struct {
	mv  *State
	w   WorldProvider
	cfg settings.MovementSettings
	dt  float32
}

func newCtx(mv *State, w WorldProvider, cfg settings.MovementSettings, dt float32) *movementContext {
	ctx := ctxPool.Get().(*movementContext)
	ctx.mv = mv
	ctx.w = w
	ctx.cfg = cfg
	ctx.dt = dt
	return ctx
}

func putCtx(ctx *movementContext) {
	ctx.reset()
	ctxPool.Put(ctx)
}

func (ctx *movementContext) reset() {
	ctx.mv = nil
	ctx.w = nil
	ctx.cfg = settings.MovementSettings{}
	ctx.dt = 0
}
