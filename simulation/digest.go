package simulation

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/bumpmine-sim/subtick/internal"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"
)

// Digest returns a hash of the complete world state. Two world states produced by the same inputs from
// the same initial state have the same digest.
func (ws WorldState) Digest() uint64 {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer internal.BufferPool.Put(buf)
	buf.Reset()

	var scratch [8]byte
	putU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(scratch[:], v)
		buf.Write(scratch[:])
	}
	putF32 := func(v float32) {
		binary.LittleEndian.PutUint32(scratch[:4], math.Float32bits(v))
		buf.Write(scratch[:4])
	}
	putVec := func(v mgl32.Vec3) {
		putF32(v[0])
		putF32(v[1])
		putF32(v[2])
	}
	putBool := func(b bool) {
		if b {
			buf.WriteByte(1)
		} else {
			buf.WriteByte(0)
		}
	}

	putU64(uint64(ws.SimTime))
	putBool(ws.IsInterpolated)

	putU64(uint64(ws.PrevInput.SampleTime.UnixNano()))
	putF32(ws.PrevInput.ViewAngles[0])
	putF32(ws.PrevInput.ViewAngles[1])
	putU64(uint64(ws.PrevInput.Buttons))
	buf.WriteByte(byte(ws.PrevInput.Triggers))

	mv := ws.Movement
	putVec(mv.AbsOrigin)
	putVec(mv.ViewOffset)
	putVec(mv.Velocity)
	putVec(mv.ViewAngles)
	buf.WriteByte(byte(mv.MoveType))
	putU64(uint64(mv.Buttons))
	putU64(uint64(mv.OldButtons))
	buf.WriteByte(byte(mv.Loadout.Active))
	putF32(mv.ForwardMove)
	putF32(mv.SideMove)
	buf.WriteByte(byte(mv.SpeedCropped))
	putF32(mv.MaxSpeed)
	putBool(mv.OnGround)
	putBool(mv.Ducked)

	buf.WriteByte(byte(ws.Player.Loadout.Active))
	putU64(uint64(ws.Player.NextPrimaryAttack))

	putU64(uint64(len(ws.Projectiles)))
	for _, p := range ws.Projectiles {
		putU64(p.ID)
		putVec(p.Position)
		putVec(p.Velocity)
		putBool(p.Stuck)
		putBool(p.Detonated)
		putU64(uint64(p.Age))
	}
	putU64(ws.NextEntityID)

	return xxh3.Hash(buf.Bytes())
}
