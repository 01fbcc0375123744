package settings

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bumpmine-sim/subtick/game"
	"github.com/bumpmine-sim/subtick/player"
	"github.com/pelletier/go-toml"
)

// Settings contains every tunable value of the simulation. It is read-only once handed to a
// simulation environment.
type Settings struct {
	Simulation SimulationSettings `toml:"simulation"`
	Movement   MovementSettings   `toml:"movement"`
	MaxSpeed   MaxSpeedSettings   `toml:"max_speed"`
	Bumpmine   BumpmineSettings   `toml:"bumpmine"`
}

// SimulationSettings control the tick driver.
type SimulationSettings struct {
	// TickRate is the amount of simulation ticks per simulated second.
	TickRate float64 `toml:"tick_rate"`
	// Timescale is the ratio of simulated time to real time.
	Timescale float32 `toml:"timescale"`
	// Subtick enables fractional input resolution inside a tick.
	Subtick bool `toml:"subtick"`
	// Interpolate enables interpolation of the drawable world state.
	Interpolate bool `toml:"interpolate"`
}

// MovementSettings are the constants of player movement.
type MovementSettings struct {
	ForwardSpeed  float32 `toml:"forward_speed"`
	BackSpeed     float32 `toml:"back_speed"`
	SideSpeed     float32 `toml:"side_speed"`
	Gravity       float32 `toml:"gravity"`
	Friction      float32 `toml:"friction"`
	StopSpeed     float32 `toml:"stop_speed"`
	Accelerate    float32 `toml:"accelerate"`
	AirAccelerate float32 `toml:"air_accelerate"`
	AirSpeedCap   float32 `toml:"air_speed_cap"`
	JumpImpulse   float32 `toml:"jump_impulse"`
}

// MaxSpeedSettings hold the maximum running speed per active weapon.
type MaxSpeedSettings struct {
	Unarmed  float32 `toml:"unarmed"`
	Knife    float32 `toml:"knife"`
	BumpMine float32 `toml:"bump_mine"`
}

// BumpmineSettings control Bump Mine throwing and flight.
type BumpmineSettings struct {
	ThrowIntervalSecs float32 `toml:"throw_interval_secs"`
	ThrowSpeed        float32 `toml:"throw_speed"`
	ThrowSpawnOffset  float32 `toml:"throw_spawn_offset"`
	Gravity           float32 `toml:"gravity"`
}

// Default returns the default settings.
func Default() Settings {
	s := Settings{}
	s.Simulation.TickRate = 64
	s.Simulation.Timescale = 1
	s.Simulation.Subtick = true
	s.Simulation.Interpolate = true

	s.Movement.ForwardSpeed = game.DefaultForwardSpeed
	s.Movement.BackSpeed = game.DefaultBackSpeed
	s.Movement.SideSpeed = game.DefaultSideSpeed
	s.Movement.Gravity = game.DefaultGravity
	s.Movement.Friction = game.DefaultFriction
	s.Movement.StopSpeed = game.DefaultStopSpeed
	s.Movement.Accelerate = game.DefaultAccelerate
	s.Movement.AirAccelerate = game.DefaultAirAccelerate
	s.Movement.AirSpeedCap = game.DefaultAirSpeedCap
	s.Movement.JumpImpulse = game.DefaultJumpImpulse

	s.MaxSpeed.Unarmed = 260
	s.MaxSpeed.Knife = 250
	s.MaxSpeed.BumpMine = 245

	s.Bumpmine.ThrowIntervalSecs = game.BumpThrowIntervalSecs
	s.Bumpmine.ThrowSpeed = game.BumpThrowSpeed
	s.Bumpmine.ThrowSpawnOffset = game.BumpThrowSpawnOffset
	s.Bumpmine.Gravity = game.DefaultGravity
	return s
}

// StepDuration returns the simulated duration of a single tick.
func (s Settings) StepDuration() time.Duration {
	if s.Simulation.TickRate <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / s.Simulation.TickRate)
}

// MaxPlayerRunningSpeed returns the maximum running speed of a player carrying the given loadout.
func (s Settings) MaxPlayerRunningSpeed(loadout player.Loadout) float32 {
	switch loadout.Active {
	case player.WeaponKnife:
		return s.MaxSpeed.Knife
	case player.WeaponBumpMine:
		return s.MaxSpeed.BumpMine
	default:
		return s.MaxSpeed.Unarmed
	}
}

// Validate returns an error if the settings cannot drive a simulation.
func (s Settings) Validate() error {
	if s.Simulation.TickRate <= 0 {
		return fmt.Errorf("simulation.tick_rate must be positive, got %v", s.Simulation.TickRate)
	}
	if s.Simulation.Timescale <= 0 {
		return fmt.Errorf("simulation.timescale must be positive, got %v", s.Simulation.Timescale)
	}
	if s.Bumpmine.ThrowIntervalSecs < 0 {
		return fmt.Errorf("bumpmine.throw_interval_secs must not be negative, got %v", s.Bumpmine.ThrowIntervalSecs)
	}
	return nil
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}

	data, err := toml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("error encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing settings: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading settings: %w", err)
	}

	s := Default()
	if err = toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding settings: %w", err)
	}
	if err = s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadOrCreate loads the settings file at path, writing the defaults to it first if it is missing.
func LoadOrCreate(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := SaveDefault(path); err != nil {
			return Settings{}, err
		}
	}
	return Load(path)
}
