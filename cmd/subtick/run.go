package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bumpmine-sim/subtick/debug"
	"github.com/bumpmine-sim/subtick/game"
	"github.com/bumpmine-sim/subtick/replay"
	"github.com/bumpmine-sim/subtick/settings"
	"github.com/bumpmine-sim/subtick/simulation"
	"github.com/bumpmine-sim/subtick/world"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

func runCommand(log *logrus.Logger, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	settingsPath := fs.String("settings", "settings.toml", "settings file, created with defaults if missing")
	worldPath := fs.String("world", "", "box world file (a flat floor is used if empty)")
	recordPath := fs.String("record", "", "file to record the session to")
	duration := fs.Duration("duration", 5*time.Second, "real time length of the session")
	pollRate := fs.Duration("poll", 4*time.Millisecond, "input polling interval")
	debugModes := fs.String("debug", "", "comma separated debug modes (ticks, subtick, drawable, movement)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := settings.LoadOrCreate(*settingsPath)
	if err != nil {
		return err
	}
	w, err := loadWorld(*worldPath)
	if err != nil {
		return err
	}

	dbg, err := newDebugger(log, *debugModes)
	if err != nil {
		return err
	}

	clock := simulation.NewManualClock(time.Now().Round(0))
	header := replay.Header{
		Start:     clock.Now().UnixNano(),
		Step:      s.StepDuration(),
		Timescale: s.Simulation.Timescale,
		Settings:  s,
	}

	var rec *replay.Recorder
	if *recordPath != "" {
		f, err := os.Create(*recordPath)
		if err != nil {
			return fmt.Errorf("unable to create recording: %w", err)
		}
		defer f.Close()
		if rec, err = replay.NewRecorder(f, header); err != nil {
			return err
		}
	}

	d := simulation.NewDriver(simulation.NewEnv(w, s, dbg), simulation.Options{
		Logger:               log,
		Clock:                clock,
		DisableInterpolation: !s.Simulation.Interpolate,
		OnTick: func(t simulation.TickRecord) {
			if rec == nil {
				return
			}
			if err := rec.Tick(t); err != nil {
				log.Warnf("unable to record tick %d: %v", t.ID, err)
			}
		},
	})
	d.Start(header.Step, header.Timescale, simulation.NewWorldState(mgl32.Vec3{}))

	start := clock.Now()
	ticker := time.NewTicker(*pollRate)
	defer ticker.Stop()

	var frameCosts []float64
	for now := range ticker.C {
		now = now.Round(0)
		if now.Sub(start) > *duration {
			break
		}
		clock.Set(now)

		sample := scriptedSample(now.Sub(start))
		sample.SampleTime = now

		begin := time.Now()
		d.ProcessInput(sample, s.Simulation.Subtick)
		frameCosts = append(frameCosts, float64(time.Since(begin).Microseconds()))

		if rec != nil {
			if err := rec.Input(sample, s.Simulation.Subtick); err != nil {
				return err
			}
		}
	}

	log.WithFields(sessionFields(d)).Info("session finished")
	log.WithFields(logrus.Fields{
		"samples":   len(frameCosts),
		"mean_us":   game.Round32(float32(game.Mean(frameCosts)), 2),
		"median_us": game.Median(frameCosts),
		"stddev_us": game.Round32(float32(game.StandardDeviation(frameCosts)), 2),
	}).Info("input processing cost")
	if rec != nil {
		log.Infof("recorded %d events to %s", rec.Events(), *recordPath)
	}
	return nil
}

// sessionFields summarises the finalized state of a driver for the end of session log.
func sessionFields(d *simulation.Driver) logrus.Fields {
	final := d.LatestActualWorldState()
	fields := logrus.Fields{
		"ticks":       d.FinalizedTickID(),
		"simtime":     final.SimTime,
		"origin":      final.Movement.AbsOrigin,
		"speed":       game.Vec3HzLen(final.Movement.Velocity),
		"projectiles": len(final.Projectiles),
		"drawn_at":    d.LatestDrawableWorldState().SimTime,
	}
	if last, ok := d.History().Latest(); ok {
		fields["last_tick"] = last.ID
		fields["digest"] = fmt.Sprintf("%016x", last.Digest)
	}
	return fields
}

func loadWorld(path string) (*world.BoxWorld, error) {
	if path == "" {
		return world.Flat(8192), nil
	}
	return world.LoadBoxes(path)
}

func newDebugger(log *logrus.Logger, modes string) (*debug.Debugger, error) {
	dbg := debug.New(log)
	if modes == "" {
		return dbg, nil
	}
	for _, name := range strings.Split(modes, ",") {
		m, ok := debug.ParseMode(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown debug mode %q", name)
		}
		dbg.Enable(m)
	}
	log.SetLevel(logrus.DebugLevel)
	return dbg, nil
}
