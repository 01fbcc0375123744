package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/bumpmine-sim/subtick/replay"
	"github.com/sirupsen/logrus"
)

func verifyCommand(log *logrus.Logger, args []string) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	worldPath := fs.String("world", "", "box world file the recording was made in (a flat floor if empty)")
	runs := fs.Int("runs", runtime.NumCPU(), "number of replays to run")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected the path of a recording")
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("unable to open recording: %w", err)
	}
	defer f.Close()

	rec, err := replay.Load(f)
	if err != nil {
		return err
	}
	w, err := loadWorld(*worldPath)
	if err != nil {
		return err
	}

	report, err := replay.Verify(rec, w, *runs, log)
	if err != nil {
		return err
	}
	if !report.OK() {
		return fmt.Errorf("recording did not replay deterministically: %s", report)
	}
	log.Infof("recording replayed deterministically %s", report)
	return nil
}
