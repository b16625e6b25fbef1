package main

import (
	"flag"
	"io"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"pac3d/internal/desktop"
	"pac3d/internal/tui"
)

func main() {
	opts := desktop.DefaultOptions()

	useTUI := flag.Bool("tui", false, "play in the terminal instead of a window")
	level := flag.String("log-level", envOr("PAC3D_LOG_LEVEL", "info"), "log level (debug, info, warn, error)")
	logFile := flag.String("log-file", os.Getenv("PAC3D_LOG_FILE"), "write logs to this file instead of stderr")
	mute := flag.Bool("mute", envBool("PAC3D_MUTE"), "disable sound effects")
	flag.Float64Var(&opts.Volume, "volume", opts.Volume, "sound effect volume, 0..1")
	flag.Parse()

	lvl, err := log.ParseLevel(*level)
	if err != nil {
		log.WithError(err).Warn("unknown log level, using info")
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)

	switch {
	case *logFile != "":
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.WithError(err).Fatal("open log file")
		}
		defer f.Close()
		log.SetOutput(f)
	case *useTUI:
		// Anything on stderr would tear the board.
		log.SetOutput(io.Discard)
	}

	opts.Mute = *mute
	if *useTUI {
		err = tui.Run(tui.Options{Mute: opts.Mute, Volume: opts.Volume})
	} else {
		err = desktop.Run(opts)
	}
	if err != nil {
		if *logFile == "" {
			log.SetOutput(os.Stderr)
		}
		log.WithError(err).Error("pac3d")
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
