package ui

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

type SpinnerCfg struct {
	Message  string
	Tokens   []string
	Duration time.Duration
	Writer   io.Writer
}

var s = &spinner.Spinner{}

func StartSpinner(cfg *SpinnerCfg) {
	if cfg.Tokens == nil {
		cfg.Tokens = spinner.CharSets[14]
	}
	if cfg.Duration.Microseconds() == 0 {
		cfg.Duration = time.Duration(100) * time.Millisecond
	}
	s = spinner.New(cfg.Tokens, cfg.Duration)
	s.Writer = os.Stderr
	if cfg.Writer != nil {
		s.Writer = cfg.Writer
	}

	if cfg.Message != "" {
		s.Suffix = " " + cfg.Message
	}

	s.Start()
}

func StopSpinner(msg string) {
	if msg != "" {
		s.FinalMSG = msg + "\n"
	}

	s.Stop()
}
