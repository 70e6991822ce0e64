package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-1024/internal/config"
	"github.com/vovakirdan/tui-1024/internal/games/t1024"
)

func TestRunConfigDefault(t *testing.T) {
	var buf bytes.Buffer
	configCmd.SetOut(&buf)
	flagDefault = true
	t.Cleanup(func() {
		flagDefault = false
		configCmd.SetOut(nil)
	})

	runConfig(configCmd, nil)

	if want := string(config.GetDefaultYAML(t1024.GameID)); buf.String() != want {
		t.Errorf("config --default printed %q, want the embedded defaults", buf.String())
	}
	if !strings.HasPrefix(buf.String(), "# Default configuration") {
		t.Error("embedded defaults should keep their comments")
	}
}

func TestRunConfigEffective(t *testing.T) {
	var buf bytes.Buffer
	configCmd.SetOut(&buf)
	saved := cfg
	cfg = config.DefaultT1024Config()
	cfg.Undo.MaxPerGame = 7
	t.Cleanup(func() {
		cfg = saved
		configCmd.SetOut(nil)
	})

	runConfig(configCmd, nil)

	if !strings.Contains(buf.String(), "max_per_game: 7") {
		t.Errorf("config output = %q, want the effective undo budget", buf.String())
	}
}
