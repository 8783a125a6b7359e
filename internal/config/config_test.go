package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.RoomCodeLength != 6 {
		t.Errorf("roomCodeLength = %d, want 6", cfg.Server.RoomCodeLength)
	}
	if cfg.Game.Rounds != 3 {
		t.Errorf("rounds = %d, want 3", cfg.Game.Rounds)
	}
	if cfg.Game.TurnDuration != 60 {
		t.Errorf("turnDuration = %d, want 60", cfg.Game.TurnDuration)
	}
	if cfg.Game.CountdownSeconds != 5 {
		t.Errorf("countdownSeconds = %d, want 5", cfg.Game.CountdownSeconds)
	}
	if !cfg.Game.AllowNegativeScores {
		t.Error("allowNegativeScores = false, want true")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *ServerConfig {
		cfg := DefaultConfig()
		cfg.Server.Port = "8080"
		cfg.Server.Host = "0.0.0.0"
		return cfg
	}

	t.Run("valid config passes", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Port = ""
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "PORT") {
			t.Errorf("Validate() error = %v, want PORT error", err)
		}
	})

	t.Run("missing host", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Host = ""
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "HOST") {
			t.Errorf("Validate() error = %v, want HOST error", err)
		}
	})

	t.Run("short room codes rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Server.RoomCodeLength = 2
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() accepted roomCodeLength 2")
		}
	})

	t.Run("bad game settings rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Game.Rounds = 0
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() accepted 0 rounds")
		}

		cfg = valid()
		cfg.Game.TurnDuration = 2
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() accepted 2s turns")
		}

		cfg = valid()
		cfg.Game.CountdownSeconds = 0
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() accepted 0s countdown")
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("requires PORT and HOST", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("HOST", "")
		if _, err := LoadConfig(""); err == nil {
			t.Error("LoadConfig() succeeded without PORT/HOST")
		}
	})

	t.Run("env vars and defaults", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("HOST", "127.0.0.1")

		cfg, err := LoadConfig("")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Host != "127.0.0.1" {
			t.Errorf("host = %s, want 127.0.0.1", cfg.Server.Host)
		}
		if cfg.Game.Rounds != 3 {
			t.Errorf("rounds = %d, want default 3", cfg.Game.Rounds)
		}
		if cfg.Server.RoomCodeLength != 6 {
			t.Errorf("roomCodeLength = %d, want default 6", cfg.Server.RoomCodeLength)
		}
	})
}
