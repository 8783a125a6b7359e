package config

import (
	"fmt"
	"time"
)

// This file defines the configuration structures used by viper_config.go
// The actual loading is handled by viper in viper_config.go

// ServerConfig represents the full server configuration
type ServerConfig struct {
	Server ServerSettings `yaml:"server"`
	Game   GameSettings   `yaml:"game"`
}

// ServerSettings contains server-wide settings
type ServerSettings struct {
	Port            string        `yaml:"port"`
	Host            string        `yaml:"host"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	IdleTimeout     time.Duration `yaml:"idleTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`

	RoomCodeLength int           `yaml:"roomCodeLength"`
	RoomTimeout    time.Duration `yaml:"roomTimeout"` // idle rooms older than this are evicted

	// Rate limiting (using golang.org/x/time/rate)
	RateLimit      float64 `yaml:"rateLimit"`
	RateLimitBurst int     `yaml:"rateLimitBurst"`

	MaxRequestSize int64 `yaml:"maxRequestSize"`
}

// GameSettings contains the per-room gameplay defaults
type GameSettings struct {
	Rounds              int  `yaml:"rounds"`
	TurnDuration        int  `yaml:"turnDuration"` // seconds
	CountdownSeconds    int  `yaml:"countdownSeconds"`
	AllowNegativeScores bool `yaml:"allowNegativeScores"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		Server: ServerSettings{
			Port:            "", // Must be set via env
			Host:            "", // Must be set via env
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     0, // 0 for long-lived websocket connections
			ShutdownTimeout: 30 * time.Second,

			RoomCodeLength: 6,
			RoomTimeout:    2 * time.Hour,

			RateLimit:      10,
			RateLimitBurst: 20,

			MaxRequestSize: 1048576, // 1MB
		},
		Game: GameSettings{
			Rounds:              3,
			TurnDuration:        60,
			CountdownSeconds:    5,
			AllowNegativeScores: true,
		},
	}
}

// Validate checks if the configuration is valid
func (c *ServerConfig) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT environment variable must be set")
	}
	if c.Server.Host == "" {
		return fmt.Errorf("HOST environment variable must be set")
	}

	if c.Server.RoomCodeLength < 3 {
		return fmt.Errorf("roomCodeLength must be at least 3")
	}

	if c.Game.Rounds < 1 {
		return fmt.Errorf("game rounds must be at least 1")
	}
	if c.Game.TurnDuration < 5 {
		return fmt.Errorf("turnDuration must be at least 5 seconds")
	}
	if c.Game.CountdownSeconds < 1 {
		return fmt.Errorf("countdownSeconds must be at least 1")
	}

	return nil
}
