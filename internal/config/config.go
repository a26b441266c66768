// Package config provides YAML-based configuration loading for the game:
// player names and colors, board glyphs, SSH server and storage settings.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

// Config is the complete application configuration.
type Config struct {
	Players PlayersConfig `yaml:"players"`
	Board   BoardConfig   `yaml:"board"`
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// PlayersConfig names and colors the two sides.
type PlayersConfig struct {
	A PlayerConfig `yaml:"a"`
	B PlayerConfig `yaml:"b"`
}

// PlayerConfig defines how one side is presented.
type PlayerConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// BoardConfig defines the glyphs and colors of the grid.
type BoardConfig struct {
	Piece      string `yaml:"piece"`       // Glyph for a dropped piece
	WinPiece   string `yaml:"win_piece"`   // Glyph for pieces of the winning line
	Empty      string `yaml:"empty"`       // Glyph for an empty cell
	EmptyColor string `yaml:"empty_color"` // Background color of empty cells
	FrameColor string `yaml:"frame_color"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"` // Empty means ~/.connect4/host_key
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// StorageConfig defines where finished-match results are recorded.
type StorageConfig struct {
	Path   string `yaml:"path"`
	Record bool   `yaml:"record"` // Record results of finished matches
}

// LogConfig defines logging behavior.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Theme is the resolved presentation palette.
type Theme struct {
	NameA      string
	NameB      string
	ColorA     core.Color
	ColorB     core.Color
	EmptyColor core.Color
	FrameColor core.Color
	Piece      rune
	WinPiece   rune
	Empty      rune
}

// Validate checks the configuration for values the game cannot use.
func (c Config) Validate() error {
	var errs []error

	if c.Players.A.Name == "" || c.Players.B.Name == "" {
		errs = append(errs, errors.New("player names must not be empty"))
	}
	if c.Players.A.Name != "" && c.Players.A.Name == c.Players.B.Name {
		errs = append(errs, fmt.Errorf("players share the name %q", c.Players.A.Name))
	}

	if _, err := c.Theme(); err != nil {
		errs = append(errs, err)
	}

	if c.Server.IdleTimeoutMinutes <= 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout_minutes must be positive, got %d", c.Server.IdleTimeoutMinutes))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Theme resolves color names and glyphs into a Theme.
func (c Config) Theme() (Theme, error) {
	var t Theme
	var err error

	t.NameA = c.Players.A.Name
	t.NameB = c.Players.B.Name

	if t.ColorA, err = core.ParseColor(c.Players.A.Color); err != nil {
		return t, fmt.Errorf("players.a.color: %w", err)
	}
	if t.ColorB, err = core.ParseColor(c.Players.B.Color); err != nil {
		return t, fmt.Errorf("players.b.color: %w", err)
	}
	if t.ColorA == t.ColorB {
		return t, fmt.Errorf("players must have different colors, both are %q", c.Players.A.Color)
	}
	if t.EmptyColor, err = core.ParseColor(c.Board.EmptyColor); err != nil {
		return t, fmt.Errorf("board.empty_color: %w", err)
	}
	if t.FrameColor, err = core.ParseColor(c.Board.FrameColor); err != nil {
		return t, fmt.Errorf("board.frame_color: %w", err)
	}

	if t.Piece, err = glyph("board.piece", c.Board.Piece); err != nil {
		return t, err
	}
	if t.WinPiece, err = glyph("board.win_piece", c.Board.WinPiece); err != nil {
		return t, err
	}
	if t.Empty, err = glyph("board.empty", c.Board.Empty); err != nil {
		return t, err
	}
	return t, nil
}

// glyph requires s to be exactly one rune.
func glyph(field, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s must be a single character, got %q", field, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
