package config

import (
	_ "embed"
)

//go:embed defaults/connect4.yaml
var defaultYAML []byte

// Default returns the built-in configuration: purple goes first,
// orange second, on white.
func Default() Config {
	return Config{
		Players: PlayersConfig{
			A: PlayerConfig{Name: "Purple", Color: "purple"},
			B: PlayerConfig{Name: "Orange", Color: "orange"},
		},
		Board: BoardConfig{
			Piece:      "●",
			WinPiece:   "◆",
			Empty:      "○",
			EmptyColor: "white",
			FrameColor: "blue",
		},
		Server: ServerConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
		Storage: StorageConfig{
			Path:   "~/.connect4/results.db",
			Record: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
