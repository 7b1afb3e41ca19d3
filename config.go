package main

import (
	"github.com/BurntSushi/toml"
)

// Config holds the parameters required for running a simulation.
type Config struct {
	// Frontend is one of window, terminal or web.
	Frontend string

	Medium      string  // air or water
	Temperature float64 // °C, 0 means the medium's default
	Salinity    float64 // kg/m³, water only, 0 means the default

	Count int     // number of bubbles
	Size  float64 // bubble size budget, px

	Width  int // initial surface width, px
	Height int // initial surface height, px

	Seed int64 // 0 seeds from the clock

	// Web frontend only.
	Address string
	Root    string
	FPS     int
}

// DefaultConf are the default parameters.
var DefaultConf = &Config{
	Frontend: "window",
	Medium:   "air",
	Count:    25,
	Size:     60,
	Width:    800,
	Height:   600,
	Address:  "localhost:5000",
	Root:     ".",
	FPS:      60,
}

// ParseConfig parses the TOML config file whose path is provided.
func ParseConfig(path string) (*Config, error) {
	// config file overwrites default parameters
	conf := *DefaultConf
	_, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return nil, err
	}
	return &conf, nil
}
