// Package config loads simulation settings from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete pokerhand configuration file.
type Config struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
}

// SimulationSettings contains settings for the simulate command.
type SimulationSettings struct {
	Hands   int   `hcl:"hands,optional"`
	Workers int   `hcl:"workers,optional"`
	Seed    int64 `hcl:"seed,optional"`
}

// Default returns the default configuration used when no file exists.
func Default() *Config {
	return &Config{
		Simulation: SimulationSettings{
			Hands:   100000,
			Workers: 0, // 0 means one worker per CPU
			Seed:    0, // 0 means seed from the current time
		},
	}
}

// Load loads configuration from an HCL file, falling back to defaults
// when the file does not exist. Unset fields keep their default values.
func Load(filename string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return config, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var parsed Config
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if parsed.Simulation.Hands > 0 {
		config.Simulation.Hands = parsed.Simulation.Hands
	}
	if parsed.Simulation.Workers > 0 {
		config.Simulation.Workers = parsed.Simulation.Workers
	}
	if parsed.Simulation.Seed != 0 {
		config.Simulation.Seed = parsed.Simulation.Seed
	}

	return config, nil
}
