package calc

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigEnv names the preset file when --config is not given.
const ConfigEnv = "RANGETYPE_CONFIG"

// Presets maps a name to a range in ParseBounds syntax, read from YAML:
//
//	presets:
//	  percent: "[0,100]"
//	  unit: "-1..1"
type Presets struct {
	Presets map[string]string `yaml:"presets"`
}

func LoadPresets(path string) (*Presets, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var p Presets
	if err := yaml.Unmarshal(content, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &p, nil
}

func (p *Presets) Lookup(name string) (string, error) {
	if r, ok := p.Presets[name]; ok {
		return r, nil
	}
	return "", fmt.Errorf("unknown preset %q, known presets are: %s", name, strings.Join(p.Names(), ", "))
}

func (p *Presets) Names() []string {
	names := make([]string, 0, len(p.Presets))
	for name := range p.Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// configPath returns the flag value, or the environment fallback.
func configPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(ConfigEnv)
}

// resolveRange returns the range text to parse: --range wins, otherwise the
// preset is looked up in the config file.
func resolveRange(spec *CmdSpec) (string, error) {
	if spec.Range != "" {
		return spec.Range, nil
	}
	if spec.Preset == "" {
		return "", fmt.Errorf("one of --range or --preset is required")
	}
	path := configPath(spec.ConfigPath)
	if path == "" {
		return "", fmt.Errorf("--preset %s needs a config file, set --config or %s", spec.Preset, ConfigEnv)
	}
	presets, err := LoadPresets(path)
	if err != nil {
		return "", err
	}
	return presets.Lookup(spec.Preset)
}
