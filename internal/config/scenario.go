package config

// ScenarioConfig describes one battle setup: the two force compositions
// (type id -> headcount) and the engine settings.
type ScenarioConfig struct {
	Name                    string         `yaml:"name"`
	ScaleEfficiencyByHealth bool           `yaml:"scale_efficiency_by_health"`
	MaxRounds               int            `yaml:"max_rounds"`
	ForceA                  map[string]int `yaml:"force_a"`
	ForceB                  map[string]int `yaml:"force_b"`
	Note                    string         `yaml:"note"`
}
