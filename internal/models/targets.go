package models

// TargetsFile maps component names to required uptime percentages.
type TargetsFile struct {
	Targets map[string]float64 `yaml:"targets"`
}
