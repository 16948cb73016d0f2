package model

import "time"

// Technique names known to the catalog.
const (
	TechniquePomodoro   = "Pomodoro"
	Technique5217       = "52/17"
	Technique90Minute   = "90-Minute"
	TechniqueSprint     = "Sprint"
	TechniqueDeadline   = "Deadline"
	TechniqueCustomGoal = "Custom Goal"
)

// TechniqueConfig defines the phase schedule of a study technique.
// A zero Work means the caller supplies the work length.
type TechniqueConfig struct {
	Name                  string
	Work                  time.Duration
	Break                 time.Duration
	LongBreak             time.Duration
	CyclesBeforeLongBreak int
}

// Cyclic reports whether the technique counts cycles toward a long break.
func (config TechniqueConfig) Cyclic() bool {
	return config.CyclesBeforeLongBreak > 0 && config.LongBreak > 0
}

// BreakFor returns the break that follows the work phase of the given cycle.
func (config TechniqueConfig) BreakFor(cycle int) time.Duration {
	if config.Cyclic() && cycle == config.CyclesBeforeLongBreak {
		return config.LongBreak
	}
	return config.Break
}

// NextCycle returns the cycle number that follows cycle.
func (config TechniqueConfig) NextCycle(cycle int) int {
	if !config.Cyclic() {
		return 1
	}
	if cycle >= config.CyclesBeforeLongBreak {
		return 1
	}
	return cycle + 1
}

var catalog = []TechniqueConfig{
	{
		Name:                  TechniquePomodoro,
		Work:                  25 * time.Minute,
		Break:                 5 * time.Minute,
		LongBreak:             15 * time.Minute,
		CyclesBeforeLongBreak: 4,
	},
	{Name: Technique5217, Work: 52 * time.Minute, Break: 17 * time.Minute},
	{Name: Technique90Minute, Work: 90 * time.Minute, Break: 25 * time.Minute},
	{
		// 1.5 minute break rounded up to whole minutes.
		Name:                  TechniqueSprint,
		Work:                  15 * time.Minute,
		Break:                 2 * time.Minute,
		LongBreak:             10 * time.Minute,
		CyclesBeforeLongBreak: 4,
	},
	{Name: TechniqueDeadline},
	{Name: TechniqueCustomGoal},
}

// DurationsFor looks up a technique by name.
// Unknown names behave as Custom Goal: caller-supplied work, no break, no cycling.
func DurationsFor(name string) TechniqueConfig {
	for _, config := range catalog {
		if config.Name == name {
			return config
		}
	}
	return TechniqueConfig{Name: name}
}

// Techniques returns the catalog names in display order.
func Techniques() []string {
	names := make([]string, 0, len(catalog))
	for _, config := range catalog {
		names = append(names, config.Name)
	}
	return names
}
