package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationsFor(t *testing.T) {
	tests := []struct {
		name      string
		technique string
		work      time.Duration
		brk       time.Duration
		longBreak time.Duration
		cycles    int
	}{
		{name: "pomodoro", technique: TechniquePomodoro, work: 25 * time.Minute, brk: 5 * time.Minute, longBreak: 15 * time.Minute, cycles: 4},
		{name: "52/17", technique: Technique5217, work: 52 * time.Minute, brk: 17 * time.Minute},
		{name: "90 minute", technique: Technique90Minute, work: 90 * time.Minute, brk: 25 * time.Minute},
		{name: "sprint rounds break up", technique: TechniqueSprint, work: 15 * time.Minute, brk: 2 * time.Minute, longBreak: 10 * time.Minute, cycles: 4},
		{name: "deadline", technique: TechniqueDeadline},
		{name: "custom goal", technique: TechniqueCustomGoal},
		{name: "unknown behaves as custom goal", technique: "Flowtime"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DurationsFor(tt.technique)
			assert.Equal(t, tt.technique, config.Name)
			assert.Equal(t, tt.work, config.Work)
			assert.Equal(t, tt.brk, config.Break)
			assert.Equal(t, tt.longBreak, config.LongBreak)
			assert.Equal(t, tt.cycles, config.CyclesBeforeLongBreak)
		})
	}
}

func TestBreakForUsesLongBreakOnLastCycle(t *testing.T) {
	pomodoro := DurationsFor(TechniquePomodoro)
	assert.Equal(t, 5*time.Minute, pomodoro.BreakFor(1))
	assert.Equal(t, 5*time.Minute, pomodoro.BreakFor(3))
	assert.Equal(t, 15*time.Minute, pomodoro.BreakFor(4))

	fiftyTwo := DurationsFor(Technique5217)
	assert.Equal(t, 17*time.Minute, fiftyTwo.BreakFor(4))
}

func TestNextCycle(t *testing.T) {
	pomodoro := DurationsFor(TechniquePomodoro)
	assert.Equal(t, 2, pomodoro.NextCycle(1))
	assert.Equal(t, 4, pomodoro.NextCycle(3))
	assert.Equal(t, 1, pomodoro.NextCycle(4))

	ninety := DurationsFor(Technique90Minute)
	assert.False(t, ninety.Cyclic())
	assert.Equal(t, 1, ninety.NextCycle(1))
}

func TestTechniquesOrder(t *testing.T) {
	assert.Equal(t, []string{
		TechniquePomodoro, Technique5217, Technique90Minute,
		TechniqueSprint, TechniqueDeadline, TechniqueCustomGoal,
	}, Techniques())
}
