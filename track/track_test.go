package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-racer/constants"
	"github.com/lixenwraith/vi-racer/vmath"
)

func TestProfileFor(t *testing.T) {
	tests := []struct {
		id   string
		want Profile
	}{
		{NewYork, Profile{"heavy", "moderate", "clear", 0.8}},
		{Bangalore, Profile{"very heavy", "many", "clear", 1.0}},
		{Paris, DefaultProfile},
		{"atlantis", DefaultProfile},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, ProfileFor(tt.id))
		})
	}
}

func TestNew(t *testing.T) {
	tr := New(Bangalore, 0, constants.DefaultAICars, 1, vmath.NewFastRand(3), nil)

	assert.Equal(t, Bangalore, tr.ID)
	assert.Equal(t, constants.DefaultTrackLength, tr.Length, "non-positive length falls back to the default")
	assert.Equal(t, constants.LaneCount, tr.LaneCount)
	assert.Equal(t, "assets/bangalore.svg", tr.Background)
	assert.Equal(t, 1.0, tr.Profile.Difficulty)

	require.Len(t, tr.Traffic.AICars(), constants.DefaultAICars)
	for i, car := range tr.Traffic.AICars() {
		assert.Equal(t, i+1, car.ID, "IDs start after the reserved player ID")
		assert.Equal(t, i, car.Lane)
		assert.Equal(t, tr.Length, car.Position)
	}
	assert.Empty(t, tr.Traffic.OncomingCars())
}

func TestFinishVisible(t *testing.T) {
	tr := New(Paris, 5000, 0, 1, vmath.NewFastRand(1), nil)
	assert.False(t, tr.FinishVisible(5000))
	assert.True(t, tr.FinishVisible(constants.ViewportHeight-constants.PlayerScreenOffset))
	assert.True(t, tr.FinishVisible(10))
}
