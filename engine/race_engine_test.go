package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/constants"
	"github.com/lixenwraith/vi-racer/events"
	"github.com/lixenwraith/vi-racer/progression"
	"github.com/lixenwraith/vi-racer/track"
	"github.com/lixenwraith/vi-racer/vmath"
)

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// soloConfig races without opponents so player kinematics stay unperturbed
var soloConfig = Config{TrackLength: 20000, AICars: 0}

func newRace(t *testing.T, cfg Config, tracker *progression.Tracker) (*Engine, *MockTimeProvider) {
	t.Helper()
	e := New(cfg, tracker, vmath.NewFastRand(42))
	require.NoError(t, e.SelectCarClass(component.ClassBasic))
	require.NoError(t, e.SelectTrack(track.NewYork))
	clock := NewMockTimeProvider(t0)
	require.NoError(t, e.StartRace(clock.Now()))
	return e, clock
}

// goGreen ticks through the countdown, ending on the tick that reaches zero
func goGreen(e *Engine, clock *MockTimeProvider) {
	for e.Snapshot(clock.Now()).Countdown > 0 {
		e.Tick(clock.Advance(constants.FrameUpdateInterval))
	}
}

func drain(e *Engine, t events.EventType) []events.GameEvent {
	var out []events.GameEvent
	for _, ev := range e.Events().Consume() {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

func TestRankPosition(t *testing.T) {
	tests := []struct {
		name   string
		player float64
		ai     []float64
		want   int
	}{
		{"two ahead", 500, []float64{300, 600, 450, 700}, 3},
		{"leading", 900, []float64{300, 600, 450, 700}, 1},
		{"last", 100, []float64{300, 600, 450, 700}, 5},
		{"tie is not ahead", 600, []float64{600}, 1},
		{"no opponents", 0, nil, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RankPosition(tt.player, tt.ai))
		})
	}
}

func TestSelection(t *testing.T) {
	e := New(DefaultConfig(), nil, vmath.NewFastRand(1))

	err := e.SelectCarClass(component.ClassSports)
	assert.True(t, errors.Is(err, ErrCarLocked))
	assert.ErrorIs(t, e.SelectCarClass(component.ClassID(9)), ErrCarLocked)
	assert.ErrorIs(t, e.SelectTrack(""), ErrUnknownTrack)
	assert.ErrorIs(t, e.StartRace(t0), ErrSelectionIncomplete)

	require.NoError(t, e.SelectCarClass(component.ClassBasic))
	assert.ErrorIs(t, e.StartRace(t0), ErrSelectionIncomplete, "track still missing")
	assert.Equal(t, StateMenu, e.State())

	require.NoError(t, e.SelectTrack("atlantis"))
	require.NoError(t, e.StartRace(t0))
	assert.Equal(t, StatePlaying, e.State())
	assert.Equal(t, track.DefaultProfile, e.Track().Profile)

	assert.ErrorIs(t, e.SelectCarClass(component.ClassBasic), ErrNotInMenu)
	assert.ErrorIs(t, e.SelectTrack(track.Paris), ErrNotInMenu)
	assert.ErrorIs(t, e.StartRace(t0), ErrNotInMenu)
}

func TestStartRace(t *testing.T) {
	e, clock := newRace(t, DefaultConfig(), nil)

	p := e.Player()
	require.NotNil(t, p)
	assert.Equal(t, PlayerID, p.ID)
	assert.True(t, p.Player)
	assert.Equal(t, constants.PlayerStartLane, p.Lane)
	assert.Equal(t, constants.DefaultTrackLength, p.Position)
	assert.Equal(t, 300.0, p.MaxSpeed)

	snap := e.Snapshot(clock.Now())
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, 3, snap.Countdown)
	assert.Equal(t, 1, snap.Position)
	assert.Equal(t, "1/5", snap.PositionLabel())
	assert.Len(t, snap.AI, constants.DefaultAICars)
	assert.Zero(t, snap.Distance)

	evs := e.Events().Consume()
	require.Len(t, evs, 2)
	assert.Equal(t, events.EventRaceStarted, evs[0].Type)
	started := evs[0].Payload.(*events.RaceStartedPayload)
	assert.Equal(t, track.NewYork, started.TrackID)
	assert.Equal(t, component.ClassBasic, started.Class)
	assert.Equal(t, 3, evs[1].Payload.(*events.CountdownPayload).Remaining)
}

func TestCountdownGatesControl(t *testing.T) {
	e, clock := newRace(t, soloConfig, nil)
	start := e.Player().Position
	e.Events().Clear()

	steps := []struct {
		at   time.Duration
		want int
	}{
		{500 * time.Millisecond, 3},
		{999 * time.Millisecond, 3},
		{1000 * time.Millisecond, 2},
		{2000 * time.Millisecond, 1},
		{3000 * time.Millisecond, 0},
	}
	for _, st := range steps {
		assert.False(t, e.Command(IntentAccelerate), "no control at %v", st.at)
		clock.SetTime(t0.Add(st.at))
		snap := e.Tick(clock.Now())
		assert.Equal(t, st.want, snap.Countdown, "countdown at %v", st.at)
		assert.Zero(t, snap.Speed)
		assert.Equal(t, start, snap.PlayerPos, "no movement during countdown")
		assert.Empty(t, snap.Oncoming, "traffic frozen during countdown")
	}

	evs := e.Events().Consume()
	require.Len(t, evs, 3)
	assert.Equal(t, 2, evs[0].Payload.(*events.CountdownPayload).Remaining)
	assert.Equal(t, 1, evs[1].Payload.(*events.CountdownPayload).Remaining)
	assert.Equal(t, events.EventGreenLight, evs[2].Type)

	require.True(t, e.Command(IntentAccelerate))
	snap := e.Tick(clock.Advance(constants.FrameUpdateInterval))
	assert.Equal(t, 6, snap.Speed, "2.5 plus the 3.75 launch bonus")
	assert.Less(t, snap.PlayerPos, start)
}

func TestCountdownCatchesUp(t *testing.T) {
	e, clock := newRace(t, soloConfig, nil)
	e.Events().Clear()

	snap := e.Tick(clock.Advance(5 * time.Second))
	assert.Equal(t, 0, snap.Countdown)
	assert.Len(t, drain(e, events.EventGreenLight), 1)
}

func TestCommandIntents(t *testing.T) {
	e, clock := newRace(t, soloConfig, nil)
	goGreen(e, clock)

	assert.False(t, e.Command(IntentNone))

	t.Run("later throttle wins", func(t *testing.T) {
		e.Player().Speed = 50
		e.Command(IntentAccelerate)
		e.Command(IntentBrake)
		e.Tick(clock.Advance(constants.FrameUpdateInterval))
		assert.InDelta(t, 46.0, e.Player().Speed, 1e-9)
	})

	t.Run("intents cleared after tick", func(t *testing.T) {
		e.Tick(clock.Advance(constants.FrameUpdateInterval))
		assert.InDelta(t, 46.0, e.Player().Speed, 1e-9)
	})

	t.Run("steer applies once", func(t *testing.T) {
		e.Events().Clear()
		e.Command(IntentLaneLeft)
		e.Tick(clock.Advance(constants.FrameUpdateInterval))
		assert.Equal(t, 1, e.Player().Lane)

		changes := drain(e, events.EventLaneChange)
		require.Len(t, changes, 1)
		p := changes[0].Payload.(*events.LaneChangePayload)
		assert.Equal(t, component.KindPlayer, p.Kind)
		assert.Equal(t, 2, p.From)
		assert.Equal(t, 1, p.To)
	})

	t.Run("road edge", func(t *testing.T) {
		e.Command(IntentLaneLeft)
		e.Tick(clock.Advance(constants.FrameUpdateInterval))
		e.Command(IntentLaneLeft)
		e.Tick(clock.Advance(constants.FrameUpdateInterval))
		assert.Equal(t, 0, e.Player().Lane)
	})
}

func TestPlayerCollisionBlocksSteering(t *testing.T) {
	e, clock := newRace(t, soloConfig, nil)
	goGreen(e, clock)
	e.Events().Clear()

	p := e.Player()
	p.Speed = 100
	blocker := component.NewVehicle(50, component.ClassBasic, false, constants.LaneCount)
	blocker.Lane = p.Lane
	blocker.Position = p.Position - 10
	blocker.Speed = blocker.MaxSpeed
	e.Track().Traffic.AddAICar(blocker)

	snap := e.Tick(clock.Advance(constants.FrameUpdateInterval))
	assert.True(t, snap.Damaged)
	assert.True(t, snap.Flash)
	assert.InDelta(t, 30.0, p.Speed, 1e-9)
	assert.Equal(t, constants.CollisionCooldownTicks, p.CollisionCooldown)

	hits := drain(e, events.EventCollision)
	require.NotEmpty(t, hits)
	assert.Equal(t, component.KindPlayer, hits[0].Payload.(*events.CollisionPayload).Kind)

	e.Command(IntentLaneRight)
	e.Tick(clock.Advance(constants.FrameUpdateInterval))
	assert.Equal(t, constants.PlayerStartLane, p.Lane, "no lane change during cooldown")

	snap = e.Tick(clock.Advance(constants.DamageFlashDuration))
	assert.False(t, snap.Flash)
}

func TestFinishRecordsOnce(t *testing.T) {
	tracker := progression.NewTracker()
	tracker.RecordRaceCompleted()
	tracker.RecordRaceCompleted()

	e, clock := newRace(t, soloConfig, tracker)
	goGreen(e, clock)
	e.Events().Clear()

	e.Player().Position = 5
	e.Player().Speed = 100
	snap := e.Tick(clock.Advance(2 * time.Second))

	assert.Equal(t, StateFinished, snap.State)
	require.NotNil(t, snap.Result)
	assert.Equal(t, 1, snap.Result.FinalPosition)
	assert.Equal(t, 2*time.Second, snap.Result.Elapsed)
	assert.Equal(t, 3, tracker.GamesPlayed())

	evs := e.Events().Consume()
	require.Len(t, evs, 3)
	assert.Equal(t, events.EventOncomingSpawned, evs[0].Type)
	assert.Equal(t, events.EventRaceFinished, evs[1].Type)
	assert.Equal(t, events.EventCarUnlocked, evs[2].Type)
	unlock := evs[2].Payload.(*events.CarUnlockedPayload)
	assert.Equal(t, component.ClassSports, unlock.Class)
	assert.Equal(t, 3, unlock.GamesPlayed)

	for i := 0; i < 10; i++ {
		assert.False(t, e.Command(IntentAccelerate))
		e.Tick(clock.Advance(constants.FrameUpdateInterval))
	}
	assert.Equal(t, 3, tracker.GamesPlayed(), "finish recorded once")
	assert.Zero(t, e.Events().Len())
}

func TestFullRace(t *testing.T) {
	tracker := progression.NewTracker()
	e, clock := newRace(t, Config{TrackLength: 30000, AICars: constants.DefaultAICars}, tracker)
	goGreen(e, clock)

	finished := 0
	var snap Snapshot
	for i := 0; i < 200000 && snap.State != StateFinished; i++ {
		e.Command(IntentAccelerate)
		snap = e.Tick(clock.Advance(constants.FrameUpdateInterval))
		finished += len(drain(e, events.EventRaceFinished))

		assert.GreaterOrEqual(t, snap.Position, 1)
		assert.LessOrEqual(t, snap.Position, 5)
		if e.Player().Speed > e.Player().MaxSpeed || e.Player().Speed < 0 {
			t.Fatalf("speed out of range: %v", e.Player().Speed)
		}
	}

	require.Equal(t, StateFinished, snap.State)
	assert.Equal(t, 1, finished)
	assert.Equal(t, 1, tracker.GamesPlayed())
	require.NotNil(t, snap.Result)
	assert.Equal(t, snap.Position, snap.Result.FinalPosition)
	assert.Positive(t, snap.Result.Elapsed)
	assert.LessOrEqual(t, snap.PlayerPos, 0.0)

	e.Tick(clock.Advance(constants.FrameUpdateInterval))
	assert.Equal(t, 1, tracker.GamesPlayed())
}

func TestFullLengthRaceAtTopSpeed(t *testing.T) {
	tracker := progression.NewTracker()
	e, clock := newRace(t, Config{TrackLength: 100000, AICars: 0}, tracker)
	require.Equal(t, 100000.0, e.Player().Position)
	require.Equal(t, 300.0, e.Player().MaxSpeed)
	goGreen(e, clock)

	reachedTop := false
	finished := 0
	var snap Snapshot
	for i := 0; i < 200000 && snap.State != StateFinished; i++ {
		e.Command(IntentAccelerate)
		snap = e.Tick(clock.Advance(constants.FrameUpdateInterval))
		finished += len(drain(e, events.EventRaceFinished))
		if snap.State == StatePlaying && e.Player().Speed == e.Player().MaxSpeed {
			reachedTop = true
		}
	}

	require.Equal(t, StateFinished, snap.State)
	assert.True(t, reachedTop, "player reached max speed")
	assert.Equal(t, 1, finished)
	assert.Equal(t, 1, tracker.GamesPlayed())
	assert.LessOrEqual(t, snap.PlayerPos, 0.0)
	assert.Equal(t, 1, snap.Result.FinalPosition)

	for i := 0; i < 5; i++ {
		e.Tick(clock.Advance(constants.FrameUpdateInterval))
	}
	assert.Equal(t, StateFinished, e.State())
	assert.Equal(t, 1, tracker.GamesPlayed(), "counter increments exactly once")
}

func TestAbort(t *testing.T) {
	e, clock := newRace(t, DefaultConfig(), nil)
	goGreen(e, clock)
	e.Command(IntentAccelerate)
	e.Tick(clock.Advance(constants.FrameUpdateInterval))
	e.Events().Clear()

	e.Abort(clock.Now())
	assert.Equal(t, StateMenu, e.State())
	assert.Nil(t, e.Track())
	assert.Nil(t, e.Player())
	assert.Len(t, drain(e, events.EventRaceAborted), 1)
	assert.False(t, e.Command(IntentAccelerate))

	snap := e.Tick(clock.Advance(constants.FrameUpdateInterval))
	assert.Equal(t, component.ClassBasic, snap.Class, "selections kept")
	assert.Equal(t, track.NewYork, snap.TrackID)
	assert.Nil(t, snap.AI)

	require.NoError(t, e.StartRace(clock.Now()))
	assert.Equal(t, e.Track().Length, e.Player().Position, "fresh race")
	assert.Equal(t, 3, e.Snapshot(clock.Now()).Countdown)

	e.Abort(clock.Now())
	e.Abort(clock.Now())
	assert.Equal(t, StateMenu, e.State())
}

func TestGameStateTransitions(t *testing.T) {
	assert.True(t, CanTransition(StateMenu, StatePlaying))
	assert.True(t, CanTransition(StatePlaying, StateFinished))
	assert.True(t, CanTransition(StateFinished, StateMenu))
	assert.False(t, CanTransition(StateMenu, StateFinished))
	assert.False(t, CanTransition(StateFinished, StatePlaying))

	assert.Equal(t, "Playing", StatePlaying.String())
	assert.Equal(t, "Unknown", GameState(99).String())
}
