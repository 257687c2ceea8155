package systems

import (
	"time"

	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/constants"
	"github.com/lixenwraith/vi-racer/events"
	"github.com/lixenwraith/vi-racer/physics"
	"github.com/lixenwraith/vi-racer/vmath"
)

// TrafficConfig fixes the track context the traffic runs in
type TrafficConfig struct {
	TrackLength   float64
	LaneCount     int
	SpawnInterval time.Duration // Oncoming spawn interval, zero means OncomingSpawnInterval
	FirstID       int           // First vehicle ID handed out, IDs below are reserved for the caller
}

// TrafficSystem owns the AI opponents and the oncoming traffic of one track
// Not safe for concurrent use; driven once per tick by the race engine
type TrafficSystem struct {
	cfg   TrafficConfig
	rng   vmath.Rand
	queue *events.EventQueue

	ai       []*component.Vehicle
	oncoming []*component.Vehicle

	nextID        int
	lastSpawn     time.Time // Zero until the first spawn, so the first check always spawns
	spawnedTotal  int
	retiredTotal  int
	aiCollisions  int
	aiLaneChanges int
}

// NewTrafficSystem creates an empty traffic system; queue may be nil to discard events
func NewTrafficSystem(cfg TrafficConfig, rng vmath.Rand, queue *events.EventQueue) *TrafficSystem {
	if cfg.LaneCount < 1 {
		cfg.LaneCount = constants.LaneCount
	}
	if cfg.SpawnInterval <= 0 {
		cfg.SpawnInterval = constants.OncomingSpawnInterval
	}
	return &TrafficSystem{
		cfg:    cfg,
		rng:    rng,
		queue:  queue,
		nextID: cfg.FirstID,
	}
}

// AICars returns the AI opponents; the slice is owned by the system
func (s *TrafficSystem) AICars() []*component.Vehicle {
	return s.ai
}

// OncomingCars returns the active oncoming vehicles; the slice is owned by the system
func (s *TrafficSystem) OncomingCars() []*component.Vehicle {
	return s.oncoming
}

// SpawnAICars creates count AI cars on the start line, car i in lane i, random class
// Lanes beyond the track's lane count are clamped to the last lane
func (s *TrafficSystem) SpawnAICars(count int) {
	for i := 0; i < count; i++ {
		car := component.NewVehicle(s.allocID(), s.randomClass(), false, s.cfg.LaneCount)
		car.Lane = vmath.Clamp(i, 0, s.cfg.LaneCount-1)
		car.Position = s.cfg.TrackLength
		s.ai = append(s.ai, car)
	}
}

// AddAICar inserts a prepared AI car, used for scripted scenarios
func (s *TrafficSystem) AddAICar(car *component.Vehicle) {
	s.ai = append(s.ai, car)
}

// AddOncomingCar inserts a prepared oncoming car, used for scripted scenarios
func (s *TrafficSystem) AddOncomingCar(car *component.Vehicle) {
	car.Oncoming = true
	s.oncoming = append(s.oncoming, car)
}

// Update runs one traffic step: AI policy and collisions, then oncoming spawn, movement and retirement
func (s *TrafficSystem) Update(now time.Time, playerPos float64) {
	s.UpdateAI(now)
	s.MaybeSpawnOncoming(now, playerPos)
	s.AdvanceOncoming()
	s.RetireOffRange(now, playerPos)
}

// MaybeSpawnOncoming spawns one oncoming car once the spawn interval has elapsed
// The car appears above the viewport relative to the player with a speed in the oncoming band
func (s *TrafficSystem) MaybeSpawnOncoming(now time.Time, playerPos float64) bool {
	if !s.lastSpawn.IsZero() && now.Sub(s.lastSpawn) <= s.cfg.SpawnInterval {
		return false
	}

	car := component.NewVehicle(s.allocID(), s.randomClass(), false, s.cfg.LaneCount)
	car.Oncoming = true
	car.Lane = s.rng.Intn(s.cfg.LaneCount)
	car.Position = playerPos - constants.OncomingSpawnAhead
	car.SetCruise(vmath.RangeF(s.rng, constants.OncomingMinSpeed, constants.OncomingSpeedBand))

	s.oncoming = append(s.oncoming, car)
	s.lastSpawn = now
	s.spawnedTotal++

	s.emit(now, events.EventOncomingSpawned, vehiclePayload(car))
	return true
}

// AdvanceOncoming moves every oncoming car one step toward the start line
func (s *TrafficSystem) AdvanceOncoming() {
	for _, car := range s.oncoming {
		car.Tick()
	}
}

// RetireOffRange drops oncoming cars that passed far enough behind the player, returns the count removed
func (s *TrafficSystem) RetireOffRange(now time.Time, playerPos float64) int {
	limit := playerPos + constants.OncomingRetireBehind
	kept := s.oncoming[:0]
	removed := 0
	for _, car := range s.oncoming {
		if car.Position > limit {
			removed++
			s.retiredTotal++
			s.emit(now, events.EventOncomingRetired, vehiclePayload(car))
			continue
		}
		kept = append(kept, car)
	}
	// Release references held past the new length
	for i := len(kept); i < len(s.oncoming); i++ {
		s.oncoming[i] = nil
	}
	s.oncoming = kept
	return removed
}

// UpdateAI applies the lane avoidance policy and ticks every AI car, then resolves AI-AI collisions
func (s *TrafficSystem) UpdateAI(now time.Time) {
	for _, car := range s.ai {
		if s.oncomingThreat(car) != nil {
			from := car.Lane
			if lane := s.FindSafeLane(car); lane != from && car.MoveToLane(lane) {
				s.aiLaneChanges++
				s.emit(now, events.EventLaneChange, &events.LaneChangePayload{
					VehicleID: car.ID,
					Kind:      car.Kind(),
					From:      from,
					To:        lane,
				})
			}
		}
		car.Tick()
	}

	// O(n²) over the small fixed AI set
	for i := 0; i < len(s.ai); i++ {
		for j := i + 1; j < len(s.ai); j++ {
			a, b := s.ai[i], s.ai[j]
			if !physics.Overlaps(a, b) {
				continue
			}
			s.collide(now, a)
			s.collide(now, b)
		}
	}
}

// FindSafeLane picks uniformly among free lanes other than the car's own
// Returns the current lane when every other lane is occupied
func (s *TrafficSystem) FindSafeLane(car *component.Vehicle) int {
	candidates := make([]int, 0, s.cfg.LaneCount)
	for lane := 0; lane < s.cfg.LaneCount; lane++ {
		if lane == car.Lane || s.LaneOccupied(lane, car.Position) {
			continue
		}
		candidates = append(candidates, lane)
	}
	if len(candidates) == 0 {
		return car.Lane
	}
	return candidates[s.rng.Intn(len(candidates))]
}

// LaneOccupied reports any AI or oncoming car in lane within LaneOccupiedDistance of pos
func (s *TrafficSystem) LaneOccupied(lane int, pos float64) bool {
	for _, group := range [][]*component.Vehicle{s.ai, s.oncoming} {
		for _, car := range group {
			if car.Lane == lane && vmath.AbsF(car.Position-pos) < constants.LaneOccupiedDistance {
				return true
			}
		}
	}
	return false
}

// Stats returns lifetime counters for this track
func (s *TrafficSystem) Stats() TrafficStats {
	return TrafficStats{
		Spawned:       s.spawnedTotal,
		Retired:       s.retiredTotal,
		Active:        len(s.oncoming),
		AICollisions:  s.aiCollisions,
		AILaneChanges: s.aiLaneChanges,
	}
}

// TrafficStats summarizes traffic activity over a race
type TrafficStats struct {
	Spawned       int
	Retired       int
	Active        int
	AICollisions  int
	AILaneChanges int
}

// oncomingThreat returns the first oncoming car in the same lane within threat distance
func (s *TrafficSystem) oncomingThreat(car *component.Vehicle) *component.Vehicle {
	for _, onc := range s.oncoming {
		if onc.Lane == car.Lane && vmath.AbsF(onc.Position-car.Position) < constants.OncomingThreatDistance {
			return onc
		}
	}
	return nil
}

func (s *TrafficSystem) collide(now time.Time, car *component.Vehicle) {
	if !car.RegisterCollision(now) {
		return
	}
	s.aiCollisions++
	s.emit(now, events.EventCollision, &events.CollisionPayload{
		VehicleID: car.ID,
		Kind:      car.Kind(),
		Speed:     car.Speed,
		Lane:      car.Lane,
	})
}

func (s *TrafficSystem) randomClass() component.ClassID {
	return component.ClassID(1 + s.rng.Intn(constants.CarClassCount))
}

func (s *TrafficSystem) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}

func (s *TrafficSystem) emit(now time.Time, t events.EventType, payload any) {
	if s.queue == nil {
		return
	}
	s.queue.Push(events.GameEvent{Type: t, Payload: payload, Timestamp: now})
}

func vehiclePayload(car *component.Vehicle) *events.VehiclePayload {
	return &events.VehiclePayload{
		VehicleID: car.ID,
		Class:     car.Class,
		Lane:      car.Lane,
		Speed:     car.Speed,
	}
}
