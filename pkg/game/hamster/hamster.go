// Package hamster implements the hamster behavior loop: choosing targets,
// walking grid paths, traversing tubes, interacting and chilling. Each hamster
// is an explicit state machine advanced by Update; pauses are modeled with a
// resume time rather than blocking.
package hamster

import (
	"math"
	"math/rand"

	"hamstercage/pkg/engine/nav"
	"hamstercage/pkg/engine/world"
	"hamstercage/pkg/game/entities"
	"hamstercage/pkg/game/events"
)

// Env is what a hamster needs from the running game
type Env interface {
	Grid() *world.Grid
	Planner() *nav.Planner
	Entities() []entities.Entity
	Now() float64
	Rand() *rand.Rand
	// InteractingWith reports whether a hamster other than except is
	// currently interacting with e
	InteractingWith(e entities.Entity, except *Hamster) bool
	Record(e events.Event)
}

// Hamster is an autonomous agent in the cage
type Hamster struct {
	id     int
	env    Env
	tuning Tuning

	position world.Vec3
	yaw      float64

	state    State
	resumeAt float64

	gridPath []world.Cell
	tubePath []world.Vec3
	cursor   int

	target      entities.Entity
	targetEntry world.Vec3

	// tube traversal
	exitTube     entities.Entity
	tubeEntry    world.Vec3
	backtracking bool

	lastInteraction map[entities.ObjectType]float64
	food            int
}

// New creates a hamster at position. It searches for a target after the
// configured delay.
func New(id int, env Env, tuning Tuning, position world.Vec3) *Hamster {
	return &Hamster{
		id:              id,
		env:             env,
		tuning:          tuning,
		position:        position,
		state:           Seeking,
		resumeAt:        env.Now() + tuning.MoveDelay,
		lastInteraction: make(map[entities.ObjectType]float64),
	}
}

func (h *Hamster) ID() int {
	return h.id
}

func (h *Hamster) State() State {
	return h.state
}

// Target returns the entity being approached or interacted with, or nil
func (h *Hamster) Target() entities.Entity {
	return h.target
}

// TargetEntry returns the entry point chosen for the current target
func (h *Hamster) TargetEntry() world.Vec3 {
	return h.targetEntry
}

// ResumeAt returns the simulated time a pause ends
func (h *Hamster) ResumeAt() float64 {
	return h.resumeAt
}

// Path returns the grid path being followed
func (h *Hamster) Path() []world.Cell {
	return h.gridPath
}

// TubePath returns the world waypoints being followed
func (h *Hamster) TubePath() []world.Vec3 {
	return h.tubePath
}

// Backtracking reports whether the current tube walk turns back to its entry
func (h *Hamster) Backtracking() bool {
	return h.backtracking
}

// LastInteraction returns when an object type was last interacted with
func (h *Hamster) LastInteraction(t entities.ObjectType) (float64, bool) {
	at, ok := h.lastInteraction[t]
	return at, ok
}

func (h *Hamster) Position() world.Vec3 {
	return h.position
}

func (h *Hamster) SetPosition(p world.Vec3) {
	h.position = p
}

// Yaw returns the rotation about the vertical axis in radians
func (h *Hamster) Yaw() float64 {
	return h.yaw
}

// Facing returns the world direction the model's front points to
func (h *Hamster) Facing() world.Vec3 {
	return h.tuning.Front.RotateY(h.yaw)
}

// RotateToFace turns the hamster about the vertical axis towards target
func (h *Hamster) RotateToFace(target world.Vec3) {
	h.face(target.Sub(h.position))
}

func (h *Hamster) face(dir world.Vec3) {
	dir = dir.Horizontal()
	if dir.Length() < 1e-9 {
		return
	}
	h.yaw = world.SignedAngleY(h.tuning.Front, dir)
}

func (h *Hamster) FoodCount() int {
	return h.food
}

func (h *Hamster) AddFood() {
	h.food++
	h.record(events.KindFoodPickedUp, h.target, "")
}

func (h *Hamster) RemoveFood() bool {
	if h.food == 0 {
		return false
	}
	h.food--
	h.record(events.KindFoodStored, h.target, "")
	return true
}

// StartInteraction is called by an entity taking control of the hamster
func (h *Hamster) StartInteraction() {
	h.gridPath = nil
	h.cursor = 0
	h.setState(Interacting)
	h.record(events.KindInteractStart, h.target, "")
}

// EndInteraction is called by an entity releasing the hamster
func (h *Hamster) EndInteraction() {
	if h.state != Interacting {
		return
	}
	if h.target != nil {
		h.lastInteraction[h.target.Type()] = h.env.Now()
		h.target.OnInteractEnd(h)
		h.record(events.KindInteractEnd, h.target, "")
	}
	h.target = nil
	h.restartSearch()
}

// StartTubeTraversal is called by a tube with the planned walk. exit is the
// tube the walk ends in and entry the outside point the hamster came from.
func (h *Hamster) StartTubeTraversal(path []world.Vec3, exit entities.Entity, backtracking bool, entry world.Vec3) {
	h.gridPath = nil
	h.tubePath = path
	h.cursor = 0
	h.exitTube = exit
	h.tubeEntry = entry
	h.backtracking = backtracking
	h.setState(InTube)

	detail := ""
	if backtracking {
		detail = "backtracking"
	}
	h.record(events.KindTubeEnter, h.target, detail)
}

// Stop abandons whatever the hamster is doing. It never runs again.
func (h *Hamster) Stop() {
	h.gridPath = nil
	h.tubePath = nil
	h.cursor = 0
	h.target = nil
	h.exitTube = nil
	h.setState(Stopped)
}

// Update advances the hamster by dt simulated seconds
func (h *Hamster) Update(dt float64) {
	now := h.env.Now()

	switch h.state {
	case Seeking:
		if now >= h.resumeAt {
			h.search()
		}
	case Chilling:
		if now >= h.resumeAt {
			h.restartSearch()
		}
	case MovingToTarget, Wandering:
		h.followGridPath(dt)
	case InTube, ExitingTube:
		h.followTubePath(dt)
	case Interacting, Stopped:
	}
}

func (h *Hamster) setState(s State) {
	if s == h.state {
		return
	}
	from := h.state
	h.state = s
	h.env.Record(events.Event{
		Time:     h.env.Now(),
		Kind:     events.KindState,
		Hamster:  h.id,
		From:     from.String(),
		To:       s.String(),
		Position: h.position,
	})
}

func (h *Hamster) record(kind events.Kind, e entities.Entity, detail string) {
	ev := events.Event{
		Time:     h.env.Now(),
		Kind:     kind,
		Hamster:  h.id,
		Position: h.position,
		Detail:   detail,
	}
	if e != nil {
		ev.Entity = e.ID()
		ev.Object = e.Type().String()
	}
	h.env.Record(ev)
}

// restartSearch schedules the next target search after the move delay
func (h *Hamster) restartSearch() {
	h.gridPath = nil
	h.tubePath = nil
	h.cursor = 0
	h.exitTube = nil
	h.backtracking = false
	h.resumeAt = h.env.Now() + h.tuning.MoveDelay
	h.setState(Seeking)
}

func (h *Hamster) chill() {
	h.gridPath = nil
	h.cursor = 0
	span := h.tuning.ChillMax - h.tuning.ChillMin
	if span < 0 {
		span = 0
	}
	h.resumeAt = h.env.Now() + h.tuning.ChillMin + h.env.Rand().Float64()*span
	h.setState(Chilling)
}

func (h *Hamster) wander() {
	h.target = nil
	path := h.env.Planner().RandomReachablePath(h.position, h.tuning.ChillRadius, nav.DefaultAttempts)
	if len(path) == 0 {
		h.chill()
		return
	}
	h.gridPath = path
	h.cursor = 0
	h.setState(Wandering)
}

// moveToward steps towards target at the configured speed and reports
// whether the target is within reach afterwards
func (h *Hamster) moveToward(target world.Vec3, dt float64) bool {
	delta := target.Sub(h.position)
	distance := delta.Length()
	step := h.tuning.MoveSpeed * dt

	if distance > 0 {
		h.face(delta)
		if step >= distance {
			h.position = target
		} else {
			h.position = h.position.Add(delta.Scale(step / distance))
		}
	}
	return h.position.HorizontalDistance(target) < world.ReachThreshold
}

func (h *Hamster) followGridPath(dt float64) {
	if h.cursor >= len(h.gridPath) {
		h.arrive()
		return
	}
	waypoint := h.env.Grid().GridToWorldCenter(h.gridPath[h.cursor])
	waypoint.Y = h.position.Y
	if h.moveToward(waypoint, dt) {
		h.cursor++
	}
}

func (h *Hamster) followTubePath(dt float64) {
	if h.cursor >= len(h.tubePath) {
		if h.state == InTube {
			h.resolveTubeExit()
		} else {
			h.finishTube()
		}
		return
	}
	if h.moveToward(h.tubePath[h.cursor], dt) {
		h.cursor++
	}
}

func (h *Hamster) arrive() {
	if h.state == Wandering {
		h.chill()
		return
	}

	target := h.target
	if target == nil {
		h.restartSearch()
		return
	}
	target.OnInteract(h, h.env.Now())

	// the entity did not take the hamster
	if h.state == MovingToTarget {
		h.target = nil
		h.restartSearch()
	}
}

// freePriority is the bonus for an entity nobody else is using
const freePriority = 1000

func (h *Hamster) priority(e entities.Entity, now float64) float64 {
	p := 0.0
	if !h.env.InteractingWith(e, h) {
		p += freePriority
	}
	last, ok := h.lastInteraction[e.Type()]
	if !ok {
		return math.Inf(1)
	}
	return p + now - last
}

var _ entities.Agent = (*Hamster)(nil)
