package entity

import (
	"math"

	"github.com/samdwyer/sonicswirl/internal/gamedata"
	"github.com/samdwyer/sonicswirl/internal/physics"
	"github.com/samdwyer/sonicswirl/internal/world"
)

// Ground stick and landing thresholds. These are tuned contracts, not derived values.
const (
	stickLimit      = 14 // Largest floor correction accepted while grounded, either way
	stickSpeedSlack = 4  // Extra separation allowed below the surface on top of |vx|
	landingSlack    = 8  // Vertical tolerance when landing while falling
	airDragStep     = 0.125
	debugRotateStep = 45
)

// Sensor slots in the order Sensors returns them.
const (
	SensorA = iota // Bottom left, facing down
	SensorB        // Bottom right, facing down
	SensorE        // Middle left, facing left
	SensorF        // Middle right, facing right
)

// Player is the controllable character. It owns its sensors and reads the level
// through them; nothing else mutates its state.
type Player struct {
	Body

	level  *world.TileMap
	tuning gamedata.PlayerTuning
	spawn  physics.Vector

	velocity    physics.Vector
	groundSpeed float64
	groundAngle float64
	state       State
	jumping     bool
	debugMode   bool
	facingLeft  bool

	sensorA, sensorB, sensorE, sensorF *physics.Sensor

	events []Event
}

// NewPlayer creates an airborne player at spawn.
func NewPlayer(level *world.TileMap, tuning gamedata.PlayerTuning, spawn physics.Vector) *Player {
	p := &Player{
		Body: Body{
			Position:     spawn,
			WidthRadius:  tuning.WidthRadius,
			HeightRadius: tuning.HeightRadius,
		},
		level:   level,
		tuning:  tuning,
		spawn:   spawn,
		state:   Airborne,
		sensorA: physics.NewSensor(physics.Down),
		sensorB: physics.NewSensor(physics.Down),
		sensorE: physics.NewSensor(physics.Left),
		sensorF: physics.NewSensor(physics.Right),
	}
	p.calculateSensorPositions()
	return p
}

// SetTuning replaces the physics constants, taking effect on the next tick.
func (p *Player) SetTuning(tuning gamedata.PlayerTuning) {
	p.tuning = tuning
	p.WidthRadius = tuning.WidthRadius
	p.HeightRadius = tuning.HeightRadius
	p.calculateSensorPositions()
}

// Tuning returns the current physics constants.
func (p *Player) Tuning() gamedata.PlayerTuning { return p.tuning }

// Update advances the player by dt seconds.
func (p *Player) Update(dt float64, in Input) {
	if in.DebugToggle {
		p.debugMode = !p.debugMode
		p.groundSpeed = 0
		p.velocity = physics.Vector{}
		p.groundAngle = 0
		p.resetSensors()
		p.emit(EventDebugToggled)
	}

	switch {
	case p.debugMode:
		p.debugMove(dt, in)
	case p.state == Airborne:
		p.airMove(dt, in)
		p.setAirSensors()
		p.calculateSensorPositions()
		p.wallSensors()
		p.floorCheck()
	default:
		p.groundMove(dt, in)
		p.sensorA.Active, p.sensorB.Active = true, true
		p.sensorE.Active, p.sensorF.Active = false, false
		p.Move(p.velocity.Scale(dt))
		p.calculateSensorPositions()
		p.floorCheck()
	}

	if p.EnforceBoundaries(p.tuning.RespawnFloor) {
		p.respawn()
	}
	p.calculateSensorPositions()
}

func (p *Player) groundMove(dt float64, in Input) {
	t := p.tuning

	if p.groundSpeed != 0 {
		p.groundSpeed -= dt * t.SlopeFactor * physics.SinDeg(p.groundAngle)
	}

	switch in.Horizontal() {
	case 1:
		p.facingLeft = false
		if p.groundSpeed < 0 {
			p.groundSpeed += t.Deceleration * dt
		} else if p.groundSpeed < t.MaxSpeed {
			p.groundSpeed = math.Min(p.groundSpeed+t.Acceleration*dt, t.MaxSpeed)
		}
	case -1:
		p.facingLeft = true
		if p.groundSpeed > 0 {
			p.groundSpeed -= t.Deceleration * dt
		} else if p.groundSpeed > -t.MaxSpeed {
			p.groundSpeed = math.Max(p.groundSpeed-t.Acceleration*dt, -t.MaxSpeed)
		}
	default:
		p.groundSpeed -= math.Min(math.Abs(p.groundSpeed), t.Friction*dt) * physics.Sign(p.groundSpeed)
	}

	p.velocity = physics.Vector{
		X: p.groundSpeed * physics.CosDeg(p.groundAngle),
		Y: p.groundSpeed * physics.SinDeg(p.groundAngle),
	}

	if in.JumpJustPressed {
		p.jump()
	}
}

func (p *Player) airMove(dt float64, in Input) {
	t := p.tuning

	// Releasing jump early cuts the rise short.
	if !in.JumpHeld && p.jumping && p.velocity.Y > t.JumpReleaseSpeed {
		p.velocity.Y = t.JumpReleaseSpeed
	}

	switch in.Horizontal() {
	case 1:
		p.facingLeft = false
		if p.velocity.X < t.MaxSpeed {
			p.velocity.X = math.Min(p.velocity.X+t.AirAcceleration*dt, t.MaxSpeed)
		}
	case -1:
		p.facingLeft = true
		if p.velocity.X > -t.MaxSpeed {
			p.velocity.X = math.Max(p.velocity.X-t.AirAcceleration*dt, -t.MaxSpeed)
		}
	}

	if 0 < p.velocity.Y && p.velocity.Y < t.AirDragWindow {
		p.velocity.X -= math.Floor(p.velocity.X/airDragStep) / 256 * 60 * dt
	}

	p.Move(p.velocity.Scale(dt))
	p.velocity.Y += t.Gravity * dt
}

func (p *Player) jump() {
	p.velocity.X -= p.tuning.JumpForce * physics.SinDeg(p.groundAngle)
	p.velocity.Y += p.tuning.JumpForce * physics.CosDeg(p.groundAngle)
	p.state = Airborne
	p.jumping = true
	p.emit(EventJumped)
}

// floorSensors probes with both floor sensors and returns the one that found
// the greater distance. An exact tie between different tiles has no winner.
func (p *Player) floorSensors() (*physics.Sensor, bool) {
	a := p.sensorA.FloorProcess(p.level)
	b := p.sensorB.FloorProcess(p.level)

	switch {
	case a.Distance > b.Distance:
		return p.sensorA, true
	case a.Distance < b.Distance:
		return p.sensorB, true
	case a.Tile == b.Tile:
		return p.sensorA, true
	default:
		return nil, false
	}
}

// floorCheck decides whether this tick's floor result is accepted.
func (p *Player) floorCheck() {
	if !p.sensorA.Active || !p.sensorB.Active {
		return
	}

	winner, ok := p.floorSensors()

	if p.state == Grounded {
		lower := math.Max(-math.Abs(p.velocity.X)-stickSpeedSlack, -stickLimit)
		if ok && lower < winner.Distance() && winner.Distance() < stickLimit {
			p.groundCollision(winner)
		} else {
			p.state = Airborne
			p.emit(EventDetached)
		}
		return
	}

	if !ok || winner.Distance() < 0 {
		return
	}
	vx, vy := p.velocity.X, p.velocity.Y
	switch {
	case math.Abs(vx) >= math.Abs(vy):
		if vy <= 0 {
			p.groundCollision(winner)
		}
	case vy > 0:
		// Mostly rising: floors are ignored.
	default:
		limit := -(vy + landingSlack)
		if p.sensorA.Distance() <= limit || p.sensorB.Distance() >= limit {
			p.groundCollision(winner)
		}
	}
}

// groundCollision moves the player onto the surface the sensor found.
func (p *Player) groundCollision(s *physics.Sensor) {
	p.Position.Y += s.Distance()

	if tile := s.Tile(); tile.Flagged() {
		p.groundAngle = physics.SnapToNearest(p.groundAngle, 90)
	} else {
		p.groundAngle = tile.Angle()
	}

	if p.state == Airborne {
		p.groundSpeed = landingSpeed(p.velocity, p.groundAngle)
		p.state = Grounded
		p.jumping = false
		p.emit(EventLanded)
	}
}

// landingSpeed converts air velocity into ground speed on a surface at angle.
// Shallow surfaces keep horizontal momentum; steeper ones take a share of the
// fall when it dominates.
func landingSpeed(v physics.Vector, angle float64) float64 {
	a := math.Abs(angle)
	horizontal := math.Abs(v.X) >= math.Abs(v.Y)
	switch {
	case a <= 23 || horizontal:
		return v.X
	case a <= 45:
		return v.Y * 0.5 * physics.SinDeg(angle)
	case a <= 90:
		return v.Y * physics.SinDeg(angle)
	default:
		return v.X
	}
}

// wallSensors reads the active wall sensors and pushes out of any wall found.
// A push moves every sensor before the next one reads.
func (p *Player) wallSensors() {
	for _, s := range []*physics.Sensor{p.sensorE, p.sensorF} {
		if !s.Active {
			continue
		}
		s.WallProcess(p.level)
		if s.Distance() < 0 {
			p.wallCollision(s)
			p.calculateSensorPositions()
		}
	}
}

// wallCollision pushes the player back out of a wall along the sensor's facing.
func (p *Player) wallCollision(s *physics.Sensor) {
	p.Position.X += float64(s.Facing.Sign()) * s.Distance()
	p.emit(EventWallHit)
}

// setAirSensors activates the sensors on the leading sides of the motion.
func (p *Player) setAirSensors() {
	vx, vy := p.velocity.X, p.velocity.Y
	if math.Abs(vx) >= math.Abs(vy) {
		p.sensorA.Active, p.sensorB.Active = true, true
		p.sensorE.Active = vx <= 0
		p.sensorF.Active = vx > 0
		return
	}
	p.sensorE.Active, p.sensorF.Active = true, true
	p.sensorA.Active = vy <= 0
	p.sensorB.Active = vy <= 0
}

func (p *Player) calculateSensorPositions() {
	p.sensorA.SetPosition(p.LeftEdgeX(), p.BottomEdgeY())
	p.sensorB.SetPosition(p.RightEdgeX(), p.BottomEdgeY())
	p.sensorE.SetPosition(p.LeftEdgeX(), p.Position.Y)
	p.sensorF.SetPosition(p.RightEdgeX(), p.Position.Y)
}

func (p *Player) debugMove(dt float64, in Input) {
	step := p.tuning.DebugSpeed * dt
	if in.Right {
		p.Position.X += step
	}
	if in.Left {
		p.Position.X -= step
	}
	if in.Up {
		p.Position.Y += step
	}
	if in.Down {
		p.Position.Y -= step
	}
	if in.DebugRotate {
		p.groundAngle += debugRotateStep
	}
}

func (p *Player) respawn() {
	p.Position = p.spawn
	p.velocity = physics.Vector{}
	p.groundSpeed = 0
	p.groundAngle = 0
	p.state = Airborne
	p.jumping = false
	p.resetSensors()
	p.emit(EventRespawned)
}

// resetSensors drops the last sensor readings so none carry over a teleport.
func (p *Player) resetSensors() {
	for _, s := range []*physics.Sensor{p.sensorA, p.sensorB, p.sensorE, p.sensorF} {
		s.Reset()
	}
}

func (p *Player) emit(kind EventKind) {
	p.events = append(p.events, Event{
		Kind:        kind,
		Position:    p.Position,
		GroundSpeed: p.groundSpeed,
		GroundAngle: p.groundAngle,
	})
}

// DrainEvents returns the events since the last call and clears them.
func (p *Player) DrainEvents() []Event {
	events := p.events
	p.events = nil
	return events
}

// Velocity returns the world-space velocity in pixels per second.
func (p *Player) Velocity() physics.Vector { return p.velocity }

// GroundSpeed returns the speed along the surface.
func (p *Player) GroundSpeed() float64 { return p.groundSpeed }

// GroundAngle returns the surface angle in degrees, also the sprite rotation.
func (p *Player) GroundAngle() float64 { return p.groundAngle }

// State returns whether the player is grounded or airborne.
func (p *Player) State() State { return p.state }

// Jumping reports whether the player left the ground by jumping and has not landed.
func (p *Player) Jumping() bool { return p.jumping }

// DebugMode reports whether free-fly is on.
func (p *Player) DebugMode() bool { return p.debugMode }

// FacingLeft reports whether the sprite should be mirrored.
func (p *Player) FacingLeft() bool { return p.facingLeft }

// Sensors returns copies of the four sensors indexed by SensorA..SensorF.
func (p *Player) Sensors() [4]physics.Sensor {
	return [4]physics.Sensor{*p.sensorA, *p.sensorB, *p.sensorE, *p.sensorF}
}
