package board

// Class identifies the broad category of a map entity. The lighting and
// collision rebuilds only care about a handful of categories; everything
// else is ClassProp.
type Class int

const (
	ClassNone Class = iota
	ClassFloor
	ClassWall
	ClassDoor
	ClassLamp
	ClassProp
)

// TileState is the discrete state of a stateful entity, such as a door
// being open or closed, or a lamp being switched on or off.
type TileState int

const (
	StateNone TileState = iota
	StateOpen
	StateClosed
	StateOn
	StateOff
)

// Movement holds the static movement/occlusion flags of an entity.
type Movement struct {
	Walkable        bool
	PlayerCollision bool
	GhostCollision  bool
}

// Light holds the static lighting properties of an entity.
type Light struct {
	EmitsLight     bool
	Emissivity     float32
	SeeThrough     bool
	Transmissivity float32
	Color          Color
	Additional     LightData
}

// EmissivityLumens returns the lux this entity currently emits, zero when
// switched off.
func (l Light) EmissivityLumens() float32 {
	if !l.EmitsLight {
		return 0
	}
	return l.Emissivity
}

// TransmissivityFactor returns the fraction of light the entity lets pass.
func (l Light) TransmissivityFactor() float32 {
	return l.Transmissivity
}

// AdditionalData returns the extra light channels this entity contributes
// while emitting.
func (l Light) AdditionalData() LightData {
	if !l.EmitsLight {
		return LightData{}
	}
	return l.Additional
}

// Behavior is a plain-value snapshot of an entity's properties. The lighting
// core never queries a live entity graph: it receives a collection of these
// once per rebuild.
type Behavior struct {
	Class    Class
	State    TileState
	Movement Movement
	Light    Light
}

// IsDoor reports whether this entity gates light and movement with an
// open/closed state.
func (b Behavior) IsDoor() bool {
	return b.Class == ClassDoor
}

// IsOpen reports whether a stateful entity is currently open.
func (b Behavior) IsOpen() bool {
	return b.State == StateOpen
}

// Entity pairs a world position with the behavior snapshot of whatever
// occupies it.
type Entity struct {
	Position Position
	Behavior Behavior
}
