package board

// Color is a linear RGB triple used to tint light contributions.
type Color struct {
	R, G, B float32
}

// ColorWhite is the neutral light color.
var ColorWhite = Color{R: 1, G: 1, B: 1}

// LightData carries per-channel illumination beyond plain visible light.
// The extra channels are consumed by specialised gear readouts (red light,
// infrared and ultraviolet sources).
type LightData struct {
	Visible     float32
	Red         float32
	InfraRed    float32
	UltraViolet float32
}

// Add combines two light samples channel by channel.
func (d LightData) Add(other LightData) LightData {
	return LightData{
		Visible:     d.Visible + other.Visible,
		Red:         d.Red + other.Red,
		InfraRed:    d.InfraRed + other.InfraRed,
		UltraViolet: d.UltraViolet + other.UltraViolet,
	}
}

// LightFieldData is the per-tile result of a lighting rebuild. Lux
// accumulates additively across sources; Transmissivity is multiplicative
// across overlapping occluders and floored above zero; Color is the
// intensity-weighted blend of contributing sources.
type LightFieldData struct {
	Lux            float32
	Transmissivity float32
	Color          Color
	Additional     LightData
}

// NewLightFieldData returns the value used for tiles with no recorded data:
// dark, fully transparent, neutral color.
func NewLightFieldData() LightFieldData {
	return LightFieldData{Transmissivity: 1.0, Color: ColorWhite}
}

// CollisionFieldData is the per-tile movement/occlusion summary derived from
// the entities occupying the tile. SeeThrough=false blocks light propagation
// at that tile.
type CollisionFieldData struct {
	PlayerFree bool
	GhostFree  bool
	SeeThrough bool
}

// LightInfo is the baked light contribution recorded for a tile.
// SourceID links the contribution back to the emitting entity so it can be
// toggled without rebaking; zero means no source reached the tile.
type LightInfo struct {
	SourceID uint32
	Lux      float32
	Color    Color
}

// PrebakedLightingData is the static bake entry for one tile. IsWaveEdge
// marks tiles where the bake's propagation wavefront was stopped by an
// occluder that may later open (a door); these are the resumption points for
// runtime propagation.
type PrebakedLightingData struct {
	LightInfo  LightInfo
	IsWaveEdge bool
}
