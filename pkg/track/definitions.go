package track

// Placement positions a gate on the track. Rotation is in degrees,
// counter-clockwise on screen; a gate at 0° lies horizontally.
type Placement struct {
	X        float64 `json:"x" mapstructure:"x"`
	Y        float64 `json:"y" mapstructure:"y"`
	Rotation float64 `json:"rotation" mapstructure:"rotation"`
}

// Table is the ordered list of gates a lap passes through
type Table []Placement

// DefaultTable returns the 16 gates of the stock oval, in driving order
// starting just ahead of the grid at (850, 700).
func DefaultTable() Table {
	return Table{
		{X: 713, Y: 694, Rotation: 85},
		{X: 461, Y: 649, Rotation: 74},
		{X: 268, Y: 567, Rotation: 57},
		{X: 163, Y: 459, Rotation: 25},
		{X: 163, Y: 341, Rotation: 155},
		{X: 268, Y: 233, Rotation: 123},
		{X: 461, Y: 151, Rotation: 106},
		{X: 713, Y: 106, Rotation: 95},
		{X: 987, Y: 106, Rotation: 85},
		{X: 1239, Y: 151, Rotation: 74},
		{X: 1432, Y: 233, Rotation: 57},
		{X: 1537, Y: 341, Rotation: 25},
		{X: 1537, Y: 459, Rotation: 155},
		{X: 1432, Y: 567, Rotation: 123},
		{X: 1239, Y: 649, Rotation: 106},
		{X: 987, Y: 694, Rotation: 95},
	}
}
