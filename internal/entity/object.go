// Package entity contains the runtime gameplay entities. Entities simulate
// in a fixed virtual world space (world px) independent of the terminal
// size; positions are float64 so per-frame truncation never accumulates.
package entity

// Object is a movable axis-aligned rectangle: position, size and velocity
// in world px. It is the base every gameplay entity specializes.
type Object struct {
	X, Y   float64 // top-left corner
	W, H   float64
	VX, VY float64 // world px per second
}

// Update advances the object's position by velocity * dt.
func (o *Object) Update(dt float64) {
	o.X += o.VX * dt
	o.Y += o.VY * dt
}

// Right returns the x-coordinate of the right edge.
func (o *Object) Right() float64 {
	return o.X + o.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (o *Object) Bottom() float64 {
	return o.Y + o.H
}

// Overlaps returns true if this object's rectangle intersects another's.
func (o *Object) Overlaps(other *Object) bool {
	if o.X >= other.Right() || other.X >= o.Right() {
		return false
	}
	if o.Y >= other.Bottom() || other.Y >= o.Bottom() {
		return false
	}
	return true
}
