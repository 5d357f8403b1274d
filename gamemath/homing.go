package gamemath

import "math"

// HomingVelocity returns a velocity of the given speed pointing from
// (x, y) at the target. It is the hard retarget used by missiles.
func HomingVelocity(x, y, targetX, targetY, speed float64) (velX, velY float64) {
	dirX, dirY, dist := Direction(x, y, targetX, targetY)
	if dist == 0 {
		return 0, 0
	}
	return dirX * speed, dirY * speed
}

// BlendVelocity steers (velX, velY) toward the target by strength in
// [0, 1] and renormalizes to speed.
func BlendVelocity(x, y, velX, velY, targetX, targetY, speed, strength float64) (float64, float64) {
	desiredX, desiredY := HomingVelocity(x, y, targetX, targetY, speed)
	nx := velX*(1-strength) + desiredX*strength
	ny := velY*(1-strength) + desiredY*strength
	l := math.Sqrt(nx*nx + ny*ny)
	if l == 0 {
		return desiredX, desiredY
	}
	return nx / l * speed, ny / l * speed
}

// Perpendicular returns (x, y) rotated a quarter turn counter-clockwise.
func Perpendicular(x, y float64) (float64, float64) {
	return -y, x
}
