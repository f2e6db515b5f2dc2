package path

import "math"

// ellipticalArc holds the center-parameterization (SVG Implementation
// Notes F.6) of one elliptical-arc-to command, resolved from its
// endpoint parameterization (rx, ry, x-axis-rotation, flags, endpoint).
type ellipticalArc struct {
	cx, cy     float32
	rx, ry     float32
	phi        float32 // x-axis rotation, radians
	theta1     float32 // start angle, radians
	deltaTheta float32 // signed sweep, radians
}

// degToRad converts degrees to radians.
func degToRad(d float32) float32 { return d * float32(math.Pi) / 180 }

// vecAngle returns the signed angle from vector u to vector v, in the
// range (-pi, pi].
func vecAngle(ux, uy, vx, vy float32) float32 {
	dot := ux*vx + uy*vy
	lenProd := math.Sqrt(float64(ux*ux+uy*uy)) * math.Sqrt(float64(vx*vx+vy*vy))
	if lenProd == 0 {
		return 0
	}
	cosA := float64(dot) / lenProd
	if cosA > 1 {
		cosA = 1
	} else if cosA < -1 {
		cosA = -1
	}
	a := float32(math.Acos(cosA))
	if ux*vy-uy*vx < 0 {
		a = -a
	}
	return a
}

// resolveArc converts the endpoint parameterization of an arc-to
// command into its center parameterization, following SVG F.6.
// ok is false when rx or ry is degenerate (zero after correction) and
// the arc must be emitted as a straight line instead.
func resolveArc(x1, y1, rx, ry, xAxisRotDeg float32, largeArc, sweep bool, x2, y2 float32) (ellipticalArc, bool) {
	if rx == 0 || ry == 0 {
		return ellipticalArc{}, false
	}
	rx = float32(math.Abs(float64(rx)))
	ry = float32(math.Abs(float64(ry)))
	phi := degToRad(xAxisRotDeg)

	cosPhi := float32(math.Cos(float64(phi)))
	sinPhi := float32(math.Sin(float64(phi)))

	dx2 := (x1 - x2) / 2
	dy2 := (y1 - y2) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		scale := float32(math.Sqrt(float64(lambda)))
		rx *= scale
		ry *= scale
	}

	sign := float32(-1)
	if largeArc != sweep {
		sign = 1
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := float32(0)
	if den != 0 && num > 0 {
		co = sign * float32(math.Sqrt(float64(num/den)))
	}
	cxp := co * (rx * y1p / ry)
	cyp := -co * (ry * x1p / rx)

	cx := cosPhi*cxp - sinPhi*cyp + (x1+x2)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y1+y2)/2

	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := (-x1p - cxp) / rx
	vy := (-y1p - cyp) / ry

	theta1 := vecAngle(1, 0, ux, uy)
	dtheta := vecAngle(ux, uy, vx, vy)

	if !sweep && dtheta > 0 {
		dtheta -= 2 * float32(math.Pi)
	}
	if sweep && dtheta < 0 {
		dtheta += 2 * float32(math.Pi)
	}

	return ellipticalArc{cx: cx, cy: cy, rx: rx, ry: ry, phi: phi, theta1: theta1, deltaTheta: dtheta}, true
}

// pointAt evaluates the arc's parametric ellipse equation at angle theta.
func (a ellipticalArc) pointAt(theta float32) Point {
	cosPhi := float32(math.Cos(float64(a.phi)))
	sinPhi := float32(math.Sin(float64(a.phi)))
	cosT := float32(math.Cos(float64(theta)))
	sinT := float32(math.Sin(float64(theta)))
	return Point{
		X: a.cx + a.rx*cosPhi*cosT - a.ry*sinPhi*sinT,
		Y: a.cy + a.rx*sinPhi*cosT + a.ry*cosPhi*sinT,
	}
}

// segmentCount picks the subdivision count for this arc so that the
// sagitta of each segment stays under tolerance, with a floor of 4
// segments for visual smoothness on short sweeps.
func (a ellipticalArc) segmentCount(tolerance float32) int {
	r := a.rx
	if a.ry > r {
		r = a.ry
	}
	if r <= 0 || tolerance <= 0 {
		return 4
	}
	ratio := 1 - tolerance/r
	if ratio < -1 {
		ratio = -1
	}
	if ratio > 1 {
		ratio = 1
	}
	maxStep := 2 * float32(math.Acos(float64(ratio)))
	if maxStep <= 0 {
		return 4
	}
	absDelta := a.deltaTheta
	if absDelta < 0 {
		absDelta = -absDelta
	}
	n := int(math.Ceil(float64(absDelta / maxStep)))
	if n < 4 {
		n = 4
	}
	return n
}
