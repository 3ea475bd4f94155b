package canvas

// outsideCorner reports whether a point, in coordinates local to a corner's
// rounding circle, lies in the outer quadrant and beyond the circle.
func outsideCorner(x, y, r float64) bool {
	return x < 0 && y < 0 && x*x+y*y > r*r
}

// OutsideRoundedRect reports whether (x, y) lies outside the rectangle with
// top-left (l, t), size w x h and corner radius r. Membership is binary; a
// point exactly on a corner circle is inside.
func OutsideRoundedRect(x, y, l, t, w, h, r float64) bool {
	if x < l || x > l+w || y < t || y > t+h {
		return true
	}
	left := x - (l + r)
	right := (l + w - r) - x
	top := y - (t + r)
	bottom := (t + h - r) - y
	return outsideCorner(left, top, r) ||
		outsideCorner(left, bottom, r) ||
		outsideCorner(right, bottom, r) ||
		outsideCorner(right, top, r)
}
