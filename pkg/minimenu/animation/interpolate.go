package animation

// Interpolate maps value from [xMin, xMax] onto [yMin, yMax] with integer
// floor division. Values outside the input range are clamped first.
func Interpolate(value, xMin, xMax, yMin, yMax int) int {
	if xMax <= xMin {
		return yMin
	}
	if value <= xMin {
		return yMin
	}
	if value >= xMax {
		return yMax
	}
	return (value-xMin)*(yMax-yMin)/(xMax-xMin) + yMin
}
