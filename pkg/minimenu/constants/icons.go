package constants

// Text markers drawn in the value column of menu rows.
const (
	MarkerNavigation = ">"
	MarkerChecked    = "[X]"
	MarkerUnchecked  = "[ ]"
	Ellipsis         = "..."
)
