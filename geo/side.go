package geo

// Side is the edge of a rectangle another rectangle touches.
type Side int

const (
	// SideInner isn't an edge. It tags rectangles that penetrate each other.
	SideInner Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

var sideNames = [...]string{"Inner", "Top", "Bottom", "Left", "Right"}

func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return "Unknown"
	}
	return sideNames[s]
}

// IsHorizontal reports whether s is Left or Right.
func (s Side) IsHorizontal() bool { return s == SideLeft || s == SideRight }

// IsVertical reports whether s is Top or Bottom.
func (s Side) IsVertical() bool { return s == SideTop || s == SideBottom }
