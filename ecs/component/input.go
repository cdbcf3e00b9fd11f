package component

// Key names a logical control. Frontends map their own key codes onto these.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyLaunch
	KeyConfirm
	KeyMenuUp
	KeyMenuDown
	keyCount
)

// Input stores the pressed state of every key for one frame.
type Input struct {
	pressed [keyCount]bool
}

// Set records whether k is held this frame.
func (in *Input) Set(k Key, pressed bool) {
	if in == nil || k >= keyCount {
		return
	}
	in.pressed[k] = pressed
}

// Pressed reports whether k is held this frame.
func (in Input) Pressed(k Key) bool {
	if k >= keyCount {
		return false
	}
	return in.pressed[k]
}

// JustPressed reports whether k is held now but was not in prev.
func (in Input) JustPressed(prev Input, k Key) bool {
	return in.Pressed(k) && !prev.Pressed(k)
}
