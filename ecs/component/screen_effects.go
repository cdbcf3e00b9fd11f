package component

// ScreenEffects holds the post-processing toggles. Systems flip them during
// the update; renderers only read them.
type ScreenEffects struct {
	Shake   bool
	Confuse bool
	Chaos   bool

	// ShakeTime is the remaining shake duration in seconds.
	ShakeTime float64
}
