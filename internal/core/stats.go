package core

// Stats captures the values shown on the HUD for a single frame.
type Stats struct {
	World      string
	Generation int
	Population int
	Rate       int
	Running    bool
}
