package game

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// dragState tracks a rubber-band selection in detailed-map coordinates.
type dragState struct {
	active bool
	startX int
	startY int
}
