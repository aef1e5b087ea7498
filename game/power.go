package game

// Power identifies one of the unlockable late-game moves. The unlock flags
// are adjacent single bytes in memory, so the Power value doubles as the
// byte offset of its flag.
type Power uint8

const (
	// PowerBubbleBowl is the bowling-ball bubble move.
	PowerBubbleBowl Power = iota
	// PowerCruiseBubble is the guided-missile bubble move.
	PowerCruiseBubble

	// NumPowers is the number of unlockable powers.
	NumPowers = int(PowerCruiseBubble) + 1
)

func (p Power) String() string {
	switch p {
	case PowerBubbleBowl:
		return "Bubble Bowl"
	case PowerCruiseBubble:
		return "Cruise Bubble"
	}
	return "Power(?)"
}
