package poker

// PlayerStatus is the tagged per-seat state. Exactly one holds at any time;
// turn logic never re-derives it from flag combinations.
type PlayerStatus int

const (
	// StatusActive means the player is seated, in the hand, and still has a
	// voluntary decision to make.
	StatusActive PlayerStatus = iota
	// StatusFolded means the player has folded this hand.
	StatusFolded
	// StatusAllIn means the player has wagered their entire stack this hand.
	StatusAllIn
	// StatusSittingOut means the seat is reserved but the player is not
	// taking part in hands.
	StatusSittingOut
)

// String returns a display name for the status.
func (s PlayerStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFolded:
		return "folded"
	case StatusAllIn:
		return "all_in"
	case StatusSittingOut:
		return "sitting_out"
	default:
		return "unknown"
	}
}

// Player holds one seat's game state and betting primitives. All mutation
// goes through the table that owns it.
type Player struct {
	Seat     int
	Username string
	Chips    int64
	Token    string
	RefID    int64

	HoleCards      []Card
	CurrentBet     int64 // wager committed this betting round
	TotalBetInHand int64 // cumulative wager this hand

	status           PlayerStatus
	chipsAtHandStart int64
}

// NewPlayer creates a seated player with the given stack.
func NewPlayer(seat int, username string, chips int64, token string, refID int64) *Player {
	return &Player{
		Seat:             seat,
		Username:         username,
		Chips:            chips,
		Token:            token,
		RefID:            refID,
		HoleCards:        make([]Card, 0, 2),
		status:           StatusActive,
		chipsAtHandStart: chips,
	}
}

// ResetForNewHand clears cards, bets, and the folded/all-in status at the
// start of each hand. Chips and a sitting-out status are preserved.
func (p *Player) ResetForNewHand() {
	p.HoleCards = make([]Card, 0, 2)
	p.CurrentBet = 0
	p.TotalBetInHand = 0
	p.chipsAtHandStart = p.Chips
	if p.status != StatusSittingOut {
		p.status = StatusActive
	}
}

// Bet deducts min(amount, chips) from the stack and returns the actual
// wager taken; the caller adds it to the pot. A bet that empties the stack
// moves the player all-in.
func (p *Player) Bet(amount int64) int64 {
	actual := amount
	if actual > p.Chips {
		actual = p.Chips
	}
	p.Chips -= actual
	p.CurrentBet += actual
	p.TotalBetInHand += actual
	if p.Chips == 0 {
		p.status = StatusAllIn
	}
	return actual
}

// Fold marks the player folded for the rest of the hand.
func (p *Player) Fold() {
	p.status = StatusFolded
}

// Win credits a pot share to the stack.
func (p *Player) Win(amount int64) {
	p.Chips += amount
}

// SitOut takes the player out of upcoming hands without freeing the seat.
func (p *Player) SitOut() {
	p.status = StatusSittingOut
}

// Return seats the player back in for upcoming hands.
func (p *Player) Return() {
	if p.status == StatusSittingOut {
		p.status = StatusActive
	}
}

// Status returns the player's tagged state.
func (p *Player) Status() PlayerStatus { return p.status }

// CanAct reports whether the player still has a voluntary decision to make:
// seated, not folded, not all-in.
func (p *Player) CanAct() bool {
	return p.status == StatusActive
}

// InHand reports whether the player is seated and has not folded.
func (p *Player) InHand() bool {
	return p.status == StatusActive || p.status == StatusAllIn
}

// IsSeated reports whether the player takes part in hands at all.
func (p *Player) IsSeated() bool {
	return p.status != StatusSittingOut
}

// ChipsAtHandStart returns the stack size recorded when the current hand
// began. Together with the pot and round bets it makes chip conservation
// checkable at any point.
func (p *Player) ChipsAtHandStart() int64 { return p.chipsAtHandStart }
