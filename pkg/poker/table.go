package poker

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/decred/slog"

	"github.com/pokerhall/holdem/pkg/statemachine"
)

// Phase is the table-level game phase.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhasePreflop
	PhaseFlop
	PhaseTurn
	PhaseRiver
	PhaseShowdown
	PhaseFinished
)

var phaseNames = map[Phase]string{
	PhaseWaiting:  "waiting",
	PhasePreflop:  "preflop",
	PhaseFlop:     "flop",
	PhaseTurn:     "turn",
	PhaseRiver:    "river",
	PhaseShowdown: "showdown",
	PhaseFinished: "finished",
}

// String returns the lowercase phase name.
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Action is a player decision token. The tokens are case-sensitive and form
// the engine's entire action vocabulary.
type Action string

const (
	ActionFold  Action = "fold"
	ActionCheck Action = "check"
	ActionCall  Action = "call"
	ActionBet   Action = "bet"
	ActionRaise Action = "raise"
	ActionAllIn Action = "all_in"
)

// ActionBounds carries the legal amount range (or fixed amount) for one
// entry of the valid-action map.
type ActionBounds struct {
	Min    int64 `json:"min,omitempty"`
	Max    int64 `json:"max,omitempty"`
	Amount int64 `json:"amount,omitempty"`
}

// ActionEntry is one record of the per-hand append-only action log.
// Seat 0 means the entry is not tied to a seat (e.g. dealing).
type ActionEntry struct {
	Kind    string         `json:"action"`
	Seat    int            `json:"player_seat,omitempty"`
	Name    string         `json:"player_name,omitempty"`
	Amount  int64          `json:"amount"`
	Details map[string]any `json:"details"`
}

// SidePot is a reserved settlement structure: an amount restricted to a set
// of eligible seats. The engine declares side pots but never computes them;
// the whole pot is settled as one (see Table.distributePot).
type SidePot struct {
	Amount        int64 `json:"amount"`
	EligibleSeats []int `json:"eligible_seats"`
}

// TableConfig holds construction parameters for a table. Zero values get
// defaults in NewTable. TimeLimit is advisory only: the engine carries it
// for an external turn timer and does not enforce it.
type TableConfig struct {
	ID           string
	Name         string
	MaxPlayers   int
	SmallBlind   int64
	BigBlind     int64
	Ante         int64
	InitialChips int64
	TimeLimit    time.Duration

	// Log receives turn-flow and hand-lifecycle tracing. Defaults to
	// slog.Disabled.
	Log slog.Logger
	// Rand drives the deck shuffle; useful for reproducible deals in tests.
	// Defaults to a time-seeded generator.
	Rand *rand.Rand
}

// Table is the orchestrator: it owns the deck and all players, drives the
// phase/turn state machine, applies actions, and settles the pot. It is
// single-threaded; callers must serialize mutating calls per table.
type Table struct {
	log slog.Logger
	cfg TableConfig

	players map[int]*Player

	phase          Phase
	deck           *Deck
	communityCards []Card
	pot            int64
	sidePots       []SidePot

	currentBet     int64
	minRaise       int64
	currentSeat    int // 0 = nobody to act
	lastRaiserSeat int // 0 = no aggressor this round
	actedSeats     map[int]bool

	buttonSeat int
	sbSeat     int
	bbSeat     int

	handNumber int
	actionLogs []ActionEntry

	streets *statemachine.Machine[Table]
}

// NewTable creates a table in the WAITING phase.
func NewTable(cfg TableConfig) *Table {
	if cfg.MaxPlayers == 0 {
		cfg.MaxPlayers = 6
	}
	if cfg.SmallBlind == 0 {
		cfg.SmallBlind = 10
	}
	if cfg.BigBlind == 0 {
		cfg.BigBlind = 2 * cfg.SmallBlind
	}
	if cfg.InitialChips == 0 {
		cfg.InitialChips = 1000
	}
	if cfg.TimeLimit == 0 {
		cfg.TimeLimit = 30 * time.Second
	}
	if cfg.Log == nil {
		cfg.Log = slog.Disabled
	}

	t := &Table{
		log:      cfg.Log,
		cfg:      cfg,
		players:  make(map[int]*Player),
		phase:    PhaseWaiting,
		deck:     NewDeck(cfg.Rand),
		minRaise: cfg.BigBlind,
	}
	t.streets = statemachine.New(t, nil)
	return t
}

// Config returns the table configuration.
func (t *Table) Config() TableConfig { return t.cfg }

// Phase returns the current game phase.
func (t *Table) Phase() Phase { return t.phase }

// Pot returns the current pot total.
func (t *Table) Pot() int64 { return t.pot }

// CurrentBet returns the highest wager matched this betting round.
func (t *Table) CurrentBet() int64 { return t.currentBet }

// MinRaise returns the current minimum legal raise increment.
func (t *Table) MinRaise() int64 { return t.minRaise }

// HandNumber returns the monotonic hand counter.
func (t *Table) HandNumber() int { return t.handNumber }

// ButtonSeat returns the dealer-button seat, 0 before the first hand.
func (t *Table) ButtonSeat() int { return t.buttonSeat }

// CurrentSeat returns the seat to act, 0 when nobody is to act.
func (t *Table) CurrentSeat() int { return t.currentSeat }

// LastRaiserSeat returns the last aggressor's seat this round, 0 if none.
func (t *Table) LastRaiserSeat() int { return t.lastRaiserSeat }

// CommunityCards returns a copy of the board.
func (t *Table) CommunityCards() []Card {
	cards := make([]Card, len(t.communityCards))
	copy(cards, t.communityCards)
	return cards
}

// AddPlayer seats a new player. It fails without mutation when the seat is
// out of range or occupied, the table is full, or the username collides
// with a seated player's.
func (t *Table) AddPlayer(seat int, username string, chips int64, token string, refID int64) bool {
	if seat < 1 || seat > t.cfg.MaxPlayers {
		return false
	}
	if _, occupied := t.players[seat]; occupied {
		return false
	}
	if len(t.players) >= t.cfg.MaxPlayers {
		return false
	}
	for _, p := range t.players {
		if p.IsSeated() && p.Username == username {
			return false
		}
	}

	t.players[seat] = NewPlayer(seat, username, chips, token, refID)
	t.logAction("join", seat, username, chips, map[string]any{})
	t.log.Debugf("table %s: %s joined seat %d with %d chips", t.cfg.ID, username, seat, chips)
	return true
}

// RemovePlayer frees a seat. It fails when the seat is unoccupied.
func (t *Table) RemovePlayer(seat int) bool {
	p, ok := t.players[seat]
	if !ok {
		return false
	}
	t.logAction("leave", seat, p.Username, p.Chips, map[string]any{})
	delete(t.players, seat)
	t.log.Debugf("table %s: %s left seat %d", t.cfg.ID, p.Username, seat)
	return true
}

// PlayerBySeat returns the player at a seat, or nil.
func (t *Table) PlayerBySeat(seat int) *Player {
	return t.players[seat]
}

// PlayerByToken resolves a player from an identity token, or nil.
func (t *Table) PlayerByToken(token string) *Player {
	for _, p := range t.players {
		if p.Token == token {
			return p
		}
	}
	return nil
}

// PlayerCount returns the number of occupied seats.
func (t *Table) PlayerCount() int { return len(t.players) }

// activeSeats returns sorted seats of players who are seated and have not
// folded this hand.
func (t *Table) activeSeats() []int {
	seats := make([]int, 0, len(t.players))
	for s, p := range t.players {
		if p.InHand() {
			seats = append(seats, s)
		}
	}
	sort.Ints(seats)
	return seats
}

// actingSeats returns sorted seats of players who can still act.
func (t *Table) actingSeats() []int {
	seats := make([]int, 0, len(t.players))
	for s, p := range t.players {
		if p.CanAct() {
			seats = append(seats, s)
		}
	}
	sort.Ints(seats)
	return seats
}

// nextSeat returns the next in-hand seat strictly after the given one,
// wrapping to the lowest; 0 when no such seat exists.
func (t *Table) nextSeat(after int) int {
	seats := t.activeSeats()
	if len(seats) == 0 {
		return 0
	}
	for _, s := range seats {
		if s > after {
			return s
		}
	}
	return seats[0]
}

// nextActingSeat returns the next seat after the given one whose player can
// still act, wrapping; 0 when nobody can act.
func (t *Table) nextActingSeat(after int) int {
	seats := t.actingSeats()
	if len(seats) == 0 {
		return 0
	}
	for _, s := range seats {
		if s > after {
			return s
		}
	}
	return seats[0]
}

// StartGame begins a new hand. Allowed only from WAITING or FINISHED, with
// at least two seated players.
func (t *Table) StartGame() error {
	if t.phase != PhaseWaiting && t.phase != PhaseFinished {
		return fmt.Errorf("game already in progress")
	}
	seated := 0
	for _, p := range t.players {
		if p.IsSeated() {
			seated++
		}
	}
	if seated < 2 {
		return fmt.Errorf("need at least 2 players")
	}

	t.startNewHand()
	return nil
}

func (t *Table) startNewHand() {
	t.handNumber++
	t.communityCards = nil
	t.pot = 0
	t.sidePots = nil
	t.currentBet = 0
	t.minRaise = t.cfg.BigBlind
	t.actionLogs = nil
	t.lastRaiserSeat = 0
	t.actedSeats = make(map[int]bool)

	for _, p := range t.players {
		p.ResetForNewHand()
	}

	t.deck.Reset()
	t.deck.Shuffle()

	active := t.activeSeats()

	// Advance the button to the next active seat, wrapping; the very first
	// hand puts it on the lowest active seat.
	if t.buttonSeat == 0 {
		t.buttonSeat = active[0]
	} else {
		if next := t.nextSeat(t.buttonSeat); next != 0 {
			t.buttonSeat = next
		} else {
			t.buttonSeat = active[0]
		}
	}

	// Heads-up: the button posts the small blind.
	if len(active) == 2 {
		t.sbSeat = t.buttonSeat
		t.bbSeat = t.nextSeat(t.buttonSeat)
	} else {
		t.sbSeat = t.nextSeat(t.buttonSeat)
		t.bbSeat = t.nextSeat(t.sbSeat)
	}

	if t.cfg.Ante > 0 {
		for _, seat := range active {
			p := t.players[seat]
			ante := p.Bet(t.cfg.Ante)
			t.pot += ante
			t.logAction("post_ante", seat, p.Username, ante, map[string]any{})
		}
	}

	// Blinds post through the clamped Bet, so a short stack posts less and
	// goes all-in.
	sb := t.players[t.sbSeat]
	sbAmount := sb.Bet(t.cfg.SmallBlind)
	t.pot += sbAmount
	t.logAction("post_blind", t.sbSeat, sb.Username, sbAmount, map[string]any{"type": "small_blind"})

	bb := t.players[t.bbSeat]
	bbAmount := bb.Bet(t.cfg.BigBlind)
	t.pot += bbAmount
	t.currentBet = bbAmount
	t.logAction("post_blind", t.bbSeat, bb.Username, bbAmount, map[string]any{"type": "big_blind"})

	// Two passes, one card per seat per pass; the interleaving is what a
	// replay of the dealing order expects.
	for pass := 0; pass < 2; pass++ {
		for _, seat := range active {
			card := t.mustDealOne()
			t.players[seat].HoleCards = append(t.players[seat].HoleCards, card)
		}
	}
	t.logAction("deal", 0, "", 0, map[string]any{"phase": "preflop", "cards_dealt": 2})

	t.phase = PhasePreflop
	// The big blind is the implicit aggressor preflop: the round closes when
	// action returns to it.
	t.lastRaiserSeat = t.bbSeat
	t.currentSeat = t.nextActingSeat(t.bbSeat)
	t.streets.Set(tableStateFlop)

	t.log.Infof("table %s: hand #%d started, button=%d sb=%d bb=%d first_to_act=%d",
		t.cfg.ID, t.handNumber, t.buttonSeat, t.sbSeat, t.bbSeat, t.currentSeat)
}

// ProcessAction applies one player decision. Rule violations come back as
// errors with the human-readable reason; the table is left unchanged.
func (t *Table) ProcessAction(seat int, action Action, amount int64) error {
	switch t.phase {
	case PhasePreflop, PhaseFlop, PhaseTurn, PhaseRiver:
	default:
		return fmt.Errorf("cannot act in current phase")
	}
	if seat != t.currentSeat {
		return fmt.Errorf("not your turn")
	}
	p := t.players[seat]
	if p == nil || !p.CanAct() {
		return fmt.Errorf("cannot act")
	}

	valid := t.validActions(seat)
	if _, ok := valid[action]; !ok {
		return fmt.Errorf("invalid action, valid actions: %v", actionKeys(valid))
	}

	switch action {
	case ActionFold:
		p.Fold()
		t.logAction("fold", seat, p.Username, 0, map[string]any{})

	case ActionCheck:
		if p.CurrentBet < t.currentBet {
			return fmt.Errorf("cannot check, must call or fold")
		}
		t.logAction("check", seat, p.Username, 0, map[string]any{})

	case ActionCall:
		callAmount := t.currentBet - p.CurrentBet
		if callAmount > p.Chips {
			callAmount = p.Chips
		}
		actual := p.Bet(callAmount)
		t.pot += actual
		t.logAction("call", seat, p.Username, actual, map[string]any{})

	case ActionBet:
		if t.currentBet > 0 {
			return fmt.Errorf("cannot bet, use raise instead")
		}
		if amount < t.cfg.BigBlind {
			return fmt.Errorf("minimum bet is %d", t.cfg.BigBlind)
		}
		if amount > p.Chips {
			return fmt.Errorf("not enough chips")
		}
		actual := p.Bet(amount)
		t.pot += actual
		t.currentBet = p.CurrentBet
		t.minRaise = amount
		t.lastRaiserSeat = seat
		t.logAction("bet", seat, p.Username, actual, map[string]any{})

	case ActionRaise:
		if t.currentBet == 0 {
			return fmt.Errorf("cannot raise, use bet instead")
		}
		// amount is the absolute raise-to target for this seat's round wager.
		raiseAmount := amount - t.currentBet
		allInRaise := amount == p.Chips+p.CurrentBet
		if raiseAmount < t.minRaise && !allInRaise {
			return fmt.Errorf("minimum raise is %d", t.minRaise)
		}
		total := (t.currentBet - p.CurrentBet) + raiseAmount
		if total > p.Chips {
			return fmt.Errorf("not enough chips")
		}
		actual := p.Bet(total)
		t.pot += actual
		// An under-sized all-in raise is allowed but does not reopen the
		// betting: min raise and aggressor only move when the increment met
		// the minimum.
		if raiseAmount >= t.minRaise {
			t.minRaise = raiseAmount
			t.lastRaiserSeat = seat
		}
		t.currentBet = p.CurrentBet
		t.logAction("raise", seat, p.Username, actual, map[string]any{"raise_to": amount})

	case ActionAllIn:
		actual := p.Bet(p.Chips)
		t.pot += actual
		if p.CurrentBet > t.currentBet {
			raiseAmount := p.CurrentBet - t.currentBet
			if raiseAmount >= t.minRaise {
				t.minRaise = raiseAmount
				t.lastRaiserSeat = seat
			}
			t.currentBet = p.CurrentBet
		}
		t.logAction("all_in", seat, p.Username, actual, map[string]any{})
	}

	t.log.Debugf("table %s: seat %d %s amount=%d pot=%d current_bet=%d",
		t.cfg.ID, seat, action, amount, t.pot, t.currentBet)

	t.advanceAction()
	return nil
}

// validActions computes the legal action set with bounds for a seat.
func (t *Table) validActions(seat int) map[Action]ActionBounds {
	p := t.players[seat]
	if p == nil || !p.CanAct() {
		return nil
	}

	actions := make(map[Action]ActionBounds)
	toCall := t.currentBet - p.CurrentBet

	actions[ActionFold] = ActionBounds{}

	if toCall == 0 {
		actions[ActionCheck] = ActionBounds{}
		actions[ActionBet] = ActionBounds{Min: t.cfg.BigBlind, Max: p.Chips}
	} else {
		callAmount := toCall
		if callAmount > p.Chips {
			callAmount = p.Chips
		}
		actions[ActionCall] = ActionBounds{Amount: callAmount}
		if p.Chips+p.CurrentBet > t.currentBet {
			maxTo := p.Chips + p.CurrentBet
			minTo := t.currentBet + t.minRaise
			if minTo > maxTo {
				minTo = maxTo
			}
			actions[ActionRaise] = ActionBounds{Min: minTo, Max: maxTo}
		}
	}

	if p.Chips > 0 {
		actions[ActionAllIn] = ActionBounds{Amount: p.Chips}
	}

	return actions
}

// ValidActions returns the legal action set for the seat currently to act,
// or nil when the seat is not to act.
func (t *Table) ValidActions(seat int) map[Action]ActionBounds {
	if seat != t.currentSeat {
		return nil
	}
	return t.validActions(seat)
}

func actionKeys(m map[Action]ActionBounds) []Action {
	keys := make([]Action, 0, len(m))
	for a := range m {
		keys = append(keys, a)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// advanceAction runs after every successful action: it detects hand and
// round termination, or passes the turn to the next seat.
func (t *Table) advanceAction() {
	t.actedSeats[t.currentSeat] = true

	active := t.activeSeats()

	// Everyone else folded: the survivor takes the pot, no showdown.
	if len(active) == 1 {
		t.endHandSingleWinner(t.players[active[0]])
		return
	}

	// When at most one player can still make a voluntary decision and all
	// in-hand wagers are matched or all-in, no further betting is possible.
	acting := t.actingSeats()
	if len(acting) <= 1 {
		allBetsEqual := true
		for _, seat := range active {
			p := t.players[seat]
			if p.Status() != StatusAllIn && p.CurrentBet != t.currentBet {
				allBetsEqual = false
				break
			}
		}
		if allBetsEqual || len(acting) == 0 {
			t.dealRemainingAndShowdown()
			return
		}
	}

	next := t.nextActingSeat(t.currentSeat)

	allMatched := true
	for _, p := range t.players {
		if !p.IsSeated() {
			continue
		}
		if p.Status() == StatusFolded || p.Status() == StatusAllIn {
			continue
		}
		if p.CurrentBet != t.currentBet {
			allMatched = false
			break
		}
	}

	if t.lastRaiserSeat != 0 {
		// Round ends when action would return to the aggressor with every
		// wager matched or all-in.
		if next == t.lastRaiserSeat && allMatched {
			t.endBettingRound()
			return
		}
	} else {
		// Nobody has bet this round: it ends once every seat that can act
		// has acted at least once.
		done := true
		for _, seat := range t.actingSeats() {
			if !t.actedSeats[seat] {
				done = false
				break
			}
		}
		if done {
			t.endBettingRound()
			return
		}
	}

	t.currentSeat = next
}

// endBettingRound resets all round-local wagers and advances to the next
// street via the state machine.
func (t *Table) endBettingRound() {
	for _, p := range t.players {
		p.CurrentBet = 0
	}
	t.currentBet = 0
	t.minRaise = t.cfg.BigBlind
	t.streets.Step()
}

// Street state functions: each deals its street and hands over to the next.
// The machine steps once per completed betting round.

func tableStateFlop(t *Table) statemachine.Fn[Table] {
	t.dealStreet(PhaseFlop, 3)
	return tableStateTurn
}

func tableStateTurn(t *Table) statemachine.Fn[Table] {
	t.dealStreet(PhaseTurn, 1)
	return tableStateRiver
}

func tableStateRiver(t *Table) statemachine.Fn[Table] {
	t.dealStreet(PhaseRiver, 1)
	return tableStateShowdown
}

func tableStateShowdown(t *Table) statemachine.Fn[Table] {
	t.showdown()
	return nil
}

// dealStreet burns one card, deals n community cards, and opens a fresh
// betting round.
func (t *Table) dealStreet(phase Phase, n int) {
	t.phase = phase
	t.deck.Burn()
	t.communityCards = append(t.communityCards, t.mustDeal(n)...)
	t.logAction("deal", 0, "", 0, map[string]any{
		"phase": phase.String(),
		"cards": cardStrings(t.communityCards),
	})
	t.log.Debugf("table %s: dealt %s, board %v", t.cfg.ID, phase, cardStrings(t.communityCards))
	t.startNewBettingRound()
}

// startNewBettingRound points the action at the first can-act seat strictly
// after the button, with no aggressor yet.
func (t *Table) startNewBettingRound() {
	if len(t.actingSeats()) == 0 {
		t.showdown()
		t.streets.Set(nil)
		return
	}
	t.currentSeat = t.nextActingSeat(t.buttonSeat)
	t.lastRaiserSeat = 0
	t.actedSeats = make(map[int]bool)
}

// dealRemainingAndShowdown deals out whatever community cards are missing
// and goes straight to showdown; used when no further betting is possible.
func (t *Table) dealRemainingAndShowdown() {
	for len(t.communityCards) < 5 {
		t.deck.Burn()
		if len(t.communityCards) == 0 {
			t.communityCards = append(t.communityCards, t.mustDeal(3)...)
		} else {
			t.communityCards = append(t.communityCards, t.mustDealOne())
		}
	}
	t.logAction("deal", 0, "", 0, map[string]any{
		"phase": "showdown",
		"cards": cardStrings(t.communityCards),
	})
	t.showdown()
	t.streets.Set(nil)
}

// showdown evaluates every non-folded hand, settles the pot, and finishes
// the hand.
func (t *Table) showdown() {
	t.phase = PhaseShowdown

	hands := make([]SeatHand, 0, len(t.players))
	for _, seat := range t.activeSeats() {
		p := t.players[seat]
		hv := Evaluate(p.HoleCards, t.communityCards)
		hands = append(hands, SeatHand{Seat: seat, Hand: hv})
		t.logAction("showdown", seat, p.Username, 0, map[string]any{
			"hole_cards": cardStrings(p.HoleCards),
			"hand":       hv.Name,
		})
	}

	winners := FindWinners(hands)
	t.distributePot(winners, hands)
	t.phase = PhaseFinished
	t.log.Infof("table %s: hand #%d finished, winners=%v", t.cfg.ID, t.handNumber, winners)
}

// endHandSingleWinner credits the whole pot to the last player standing.
func (t *Table) endHandSingleWinner(winner *Player) {
	winner.Win(t.pot)
	t.logAction("win", winner.Seat, winner.Username, t.pot, map[string]any{"reason": "last_player"})
	t.log.Infof("table %s: hand #%d finished, seat %d wins %d uncontested",
		t.cfg.ID, t.handNumber, winner.Seat, t.pot)
	t.pot = 0
	t.phase = PhaseFinished
	t.streets.Set(nil)
}

// distributePot splits the single pot evenly among the tied winners. The
// remainder goes one chip each to winners in ascending seat order. This is
// the documented simplification: no side-pot computation.
func (t *Table) distributePot(winnerSeats []int, hands []SeatHand) {
	if len(winnerSeats) == 0 {
		return
	}
	sort.Ints(winnerSeats)

	share := t.pot / int64(len(winnerSeats))
	remainder := t.pot % int64(len(winnerSeats))

	for i, seat := range winnerSeats {
		amount := share
		if int64(i) < remainder {
			amount++
		}
		t.players[seat].Win(amount)

		handName := ""
		for _, sh := range hands {
			if sh.Seat == seat {
				handName = sh.Hand.Name
				break
			}
		}
		t.logAction("win", seat, t.players[seat].Username, amount, map[string]any{"hand": handName})
	}

	t.pot = 0
}

func (t *Table) logAction(kind string, seat int, name string, amount int64, details map[string]any) {
	t.actionLogs = append(t.actionLogs, ActionEntry{
		Kind:    kind,
		Seat:    seat,
		Name:    name,
		Amount:  amount,
		Details: details,
	})
}

// ActionLogs returns a copy of the current hand's action log in order.
func (t *Table) ActionLogs() []ActionEntry {
	logs := make([]ActionEntry, len(t.actionLogs))
	copy(logs, t.actionLogs)
	return logs
}

// mustDeal deals n cards; running out mid-hand means the table miscounted,
// which is a bug, not a rules violation.
func (t *Table) mustDeal(n int) []Card {
	cards, err := t.deck.Deal(n)
	if err != nil {
		panic(fmt.Sprintf("poker: deck underflow mid-hand: %v", err))
	}
	return cards
}

func (t *Table) mustDealOne() Card {
	card, err := t.deck.DealOne()
	if err != nil {
		panic(fmt.Sprintf("poker: deck underflow mid-hand: %v", err))
	}
	return card
}

func cardStrings(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
