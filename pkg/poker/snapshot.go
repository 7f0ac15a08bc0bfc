package poker

import "sort"

// HiddenCard is the placeholder reported for another player's hole card
// before showdown. Viewers get one placeholder per concealed card, so the
// count is always truthful.
const HiddenCard = "XX"

// PlayerState is the per-seat view inside a table snapshot.
type PlayerState struct {
	Seat       int      `json:"seat"`
	Username   string   `json:"username"`
	Chips      int64    `json:"chips"`
	CurrentBet int64    `json:"current_bet"`
	Folded     bool     `json:"folded"`
	AllIn      bool     `json:"all_in"`
	Active     bool     `json:"active"`
	HoleCards  []string `json:"hole_cards"`
}

// TableSettings echoes the table configuration inside a snapshot.
type TableSettings struct {
	MaxPlayers       int   `json:"max_players"`
	SmallBlind       int64 `json:"small_blind"`
	BigBlind         int64 `json:"big_blind"`
	Ante             int64 `json:"ante"`
	InitialChips     int64 `json:"initial_chips"`
	TimeLimitSeconds int   `json:"time_limit_seconds"`
}

// TableState is a read-only snapshot of the table as seen by one viewer.
type TableState struct {
	ID             string                  `json:"table_id"`
	Name           string                  `json:"name"`
	Phase          string                  `json:"phase"`
	HandNumber     int                     `json:"hand_number"`
	Pot            int64                   `json:"pot"`
	CurrentBet     int64                   `json:"current_bet"`
	CommunityCards []string                `json:"community_cards"`
	Players        []PlayerState           `json:"players"`
	ButtonSeat     int                     `json:"button_seat"`
	SmallBlindSeat int                     `json:"sb_seat"`
	BigBlindSeat   int                     `json:"bb_seat"`
	CurrentSeat    int                     `json:"current_player_seat"`
	Settings       TableSettings           `json:"settings"`
	ValidActions   map[Action]ActionBounds `json:"valid_actions,omitempty"`
}

// State builds a snapshot for the viewer identified by token (empty or
// unknown tokens get the public view). The viewer's own hole cards are
// revealed; everyone's are at SHOWDOWN and FINISHED. The legal-action map
// is included only when it is the viewer's turn.
func (t *Table) State(viewerToken string) TableState {
	viewerSeat := 0
	if viewerToken != "" {
		if viewer := t.PlayerByToken(viewerToken); viewer != nil {
			viewerSeat = viewer.Seat
		}
	}

	seats := make([]int, 0, len(t.players))
	for s := range t.players {
		seats = append(seats, s)
	}
	sort.Ints(seats)

	reveal := t.phase == PhaseShowdown || t.phase == PhaseFinished

	players := make([]PlayerState, 0, len(seats))
	for _, seat := range seats {
		p := t.players[seat]
		ps := PlayerState{
			Seat:       seat,
			Username:   p.Username,
			Chips:      p.Chips,
			CurrentBet: p.CurrentBet,
			Folded:     p.Status() == StatusFolded,
			AllIn:      p.Status() == StatusAllIn,
			Active:     p.IsSeated(),
			HoleCards:  make([]string, 0, len(p.HoleCards)),
		}
		show := reveal || seat == viewerSeat
		for _, c := range p.HoleCards {
			if show {
				ps.HoleCards = append(ps.HoleCards, c.String())
			} else {
				ps.HoleCards = append(ps.HoleCards, HiddenCard)
			}
		}
		players = append(players, ps)
	}

	state := TableState{
		ID:             t.cfg.ID,
		Name:           t.cfg.Name,
		Phase:          t.phase.String(),
		HandNumber:     t.handNumber,
		Pot:            t.pot,
		CurrentBet:     t.currentBet,
		CommunityCards: cardStrings(t.communityCards),
		Players:        players,
		ButtonSeat:     t.buttonSeat,
		SmallBlindSeat: t.sbSeat,
		BigBlindSeat:   t.bbSeat,
		CurrentSeat:    t.currentSeat,
		Settings: TableSettings{
			MaxPlayers:       t.cfg.MaxPlayers,
			SmallBlind:       t.cfg.SmallBlind,
			BigBlind:         t.cfg.BigBlind,
			Ante:             t.cfg.Ante,
			InitialChips:     t.cfg.InitialChips,
			TimeLimitSeconds: int(t.cfg.TimeLimit.Seconds()),
		},
	}

	if viewerSeat != 0 && viewerSeat == t.currentSeat {
		state.ValidActions = t.validActions(viewerSeat)
	}

	return state
}
