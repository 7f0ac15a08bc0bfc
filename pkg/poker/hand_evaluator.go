package poker

import "sort"

// HandRank represents the category of a poker hand, higher is better.
// RankIncomplete is the sentinel returned when fewer than five cards are
// available to evaluate.
type HandRank int

const (
	RankIncomplete HandRank = iota
	HighCard
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var handNames = map[HandRank]string{
	RankIncomplete: "Not enough cards",
	HighCard:       "High Card",
	OnePair:        "One Pair",
	TwoPair:        "Two Pair",
	ThreeOfAKind:   "Three of a Kind",
	Straight:       "Straight",
	Flush:          "Flush",
	FullHouse:      "Full House",
	FourOfAKind:    "Four of a Kind",
	StraightFlush:  "Straight Flush",
	RoyalFlush:     "Royal Flush",
}

// String returns the display name for the rank.
func (r HandRank) String() string {
	if name, ok := handNames[r]; ok {
		return name
	}
	return "Unknown"
}

// HandValue is a complete evaluation of a hand: the category, the kicker
// tuple used to break ties inside a category, and a display name.
type HandValue struct {
	Rank    HandRank
	Kickers []int
	Name    string
}

// SeatHand pairs a seat number with that seat's evaluated hand.
type SeatHand struct {
	Seat int
	Hand HandValue
}

// Evaluate finds the best five-card hand from the hole cards plus the
// community cards by scoring every five-card subset. With fewer than five
// cards total it returns the RankIncomplete sentinel.
func Evaluate(holeCards, communityCards []Card) HandValue {
	all := make([]Card, 0, len(holeCards)+len(communityCards))
	all = append(all, holeCards...)
	all = append(all, communityCards...)

	if len(all) < 5 {
		return HandValue{Rank: RankIncomplete, Name: handNames[RankIncomplete]}
	}

	best := HandValue{Rank: RankIncomplete}
	for _, five := range combinations(all, 5) {
		rank, kickers := evaluateFive(five)
		if rank > best.Rank || (rank == best.Rank && lessKickers(best.Kickers, kickers)) {
			best = HandValue{Rank: rank, Kickers: kickers, Name: handNames[rank]}
		}
	}
	return best
}

// evaluateFive scores exactly five cards.
func evaluateFive(cards []Card) (HandRank, []int) {
	values := make([]int, len(cards))
	for i, c := range cards {
		values[i] = c.Value()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	isFlush := true
	for _, c := range cards[1:] {
		if c.Suit() != cards[0].Suit() {
			isFlush = false
			break
		}
	}
	straight, straightHigh := isStraight(values)

	counts := make(map[int]int)
	for _, v := range values {
		counts[v]++
	}
	// Distinct values ordered by descending count, then descending value, so
	// the quad/trip/pair values precede unrelated kickers.
	grouped := make([]int, 0, len(counts))
	for v := range counts {
		grouped = append(grouped, v)
	}
	sort.Slice(grouped, func(i, j int) bool {
		if counts[grouped[i]] != counts[grouped[j]] {
			return counts[grouped[i]] > counts[grouped[j]]
		}
		return grouped[i] > grouped[j]
	})

	shape := make([]int, 0, len(grouped))
	for _, v := range grouped {
		shape = append(shape, counts[v])
	}
	sort.Sort(sort.Reverse(sort.IntSlice(shape)))

	switch {
	case straight && isFlush:
		if straightHigh == 14 {
			return RoyalFlush, []int{14}
		}
		return StraightFlush, []int{straightHigh}
	case len(shape) == 2 && shape[0] == 4:
		return FourOfAKind, grouped
	case len(shape) == 2 && shape[0] == 3:
		return FullHouse, grouped
	case isFlush:
		return Flush, values
	case straight:
		return Straight, []int{straightHigh}
	case len(shape) == 3 && shape[0] == 3:
		return ThreeOfAKind, grouped
	case len(shape) == 3 && shape[0] == 2:
		return TwoPair, grouped
	case len(shape) == 4:
		return OnePair, grouped
	default:
		return HighCard, values
	}
}

// isStraight reports whether five descending-sorted values form a straight
// and that straight's high card. The wheel A-2-3-4-5 counts with high card 5.
func isStraight(values []int) (bool, int) {
	distinct := make([]int, 0, 5)
	seen := make(map[int]bool)
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}
	if len(distinct) != 5 {
		return false, 0
	}
	if distinct[0]-distinct[4] == 4 {
		return true, distinct[0]
	}
	if distinct[0] == 14 && distinct[1] == 5 && distinct[4] == 2 {
		return true, 5
	}
	return false, 0
}

// lessKickers reports whether a orders strictly below b element-wise.
func lessKickers(a, b []int) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// CompareHands compares two evaluated hands and returns 1 if a is better,
// -1 if b is better, and 0 on an exact tie. Equal categories are decided by
// the kicker tuples element-wise; exhausting both means a tie.
func CompareHands(a, b HandValue) int {
	if a.Rank != b.Rank {
		if a.Rank > b.Rank {
			return 1
		}
		return -1
	}
	n := len(a.Kickers)
	if len(b.Kickers) < n {
		n = len(b.Kickers)
	}
	for i := 0; i < n; i++ {
		if a.Kickers[i] != b.Kickers[i] {
			if a.Kickers[i] > b.Kickers[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// FindWinners scans the seat hands once and returns every seat tied for the
// best hand. Ties are reported in full, never broken arbitrarily.
func FindWinners(hands []SeatHand) []int {
	if len(hands) == 0 {
		return nil
	}

	best := hands[0].Hand
	winners := []int{hands[0].Seat}
	for _, sh := range hands[1:] {
		switch CompareHands(sh.Hand, best) {
		case 1:
			best = sh.Hand
			winners = []int{sh.Seat}
		case 0:
			winners = append(winners, sh.Seat)
		}
	}
	return winners
}

// combinations generates every k-card subset of cards.
func combinations(cards []Card, k int) [][]Card {
	var out [][]Card
	if k > len(cards) || k <= 0 {
		return out
	}
	if k == len(cards) {
		return [][]Card{cards}
	}

	var generate func(start int, current []Card)
	generate = func(start int, current []Card) {
		if len(current) == k {
			combo := make([]Card, k)
			copy(combo, current)
			out = append(out, combo)
			return
		}
		for i := start; i <= len(cards)-(k-len(current)); i++ {
			generate(i+1, append(current, cards[i]))
		}
	}
	generate(0, make([]Card, 0, k))
	return out
}
