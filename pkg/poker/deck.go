package poker

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Suit represents a card suit.
type Suit byte

const (
	Hearts   Suit = 'h'
	Diamonds Suit = 'd'
	Clubs    Suit = 'c'
	Spades   Suit = 's'
)

// Rank represents a card rank. Ten is encoded as 'T'.
type Rank byte

const (
	Two   Rank = '2'
	Three Rank = '3'
	Four  Rank = '4'
	Five  Rank = '5'
	Six   Rank = '6'
	Seven Rank = '7'
	Eight Rank = '8'
	Nine  Rank = '9'
	Ten   Rank = 'T'
	Jack  Rank = 'J'
	Queen Rank = 'Q'
	King  Rank = 'K'
	Ace   Rank = 'A'
)

var suits = []Suit{Hearts, Diamonds, Clubs, Spades}

var ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankValues = map[Rank]int{
	Two: 2, Three: 3, Four: 4, Five: 5, Six: 6, Seven: 7, Eight: 8, Nine: 9,
	Ten: 10, Jack: 11, Queen: 12, King: 13, Ace: 14,
}

// ErrInvalidCard is returned by ParseCard for malformed encodings. A caller
// hitting it has a bug, not a rules violation.
var ErrInvalidCard = errors.New("invalid card")

// ErrDeckUnderflow is returned when more cards are requested than remain.
var ErrDeckUnderflow = errors.New("not enough cards in deck")

// Card is an immutable playing card. The canonical textual form is the
// two-character string <rank><suit>, e.g. "Ah" or "Td".
type Card struct {
	rank Rank
	suit Suit
}

// NewCard builds a card from a rank and suit without validation. Use
// ParseCard for untrusted input.
func NewCard(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit}
}

// ParseCard parses the two-character encoding, e.g. "Ah" -> ace of hearts.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	r := Rank(s[0])
	if _, ok := rankValues[r]; !ok {
		return Card{}, fmt.Errorf("%w: bad rank in %q", ErrInvalidCard, s)
	}
	switch Suit(s[1]) {
	case Hearts, Diamonds, Clubs, Spades:
	default:
		return Card{}, fmt.Errorf("%w: bad suit in %q", ErrInvalidCard, s)
	}
	return Card{rank: r, suit: Suit(s[1])}, nil
}

// Rank returns the card's rank character.
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card's suit character.
func (c Card) Suit() Suit { return c.suit }

// Value returns the numeric rank value, 2 through 14 with ace high.
func (c Card) Value() int { return rankValues[c.rank] }

// String renders the canonical two-character encoding.
func (c Card) String() string {
	return string([]byte{byte(c.rank), byte(c.suit)})
}

// MarshalJSON encodes the card as its canonical string form.
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a card from its canonical string form.
func (c *Card) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCard(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Deck is a mutable sequence drawn from the 52 distinct cards.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a full, unshuffled deck using the given random number
// generator. A nil rng gets a time-seeded one.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	d := &Deck{cards: make([]Card, 0, 52), rng: rng}
	d.Reset()
	return d
}

// Reset repopulates the deck with all 52 cards in fixed, unshuffled order.
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	for _, s := range suits {
		for _, r := range ranks {
			d.cards = append(d.cards, Card{rank: r, suit: s})
		}
	}
}

// Shuffle randomizes the order of the remaining cards.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top n cards. The deck is left untouched when
// n exceeds the remaining count.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrDeckUnderflow, n, len(d.cards))
	}
	dealt := make([]Card, n)
	copy(dealt, d.cards[:n])
	d.cards = d.cards[n:]
	return dealt, nil
}

// DealOne removes and returns the top card.
func (d *Deck) DealOne() (Card, error) {
	cards, err := d.Deal(1)
	if err != nil {
		return Card{}, err
	}
	return cards[0], nil
}

// Burn discards the top card. Burning an empty deck is a no-op.
func (d *Deck) Burn() {
	if len(d.cards) > 0 {
		d.cards = d.cards[1:]
	}
}

// Remaining returns the number of cards left in the deck.
func (d *Deck) Remaining() int { return len(d.cards) }
