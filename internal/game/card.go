package game

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
)

// Card is one entry of the word deck: the word to describe and the
// words the describer may not say.
type Card struct {
	Word           string   `json:"word"`
	ForbiddenWords []string `json:"forbidden_words"`
}

// deckFile is the embedded JSON structure.
type deckFile struct {
	DeckName string `json:"deck_name"`
	DeckLang string `json:"deck_lang"`
	Cards    []Card `json:"cards"`
}

// Deck is the immutable card list loaded once at startup. Draws are
// uniform random with replacement, so the same card can show up in
// consecutive turns.
type Deck struct {
	name  string
	cards []Card
}

// NewDeck parses the embedded deck JSON. Fails fast on malformed or
// empty decks so the server never starts without cards.
func NewDeck(data []byte) (*Deck, error) {
	var f deckFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse card deck: %w", err)
	}
	if len(f.Cards) == 0 {
		return nil, ErrEmptyDeck
	}
	for i, c := range f.Cards {
		if c.Word == "" {
			return nil, fmt.Errorf("card %d has no word", i)
		}
	}
	return &Deck{name: f.DeckName, cards: f.Cards}, nil
}

// Name returns the deck's name.
func (d *Deck) Name() string {
	return d.name
}

// Size returns the number of cards in the deck.
func (d *Deck) Size() int {
	return len(d.cards)
}

// Draw returns a random card.
func (d *Deck) Draw() Card {
	return d.cards[rand.IntN(len(d.cards))]
}
