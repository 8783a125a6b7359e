package game

import (
	"errors"
	"testing"
)

func TestNewDeck(t *testing.T) {
	t.Run("valid deck", func(t *testing.T) {
		deck, err := NewDeck([]byte(testDeckJSON))
		if err != nil {
			t.Fatalf("NewDeck() error = %v", err)
		}
		if deck.Name() != "test-deck" {
			t.Errorf("Name() = %s, want test-deck", deck.Name())
		}
		if deck.Size() != 3 {
			t.Errorf("Size() = %d, want 3", deck.Size())
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		if _, err := NewDeck([]byte("{not json")); err == nil {
			t.Error("NewDeck() accepted malformed JSON")
		}
	})

	t.Run("empty deck", func(t *testing.T) {
		if _, err := NewDeck([]byte(`{"deck_name": "x", "cards": []}`)); !errors.Is(err, ErrEmptyDeck) {
			t.Errorf("NewDeck() error = %v, want %v", err, ErrEmptyDeck)
		}
	})

	t.Run("card without word", func(t *testing.T) {
		data := `{"deck_name": "x", "cards": [{"word": "", "forbidden_words": []}]}`
		if _, err := NewDeck([]byte(data)); err == nil {
			t.Error("NewDeck() accepted a card with no word")
		}
	})
}

func TestDeckDraw(t *testing.T) {
	deck, err := NewDeck([]byte(testDeckJSON))
	if err != nil {
		t.Fatalf("NewDeck() error = %v", err)
	}

	words := map[string]bool{"apple": true, "train": true, "piano": true}
	for i := 0; i < 50; i++ {
		card := deck.Draw()
		if !words[card.Word] {
			t.Fatalf("Draw() returned unknown word %q", card.Word)
		}
		if len(card.ForbiddenWords) != 5 {
			t.Fatalf("card %q has %d forbidden words, want 5", card.Word, len(card.ForbiddenWords))
		}
	}
}
