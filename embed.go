package wordrush

import (
	_ "embed"
)

// Embed the card deck JSON file
//
//go:embed static/cards.json
var CardsJSON []byte
