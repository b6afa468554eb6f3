package game

import (
	"testing"

	"github.com/deckforge/engine-go/internal/game/counters"
)

// testFixture is a small two-player game used across the package tests:
// alice with three deck cards and one card in play, bob with two deck cards
// and one in hand. Both players carry life and mana resources.
type testFixture struct {
	game Game

	alice PlayerID
	bob   PlayerID

	aliceDeck    ZoneID
	aliceHand    ZoneID
	aliceDiscard ZoneID
	alicePlay    ZoneID
	bobDeck      ZoneID
	bobHand      ZoneID

	aliceDeckCards []CardID
	sentinel       CardID
	bobDeckCards   []CardID
	bobHandCard    CardID
}

func newTestFixture(t *testing.T) testFixture {
	t.Helper()

	f := testFixture{alice: "alice", bob: "bob"}

	alice, err := NewPlayer(f.alice, "Alice")
	if err != nil {
		t.Fatalf("failed to create alice: %v", err)
	}
	alice = alice.WithResource("life", 20).WithResource("mana", 10)

	bob, err := NewPlayer(f.bob, "Bob")
	if err != nil {
		t.Fatalf("failed to create bob: %v", err)
	}
	bob = bob.WithResource("life", 20).WithResource("mana", 10)

	aliceDeck := NewDeck(f.alice)
	aliceHand := NewHand(f.alice)
	aliceDiscard := NewDiscardPile(f.alice)
	alicePlay := NewPlayArea(f.alice)
	bobDeck := NewDeck(f.bob)
	bobHand := NewHand(f.bob)

	f.aliceDeck = aliceDeck.ID
	f.aliceHand = aliceHand.ID
	f.aliceDiscard = aliceDiscard.ID
	f.alicePlay = alicePlay.ID
	f.bobDeck = bobDeck.ID
	f.bobHand = bobHand.ID

	var cards []Card
	f.aliceDeckCards = []CardID{"alice-c1", "alice-c2", "alice-c3"}
	for _, id := range f.aliceDeckCards {
		c, err := NewCard(id, "Alice "+string(id), "creature", f.alice)
		if err != nil {
			t.Fatalf("failed to create card %s: %v", id, err)
		}
		cards = append(cards, c.WithZone(aliceDeck.ID))
	}

	f.sentinel = "alice-sentinel"
	sentinel, err := NewCard(f.sentinel, "Sentinel", "creature", f.alice)
	if err != nil {
		t.Fatalf("failed to create sentinel: %v", err)
	}
	sentinel = sentinel.WithZone(alicePlay.ID).
		WithProperty("power", 2).
		WithCounters(counters.Counters{}.Add(counters.CounterTypeCharge, 2))
	cards = append(cards, sentinel)

	f.bobDeckCards = []CardID{"bob-c1", "bob-c2"}
	for _, id := range f.bobDeckCards {
		c, err := NewCard(id, "Bob "+string(id), "spell", f.bob)
		if err != nil {
			t.Fatalf("failed to create card %s: %v", id, err)
		}
		cards = append(cards, c.WithZone(bobDeck.ID))
	}

	f.bobHandCard = "bob-h1"
	handCard, err := NewCard(f.bobHandCard, "Bob Secret", "spell", f.bob)
	if err != nil {
		t.Fatalf("failed to create bob hand card: %v", err)
	}
	cards = append(cards, handCard.WithZone(bobHand.ID))

	aliceDeck, err = aliceDeck.WithCards(f.aliceDeckCards)
	if err != nil {
		t.Fatalf("failed to fill alice deck: %v", err)
	}
	alicePlay, err = alicePlay.WithCards([]CardID{f.sentinel})
	if err != nil {
		t.Fatalf("failed to fill alice play area: %v", err)
	}
	bobDeck, err = bobDeck.WithCards(f.bobDeckCards)
	if err != nil {
		t.Fatalf("failed to fill bob deck: %v", err)
	}
	bobHand, err = bobHand.WithCards([]CardID{f.bobHandCard})
	if err != nil {
		t.Fatalf("failed to fill bob hand: %v", err)
	}

	zones := []Zone{aliceDeck, aliceHand, aliceDiscard, alicePlay, bobDeck, bobHand}
	for _, z := range zones {
		switch z.Owner {
		case f.alice:
			alice = alice.WithZoneAttached(z.ID)
		case f.bob:
			bob = bob.WithZoneAttached(z.ID)
		}
	}

	g, err := NewGame("game-1", []Player{alice, bob}, zones, cards)
	if err != nil {
		t.Fatalf("failed to create game: %v", err)
	}
	g, err = g.WithCurrentPlayer(f.alice)
	if err != nil {
		t.Fatalf("failed to set current player: %v", err)
	}

	f.game = g
	return f
}
