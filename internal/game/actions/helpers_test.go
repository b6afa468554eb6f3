package actions

import (
	"fmt"
	"testing"

	"github.com/deckforge/engine-go/internal/game"
	"github.com/deckforge/engine-go/internal/game/counters"
)

// testFixture is a small two-player game. Alice holds a five-card deck, a
// hand with one playable spell, a creature in play and an empty discard
// pile. Bob holds a two-card deck and a hidden hand card.
type testFixture struct {
	game game.Game

	alice game.PlayerID
	bob   game.PlayerID

	aliceDeck    game.ZoneID
	aliceHand    game.ZoneID
	aliceDiscard game.ZoneID
	alicePlay    game.ZoneID
	bobDeck      game.ZoneID
	bobHand      game.ZoneID

	deckCards []game.CardID
	bolt      game.CardID
	guard     game.CardID
	secret    game.CardID
}

func newTestFixture(t *testing.T) testFixture {
	t.Helper()

	fx := testFixture{
		alice:        "alice",
		bob:          "bob",
		aliceDeck:    "alice-deck",
		aliceHand:    "alice-hand",
		aliceDiscard: "alice-discard",
		alicePlay:    "alice-play",
		bobDeck:      "bob-deck",
		bobHand:      "bob-hand",
		deckCards:    []game.CardID{"alice-d1", "alice-d2", "alice-d3", "alice-d4", "alice-d5"},
		bolt:         "alice-bolt",
		guard:        "alice-guard",
		secret:       "bob-secret",
	}

	check := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("building fixture: %v", err)
		}
	}

	alice, err := game.NewPlayer(fx.alice, "Alice")
	check(err)
	alice = alice.WithResource("life", 20).WithResource("mana", 10)
	for _, id := range []game.ZoneID{fx.aliceDeck, fx.aliceHand, fx.aliceDiscard, fx.alicePlay} {
		alice = alice.WithZoneAttached(id)
	}

	bob, err := game.NewPlayer(fx.bob, "Bob")
	check(err)
	bob = bob.WithResource("life", 20).WithResource("mana", 10)
	for _, id := range []game.ZoneID{fx.bobDeck, fx.bobHand} {
		bob = bob.WithZoneAttached(id)
	}

	zone := func(id game.ZoneID, name string, owner game.PlayerID, vis game.Visibility, ord game.Ordering, cards ...game.CardID) game.Zone {
		t.Helper()
		z, err := game.NewZone(id, name, owner, vis, ord)
		check(err)
		if len(cards) > 0 {
			z, err = z.WithCards(cards)
			check(err)
		}
		return z
	}

	zones := []game.Zone{
		zone(fx.aliceDeck, game.ZoneNameDeck, fx.alice, game.VisibilityPrivate, game.OrderingOrdered, fx.deckCards...),
		zone(fx.aliceHand, game.ZoneNameHand, fx.alice, game.VisibilityPrivate, game.OrderingUnordered, fx.bolt),
		zone(fx.aliceDiscard, game.ZoneNameDiscardPile, fx.alice, game.VisibilityPublic, game.OrderingOrdered),
		zone(fx.alicePlay, game.ZoneNamePlayArea, fx.alice, game.VisibilityPublic, game.OrderingUnordered, fx.guard),
		zone(fx.bobDeck, game.ZoneNameDeck, fx.bob, game.VisibilityPrivate, game.OrderingOrdered, "bob-d1", "bob-d2"),
		zone(fx.bobHand, game.ZoneNameHand, fx.bob, game.VisibilityPrivate, game.OrderingUnordered, fx.secret),
	}

	card := func(id game.CardID, name, cardType string, owner game.PlayerID, zoneID game.ZoneID) game.Card {
		t.Helper()
		c, err := game.NewCard(id, name, cardType, owner)
		check(err)
		return c.WithZone(zoneID)
	}

	cards := make([]game.Card, 0, len(fx.deckCards)+5)
	for i, id := range fx.deckCards {
		cards = append(cards, card(id, fmt.Sprintf("Deck Card %d", i+1), "creature", fx.alice, fx.aliceDeck))
	}
	bolt := card(fx.bolt, "Lightning Bolt", "spell", fx.alice, fx.aliceHand).WithProperty("manaCost", 3)
	guard := card(fx.guard, "Sentinel", "creature", fx.alice, fx.alicePlay).WithProperty("power", 2)
	guard = guard.WithCounters(guard.Counters.Add(counters.CounterTypeCharge, 2))
	cards = append(cards, bolt, guard,
		card("bob-d1", "Bob Deck 1", "creature", fx.bob, fx.bobDeck),
		card("bob-d2", "Bob Deck 2", "creature", fx.bob, fx.bobDeck),
		card(fx.secret, "Hidden Plan", "spell", fx.bob, fx.bobHand),
	)

	g, err := game.NewGame("game-42", []game.Player{alice, bob}, zones, cards)
	check(err)
	g, err = g.WithCurrentPlayer(fx.alice)
	check(err)
	fx.game = g
	return fx
}

// mustExecute runs an action that the test expects to succeed.
func mustExecute(t *testing.T, g game.Game, a Action) game.Game {
	t.Helper()
	next, err := Execute(g, a)
	if err != nil {
		t.Fatalf("Execute(%s): %v", a.Type, err)
	}
	return next
}
