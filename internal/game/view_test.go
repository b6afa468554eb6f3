package game

import "testing"

func TestZoneViewVisibility(t *testing.T) {
	f := newTestFixture(t)

	// Owner sees a private zone
	view, err := f.game.ZoneViewFor(f.alice, f.aliceDeck, 0)
	if err != nil {
		t.Fatalf("owner view failed: %v", err)
	}
	if view.CardCount != 3 || len(view.Cards) != 3 {
		t.Fatalf("expected 3 visible cards, got count=%d cards=%d", view.CardCount, len(view.Cards))
	}

	// Others do not
	if _, err := f.game.ZoneViewFor(f.bob, f.aliceDeck, 0); err == nil {
		t.Fatal("expected error viewing another player's private zone")
	}

	// Public zones are visible to all
	view, err = f.game.ZoneViewFor(f.bob, f.alicePlay, 0)
	if err != nil {
		t.Fatalf("public zone view failed: %v", err)
	}
	if len(view.Cards) != 1 || view.Cards[0].Name != "Sentinel" {
		t.Fatalf("unexpected play area view: %+v", view.Cards)
	}

	// Unknown zone
	if _, err := f.game.ZoneViewFor(f.alice, "missing", 0); err == nil {
		t.Fatal("expected error viewing unknown zone")
	}
}

func TestZoneViewCountLimit(t *testing.T) {
	f := newTestFixture(t)

	view, err := f.game.ZoneViewFor(f.alice, f.aliceDeck, 2)
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	if len(view.Cards) != 2 {
		t.Fatalf("expected top 2 cards, got %d", len(view.Cards))
	}
	if view.Cards[0].ID != string(f.aliceDeckCards[0]) || view.Cards[1].ID != string(f.aliceDeckCards[1]) {
		t.Fatalf("expected top-of-deck order, got %+v", view.Cards)
	}
	if view.CardCount != 3 {
		t.Fatalf("card count should report the full zone size, got %d", view.CardCount)
	}
}

func TestGameViewRedaction(t *testing.T) {
	f := newTestFixture(t)

	view := f.game.ViewFor(f.alice)
	if view.CurrentPlayer != string(f.alice) {
		t.Fatalf("expected current player alice, got %s", view.CurrentPlayer)
	}

	var bobHand, aliceDeck *ZoneView
	for i := range view.Zones {
		switch view.Zones[i].ID {
		case string(f.bobHand):
			bobHand = &view.Zones[i]
		case string(f.aliceDeck):
			aliceDeck = &view.Zones[i]
		}
	}
	if bobHand == nil || aliceDeck == nil {
		t.Fatal("expected both zones in the game view")
	}

	if !bobHand.Hidden {
		t.Fatal("bob's hand should be hidden from alice")
	}
	if len(bobHand.Cards) != 0 {
		t.Fatal("hidden zone must not expose cards")
	}
	if bobHand.CardCount != 1 {
		t.Fatalf("hidden zone should still report its size, got %d", bobHand.CardCount)
	}

	if aliceDeck.Hidden {
		t.Fatal("alice should see her own deck")
	}
}

func TestCardViewCounters(t *testing.T) {
	f := newTestFixture(t)

	view, err := f.game.ZoneViewFor(f.bob, f.alicePlay, 0)
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	sentinel := view.Cards[0]
	if len(sentinel.Counters) != 1 {
		t.Fatalf("expected 1 counter view, got %d", len(sentinel.Counters))
	}
	if sentinel.Counters[0].Type != "charge" || sentinel.Counters[0].Count != 2 {
		t.Fatalf("unexpected counter view: %+v", sentinel.Counters[0])
	}
}
