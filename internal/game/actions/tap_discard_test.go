package actions

import (
	"testing"
)

func TestTapAndUntap(t *testing.T) {
	fx := newTestFixture(t)

	next := mustExecute(t, fx.game, NewTapCard(fx.guard))
	card, _ := next.FindCard(fx.guard)
	if !card.Tapped {
		t.Fatal("card should be tapped")
	}

	if CanExecute(next, NewTapCard(fx.guard)) {
		t.Fatal("tapping a tapped card should not validate")
	}
	if _, err := Execute(next, NewTapCard(fx.guard)); err == nil {
		t.Fatal("expected tapping a tapped card to fail")
	}

	next = mustExecute(t, next, NewUntapCard(fx.guard))
	card, _ = next.FindCard(fx.guard)
	if card.Tapped {
		t.Fatal("card should be untapped")
	}

	if CanExecute(next, NewUntapCard(fx.guard)) {
		t.Fatal("untapping an untapped card should not validate")
	}
}

func TestTapUnknownCard(t *testing.T) {
	fx := newTestFixture(t)
	if CanExecute(fx.game, NewTapCard("no-such-card")) {
		t.Fatal("tapping an unknown card should not validate")
	}
}

func TestDiscardCard(t *testing.T) {
	fx := newTestFixture(t)

	next := mustExecute(t, fx.game, NewDiscardCard(fx.alice, fx.bolt))

	hand, _ := next.FindZone(fx.aliceHand)
	discard, _ := next.FindZone(fx.aliceDiscard)
	if hand.Contains(fx.bolt) {
		t.Fatal("discarded card should have left the hand")
	}
	if !discard.Contains(fx.bolt) {
		t.Fatal("discarded card should sit in the discard pile")
	}

	card, _ := next.FindCard(fx.bolt)
	if card.CurrentZone != fx.aliceDiscard {
		t.Fatalf("card zone = %s, want %s", card.CurrentZone, fx.aliceDiscard)
	}
}

func TestDiscardRequiresHandMembership(t *testing.T) {
	fx := newTestFixture(t)

	if CanExecute(fx.game, NewDiscardCard(fx.alice, fx.guard)) {
		t.Fatal("discarding a card outside the hand should not validate")
	}
	if _, err := Execute(fx.game, NewDiscardCard(fx.alice, fx.guard)); err == nil {
		t.Fatal("expected discard of a non-hand card to fail")
	}
}

func TestDiscardRequiresDiscardPile(t *testing.T) {
	fx := newTestFixture(t)

	// Bob has no discard pile, so discarding never becomes legal for him.
	if CanExecute(fx.game, NewDiscardCard(fx.bob, fx.secret)) {
		t.Fatal("discarding without a discard pile should not validate")
	}
}
