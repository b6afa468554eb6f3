package game

import "testing"

func TestZoneSpecializations(t *testing.T) {
	deck := NewDeck("p1")
	if deck.Name != ZoneNameDeck || deck.Visibility != VisibilityPrivate || deck.Ordering != OrderingOrdered {
		t.Fatalf("unexpected deck defaults: %+v", deck)
	}
	hand := NewHand("p1")
	if hand.Name != ZoneNameHand || hand.Visibility != VisibilityPrivate || hand.Ordering != OrderingUnordered {
		t.Fatalf("unexpected hand defaults: %+v", hand)
	}
	discard := NewDiscardPile("p1")
	if discard.Name != ZoneNameDiscardPile || discard.Visibility != VisibilityPublic || discard.Ordering != OrderingOrdered {
		t.Fatalf("unexpected discard pile defaults: %+v", discard)
	}
	play := NewPlayArea("p1")
	if play.Name != ZoneNamePlayArea || play.Visibility != VisibilityPublic || play.Ordering != OrderingUnordered {
		t.Fatalf("unexpected play area defaults: %+v", play)
	}
	stack := NewStack()
	if stack.Name != ZoneNameStack || stack.Owner != "" || stack.Ordering != OrderingOrdered {
		t.Fatalf("unexpected stack defaults: %+v", stack)
	}
}

func TestNewZoneValidation(t *testing.T) {
	if _, err := NewZone("", "A", "p1", VisibilityPublic, OrderingOrdered); err == nil {
		t.Fatal("expected error for empty zone id")
	}
	if _, err := NewZone("z1", "", "p1", VisibilityPublic, OrderingOrdered); err == nil {
		t.Fatal("expected error for empty zone name")
	}
	if _, err := NewZone("z1", "A", "p1", "translucent", OrderingOrdered); err == nil {
		t.Fatal("expected error for unknown visibility")
	}
	if _, err := NewZone("z1", "A", "p1", VisibilityPublic, "chaotic"); err == nil {
		t.Fatal("expected error for unknown ordering")
	}
}

func TestZoneInsertCard(t *testing.T) {
	z, err := NewZone("z1", "A", "p1", VisibilityPublic, OrderingOrdered)
	if err != nil {
		t.Fatalf("failed to create zone: %v", err)
	}

	// Append with negative position
	z, err = z.InsertCard("c1", -1)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	z, err = z.InsertCard("c2", -1)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	// Insert at a position shifts the rest
	z, err = z.InsertCard("c3", 1)
	if err != nil {
		t.Fatalf("positional insert failed: %v", err)
	}
	want := []CardID{"c1", "c3", "c2"}
	for i, id := range want {
		if z.Cards[i] != id {
			t.Fatalf("expected card %s at %d, got %s", id, i, z.Cards[i])
		}
	}

	// Position past the end appends
	z, err = z.InsertCard("c4", 99)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if z.Cards[len(z.Cards)-1] != "c4" {
		t.Fatalf("expected c4 appended, got %v", z.Cards)
	}

	// Duplicate insert fails
	if _, err := z.InsertCard("c1", -1); err == nil {
		t.Fatal("expected error inserting card twice")
	}
}

func TestZoneCapacity(t *testing.T) {
	z, err := NewZone("z1", "A", "p1", VisibilityPublic, OrderingOrdered)
	if err != nil {
		t.Fatalf("failed to create zone: %v", err)
	}
	z, err = z.WithMaxSize(2)
	if err != nil {
		t.Fatalf("failed to set max size: %v", err)
	}

	z, _ = z.InsertCard("c1", -1)
	z, _ = z.InsertCard("c2", -1)
	if !z.IsFull() {
		t.Fatal("expected zone full at capacity 2")
	}
	if _, err := z.InsertCard("c3", -1); err == nil {
		t.Fatal("expected error inserting past capacity")
	}

	// Shrinking below current size fails
	if _, err := z.WithMaxSize(1); err == nil {
		t.Fatal("expected error shrinking bound below card count")
	}

	// WithCards respects the bound
	if _, err := z.WithCards([]CardID{"c1", "c2", "c3"}); err == nil {
		t.Fatal("expected error setting cards past capacity")
	}
}

func TestZoneRemoveCard(t *testing.T) {
	z, _ := NewZone("z1", "A", "p1", VisibilityPublic, OrderingOrdered)
	z, _ = z.InsertCard("c1", -1)
	z, _ = z.InsertCard("c2", -1)

	next, ok := z.RemoveCard("c1")
	if !ok {
		t.Fatal("expected removal to succeed")
	}
	if next.Contains("c1") || !next.Contains("c2") {
		t.Fatalf("unexpected contents after removal: %v", next.Cards)
	}
	if !z.Contains("c1") {
		t.Fatal("removal must not touch the original zone")
	}

	if _, ok := next.RemoveCard("ghost"); ok {
		t.Fatal("expected removal of absent card to report false")
	}
}

func TestZoneShuffleLegality(t *testing.T) {
	ordered, _ := NewZone("z1", "A", "p1", VisibilityPublic, OrderingOrdered)
	if !ordered.CanShuffle() {
		t.Fatal("ordered zone should be shuffleable")
	}
	unordered, _ := NewZone("z2", "B", "p1", VisibilityPublic, OrderingUnordered)
	if unordered.CanShuffle() {
		t.Fatal("unordered zone should not be shuffleable")
	}
}
