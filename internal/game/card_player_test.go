package game

import (
	"testing"

	"github.com/deckforge/engine-go/internal/game/counters"
)

func TestNewCardValidation(t *testing.T) {
	if _, err := NewCard("", "Card", "spell", "p1"); err == nil {
		t.Fatal("expected error for empty card id")
	}
	if _, err := NewCard("c1", "", "spell", "p1"); err == nil {
		t.Fatal("expected error for empty card name")
	}
	if _, err := NewCard("c1", "Card", "spell", ""); err == nil {
		t.Fatal("expected error for empty owner")
	}

	c, err := NewCard("c1", "Bolt", "spell", "p1")
	if err != nil {
		t.Fatalf("expected valid card, got %v", err)
	}
	if c.Tapped {
		t.Fatal("new card should start untapped")
	}
	if c.CurrentZone != "" {
		t.Fatal("new card should start without a zone")
	}
}

func TestCardUpdatersCopy(t *testing.T) {
	c, _ := NewCard("c1", "Bolt", "spell", "p1")
	c = c.WithProperty("manaCost", 3)

	moved := c.WithZone("hand")
	tapped := c.WithTapped(true)
	retyped := moved.WithProperty("manaCost", 5)

	if c.CurrentZone != "" || c.Tapped {
		t.Fatal("updaters must not touch the original card")
	}
	if v, _ := c.Property("manaCost"); v != 3 {
		t.Fatalf("expected original manaCost 3, got %v", v)
	}
	if moved.CurrentZone != "hand" {
		t.Fatalf("expected moved card in hand, got %s", moved.CurrentZone)
	}
	if !tapped.Tapped {
		t.Fatal("expected tapped copy to be tapped")
	}
	if v, _ := retyped.Property("manaCost"); v != 5 {
		t.Fatalf("expected updated manaCost 5, got %v", v)
	}
	if v, _ := moved.Property("manaCost"); v != 3 {
		t.Fatalf("property update leaked into sibling copy: %v", v)
	}
}

func TestCardCounters(t *testing.T) {
	c, _ := NewCard("c1", "Golem", "creature", "p1")
	c = c.WithCounters(counters.Counters{}.Add(counters.CounterTypeCharge, 2))

	grown := c.WithCounters(c.Counters.Add(counters.CounterTypeCharge, 1))
	if got := grown.Counters.Count(counters.CounterTypeCharge); got != 3 {
		t.Fatalf("expected 3 charge counters, got %d", got)
	}
	if got := c.Counters.Count(counters.CounterTypeCharge); got != 2 {
		t.Fatalf("expected original to keep 2 charge counters, got %d", got)
	}
}

func TestNewPlayerValidation(t *testing.T) {
	if _, err := NewPlayer("", "Alice"); err == nil {
		t.Fatal("expected error for empty player id")
	}
	if _, err := NewPlayer("p1", ""); err == nil {
		t.Fatal("expected error for empty player name")
	}
}

func TestPlayerResources(t *testing.T) {
	p, _ := NewPlayer("p1", "Alice")
	p = p.WithResource("life", 20)

	damaged := p.AddResource("life", -3)
	if damaged.Resource("life") != 17 {
		t.Fatalf("expected life 17, got %d", damaged.Resource("life"))
	}
	if p.Resource("life") != 20 {
		t.Fatalf("expected original life 20, got %d", p.Resource("life"))
	}

	// Absent resources read as zero and can go negative
	if p.Resource("mana") != 0 {
		t.Fatalf("expected absent resource to read 0, got %d", p.Resource("mana"))
	}
	broke := p.AddResource("mana", -2)
	if broke.Resource("mana") != -2 {
		t.Fatalf("expected mana -2, got %d", broke.Resource("mana"))
	}
}

func TestPlayerZoneAttachment(t *testing.T) {
	p, _ := NewPlayer("p1", "Alice")
	p = p.WithZoneAttached("deck")
	p = p.WithZoneAttached("hand")
	p = p.WithZoneAttached("deck")

	if len(p.Zones) != 2 {
		t.Fatalf("expected 2 zones after duplicate attach, got %d", len(p.Zones))
	}
	if !p.OwnsZone("deck") || !p.OwnsZone("hand") {
		t.Fatalf("expected player to own deck and hand, got %v", p.Zones)
	}
	if p.OwnsZone("void") {
		t.Fatal("player should not own unattached zone")
	}
}
