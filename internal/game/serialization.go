package game

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// DeterministicString renders a canonical text form of the game state,
// independent of map iteration order. Collections keyed by id are sorted;
// card lists inside zones keep their order because order there is state.
// Event-manager internals and timestamps are excluded, so two structurally
// equal snapshots always render identically.
func DeterministicString(g Game) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "GAME:%s|%s|%d|%s\n", g.ID, g.Phase, g.TurnNumber, g.CurrentPlayer)

	globalKeys := make([]string, 0, len(g.GlobalProperties))
	for k := range g.GlobalProperties {
		globalKeys = append(globalKeys, k)
	}
	sort.Strings(globalKeys)
	for _, k := range globalKeys {
		fmt.Fprintf(&buf, "GLOBAL:%s=%v\n", k, g.GlobalProperties[k])
	}

	playerIDs := make([]string, 0, len(g.Players))
	players := make(map[string]Player, len(g.Players))
	for _, p := range g.Players {
		playerIDs = append(playerIDs, string(p.ID))
		players[string(p.ID)] = p
	}
	sort.Strings(playerIDs)
	for _, id := range playerIDs {
		p := players[id]
		fmt.Fprintf(&buf, "PLAYER:%s|%s\n", p.ID, p.Name)

		resourceNames := make([]string, 0, len(p.Resources))
		for name := range p.Resources {
			resourceNames = append(resourceNames, name)
		}
		sort.Strings(resourceNames)
		for _, name := range resourceNames {
			fmt.Fprintf(&buf, "  RESOURCE:%s=%d\n", name, p.Resources[name])
		}
		writeCounters(&buf, counterPairs(p))

		zoneRefs := make([]string, len(p.Zones))
		for i, zoneID := range p.Zones {
			zoneRefs[i] = string(zoneID)
		}
		sort.Strings(zoneRefs)
		for _, ref := range zoneRefs {
			fmt.Fprintf(&buf, "  ZONE:%s\n", ref)
		}
	}

	zoneIDs := make([]string, 0, len(g.Zones))
	zones := make(map[string]Zone, len(g.Zones))
	for _, z := range g.Zones {
		zoneIDs = append(zoneIDs, string(z.ID))
		zones[string(z.ID)] = z
	}
	sort.Strings(zoneIDs)
	for _, id := range zoneIDs {
		writeZone(&buf, "ZONE", zones[id])
	}

	cardIDs := make([]string, 0, len(g.Cards))
	cards := make(map[string]Card, len(g.Cards))
	for _, c := range g.Cards {
		cardIDs = append(cardIDs, string(c.ID))
		cards[string(c.ID)] = c
	}
	sort.Strings(cardIDs)
	for _, id := range cardIDs {
		c := cards[id]
		fmt.Fprintf(&buf, "CARD:%s|%s|%s|%s|%s|%t\n", c.ID, c.Name, c.Type, c.Owner, c.CurrentZone, c.Tapped)

		propKeys := make([]string, 0, len(c.Properties))
		for k := range c.Properties {
			propKeys = append(propKeys, k)
		}
		sort.Strings(propKeys)
		for _, k := range propKeys {
			fmt.Fprintf(&buf, "  PROP:%s=%v\n", k, c.Properties[k])
		}
		writeCounters(&buf, cardCounterPairs(c))
	}

	// Stack order matters, so the card list is rendered as-is.
	writeZone(&buf, "STACK", g.Stack)

	return buf.String()
}

// Checksum returns the sha256 hex digest of the deterministic rendering.
// Used as a cheap state fingerprint in tests and simulation reports.
func Checksum(g Game) string {
	sum := sha256.Sum256([]byte(DeterministicString(g)))
	return hex.EncodeToString(sum[:])
}

func writeZone(buf *bytes.Buffer, label string, z Zone) {
	cardRefs := make([]string, len(z.Cards))
	for i, id := range z.Cards {
		cardRefs[i] = string(id)
	}
	fmt.Fprintf(buf, "%s:%s|%s|%s|%s|%s|%d|%s\n",
		label, z.ID, z.Name, z.Owner, z.Visibility, z.Ordering, z.MaxSize,
		strings.Join(cardRefs, ","))
}

type counterPair struct {
	name  string
	count int
}

func counterPairs(p Player) []counterPair {
	pairs := make([]counterPair, 0, len(p.Counters))
	for _, c := range p.Counters {
		pairs = append(pairs, counterPair{name: string(c.Type), count: c.Count})
	}
	return pairs
}

func cardCounterPairs(c Card) []counterPair {
	pairs := make([]counterPair, 0, len(c.Counters))
	for _, counter := range c.Counters {
		pairs = append(pairs, counterPair{name: string(counter.Type), count: counter.Count})
	}
	return pairs
}

func writeCounters(buf *bytes.Buffer, pairs []counterPair) {
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].name < pairs[j].name })
	for _, pair := range pairs {
		fmt.Fprintf(buf, "  COUNTER:%s=%d\n", pair.name, pair.count)
	}
}
