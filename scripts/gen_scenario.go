// Script to generate a scenario file from a card list CSV.
//
// Usage:
//
//	go run scripts/gen_scenario.go -cards decks/burn.csv -players alice,bob > scenario.yaml
//
// The CSV columns are: name, type, copies, manaCost, text. Every listed
// player receives a deck built from the full list plus an empty hand and
// discard pile, which is enough starting state for most scripted runs.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/deckforge/engine-go/internal/scenario"
)

func main() {
	cardsPath := flag.String("cards", "", "path to card list CSV")
	players := flag.String("players", "alice,bob", "comma-separated player ids")
	name := flag.String("name", "Generated scenario", "scenario name")
	gameID := flag.String("game", "generated-1", "game id")
	flag.Parse()

	if *cardsPath == "" {
		log.Fatal("no card list given, use -cards")
	}

	cards, err := readCardList(*cardsPath)
	if err != nil {
		log.Fatalf("reading card list: %v", err)
	}
	if len(cards) == 0 {
		log.Fatalf("card list %s is empty", *cardsPath)
	}

	sc := scenario.Scenario{
		Name: *name,
		Game: scenario.GameSpec{ID: *gameID},
	}
	for _, id := range strings.Split(*players, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		sc.Game.Players = append(sc.Game.Players, playerSpec(id, cards))
	}
	if len(sc.Game.Players) == 0 {
		log.Fatal("no players given")
	}
	sc.Game.CurrentPlayer = sc.Game.Players[0].ID

	out, err := yaml.Marshal(&sc)
	if err != nil {
		log.Fatalf("rendering scenario: %v", err)
	}
	fmt.Print(string(out))
}

// cardEntry is one CSV row.
type cardEntry struct {
	Name     string
	Type     string
	Copies   int
	ManaCost int
	Text     string
}

func readCardList(path string) ([]cardEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // trailing columns are optional

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var cards []cardEntry
	for i, record := range records {
		if i == 0 && strings.EqualFold(record[0], "name") {
			continue // header row
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("row %d: need at least name and type", i+1)
		}
		entry := cardEntry{
			Name:   strings.TrimSpace(record[0]),
			Type:   strings.TrimSpace(record[1]),
			Copies: 1,
		}
		if len(record) > 2 && record[2] != "" {
			entry.Copies, err = strconv.Atoi(strings.TrimSpace(record[2]))
			if err != nil || entry.Copies < 1 {
				return nil, fmt.Errorf("row %d: bad copies %q", i+1, record[2])
			}
		}
		if len(record) > 3 && record[3] != "" {
			entry.ManaCost, err = strconv.Atoi(strings.TrimSpace(record[3]))
			if err != nil {
				return nil, fmt.Errorf("row %d: bad manaCost %q", i+1, record[3])
			}
		}
		if len(record) > 4 {
			entry.Text = strings.TrimSpace(record[4])
		}
		cards = append(cards, entry)
	}
	return cards, nil
}

func playerSpec(id string, cards []cardEntry) scenario.PlayerSpec {
	deck := scenario.ZoneSpec{ID: id + "-deck", Name: "Deck"}
	for _, entry := range cards {
		for n := 1; n <= entry.Copies; n++ {
			card := scenario.CardSpec{
				ID:   fmt.Sprintf("%s-%s-%d", id, slug(entry.Name), n),
				Name: entry.Name,
				Type: entry.Type,
				Text: entry.Text,
			}
			if entry.ManaCost > 0 {
				card.Properties = map[string]interface{}{"manaCost": entry.ManaCost}
			}
			deck.Cards = append(deck.Cards, card)
		}
	}
	return scenario.PlayerSpec{
		ID:        id,
		Name:      strings.ToUpper(id[:1]) + id[1:],
		Resources: map[string]int{"life": 20, "mana": 0},
		Zones: []scenario.ZoneSpec{
			deck,
			{ID: id + "-hand", Name: "Hand"},
			{ID: id + "-discard", Name: "Discard Pile"},
		},
	}
}

func slug(name string) string {
	s := strings.ToLower(name)
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		default:
			return -1
		}
	}, s)
	return strings.Trim(s, "-")
}
