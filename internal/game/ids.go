package game

import "github.com/google/uuid"

// GameID identifies a game session.
type GameID string

// PlayerID identifies a player within a game.
type PlayerID string

// CardID identifies a card within a game.
type CardID string

// ZoneID identifies a zone within a game.
type ZoneID string

// NewGameID returns a fresh unique game identifier.
func NewGameID() GameID {
	return GameID(uuid.NewString())
}

// NewPlayerID returns a fresh unique player identifier.
func NewPlayerID() PlayerID {
	return PlayerID(uuid.NewString())
}

// NewCardID returns a fresh unique card identifier.
func NewCardID() CardID {
	return CardID(uuid.NewString())
}

// NewZoneID returns a fresh unique zone identifier.
func NewZoneID() ZoneID {
	return ZoneID(uuid.NewString())
}

func (id GameID) String() string   { return string(id) }
func (id PlayerID) String() string { return string(id) }
func (id CardID) String() string   { return string(id) }
func (id ZoneID) String() string   { return string(id) }
