package model

import (
	"fmt"
	"time"
)

// Event is one dated record (an insider transaction, a news item) tied to an
// actor. Payload carries source columns the engine never inspects.
type Event struct {
	Timestamp time.Time
	Category  string // e.g. transaction type: "Sale", "Buy"
	ActorID   string
	RoleText  string // free-text role/relationship field
	Payload   map[string]string
}

// EventTable is a caller-owned collection of events. Order carries no meaning
// and the same actor may appear many times.
type EventTable struct {
	Ticker string
	Events []Event
}

// Validate rejects an empty table where analysis requires at least one event.
func (t *EventTable) Validate() error {
	if len(t.Events) == 0 {
		return fmt.Errorf("%w: event table is empty", ErrInvalidInput)
	}
	return nil
}

// ActorClass is the rule-derived category of an actor.
type ActorClass string

const (
	// ActorPrimary marks actors whose role text matched a classification
	// keyword (committee members in the insider-trading case).
	ActorPrimary ActorClass = "PRIMARY"
	// ActorOther is the default class when no rule matches.
	ActorOther ActorClass = "OTHER"
)

// ActorClassification maps every actor in an event table to exactly one class.
type ActorClassification map[string]ActorClass

// Class returns the class for an actor, defaulting to ActorOther for actors
// the classification has never seen.
func (c ActorClassification) Class(actorID string) ActorClass {
	if cl, ok := c[actorID]; ok {
		return cl
	}
	return ActorOther
}
