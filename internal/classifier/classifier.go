package classifier

import (
	"strings"

	"InsiderScope/internal/model"
)

// DefaultKeywords flag the roles that mark an actor as Primary. For insider
// tables these are the board/committee relationships.
var DefaultKeywords = []string{"committee", "director", "board", "chair", "audit", "compensation"}

// Classify tags every actor in the table as Primary or Other. An actor is
// Primary when any of its role texts contains any keyword, case-insensitive.
// The result depends only on the set of role texts per actor, not on event
// order, and every actor in the table gets exactly one class.
func Classify(table *model.EventTable, keywords []string) model.ActorClassification {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}

	classes := make(model.ActorClassification)
	for _, ev := range table.Events {
		if classes[ev.ActorID] == model.ActorPrimary {
			continue
		}
		classes[ev.ActorID] = model.ActorOther
		role := strings.ToLower(ev.RoleText)
		for _, kw := range lowered {
			if kw != "" && strings.Contains(role, kw) {
				classes[ev.ActorID] = model.ActorPrimary
				break
			}
		}
	}
	return classes
}
