// Package intake walks a session through the four required trip preferences
// in fixed order: destination, trip length, budget tier, departure city.
package intake

import (
	"strconv"
	"strings"

	statex "tripdesigner/agent/state"
)

type Field string

const (
	FieldDestination Field = "destination"
	FieldDays        Field = "days"
	FieldBudget      Field = "budget"
	FieldDeparture   Field = "departure"
	FieldNone        Field = ""
)

const (
	QuestionDestination = "Where would you like to travel?"
	QuestionDays        = "How many days will your trip be?"
	QuestionBudget      = "What's your budget? (low-range, mid-range, luxury)"
	QuestionDeparture   = "Which city will you be departing from?"

	ReplyInvalidDays = "Please enter a valid number."
)

// Outcome reports one intake turn. When Accepted is false, Reply holds the
// error message and the same question is asked again next turn. Complete is
// true exactly once, on the turn that accepts the departure city.
type Outcome struct {
	Field    Field
	Accepted bool
	Complete bool
	Reply    string
}

// MissingField returns the first unpopulated field in the fixed order, or
// FieldNone when intake is complete.
func MissingField(p *statex.Preferences) Field {
	switch {
	case p == nil || p.Destination == "":
		return FieldDestination
	case p.Days == nil:
		return FieldDays
	case p.BudgetTier == "":
		return FieldBudget
	case p.DepartureCity == "":
		return FieldDeparture
	default:
		return FieldNone
	}
}

// NextQuestion returns the prompt for the first missing field, or "" when
// intake is complete.
func NextQuestion(p *statex.Preferences) string {
	switch MissingField(p) {
	case FieldDestination:
		return QuestionDestination
	case FieldDays:
		return QuestionDays
	case FieldBudget:
		return QuestionBudget
	case FieldDeparture:
		return QuestionDeparture
	default:
		return ""
	}
}

// Advance applies one raw user input to the first missing field. Accepted
// fields are never re-asked; a failed day-count parse leaves the field unset.
func Advance(p *statex.Preferences, raw string) Outcome {
	input := strings.TrimSpace(raw)
	field := MissingField(p)

	switch field {
	case FieldDestination:
		p.Destination = input
		return accepted(p, field)

	case FieldDays:
		days, err := strconv.Atoi(input)
		if err != nil || days <= 0 {
			return Outcome{
				Field: field,
				Reply: ReplyInvalidDays + " " + QuestionDays,
			}
		}
		p.Days = &days
		return accepted(p, field)

	case FieldBudget:
		p.BudgetTier = statex.ParseBudgetTier(input)
		return accepted(p, field)

	case FieldDeparture:
		p.DepartureCity = input
		return accepted(p, field)

	default:
		return Outcome{Field: FieldNone, Accepted: false, Complete: true}
	}
}

func accepted(p *statex.Preferences, field Field) Outcome {
	out := Outcome{
		Field:    field,
		Accepted: true,
		Complete: p.Complete(),
	}
	if !out.Complete {
		out.Reply = NextQuestion(p)
	}
	return out
}
