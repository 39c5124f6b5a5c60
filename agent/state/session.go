package state

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Stage is the conversation progression for one planning session:
// collecting -> planning -> reviewing -> done. Planning is re-entered only
// when a synthesis attempt fails; reviewing accepts free-text edit requests.
type Stage string

const (
	StageCollecting Stage = "collecting"
	StagePlanning   Stage = "planning"
	StageReviewing  Stage = "reviewing"
	StageDone       Stage = "done"
)

type BudgetTier string

const (
	TierLowRange BudgetTier = "low-range"
	TierMidRange BudgetTier = "mid-range"
	TierLuxury   BudgetTier = "luxury"
)

// ParseBudgetTier lowers and trims the raw input. Unrecognized tiers keep
// their text; pricing treats them as mid-range.
func ParseBudgetTier(raw string) BudgetTier {
	return BudgetTier(strings.ToLower(strings.TrimSpace(raw)))
}

// Known reports whether the tier is one of the three supported categories.
func (t BudgetTier) Known() bool {
	switch t {
	case TierLowRange, TierMidRange, TierLuxury:
		return true
	}
	return false
}

// Preferences is filled one field per user turn, in fixed order. A field is
// unset while its value is the zero value (nil for Days).
type Preferences struct {
	Destination   string     `json:"destination,omitempty"`
	Days          *int       `json:"days,omitempty"`
	BudgetTier    BudgetTier `json:"budget_tier,omitempty"`
	DepartureCity string     `json:"departure_city,omitempty"`
}

func (p *Preferences) Complete() bool {
	return p != nil &&
		p.Destination != "" &&
		p.Days != nil &&
		p.BudgetTier != "" &&
		p.DepartureCity != ""
}

func (p *Preferences) TripDays() int {
	if p == nil || p.Days == nil {
		return 0
	}
	return *p.Days
}

type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

type Turn struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

var (
	ErrNilState       = errors.New("conversation state is nil")
	ErrInvalidStage   = errors.New("invalid stage")
	ErrIncompletePref = errors.New("preferences incomplete for stage")
)

// ConversationState is the single source of truth for one interactive
// session. It is owned by that session; no cross-session sharing.
type ConversationState struct {
	SessionID string `json:"session_id"`
	Stage     Stage  `json:"stage"`

	Preferences Preferences `json:"preferences"`

	// Latest collaborator output, overwritten wholesale on every synthesis.
	FlightReport string `json:"flight_report,omitempty"`
	HotelReport  string `json:"hotel_report,omitempty"`
	Itinerary    string `json:"itinerary,omitempty"`

	Transcript []Turn    `json:"transcript,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewConversationState(sessionID string, now time.Time) *ConversationState {
	return &ConversationState{
		SessionID: sessionID,
		Stage:     StageCollecting,
		UpdatedAt: now.UTC(),
	}
}

func (s *ConversationState) Touch(now time.Time) {
	s.UpdatedAt = now.UTC()
}

func (s *ConversationState) AppendTurn(speaker Speaker, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	s.Transcript = append(s.Transcript, Turn{Speaker: speaker, Text: text})
}

// Validate enforces stage/field coherence: any stage past collecting requires
// complete preferences, and a reviewable session must hold an itinerary.
func (s *ConversationState) Validate() error {
	if s == nil {
		return ErrNilState
	}
	switch s.Stage {
	case StageCollecting:
		return nil
	case StagePlanning, StageReviewing, StageDone:
		if !s.Preferences.Complete() {
			return fmt.Errorf("%w: stage=%s", ErrIncompletePref, s.Stage)
		}
		if s.Stage != StagePlanning && strings.TrimSpace(s.Itinerary) == "" {
			return fmt.Errorf("%w: stage=%s requires an itinerary", ErrInvalidStage, s.Stage)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStage, s.Stage)
	}
}
