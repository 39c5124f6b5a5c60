package contract

import (
	"strings"

	statex "tripdesigner/agent/state"
)

// SynthesisRequest carries everything the itinerary prompt embeds.
type SynthesisRequest struct {
	Destination   string            `json:"destination"`
	Days          int               `json:"days"`
	DepartureCity string            `json:"departure_city"`
	BudgetTier    statex.BudgetTier `json:"budget_tier"`
	FlightOptions string            `json:"flight_options"`
	HotelOptions  string            `json:"hotel_options"`
}

// FlightOption is one summarized round-trip offer: the de-duplicated carrier
// set joined with "/" and a pre-rendered price.
type FlightOption struct {
	CarrierLabel string `json:"carrier_label"`
	PriceText    string `json:"price_text"`
}

// FlightReport is the flight adapter result. Notice is set instead of Options
// when resolution, the provider, or transport failed; it is user-facing text.
type FlightReport struct {
	Options []FlightOption `json:"options,omitempty"`
	Notice  string         `json:"notice,omitempty"`
}

func (r FlightReport) Failed() bool {
	return len(r.Options) == 0
}

// Render produces the displayable flight block embedded verbatim in prompts
// and replies.
func (r FlightReport) Render() string {
	if r.Failed() {
		return r.Notice
	}
	var b strings.Builder
	b.WriteString("**✈️ Flight Options:**")
	for _, opt := range r.Options {
		b.WriteString("\n- **")
		b.WriteString(opt.CarrierLabel)
		b.WriteString("**: ₹")
		b.WriteString(opt.PriceText)
	}
	return b.String()
}

type HotelOption struct {
	Name        string `json:"name"`
	NightlyText string `json:"nightly_text"`
}

type HotelReport struct {
	Options []HotelOption `json:"options,omitempty"`
	Notice  string        `json:"notice,omitempty"`
}

func (r HotelReport) Failed() bool {
	return len(r.Options) == 0
}

func (r HotelReport) Render() string {
	if r.Failed() {
		return r.Notice
	}
	var b strings.Builder
	b.WriteString("**🏨 Hotel Options:**")
	for _, opt := range r.Options {
		b.WriteString("\n- **")
		b.WriteString(opt.Name)
		b.WriteString("**: ₹")
		b.WriteString(opt.NightlyText)
		b.WriteString("/night")
	}
	return b.String()
}
