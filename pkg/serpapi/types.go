package serpapi

import "fmt"

// SearchError is an error reported by the provider inside an otherwise
// successful HTTP response.
type SearchError struct {
	Engine  string
	Message string
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("serpapi engine=%s: %s", e.Engine, e.Message)
}

type FlightsRequest struct {
	DepartureID  string // IATA code
	ArrivalID    string // IATA code
	OutboundDate string // YYYY-MM-DD
	ReturnDate   string // YYYY-MM-DD
	Currency     string
	Language     string // hl
	Country      string // gl
}

type FlightsResponse struct {
	Error        string         `json:"error,omitempty"`
	BestFlights  []FlightResult `json:"best_flights,omitempty"`
	OtherFlights []FlightResult `json:"other_flights,omitempty"`
}

type FlightResult struct {
	Price    *float64        `json:"price,omitempty"`
	Segments []FlightSegment `json:"flights,omitempty"`
}

type FlightSegment struct {
	Airline string `json:"airline"`
}

type HotelsRequest struct {
	Query        string // e.g. "hotels in Paris"
	CheckInDate  string // YYYY-MM-DD
	CheckOutDate string // YYYY-MM-DD
	Adults       int
	Currency     string
	Language     string // hl
	Country      string // gl
}

type HotelsResponse struct {
	Error      string          `json:"error,omitempty"`
	Properties []HotelProperty `json:"properties,omitempty"`
}

type HotelProperty struct {
	Name         string       `json:"name"`
	RatePerNight RatePerNight `json:"rate_per_night"`
}

type RatePerNight struct {
	ExtractedLowest float64 `json:"extracted_lowest,omitempty"`
}
