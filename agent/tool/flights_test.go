package tool

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	serpapix "tripdesigner/pkg/serpapi"
)

type fakeFlightAPI struct {
	resp    *serpapix.FlightsResponse
	err     error
	calls   int
	lastReq serpapix.FlightsRequest
}

func (f *fakeFlightAPI) SearchFlights(ctx context.Context, req serpapix.FlightsRequest) (*serpapix.FlightsResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
}

func floatPtr(v float64) *float64 { return &v }

func TestFlightFinderUnknownCityShortCircuits(t *testing.T) {
	t.Parallel()

	api := &fakeFlightAPI{}
	finder := NewFlightFinder(api, fixedNow)

	report := finder.Search(context.Background(), "Atlantis", "Paris", 3)
	if !report.Failed() {
		t.Fatal("unknown departure must fail the query")
	}
	if !strings.Contains(report.Notice, "Could not find airport code") {
		t.Fatalf("unexpected notice: %q", report.Notice)
	}
	if api.calls != 0 {
		t.Fatalf("search collaborator invoked %d times, want 0", api.calls)
	}
}

func TestFlightFinderBookingWindow(t *testing.T) {
	t.Parallel()

	api := &fakeFlightAPI{resp: &serpapix.FlightsResponse{}}
	finder := NewFlightFinder(api, fixedNow)

	finder.Search(context.Background(), "Delhi", "Paris", 3)
	if api.calls != 1 {
		t.Fatalf("search collaborator invoked %d times, want 1", api.calls)
	}
	if api.lastReq.DepartureID != "DEL" || api.lastReq.ArrivalID != "CDG" {
		t.Fatalf("unexpected route: %s -> %s", api.lastReq.DepartureID, api.lastReq.ArrivalID)
	}
	if api.lastReq.OutboundDate != "2026-08-31" {
		t.Fatalf("outbound = %q, want today+30d", api.lastReq.OutboundDate)
	}
	if api.lastReq.ReturnDate != "2026-09-03" {
		t.Fatalf("return = %q, want outbound+tripDays", api.lastReq.ReturnDate)
	}
	if api.lastReq.Currency != "INR" || api.lastReq.Language != "en" || api.lastReq.Country != "in" {
		t.Fatalf("unexpected locale: %#v", api.lastReq)
	}
}

func TestFlightFinderPrefersBestFlights(t *testing.T) {
	t.Parallel()

	api := &fakeFlightAPI{resp: &serpapix.FlightsResponse{
		BestFlights: []serpapix.FlightResult{
			{
				Price: floatPtr(45230),
				Segments: []serpapix.FlightSegment{
					{Airline: "Air India"},
					{Airline: "Vistara"},
					{Airline: "Air India"},
				},
			},
		},
		OtherFlights: []serpapix.FlightResult{
			{Price: floatPtr(99999), Segments: []serpapix.FlightSegment{{Airline: "Other"}}},
		},
	}}
	finder := NewFlightFinder(api, fixedNow)

	report := finder.Search(context.Background(), "Delhi", "Paris", 3)
	if report.Failed() {
		t.Fatalf("unexpected failure: %q", report.Notice)
	}
	if len(report.Options) != 1 {
		t.Fatalf("options = %d, want 1", len(report.Options))
	}
	if report.Options[0].CarrierLabel != "Air India/Vistara" {
		t.Fatalf("carrier label = %q", report.Options[0].CarrierLabel)
	}
	if report.Options[0].PriceText != "45,230" {
		t.Fatalf("price = %q, want thousands-grouped", report.Options[0].PriceText)
	}
}

func TestFlightFinderFallsBackToOtherFlights(t *testing.T) {
	t.Parallel()

	api := &fakeFlightAPI{resp: &serpapix.FlightsResponse{
		OtherFlights: []serpapix.FlightResult{
			{Price: floatPtr(12000.5), Segments: []serpapix.FlightSegment{{Airline: "IndiGo"}}},
		},
	}}
	finder := NewFlightFinder(api, fixedNow)

	report := finder.Search(context.Background(), "Delhi", "Goa", 2)
	if report.Failed() {
		t.Fatalf("unexpected failure: %q", report.Notice)
	}
	if report.Options[0].PriceText != "12000.5" {
		t.Fatalf("fractional price = %q, want raw provider value", report.Options[0].PriceText)
	}
}

func TestFlightFinderCapsAtThreeOptions(t *testing.T) {
	t.Parallel()

	results := make([]serpapix.FlightResult, 5)
	for i := range results {
		results[i] = serpapix.FlightResult{
			Price:    floatPtr(float64(10000 + i)),
			Segments: []serpapix.FlightSegment{{Airline: "IndiGo"}},
		}
	}
	api := &fakeFlightAPI{resp: &serpapix.FlightsResponse{BestFlights: results}}
	finder := NewFlightFinder(api, fixedNow)

	report := finder.Search(context.Background(), "Delhi", "Goa", 2)
	if len(report.Options) != 3 {
		t.Fatalf("options = %d, want at most 3", len(report.Options))
	}
}

func TestFlightFinderMissingPrice(t *testing.T) {
	t.Parallel()

	api := &fakeFlightAPI{resp: &serpapix.FlightsResponse{
		BestFlights: []serpapix.FlightResult{
			{Segments: []serpapix.FlightSegment{{Airline: "IndiGo"}}},
		},
	}}
	finder := NewFlightFinder(api, fixedNow)

	report := finder.Search(context.Background(), "Delhi", "Goa", 2)
	if report.Options[0].PriceText != "N/A" {
		t.Fatalf("missing price = %q, want N/A", report.Options[0].PriceText)
	}
}

func TestFlightFinderNoFlightsFound(t *testing.T) {
	t.Parallel()

	api := &fakeFlightAPI{resp: &serpapix.FlightsResponse{}}
	finder := NewFlightFinder(api, fixedNow)

	report := finder.Search(context.Background(), "Delhi", "Paris", 3)
	if !report.Failed() {
		t.Fatal("empty result set must fail")
	}
	if !strings.Contains(report.Notice, "No flights found") {
		t.Fatalf("unexpected notice: %q", report.Notice)
	}
}

func TestFlightFinderProviderErrorBecomesNotice(t *testing.T) {
	t.Parallel()

	api := &fakeFlightAPI{err: &serpapix.SearchError{Engine: "google_flights", Message: "Invalid API key"}}
	finder := NewFlightFinder(api, fixedNow)

	report := finder.Search(context.Background(), "Delhi", "Paris", 3)
	if !strings.Contains(report.Notice, "SerpAPI Error: Invalid API key") {
		t.Fatalf("unexpected notice: %q", report.Notice)
	}
}

func TestFlightFinderTransportErrorBecomesNotice(t *testing.T) {
	t.Parallel()

	api := &fakeFlightAPI{err: errors.New("connection refused")}
	finder := NewFlightFinder(api, fixedNow)

	report := finder.Search(context.Background(), "Delhi", "Paris", 3)
	if !strings.Contains(report.Notice, "Exception occurred while fetching flights") {
		t.Fatalf("unexpected notice: %q", report.Notice)
	}
}

func TestFlightReportRender(t *testing.T) {
	t.Parallel()

	api := &fakeFlightAPI{resp: &serpapix.FlightsResponse{
		BestFlights: []serpapix.FlightResult{
			{Price: floatPtr(45230), Segments: []serpapix.FlightSegment{{Airline: "Air India"}}},
		},
	}}
	finder := NewFlightFinder(api, fixedNow)

	text := finder.Search(context.Background(), "Delhi", "Paris", 3).Render()
	if !strings.Contains(text, "Flight Options:") {
		t.Fatalf("render missing heading: %q", text)
	}
	if !strings.Contains(text, "**Air India**: ₹45,230") {
		t.Fatalf("render missing option line: %q", text)
	}
}
