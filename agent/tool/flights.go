package tool

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	contractx "tripdesigner/agent/contract"
	serpapix "tripdesigner/pkg/serpapi"
)

const (
	bookingLeadDays  = 30
	maxFlightOptions = 3

	searchCurrency = "INR"
	searchLanguage = "en"
	searchCountry  = "in"
)

// FlightSearchAPI is the slice of the search client the flight finder needs.
type FlightSearchAPI interface {
	SearchFlights(ctx context.Context, req serpapix.FlightsRequest) (*serpapix.FlightsResponse, error)
}

// FlightFinder summarizes round-trip options between two known cities for a
// fixed booking window starting 30 days out. Every failure mode becomes a
// user-facing notice; the finder never returns an error to callers.
type FlightFinder struct {
	api FlightSearchAPI
	now func() time.Time
}

func NewFlightFinder(api FlightSearchAPI, now func() time.Time) *FlightFinder {
	if now == nil {
		now = time.Now
	}
	return &FlightFinder{api: api, now: now}
}

var _ contractx.FlightFinder = (*FlightFinder)(nil)

func (f *FlightFinder) Search(ctx context.Context, departureCity, arrivalCity string, tripDays int) contractx.FlightReport {
	departureCode, ok := ResolveAirport(departureCity)
	if !ok {
		return flightNotice("❌ Could not find airport code for %s or %s.", departureCity, arrivalCity)
	}
	arrivalCode, ok := ResolveAirport(arrivalCity)
	if !ok {
		return flightNotice("❌ Could not find airport code for %s or %s.", departureCity, arrivalCity)
	}

	outbound := f.now().AddDate(0, 0, bookingLeadDays)
	returning := outbound.AddDate(0, 0, tripDays)

	resp, err := f.api.SearchFlights(ctx, serpapix.FlightsRequest{
		DepartureID:  departureCode,
		ArrivalID:    arrivalCode,
		OutboundDate: outbound.Format(time.DateOnly),
		ReturnDate:   returning.Format(time.DateOnly),
		Currency:     searchCurrency,
		Language:     searchLanguage,
		Country:      searchCountry,
	})
	if err != nil {
		var searchErr *serpapix.SearchError
		if errors.As(err, &searchErr) {
			return flightNotice("❌ SerpAPI Error: %s", searchErr.Message)
		}
		log.Warn().Err(err).
			Str("departure", departureCode).
			Str("arrival", arrivalCode).
			Msg("flight search failed")
		return flightNotice("❌ Exception occurred while fetching flights: %v", err)
	}

	results := resp.BestFlights
	if len(results) == 0 {
		results = resp.OtherFlights
	}
	if len(results) == 0 {
		return flightNotice("❌ No flights found for the specified route and dates.")
	}

	options := make([]contractx.FlightOption, 0, maxFlightOptions)
	for _, result := range results {
		if len(options) == maxFlightOptions {
			break
		}
		options = append(options, contractx.FlightOption{
			CarrierLabel: carrierLabel(result.Segments),
			PriceText:    renderPrice(result.Price),
		})
	}

	return contractx.FlightReport{Options: options}
}

func flightNotice(format string, args ...any) contractx.FlightReport {
	return contractx.FlightReport{Notice: fmt.Sprintf(format, args...)}
}

// carrierLabel joins the de-duplicated airlines of all segments with "/",
// keeping first-seen order.
func carrierLabel(segments []serpapix.FlightSegment) string {
	seen := make(map[string]struct{}, len(segments))
	carriers := make([]string, 0, len(segments))
	for _, seg := range segments {
		airline := strings.TrimSpace(seg.Airline)
		if airline == "" {
			airline = "-"
		}
		if _, dup := seen[airline]; dup {
			continue
		}
		seen[airline] = struct{}{}
		carriers = append(carriers, airline)
	}
	if len(carriers) == 0 {
		return "-"
	}
	return strings.Join(carriers, "/")
}

// renderPrice groups whole amounts by thousands and passes fractional
// provider values through untouched.
func renderPrice(price *float64) string {
	if price == nil {
		return "N/A"
	}
	if *price == math.Trunc(*price) {
		return humanize.Comma(int64(*price))
	}
	return strconv.FormatFloat(*price, 'f', -1, 64)
}
