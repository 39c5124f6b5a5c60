package tool

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	contractx "tripdesigner/agent/contract"
	statex "tripdesigner/agent/state"
	serpapix "tripdesigner/pkg/serpapi"
)

const (
	maxHotelOptions = 3
	hotelOccupancy  = 2

	defaultNightlyCeiling = 9000
)

// Tier ceilings in INR per night. Unrecognized tiers price as mid-range.
var nightlyCeilingByTier = map[statex.BudgetTier]float64{
	statex.TierLowRange: 4000,
	statex.TierMidRange: 9000,
	statex.TierLuxury:   90000,
}

func tierCeiling(tier statex.BudgetTier) float64 {
	if ceiling, ok := nightlyCeilingByTier[tier]; ok {
		return ceiling
	}
	return defaultNightlyCeiling
}

// HotelSearchAPI is the slice of the search client the hotel finder needs.
type HotelSearchAPI interface {
	SearchHotels(ctx context.Context, req serpapix.HotelsRequest) (*serpapix.HotelsResponse, error)
}

// HotelFinder shortlists properties under the tier's nightly ceiling for a
// stay window starting 30 days out. Provider order is preserved; no
// re-sorting by price or rating.
type HotelFinder struct {
	api HotelSearchAPI
	now func() time.Time
}

func NewHotelFinder(api HotelSearchAPI, now func() time.Time) *HotelFinder {
	if now == nil {
		now = time.Now
	}
	return &HotelFinder{api: api, now: now}
}

var _ contractx.HotelFinder = (*HotelFinder)(nil)

func (h *HotelFinder) Search(ctx context.Context, city string, tier statex.BudgetTier, tripDays int) contractx.HotelReport {
	checkIn := h.now().AddDate(0, 0, bookingLeadDays)
	checkOut := checkIn.AddDate(0, 0, tripDays)

	resp, err := h.api.SearchHotels(ctx, serpapix.HotelsRequest{
		Query:        "hotels in " + city,
		CheckInDate:  checkIn.Format(time.DateOnly),
		CheckOutDate: checkOut.Format(time.DateOnly),
		Adults:       hotelOccupancy,
		Currency:     searchCurrency,
		Language:     searchLanguage,
		Country:      searchCountry,
	})
	if err != nil {
		var searchErr *serpapix.SearchError
		if errors.As(err, &searchErr) {
			return hotelNotice("❌ SerpAPI Error: %s", searchErr.Message)
		}
		log.Warn().Err(err).Str("city", city).Msg("hotel search failed")
		return hotelNotice("❌ Exception occurred while fetching hotels: %v", err)
	}

	if len(resp.Properties) == 0 {
		return hotelNotice("❌ No hotels found for %s.", city)
	}

	ceiling := tierCeiling(tier)
	options := make([]contractx.HotelOption, 0, maxHotelOptions)
	for _, property := range resp.Properties {
		price := property.RatePerNight.ExtractedLowest
		if price <= 0 || price > ceiling {
			continue
		}
		options = append(options, contractx.HotelOption{
			Name:        property.Name,
			NightlyText: humanize.Comma(int64(price)),
		})
		if len(options) == maxHotelOptions {
			break
		}
	}

	if len(options) == 0 {
		return hotelNotice("❌ No hotels matched the chosen budget.")
	}
	return contractx.HotelReport{Options: options}
}

func hotelNotice(format string, args ...any) contractx.HotelReport {
	return contractx.HotelReport{Notice: fmt.Sprintf(format, args...)}
}
