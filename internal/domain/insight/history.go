package insight

// HistoryWindow is how many trailing days a flight's price history shows.
const HistoryWindow = 7

// trendThreshold is the relative move between the first and last point that counts as a trend.
const trendThreshold = 0.05

type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
)

// History is the recent price movement of one flight offer's route.
type History struct {
	FlightID          string       `json:"flightId"`
	Points            []PricePoint `json:"points"`
	CurrentPrice      float64      `json:"currentPrice"`
	Trend             Trend        `json:"trend"`
	PriceLevel        Level        `json:"priceLevel"`
	TypicalPriceRange *PriceRange  `json:"typicalPriceRange"`
	LowestPrice       *float64     `json:"lowestPrice"`
}

// NewHistory keeps the trailing window of the route insight and classifies its direction.
func NewHistory(flightID string, currentPrice float64, pi PriceInsight) History {
	points := pi.PriceHistory
	if len(points) > HistoryWindow {
		points = points[len(points)-HistoryWindow:]
	}
	if points == nil {
		points = []PricePoint{}
	}
	return History{
		FlightID:          flightID,
		Points:            points,
		CurrentPrice:      currentPrice,
		Trend:             TrendOf(points),
		PriceLevel:        pi.PriceLevel,
		TypicalPriceRange: pi.TypicalPriceRange,
		LowestPrice:       pi.LowestPrice,
	}
}

// TrendOf compares the last point with the first. Fewer than two points is stable.
func TrendOf(points []PricePoint) Trend {
	if len(points) < 2 {
		return TrendStable
	}
	first, last := points[0].Price, points[len(points)-1].Price
	if first <= 0 {
		return TrendStable
	}
	switch change := (last - first) / first; {
	case change > trendThreshold:
		return TrendRising
	case change < -trendThreshold:
		return TrendFalling
	default:
		return TrendStable
	}
}
