package insight

import (
	"errors"
	"sort"
)

const (
	MinCompareDates = 2
	MaxCompareDates = 5

	// HistoryLimit is how many trailing history points are kept.
	HistoryLimit = 30
)

var (
	ErrTooManyDates = errors.New("at most 5 dates can be compared")
	ErrTooFewDates  = errors.New("at least 2 dates are required for comparison")
)

type Level string

const (
	LevelLow     Level = "low"
	LevelTypical Level = "typical"
	LevelHigh    Level = "high"
	LevelUnknown Level = "unknown"
)

var levelDescriptions = map[Level]string{
	LevelLow:     "Prices are lower than usual for this route",
	LevelTypical: "Prices are typical for this route",
	LevelHigh:    "Prices are higher than usual for this route",
}

// ParseLevel reports whether s is one of the three levels a provider may send.
func ParseLevel(s string) (Level, bool) {
	switch l := Level(s); l {
	case LevelLow, LevelTypical, LevelHigh:
		return l, true
	default:
		return "", false
	}
}

func (l Level) Description() string {
	if d, ok := levelDescriptions[l]; ok {
		return d
	}
	return "Price level unknown"
}

type PriceRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// ClassifyPriceLevel places lowest against the typical range; both bounds count as typical.
func ClassifyPriceLevel(lowest *float64, r *PriceRange) Level {
	if lowest == nil || r == nil {
		return LevelUnknown
	}
	switch {
	case *lowest < r.Low:
		return LevelLow
	case *lowest > r.High:
		return LevelHigh
	default:
		return LevelTypical
	}
}

type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

type PriceInsight struct {
	LowestPrice           *float64     `json:"lowestPrice"`
	PriceLevel            Level        `json:"priceLevel"`
	PriceLevelDescription string       `json:"priceLevelDescription"`
	TypicalPriceRange     *PriceRange  `json:"typicalPriceRange"`
	PriceHistory          []PricePoint `json:"priceHistory"`
}

// New fills in the level (when the provider gave none) and its description.
func New(lowest *float64, r *PriceRange, providerLevel string, history []PricePoint) PriceInsight {
	level, ok := ParseLevel(providerLevel)
	if !ok {
		level = ClassifyPriceLevel(lowest, r)
	}
	if len(history) > HistoryLimit {
		history = history[len(history)-HistoryLimit:]
	}
	if history == nil {
		history = []PricePoint{}
	}
	return PriceInsight{
		LowestPrice:           lowest,
		PriceLevel:            level,
		PriceLevelDescription: level.Description(),
		TypicalPriceRange:     r,
		PriceHistory:          history,
	}
}

type Route struct {
	Departure    string  `json:"departure"`
	Arrival      string  `json:"arrival"`
	OutboundDate string  `json:"outboundDate"`
	ReturnDate   *string `json:"returnDate"`
}

type CompareRoute struct {
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
}

type DateComparison struct {
	Date              string      `json:"date"`
	LowestPrice       *float64    `json:"lowestPrice"`
	PriceLevel        Level       `json:"priceLevel"`
	TypicalPriceRange *PriceRange `json:"typicalPriceRange"`
}

type Recommendation struct {
	BestDate    string  `json:"bestDate"`
	LowestPrice float64 `json:"lowestPrice"`
	Savings     float64 `json:"savings"`
}

// ValidateCompareCount bounds how many dates one comparison may fan out to.
func ValidateCompareCount(n int) error {
	switch {
	case n > MaxCompareDates:
		return ErrTooManyDates
	case n < MinCompareDates:
		return ErrTooFewDates
	}
	return nil
}

// Recommend picks the cheapest date, earliest first on ties, and reports the
// spread between the cheapest and dearest priced dates. Nil when nothing is priced.
func Recommend(entries []DateComparison) *Recommendation {
	priced := make([]DateComparison, 0, len(entries))
	for _, e := range entries {
		if e.LowestPrice != nil {
			priced = append(priced, e)
		}
	}
	if len(priced) == 0 {
		return nil
	}

	sort.SliceStable(priced, func(i, j int) bool {
		pi, pj := *priced[i].LowestPrice, *priced[j].LowestPrice
		if pi != pj {
			return pi < pj
		}
		return priced[i].Date < priced[j].Date
	})

	best := priced[0]
	rec := &Recommendation{
		BestDate:    best.Date,
		LowestPrice: *best.LowestPrice,
	}
	if len(priced) >= 2 {
		rec.Savings = *priced[len(priced)-1].LowestPrice - *best.LowestPrice
	}
	return rec
}
