package report

import "errors"

var (
	ErrInvalidCategory = errors.New("invalid report category")
	ErrInvalidStatus   = errors.New("invalid report status")
)

type Category string

const (
	CategoryAircraftMismatch  Category = "aircraft_mismatch"
	CategoryMissingFacilities Category = "missing_facilities"
	CategoryPriceError        Category = "price_error"
	CategoryFlightInfoError   Category = "flight_info_error"
	CategoryTimeInaccurate    Category = "time_inaccurate"
	CategoryOther             Category = "other"
)

var categories = []Category{
	CategoryAircraftMismatch,
	CategoryMissingFacilities,
	CategoryPriceError,
	CategoryFlightInfoError,
	CategoryTimeInaccurate,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategoryAircraftMismatch:  "Aircraft Type Mismatch",
	CategoryMissingFacilities: "Missing Facilities",
	CategoryPriceError:        "Price Error",
	CategoryFlightInfoError:   "Flight Info Error",
	CategoryTimeInaccurate:    "Incorrect Time",
	CategoryOther:             "Other",
}

func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := categoryLabels[c]; !ok {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func (c Category) Label() string {
	return categoryLabels[c]
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusReviewed  Status = "reviewed"
	StatusResolved  Status = "resolved"
	StatusDismissed Status = "dismissed"
)

var statusLabels = map[Status]string{
	StatusPending:   "Pending",
	StatusReviewed:  "Reviewed",
	StatusResolved:  "Resolved",
	StatusDismissed: "Dismissed",
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := statusLabels[st]; !ok {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) Label() string {
	return statusLabels[s]
}
