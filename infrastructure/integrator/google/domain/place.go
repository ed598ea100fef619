package googledomain

// Status retornados pela Places API
const (
	StatusOK             = "OK"
	StatusNotFound       = "NOT_FOUND"
	StatusZeroResults    = "ZERO_RESULTS"
	StatusInvalidRequest = "INVALID_REQUEST"
	StatusOverQueryLimit = "OVER_QUERY_LIMIT"
	StatusRequestDenied  = "REQUEST_DENIED"
)

type PlaceDetailsResponse struct {
	Result       PlaceDetails `json:"result"`
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message,omitempty"`
}

type PlaceDetails struct {
	PlaceID                  string        `json:"place_id"`
	Name                     string        `json:"name"`
	FormattedAddress         string        `json:"formatted_address"`
	FormattedPhoneNumber     string        `json:"formatted_phone_number"`
	InternationalPhoneNumber string        `json:"international_phone_number"`
	Website                  string        `json:"website"`
	Rating                   float64       `json:"rating"`
	UserRatingsTotal         int           `json:"user_ratings_total"`
	Photos                   []Photo       `json:"photos"`
	OpeningHours             *OpeningHours `json:"opening_hours"`
	Types                    []string      `json:"types"`
	BusinessStatus           string        `json:"business_status"`
}

type Photo struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

type OpeningHours struct {
	Periods     []Period `json:"periods"`
	WeekdayText []string `json:"weekday_text"`
}

type Period struct {
	Open  DayTime  `json:"open"`
	Close *DayTime `json:"close,omitempty"`
}

type DayTime struct {
	Day  int    `json:"day"`
	Time string `json:"time"`
}
