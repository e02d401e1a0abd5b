package domain

import "time"

type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// City - город каталога
type City struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Country     string      `json:"country"`
	Description string      `json:"description"`
	ImageURL    string      `json:"imageUrl"`
	Rating      float64     `json:"rating"`
	Coordinates Coordinates `json:"coordinates"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// LocalizedText - описание на английском и турецком
type LocalizedText struct {
	EN string `json:"en"`
	TR string `json:"tr"`
}

type OpeningHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type ContactInfo struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

// Place - место (ресторан, музей, парк...) в городе каталога
type Place struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	CityID       string                  `json:"cityId"`
	Description  LocalizedText           `json:"description"`
	Category     string                  `json:"category"`
	Coordinates  Coordinates             `json:"coordinates"`
	Images       []string                `json:"images"`
	Rating       float64                 `json:"rating"`
	PriceLevel   string                  `json:"priceLevel"`
	OpeningHours map[string]OpeningHours `json:"openingHours,omitempty"`
	ContactInfo  ContactInfo             `json:"contactInfo"`
	Amenities    []string                `json:"amenities"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}

var PlaceCategories = []string{"Restaurant", "Museum", "Park", "Hotel", "Shopping", "Historical", "Entertainment"}

type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Price struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

type Organizer struct {
	Name    string      `json:"name"`
	Contact ContactInfo `json:"contact"`
}

// Event - событие в городе каталога
type Event struct {
	ID                   string        `json:"id"`
	Name                 string        `json:"name"`
	CityID               string        `json:"cityId"`
	PlaceID              string        `json:"placeId,omitempty"`
	Description          LocalizedText `json:"description"`
	Category             string        `json:"category"`
	StartDate            time.Time     `json:"startDate"`
	EndDate              time.Time     `json:"endDate"`
	Time                 *TimeWindow   `json:"time,omitempty"`
	Images               []string      `json:"images"`
	TicketPrice          *Price        `json:"ticketPrice,omitempty"`
	Organizer            Organizer     `json:"organizer"`
	Capacity             int           `json:"capacity,omitempty"`
	RegistrationRequired bool          `json:"registrationRequired"`
	Tags                 []string      `json:"tags"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
}

var EventCategories = []string{"Cultural", "Music", "Sports", "Food", "Art", "Festival", "Educational"}

// CatalogFilter - фильтр для выборки мест и событий
type CatalogFilter struct {
	CityID   string
	Category string
	From     *time.Time
	Limit    int
}
