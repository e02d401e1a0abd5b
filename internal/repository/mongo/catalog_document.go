package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/erdoganeray/travelApp/internal/domain"
)

type coordinatesDocument struct {
	Latitude  float64 `bson:"latitude"`
	Longitude float64 `bson:"longitude"`
}

type cityDocument struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Name        string              `bson:"name"`
	Country     string              `bson:"country"`
	Description string              `bson:"description"`
	ImageURL    string              `bson:"imageUrl"`
	Rating      float64             `bson:"rating"`
	Coordinates coordinatesDocument `bson:"coordinates"`
	CreatedAt   time.Time           `bson:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt"`
}

func newCityDocument(c domain.City) cityDocument {
	doc := cityDocument{
		Name:        c.Name,
		Country:     c.Country,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Rating:      c.Rating,
		Coordinates: coordinatesDocument(c.Coordinates),
		CreatedAt:   bsonTime(c.CreatedAt),
		UpdatedAt:   bsonTime(c.UpdatedAt),
	}
	if oid, err := primitive.ObjectIDFromHex(c.ID); err == nil {
		doc.ID = oid
	}
	return doc
}

func (d cityDocument) toDomain() domain.City {
	return domain.City{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Country:     d.Country,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		Rating:      d.Rating,
		Coordinates: domain.Coordinates(d.Coordinates),
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

type localizedTextDocument struct {
	EN string `bson:"en"`
	TR string `bson:"tr"`
}

type openingHoursDocument struct {
	Open  string `bson:"open"`
	Close string `bson:"close"`
}

type contactInfoDocument struct {
	Phone   string `bson:"phone,omitempty"`
	Email   string `bson:"email,omitempty"`
	Website string `bson:"website,omitempty"`
}

type placeDocument struct {
	ID           primitive.ObjectID              `bson:"_id,omitempty"`
	Name         string                          `bson:"name"`
	CityID       primitive.ObjectID              `bson:"cityId"`
	Description  localizedTextDocument           `bson:"description"`
	Category     string                          `bson:"category"`
	Coordinates  coordinatesDocument             `bson:"coordinates"`
	Images       []string                        `bson:"images"`
	Rating       float64                         `bson:"rating"`
	PriceLevel   string                          `bson:"priceLevel"`
	OpeningHours map[string]openingHoursDocument `bson:"openingHours,omitempty"`
	ContactInfo  contactInfoDocument             `bson:"contactInfo"`
	Amenities    []string                        `bson:"amenities"`
	CreatedAt    time.Time                       `bson:"createdAt"`
	UpdatedAt    time.Time                       `bson:"updatedAt"`
}

func (d placeDocument) toDomain() domain.Place {
	p := domain.Place{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		CityID:      d.CityID.Hex(),
		Description: domain.LocalizedText(d.Description),
		Category:    d.Category,
		Coordinates: domain.Coordinates(d.Coordinates),
		Images:      nonNil(d.Images),
		Rating:      d.Rating,
		PriceLevel:  d.PriceLevel,
		ContactInfo: domain.ContactInfo(d.ContactInfo),
		Amenities:   nonNil(d.Amenities),
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
	if len(d.OpeningHours) > 0 {
		p.OpeningHours = make(map[string]domain.OpeningHours, len(d.OpeningHours))
		for day, h := range d.OpeningHours {
			p.OpeningHours[day] = domain.OpeningHours(h)
		}
	}
	return p
}

type timeWindowDocument struct {
	Start string `bson:"start"`
	End   string `bson:"end"`
}

type priceDocument struct {
	Amount   float64 `bson:"amount"`
	Currency string  `bson:"currency"`
}

type organizerDocument struct {
	Name    string              `bson:"name"`
	Contact contactInfoDocument `bson:"contact"`
}

type eventDocument struct {
	ID                   primitive.ObjectID    `bson:"_id,omitempty"`
	Name                 string                `bson:"name"`
	CityID               primitive.ObjectID    `bson:"cityId"`
	PlaceID              *primitive.ObjectID   `bson:"placeId,omitempty"`
	Description          localizedTextDocument `bson:"description"`
	Category             string                `bson:"category"`
	StartDate            time.Time             `bson:"startDate"`
	EndDate              time.Time             `bson:"endDate"`
	Time                 *timeWindowDocument   `bson:"time,omitempty"`
	Images               []string              `bson:"images"`
	TicketPrice          *priceDocument        `bson:"ticketPrice,omitempty"`
	Organizer            organizerDocument     `bson:"organizer"`
	Capacity             int                   `bson:"capacity,omitempty"`
	RegistrationRequired bool                  `bson:"registrationRequired"`
	Tags                 []string              `bson:"tags"`
	CreatedAt            time.Time             `bson:"createdAt"`
	UpdatedAt            time.Time             `bson:"updatedAt"`
}

func (d eventDocument) toDomain() domain.Event {
	e := domain.Event{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		CityID:      d.CityID.Hex(),
		Description: domain.LocalizedText(d.Description),
		Category:    d.Category,
		StartDate:   d.StartDate.UTC(),
		EndDate:     d.EndDate.UTC(),
		Images:      nonNil(d.Images),
		Organizer: domain.Organizer{
			Name:    d.Organizer.Name,
			Contact: domain.ContactInfo(d.Organizer.Contact),
		},
		Capacity:             d.Capacity,
		RegistrationRequired: d.RegistrationRequired,
		Tags:                 nonNil(d.Tags),
		CreatedAt:            d.CreatedAt.UTC(),
		UpdatedAt:            d.UpdatedAt.UTC(),
	}
	if d.PlaceID != nil {
		e.PlaceID = d.PlaceID.Hex()
	}
	if d.Time != nil {
		e.Time = &domain.TimeWindow{Start: d.Time.Start, End: d.Time.End}
	}
	if d.TicketPrice != nil {
		e.TicketPrice = &domain.Price{Amount: d.TicketPrice.Amount, Currency: domain.Currency(d.TicketPrice.Currency)}
	}
	return e
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
