package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/erdoganeray/travelApp/internal/domain"
)

type planDocument struct {
	ID                primitive.ObjectID  `bson:"_id,omitempty"`
	OwnerID           string              `bson:"ownerId"`
	Title             string              `bson:"title"`
	Description       string              `bson:"description,omitempty"`
	DestinationCityID string              `bson:"destinationCityId"`
	StartDate         time.Time           `bson:"startDate"`
	EndDate           time.Time           `bson:"endDate"`
	Budget            budgetDocument      `bson:"budget"`
	DayPlans          []dayPlanDocument   `bson:"dayPlans"`
	Status            string              `bson:"status"`
	Preferences       preferencesDocument `bson:"preferences"`
	CreatedAt         time.Time           `bson:"createdAt"`
	UpdatedAt         time.Time           `bson:"updatedAt"`
}

type budgetDocument struct {
	Amount   float64 `bson:"amount"`
	Currency string  `bson:"currency"`
}

type preferencesDocument struct {
	Pace           string   `bson:"pace"`
	Interests      []string `bson:"interests"`
	Transportation []string `bson:"transportation"`
}

type dayPlanDocument struct {
	Date       time.Time          `bson:"date"`
	Activities []activityDocument `bson:"activities"`
}

type activityDocument struct {
	PlaceID   string `bson:"placeId"`
	StartTime string `bson:"startTime"`
	EndTime   string `bson:"endTime"`
	Notes     string `bson:"notes,omitempty"`
}

func newPlanDocument(p domain.TravelPlan) planDocument {
	doc := planDocument{
		OwnerID:           p.OwnerID,
		Title:             p.Title,
		Description:       p.Description,
		DestinationCityID: p.DestinationCityID,
		StartDate:         p.StartDate.UTC(),
		EndDate:           p.EndDate.UTC(),
		Budget:            budgetDocument{Amount: p.Budget.Amount, Currency: string(p.Budget.Currency)},
		DayPlans:          make([]dayPlanDocument, 0, len(p.DayPlans)),
		Status:            string(p.Status),
		Preferences: preferencesDocument{
			Pace:           string(p.Preferences.Pace),
			Interests:      make([]string, 0, len(p.Preferences.Interests)),
			Transportation: make([]string, 0, len(p.Preferences.Transportation)),
		},
		CreatedAt: bsonTime(p.CreatedAt),
		UpdatedAt: bsonTime(p.UpdatedAt),
	}
	if oid, err := primitive.ObjectIDFromHex(p.ID); err == nil {
		doc.ID = oid
	}
	for _, i := range p.Preferences.Interests {
		doc.Preferences.Interests = append(doc.Preferences.Interests, string(i))
	}
	for _, t := range p.Preferences.Transportation {
		doc.Preferences.Transportation = append(doc.Preferences.Transportation, string(t))
	}
	for _, d := range p.DayPlans {
		day := dayPlanDocument{Date: d.Date.UTC(), Activities: make([]activityDocument, 0, len(d.Activities))}
		for _, a := range d.Activities {
			day.Activities = append(day.Activities, activityDocument(a))
		}
		doc.DayPlans = append(doc.DayPlans, day)
	}
	return doc
}

func (d planDocument) toDomain() domain.TravelPlan {
	p := domain.TravelPlan{
		ID:                d.ID.Hex(),
		OwnerID:           d.OwnerID,
		Title:             d.Title,
		Description:       d.Description,
		DestinationCityID: d.DestinationCityID,
		StartDate:         d.StartDate.UTC(),
		EndDate:           d.EndDate.UTC(),
		Budget:            domain.Budget{Amount: d.Budget.Amount, Currency: domain.Currency(d.Budget.Currency)},
		DayPlans:          make([]domain.DayPlan, 0, len(d.DayPlans)),
		Status:            domain.PlanStatus(d.Status),
		Preferences: domain.Preferences{
			Pace:           domain.Pace(d.Preferences.Pace),
			Interests:      make([]domain.Interest, 0, len(d.Preferences.Interests)),
			Transportation: make([]domain.Transportation, 0, len(d.Preferences.Transportation)),
		},
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
	for _, i := range d.Preferences.Interests {
		p.Preferences.Interests = append(p.Preferences.Interests, domain.Interest(i))
	}
	for _, t := range d.Preferences.Transportation {
		p.Preferences.Transportation = append(p.Preferences.Transportation, domain.Transportation(t))
	}
	for _, day := range d.DayPlans {
		dp := domain.DayPlan{Date: day.Date.UTC(), Activities: make([]domain.Activity, 0, len(day.Activities))}
		for _, a := range day.Activities {
			dp.Activities = append(dp.Activities, domain.Activity(a))
		}
		p.DayPlans = append(p.DayPlans, dp)
	}
	return p
}

// bsonTime truncates to the millisecond precision of a BSON datetime.
func bsonTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
