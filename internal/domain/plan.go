package domain

import "time"

// PlanStatus - состояние жизненного цикла плана поездки
type PlanStatus string

const (
	StatusDraft      PlanStatus = "draft"
	StatusPlanned    PlanStatus = "planned"
	StatusInProgress PlanStatus = "in-progress"
	StatusCompleted  PlanStatus = "completed"
	StatusCancelled  PlanStatus = "cancelled"
)

// Terminal reports whether no transition leaves s.
func (s PlanStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyTRY Currency = "TRY"
	CurrencyEUR Currency = "EUR"
)

type Pace string

const (
	PaceRelaxed  Pace = "relaxed"
	PaceModerate Pace = "moderate"
	PaceIntense  Pace = "intense"
)

type Interest string

const (
	InterestCulture       Interest = "culture"
	InterestFood          Interest = "food"
	InterestNature        Interest = "nature"
	InterestShopping      Interest = "shopping"
	InterestHistory       Interest = "history"
	InterestEntertainment Interest = "entertainment"
)

type Transportation string

const (
	TransportationWalking Transportation = "walking"
	TransportationPublic  Transportation = "public"
	TransportationTaxi    Transportation = "taxi"
	TransportationRental  Transportation = "rental"
)

// TravelPlan - агрегат плана поездки. DayPlans и их Activities принадлежат
// только родительскому плану и хранятся вместе с ним.
type TravelPlan struct {
	ID                string      `json:"id"`
	OwnerID           string      `json:"ownerId"`
	Title             string      `json:"title"`
	Description       string      `json:"description,omitempty"`
	DestinationCityID string      `json:"destinationCityId"`
	StartDate         time.Time   `json:"startDate"`
	EndDate           time.Time   `json:"endDate"`
	Budget            Budget      `json:"budget"`
	DayPlans          []DayPlan   `json:"dayPlans"`
	Status            PlanStatus  `json:"status"`
	Preferences       Preferences `json:"preferences"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

type Budget struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

type Preferences struct {
	Pace           Pace             `json:"pace"`
	Interests      []Interest       `json:"interests"`
	Transportation []Transportation `json:"transportation"`
}

type DayPlan struct {
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}

type Activity struct {
	PlaceID   string `json:"placeId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Notes     string `json:"notes,omitempty"`
}

// Clone returns a deep copy; nested slices are not shared with p.
func (p TravelPlan) Clone() TravelPlan {
	out := p
	if p.DayPlans != nil {
		out.DayPlans = make([]DayPlan, len(p.DayPlans))
		for i, d := range p.DayPlans {
			out.DayPlans[i] = DayPlan{Date: d.Date}
			if d.Activities != nil {
				out.DayPlans[i].Activities = make([]Activity, len(d.Activities))
				copy(out.DayPlans[i].Activities, d.Activities)
			}
		}
	}
	if p.Preferences.Interests != nil {
		out.Preferences.Interests = make([]Interest, len(p.Preferences.Interests))
		copy(out.Preferences.Interests, p.Preferences.Interests)
	}
	if p.Preferences.Transportation != nil {
		out.Preferences.Transportation = make([]Transportation, len(p.Preferences.Transportation))
		copy(out.Preferences.Transportation, p.Preferences.Transportation)
	}
	return out
}

// PlanFilter - параметры выборки планов пользователя
type PlanFilter struct {
	OwnerID string
	Status  PlanStatus
	CityID  string
	Limit   int
	Offset  int
}
