package model

import (
	"fmt"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"math"
	"net/mail"
	"net/url"
	"strings"
	"time"
	"wheelmarket/internal/misc"
)

type VehicleKind string

const (
	KindBike    VehicleKind = "bike"
	KindScooter VehicleKind = "scooter"
)

func ParseVehicleKind(s string) (VehicleKind, error) {
	switch VehicleKind(s) {
	case KindBike, KindScooter:
		return VehicleKind(s), nil
	}
	return "", fmt.Errorf("invalid vehicle kind: %s", s)
}

const (
	EngineTypePetrol   = "Petrol"
	EngineTypeElectric = "Electric"
)

const (
	AvailabilityAvailable = "available"
	AvailabilitySold      = "sold"
	AvailabilityReserved  = "reserved"
)

var conditions = []string{"Excellent", "Good", "Fair", "Poor"}

func ValidEngineType(s string) bool {
	return s == EngineTypePetrol || s == EngineTypeElectric
}

func ValidCondition(s string) bool {
	for _, c := range conditions {
		if s == c {
			return true
		}
	}
	return false
}

func ValidAvailability(s string) bool {
	return s == AvailabilityAvailable || s == AvailabilitySold || s == AvailabilityReserved
}

const (
	anonymousSellerName  = "Anonymous"
	placeholderEmail     = "seller@wheelmarket.invalid"
	defaultCountry       = "India"
	maxDescriptionLength = 1000
)

type Seller struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

type ContactInfo struct {
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email    string `bson:"email,omitempty" json:"email,omitempty"`
	WhatsApp string `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
}

type Location struct {
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	Country string `bson:"country" json:"country"`
}

type Listing struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Kind            VehicleKind        `bson:"kind" json:"kind"`
	Name            string             `bson:"name" json:"name"`
	Brand           string             `bson:"brand" json:"brand"`
	Model           string             `bson:"model,omitempty" json:"model,omitempty"`
	Year            int                `bson:"year" json:"year"`
	DaysUsed        int                `bson:"days_used" json:"days_used"`
	Condition       string             `bson:"condition" json:"condition"`
	Mileage         int                `bson:"mileage" json:"mileage"`
	TopSpeed        int                `bson:"top_speed" json:"top_speed"`
	License         string             `bson:"license" json:"license"`
	EngineType      string             `bson:"engine_type" json:"engine_type"`
	EngineCapacity  string             `bson:"engine_capacity,omitempty" json:"engine_capacity,omitempty"`
	BatteryCapacity string             `bson:"battery_capacity,omitempty" json:"battery_capacity,omitempty"`
	PresentPrice    int                `bson:"present_price" json:"present_price"`
	PastPrice       int                `bson:"past_price" json:"past_price"`
	Discount        int                `bson:"-" json:"discount"`
	PriceDifference int                `bson:"-" json:"price_difference"`
	Images          []string           `bson:"images" json:"images"`
	Description     string             `bson:"description" json:"description"`
	Features        []string           `bson:"features" json:"features"`
	Location        Location           `bson:"location" json:"location"`
	Seller          Seller             `bson:"seller" json:"seller"`
	ContactInfo     ContactInfo        `bson:"contact_info" json:"contact_info"`
	Availability    string             `bson:"availability" json:"availability"`
	IsActive        bool               `bson:"is_active" json:"is_active"`
	IsPromoted      bool               `bson:"is_promoted" json:"is_promoted"`
	Rating          float64            `bson:"rating" json:"rating"`
	ReviewCount     int                `bson:"review_count" json:"review_count"`
	ViewCount       int                `bson:"view_count" json:"view_count"`
	CreatedAt       primitive.DateTime `bson:"created_at" json:"created_at"`
	UpdatedAt       primitive.DateTime `bson:"updated_at" json:"updated_at"`
}

// Normalize fills defaults and backfills before a Listing is validated and
// persisted: seller identity, contact info from the seller, location country,
// license casing and availability. It is the single construction point for
// these rules, every write path must go through it.
func (l *Listing) Normalize() {
	l.Name = strings.TrimSpace(l.Name)
	l.Brand = strings.TrimSpace(l.Brand)
	l.Model = strings.TrimSpace(l.Model)
	l.License = strings.ToUpper(strings.TrimSpace(l.License))

	if l.Seller.Name == "" {
		l.Seller.Name = anonymousSellerName
	}
	if l.Seller.Email == "" {
		l.Seller.Email = placeholderEmail
	}
	if l.ContactInfo.Email == "" {
		l.ContactInfo.Email = l.Seller.Email
	}
	if l.ContactInfo.Phone == "" {
		l.ContactInfo.Phone = l.Seller.Phone
	}
	if l.Location.Country == "" {
		l.Location.Country = defaultCountry
	}
	if l.Availability == "" {
		l.Availability = AvailabilityAvailable
	}
	if l.Images == nil {
		l.Images = []string{}
	}
	if l.Features == nil {
		l.Features = []string{}
	}
}

// Validate checks every field constraint and returns human-readable messages,
// one per violation. An empty slice means the Listing is valid.
func (l Listing) Validate() []string {
	var errs []string

	if l.Kind != KindBike && l.Kind != KindScooter {
		errs = append(errs, fmt.Sprintf("kind must be %q or %q", KindBike, KindScooter))
	}
	if l.Name == "" {
		errs = append(errs, "name is required")
	}
	if l.Brand == "" {
		errs = append(errs, "brand is required")
	}

	maxYear := time.Now().Year() + 1
	if l.Year < 2000 || l.Year > maxYear {
		errs = append(errs, fmt.Sprintf("year must be between 2000 and %d", maxYear))
	}
	if l.DaysUsed < 0 {
		errs = append(errs, "days used must not be negative")
	}
	if !ValidCondition(l.Condition) {
		errs = append(errs, fmt.Sprintf("condition must be one of: %s", strings.Join(conditions, ", ")))
	}
	if l.Mileage < 0 {
		errs = append(errs, "mileage must not be negative")
	}
	if l.TopSpeed < 0 {
		errs = append(errs, "top speed must not be negative")
	}

	if l.License == "" {
		errs = append(errs, "license is required")
	} else if !alphanumeric(l.License) {
		errs = append(errs, "license must be alphanumeric")
	}

	if !ValidEngineType(l.EngineType) {
		errs = append(errs, fmt.Sprintf("engine type must be %q or %q", EngineTypePetrol, EngineTypeElectric))
	}
	// The capacity field matching the engine type is mandatory. Enforced here
	// so the rule holds on every write, not just at schema level.
	if l.EngineType == EngineTypePetrol && strings.TrimSpace(l.EngineCapacity) == "" {
		errs = append(errs, "engine capacity is required for Petrol vehicles")
	}
	if l.EngineType == EngineTypeElectric && strings.TrimSpace(l.BatteryCapacity) == "" {
		errs = append(errs, "battery capacity is required for Electric vehicles")
	}

	if l.PresentPrice < 0 {
		errs = append(errs, "present price must not be negative")
	}
	if l.PastPrice < 0 {
		errs = append(errs, "past price must not be negative")
	}

	if len(l.Description) > maxDescriptionLength {
		errs = append(errs, fmt.Sprintf("description must not exceed %d characters", maxDescriptionLength))
	}
	for _, img := range l.Images {
		if !validImageRef(img) {
			errs = append(errs, fmt.Sprintf("invalid image reference: %s", misc.StringLimit(img, 60)))
			break
		}
	}

	if _, err := mail.ParseAddress(l.Seller.Email); err != nil {
		errs = append(errs, "seller email is invalid")
	}
	if l.ContactInfo.Email != "" {
		if _, err := mail.ParseAddress(l.ContactInfo.Email); err != nil {
			errs = append(errs, "contact email is invalid")
		}
	}

	if !ValidAvailability(l.Availability) {
		errs = append(errs, "availability must be one of: available, sold, reserved")
	}
	if l.Rating < 0 || l.Rating > 5 {
		errs = append(errs, "rating must be between 0 and 5")
	}
	if l.ReviewCount < 0 {
		errs = append(errs, "review count must not be negative")
	}
	if l.ViewCount < 0 {
		errs = append(errs, "view count must not be negative")
	}

	return errs
}

// ComputeDerived fills the price fields that are never stored. Discount is a
// rounded percentage, 0 when there is no past price to compare against.
func (l *Listing) ComputeDerived() {
	if l.PastPrice > 0 {
		l.Discount = int(math.Round(float64(l.PastPrice-l.PresentPrice) / float64(l.PastPrice) * 100))
	} else {
		l.Discount = 0
	}
	l.PriceDifference = l.PastPrice - l.PresentPrice
}

func alphanumeric(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == ' ' || r == '-':
		default:
			return false
		}
	}
	return true
}

func validImageRef(s string) bool {
	if strings.HasPrefix(s, "data:image/") {
		rest := strings.TrimPrefix(s, "data:image/")
		semi := strings.Index(rest, ";")
		return semi > 0 && strings.HasPrefix(rest[semi:], ";base64,")
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
