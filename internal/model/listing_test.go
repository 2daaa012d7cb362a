package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validListing() Listing {
	return Listing{
		Kind:           KindBike,
		Name:           "Pulsar 150",
		Brand:          "Bajaj",
		Year:           2021,
		DaysUsed:       200,
		Condition:      "Good",
		Mileage:        45,
		TopSpeed:       110,
		License:        "KA01AB1234",
		EngineType:     EngineTypePetrol,
		EngineCapacity: "150cc",
		PresentPrice:   85000,
		PastPrice:      110000,
		Seller:         Seller{Name: "Ravi", Email: "ravi@example.com"},
		Availability:   AvailabilityAvailable,
	}
}

func TestListingValidate(t *testing.T) {
	t.Run("valid listing passes", func(t *testing.T) {
		l := validListing()
		assert.Empty(t, l.Validate())
	})

	t.Run("petrol without engine capacity is rejected", func(t *testing.T) {
		l := validListing()
		l.EngineCapacity = ""
		errs := l.Validate()
		assert.Contains(t, errs, "engine capacity is required for Petrol vehicles")
	})

	t.Run("electric without battery capacity is rejected", func(t *testing.T) {
		l := validListing()
		l.EngineType = EngineTypeElectric
		l.EngineCapacity = ""
		errs := l.Validate()
		assert.Contains(t, errs, "battery capacity is required for Electric vehicles")
	})

	t.Run("electric with battery capacity passes", func(t *testing.T) {
		l := validListing()
		l.EngineType = EngineTypeElectric
		l.EngineCapacity = ""
		l.BatteryCapacity = "3.2kWh"
		assert.Empty(t, l.Validate())
	})

	t.Run("year bounds", func(t *testing.T) {
		l := validListing()
		l.Year = 1999
		assert.NotEmpty(t, l.Validate())

		l.Year = time.Now().Year() + 2
		assert.NotEmpty(t, l.Validate())

		l.Year = time.Now().Year() + 1
		assert.Empty(t, l.Validate())
	})

	t.Run("negative numerics are rejected", func(t *testing.T) {
		l := validListing()
		l.PresentPrice = -1
		l.Mileage = -5
		l.DaysUsed = -1
		errs := l.Validate()
		assert.Contains(t, errs, "present price must not be negative")
		assert.Contains(t, errs, "mileage must not be negative")
		assert.Contains(t, errs, "days used must not be negative")
	})

	t.Run("bad condition and engine type", func(t *testing.T) {
		l := validListing()
		l.Condition = "Mint"
		l.EngineType = "Diesel"
		errs := l.Validate()
		assert.Len(t, errs, 2)
	})

	t.Run("bad seller email", func(t *testing.T) {
		l := validListing()
		l.Seller.Email = "not-an-email"
		assert.Contains(t, l.Validate(), "seller email is invalid")
	})

	t.Run("license must be alphanumeric", func(t *testing.T) {
		l := validListing()
		l.License = "KA-01 AB 1234"
		assert.Empty(t, l.Validate())

		l.License = "KA@1234"
		assert.Contains(t, l.Validate(), "license must be alphanumeric")
	})

	t.Run("description limited to 1000 chars", func(t *testing.T) {
		l := validListing()
		l.Description = strings.Repeat("x", 1000)
		assert.Empty(t, l.Validate())

		l.Description = strings.Repeat("x", 1001)
		assert.NotEmpty(t, l.Validate())
	})

	t.Run("image references", func(t *testing.T) {
		l := validListing()
		l.Images = []string{"https://cdn.example.com/bike.jpg", "data:image/png;base64,iVBORw0KGgo="}
		assert.Empty(t, l.Validate())

		l.Images = []string{"ftp://example.com/bike.jpg"}
		assert.NotEmpty(t, l.Validate())

		l.Images = []string{"data:text/plain;base64,aGk="}
		assert.NotEmpty(t, l.Validate())
	})

	t.Run("rating bounds", func(t *testing.T) {
		l := validListing()
		l.Rating = 5.1
		assert.Contains(t, l.Validate(), "rating must be between 0 and 5")
	})
}

func TestListingNormalize(t *testing.T) {
	t.Run("seller and contact defaults", func(t *testing.T) {
		l := Listing{}
		l.Normalize()
		assert.Equal(t, "Anonymous", l.Seller.Name)
		assert.NotEmpty(t, l.Seller.Email)
		assert.Equal(t, l.Seller.Email, l.ContactInfo.Email)
		assert.Equal(t, "India", l.Location.Country)
		assert.Equal(t, AvailabilityAvailable, l.Availability)
	})

	t.Run("contact email backfilled from seller", func(t *testing.T) {
		l := Listing{Seller: Seller{Name: "Ravi", Email: "ravi@example.com", Phone: "9800000000"}}
		l.Normalize()
		assert.Equal(t, "ravi@example.com", l.ContactInfo.Email)
		assert.Equal(t, "9800000000", l.ContactInfo.Phone)
	})

	t.Run("explicit contact info is kept", func(t *testing.T) {
		l := Listing{
			Seller:      Seller{Email: "ravi@example.com"},
			ContactInfo: ContactInfo{Email: "deals@example.com"},
		}
		l.Normalize()
		assert.Equal(t, "deals@example.com", l.ContactInfo.Email)
	})

	t.Run("license uppercased", func(t *testing.T) {
		l := Listing{License: "ka01ab1234"}
		l.Normalize()
		assert.Equal(t, "KA01AB1234", l.License)
	})

	t.Run("explicit country is kept", func(t *testing.T) {
		l := Listing{Location: Location{Country: "Nepal"}}
		l.Normalize()
		assert.Equal(t, "Nepal", l.Location.Country)
	})
}

func TestListingComputeDerived(t *testing.T) {
	t.Run("quarter discount", func(t *testing.T) {
		l := Listing{PresentPrice: 150000, PastPrice: 200000}
		l.ComputeDerived()
		assert.Equal(t, 25, l.Discount)
		assert.Equal(t, 50000, l.PriceDifference)
	})

	t.Run("zero past price means no discount", func(t *testing.T) {
		l := Listing{PresentPrice: 150000, PastPrice: 0}
		l.ComputeDerived()
		assert.Equal(t, 0, l.Discount)
		assert.Equal(t, -150000, l.PriceDifference)
	})

	t.Run("discount is rounded", func(t *testing.T) {
		l := Listing{PresentPrice: 66667, PastPrice: 100000}
		l.ComputeDerived()
		assert.Equal(t, 33, l.Discount)

		l = Listing{PresentPrice: 66500, PastPrice: 100000}
		l.ComputeDerived()
		assert.Equal(t, 34, l.Discount)
	})

	t.Run("price increase yields negative discount", func(t *testing.T) {
		l := Listing{PresentPrice: 110000, PastPrice: 100000}
		l.ComputeDerived()
		assert.Equal(t, -10, l.Discount)
		assert.Equal(t, -10000, l.PriceDifference)
	})
}

func TestParseVehicleKind(t *testing.T) {
	k, err := ParseVehicleKind("bike")
	assert.NoError(t, err)
	assert.Equal(t, KindBike, k)

	_, err = ParseVehicleKind("car")
	assert.Error(t, err)
}
