package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceRequestValidate(t *testing.T) {
	valid := ServiceRequest{
		Type:   ServiceLoan,
		Name:   "Ravi",
		Email:  "ravi@example.com",
		Status: ServiceStatusPending,
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.Empty(t, valid.Validate())
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		sr := valid
		sr.Type = "detailing"
		assert.NotEmpty(t, sr.Validate())
	})

	t.Run("bad email is rejected", func(t *testing.T) {
		sr := valid
		sr.Email = "nope"
		assert.Contains(t, sr.Validate(), "email is invalid")
	})

	t.Run("normalize defaults status to pending", func(t *testing.T) {
		sr := ServiceRequest{Type: ServiceRoadside, Name: " Ravi ", Email: "ravi@example.com"}
		sr.Normalize()
		assert.Equal(t, ServiceStatusPending, sr.Status)
		assert.Equal(t, "Ravi", sr.Name)
	})
}

func TestCalculateLoanQuote(t *testing.T) {
	t.Run("standard amortization", func(t *testing.T) {
		q, err := CalculateLoanQuote(100000, 12, 12)
		assert.NoError(t, err)
		assert.Equal(t, 8885, q.EMI)
		assert.Equal(t, 106620, q.TotalPayment)
		assert.Equal(t, 6620, q.TotalInterest)
	})

	t.Run("longer tenure", func(t *testing.T) {
		q, err := CalculateLoanQuote(100000, 10.5, 36)
		assert.NoError(t, err)
		assert.Equal(t, 3250, q.EMI)
		assert.Equal(t, 117000, q.TotalPayment)
		assert.Equal(t, 17000, q.TotalInterest)
	})

	t.Run("zero rate degenerates to straight division", func(t *testing.T) {
		q, err := CalculateLoanQuote(12000, 0, 12)
		assert.NoError(t, err)
		assert.Equal(t, 1000, q.EMI)
		assert.Equal(t, 0, q.TotalInterest)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		_, err := CalculateLoanQuote(0, 12, 12)
		assert.Error(t, err)

		_, err = CalculateLoanQuote(100000, -1, 12)
		assert.Error(t, err)

		_, err = CalculateLoanQuote(100000, 12, 0)
		assert.Error(t, err)
	})
}
