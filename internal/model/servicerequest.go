package model

import (
	"fmt"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"math"
	"net/mail"
	"strings"
)

const (
	ServiceInsurance = "insurance"
	ServiceLoan      = "loan"
	ServiceRoadside  = "roadside"
)

const (
	ServiceStatusPending  = "pending"
	ServiceStatusResolved = "resolved"
	ServiceStatusRejected = "rejected"
)

var serviceTypes = []string{ServiceInsurance, ServiceLoan, ServiceRoadside}

func ValidServiceType(s string) bool {
	for _, t := range serviceTypes {
		if s == t {
			return true
		}
	}
	return false
}

func ValidServiceStatus(s string) bool {
	return s == ServiceStatusPending || s == ServiceStatusResolved || s == ServiceStatusRejected
}

// ServiceRequest is a user-submitted request for insurance, a vehicle loan, or
// roadside assistance. Reference is a server-assigned code the user can quote
// in follow-ups.
type ServiceRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Type        string             `bson:"type" json:"type"`
	Reference   string             `bson:"reference" json:"reference"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	VehicleKind VehicleKind        `bson:"vehicle_kind,omitempty" json:"vehicle_kind,omitempty"`
	Message     string             `bson:"message" json:"message"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   primitive.DateTime `bson:"created_at" json:"created_at"`
	UpdatedAt   primitive.DateTime `bson:"updated_at" json:"updated_at"`
}

func (sr *ServiceRequest) Normalize() {
	sr.Name = strings.TrimSpace(sr.Name)
	sr.Message = strings.TrimSpace(sr.Message)
	if sr.Status == "" {
		sr.Status = ServiceStatusPending
	}
}

func (sr ServiceRequest) Validate() []string {
	var errs []string

	if !ValidServiceType(sr.Type) {
		errs = append(errs, fmt.Sprintf("type must be one of: %s", strings.Join(serviceTypes, ", ")))
	}
	if sr.Name == "" {
		errs = append(errs, "name is required")
	}
	if _, err := mail.ParseAddress(sr.Email); err != nil {
		errs = append(errs, "email is invalid")
	}
	if sr.VehicleKind != "" && sr.VehicleKind != KindBike && sr.VehicleKind != KindScooter {
		errs = append(errs, fmt.Sprintf("vehicle kind must be %q or %q", KindBike, KindScooter))
	}
	if len(sr.Message) > 2000 {
		errs = append(errs, "message must not exceed 2000 characters")
	}
	if !ValidServiceStatus(sr.Status) {
		errs = append(errs, "status must be one of: pending, resolved, rejected")
	}

	return errs
}

// LoanQuote is the amortization summary for a vehicle loan: fixed monthly
// installment plus the totals over the full tenure. Amounts are whole rupees.
type LoanQuote struct {
	Principal     int     `json:"principal"`
	AnnualRate    float64 `json:"annual_rate"`
	TenureMonths  int     `json:"tenure_months"`
	EMI           int     `json:"emi"`
	TotalPayment  int     `json:"total_payment"`
	TotalInterest int     `json:"total_interest"`
}

// CalculateLoanQuote computes the standard EMI formula
// P*r*(1+r)^n / ((1+r)^n - 1) with r the monthly rate. A zero interest rate
// degenerates to principal/tenure.
func CalculateLoanQuote(principal int, annualRate float64, tenureMonths int) (LoanQuote, error) {
	if principal <= 0 {
		return LoanQuote{}, fmt.Errorf("principal must be positive, got %d", principal)
	}
	if annualRate < 0 {
		return LoanQuote{}, fmt.Errorf("annual rate must not be negative, got %v", annualRate)
	}
	if tenureMonths <= 0 {
		return LoanQuote{}, fmt.Errorf("tenure must be positive, got %d months", tenureMonths)
	}

	var emi float64
	if annualRate == 0 {
		emi = float64(principal) / float64(tenureMonths)
	} else {
		r := annualRate / 12 / 100
		factor := math.Pow(1+r, float64(tenureMonths))
		emi = float64(principal) * r * factor / (factor - 1)
	}

	emiRounded := int(math.Round(emi))
	total := emiRounded * tenureMonths
	return LoanQuote{
		Principal:     principal,
		AnnualRate:    annualRate,
		TenureMonths:  tenureMonths,
		EMI:           emiRounded,
		TotalPayment:  total,
		TotalInterest: total - principal,
	}, nil
}
