package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendorStatus is the vendor onboarding-workflow status.
type VendorStatus string

const (
	VendorStatusPending   VendorStatus = "pending"
	VendorStatusActive    VendorStatus = "active"
	VendorStatusSuspended VendorStatus = "suspended"
	// VendorStatusDeactivated is terminal; it is reached only by
	// rejecting a pending application.
	VendorStatusDeactivated VendorStatus = "deactivated"
)

// Vendor is the aggregate root for a marketplace seller.
type Vendor struct {
	Base
	UserID            uuid.UUID       `json:"user_id"`
	BusinessName      string          `json:"business_name"`
	Email             string          `json:"email"`
	PhoneNumber       string          `json:"phone_number,omitempty"`
	ContactPersonName string          `json:"contact_person_name,omitempty"`
	BusinessAddress   Address         `json:"business_address"`
	Status            VendorStatus    `json:"status"`
	CommissionRate    decimal.Decimal `json:"commission_rate"`
	TotalRevenue      Money           `json:"total_revenue"`
	TaxID             string          `json:"tax_id,omitempty"`
	BankAccountNumber string          `json:"bank_account_number,omitempty"`
	LogoURL           string          `json:"logo_url,omitempty"`

	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
	RejectedAt       *time.Time `json:"rejected_at,omitempty"`
	RejectionReason  string     `json:"rejection_reason,omitempty"`
	SuspendedAt      *time.Time `json:"suspended_at,omitempty"`
	SuspensionReason string     `json:"suspension_reason,omitempty"`
}

// RegisterVendor creates a pending vendor application and emits
// VendorRegistered.
func RegisterVendor(clock Clock, userID uuid.UUID, businessName, email, phoneNumber, contactPersonName string, businessAddress Address, taxID, bankAccountNumber string, commissionRate decimal.Decimal) (*Vendor, error) {
	if userID == uuid.Nil {
		return nil, &ValidationError{Message: "user id is required"}
	}
	if isBlank(businessName) {
		return nil, &ValidationError{Message: "business name is required"}
	}
	if isBlank(email) {
		return nil, &ValidationError{Message: "email is required"}
	}
	if businessAddress.isZero() {
		return nil, &ValidationError{Message: "business address is required"}
	}
	if commissionRate.IsNegative() || commissionRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, &ValidationError{Message: "commission rate must be between 0 and 1"}
	}

	vendor := &Vendor{
		Base:              NewBase(clock),
		UserID:            userID,
		BusinessName:      businessName,
		Email:             strings.ToLower(email),
		PhoneNumber:       phoneNumber,
		ContactPersonName: contactPersonName,
		BusinessAddress:   businessAddress,
		Status:            VendorStatusPending,
		CommissionRate:    commissionRate,
		TotalRevenue:      ZeroMoney("USD"),
		TaxID:             taxID,
		BankAccountNumber: bankAccountNumber,
	}

	vendor.record(VendorRegistered{
		VendorID:     vendor.ID,
		UserID:       userID,
		BusinessName: businessName,
		Email:        vendor.Email,
	})
	return vendor, nil
}

// Approve activates a pending application and emits VendorApproved.
func (v *Vendor) Approve() error {
	if v.Status != VendorStatusPending {
		return &StateConflictError{Op: "approve vendor", Status: string(v.Status)}
	}

	now := v.now()
	v.Status = VendorStatusActive
	v.ApprovedAt = &now
	v.RejectedAt = nil
	v.RejectionReason = ""
	v.touch()

	v.record(VendorApproved{VendorID: v.ID, ApprovedAt: now})
	return nil
}

// Reject deactivates a pending application and emits VendorRejected.
func (v *Vendor) Reject(reason string) error {
	if v.Status != VendorStatusPending {
		return &StateConflictError{Op: "reject vendor", Status: string(v.Status)}
	}
	if isBlank(reason) {
		return &ValidationError{Message: "rejection reason is required"}
	}

	now := v.now()
	v.Status = VendorStatusDeactivated
	v.RejectedAt = &now
	v.RejectionReason = reason
	v.touch()

	v.record(VendorRejected{VendorID: v.ID, Reason: reason, RejectedAt: now})
	return nil
}

// Suspend pauses an active vendor and emits VendorSuspended.
func (v *Vendor) Suspend(reason string) error {
	if v.Status != VendorStatusActive {
		return &StateConflictError{Op: "suspend vendor", Status: string(v.Status)}
	}
	if isBlank(reason) {
		return &ValidationError{Message: "suspension reason is required"}
	}

	now := v.now()
	v.Status = VendorStatusSuspended
	v.SuspendedAt = &now
	v.SuspensionReason = reason
	v.touch()

	v.record(VendorSuspended{VendorID: v.ID, Reason: reason, SuspendedAt: now})
	return nil
}

// Reactivate reinstates a suspended vendor, clearing suspension
// metadata, and emits VendorReactivated.
func (v *Vendor) Reactivate() error {
	if v.Status != VendorStatusSuspended {
		return &StateConflictError{Op: "reactivate vendor", Status: string(v.Status)}
	}

	now := v.now()
	v.Status = VendorStatusActive
	v.SuspendedAt = nil
	v.SuspensionReason = ""
	v.touch()

	v.record(VendorReactivated{VendorID: v.ID, ReactivatedAt: now})
	return nil
}

// UpdateBusinessInfo changes contact details. Blocked once deactivated.
func (v *Vendor) UpdateBusinessInfo(businessName, email, phoneNumber, contactPersonName string, businessAddress Address) error {
	if v.Status == VendorStatusDeactivated {
		return &StateConflictError{Op: "update business info for vendor", Status: string(v.Status)}
	}
	if isBlank(businessName) {
		return &ValidationError{Message: "business name is required"}
	}

	v.BusinessName = businessName
	v.Email = strings.ToLower(email)
	v.PhoneNumber = phoneNumber
	v.ContactPersonName = contactPersonName
	v.BusinessAddress = businessAddress
	v.touch()
	return nil
}

// UpdateBankingInfo changes payout details. Blocked once deactivated.
func (v *Vendor) UpdateBankingInfo(taxID, bankAccountNumber string) error {
	if v.Status == VendorStatusDeactivated {
		return &StateConflictError{Op: "update banking info for vendor", Status: string(v.Status)}
	}

	v.TaxID = taxID
	v.BankAccountNumber = bankAccountNumber
	v.touch()
	return nil
}

// UpdateLogo changes the logo URL. Blocked once deactivated.
func (v *Vendor) UpdateLogo(logoURL string) error {
	if v.Status == VendorStatusDeactivated {
		return &StateConflictError{Op: "update logo for vendor", Status: string(v.Status)}
	}
	if isBlank(logoURL) {
		return &ValidationError{Message: "logo url cannot be empty"}
	}

	v.LogoURL = logoURL
	v.touch()
	return nil
}

// AddRevenue accumulates settled sales revenue.
func (v *Vendor) AddRevenue(amount Money) error {
	if !amount.Amount.IsPositive() {
		return &ValidationError{Message: "revenue amount must be positive"}
	}

	total, err := v.TotalRevenue.Add(amount)
	if err != nil {
		return err
	}
	v.TotalRevenue = total
	v.touch()
	return nil
}

// CalculateCommission returns the marketplace's cut of a sale.
func (v *Vendor) CalculateCommission(saleAmount Money) Money {
	return saleAmount.Multiply(v.CommissionRate)
}

// Query helpers.

func (v *Vendor) IsApproved() bool { return v.Status == VendorStatusActive }

func (v *Vendor) IsPending() bool { return v.Status == VendorStatusPending }

func (v *Vendor) IsSuspended() bool { return v.Status == VendorStatusSuspended }

func (v *Vendor) CanSellProducts() bool { return v.Status == VendorStatusActive }
