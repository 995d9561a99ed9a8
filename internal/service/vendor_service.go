package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"marketplace-backend/internal/entity"
	"marketplace-backend/internal/messaging"
	"marketplace-backend/internal/repository"
)

// RegisterVendorCommand carries a new vendor application.
type RegisterVendorCommand struct {
	UserID            uuid.UUID
	BusinessName      string
	Email             string
	PhoneNumber       string
	ContactPersonName string
	BusinessAddress   entity.Address
	TaxID             string
	BankAccountNumber string
	CommissionRate    decimal.Decimal
}

// VendorService orchestrates vendor onboarding and account management.
type VendorService struct {
	vendors   repository.VendorRepository
	publisher messaging.Publisher
	clock     entity.Clock
}

func NewVendorService(vendors repository.VendorRepository, publisher messaging.Publisher, clock entity.Clock) *VendorService {
	return &VendorService{vendors: vendors, publisher: publisher, clock: clock}
}

// RegisterVendor files a new application and publishes VendorRegistered.
func (s *VendorService) RegisterVendor(ctx context.Context, cmd RegisterVendorCommand) (*entity.Vendor, error) {
	slog.Info("Service: Registering vendor", "user_id", cmd.UserID, "business_name", cmd.BusinessName)

	vendor, err := entity.RegisterVendor(s.clock, cmd.UserID, cmd.BusinessName, cmd.Email, cmd.PhoneNumber, cmd.ContactPersonName, cmd.BusinessAddress, cmd.TaxID, cmd.BankAccountNumber, cmd.CommissionRate)
	if err != nil {
		return nil, err
	}

	if err := s.vendors.Save(ctx, vendor); err != nil {
		return nil, fmt.Errorf("failed to save vendor: %w", err)
	}

	publishEvents(ctx, s.publisher, vendor.ID.String(), vendor)
	return vendor, nil
}

// GetVendor loads a vendor by id.
func (s *VendorService) GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	return s.vendors.Load(ctx, id)
}

func (s *VendorService) mutate(ctx context.Context, id uuid.UUID, fn func(*entity.Vendor) error) (*entity.Vendor, error) {
	vendor, err := s.vendors.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	vendor.SetClock(s.clock)

	if err := fn(vendor); err != nil {
		return nil, err
	}

	if err := s.vendors.Save(ctx, vendor); err != nil {
		return nil, fmt.Errorf("failed to save vendor: %w", err)
	}

	publishEvents(ctx, s.publisher, vendor.ID.String(), vendor)
	return vendor, nil
}

func (s *VendorService) ApproveVendor(ctx context.Context, vendorID uuid.UUID) (*entity.Vendor, error) {
	return s.mutate(ctx, vendorID, func(v *entity.Vendor) error {
		return v.Approve()
	})
}

func (s *VendorService) RejectVendor(ctx context.Context, vendorID uuid.UUID, reason string) (*entity.Vendor, error) {
	return s.mutate(ctx, vendorID, func(v *entity.Vendor) error {
		return v.Reject(reason)
	})
}

func (s *VendorService) SuspendVendor(ctx context.Context, vendorID uuid.UUID, reason string) (*entity.Vendor, error) {
	return s.mutate(ctx, vendorID, func(v *entity.Vendor) error {
		return v.Suspend(reason)
	})
}

func (s *VendorService) ReactivateVendor(ctx context.Context, vendorID uuid.UUID) (*entity.Vendor, error) {
	return s.mutate(ctx, vendorID, func(v *entity.Vendor) error {
		return v.Reactivate()
	})
}

func (s *VendorService) UpdateBusinessInfo(ctx context.Context, vendorID uuid.UUID, businessName, email, phoneNumber, contactPersonName string, address entity.Address) (*entity.Vendor, error) {
	return s.mutate(ctx, vendorID, func(v *entity.Vendor) error {
		return v.UpdateBusinessInfo(businessName, email, phoneNumber, contactPersonName, address)
	})
}

func (s *VendorService) UpdateBankingInfo(ctx context.Context, vendorID uuid.UUID, taxID, bankAccountNumber string) (*entity.Vendor, error) {
	return s.mutate(ctx, vendorID, func(v *entity.Vendor) error {
		return v.UpdateBankingInfo(taxID, bankAccountNumber)
	})
}

func (s *VendorService) UpdateLogo(ctx context.Context, vendorID uuid.UUID, logoURL string) (*entity.Vendor, error) {
	return s.mutate(ctx, vendorID, func(v *entity.Vendor) error {
		return v.UpdateLogo(logoURL)
	})
}

// RecordSale credits settled revenue to the vendor.
func (s *VendorService) RecordSale(ctx context.Context, vendorID uuid.UUID, amount entity.Money) (*entity.Vendor, error) {
	return s.mutate(ctx, vendorID, func(v *entity.Vendor) error {
		return v.AddRevenue(amount)
	})
}
