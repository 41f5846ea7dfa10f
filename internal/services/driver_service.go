package services

import (
	"context"
	"fmt"
	"time"

	"delivery_management/internal/logger"
	"delivery_management/internal/models"
	"delivery_management/internal/repositories"
	"delivery_management/internal/services/dto"
	"delivery_management/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DriverService manages driver records and emits the notifications that
// accompany their lifecycle changes.
type DriverService interface {
	List(ctx context.Context) ([]models.Driver, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Driver, error)
	GetByEmail(ctx context.Context, email string) (*models.Driver, error)
	GetActiveDrivers(ctx context.Context) ([]models.Driver, error)
	Create(ctx context.Context, req *dto.CreateDriverRequest) (*models.Driver, error)
	Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateDriverRequest) (*models.Driver, error)
	Remove(ctx context.Context, id primitive.ObjectID) error
}

type driverService struct {
	driverRepo          repositories.DriverRepository
	notificationService NotificationService
}

func NewDriverService(
	driverRepo repositories.DriverRepository,
	notificationService NotificationService,
) DriverService {
	return &driverService{
		driverRepo:          driverRepo,
		notificationService: notificationService,
	}
}

func (s *driverService) List(ctx context.Context) ([]models.Driver, error) {
	drivers, err := s.driverRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "driver")
	}
	return drivers, nil
}

func (s *driverService) Get(ctx context.Context, id primitive.ObjectID) (*models.Driver, error) {
	driver, err := s.driverRepo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDriverNotFound) {
			return nil, apperrors.ErrNotFound(err, "driver", "Driver not found")
		}
		return nil, apperrors.ErrDatabase(err, "driver")
	}
	return driver, nil
}

func (s *driverService) GetByEmail(ctx context.Context, email string) (*models.Driver, error) {
	driver, err := s.driverRepo.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDriverNotFound) {
			return nil, apperrors.ErrNotFound(err, "driver", "Driver not found")
		}
		return nil, apperrors.ErrDatabase(err, "driver")
	}
	return driver, nil
}

func (s *driverService) GetActiveDrivers(ctx context.Context) ([]models.Driver, error) {
	drivers, err := s.driverRepo.FindByStatus(ctx, models.DriverStatusActive)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "driver")
	}
	return drivers, nil
}

// Create registers a driver with Status=Active and both timestamps set to
// now, then sends the welcome email. A failed welcome send surfaces to the
// caller even though the driver is already persisted.
func (s *driverService) Create(ctx context.Context, req *dto.CreateDriverRequest) (*models.Driver, error) {
	now := time.Now().UTC()
	driver := &models.Driver{
		Name:          req.Name,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		LicenseNumber: req.LicenseNumber,
		Status:        models.DriverStatusActive,
		CreatedAt:     now,
		LastUpdated:   now,
	}

	if err := s.driverRepo.Insert(ctx, driver); err != nil {
		return nil, apperrors.ErrDatabase(err, "driver")
	}

	logger.CtxInfo(ctx, "driver created", "driver_id", driver.ID.Hex(), "email", driver.Email)

	notification := &models.Notification{
		UserID: driver.Email,
		Type:   models.NotificationTypeEmail,
		Title:  "Welcome to Delivery Management System",
		Message: fmt.Sprintf(
			"Dear %s,\n\nWelcome to our delivery management system. Your account has been created successfully.\n\nYour driver ID: %s\nEmail: %s\n\nBest regards,\nDelivery Management Team",
			driver.Name, driver.ID.Hex(), driver.Email,
		),
		// The dispatcher overwrites this with its own lifecycle anyway.
		Status: models.NotificationStatusPending,
	}

	if err := s.notificationService.Create(ctx, notification); err != nil {
		return nil, err
	}

	return driver, nil
}

// Update replaces the driver document, preserving identity and createdAt.
// An email change notifies the previous address; a status change notifies
// the new one. Either send failing fails the update call, although the
// notifications have already been attempted in order.
func (s *driverService) Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateDriverRequest) (*models.Driver, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := &models.Driver{
		ID:            existing.ID,
		Name:          req.Name,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		LicenseNumber: req.LicenseNumber,
		Status:        models.DriverStatus(req.Status),
		CreatedAt:     existing.CreatedAt,
		LastUpdated:   time.Now().UTC(),
	}

	if existing.Email != updated.Email {
		notification := &models.Notification{
			UserID: existing.Email,
			Type:   models.NotificationTypeEmail,
			Title:  "Email Address Updated",
			Message: fmt.Sprintf(
				"Dear %s,\n\nYour email address has been updated in our system.\n\nNew email: %s\n\nBest regards,\nDelivery Management Team",
				updated.Name, updated.Email,
			),
			Status: models.NotificationStatusPending,
		}
		if err := s.notificationService.Create(ctx, notification); err != nil {
			return nil, err
		}
	}

	if existing.Status != updated.Status {
		notification := &models.Notification{
			UserID: updated.Email,
			Type:   models.NotificationTypeEmail,
			Title:  "Driver Status Updated",
			Message: fmt.Sprintf(
				"Dear %s,\n\nYour status has been updated to: %s\n\nBest regards,\nDelivery Management Team",
				updated.Name, updated.Status,
			),
			Status: models.NotificationStatusPending,
		}
		if err := s.notificationService.Create(ctx, notification); err != nil {
			return nil, err
		}
	}

	if err := s.driverRepo.Replace(ctx, id, updated); err != nil {
		return nil, apperrors.ErrDatabase(err, "driver")
	}

	return updated, nil
}

// Remove deletes the driver. The deactivation notice is best-effort: its
// failure is logged and never blocks the deletion.
func (s *driverService) Remove(ctx context.Context, id primitive.ObjectID) error {
	driver, err := s.driverRepo.FindByID(ctx, id)
	if err != nil && !apperrors.Is(err, repositories.ErrDriverNotFound) {
		return apperrors.ErrDatabase(err, "driver")
	}

	if driver != nil {
		notification := &models.Notification{
			UserID: driver.Email,
			Type:   models.NotificationTypeEmail,
			Title:  "Account Deactivated",
			Message: fmt.Sprintf(
				"Dear %s,\n\nYour account has been deactivated from our delivery management system.\n\nBest regards,\nDelivery Management Team",
				driver.Name,
			),
			Status: models.NotificationStatusPending,
		}
		if err := s.notificationService.Create(ctx, notification); err != nil {
			logger.CtxWarn(ctx, "deactivation notice failed, deleting driver anyway",
				"driver_id", id.Hex(), "error", err.Error())
		}
	}

	if err := s.driverRepo.Delete(ctx, id); err != nil {
		return apperrors.ErrDatabase(err, "driver")
	}
	return nil
}
