package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"delivery_management/internal/logger"
	"delivery_management/internal/models"
	"delivery_management/internal/repositories"
	"delivery_management/internal/services/dto"
	"delivery_management/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliveryAssignmentService orchestrates assignment CRUD, cross-entity
// validation and the lifecycle notifications those operations trigger.
type DeliveryAssignmentService interface {
	List(ctx context.Context) ([]models.DeliveryAssignment, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.DeliveryAssignment, error)
	GetByDriverID(ctx context.Context, driverID primitive.ObjectID) ([]models.DeliveryAssignment, error)
	Create(ctx context.Context, req *dto.CreateDeliveryAssignmentRequest) (*models.DeliveryAssignment, error)
	Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateDeliveryAssignmentRequest) (*models.DeliveryAssignment, error)
	Remove(ctx context.Context, id primitive.ObjectID) error
}

type deliveryAssignmentService struct {
	assignmentRepo      repositories.DeliveryAssignmentRepository
	driverService       DriverService
	notificationService NotificationService
}

func NewDeliveryAssignmentService(
	assignmentRepo repositories.DeliveryAssignmentRepository,
	driverService DriverService,
	notificationService NotificationService,
) DeliveryAssignmentService {
	return &deliveryAssignmentService{
		assignmentRepo:      assignmentRepo,
		driverService:       driverService,
		notificationService: notificationService,
	}
}

func (s *deliveryAssignmentService) List(ctx context.Context) ([]models.DeliveryAssignment, error) {
	assignments, err := s.assignmentRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "assignment")
	}
	return assignments, nil
}

func (s *deliveryAssignmentService) Get(ctx context.Context, id primitive.ObjectID) (*models.DeliveryAssignment, error) {
	assignment, err := s.assignmentRepo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAssignmentNotFound) {
			return nil, apperrors.ErrNotFound(err, "assignment", "Delivery assignment not found")
		}
		return nil, apperrors.ErrDatabase(err, "assignment")
	}
	return assignment, nil
}

func (s *deliveryAssignmentService) GetByDriverID(ctx context.Context, driverID primitive.ObjectID) ([]models.DeliveryAssignment, error) {
	assignments, err := s.assignmentRepo.FindByDriverID(ctx, driverID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "assignment")
	}
	return assignments, nil
}

// Create validates the order set and the driver reference before any write,
// forces Status=Pending and AssignedDate=now, persists, then dispatches the
// assignment email. The assignment is already persisted when delivery is
// attempted, so a send failure surfaces to the caller without rollback.
func (s *deliveryAssignmentService) Create(ctx context.Context, req *dto.CreateDeliveryAssignmentRequest) (*models.DeliveryAssignment, error) {
	if len(req.OrderIDs) == 0 {
		return nil, apperrors.ErrValidation("assignment", "Order list must not be empty")
	}

	driverID, err := primitive.ObjectIDFromHex(req.DriverID)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid driver id: " + req.DriverID)
	}

	driver, err := s.driverService.Get(ctx, driverID)
	if err != nil {
		return nil, err
	}

	assignment := &models.DeliveryAssignment{
		DeliveryID:            req.DeliveryID,
		DriverID:              driverID,
		OrderIDs:              req.OrderIDs,
		Status:                models.AssignmentStatusPending,
		AssignedDate:          time.Now().UTC(),
		EstimatedDeliveryTime: req.EstimatedDeliveryTime,
		Notes:                 req.Notes,
	}

	if err := s.assignmentRepo.Insert(ctx, assignment); err != nil {
		return nil, apperrors.ErrDatabase(err, "assignment")
	}

	logger.CtxInfo(ctx, "delivery assignment created",
		"assignment_id", assignment.ID.Hex(),
		"delivery_id", assignment.DeliveryID,
		"driver_id", driverID.Hex(),
	)

	notification := &models.Notification{
		UserID: driver.Email,
		Type:   models.NotificationTypeEmail,
		Title:  "New Delivery Assignment",
		Message: fmt.Sprintf(
			"Dear %s,\n\nYou have been assigned a new delivery.\n\nDelivery ID: %s\nOrders: %s\nStatus: %s\nAssigned Date: %s\nEstimated Delivery Time: %s\n\nBest regards,\nDelivery Management Team",
			driver.Name,
			assignment.DeliveryID,
			strings.Join(assignment.OrderIDs, ", "),
			assignment.Status,
			assignment.AssignedDate.Format(time.RFC1123),
			assignment.EstimatedDeliveryTime.Format(time.RFC1123),
		),
		DeliveryID: assignment.DeliveryID,
	}

	if err := s.notificationService.Create(ctx, notification); err != nil {
		return nil, err
	}

	return assignment, nil
}

// Update replaces the assignment under its original id. A status differing
// from the stored value dispatches a status-change email before the
// replace; its failure propagates like on create.
func (s *deliveryAssignmentService) Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateDeliveryAssignmentRequest) (*models.DeliveryAssignment, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(req.OrderIDs) == 0 {
		return nil, apperrors.ErrValidation("assignment", "Order list must not be empty")
	}

	driverID, err := primitive.ObjectIDFromHex(req.DriverID)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid driver id: " + req.DriverID)
	}

	// The driver may have changed since creation; re-validate the
	// reference on every update.
	driver, err := s.driverService.Get(ctx, driverID)
	if err != nil {
		return nil, err
	}

	updated := &models.DeliveryAssignment{
		ID:                    existing.ID,
		DeliveryID:            req.DeliveryID,
		DriverID:              driverID,
		OrderIDs:              req.OrderIDs,
		Status:                models.AssignmentStatus(req.Status),
		AssignedDate:          existing.AssignedDate,
		EstimatedDeliveryTime: req.EstimatedDeliveryTime,
		Notes:                 req.Notes,
	}

	if existing.Status != updated.Status {
		notification := &models.Notification{
			UserID: driver.Email,
			Type:   models.NotificationTypeEmail,
			Title:  "Delivery Status Updated",
			Message: fmt.Sprintf(
				"Dear %s,\n\nThe status of your delivery has been updated.\n\nDelivery ID: %s\nNew Status: %s\n\nBest regards,\nDelivery Management Team",
				driver.Name, updated.DeliveryID, updated.Status,
			),
			DeliveryID: updated.DeliveryID,
		}
		if err := s.notificationService.Create(ctx, notification); err != nil {
			return nil, err
		}
	}

	if err := s.assignmentRepo.Replace(ctx, id, updated); err != nil {
		return nil, apperrors.ErrDatabase(err, "assignment")
	}

	return updated, nil
}

// Remove always deletes the assignment. The cancellation email is
// best-effort: a missing driver skips it and a send failure is logged,
// neither blocks the deletion.
func (s *deliveryAssignmentService) Remove(ctx context.Context, id primitive.ObjectID) error {
	assignment, err := s.assignmentRepo.FindByID(ctx, id)
	if err != nil && !apperrors.Is(err, repositories.ErrAssignmentNotFound) {
		return apperrors.ErrDatabase(err, "assignment")
	}

	if assignment != nil {
		driver, err := s.driverService.Get(ctx, assignment.DriverID)
		if err != nil {
			logger.CtxWarn(ctx, "driver not resolvable for cancellation notice",
				"assignment_id", id.Hex(), "driver_id", assignment.DriverID.Hex())
		} else {
			notification := &models.Notification{
				UserID: driver.Email,
				Type:   models.NotificationTypeEmail,
				Title:  "Delivery Assignment Cancelled",
				Message: fmt.Sprintf(
					"Dear %s,\n\nYour delivery assignment has been cancelled.\n\nDelivery ID: %s\n\nBest regards,\nDelivery Management Team",
					driver.Name, assignment.DeliveryID,
				),
				DeliveryID: assignment.DeliveryID,
			}
			if err := s.notificationService.Create(ctx, notification); err != nil {
				logger.CtxWarn(ctx, "cancellation notice failed, deleting assignment anyway",
					"assignment_id", id.Hex(), "error", err.Error())
			}
		}
	}

	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		return apperrors.ErrDatabase(err, "assignment")
	}
	return nil
}
