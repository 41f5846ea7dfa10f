package services

import (
	"context"
	"time"

	"delivery_management/internal/email"
	"delivery_management/internal/logger"
	"delivery_management/internal/models"
	"delivery_management/internal/repositories"
	"delivery_management/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationService owns the notification lifecycle: create, persist,
// attempt delivery, record the outcome.
type NotificationService interface {
	List(ctx context.Context) ([]models.Notification, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
	Create(ctx context.Context, notification *models.Notification) error
	Update(ctx context.Context, id primitive.ObjectID, notification *models.Notification) error
	MarkAsRead(ctx context.Context, id primitive.ObjectID) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	emailProvider    email.Provider
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	emailProvider email.Provider,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		emailProvider:    emailProvider,
	}
}

func (s *notificationService) List(ctx context.Context) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "notification")
	}
	return notifications, nil
}

func (s *notificationService) Get(ctx context.Context, id primitive.ObjectID) (*models.Notification, error) {
	notification, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return nil, apperrors.ErrNotFound(err, "notification", "Notification not found")
		}
		return nil, apperrors.ErrDatabase(err, "notification")
	}
	return notification, nil
}

func (s *notificationService) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "notification")
	}
	return notifications, nil
}

// Create persists the notification and synchronously attempts delivery.
// The row is written first with Status=Pending, then the status is updated
// to Sent or Failed with a targeted field update. A transport failure is
// recorded and then re-raised to the caller.
func (s *notificationService) Create(ctx context.Context, notification *models.Notification) error {
	notification.ID = primitive.NilObjectID
	notification.CreatedAt = time.Now().UTC()
	notification.IsRead = false
	notification.Status = models.NotificationStatusPending

	if err := s.notificationRepo.Insert(ctx, notification); err != nil {
		return apperrors.ErrDatabase(err, "notification")
	}

	logger.CtxDebug(ctx, "notification persisted",
		"notification_id", notification.ID.Hex(),
		"recipient", notification.UserID,
		"type", string(notification.Type),
	)

	switch notification.Type {
	case models.NotificationTypeEmail:
		return s.deliverEmail(ctx, notification)
	case models.NotificationTypeSMS:
		// No SMS transport is wired; the stub unconditionally succeeds.
		return s.recordOutcome(ctx, notification, models.NotificationStatusSent)
	}
	return nil
}

func (s *notificationService) deliverEmail(ctx context.Context, notification *models.Notification) error {
	if err := s.emailProvider.Send(notification.UserID, notification.Title, notification.Message); err != nil {
		logger.CtxWithError(ctx, "email delivery failed", err,
			"notification_id", notification.ID.Hex(),
			"recipient", notification.UserID,
		)
		if recErr := s.recordOutcome(ctx, notification, models.NotificationStatusFailed); recErr != nil {
			logger.CtxWithError(ctx, "failed to record delivery outcome", recErr,
				"notification_id", notification.ID.Hex(),
			)
		}
		return apperrors.ErrDeliveryFailed(err, "Failed to deliver email notification")
	}
	return s.recordOutcome(ctx, notification, models.NotificationStatusSent)
}

func (s *notificationService) recordOutcome(ctx context.Context, notification *models.Notification, status models.NotificationStatus) error {
	if err := s.notificationRepo.SetStatus(ctx, notification.ID, status); err != nil {
		return apperrors.ErrDatabase(err, "notification")
	}
	notification.Status = status
	return nil
}

// Update replaces the stored document under the given id. Delivery is not
// re-triggered.
func (s *notificationService) Update(ctx context.Context, id primitive.ObjectID, notification *models.Notification) error {
	notification.ID = id
	if err := s.notificationRepo.Replace(ctx, id, notification); err != nil {
		return apperrors.ErrDatabase(err, "notification")
	}
	return nil
}

// MarkAsRead sets isRead with a targeted field update. Idempotent.
func (s *notificationService) MarkAsRead(ctx context.Context, id primitive.ObjectID) error {
	if err := s.notificationRepo.MarkAsRead(ctx, id); err != nil {
		return apperrors.ErrDatabase(err, "notification")
	}
	return nil
}
