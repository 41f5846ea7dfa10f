package services

import (
	"context"
	"errors"
	"testing"

	"delivery_management/internal/models"
	"delivery_management/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNotificationCreate_EmailDelivered(t *testing.T) {
	repo := &fakeNotificationRepo{}
	provider := &fakeEmailProvider{}
	svc := NewNotificationService(repo, provider)

	notification := &models.Notification{
		UserID:  "driver@example.com",
		Type:    models.NotificationTypeEmail,
		Title:   "New Delivery Assignment",
		Message: "You have been assigned a new delivery.",
	}

	err := svc.Create(context.Background(), notification)
	require.NoError(t, err)

	assert.False(t, notification.ID.IsZero())
	assert.Equal(t, models.NotificationStatusSent, notification.Status)
	assert.False(t, notification.IsRead)
	assert.False(t, notification.CreatedAt.IsZero())

	require.Len(t, repo.notifications, 1)
	assert.Equal(t, models.NotificationStatusSent, repo.notifications[0].Status)

	require.Len(t, provider.sent, 1)
	assert.Equal(t, "driver@example.com", provider.sent[0].To)
	assert.Equal(t, "New Delivery Assignment", provider.sent[0].Subject)
	assert.Equal(t, "You have been assigned a new delivery.", provider.sent[0].Body)
}

func TestNotificationCreate_EmailFailureRecordedAndRaised(t *testing.T) {
	repo := &fakeNotificationRepo{}
	provider := &fakeEmailProvider{failWith: errors.New("smtp: connection refused")}
	svc := NewNotificationService(repo, provider)

	notification := &models.Notification{
		UserID: "driver@example.com",
		Type:   models.NotificationTypeEmail,
		Title:  "Welcome to Delivery Management System",
	}

	err := svc.Create(context.Background(), notification)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeDeliveryFailed, appErr.Code)

	// The row is persisted first and then marked Failed, never rolled back.
	require.Len(t, repo.notifications, 1)
	assert.Equal(t, models.NotificationStatusFailed, repo.notifications[0].Status)
	assert.Equal(t, models.NotificationStatusFailed, notification.Status)
}

func TestNotificationCreate_SMSStubAlwaysSent(t *testing.T) {
	repo := &fakeNotificationRepo{}
	provider := &fakeEmailProvider{failWith: errors.New("smtp down")}
	svc := NewNotificationService(repo, provider)

	notification := &models.Notification{
		UserID: "+77001112233",
		Type:   models.NotificationTypeSMS,
		Title:  "Delivery Status Updated",
	}

	err := svc.Create(context.Background(), notification)
	require.NoError(t, err)

	// SMS never touches the email transport.
	assert.Empty(t, provider.sent)
	require.Len(t, repo.notifications, 1)
	assert.Equal(t, models.NotificationStatusSent, repo.notifications[0].Status)
}

func TestNotificationCreate_OverwritesCallerLifecycleFields(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, &fakeEmailProvider{})

	notification := &models.Notification{
		ID:     primitive.NewObjectID(),
		UserID: "driver@example.com",
		Type:   models.NotificationTypeEmail,
		Title:  "Hello",
		IsRead: true,
		Status: models.NotificationStatusFailed,
	}

	err := svc.Create(context.Background(), notification)
	require.NoError(t, err)

	require.Len(t, repo.notifications, 1)
	assert.False(t, repo.notifications[0].IsRead)
	assert.Equal(t, models.NotificationStatusSent, repo.notifications[0].Status)
}

func TestNotificationGet_NotFound(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationRepo{}, &fakeEmailProvider{})

	_, err := svc.Get(context.Background(), primitive.NewObjectID())
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestNotificationMarkAsRead_Idempotent(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, &fakeEmailProvider{})

	notification := &models.Notification{
		UserID: "driver@example.com",
		Type:   models.NotificationTypeEmail,
		Title:  "Hello",
	}
	require.NoError(t, svc.Create(context.Background(), notification))

	require.NoError(t, svc.MarkAsRead(context.Background(), notification.ID))
	require.NoError(t, svc.MarkAsRead(context.Background(), notification.ID))

	stored, err := svc.Get(context.Background(), notification.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsRead)
	// Marking read does not disturb the delivery outcome.
	assert.Equal(t, models.NotificationStatusSent, stored.Status)
}

func TestNotificationListByUser_FiltersRecipient(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, &fakeEmailProvider{})

	for _, to := range []string{"a@example.com", "b@example.com", "a@example.com"} {
		n := &models.Notification{UserID: to, Type: models.NotificationTypeEmail, Title: "Hi"}
		require.NoError(t, svc.Create(context.Background(), n))
	}

	got, err := svc.ListByUser(context.Background(), "a@example.com")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
