package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"delivery_management/internal/models"
	"delivery_management/internal/services/dto"
	"delivery_management/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type assignmentFixture struct {
	driverRepo       *fakeDriverRepo
	assignmentRepo   *fakeAssignmentRepo
	notificationRepo *fakeNotificationRepo
	provider         *fakeEmailProvider
	drivers          DriverService
	assignments      DeliveryAssignmentService
}

func newAssignmentFixture() *assignmentFixture {
	f := &assignmentFixture{
		driverRepo:       &fakeDriverRepo{},
		assignmentRepo:   &fakeAssignmentRepo{},
		notificationRepo: &fakeNotificationRepo{},
		provider:         &fakeEmailProvider{},
	}
	notificationSvc := NewNotificationService(f.notificationRepo, f.provider)
	f.drivers = NewDriverService(f.driverRepo, notificationSvc)
	f.assignments = NewDeliveryAssignmentService(f.assignmentRepo, f.drivers, notificationSvc)
	return f
}

func (f *assignmentFixture) createDriver(t *testing.T, name, email string) *models.Driver {
	t.Helper()
	driver, err := f.drivers.Create(context.Background(), &dto.CreateDriverRequest{
		Name: name, Email: email, PhoneNumber: "+1234567890", LicenseNumber: "DL-1",
	})
	require.NoError(t, err)
	return driver
}

func TestAssignmentCreate_EmptyOrdersRejectedBeforeWrite(t *testing.T) {
	f := newAssignmentFixture()
	driver := f.createDriver(t, "John Smith", "john@example.com")

	_, err := f.assignments.Create(context.Background(), &dto.CreateDeliveryAssignmentRequest{
		DeliveryID: "DEL-001",
		DriverID:   driver.ID.Hex(),
		OrderIDs:   []string{},
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	assert.Empty(t, f.assignmentRepo.assignments)
	assert.Len(t, f.notificationRepo.notifications, 1) // welcome only
}

func TestAssignmentCreate_UnknownDriverRejectedBeforeWrite(t *testing.T) {
	f := newAssignmentFixture()

	_, err := f.assignments.Create(context.Background(), &dto.CreateDeliveryAssignmentRequest{
		DeliveryID: "DEL-001",
		DriverID:   primitive.NewObjectID().Hex(),
		OrderIDs:   []string{"ORD-1"},
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	assert.Empty(t, f.assignmentRepo.assignments)
	assert.Empty(t, f.notificationRepo.notifications)
}

func TestAssignmentCreate_ForcesPendingAndNotifiesDriver(t *testing.T) {
	f := newAssignmentFixture()
	driver := f.createDriver(t, "John Smith", "john@example.com")

	eta := time.Now().UTC().Add(4 * time.Hour)
	assignment, err := f.assignments.Create(context.Background(), &dto.CreateDeliveryAssignmentRequest{
		DeliveryID:            "DEL-001",
		DriverID:              driver.ID.Hex(),
		OrderIDs:              []string{"ORD-1", "ORD-2"},
		Status:                "Completed", // ignored
		EstimatedDeliveryTime: eta,
		Notes:                 "Fragile",
	})
	require.NoError(t, err)

	assert.False(t, assignment.ID.IsZero())
	assert.Equal(t, models.AssignmentStatusPending, assignment.Status)
	assert.Equal(t, driver.ID, assignment.DriverID)
	assert.False(t, assignment.AssignedDate.IsZero())
	require.Len(t, f.assignmentRepo.assignments, 1)

	// Welcome plus the assignment email to the driver's address.
	require.Len(t, f.notificationRepo.notifications, 2)
	notice := f.notificationRepo.notifications[1]
	assert.Equal(t, "john@example.com", notice.UserID)
	assert.Equal(t, "New Delivery Assignment", notice.Title)
	assert.Equal(t, "DEL-001", notice.DeliveryID)
	assert.Equal(t, models.NotificationStatusSent, notice.Status)
	assert.Contains(t, notice.Message, "ORD-1, ORD-2")
}

func TestAssignmentCreate_SendFailureSurfacesButAssignmentKept(t *testing.T) {
	f := newAssignmentFixture()
	driver := f.createDriver(t, "John Smith", "john@example.com")
	f.provider.failWith = errors.New("smtp down")

	_, err := f.assignments.Create(context.Background(), &dto.CreateDeliveryAssignmentRequest{
		DeliveryID: "DEL-001",
		DriverID:   driver.ID.Hex(),
		OrderIDs:   []string{"ORD-1"},
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeDeliveryFailed, appErr.Code)

	// The assignment write is already committed when the send fails.
	assert.Len(t, f.assignmentRepo.assignments, 1)
	require.Len(t, f.notificationRepo.notifications, 2)
	assert.Equal(t, models.NotificationStatusFailed, f.notificationRepo.notifications[1].Status)
}

func TestAssignmentUpdate_StatusChangeSendsSingleNotice(t *testing.T) {
	f := newAssignmentFixture()
	driver := f.createDriver(t, "John Smith", "john@example.com")

	assignment, err := f.assignments.Create(context.Background(), &dto.CreateDeliveryAssignmentRequest{
		DeliveryID: "DEL-001", DriverID: driver.ID.Hex(), OrderIDs: []string{"ORD-1"},
	})
	require.NoError(t, err)

	updated, err := f.assignments.Update(context.Background(), assignment.ID, &dto.UpdateDeliveryAssignmentRequest{
		DeliveryID: "DEL-001", DriverID: driver.ID.Hex(),
		OrderIDs: []string{"ORD-1"}, Status: "InProgress",
	})
	require.NoError(t, err)

	assert.Equal(t, models.AssignmentStatusInProgress, updated.Status)
	assert.Equal(t, assignment.AssignedDate, updated.AssignedDate)

	// Welcome, assignment email, then exactly one status-change notice.
	require.Len(t, f.notificationRepo.notifications, 3)
	notice := f.notificationRepo.notifications[2]
	assert.Equal(t, "Delivery Status Updated", notice.Title)
	assert.Contains(t, notice.Message, "InProgress")
}

func TestAssignmentUpdate_SameStatusNoNotice(t *testing.T) {
	f := newAssignmentFixture()
	driver := f.createDriver(t, "John Smith", "john@example.com")

	assignment, err := f.assignments.Create(context.Background(), &dto.CreateDeliveryAssignmentRequest{
		DeliveryID: "DEL-001", DriverID: driver.ID.Hex(), OrderIDs: []string{"ORD-1"},
	})
	require.NoError(t, err)

	_, err = f.assignments.Update(context.Background(), assignment.ID, &dto.UpdateDeliveryAssignmentRequest{
		DeliveryID: "DEL-001", DriverID: driver.ID.Hex(),
		OrderIDs: []string{"ORD-1", "ORD-2"}, Status: "Pending",
	})
	require.NoError(t, err)

	assert.Len(t, f.notificationRepo.notifications, 2)
	require.Len(t, f.assignmentRepo.assignments, 1)
	assert.Equal(t, []string{"ORD-1", "ORD-2"}, f.assignmentRepo.assignments[0].OrderIDs)
}

func TestAssignmentUpdate_EmptyOrdersRejected(t *testing.T) {
	f := newAssignmentFixture()
	driver := f.createDriver(t, "John Smith", "john@example.com")

	assignment, err := f.assignments.Create(context.Background(), &dto.CreateDeliveryAssignmentRequest{
		DeliveryID: "DEL-001", DriverID: driver.ID.Hex(), OrderIDs: []string{"ORD-1"},
	})
	require.NoError(t, err)

	_, err = f.assignments.Update(context.Background(), assignment.ID, &dto.UpdateDeliveryAssignmentRequest{
		DeliveryID: "DEL-001", DriverID: driver.ID.Hex(), OrderIDs: nil, Status: "Pending",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	assert.Equal(t, []string{"ORD-1"}, f.assignmentRepo.assignments[0].OrderIDs)
}

func TestAssignmentRemove_DeletesDespiteMissingDriver(t *testing.T) {
	f := newAssignmentFixture()
	driver := f.createDriver(t, "John Smith", "john@example.com")

	assignment, err := f.assignments.Create(context.Background(), &dto.CreateDeliveryAssignmentRequest{
		DeliveryID: "DEL-001", DriverID: driver.ID.Hex(), OrderIDs: []string{"ORD-1"},
	})
	require.NoError(t, err)

	// Driver disappears before the assignment is removed.
	require.NoError(t, f.drivers.Remove(context.Background(), driver.ID))
	noticesBefore := len(f.notificationRepo.notifications)

	require.NoError(t, f.assignments.Remove(context.Background(), assignment.ID))

	assert.Empty(t, f.assignmentRepo.assignments)
	// No recipient to notify, so no cancellation notice was recorded.
	assert.Len(t, f.notificationRepo.notifications, noticesBefore)
}

func TestAssignmentRemove_DeletesDespiteFailedNotice(t *testing.T) {
	f := newAssignmentFixture()
	driver := f.createDriver(t, "John Smith", "john@example.com")

	assignment, err := f.assignments.Create(context.Background(), &dto.CreateDeliveryAssignmentRequest{
		DeliveryID: "DEL-001", DriverID: driver.ID.Hex(), OrderIDs: []string{"ORD-1"},
	})
	require.NoError(t, err)

	f.provider.failWith = errors.New("smtp down")
	require.NoError(t, f.assignments.Remove(context.Background(), assignment.ID))

	assert.Empty(t, f.assignmentRepo.assignments)
	notice := f.notificationRepo.notifications[len(f.notificationRepo.notifications)-1]
	assert.Equal(t, "Delivery Assignment Cancelled", notice.Title)
	assert.Equal(t, models.NotificationStatusFailed, notice.Status)
}

func TestAssignmentRemove_MissingAssignmentIsNoError(t *testing.T) {
	f := newAssignmentFixture()
	require.NoError(t, f.assignments.Remove(context.Background(), primitive.NewObjectID()))
}

// Full lifecycle: register a driver, assign a delivery, progress it to
// completion, then remove it, checking the notification trail at each step.
func TestAssignmentLifecycle(t *testing.T) {
	f := newAssignmentFixture()
	ctx := context.Background()

	driver := f.createDriver(t, "John Smith", "john@example.com")

	assignment, err := f.assignments.Create(ctx, &dto.CreateDeliveryAssignmentRequest{
		DeliveryID: "DEL-2024-001",
		DriverID:   driver.ID.Hex(),
		OrderIDs:   []string{"ORD-100", "ORD-101"},
	})
	require.NoError(t, err)

	for _, status := range []string{"InProgress", "Completed"} {
		_, err = f.assignments.Update(ctx, assignment.ID, &dto.UpdateDeliveryAssignmentRequest{
			DeliveryID: "DEL-2024-001", DriverID: driver.ID.Hex(),
			OrderIDs: []string{"ORD-100", "ORD-101"}, Status: status,
		})
		require.NoError(t, err)
	}

	require.NoError(t, f.assignments.Remove(ctx, assignment.ID))

	titles := make([]string, 0, len(f.notificationRepo.notifications))
	for _, n := range f.notificationRepo.notifications {
		titles = append(titles, n.Title)
	}
	assert.Equal(t, []string{
		"Welcome to Delivery Management System",
		"New Delivery Assignment",
		"Delivery Status Updated",
		"Delivery Status Updated",
		"Delivery Assignment Cancelled",
	}, titles)

	for _, n := range f.notificationRepo.notifications {
		assert.Equal(t, "john@example.com", n.UserID)
		assert.Equal(t, models.NotificationStatusSent, n.Status)
	}
	assert.Empty(t, f.assignmentRepo.assignments)
}
