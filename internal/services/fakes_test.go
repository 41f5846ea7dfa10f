package services

import (
	"context"

	"delivery_management/internal/models"
	"delivery_management/internal/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stand-ins for the mongo repositories and the SMTP provider.
// They keep insertion order and store copies, so tests can assert the
// persisted state separately from the objects the services mutate.

type fakeDriverRepo struct {
	drivers []models.Driver
}

func (f *fakeDriverRepo) FindAll(ctx context.Context) ([]models.Driver, error) {
	return append([]models.Driver{}, f.drivers...), nil
}

func (f *fakeDriverRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error) {
	for i := range f.drivers {
		if f.drivers[i].ID == id {
			d := f.drivers[i]
			return &d, nil
		}
	}
	return nil, repositories.ErrDriverNotFound
}

func (f *fakeDriverRepo) FindByEmail(ctx context.Context, email string) (*models.Driver, error) {
	for i := range f.drivers {
		if f.drivers[i].Email == email {
			d := f.drivers[i]
			return &d, nil
		}
	}
	return nil, repositories.ErrDriverNotFound
}

func (f *fakeDriverRepo) FindByStatus(ctx context.Context, status models.DriverStatus) ([]models.Driver, error) {
	matched := []models.Driver{}
	for i := range f.drivers {
		if f.drivers[i].Status == status {
			matched = append(matched, f.drivers[i])
		}
	}
	return matched, nil
}

func (f *fakeDriverRepo) Insert(ctx context.Context, driver *models.Driver) error {
	driver.ID = primitive.NewObjectID()
	f.drivers = append(f.drivers, *driver)
	return nil
}

func (f *fakeDriverRepo) Replace(ctx context.Context, id primitive.ObjectID, driver *models.Driver) error {
	for i := range f.drivers {
		if f.drivers[i].ID == id {
			f.drivers[i] = *driver
			return nil
		}
	}
	return nil
}

func (f *fakeDriverRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i := range f.drivers {
		if f.drivers[i].ID == id {
			f.drivers = append(f.drivers[:i], f.drivers[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeAssignmentRepo struct {
	assignments []models.DeliveryAssignment
}

func (f *fakeAssignmentRepo) FindAll(ctx context.Context) ([]models.DeliveryAssignment, error) {
	return append([]models.DeliveryAssignment{}, f.assignments...), nil
}

func (f *fakeAssignmentRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.DeliveryAssignment, error) {
	for i := range f.assignments {
		if f.assignments[i].ID == id {
			a := f.assignments[i]
			return &a, nil
		}
	}
	return nil, repositories.ErrAssignmentNotFound
}

func (f *fakeAssignmentRepo) FindByDriverID(ctx context.Context, driverID primitive.ObjectID) ([]models.DeliveryAssignment, error) {
	matched := []models.DeliveryAssignment{}
	for i := range f.assignments {
		if f.assignments[i].DriverID == driverID {
			matched = append(matched, f.assignments[i])
		}
	}
	return matched, nil
}

func (f *fakeAssignmentRepo) Insert(ctx context.Context, assignment *models.DeliveryAssignment) error {
	assignment.ID = primitive.NewObjectID()
	f.assignments = append(f.assignments, *assignment)
	return nil
}

func (f *fakeAssignmentRepo) Replace(ctx context.Context, id primitive.ObjectID, assignment *models.DeliveryAssignment) error {
	for i := range f.assignments {
		if f.assignments[i].ID == id {
			f.assignments[i] = *assignment
			return nil
		}
	}
	return nil
}

func (f *fakeAssignmentRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i := range f.assignments {
		if f.assignments[i].ID == id {
			f.assignments = append(f.assignments[:i], f.assignments[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeNotificationRepo struct {
	notifications []models.Notification
}

func (f *fakeNotificationRepo) FindAll(ctx context.Context) ([]models.Notification, error) {
	return append([]models.Notification{}, f.notifications...), nil
}

func (f *fakeNotificationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Notification, error) {
	for i := range f.notifications {
		if f.notifications[i].ID == id {
			n := f.notifications[i]
			return &n, nil
		}
	}
	return nil, repositories.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) FindByUserID(ctx context.Context, userID string) ([]models.Notification, error) {
	matched := []models.Notification{}
	for i := range f.notifications {
		if f.notifications[i].UserID == userID {
			matched = append(matched, f.notifications[i])
		}
	}
	return matched, nil
}

func (f *fakeNotificationRepo) Insert(ctx context.Context, notification *models.Notification) error {
	notification.ID = primitive.NewObjectID()
	f.notifications = append(f.notifications, *notification)
	return nil
}

func (f *fakeNotificationRepo) Replace(ctx context.Context, id primitive.ObjectID, notification *models.Notification) error {
	for i := range f.notifications {
		if f.notifications[i].ID == id {
			f.notifications[i] = *notification
			return nil
		}
	}
	return nil
}

func (f *fakeNotificationRepo) MarkAsRead(ctx context.Context, id primitive.ObjectID) error {
	for i := range f.notifications {
		if f.notifications[i].ID == id {
			f.notifications[i].IsRead = true
			return nil
		}
	}
	return nil
}

func (f *fakeNotificationRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status models.NotificationStatus) error {
	for i := range f.notifications {
		if f.notifications[i].ID == id {
			f.notifications[i].Status = status
			return nil
		}
	}
	return nil
}

type sentEmail struct {
	To      string
	Subject string
	Body    string
}

type fakeEmailProvider struct {
	sent     []sentEmail
	failWith error
}

func (f *fakeEmailProvider) Send(to, subject, body string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.sent = append(f.sent, sentEmail{To: to, Subject: subject, Body: body})
	return nil
}
