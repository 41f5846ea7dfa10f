package models

// DriverStatus is the lifecycle state of a driver account.
type DriverStatus string

const (
	DriverStatusActive   DriverStatus = "Active"
	DriverStatusInactive DriverStatus = "Inactive"
)

func (s DriverStatus) IsValid() bool {
	switch s {
	case DriverStatusActive, DriverStatusInactive:
		return true
	}
	return false
}

// AssignmentStatus is the lifecycle state of a delivery assignment.
// Transitions are unconstrained; any change between the stored and the
// submitted value triggers a status-change notification.
type AssignmentStatus string

const (
	AssignmentStatusPending    AssignmentStatus = "Pending"
	AssignmentStatusInProgress AssignmentStatus = "InProgress"
	AssignmentStatusCompleted  AssignmentStatus = "Completed"
	AssignmentStatusCancelled  AssignmentStatus = "Cancelled"
)

func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusPending, AssignmentStatusInProgress,
		AssignmentStatusCompleted, AssignmentStatusCancelled:
		return true
	}
	return false
}

// NotificationType is the delivery channel of a notification.
type NotificationType string

const (
	NotificationTypeEmail NotificationType = "Email"
	NotificationTypeSMS   NotificationType = "SMS"
)

func (t NotificationType) IsValid() bool {
	return t == NotificationTypeEmail || t == NotificationTypeSMS
}

// NotificationStatus is the delivery outcome of a notification.
// Once Sent or Failed it never returns to Pending.
type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "Pending"
	NotificationStatusSent    NotificationStatus = "Sent"
	NotificationStatusFailed  NotificationStatus = "Failed"
)

func (s NotificationStatus) IsValid() bool {
	switch s {
	case NotificationStatusPending, NotificationStatusSent, NotificationStatusFailed:
		return true
	}
	return false
}
