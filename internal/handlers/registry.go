package handlers

// AppHandlers groups the constructed handlers for route registration.
type AppHandlers struct {
	DriverHandler             *DriverHandler
	DeliveryAssignmentHandler *DeliveryAssignmentHandler
	NotificationHandler       *NotificationHandler
}
