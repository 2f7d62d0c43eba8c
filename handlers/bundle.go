package handlers

// HandlerBundle groups the handlers routes are registered with.
type HandlerBundle struct {
	Booking *BookingHandler
	Service *ServiceHandler
}
