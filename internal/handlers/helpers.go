package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberia-app/barberia-api/internal/httperr"
)

// messages maps stable error codes to the human-readable half of the
// error envelope. Unknown codes get a generic line so storage internals
// never leak.
var messages = map[string]string{
	"barber_required":          "Barber, date and time are required.",
	"invalid_date":             "Date must be a valid YYYY-MM-DD calendar date.",
	"invalid_time":             "Time must fall on the booking grid.",
	"guest_identity_required":  "Guest name and phone are required for guest bookings.",
	"user_required":            "A registered user id is required for non-guest bookings.",
	"guest_and_user_exclusive": "A booking is either for a registered user or a guest, not both.",
	"invalid_service_item":     "Each service entry needs an id and a non-negative price.",
	"invalid_product_item":     "Each product entry needs an id and a non-negative price.",
	"invalid_status":           "Status must be one of: pending, confirmed, completed, cancelled.",
	"slot_taken":               "The barber already has a reservation at that time.",
	"barber_unavailable":       "The barber is unavailable at that time.",
	"barber_not_found":         "Barber not found.",
	"reservation_not_found":    "Reservation not found.",
	"related_resource_invalid": "A referenced resource is invalid.",
	"storage_error":            "Internal error.",
}

func writeUsecaseError(c *gin.Context, err error) {
	status, code := httperr.StatusFor(err)

	msg, ok := messages[code]
	if !ok {
		msg = "Request failed."
	}
	httperr.Write(c, status, code, msg)
}

// paramUint parses a numeric path parameter, writing the 400 itself on
// failure.
func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Path parameter "+name+" must be numeric.")
		return 0, false
	}
	return uint(v), true
}
