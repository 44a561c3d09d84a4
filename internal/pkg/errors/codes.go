package errors

import "net/http"

var (
	ErrVenueNotFound = New(
		"VENUE_NOT_FOUND",
		"Venue not found",
		http.StatusNotFound,
	)

	ErrFacilityNotFound = New(
		"FACILITY_NOT_FOUND",
		"Facility not found",
		http.StatusNotFound,
	)

	ErrBookingNotFound = New(
		"BOOKING_NOT_FOUND",
		"Booking not found",
		http.StatusNotFound,
	)

	ErrPageNotFound = New(
		"PAGE_NOT_FOUND",
		"Page not found",
		http.StatusNotFound,
	)

	ErrInvalidDate = New(
		"INVALID_DATE",
		"Invalid date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidLanguage = New(
		"INVALID_LANGUAGE",
		"Unsupported language",
		http.StatusBadRequest,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// Ошибки шагов мастера бронирования и входа
var (
	ErrStartDateRequired = New(
		"START_DATE_REQUIRED",
		"Please select a start date",
		http.StatusUnprocessableEntity,
	)

	ErrEndDateRequired = New(
		"END_DATE_REQUIRED",
		"Please select an end date for a multi-day event",
		http.StatusUnprocessableEntity,
	)

	ErrEndBeforeStart = New(
		"END_BEFORE_START",
		"End date cannot be before the start date",
		http.StatusUnprocessableEntity,
	)

	ErrTermsNotAccepted = New(
		"TERMS_NOT_ACCEPTED",
		"Please accept the terms and conditions",
		http.StatusUnprocessableEntity,
	)

	ErrPasswordMismatch = New(
		"PASSWORD_MISMATCH",
		"Passwords do not match",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Please enter a valid email and password",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidSession = New(
		"INVALID_SESSION",
		"Session is invalid or expired",
		http.StatusUnauthorized,
	)
)
