package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/Huseelk/cinema-booking-app/api"
	"github.com/Huseelk/cinema-booking-app/internal/domain"
	appvalidator "github.com/Huseelk/cinema-booking-app/internal/validator"
)

const (
	ErrInternalServer = "The server encountered a problem and could not process your request"
	ErrStoreDown      = "The resource store is currently unavailable"
)

func (app *application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.contextGetLogger(r).Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "The requested resource not found"
	app.errorResponse(w, r, http.StatusNotFound, message)
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// badGatewayResponse reports a failed call to the resource store. The wrapped
// cause stays in the logs; clients only see the store-provided message.
func (app *application) badGatewayResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	message := ErrStoreDown

	var gatewayErr *domain.GatewayError
	if errors.As(err, &gatewayErr) && gatewayErr.Message != "" {
		message = gatewayErr.Message
	}

	app.errorResponse(w, r, http.StatusBadGateway, message)
}

func (app *application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		app.serverErrorResponse(w, r, err)
		return
	}

	validationErrors := make([]api.ValidationError, len(fieldErrors))
	for i, fe := range fieldErrors {
		validationErrors[i] = api.ValidationError{
			Field: fe.Field(),
			Issue: appvalidator.ValidationMessage(fe),
		}
	}

	resp := api.ValidationErrorResponse{
		Message:          "The request contains invalid fields",
		ValidationErrors: validationErrors,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
	}

	err = app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

// handleDomainError maps core/gateway errors onto the HTTP taxonomy:
// invalid input → 400, missing record → 404, anything else → 502.
func (app *application) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case domain.IsInvalidInput(err):
		app.badRequestResponse(w, r, err)
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	default:
		app.badGatewayResponse(w, r, err)
	}
}
