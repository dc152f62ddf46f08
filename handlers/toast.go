package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"smartquote/llm"
	"smartquote/services"
	"smartquote/store"
)

// SetToast sets the HX-Trigger response header to show a toast notification
// on the client via HTMX. If an HX-Trigger header already exists, the toast
// payload is merged into the existing JSON object.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	trigger := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &trigger); err != nil {
			log.Printf("toast: existing HX-Trigger is not valid JSON, overwriting: %v", err)
			trigger = map[string]any{}
		}
	}
	trigger["showToast"] = map[string]string{
		"message": message,
		"type":    toastType,
	}

	data, err := json.Marshal(trigger)
	if err != nil {
		log.Printf("toast: failed to marshal HX-Trigger JSON: %v", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))
}

// ErrorToast sets an error toast and answers with a JSON {"error": message}
// body. HX-Reswap: none keeps HTMX from swapping the body into the page.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	toastType := "error"
	if statusCode == http.StatusUnprocessableEntity {
		toastType = "warning"
	}
	SetToast(e, toastType, message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.JSON(statusCode, map[string]string{"error": message})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case services.IsInputIncomplete(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrInvalidDiscount),
		errors.Is(err, store.ErrInvalidLineItem),
		errors.Is(err, store.ErrInvalidStatus),
		errors.Is(err, services.ErrUnknownExportFormat),
		errors.Is(err, services.ErrInvalidDataURL),
		errors.Is(err, llm.ErrUnknownProvider):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// respondError logs err under where and answers through ErrorToast. Server
// errors get a generic message; client errors echo the error text.
func respondError(e *core.RequestEvent, where string, err error) error {
	status := statusFor(err)
	log.Printf("%s: %v", where, err)
	if status == http.StatusInternalServerError {
		return ErrorToast(e, status, "Something went wrong, please try again")
	}
	return ErrorToast(e, status, err.Error())
}

func isHTMX(e *core.RequestEvent) bool {
	return e.Request.Header.Get("HX-Request") == "true"
}
