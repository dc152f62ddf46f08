package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"

	"smartquote/models"
	"smartquote/store"
)

func HandleRateList(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		presets := s.Snapshot().RatePresets
		if presets == nil {
			presets = []models.RatePreset{}
		}
		return e.JSON(http.StatusOK, presets)
	}
}

func validatePreset(p models.RatePreset) string {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return "Preset name is required"
	case p.HourlyRate < 0:
		return "Hourly rate must not be negative"
	}
	return ""
}

func HandleRateCreate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var preset models.RatePreset
		if err := e.BindBody(&preset); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid rate preset data")
		}
		if msg := validatePreset(preset); msg != "" {
			return ErrorToast(e, http.StatusUnprocessableEntity, msg)
		}
		if preset.Role == "" {
			preset.Role = models.RoleOther
		}
		if preset.Currency == "" {
			preset.Currency = "USD"
		}
		preset.ID = uuid.NewString()

		st, err := s.Dispatch(e.Request.Context(), store.AddRatePreset{Preset: preset})
		if err != nil {
			return respondError(e, "rates: HandleRateCreate", err)
		}
		saved, _ := st.RatePreset(preset.ID)

		SetToast(e, "success", "Rate preset added")
		return e.JSON(http.StatusCreated, saved)
	}
}

func HandleRateUpdate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		preset, ok := s.Snapshot().RatePreset(id)
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Rate preset not found")
		}
		if err := e.BindBody(&preset); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid rate preset data")
		}
		preset.ID = id
		if msg := validatePreset(preset); msg != "" {
			return ErrorToast(e, http.StatusUnprocessableEntity, msg)
		}

		st, err := s.Dispatch(e.Request.Context(), store.UpdateRatePreset{Preset: preset})
		if err != nil {
			return respondError(e, "rates: HandleRateUpdate", err)
		}
		saved, _ := st.RatePreset(id)

		SetToast(e, "success", "Rate preset updated")
		return e.JSON(http.StatusOK, saved)
	}
}

func HandleRateDelete(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if _, err := s.Dispatch(e.Request.Context(), store.DeleteRatePreset{ID: e.Request.PathValue("id")}); err != nil {
			return respondError(e, "rates: HandleRateDelete", err)
		}
		SetToast(e, "success", "Rate preset deleted")
		return e.NoContent(http.StatusNoContent)
	}
}
