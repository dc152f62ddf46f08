package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"smartquote/models"
	"smartquote/services"
	"smartquote/store"
)

func HandleProfileGet(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, s.Snapshot().BusinessProfile)
	}
}

// HandleProfileSave replaces the business profile. A logo must be an image
// data URL that decodes.
func HandleProfileSave(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var profile models.BusinessProfile
		if err := e.BindBody(&profile); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid profile data")
		}

		profile.CompanyName = strings.TrimSpace(profile.CompanyName)
		if profile.CompanyName == "" {
			return ErrorToast(e, http.StatusUnprocessableEntity, "Company name is required")
		}
		if profile.Logo != "" {
			if _, err := services.PrepareLogo(profile.Logo); err != nil {
				log.Printf("profile: HandleProfileSave: logo rejected: %v", err)
				return ErrorToast(e, http.StatusBadRequest, "Logo must be a PNG or JPEG image")
			}
		}

		st, err := s.Dispatch(e.Request.Context(), store.SetBusinessProfile{Profile: profile})
		if err != nil {
			return respondError(e, "profile: HandleProfileSave", err)
		}

		SetToast(e, "success", "Business profile saved")
		return e.JSON(http.StatusOK, st.BusinessProfile)
	}
}
