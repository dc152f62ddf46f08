package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"smartquote/models"
	"smartquote/pricing"
	"smartquote/store"
	"smartquote/templates"
)

// recommend validates input and runs the engine with the user's provider
// settings. It never fails once input is valid: provider errors fall back to
// the algorithmic estimate inside the engine.
func recommend(e *core.RequestEvent, s *store.Store, engine *pricing.Engine, input models.ProjectInput) (models.Recommendation, error) {
	if err := input.Validate(); err != nil {
		return models.Recommendation{}, err
	}
	return engine.WithAIConfig(s.Snapshot().AIConfig).Recommend(e.Request.Context(), input), nil
}

func renderRecommendation(e *core.RequestEvent, rec models.Recommendation) error {
	e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	return templates.RecommendationCard(rec).Render(e.Request.Context(), e.Response)
}

// HandleRecommend returns a pricing recommendation for a project description.
func HandleRecommend(s *store.Store, engine *pricing.Engine) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var input models.ProjectInput
		if err := e.BindBody(&input); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid project data")
		}

		rec, err := recommend(e, s, engine, input)
		if err != nil {
			return respondError(e, "pricing: HandleRecommend", err)
		}

		if isHTMX(e) {
			return renderRecommendation(e, rec)
		}
		return e.JSON(http.StatusOK, rec)
	}
}

type attachRecommendationRequest struct {
	Input           models.ProjectInput `json:"input"`
	AppendBreakdown bool                `json:"appendBreakdown"`
}

// HandleAttachRecommendation prices a project and stores the result on a
// document, optionally adding the breakdown as line items.
func HandleAttachRecommendation(s *store.Store, engine *pricing.Engine) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if _, ok := s.Snapshot().Document(id); !ok {
			return ErrorToast(e, http.StatusNotFound, "Document not found")
		}

		var req attachRecommendationRequest
		if err := e.BindBody(&req); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid project data")
		}

		rec, err := recommend(e, s, engine, req.Input)
		if err != nil {
			return respondError(e, "pricing: HandleAttachRecommendation", err)
		}

		st, err := s.Dispatch(e.Request.Context(), store.AttachRecommendation{
			DocumentID:      id,
			Recommendation:  rec,
			AppendBreakdown: req.AppendBreakdown,
		})
		if err != nil {
			return respondError(e, "pricing: HandleAttachRecommendation", err)
		}
		doc, _ := st.Document(id)

		SetToast(e, "success", "Recommendation added to "+doc.DocumentNumber)
		if isHTMX(e) {
			return renderRecommendation(e, rec)
		}
		return e.JSON(http.StatusOK, viewOf(doc))
	}
}
