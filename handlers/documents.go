package handlers

import (
	"net/http"
	"sort"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"

	"smartquote/models"
	"smartquote/services"
	"smartquote/store"
)

// DocumentView is a document with its computed totals.
type DocumentView struct {
	models.Document
	Totals models.DocumentTotals `json:"totals"`
}

func viewOf(d models.Document) DocumentView {
	return DocumentView{Document: d, Totals: services.DocumentTotals(d)}
}

// HandleDocumentList lists documents newest first. ?type= and ?status=
// narrow the list.
func HandleDocumentList(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		docType := models.DocumentType(e.Request.URL.Query().Get("type"))
		status := models.DocumentStatus(e.Request.URL.Query().Get("status"))

		docs := s.Snapshot().Documents
		views := make([]DocumentView, 0, len(docs))
		for _, d := range docs {
			if docType != "" && d.Type != docType {
				continue
			}
			if status != "" && d.Status != status {
				continue
			}
			views = append(views, viewOf(d))
		}
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].CreatedAt.After(views[j].CreatedAt)
		})
		return e.JSON(http.StatusOK, views)
	}
}

func HandleDocumentGet(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		doc, ok := s.Snapshot().Document(e.Request.PathValue("id"))
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Document not found")
		}
		return e.JSON(http.StatusOK, viewOf(doc))
	}
}

// HandleDocumentCreate stores a new quotation or invoice. The business
// profile, the client and at least one line item must be present.
func HandleDocumentCreate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var doc models.Document
		if err := e.BindBody(&doc); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid document data")
		}

		st := s.Snapshot()
		client, _ := st.Client(doc.ClientID)
		if err := services.ValidateForSave(st.BusinessProfile, client, doc); err != nil {
			return respondError(e, "documents: HandleDocumentCreate", err)
		}

		doc.ID = uuid.NewString()
		doc.DocumentNumber = ""
		doc.AIRecommendation = nil
		doc.TeamMembers = nil

		next, err := s.Dispatch(e.Request.Context(), store.AddDocument{Document: doc})
		if err != nil {
			return respondError(e, "documents: HandleDocumentCreate", err)
		}
		saved, _ := next.Document(doc.ID)

		label := "Quotation"
		if saved.Type == models.DocumentInvoice {
			label = "Invoice"
		}
		SetToast(e, "success", label+" "+saved.DocumentNumber+" created")
		return e.JSON(http.StatusCreated, viewOf(saved))
	}
}

// HandleDocumentUpdate binds the body onto the stored document, so fields
// the client leaves out keep their values.
func HandleDocumentUpdate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		st := s.Snapshot()
		doc, ok := st.Document(id)
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Document not found")
		}
		if err := e.BindBody(&doc); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid document data")
		}
		doc.ID = id

		client, _ := st.Client(doc.ClientID)
		if err := services.ValidateForSave(st.BusinessProfile, client, doc); err != nil {
			return respondError(e, "documents: HandleDocumentUpdate", err)
		}

		next, err := s.Dispatch(e.Request.Context(), store.UpdateDocument{Document: doc})
		if err != nil {
			return respondError(e, "documents: HandleDocumentUpdate", err)
		}
		saved, _ := next.Document(id)

		SetToast(e, "success", "Document saved")
		return e.JSON(http.StatusOK, viewOf(saved))
	}
}

func HandleDocumentDelete(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if _, err := s.Dispatch(e.Request.Context(), store.DeleteDocument{ID: e.Request.PathValue("id")}); err != nil {
			return respondError(e, "documents: HandleDocumentDelete", err)
		}
		SetToast(e, "success", "Document deleted")
		return e.NoContent(http.StatusNoContent)
	}
}

// HandleNextInvoiceNumber previews the number the next invoice will get.
func HandleNextInvoiceNumber(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, map[string]string{"documentNumber": s.NextInvoiceNumber()})
	}
}
