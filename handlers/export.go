package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"smartquote/services"
	"smartquote/store"
)

// HandleDocumentExport renders a document as PDF or Excel and sends it as a
// download. The format comes from the {format} path segment.
func HandleDocumentExport(s *store.Store, layout services.PDFLayout) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		format := e.Request.PathValue("format")

		exporter, err := services.ExporterFor(format, layout)
		if err != nil {
			return respondError(e, "export: HandleDocumentExport", err)
		}

		st := s.Snapshot()
		doc, ok := st.Document(id)
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Document not found")
		}
		client, _ := st.Client(doc.ClientID)

		data, err := services.BuildDocumentExportData(st.BusinessProfile, client, doc)
		if err != nil {
			return respondError(e, "export: HandleDocumentExport", err)
		}

		out, err := exporter.Export(data)
		if err != nil {
			log.Printf("export: HandleDocumentExport: %s for %s: %v", format, id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate export file")
		}

		e.Response.Header().Set("Content-Type", exporter.ContentType())
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, data.Filename(exporter.Extension())))
		e.Response.Write(out)
		return nil
	}
}
