package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"

	"smartquote/models"
	"smartquote/store"
)

func HandleClientList(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clients := s.Snapshot().Clients
		if clients == nil {
			clients = []models.Client{}
		}
		return e.JSON(http.StatusOK, clients)
	}
}

func HandleClientCreate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var client models.Client
		if err := e.BindBody(&client); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid client data")
		}
		client.Name = strings.TrimSpace(client.Name)
		if client.Name == "" {
			return ErrorToast(e, http.StatusUnprocessableEntity, "Client name is required")
		}
		client.ID = uuid.NewString()

		st, err := s.Dispatch(e.Request.Context(), store.AddClient{Client: client})
		if err != nil {
			return respondError(e, "clients: HandleClientCreate", err)
		}
		saved, _ := st.Client(client.ID)

		SetToast(e, "success", "Client added")
		return e.JSON(http.StatusCreated, saved)
	}
}

// HandleClientUpdate applies the JSON body on top of the stored client.
func HandleClientUpdate(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		client, ok := s.Snapshot().Client(id)
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Client not found")
		}
		if err := e.BindBody(client); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid client data")
		}
		client.ID = id
		if strings.TrimSpace(client.Name) == "" {
			return ErrorToast(e, http.StatusUnprocessableEntity, "Client name is required")
		}

		st, err := s.Dispatch(e.Request.Context(), store.UpdateClient{Client: *client})
		if err != nil {
			return respondError(e, "clients: HandleClientUpdate", err)
		}
		saved, _ := st.Client(id)

		SetToast(e, "success", "Client updated")
		return e.JSON(http.StatusOK, saved)
	}
}

func HandleClientDelete(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if _, err := s.Dispatch(e.Request.Context(), store.DeleteClient{ID: e.Request.PathValue("id")}); err != nil {
			return respondError(e, "clients: HandleClientDelete", err)
		}
		SetToast(e, "success", "Client deleted")
		return e.NoContent(http.StatusNoContent)
	}
}
