package handler

import (
	"net/http"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
)

// ServicesHandler serves the static service catalogue.
type ServicesHandler struct{}

// NewServicesHandler creates a new ServicesHandler.
func NewServicesHandler() *ServicesHandler {
	return &ServicesHandler{}
}

type serviceListItem struct {
	Key   model.ServiceKey `json:"key"`
	Label string           `json:"label"`
}

// List returns the seven catalogued service keys plus the "all" selector.
// GET /api/v1/services
func (h *ServicesHandler) List(w http.ResponseWriter, _ *http.Request) {
	items := make([]serviceListItem, 0, len(model.Services)+1)
	for _, svc := range model.Services {
		items = append(items, serviceListItem{Key: svc.Key, Label: svc.Label})
	}
	items = append(items, serviceListItem{Key: model.ServiceAll, Label: "Todos los servicios"})

	respondJSON(w, http.StatusOK, map[string]any{"services": items})
}
