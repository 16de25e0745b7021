package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	appErrors "github.com/unclebandit/formatkit/internal/errors"
	"github.com/unclebandit/formatkit/internal/model"
	"github.com/unclebandit/formatkit/internal/service"
)

// ListCustomerProfiles returns every stored customer keyed by id
func (h *Handler) ListCustomerProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Customers.Profiles(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, profiles)
}

// GetCustomerProfile returns one stored customer without its id
func (h *Handler) GetCustomerProfile(w http.ResponseWriter, r *http.Request) {
	id := model.CustomerID(chi.URLParam(r, "id"))

	profile, err := h.Customers.Profile(r.Context(), id)
	if err != nil {
		var notFound *appErrors.ErrCustomerNotFound
		if errors.As(err, &notFound) {
			h.writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.internalError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, profile)
}

// TransformCustomers reshapes the posted customers without storing them
func (h *Handler) TransformCustomers(w http.ResponseWriter, r *http.Request) {
	var customers []model.Customer
	if err := json.NewDecoder(r.Body).Decode(&customers); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, service.TransformCustomers(customers))
}

// ImportCustomers queues the posted customers for storage
func (h *Handler) ImportCustomers(w http.ResponseWriter, r *http.Request) {
	var customers []model.Customer
	if err := json.NewDecoder(r.Body).Decode(&customers); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	if err := h.Customers.QueueImport(customers); err != nil {
		h.internalError(w, r, err)
		return
	}

	h.Logger.Info("import accepted", zap.Int("customers", len(customers)))
	h.writeJSON(w, http.StatusAccepted, map[string]any{
		"customers_queued": len(customers),
		"status":           "queued",
	})
}
