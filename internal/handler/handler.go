// internal/handler/handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/unclebandit/formatkit/internal/service"
)

// Handler holds the dependencies for the HTTP surface
type Handler struct {
	Customers *service.CustomerService
	Logger    *zap.Logger
}

// NewHandler creates a Handler; a nil logger discards output.
func NewHandler(customers *service.CustomerService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Customers: customers, Logger: logger}
}

// Routes mounts every endpoint on a fresh chi router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", h.ListCustomerProfiles)
		r.Post("/transform", h.TransformCustomers)
		r.Post("/import", h.ImportCustomers)
		r.Get("/{id}", h.GetCustomerProfile)
	})

	r.Route("/numbers", func(r chi.Router) {
		r.Get("/beautify", h.Beautify)
		r.Get("/round", h.Round)
		r.Get("/trim-zeros", h.TrimZeros)
		r.Get("/sign", h.Sign)
	})

	r.Post("/css/transform", h.CSSTransform)
	r.Get("/colors/contrast", h.ColorContrast)
	r.Post("/labels", h.Labels)

	return r
}

// writeJSON marshals v before writing the header. A value that cannot be
// encoded is logged and answered with a 500.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		h.Logger.Error("encode response", zap.Int("status", status), zap.Error(err))
		status = http.StatusInternalServerError
		body, _ = json.Marshal(map[string]string{"error": "failed to encode response"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.Logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	h.writeError(w, http.StatusInternalServerError, err.Error())
}
