package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	appErrors "github.com/unclebandit/formatkit/internal/errors"
	"github.com/unclebandit/formatkit/internal/format"
	"github.com/unclebandit/formatkit/internal/hexcolor"
	"github.com/unclebandit/formatkit/internal/sequence"
)

// Beautify groups the digits of ?value. A missing value yields a null result.
func (h *Handler) Beautify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	separator := format.DefaultSeparator
	if q.Has("separator") {
		separator = q.Get("separator")
	}

	var value any
	if q.Has("value") {
		value = q.Get("value")
	}

	var result *string
	if s, ok := format.BeautifulNumberWith(value, separator); ok {
		result = &s
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"result": result})
}

func (h *Handler) Round(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	value, err := strconv.ParseFloat(q.Get("value"), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		h.writeError(w, http.StatusBadRequest, "invalid value")
		return
	}

	accuracy := format.DefaultAccuracy
	if s := q.Get("accuracy"); s != "" {
		if accuracy, err = strconv.Atoi(s); err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid accuracy")
			return
		}
	}
	result := format.Round(value, accuracy)
	if math.IsNaN(result) || math.IsInf(result, 0) {
		h.writeError(w, http.StatusUnprocessableEntity, "result is not a finite number")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"result": result})
}

func (h *Handler) TrimZeros(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"result": format.RemoveFirstZeros(r.URL.Query().Get("value"))})
}

// Sign adds (?op=add) or removes (?op=remove) a leading plus.
func (h *Handler) Sign(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	value := q.Get("value")

	var result string
	switch q.Get("op") {
	case "add":
		result = format.AddPlus(value)
	case "remove":
		result = format.RemovePlus(value)
	default:
		h.writeError(w, http.StatusBadRequest, "op must be add or remove")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"result": result})
}

func (h *Handler) CSSTransform(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Transform string `json:"transform"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	h.writeJSON(w, http.StatusOK, format.TransformFromCSS(body.Transform))
}

func (h *Handler) ColorContrast(w http.ResponseWriter, r *http.Request) {
	color := r.URL.Query().Get("color")

	rgb, err := hexcolor.Hex2RGB(color)
	if err != nil {
		var invalid *appErrors.ErrInvalidColor
		if errors.As(err, &invalid) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.internalError(w, r, err)
		return
	}

	value := hexcolor.ContrastValue(rgb)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"rgb":            rgb,
		"contrast_value": value,
		"contrast_type":  hexcolor.ContrastType(value),
	})
}

// Labels renders "value_index" for each posted scalar. Objects and arrays
// are rejected since their text form is not meaningful as a label.
func (h *Handler) Labels(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Values []any `json:"values"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	for i, v := range body.Values {
		switch v.(type) {
		case map[string]any, []any:
			h.writeError(w, http.StatusBadRequest, fmt.Sprintf("values[%d] must be a string, number, boolean or null", i))
			return
		}
	}
	h.writeJSON(w, http.StatusOK, sequence.Labels(body.Values))
}
