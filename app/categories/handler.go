package categories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/judgekit/team-fixtures/internal/logger"
	"github.com/judgekit/team-fixtures/models"
)

type CategoryResponse struct {
	Name                  string `json:"name"`
	SortOrder             int    `json:"sort_order"`
	Color                 string `json:"color,omitempty"`
	Visible               bool   `json:"visible"`
	AllowSelfRegistration bool   `json:"allow_self_registration"`
}

type CategoryProvider interface {
	GetAll(ctx context.Context) ([]models.TeamCategory, error)
	GetSelfRegistration(ctx context.Context) ([]models.TeamCategory, error)
	Create(ctx context.Context, category *models.TeamCategory) error
}

type CategoryHandler struct {
	repo CategoryProvider
	log  *logger.Logger
}

func NewCategoryHandler(r CategoryProvider, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{repo: r, log: log.WithComponent("categories")}
}

// HandleGetAll lists team categories. With ?self_registration=true only the
// categories open for self-registration are returned.
func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	selfRegistration := false
	if s := r.URL.Query().Get("self_registration"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			writeError(w, "Invalid self_registration value", http.StatusBadRequest)
			return
		}
		selfRegistration = v
	}

	var (
		categories []models.TeamCategory
		err        error
	)
	if selfRegistration {
		categories, err = h.repo.GetSelfRegistration(r.Context())
	} else {
		categories, err = h.repo.GetAll(r.Context())
	}
	if err != nil {
		writeError(w, "failed to fetch categories", http.StatusInternalServerError)
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{
			Name:                  c.Name,
			SortOrder:             c.SortOrder,
			Color:                 c.Color,
			Visible:               c.Visible,
			AllowSelfRegistration: c.AllowSelfRegistration,
		}
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name                  string `json:"name"`
		SortOrder             int    `json:"sort_order"`
		Color                 string `json:"color"`
		Visible               *bool  `json:"visible"`
		AllowSelfRegistration bool   `json:"allow_self_registration"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		writeError(w, "Missing name", http.StatusBadRequest)
		return
	}

	category := &models.TeamCategory{
		Name:                  name,
		SortOrder:             input.SortOrder,
		Color:                 input.Color,
		Visible:               input.Visible == nil || *input.Visible,
		AllowSelfRegistration: input.AllowSelfRegistration,
	}

	if err := h.repo.Create(r.Context(), category); err != nil {
		if errors.Is(err, models.ErrTeamCategoryExists) {
			writeError(w, "Category already exists", http.StatusConflict)
			return
		}
		writeError(w, "Failed to create category", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Category created successfully",
	})
}

// writeJSON can only log encoding failures: the status line is already sent.
func (h *CategoryHandler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Warn("Failed to encode response", map[string]interface{}{
			logger.FieldError: err.Error(),
		})
	}
}

func writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
