package topics

import (
	"net/http"

	"github.com/saulo-duarte/quizgen/internal/config"
)

type Handler struct {
	catalog *Catalog
	picker  Picker
}

func NewHandler(c *Catalog, p Picker) *Handler {
	return &Handler{catalog: c, picker: p}
}

type ListResponse struct {
	Topics     []string   `json:"topics"`
	Categories []Category `json:"categories"`
}

type RandomResponse struct {
	Topic string `json:"topic"`
}

// List godoc
// @Summary      List suggested topics
// @Tags         topics
// @Produce      json
// @Success      200 {object} ListResponse
// @Router       /api/topics [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, ListResponse{
		Topics:     h.catalog.All(),
		Categories: h.catalog.Categories(),
	})
}

// Random godoc
// @Summary      Pick a random topic
// @Tags         topics
// @Produce      json
// @Success      200 {object} RandomResponse
// @Router       /api/topics/random [get]
func (h *Handler) Random(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, RandomResponse{Topic: h.catalog.Random(h.picker)})
}
