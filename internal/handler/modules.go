package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studycoach/studycoach/internal/models"
	"github.com/studycoach/studycoach/internal/syllabus"
)

// ModulesHandler handles syllabus browsing endpoints
type ModulesHandler struct {
	cat *syllabus.Catalog
}

func NewModulesHandler(cat *syllabus.Catalog) *ModulesHandler {
	return &ModulesHandler{cat: cat}
}

// ListModules handles GET /api/v1/modules
func (h *ModulesHandler) ListModules(w http.ResponseWriter, r *http.Request) {
	names := h.cat.Modules()
	out := make([]models.ModuleInfo, len(names))
	for i, name := range names {
		topics, _ := h.cat.Topics(name)
		out[i] = models.ModuleInfo{Name: name, Topics: len(topics)}
	}
	models.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"modules": out,
		"count":   len(out),
	})
}

// GetModule handles GET /api/v1/modules/{module_name}
func (h *ModulesHandler) GetModule(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "module_name")
	topics, ok := h.cat.Topics(name)
	if !ok {
		models.WriteError(w, http.StatusNotFound, "module not found: "+name)
		return
	}

	out := make([]models.TopicInfo, len(topics))
	for i, topic := range topics {
		out[i] = models.TopicInfo{Name: topic, Tasks: h.cat.Tasks(topic)}
	}
	models.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"module": syllabus.Normalize(name),
		"topics": out,
	})
}
