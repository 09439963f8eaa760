package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/varun021/Health-Tracker/internal/app/ds"

	"github.com/gin-gonic/gin"
)

// GET /api/symptoms?query=
func (h *Handler) ApiListSymptoms(ctx *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(ctx.Query("query")))

	var (
		list []ds.Symptom
		err  error
	)
	if query != "" {
		list, err = h.Repository.SearchSymptoms(query)
	} else {
		list, err = h.Repository.GetSymptoms()
	}
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list, int64(len(list)), gin.H{"query": query})
}

// GET /api/symptoms/:id
func (h *Handler) ApiGetSymptom(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	s, err := h.Repository.GetSymptom(uint(id))
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, err)
		return
	}
	jsonResponse(ctx, s, 1, gin.H{"id": id})
}

// POST /api/symptoms
func (h *Handler) ApiCreateSymptom(ctx *gin.Context) {
	var req ds.Symptom
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	req.ID = 0
	if err := h.Repository.CreateSymptom(&req); err != nil {
		if strings.Contains(err.Error(), "23505") || strings.Contains(strings.ToLower(err.Error()), "unique") {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "symptom name must be unique"})
			return
		}
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, req, 1, gin.H{})
}

// PUT /api/symptoms/:id
func (h *Handler) ApiUpdateSymptom(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	type bodyT struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	var body bodyT
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	fields := map[string]interface{}{}
	if body.Name != nil {
		fields["name"] = *body.Name
	}
	if body.Description != nil {
		fields["description"] = *body.Description
	}
	if len(fields) > 0 {
		if err := h.Repository.UpdateSymptom(uint(id), fields); err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
	}
	updated, err := h.Repository.GetSymptom(uint(id))
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, err)
		return
	}
	jsonResponse(ctx, updated, 1, gin.H{"id": id})
}

// GET /api/diseases
func (h *Handler) ApiListDiseases(ctx *gin.Context) {
	list, err := h.Repository.GetDiseases()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list, int64(len(list)), gin.H{})
}

// GET /api/diseases/:id — disease with its weighted symptom profile
func (h *Handler) ApiGetDisease(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	disease, err := h.Repository.GetDisease(uint(id))
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, err)
		return
	}
	associations, err := h.Repository.GetDiseaseSymptomsFor(uint(id))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, gin.H{
		"disease":  disease,
		"symptoms": associations,
	}, 1, gin.H{"id": id})
}

// POST /api/diseases
func (h *Handler) ApiCreateDisease(ctx *gin.Context) {
	var req ds.Disease
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	req.ID = 0
	if err := h.Repository.CreateDisease(&req); err != nil {
		if strings.Contains(err.Error(), "23505") || strings.Contains(strings.ToLower(err.Error()), "unique") {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "disease name must be unique"})
			return
		}
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, req, 1, gin.H{})
}

// PUT /api/diseases/:id
func (h *Handler) ApiUpdateDisease(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	type bodyT struct {
		Name          *string `json:"name"`
		Description   *string `json:"description"`
		LifestyleTips *string `json:"lifestyle_tips"`
		DietAdvice    *string `json:"diet_advice"`
		MedicalAdvice *string `json:"medical_advice"`
	}
	var body bodyT
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	fields := map[string]interface{}{}
	if body.Name != nil {
		fields["name"] = *body.Name
	}
	if body.Description != nil {
		fields["description"] = *body.Description
	}
	if body.LifestyleTips != nil {
		fields["lifestyle_tips"] = *body.LifestyleTips
	}
	if body.DietAdvice != nil {
		fields["diet_advice"] = *body.DietAdvice
	}
	if body.MedicalAdvice != nil {
		fields["medical_advice"] = *body.MedicalAdvice
	}
	if len(fields) > 0 {
		if err := h.Repository.UpdateDisease(uint(id), fields); err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
	}
	updated, err := h.Repository.GetDisease(uint(id))
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, err)
		return
	}
	jsonResponse(ctx, updated, 1, gin.H{"id": id})
}

// PUT /api/diseases/:id/symptoms/:symptomId — upsert the weight of a pair.
// The classifier vocabulary is unaffected; weights only feed the rule
// matcher and the next training run.
func (h *Handler) ApiSetDiseaseSymptomWeight(ctx *gin.Context) {
	diseaseID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	symptomID, err := strconv.ParseUint(ctx.Param("symptomId"), 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	type bodyT struct {
		Weight int `json:"weight" binding:"required"`
	}
	var body bodyT
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	if body.Weight < 1 || body.Weight > 10 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "weight must be between 1 and 10"})
		return
	}
	if _, err := h.Repository.GetDisease(uint(diseaseID)); err != nil {
		h.errorHandler(ctx, http.StatusNotFound, err)
		return
	}
	if _, err := h.Repository.GetSymptom(uint(symptomID)); err != nil {
		h.errorHandler(ctx, http.StatusNotFound, err)
		return
	}
	if err := h.Repository.SetDiseaseSymptomWeight(uint(diseaseID), uint(symptomID), body.Weight); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, gin.H{"disease_id": diseaseID, "symptom_id": symptomID, "weight": body.Weight}, 1, gin.H{})
}
