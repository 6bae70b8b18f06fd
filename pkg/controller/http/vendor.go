package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/qa-lab/vendorscope/pkg/domain/model"
	"github.com/qa-lab/vendorscope/pkg/domain/types"
	"github.com/qa-lab/vendorscope/pkg/usecase"
	"github.com/qa-lab/vendorscope/pkg/utils/errutil"
	"github.com/qa-lab/vendorscope/pkg/utils/logging"
)

// vendorResponse is the JSON shape of a vendor record on the wire
type vendorResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Category      string                 `json:"category"`
	Description   string                 `json:"description"`
	Status        string                 `json:"status"`
	RiskTier      string                 `json:"riskTier"`
	OverallScore  int                    `json:"overallScore"`
	Metrics       model.ScorecardMetrics `json:"metrics"`
	LastAuditDate string                 `json:"lastAuditDate"`
	AINarrative   *string                `json:"aiNarrative,omitempty"`
	AssessedAt    *time.Time             `json:"assessedAt,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

func toVendorResponse(v *model.Vendor) vendorResponse {
	return vendorResponse{
		ID:            v.ID.String(),
		Name:          v.Name,
		Category:      v.Category,
		Description:   v.Description,
		Status:        v.Status.String(),
		RiskTier:      v.RiskTier.String(),
		OverallScore:  v.OverallScore,
		Metrics:       v.Metrics,
		LastAuditDate: v.LastAuditDate,
		AINarrative:   v.AINarrative,
		AssessedAt:    v.AssessedAt,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func toVendorResponses(vendors []*model.Vendor) []vendorResponse {
	resp := make([]vendorResponse, 0, len(vendors))
	for _, v := range vendors {
		resp = append(resp, toVendorResponse(v))
	}
	return resp
}

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.From(ctx).Error("failed to encode response", "error", err.Error())
	}
}

// handleError maps domain sentinel errors to HTTP status codes
func handleError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrDuplicateID),
		errors.Is(err, usecase.ErrAssessmentInProgress):
		status = http.StatusConflict
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, usecase.ErrInvalidTransition):
		status = http.StatusBadRequest
	case errors.Is(err, usecase.ErrAssessorNotAvailable):
		status = http.StatusServiceUnavailable
	}

	errutil.HandleHTTP(ctx, w, err, status)
}

func (s *Server) listVendors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		vendors []*model.Vendor
		err     error
	)

	switch {
	case r.URL.Query().Get("status") != "":
		status, perr := types.ParseVendorStatus(r.URL.Query().Get("status"))
		if perr != nil {
			handleError(ctx, w, goerr.Wrap(model.ErrValidation, perr.Error()))
			return
		}
		vendors, err = s.uc.Vendor.ListByStatus(ctx, status)

	case r.URL.Query().Get("tier") != "":
		tier, perr := types.ParseRiskTier(r.URL.Query().Get("tier"))
		if perr != nil {
			handleError(ctx, w, goerr.Wrap(model.ErrValidation, perr.Error()))
			return
		}
		vendors, err = s.uc.Vendor.ListByTier(ctx, tier)

	default:
		vendors, err = s.uc.Vendor.ListVendors(ctx)
	}

	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{
		"vendors": toVendorResponses(vendors),
	})
}

type createVendorRequest struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Category      string                 `json:"category"`
	Description   string                 `json:"description"`
	OverallScore  int                    `json:"overallScore"`
	Metrics       model.ScorecardMetrics `json:"metrics"`
	LastAuditDate string                 `json:"lastAuditDate"`
}

func (s *Server) createVendor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(ctx, w, goerr.Wrap(model.ErrValidation, "invalid request body"))
		return
	}

	vendor, err := s.uc.Vendor.CreateVendor(ctx, usecase.CreateVendorInput{
		ID:            req.ID,
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		OverallScore:  req.OverallScore,
		Metrics:       req.Metrics,
		LastAuditDate: req.LastAuditDate,
	})
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, toVendorResponse(vendor))
}

func (s *Server) getVendor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.VendorID(chi.URLParam(r, "vendorID"))

	vendor, err := s.uc.Vendor.GetVendor(ctx, id)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, toVendorResponse(vendor))
}

func (s *Server) assessVendor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.VendorID(chi.URLParam(r, "vendorID"))

	result, err := s.uc.Assessment.RequestAssessment(ctx, id)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{
		"vendor": toVendorResponse(result.Vendor),
		"assessment": map[string]any{
			"riskLevel":    result.Assessment.RiskTier.String(),
			"overallScore": result.Assessment.OverallScore,
			"metrics":      result.Assessment.Metrics,
			"summary":      result.Assessment.Summary,
		},
	})
}

type changeStatusRequest struct {
	Action string `json:"action"`
}

func (s *Server) changeStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.VendorID(chi.URLParam(r, "vendorID"))

	var req changeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(ctx, w, goerr.Wrap(model.ErrValidation, "invalid request body"))
		return
	}

	var (
		vendor *model.Vendor
		err    error
	)

	switch req.Action {
	case "approve":
		vendor, err = s.uc.Vendor.Approve(ctx, id)
	case "reject":
		vendor, err = s.uc.Vendor.Reject(ctx, id)
	case "hold":
		vendor, err = s.uc.Vendor.Hold(ctx, id)
	default:
		handleError(ctx, w, goerr.Wrap(model.ErrValidation, "unknown status action",
			goerr.V("action", req.Action),
		))
		return
	}

	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, toVendorResponse(vendor))
}

type recordAuditRequest struct {
	Date string `json:"date"`
}

func (s *Server) recordAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.VendorID(chi.URLParam(r, "vendorID"))

	var req recordAuditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(ctx, w, goerr.Wrap(model.ErrValidation, "invalid request body"))
		return
	}

	vendor, err := s.uc.Vendor.RecordAudit(ctx, id, req.Date)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, toVendorResponse(vendor))
}

func (s *Server) portfolio(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := s.uc.Vendor.Portfolio(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{
		"vendorCount":       stats.VendorCount,
		"averageScore":      stats.AverageScore,
		"elevatedRiskCount": stats.ElevatedRiskCount,
		"statusCounts":      stats.StatusCounts,
	})
}
