package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/hannahenterprises/constructly-server/internal/domain"
	"github.com/hannahenterprises/constructly-server/internal/service"
	httpmw "github.com/hannahenterprises/constructly-server/internal/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	builderSvc   *service.BuilderService
	projectSvc   *service.ProjectService
	quotationSvc *service.QuotationService
	houseSvc     *service.HouseService
}

func NewHandler(builder *service.BuilderService, project *service.ProjectService,
	quotation *service.QuotationService, house *service.HouseService) *Handler {
	return &Handler{
		builderSvc:   builder,
		projectSvc:   project,
		quotationSvc: quotation,
		houseSvc:     house,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeServiceError(w http.ResponseWriter, err error) {
	if domain.IsValidation(err) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

// GET /api/builders
func (h *Handler) ListBuilders(w http.ResponseWriter, r *http.Request) {
	builders := h.builderSvc.List(r.Context())
	items := make([]BuilderItem, 0, len(builders))
	for _, b := range builders {
		items = append(items, builderItem(b))
	}
	writeJSON(w, http.StatusOK, items)
}

// POST /api/builders
func (h *Handler) RegisterBuilder(w http.ResponseWriter, r *http.Request) {
	var req RegisterBuilderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return
	}

	b, err := h.builderSvc.Register(r.Context(), domain.Builder{
		Name:      req.BusinessName,
		OwnerName: req.OwnerName,
		Location:  req.Location,
		Expertise: req.Expertise,
		Phone:     req.Phone,
		Portfolio: req.Portfolio,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	slog.Info("builder registered", "name", b.Name, "id", b.ID.String(),
		"user", httpmw.UserIDFromCtx(r.Context()))
	writeJSON(w, http.StatusCreated, builderItem(b))
}

// GET /api/projects
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.projectSvc.List(r.Context())
	items := make([]ProjectItem, 0, len(projects))
	for _, p := range projects {
		items = append(items, projectItem(p))
	}
	writeJSON(w, http.StatusOK, items)
}

// POST /api/projects
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return
	}

	p, err := h.projectSvc.Create(r.Context(), domain.Project{
		Title:    req.Title,
		Builder:  req.Builder,
		Category: req.Category,
		Location: req.Location,
		Status:   req.Status,
		Progress: req.Progress,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, projectItem(p))
}

// PATCH /api/projects/{id}/hire
func (h *Handler) HireProject(w http.ResponseWriter, r *http.Request) {
	id := domain.ParseID(chi.URLParam(r, "id"))

	var req HireProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid startDate"})
		return
	}
	end, err := parseDate(req.EstimatedEndDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid estimatedEndDate"})
		return
	}

	p, err := h.projectSvc.Hire(r.Context(), id, domain.ContractTerms{
		Amount:           req.ContractAmount,
		StartDate:        start,
		EstimatedEndDate: end,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "project not found"})
			return
		}
		slog.Error("handler.HireProject:", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, projectItem(*p))
}

// GET /api/projects/{id}/quotations
func (h *Handler) ListQuotations(w http.ResponseWriter, r *http.Request) {
	projectID := domain.ParseID(chi.URLParam(r, "id"))

	quotes := h.quotationSvc.ListByProject(r.Context(), projectID)
	items := make([]QuotationItem, 0, len(quotes))
	for _, q := range quotes {
		items = append(items, quotationItem(q))
	}
	writeJSON(w, http.StatusOK, items)
}

// POST /api/quotations
func (h *Handler) SubmitQuotation(w http.ResponseWriter, r *http.Request) {
	var req SubmitQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return
	}

	q, err := h.quotationSvc.Submit(r.Context(), domain.Quotation{
		ProjectID:     domain.ParseID(req.ProjectID),
		BuilderID:     domain.ParseID(req.BuilderID),
		EstimatedCost: req.EstimatedCost,
		Timeline:      req.Timeline,
		Notes:         req.Notes,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, quotationItem(q))
}

// GET /api/houses
func (h *Handler) ListHouses(w http.ResponseWriter, r *http.Request) {
	houses := h.houseSvc.List(r.Context())
	items := make([]HouseItem, 0, len(houses))
	for _, hs := range houses {
		items = append(items, houseItem(hs))
	}
	writeJSON(w, http.StatusOK, items)
}

// POST /api/houses
func (h *Handler) CreateHouse(w http.ResponseWriter, r *http.Request) {
	var req CreateHouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return
	}

	hs, err := h.houseSvc.Create(r.Context(), domain.House{
		Title:       req.Title,
		Price:       req.Price,
		Type:        req.Type,
		Description: req.Description,
		Location:    req.Location,
		Images:      req.Images,
		SellerPhone: req.SellerPhone,
		SellerName:  req.SellerName,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, houseItem(hs))
}

// parseDate accepts RFC3339 or a bare date; the clients send both. An empty
// value parses to the zero time, matching the source's leniency.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
