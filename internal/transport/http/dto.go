package http

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/hannahenterprises/constructly-server/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// StringList accepts either a JSON array or a comma-separated string; the
// builder registration form submits expertise both ways.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		var out []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		*l = out
		return nil
	}

	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		return err
	}
	*l = arr
	return nil
}

type RegisterBuilderRequest struct {
	BusinessName string     `json:"businessName"`
	OwnerName    string     `json:"ownerName"`
	Location     string     `json:"location"`
	Expertise    StringList `json:"expertise"`
	Phone        string     `json:"phone"`
	Portfolio    []string   `json:"portfolio"`
}

type BuilderItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	OwnerName string   `json:"ownerName,omitempty"`
	Rating    float64  `json:"rating"`
	Expertise []string `json:"expertise"`
	Location  string   `json:"location"`
	Phone     string   `json:"phone,omitempty"`
	Portfolio []string `json:"portfolio,omitempty"`
	Verified  bool     `json:"verified"`
}

func builderItem(b domain.Builder) BuilderItem {
	return BuilderItem{
		ID:        b.ID.String(),
		Name:      b.Name,
		OwnerName: b.OwnerName,
		Rating:    b.Rating,
		Expertise: b.Expertise,
		Location:  b.Location,
		Phone:     b.Phone,
		Portfolio: b.Portfolio,
		Verified:  b.Verified,
	}
}

type CreateProjectRequest struct {
	Title    string  `json:"title"`
	Builder  string  `json:"builder"`
	Category string  `json:"category"`
	Location string  `json:"location"`
	Status   string  `json:"status"`
	Progress float64 `json:"progress"`
}

type HireProjectRequest struct {
	ContractAmount   float64 `json:"contractAmount"`
	StartDate        string  `json:"startDate"`
	EstimatedEndDate string  `json:"estimatedEndDate"`
}

type ProjectItem struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Builder          string     `json:"builder"`
	Category         string     `json:"category,omitempty"`
	Location         string     `json:"location,omitempty"`
	Progress         float64    `json:"progress"`
	Status           string     `json:"status"`
	LastUpdate       string     `json:"lastUpdate"`
	IsHired          bool       `json:"isHired"`
	ContractAmount   float64    `json:"contractAmount,omitempty"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EstimatedEndDate *time.Time `json:"estimatedEndDate,omitempty"`
	ProgressPhotos   []string   `json:"progressPhotos,omitempty"`
}

func projectItem(p domain.Project) ProjectItem {
	return ProjectItem{
		ID:               p.ID.String(),
		Title:            p.Title,
		Builder:          p.Builder,
		Category:         p.Category,
		Location:         p.Location,
		Progress:         p.Progress,
		Status:           p.Status,
		LastUpdate:       p.LastUpdate,
		IsHired:          p.IsHired,
		ContractAmount:   p.ContractAmount,
		StartDate:        p.StartDate,
		EstimatedEndDate: p.EstimatedEndDate,
		ProgressPhotos:   p.ProgressPhotos,
	}
}

type SubmitQuotationRequest struct {
	ProjectID     string  `json:"projectId"`
	BuilderID     string  `json:"builderId"`
	EstimatedCost float64 `json:"estimatedCost"`
	Timeline      string  `json:"timeline"`
	Notes         string  `json:"notes"`
}

type QuotationItem struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"projectId"`
	BuilderID     string    `json:"builderId"`
	EstimatedCost float64   `json:"estimatedCost"`
	Timeline      string    `json:"timeline"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func quotationItem(q domain.Quotation) QuotationItem {
	return QuotationItem{
		ID:            q.ID.String(),
		ProjectID:     q.ProjectID.String(),
		BuilderID:     q.BuilderID.String(),
		EstimatedCost: q.EstimatedCost,
		Timeline:      q.Timeline,
		Notes:         q.Notes,
		Status:        q.Status,
		CreatedAt:     q.CreatedAt,
	}
}

type CreateHouseRequest struct {
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Images      []string `json:"images"`
	SellerPhone string   `json:"sellerPhone"`
	SellerName  string   `json:"sellerName"`
}

type HouseItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location"`
	Images      []string `json:"images,omitempty"`
	SellerPhone string   `json:"sellerPhone"`
	SellerName  string   `json:"sellerName,omitempty"`
	IsSold      bool     `json:"isSold"`
}

func houseItem(h domain.House) HouseItem {
	return HouseItem{
		ID:          h.ID.String(),
		Title:       h.Title,
		Price:       h.Price,
		Type:        h.Type,
		Description: h.Description,
		Location:    h.Location,
		Images:      h.Images,
		SellerPhone: h.SellerPhone,
		SellerName:  h.SellerName,
		IsSold:      h.IsSold,
	}
}
