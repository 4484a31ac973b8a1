package domain

import "time"

const (
	QuotationStatusPending  = "Pending"
	QuotationStatusSent     = "Sent"
	QuotationStatusAccepted = "Accepted"
	QuotationStatusRejected = "Rejected"
)

type Quotation struct {
	ID            EntityID
	ProjectID     EntityID
	BuilderID     EntityID
	EstimatedCost float64
	Timeline      string // e.g. "30 days" or "3 weeks"
	Notes         string
	Status        string
	CreatedAt     time.Time
}
