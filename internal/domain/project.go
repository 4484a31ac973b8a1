package domain

import "time"

const (
	ProjectStatusDraft = "Draft/Quote"
	ProjectStatusHired = "Hired / Ongoing"
)

type Project struct {
	ID               EntityID
	Title            string
	Builder          string // display name; hired builders are also reachable by id via quotations
	Category         string
	Location         string
	Progress         float64 // 0..1
	Status           string
	LastUpdate       string
	IsHired          bool
	ContractAmount   float64
	StartDate        *time.Time
	EstimatedEndDate *time.Time
	ProgressPhotos   []string
	CreatedAt        time.Time
}

// ContractTerms is what a customer commits to when formalizing a hire.
type ContractTerms struct {
	Amount           float64
	StartDate        time.Time
	EstimatedEndDate time.Time
}

// ApplyHire stamps the hire transition onto the project. Calling it twice
// overwrites the terms; last write wins.
func (p *Project) ApplyHire(terms ContractTerms) {
	p.IsHired = true
	p.Status = ProjectStatusHired
	p.ContractAmount = terms.Amount
	start := terms.StartDate
	end := terms.EstimatedEndDate
	p.StartDate = &start
	p.EstimatedEndDate = &end
	p.LastUpdate = "Hired professional! Project started."
}
