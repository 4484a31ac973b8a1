package domain

type Builder struct {
	ID        EntityID
	Name      string
	OwnerName string
	Rating    float64
	Expertise []string
	Location  string
	Phone     string
	Portfolio []string
	Verified  bool
}
