package session

import "github.com/hannahenterprises/constructly-server/internal/domain"

// Seed records keep list endpoints demonstrable in a fresh environment with
// no reachable store. They are served, never written to the cache.

func SeedBuilders() []domain.Builder {
	return []domain.Builder{
		{ID: domain.LocalID(1), Name: "Shamshabad Constructions", Rating: 4.8, Expertise: []string{"Full Home", "Masonry"}, Location: "Shamshabad, So. Hyd"},
		{ID: domain.LocalID(2), Name: "Rajendranagar Electricals", Rating: 4.5, Expertise: []string{"Electrical", "Wiring"}, Location: "Rajendranagar, So. Hyd"},
		{ID: domain.LocalID(3), Name: "Attapur Granites & Marbles", Rating: 4.9, Expertise: []string{"Granite", "Tiles", "Marbles"}, Location: "Attapur, So. Hyd"},
		{ID: domain.LocalID(4), Name: "Classic Interiors", Rating: 4.7, Expertise: []string{"Interior", "Painting"}, Location: "Aramghar, So. Hyd"},
		{ID: domain.LocalID(5), Name: "SMR Building Materials", Rating: 4.6, Expertise: []string{"Cement", "Sand", "Steel"}, Location: "Saroornagar, So. Hyd"},
		{ID: domain.LocalID(6), Name: "Falaknuma Masons", Rating: 4.4, Expertise: []string{"Masonry", "Renovation"}, Location: "Falaknuma, So. Hyd"},
	}
}

func SeedProjects() []domain.Project {
	return []domain.Project{
		{ID: domain.LocalID(1), Title: "Duplex Villa - Shamshabad", Builder: "Shamshabad Constructions", Progress: 0.65, Status: "Masonry Work", LastUpdate: "2 hours ago"},
		{ID: domain.LocalID(2), Title: "Granite Flooring - Attapur", Builder: "Attapur Granites & Marbles", Progress: 0.30, Status: "Material Selection", LastUpdate: "1 day ago"},
	}
}

func SeedHouses() []domain.House {
	return []domain.House{
		{ID: domain.LocalID(1), Title: "2BHK Independent House - Attapur", Price: 5500000, Type: domain.HouseTypeOld, Location: "Attapur, So. Hyd", SellerPhone: "+91 98490 00001", SellerName: "R. Prasad"},
		{ID: domain.LocalID(2), Title: "New Duplex Villa - Shamshabad", Price: 12500000, Type: domain.HouseTypeNew, Location: "Shamshabad, So. Hyd", SellerPhone: "+91 98490 00002", SellerName: "K. Reddy"},
	}
}
