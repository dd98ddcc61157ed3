package domain

// Driver represents a driver profile from the fixed roster.
type Driver struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Rating           float64 `json:"rating"`
	TotalRides       int     `json:"totalRides"`
	CarModel         string  `json:"carModel"`
	CarColor         string  `json:"carColor"`
	LicensePlate     string  `json:"licensePlate"`
	EstimatedArrival string  `json:"estimatedArrival"`
	ProfilePic       string  `json:"profilePic,omitempty"`
}

// DriverRoster returns the fixed three-driver roster the matcher draws from.
func DriverRoster() []Driver {
	return []Driver{
		{
			ID:               "d1",
			Name:             "John Smith",
			Rating:           4.8,
			TotalRides:       1245,
			CarModel:         "Toyota Camry 2022",
			CarColor:         "Black",
			LicensePlate:     "ABC-123",
			EstimatedArrival: "3 min",
			ProfilePic:       "https://randomuser.me/api/portraits/men/32.jpg",
		},
		{
			ID:               "d2",
			Name:             "Sarah Johnson",
			Rating:           4.9,
			TotalRides:       2156,
			CarModel:         "Honda Civic 2023",
			CarColor:         "Silver",
			LicensePlate:     "XYZ-789",
			EstimatedArrival: "5 min",
			ProfilePic:       "https://randomuser.me/api/portraits/women/44.jpg",
		},
		{
			ID:               "d3",
			Name:             "Michael Chen",
			Rating:           4.7,
			TotalRides:       987,
			CarModel:         "Tesla Model 3 2023",
			CarColor:         "White",
			LicensePlate:     "DEF-456",
			EstimatedArrival: "4 min",
			ProfilePic:       "https://randomuser.me/api/portraits/men/67.jpg",
		},
	}
}
