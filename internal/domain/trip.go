package domain

// TripDriver is the abbreviated driver reference embedded in a trip receipt.
type TripDriver struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
	Car    string  `json:"car"`
	Plate  string  `json:"plate"`
}

// Trip is a completed (or unfulfilled) trip receipt in the history list.
type Trip struct {
	ID       string     `json:"id"`
	Date     string     `json:"date"`
	Time     string     `json:"time"`
	Status   RideStatus `json:"status"`
	Pickup   string     `json:"pickup"`
	Dropoff  string     `json:"dropoff"`
	Amount   string     `json:"amount"`
	Distance string     `json:"distance"`
	Duration string     `json:"duration"`
	Driver   TripDriver `json:"driver"`
}

// SeedTrips returns the fixture history shown before any payment completes.
func SeedTrips() []Trip {
	return []Trip{
		{
			ID:       "1",
			Date:     "Feb 22",
			Time:     "7:20 PM",
			Status:   RideStatusUnfulfilled,
			Pickup:   "147 লাল রোড, Dhaka",
			Dropoff:  "Gulshan-2, Dhaka",
			Amount:   "BDT 350",
			Distance: "8.5 km",
			Duration: "25 mins",
			Driver:   TripDriver{Name: "Rahim Ali", Rating: 4.8, Car: "Toyota Allion", Plate: "DHA-1234"},
		},
		{
			ID:       "2",
			Date:     "Feb 20",
			Time:     "8:30 PM",
			Status:   RideStatusCompleted,
			Pickup:   "62 Ideal Rd, Dhaka",
			Dropoff:  "Banani, Dhaka",
			Amount:   "BDT 280",
			Distance: "6.2 km",
			Duration: "20 mins",
			Driver:   TripDriver{Name: "Karim Khan", Rating: 4.9, Car: "Honda City", Plate: "DHA-5678"},
		},
		{
			ID:       "3",
			Date:     "Feb 18",
			Time:     "3:15 PM",
			Status:   RideStatusCompleted,
			Pickup:   "Mirpur-10, Dhaka",
			Dropoff:  "Farmgate, Dhaka",
			Amount:   "BDT 420",
			Distance: "12.3 km",
			Duration: "35 mins",
			Driver:   TripDriver{Name: "Salam Mia", Rating: 4.7, Car: "Toyota Axio", Plate: "DHA-9012"},
		},
	}
}
