package domain

// RideStatus represents the lifecycle state of a ride or trip record.
type RideStatus string

const (
	RideStatusUpcoming    RideStatus = "Upcoming"
	RideStatusCompleted   RideStatus = "Completed"
	RideStatusUnfulfilled RideStatus = "Unfulfilled"
)

// RideType represents a bookable service class with its flat mock price.
type RideType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Capacity    string `json:"capacity"`
}

// Ride is the single "upcoming ride" record created when a driver is
// confirmed and destroyed when the ride is paid or cancelled.
type Ride struct {
	ID                string     `json:"id"`
	Pickup            string     `json:"pickup"`
	Destination       string     `json:"destination"`
	Driver            *Driver    `json:"driver"`
	RideType          RideType   `json:"rideType"`
	Status            RideStatus `json:"status"`
	ScheduledTime     string     `json:"scheduledTime"`
	EstimatedDuration string     `json:"estimatedDuration,omitempty"`
	EstimatedDistance string     `json:"estimatedDistance,omitempty"`
	EstimatedCost     string     `json:"estimatedCost"`
}

// RideTypes returns the fixed ride type catalogue.
func RideTypes() []RideType {
	return []RideType{
		{
			ID:          "economy",
			Name:        "Economy",
			Price:       "BDT 250",
			Time:        "5 min",
			Description: "Affordable, everyday rides",
			Capacity:    "1-4",
		},
		{
			ID:          "premium",
			Name:        "Premium",
			Price:       "BDT 350",
			Time:        "3 min",
			Description: "Premium cars with top-rated drivers",
			Capacity:    "1-4",
		},
		{
			ID:          "suv",
			Name:        "SUV",
			Price:       "BDT 500",
			Time:        "7 min",
			Description: "Extra space for luggage and more passengers",
			Capacity:    "1-6",
		},
	}
}

// RideTypeByID looks up a ride type in the catalogue. The Economy type is
// the default when the id is empty or unknown.
func RideTypeByID(id string) RideType {
	types := RideTypes()
	for _, rt := range types {
		if rt.ID == id {
			return rt
		}
	}
	return types[0]
}

// SuggestedLocations is the static autocomplete list for pickup and
// destination inputs.
var SuggestedLocations = []string{
	"New York City Center",
	"Brooklyn Heights",
	"Queens Boulevard",
	"Central Park",
	"Times Square",
	"JFK Airport",
	"LaGuardia Airport",
	"Manhattan Bridge",
	"Grand Central Station",
	"Empire State Building",
}
