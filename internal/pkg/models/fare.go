package models

// Fare concept names, in presentation order
const (
	FareConceptDistance    = "Distance"
	FareConceptTime        = "Time"
	FareConceptSupplements = "Supplements"
)

// FareConcept is one line of a fare breakdown
type FareConcept struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// FareSummary is the ordered breakdown of a ride's fare
type FareSummary struct {
	Concepts []FareConcept `json:"concepts"`
}

// Total returns the sum of all concept prices
func (f FareSummary) Total() float64 {
	var total float64
	for _, c := range f.Concepts {
		total += c.Price
	}
	return total
}
