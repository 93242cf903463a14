// Package fare derives the price of a ride from its route, duration and supplements.
// Nothing here reads the wall clock: the instant used for an active ride is always passed in.
package fare

import (
	"math"
	"time"

	"github.com/piresc/taximeter/internal/pkg/models"
	"github.com/piresc/taximeter/internal/utils"
)

// Breakdown holds the raw quantities and costs of a ride at an instant
type Breakdown struct {
	DistanceKm     float64
	Seconds        int64
	DistanceCost   float64
	TimeCost       float64
	SupplementCost float64
}

// Total is the distance, time and supplement cost added in that order
func (b Breakdown) Total() float64 {
	return b.DistanceCost + b.TimeCost + b.SupplementCost
}

// Summary turns the breakdown into its ordered fare concepts
func (b Breakdown) Summary() models.FareSummary {
	return models.FareSummary{
		Concepts: []models.FareConcept{
			{Name: models.FareConceptDistance, Price: b.DistanceCost},
			{Name: models.FareConceptTime, Price: b.TimeCost},
			{Name: models.FareConceptSupplements, Price: b.SupplementCost},
		},
	}
}

// TimeInSeconds returns the whole seconds elapsed between the ride start and
// its end, or now while the ride has not ended. Negative spans count as zero.
func TimeInSeconds(ride *models.Ride, now time.Time) int64 {
	if ride == nil {
		return 0
	}
	end := now
	if ride.EndTime != nil {
		end = *ride.EndTime
	}
	elapsed := end.Sub(ride.StartTime)
	if elapsed <= 0 {
		return 0
	}
	return int64(math.Floor(elapsed.Seconds()))
}

// SupplementsTotal sums every attached supplement, counting duplicates each time
func SupplementsTotal(supplements []models.Supplement) float64 {
	var total float64
	for _, s := range supplements {
		total += s.Price
	}
	return total
}

// Calculate computes the fare breakdown of the ride as observed at now
func Calculate(ride *models.Ride, now time.Time) Breakdown {
	if ride == nil {
		return Breakdown{}
	}
	distance := utils.TotalDistanceKm(ride.Route)
	seconds := TimeInSeconds(ride, now)

	return Breakdown{
		DistanceKm:     distance,
		Seconds:        seconds,
		DistanceCost:   distance * ride.PriceConfiguration.PricePerKm,
		TimeCost:       float64(seconds) * ride.PriceConfiguration.PricePerSecond,
		SupplementCost: SupplementsTotal(ride.Supplements),
	}
}

// Summary returns the fare concepts of the ride at now
func Summary(ride *models.Ride, now time.Time) models.FareSummary {
	return Calculate(ride, now).Summary()
}

// TotalPrice returns the ride price at now; it always equals Summary(ride, now).Total()
func TotalPrice(ride *models.Ride, now time.Time) float64 {
	return Summary(ride, now).Total()
}
