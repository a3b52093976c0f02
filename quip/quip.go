// Package quip supplies the closing one-liner of a report. Losing
// purchasing power is bad enough without a dry exit line.
package quip

import "math/rand"

// spicyThreshold is the loss percentage above which the pool switches.
const spicyThreshold = 10.0

var mild = []string{
	"Inflation never sleeps. Unfortunately, it also never pays rent.",
	"Your money has been doing static stretching: very still, slightly less useful.",
	"Plot twist: it's not you overspending - prices just got confident.",
	"CPI called. It said: 'Nice purchasing power you had there.'",
}

var spicy = []string{
	"This might be a good time to ask for a raise. Or to negotiate directly with the CPI.",
	"Your salary time-traveled... without the cost-of-living adjustment.",
	"If your boss says 'no budget', reply: 'Cool, then let's cut inflation.'",
	"Inflation: 1 - Frozen salary: 0. Rematch at the next review!",
}

// Pick returns a random quip matched to the loss severity.
func Pick(lossPct float64) string {
	pool := mild
	if lossPct >= spicyThreshold {
		pool = spicy
	}
	return pool[rand.Intn(len(pool))]
}
