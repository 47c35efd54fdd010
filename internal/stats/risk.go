package stats

import "github.com/julianstephens/recoverwise/internal/models"

// Classify maps an average number of drinks per day to a WHO risk tier.
// Female-identified users get the stricter table. Zero drinks is "low";
// RiskNone is never returned.
func Classify(drinksPerDay float64, gender models.Gender) models.RiskTier {
	if gender == models.GenderFemale {
		switch {
		case drinksPerDay <= 1:
			return models.RiskLow
		case drinksPerDay <= 2:
			return models.RiskMedium
		case drinksPerDay <= 4:
			return models.RiskHigh
		default:
			return models.RiskVeryHigh
		}
	}

	switch {
	case drinksPerDay <= 2:
		return models.RiskLow
	case drinksPerDay <= 3:
		return models.RiskMedium
	case drinksPerDay <= 6:
		return models.RiskHigh
	default:
		return models.RiskVeryHigh
	}
}
