package stats

import (
	"time"

	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/utils"
)

var testNow = time.Date(2024, time.May, 15, 10, 0, 0, 0, time.UTC)

func daysAgo(n int) string {
	return utils.DaysAgo(testNow, n)
}

func logOn(n int, drinks float64) models.ConsumptionLog {
	return models.ConsumptionLog{
		ID:             "log-" + daysAgo(n),
		UserID:         "user-1",
		Date:           daysAgo(n),
		DrinksConsumed: drinks,
	}
}
