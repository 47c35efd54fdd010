package tracker

import (
	"time"

	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/utils"
)

func habit(title, description string, category models.HabitCategory, types []models.DrinkingType,
	minutes, difficulty int, location string, equipment []string, instructions string) models.HabitReplacement {
	return models.HabitReplacement{
		Title:            title,
		Description:      description,
		Category:         category,
		DrinkingTypes:    types,
		DurationMinutes:  minutes,
		DifficultyLevel:  difficulty,
		LocationRequired: location,
		EquipmentNeeded:  equipment,
		Instructions:     instructions,
		IsActive:         true,
	}
}

// DefaultCatalog is the habit-replacement catalog seeded on first run.
func DefaultCatalog(now time.Time) []models.HabitReplacement {
	const (
		stress    = models.DrinkingStress
		social    = models.DrinkingSocial
		habitual  = models.DrinkingHabit
		emotional = models.DrinkingEmotional
		boredom   = models.DrinkingBoredom
	)

	catalog := []models.HabitReplacement{
		habit("Deep Breathing Exercise",
			"Practice 4-7-8 breathing technique to reduce stress and anxiety",
			models.CategoryStressRelief, []models.DrinkingType{stress, emotional},
			5, 1, "anywhere", []string{},
			"Inhale for 4 counts, hold for 7 counts, exhale for 8 counts. Repeat 4 times."),
		habit("10-Minute Walk",
			"Take a brisk walk around the block or in nature",
			models.CategoryPhysical, []models.DrinkingType{stress, boredom, habitual},
			10, 2, "outdoors", []string{"comfortable shoes"},
			"Put on comfortable shoes and walk at a moderate pace for 10 minutes. Focus on your surroundings and breathing."),
		habit("Mindful Tea Ceremony",
			"Prepare and mindfully drink herbal tea as a replacement ritual",
			models.CategoryMindfulness, []models.DrinkingType{habitual, social, stress},
			15, 1, "home", []string{"herbal tea", "favorite mug"},
			"Choose a calming herbal tea. Focus on the preparation process, the aroma, and taste. Drink slowly and mindfully."),
		habit("Gratitude Journaling",
			"Write down three things you're grateful for today",
			models.CategoryCreative, []models.DrinkingType{emotional, stress, boredom},
			10, 1, "anywhere", []string{"journal", "pen"},
			"Write down three specific things you're grateful for today. Include why each one matters to you."),
		habit("Progressive Muscle Relaxation",
			"Systematically tense and relax muscle groups to reduce physical tension",
			models.CategoryStressRelief, []models.DrinkingType{stress, emotional},
			20, 2, "quiet space", []string{"comfortable surface"},
			"Start with your toes, tense for 5 seconds, then relax. Work your way up through each muscle group."),
		habit("Call a Friend",
			"Reach out to a supportive friend or family member",
			models.CategorySocial, []models.DrinkingType{social, emotional, boredom},
			15, 1, "anywhere", []string{"phone"},
			"Call someone who makes you feel good. Share something positive or ask about their day."),
		habit("Creative Drawing",
			"Express yourself through simple drawing or doodling",
			models.CategoryCreative, []models.DrinkingType{boredom, emotional, stress},
			20, 2, "anywhere", []string{"paper", "pencil or pen"},
			"Draw whatever comes to mind. Don't worry about skill - focus on the process and expression."),
		habit("Hydration Break",
			"Drink a large glass of water with lemon or cucumber",
			models.CategoryPhysical, []models.DrinkingType{habitual, boredom},
			5, 1, "anywhere", []string{"water", "lemon or cucumber"},
			"Prepare a large glass of water with fresh lemon or cucumber. Drink slowly and mindfully."),
	}

	for i := range catalog {
		catalog[i].ID = utils.NewID()
		catalog[i].CreatedAt = now
	}
	return catalog
}
