package gamify

// CheckerTask is one entry of the fixed daily holistic checklist.
type CheckerTask struct {
	Key   string
	Label string
}

// CheckerTasks is the fixed 15-entry checklist, grouped by key prefix:
// AM_ morning, PM_ evening, LIFE_ lifestyle.
var CheckerTasks = []CheckerTask{
	{"AM_1", "Applied prescribed Vitamin C/Antioxidant Serum (AM)"},
	{"AM_2", "Applied Sunscreen with SPF 30+ (AM)"},
	{"AM_3", "Consumed a full glass of water upon waking"},
	{"AM_4", "Engaged in 5 minutes of mindful breathing/meditation"},
	{"AM_5", "Avoided high-sugar breakfast"},
	{"PM_1", "Completed double cleanse (PM)"},
	{"PM_2", "Applied prescribed Retinol/Active Treatment (PM)"},
	{"PM_3", "Applied eye cream and moisturized neck/chest (PM)"},
	{"PM_4", "Avoided screen time 30 mins before bed"},
	{"PM_5", "Logged 7+ hours of sleep last night"},
	{"LIFE_1", "Ate 3+ servings of vegetables/fruits"},
	{"LIFE_2", "Drank 2L+ of water throughout the day"},
	{"LIFE_3", "Avoided picking/touching face unnecessarily"},
	{"LIFE_4", "Changed pillowcase/towel (weekly check)"},
	{"LIFE_5", "Completed a 30-min physical activity"},
}

// IsCheckerTask reports whether key names one of the fixed checklist tasks.
func IsCheckerTask(key string) bool {
	for _, t := range CheckerTasks {
		if t.Key == key {
			return true
		}
	}
	return false
}

// CheckerAdvice maps a completed-task count to the fixed coaching line.
func CheckerAdvice(completedTasks int) string {
	switch {
	case completedTasks < 5:
		return "You have a lot of gaps! Focus on basic cleansing and moisturizing first."
	case completedTasks < 10:
		return "Good start! Try to integrate more lifestyle habits like stress reduction and water intake."
	default:
		return "Excellent consistency! Keep up the great work on both your routine and your overall well-being."
	}
}
