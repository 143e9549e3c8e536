// Package content holds the static motivational content tables: quotes,
// daily tasks, and emergency tips. The tables are configuration data,
// not user state; they are compiled in and picked from uniformly at
// random.
package content

import "math/rand"

// Quotes are sent with daily reminders and on the motivation command.
var Quotes = []string{
	"Self-control today is strength tomorrow.",
	"Every day without addiction is a victory over yourself.",
	"Difficult today - easier tomorrow.",
	"Your strength is not in avoiding falling, but in getting back up.",
	"Overcome yourself today and become stronger tomorrow.",
	"True strength is being able to say 'no' to your weaknesses.",
	"You are stronger than you think.",
	"Each new day is a new opportunity to become better.",
	"Your life changes when you change yourself.",
	"Discipline is the bridge between goals and achievements.",
}

// Tasks are the daily task pool.
var Tasks = []string{
	"Do 20 push-ups when you feel tempted.",
	"Drink a glass of water and take 10 deep breaths.",
	"Take a 10-minute walk in fresh air.",
	"Take a cold shower.",
	"Read a book for 30 minutes.",
	"Call a friend or family member.",
	"Meditate for 10 minutes.",
	"Write down your thoughts and feelings in a journal.",
	"Do stretching or yoga for 15 minutes.",
	"Draw or write about your goals for the future.",
}

// TipCategory selects an emergency tip pool.
type TipCategory string

const (
	TipPhysical    TipCategory = "physical"
	TipMental      TipCategory = "mental"
	TipShower      TipCategory = "shower"
	TipDistraction TipCategory = "distraction"
)

// categorizedTips maps a category to its tip pool.
var categorizedTips = map[TipCategory][]string{
	TipPhysical: {
		"Do 20 push-ups right now!",
		"Do 30 squats.",
		"Hold a plank position for 1 minute.",
	},
	TipMental: {
		"Focus on your breathing: inhale for 4 counts, hold for 4, exhale for 4.",
		"Close your eyes and count to 100.",
		"Meditate for 5 minutes, focusing on breathing.",
	},
	TipShower: {
		"Take a cold shower for 30-60 seconds.",
		"Wash your face with cold water several times.",
		"Hold your hands under cold water for a minute.",
	},
	TipDistraction: {
		"Call a friend or family member.",
		"Go for a short walk.",
		"Turn on your favorite energetic music and move to it.",
	},
}

// generalTips is the fallback pool for unknown categories.
var generalTips = []string{
	"Do 20 push-ups right now!",
	"Leave the room immediately and take a walk.",
	"Turn on a cold shower and stand under it for 30 seconds.",
	"Call a friend right now.",
	"Do 50 jumps in place.",
	"Focus on your breathing: inhale for 4 counts, hold for 4, exhale for 4.",
	"Drink a glass of cold water.",
	"Hold a plank position for 1 minute.",
	"Close your eyes and count to 100.",
	"Turn on your favorite energetic music and move to it.",
}

// RandomQuote returns a uniformly random motivational quote.
func RandomQuote() string {
	return Quotes[rand.Intn(len(Quotes))]
}

// RandomTask returns a uniformly random daily task.
func RandomTask() string {
	return Tasks[rand.Intn(len(Tasks))]
}

// RandomTip returns a random emergency tip for the given category,
// falling back to the general pool when the category is unknown.
func RandomTip(category TipCategory) string {
	if pool, ok := categorizedTips[category]; ok {
		return pool[rand.Intn(len(pool))]
	}
	return generalTips[rand.Intn(len(generalTips))]
}
