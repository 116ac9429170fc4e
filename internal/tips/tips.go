package tips

import "math/rand"

// tips is the fixed list of coping tips shown to the user
var tips = []string{
	"Feeling anxious? Try grounding: Name 5 things you see, 4 you can touch, 3 you hear, 2 you smell, 1 you taste.",
	"Low energy? Take a 5-minute walk outside or stretch gently.",
	"Overwhelmed? Write down 3 things you're grateful for right now.",
	"Sad? Listen to your favorite uplifting song and dance along.",
	"Stressed? Close your eyes and imagine a peaceful place for 2 minutes.",
	"Irritable? Drink a glass of water and take 10 deep breaths.",
	"Lonely? Reach out to a friend with a quick message.",
	"Happy? Share your joy—tell someone about it!",
}

// All returns every coping tip in display order
func All() []string {
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}

// Random returns one tip at random
func Random() string {
	if len(tips) == 0 {
		return "No tips available."
	}
	return tips[rand.Intn(len(tips))]
}
