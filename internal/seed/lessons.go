package seed

import "course-booking-api/internal/domain/lesson"

// Lessons returns the static seed catalog used by POST /courses/import and
// by the file backend at startup. IDs are stable: order line items reference
// them externally.
func Lessons() []lesson.Lesson {
	return []lesson.Lesson{
		{ID: 1, Title: "Art & Painting", Description: "Watercolour and acrylic basics for beginners", Location: "Hendon", Price: 10, Spaces: 5, Rating: 4.5, Image: "images/art.jpg"},
		{ID: 2, Title: "Maths Club", Description: "Problem solving and mental arithmetic practice", Location: "Colindale", Price: 12, Spaces: 5, Rating: 4.8, Image: "images/maths.jpg"},
		{ID: 3, Title: "Guitar for Beginners", Description: "First chords, strumming patterns and simple songs", Location: "Brent Cross", Price: 15, Spaces: 5, Rating: 4.2, Image: "images/guitar.jpg"},
		{ID: 4, Title: "Chess", Description: "Openings, tactics and weekly mini tournaments", Location: "Golders Green", Price: 8, Spaces: 5, Rating: 4.6, Image: "images/chess.jpg"},
		{ID: 5, Title: "Drama Workshop", Description: "Improvisation games and scene work on stage", Location: "Hendon", Price: 11, Spaces: 5, Rating: 4.1, Image: "images/drama.jpg"},
		{ID: 6, Title: "Coding Club", Description: "Build small games while learning to program", Location: "Colindale", Price: 18, Spaces: 5, Rating: 4.9, Image: "images/coding.jpg"},
		{ID: 7, Title: "Swimming", Description: "Stroke technique coaching in small groups", Location: "Brent Cross", Price: 14, Spaces: 5, Rating: 4.3, Image: "images/swimming.jpg"},
		{ID: 8, Title: "Creative Writing", Description: "Short stories, poetry and sharing circles", Location: "Golders Green", Price: 9, Spaces: 5, Rating: 4.0, Image: "images/writing.jpg"},
		{ID: 9, Title: "Football Skills", Description: "Dribbling, passing drills and friendly matches", Location: "Hendon", Price: 10, Spaces: 5, Rating: 4.7, Image: "images/football.jpg"},
		{ID: 10, Title: "Science Lab", Description: "Hands-on experiments with everyday materials", Location: "Colindale", Price: 16, Spaces: 5, Rating: 4.4, Image: "images/science.jpg"},
	}
}
