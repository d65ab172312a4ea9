package domain

// Category is a pre-seeded question category. The API never writes it.
type Category struct {
	ID   int64
	Type string
}

// Question is a single trivia question. Category is expected, but not
// enforced, to reference an existing Category.ID; zero means unset.
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Category   int64
	Difficulty int
}

// NewQuestion creates a Question that has not been persisted yet.
func NewQuestion(question, answer string, category int64, difficulty int) *Question {
	return &Question{
		Question:   question,
		Answer:     answer,
		Category:   category,
		Difficulty: difficulty,
	}
}
