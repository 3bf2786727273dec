package service

import (
	"math/rand"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/domain/entities"
)

// BuildQueue returns a uniformly shuffled copy of questions truncated to at
// most n items. The input slice is not modified. A nil r uses the global source.
func BuildQueue(questions []entities.Question, n int, r *rand.Rand) []entities.Question {
	shuffled := make([]entities.Question, len(questions))
	copy(shuffled, questions)

	swap := func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	if r != nil {
		r.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}

	if n < len(shuffled) {
		shuffled = shuffled[:max(n, 0)]
	}
	return shuffled
}

// rotate moves the front element to the tail.
func rotate(queue []entities.Question) []entities.Question {
	if len(queue) < 2 {
		return queue
	}
	out := make([]entities.Question, 0, len(queue))
	out = append(out, queue[1:]...)
	return append(out, queue[0])
}
