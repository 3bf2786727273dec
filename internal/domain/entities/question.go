// Package entities contains domain entities used across the application.
package entities

// Question is a single flashcard: a prompt on the front face and its answer
// on the back. Questions are owned by the question bank and never mutated.
type Question struct {
	Q string `json:"q"` // question text (front face)
	A string `json:"a"` // answer text (back face)
}
