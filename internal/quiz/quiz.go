// Package quiz reads and writes quiz documents: versioned files holding a
// title and a list of questions in the core serialization format. Files may
// be YAML or JSON, chosen by extension.
package quiz

import (
	"quizil/internal/question"
)

// CurrentVersion is the only supported quiz document version.
const CurrentVersion = 1

// File is a quiz document.
type File struct {
	Version   int
	Title     string
	Questions []question.Question
}

// Clone returns a deep copy of the document.
func (f *File) Clone() *File {
	questions := make([]question.Question, 0, len(f.Questions))
	for _, q := range f.Questions {
		questions = append(questions, q.Clone())
	}
	return &File{Version: f.Version, Title: f.Title, Questions: questions}
}
