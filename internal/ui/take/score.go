package take

import (
	"strings"

	"quizil/internal/question"
)

// Result is the graded outcome for one question.
type Result struct {
	Earned   int
	Possible int
}

// NormalizeAnswerText trims whitespace and lowercases an answer for
// matching free-text responses.
func NormalizeAnswerText(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Grade scores a response against its question's stored answer. Multiple
// choice and free-text questions are worth one point; matching earns one
// point per correctly paired answer entry.
func Grade(q question.Question, response *question.Response) Result {
	switch typed := q.(type) {
	case *question.MultipleChoice:
		choice, ok := response.Choice()
		return onePoint(ok && choice == typed.Answer())
	case *question.ShortAnswer:
		answer, ok := response.Answer()
		return onePoint(ok && NormalizeAnswerText(answer) == NormalizeAnswerText(typed.Answer()))
	case *question.FillInTheBlank:
		answer, ok := response.Answer()
		return onePoint(ok && NormalizeAnswerText(answer) == NormalizeAnswerText(typed.Answer()))
	case *question.Matching:
		return gradeMatching(typed, response)
	default:
		return Result{}
	}
}

func onePoint(correct bool) Result {
	result := Result{Possible: 1}
	if correct {
		result.Earned = 1
	}
	return result
}

func gradeMatching(q *question.Matching, response *question.Response) Result {
	answer := q.Answer()
	result := Result{Possible: len(answer)}
	mapping, ok := response.AnswerMapping()
	if !ok {
		return result
	}
	for _, pair := range answer {
		submitted, found := mapping.Get(pair.Key)
		if !found || submitted == nil || pair.Value == nil {
			continue
		}
		if *submitted == *pair.Value {
			result.Earned++
		}
	}
	return result
}
