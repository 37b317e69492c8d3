package question

import "slices"

// MultipleChoice is a question answered by picking one of a fixed list of
// choices.
type MultipleChoice struct {
	base
	prompt  string
	choices []string
	answer  string
}

// NewMultipleChoice constructs a multiple choice question. Duplicate choices
// are removed preserving first occurrence, and the answer must be one of
// the supplied choices.
func NewMultipleChoice(prompt string, choices []string, answer string, opts ...Option) (*MultipleChoice, error) {
	c := applyOptions(opts)
	q := &MultipleChoice{
		base:    newBase(KindMultipleChoice, c),
		prompt:  prompt,
		choices: dedupeStrings(choices),
		answer:  answer,
	}
	if !containsString(choices, answer) {
		return nil, invalidf("answer", "must be reflected in the choices")
	}
	if err := attachResponses(q, c.responses); err != nil {
		return nil, err
	}
	return q, nil
}

// Prompt returns the question prompt.
func (q *MultipleChoice) Prompt() string {
	return q.prompt
}

// Choices returns a copy of the deduplicated choices in original order.
func (q *MultipleChoice) Choices() []string {
	return slices.Clone(q.choices)
}

// Answer returns the correct choice.
func (q *MultipleChoice) Answer() string {
	return q.answer
}

// AddResponse validates and appends a response.
func (q *MultipleChoice) AddResponse(response *Response) error {
	return q.base.addResponse(q, response)
}

// ValidateResponse requires a choice payload naming one of the question's
// choices.
func (q *MultipleChoice) ValidateResponse(response *Response) error {
	choice, ok := response.Choice()
	if !ok {
		return invalidf("choice", "is not present in the response")
	}
	if !containsString(q.choices, choice) {
		return invalidf("choice", "%q is not reflected in the question choices", choice)
	}
	return nil
}

// JSONData returns the serialized mapping form.
func (q *MultipleChoice) JSONData() map[string]any {
	return map[string]any{
		"kind":      "question",
		"type":      KindMultipleChoice.String(),
		"object_id": q.id,
		"prompt":    q.prompt,
		"choices":   slices.Clone(q.choices),
		"answer":    q.answer,
		"responses": q.responsesJSON(),
	}
}

// Clone returns a deep copy.
func (q *MultipleChoice) Clone() Question {
	clone := *q
	clone.choices = slices.Clone(q.choices)
	clone.responses = q.cloneResponses()
	return &clone
}

// Equal reports structural equality with another question.
func (q *MultipleChoice) Equal(other Question) bool {
	o, ok := other.(*MultipleChoice)
	if !ok {
		return false
	}
	return q.equalBase(&o.base) &&
		q.prompt == o.prompt &&
		slices.Equal(q.choices, o.choices) &&
		q.answer == o.answer
}

func (q *MultipleChoice) sealed() {}
