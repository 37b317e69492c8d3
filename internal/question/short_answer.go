package question

// ShortAnswer is a question answered with free text.
type ShortAnswer struct {
	base
	prompt string
	answer string
}

// NewShortAnswer constructs a short answer question.
func NewShortAnswer(prompt, answer string, opts ...Option) (*ShortAnswer, error) {
	c := applyOptions(opts)
	q := &ShortAnswer{
		base:   newBase(KindShortAnswer, c),
		prompt: prompt,
		answer: answer,
	}
	if err := attachResponses(q, c.responses); err != nil {
		return nil, err
	}
	return q, nil
}

// Prompt returns the question prompt.
func (q *ShortAnswer) Prompt() string {
	return q.prompt
}

// Answer returns the expected answer text.
func (q *ShortAnswer) Answer() string {
	return q.answer
}

// AddResponse validates and appends a response.
func (q *ShortAnswer) AddResponse(response *Response) error {
	return q.base.addResponse(q, response)
}

// ValidateResponse accepts any response payload at this layer.
func (q *ShortAnswer) ValidateResponse(response *Response) error {
	return nil
}

// JSONData returns the serialized mapping form.
func (q *ShortAnswer) JSONData() map[string]any {
	return map[string]any{
		"kind":      "question",
		"type":      KindShortAnswer.String(),
		"object_id": q.id,
		"prompt":    q.prompt,
		"answer":    q.answer,
		"responses": q.responsesJSON(),
	}
}

// Clone returns a deep copy.
func (q *ShortAnswer) Clone() Question {
	clone := *q
	clone.responses = q.cloneResponses()
	return &clone
}

// Equal reports structural equality with another question.
func (q *ShortAnswer) Equal(other Question) bool {
	o, ok := other.(*ShortAnswer)
	if !ok {
		return false
	}
	return q.equalBase(&o.base) && q.prompt == o.prompt && q.answer == o.answer
}

func (q *ShortAnswer) sealed() {}
