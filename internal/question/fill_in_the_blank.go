package question

// FillInTheBlank is a question presenting text before and after a blank the
// user is expected to complete.
type FillInTheBlank struct {
	base
	beforePrompt string
	afterPrompt  string
	answer       string
}

// NewFillInTheBlank constructs a fill in the blank question.
func NewFillInTheBlank(beforePrompt, afterPrompt, answer string, opts ...Option) (*FillInTheBlank, error) {
	c := applyOptions(opts)
	q := &FillInTheBlank{
		base:         newBase(KindFillInTheBlank, c),
		beforePrompt: beforePrompt,
		afterPrompt:  afterPrompt,
		answer:       answer,
	}
	if err := attachResponses(q, c.responses); err != nil {
		return nil, err
	}
	return q, nil
}

// BeforePrompt returns the text before the blank.
func (q *FillInTheBlank) BeforePrompt() string {
	return q.beforePrompt
}

// AfterPrompt returns the text after the blank.
func (q *FillInTheBlank) AfterPrompt() string {
	return q.afterPrompt
}

// Answer returns the expected answer text.
func (q *FillInTheBlank) Answer() string {
	return q.answer
}

// AddResponse validates and appends a response.
func (q *FillInTheBlank) AddResponse(response *Response) error {
	return q.base.addResponse(q, response)
}

// ValidateResponse accepts any response payload at this layer.
func (q *FillInTheBlank) ValidateResponse(response *Response) error {
	return nil
}

// JSONData returns the serialized mapping form.
func (q *FillInTheBlank) JSONData() map[string]any {
	return map[string]any{
		"kind":          "question",
		"type":          KindFillInTheBlank.String(),
		"object_id":     q.id,
		"before_prompt": q.beforePrompt,
		"after_prompt":  q.afterPrompt,
		"answer":        q.answer,
		"responses":     q.responsesJSON(),
	}
}

// Clone returns a deep copy.
func (q *FillInTheBlank) Clone() Question {
	clone := *q
	clone.responses = q.cloneResponses()
	return &clone
}

// Equal reports structural equality with another question.
func (q *FillInTheBlank) Equal(other Question) bool {
	o, ok := other.(*FillInTheBlank)
	if !ok {
		return false
	}
	return q.equalBase(&o.base) &&
		q.beforePrompt == o.beforePrompt &&
		q.afterPrompt == o.afterPrompt &&
		q.answer == o.answer
}

func (q *FillInTheBlank) sealed() {}
