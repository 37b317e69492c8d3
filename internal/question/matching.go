package question

import "slices"

// Matching is a question answered by pairing each left choice with a right
// choice.
type Matching struct {
	base
	prompt       string
	leftChoices  []string
	rightChoices []string
	answer       OrderedMapping
}

// NewMatching constructs a matching question. Both choice lists are
// deduplicated preserving first occurrence.
//
// The construction invariant checks every answer *value* against the left
// choices and against the right choices, and never checks the answer keys.
// That mirrors the historical serialized format: quizzes whose answer keys
// drifted from the left choices still load, while ill-keyed responses are
// rejected by ValidateResponse. Intentional; do not "fix" one side only.
func NewMatching(prompt string, leftChoices, rightChoices []string, answer OrderedMapping, opts ...Option) (*Matching, error) {
	c := applyOptions(opts)
	q := &Matching{
		base:         newBase(KindMatching, c),
		prompt:       prompt,
		leftChoices:  dedupeStrings(leftChoices),
		rightChoices: dedupeStrings(rightChoices),
		answer:       answer.Clone(),
	}
	for _, pair := range q.answer {
		if pair.Value == nil || !containsString(q.leftChoices, *pair.Value) {
			return nil, invalidf("answer", "every answer choice must be reflected in the left choices")
		}
		if !containsString(q.rightChoices, *pair.Value) {
			return nil, invalidf("answer", "every answer choice must be reflected in the right choices")
		}
	}
	if err := attachResponses(q, c.responses); err != nil {
		return nil, err
	}
	return q, nil
}

// Prompt returns the question prompt.
func (q *Matching) Prompt() string {
	return q.prompt
}

// LeftChoices returns a copy of the deduplicated left column.
func (q *Matching) LeftChoices() []string {
	return slices.Clone(q.leftChoices)
}

// RightChoices returns a copy of the deduplicated right column.
func (q *Matching) RightChoices() []string {
	return slices.Clone(q.rightChoices)
}

// Answer returns a copy of the correct left-to-right mapping.
func (q *Matching) Answer() OrderedMapping {
	return q.answer.Clone()
}

// AddResponse validates and appends a response.
func (q *Matching) AddResponse(response *Response) error {
	return q.base.addResponse(q, response)
}

// ValidateResponse requires an answer_mapping payload whose key sequence
// equals the left choices exactly (same order, same length) and whose
// values are each either nil or one of the right choices.
func (q *Matching) ValidateResponse(response *Response) error {
	mapping, ok := response.AnswerMapping()
	if !ok {
		return invalidf("answer_mapping", "is not present in the response")
	}
	if !slices.Equal(mapping.Keys(), q.leftChoices) {
		return invalidf("answer_mapping", "keys must be the same as the left choices for the question")
	}
	for _, pair := range mapping {
		if pair.Value == nil {
			continue
		}
		if !containsString(q.rightChoices, *pair.Value) {
			return invalidf("answer_mapping", "value %q is not reflected in the right choices", *pair.Value)
		}
	}
	return nil
}

// JSONData returns the serialized mapping form.
func (q *Matching) JSONData() map[string]any {
	return map[string]any{
		"kind":          "question",
		"type":          KindMatching.String(),
		"object_id":     q.id,
		"prompt":        q.prompt,
		"left_choices":  slices.Clone(q.leftChoices),
		"right_choices": slices.Clone(q.rightChoices),
		"answer":        q.answer.Clone(),
		"responses":     q.responsesJSON(),
	}
}

// Clone returns a deep copy.
func (q *Matching) Clone() Question {
	clone := *q
	clone.leftChoices = slices.Clone(q.leftChoices)
	clone.rightChoices = slices.Clone(q.rightChoices)
	clone.answer = q.answer.Clone()
	clone.responses = q.cloneResponses()
	return &clone
}

// Equal reports structural equality with another question.
func (q *Matching) Equal(other Question) bool {
	o, ok := other.(*Matching)
	if !ok {
		return false
	}
	return q.equalBase(&o.base) &&
		q.prompt == o.prompt &&
		slices.Equal(q.leftChoices, o.leftChoices) &&
		slices.Equal(q.rightChoices, o.rightChoices) &&
		q.answer.Equal(o.answer)
}

func (q *Matching) sealed() {}
