package question

// Kind identifies one of the closed set of question variants. It doubles as
// the type discriminator in the serialized mapping format.
type Kind string

const (
	// KindMultipleChoice is a question answered by picking one choice.
	KindMultipleChoice Kind = "multiple_choice"
	// KindMatching is a question answered by pairing left and right choices.
	KindMatching Kind = "matching"
	// KindShortAnswer is a question answered with free text.
	KindShortAnswer Kind = "short_answer"
	// KindFillInTheBlank is a question answered by completing a blank.
	KindFillInTheBlank Kind = "fill_in_the_blank"
)

// Kinds returns the supported variants in menu order.
func Kinds() []Kind {
	return []Kind{KindMultipleChoice, KindMatching, KindShortAnswer, KindFillInTheBlank}
}

// ParseKind validates a type discriminator against the known variants.
func ParseKind(value string) (Kind, error) {
	switch Kind(value) {
	case KindMultipleChoice, KindMatching, KindShortAnswer, KindFillInTheBlank:
		return Kind(value), nil
	default:
		return "", &UnsupportedTypeError{Type: value}
	}
}

// String returns the wire form of the kind.
func (k Kind) String() string {
	return string(k)
}
