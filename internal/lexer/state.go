package lexer

// State is the scanner's position in its state machine.
type State uint8

const (
	StateStart State = iota
	StateIdentOrKeyword
	StateNumber
	StateString
	StateLineComment
	StateBlockComment
	StateDirective
	// StateDone is terminal: every further Next returns EOF.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateIdentOrKeyword:
		return "InIdentifierOrKeyword"
	case StateNumber:
		return "InNumber"
	case StateString:
		return "InString"
	case StateLineComment:
		return "InLineComment"
	case StateBlockComment:
		return "InBlockComment"
	case StateDirective:
		return "InDirective"
	case StateDone:
		return "Done"
	}
	return "Unknown"
}
