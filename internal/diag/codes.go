package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexUnrecognizedChar    Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexInvalidDirective    Code = 1004
	LexIdentTooLong        Code = 1005

	// I/O
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	LexUnrecognizedChar:    "Unrecognized character",
	LexUnterminatedString:  "Unterminated string",
	LexUnterminatedComment: "Unterminated comment",
	LexInvalidDirective:    "Invalid directive",
	LexIdentTooLong:        "Identifier too long",
	IOLoadFileError:        "Failed to load file",
	IOCacheError:           "Token cache failure",
}

// ID returns the stable short identifier, e.g. LEX1002.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
