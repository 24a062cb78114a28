package parser

// Diagnostic messages shared between the grammar variants. They reach
// the consumer through the Error callback together with a source span;
// they never abort the parse.
const (
	errUnexpectedEOF         = "unexpected end of input"
	errExpectedIdent         = "expected an identifier"
	errExpectedSemi          = "expected ';'"
	errExpectedLParen        = "expected '('"
	errExpectedRParen        = "expected ')'"
	errExpectedLBrace        = "expected '{'"
	errExpectedRBrace        = "expected '}'"
	errExpectedLBracket      = "expected '['"
	errExpectedRBracket      = "expected ']'"
	errExpectedColon         = "expected ':'"
	errExpectedComma         = "expected ','"
	errExpectedTypeName      = "expected a type name"
	errExpectedTypeSpec      = "expected a type specification"
	errExpectedExpression    = "expected an expression"
	errExpectedWhile         = "expected 'while' after body of 'do' loop"
	errExpectedCatchFinally  = "expected 'catch' or 'finally' after 'try' block"
	errExpectedMemberName    = "expected a field or method name"
	errExpectedMethodBody    = "expected a method body or ';'"
	errIncompleteTypeName    = "incomplete type name"
	errIncompletePackageName = "incomplete package name"
	errIncompleteImport      = "incomplete import statement"
	errMalformedTypeDef      = "malformed type definition"
	errMalformedStatement    = "malformed statement"
	errMalformedSwitchCase   = "colon-style case labels cannot list multiple patterns"
	errUnexpectedToken       = "unexpected token"
)
