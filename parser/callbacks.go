package parser

// Compilation unit states reported through ReachedCUState and
// FinishedCU. The parser moves monotonically through them.
const (
	CUStateBegin    = 0 // nothing significant seen yet
	CUStateImports  = 1 // package statement (if any) handled
	CUStateTypeDefs = 2 // inside the type definition section
)

// Type definition kinds reported through GotTypeDef.
const (
	TypeDefClass      = 0
	TypeDefInterface  = 1
	TypeDefEnum       = 2
	TypeDefAnnotation = 3
	TypeDefRecord     = 4
	TypeDefObject     = 5 // Kotlin object declarations
	TypeDefError      = -1
)

// Callbacks receives structural notifications as the parser walks the
// source. Begin*/End* pairs always balance, on error paths included.
// Tokens passed to a callback are no longer owned by the parser and
// may be retained.
//
// Embed DefaultCallbacks to implement only the notifications you care
// about.
type Callbacks interface {
	// Error reports a diagnostic spanning the given source region.
	// Delivery of an error never aborts the parse.
	Error(msg string, beginLine, beginColumn, endLine, endColumn int)

	// ReachedCUState fires when the compilation unit parse moves into
	// a new state. FinishedCU fires exactly once, when the end of
	// input is reached.
	ReachedCUState(state int)
	FinishedCU(state int)

	BeginPackageStatement(tok Token)
	GotPackage(parts []Token)
	GotPackageSemi(tok Token)

	GotImport(parts []Token, isStatic bool, importTok, semiTok Token)
	GotWildcardImport(parts []Token, isStatic bool, importTok, semiTok Token)
	GotImportStmtSemi(tok Token)

	// BeginElement/EndElement bracket each class-level member.
	// included reports whether the end token belongs to the element.
	BeginElement(tok Token)
	EndElement(tok Token, included bool)

	// GotDeclBegin marks the start of a declaration whose kind is not
	// yet known; it is closed by one of the specific end callbacks, or
	// by EndDecl if the declaration could not be parsed.
	GotTopLevelDecl(tok Token)
	GotDeclBegin(tok Token)
	EndDecl(tok Token)

	GotModifier(tok Token)
	ModifiersConsumed()
	GotAnnotation(name []Token, paramsFollow bool)
	GotComment(tok Token)

	GotTypeDef(firstTok Token, tdType int)
	GotTypeDefName(tok Token)
	BeginTypeDefExtends(tok Token)
	EndTypeDefExtends()
	BeginTypeDefImplements(tok Token)
	EndTypeDefImplements()
	BeginTypeDefPermits(tok Token)
	EndTypeDefPermits()
	BeginTypeBody(lbrace Token)
	EndTypeBody(tok Token, included bool)
	GotTypeDefEnd(tok Token, included bool)
	GotInnerType(tok Token)

	GotTypeParam(tok Token)
	GotTypeParamBound(tokens []Token)
	GotMethodTypeParamsBegin()
	EndMethodTypeParams()

	BeginRecordParameters(lparen Token)
	GotRecordParameter(first, idTok Token, varargsTok *Token)
	EndRecordParameters(rparen Token)

	BeginFieldDeclarations(first Token)
	GotField(first, idTok Token, initFollows bool)
	GotSubsequentField(first, idTok Token, initFollows bool)
	EndField(tok Token, included bool)
	EndFieldDeclarations(tok Token, included bool)

	BeginVariableDecl(first Token)
	GotVariableDecl(first, idTok Token, initFollows bool)
	GotSubsequentVar(first, idTok Token, initFollows bool)
	EndVariable(tok Token, included bool)
	EndVariableDecls(tok Token, included bool)

	BeginForInitDecl(first Token)
	GotForInit(first, idTok Token)
	GotSubsequentForInit(first, idTok Token)
	EndForInit(tok Token, included bool)
	EndForInitDecls(tok Token, included bool)

	// comment is the documentation comment preceding the declaration,
	// or nil.
	GotConstructorDecl(tok Token, comment *Token)
	GotMethodDeclaration(tok Token, comment *Token)
	GotMethodParameter(tok Token, varargsTok *Token)
	GotAllMethodParameters()
	BeginThrows(tok Token)
	EndThrows()
	BeginMethodBody(lbrace Token)
	EndMethodBody(tok Token, included bool)
	EndMethodDecl(tok Token, included bool)

	BeginInitBlock(first, lbrace Token)
	EndInitBlock(rbrace Token, included bool)

	BeginAnonClassBody(lbrace Token, isEnumMember bool)
	EndAnonClassBody(rbrace Token, included bool)

	BeginFormalParameter(tok Token)
	GotTypeSpec(tokens []Token)
	GotArrayDeclarator()
	GotNewArrayDeclarator(withDimension bool)

	// Statements.
	BeginStmtBlockBody(lbrace Token)
	EndStmtBlockBody(rbrace Token, included bool)
	GotEmptyStatement()

	BeginIfStmt(tok Token)
	BeginIfCondBlock(tok Token)
	EndIfCondBlock(tok Token, included bool)
	GotElseIf(tok Token)
	EndIfStmt(tok Token, included bool)

	BeginSwitchStmt(tok Token, isExpression bool)
	BeginSwitchBlock(lbrace Token)
	BeginSwitchCase(tok Token)
	// arrow distinguishes "case X ->" arms from "case X :" arms.
	GotSwitchCaseType(tok Token, arrow bool)
	EndSwitchCase(tok Token, arrow bool)
	GotSwitchDefault()
	EndSwitchBlock(rbrace Token)
	EndSwitchStmt(tok Token, included bool)

	BeginWhileLoop(tok Token)
	BeginWhileLoopBody(tok Token)
	EndWhileLoopBody(tok Token, included bool)
	EndWhileLoop(tok Token, included bool)

	BeginDoWhile(tok Token)
	BeginDoWhileBody(tok Token)
	EndDoWhileBody(tok Token, included bool)
	EndDoWhile(tok Token, included bool)

	BeginForLoop(tok Token)
	// DeterminedForLoop fires once the header shape is known:
	// enhanced for-each versus classic three-part.
	DeterminedForLoop(forEach, varDeclared bool)
	GotForTest(present bool)
	GotForIncrement(present bool)
	BeginForLoopBody(tok Token)
	EndForLoopBody(tok Token, included bool)
	EndForLoop(tok Token, included bool)

	BeginTryCatchStmt(tok Token, hasResources bool)
	BeginTryBlock(lbrace Token)
	EndTryBlock(tok Token, included bool)
	GotCatchFinally(tok Token)
	GotCatchVarName(tok Token)
	GotMultiCatch(tok Token)
	EndTryCatchStmt(tok Token, included bool)

	BeginSynchronizedBlock(tok Token)
	EndSynchronizedBlock(tok Token, included bool)

	// label is the target label, or nil.
	GotBreakContinue(keyword Token, label *Token)
	GotReturnStatement(hasValue bool)
	GotThrow(tok Token)
	GotYieldStatement()
	GotAssert()
	// GotStatementExpression marks that the coming expression stands
	// alone as a statement.
	GotStatementExpression()

	// Expressions.
	BeginExpression(tok Token, isLambdaBody bool)
	// isEmpty reports that no expression content preceded tok.
	EndExpression(tok Token, isEmpty bool)

	GotLiteral(tok Token)
	GotIdentifier(tok Token)
	GotIdentifierEOF(tok Token)
	GotCompoundIdent(tok Token)
	GotCompoundComponent(tok Token)
	CompleteCompoundValue(tok Token)
	CompleteCompoundValueEOF(tok Token)
	CompleteCompoundClass(tok Token)
	GotParentIdentifier(tok Token)
	GotArrayTypeIdentifier(tok Token)
	GotPrimitiveTypeLiteral(tok Token)
	GotClassLiteral(tok Token)

	GotMethodCall(tok Token)
	GotMemberCall(tok Token, typeArgs []Token)
	GotMemberAccess(tok Token)
	GotMemberAccessEOF(tok Token)
	GotDotEOF(tok Token)

	GotBinaryOperator(tok Token)
	GotUnaryOperator(tok Token)
	GotPostOperator(tok Token)
	GotQuestionOperator(tok Token)
	GotQuestionColon(tok Token)
	GotInstanceOfOperator(tok Token)
	GotInstanceOfVar(tok Token)
	GotArrayElementAccess()
	GotTypeCast(tokens []Token)

	GotExprNew(tok Token)
	EndExprNew(tok Token, included bool)
	BeginArrayInitList(lbrace Token)
	EndArrayInitList(rbrace Token)

	BeginArgumentList(lparen Token)
	EndArgument()
	EndArgumentList(rparen Token)
	GotConstructorCall(tok Token)

	BeginLambdaBody(isBlock bool, lbrace *Token)
	EndLambdaBody(rbrace *Token)
	GotLambdaFormalParam()
	GotLambdaFormalName(tok Token)
	GotLambdaFormalType(tokens []Token)
}

// DefaultCallbacks is a no-op implementation of Callbacks, meant for
// embedding.
type DefaultCallbacks struct{}

var _ Callbacks = DefaultCallbacks{}

func (DefaultCallbacks) Error(string, int, int, int, int)          {}
func (DefaultCallbacks) ReachedCUState(int)                        {}
func (DefaultCallbacks) FinishedCU(int)                            {}
func (DefaultCallbacks) BeginPackageStatement(Token)               {}
func (DefaultCallbacks) GotPackage([]Token)                        {}
func (DefaultCallbacks) GotPackageSemi(Token)                      {}
func (DefaultCallbacks) GotImport([]Token, bool, Token, Token)     {}
func (DefaultCallbacks) GotWildcardImport([]Token, bool, Token, Token) {
}
func (DefaultCallbacks) GotImportStmtSemi(Token)             {}
func (DefaultCallbacks) BeginElement(Token)                  {}
func (DefaultCallbacks) EndElement(Token, bool)              {}
func (DefaultCallbacks) GotTopLevelDecl(Token)               {}
func (DefaultCallbacks) GotDeclBegin(Token)                  {}
func (DefaultCallbacks) EndDecl(Token)                       {}
func (DefaultCallbacks) GotModifier(Token)                   {}
func (DefaultCallbacks) ModifiersConsumed()                  {}
func (DefaultCallbacks) GotAnnotation([]Token, bool)         {}
func (DefaultCallbacks) GotComment(Token)                    {}
func (DefaultCallbacks) GotTypeDef(Token, int)               {}
func (DefaultCallbacks) GotTypeDefName(Token)                {}
func (DefaultCallbacks) BeginTypeDefExtends(Token)           {}
func (DefaultCallbacks) EndTypeDefExtends()                  {}
func (DefaultCallbacks) BeginTypeDefImplements(Token)        {}
func (DefaultCallbacks) EndTypeDefImplements()               {}
func (DefaultCallbacks) BeginTypeDefPermits(Token)           {}
func (DefaultCallbacks) EndTypeDefPermits()                  {}
func (DefaultCallbacks) BeginTypeBody(Token)                 {}
func (DefaultCallbacks) EndTypeBody(Token, bool)             {}
func (DefaultCallbacks) GotTypeDefEnd(Token, bool)           {}
func (DefaultCallbacks) GotInnerType(Token)                  {}
func (DefaultCallbacks) GotTypeParam(Token)                  {}
func (DefaultCallbacks) GotTypeParamBound([]Token)           {}
func (DefaultCallbacks) GotMethodTypeParamsBegin()           {}
func (DefaultCallbacks) EndMethodTypeParams()                {}
func (DefaultCallbacks) BeginRecordParameters(Token)         {}
func (DefaultCallbacks) GotRecordParameter(Token, Token, *Token) {
}
func (DefaultCallbacks) EndRecordParameters(Token)           {}
func (DefaultCallbacks) BeginFieldDeclarations(Token)        {}
func (DefaultCallbacks) GotField(Token, Token, bool)         {}
func (DefaultCallbacks) GotSubsequentField(Token, Token, bool) {
}
func (DefaultCallbacks) EndField(Token, bool)             {}
func (DefaultCallbacks) EndFieldDeclarations(Token, bool)  {}
func (DefaultCallbacks) BeginVariableDecl(Token)           {}
func (DefaultCallbacks) GotVariableDecl(Token, Token, bool) {
}
func (DefaultCallbacks) GotSubsequentVar(Token, Token, bool) {
}
func (DefaultCallbacks) EndVariable(Token, bool)         {}
func (DefaultCallbacks) EndVariableDecls(Token, bool)    {}
func (DefaultCallbacks) BeginForInitDecl(Token)          {}
func (DefaultCallbacks) GotForInit(Token, Token)         {}
func (DefaultCallbacks) GotSubsequentForInit(Token, Token) {
}
func (DefaultCallbacks) EndForInit(Token, bool)            {}
func (DefaultCallbacks) EndForInitDecls(Token, bool)       {}
func (DefaultCallbacks) GotConstructorDecl(Token, *Token)  {}
func (DefaultCallbacks) GotMethodDeclaration(Token, *Token) {
}
func (DefaultCallbacks) GotMethodParameter(Token, *Token) {}
func (DefaultCallbacks) GotAllMethodParameters()          {}
func (DefaultCallbacks) BeginThrows(Token)                {}
func (DefaultCallbacks) EndThrows()                       {}
func (DefaultCallbacks) BeginMethodBody(Token)            {}
func (DefaultCallbacks) EndMethodBody(Token, bool)        {}
func (DefaultCallbacks) EndMethodDecl(Token, bool)        {}
func (DefaultCallbacks) BeginInitBlock(Token, Token)      {}
func (DefaultCallbacks) EndInitBlock(Token, bool)         {}
func (DefaultCallbacks) BeginAnonClassBody(Token, bool)   {}
func (DefaultCallbacks) EndAnonClassBody(Token, bool)     {}
func (DefaultCallbacks) BeginFormalParameter(Token)       {}
func (DefaultCallbacks) GotTypeSpec([]Token)              {}
func (DefaultCallbacks) GotArrayDeclarator()              {}
func (DefaultCallbacks) GotNewArrayDeclarator(bool)       {}
func (DefaultCallbacks) BeginStmtBlockBody(Token)         {}
func (DefaultCallbacks) EndStmtBlockBody(Token, bool)     {}
func (DefaultCallbacks) GotEmptyStatement()               {}
func (DefaultCallbacks) BeginIfStmt(Token)                {}
func (DefaultCallbacks) BeginIfCondBlock(Token)           {}
func (DefaultCallbacks) EndIfCondBlock(Token, bool)       {}
func (DefaultCallbacks) GotElseIf(Token)                  {}
func (DefaultCallbacks) EndIfStmt(Token, bool)            {}
func (DefaultCallbacks) BeginSwitchStmt(Token, bool)      {}
func (DefaultCallbacks) BeginSwitchBlock(Token)           {}
func (DefaultCallbacks) BeginSwitchCase(Token)            {}
func (DefaultCallbacks) GotSwitchCaseType(Token, bool)    {}
func (DefaultCallbacks) EndSwitchCase(Token, bool)        {}
func (DefaultCallbacks) GotSwitchDefault()                {}
func (DefaultCallbacks) EndSwitchBlock(Token)             {}
func (DefaultCallbacks) EndSwitchStmt(Token, bool)        {}
func (DefaultCallbacks) BeginWhileLoop(Token)             {}
func (DefaultCallbacks) BeginWhileLoopBody(Token)         {}
func (DefaultCallbacks) EndWhileLoopBody(Token, bool)     {}
func (DefaultCallbacks) EndWhileLoop(Token, bool)         {}
func (DefaultCallbacks) BeginDoWhile(Token)               {}
func (DefaultCallbacks) BeginDoWhileBody(Token)           {}
func (DefaultCallbacks) EndDoWhileBody(Token, bool)       {}
func (DefaultCallbacks) EndDoWhile(Token, bool)           {}
func (DefaultCallbacks) BeginForLoop(Token)               {}
func (DefaultCallbacks) DeterminedForLoop(bool, bool)     {}
func (DefaultCallbacks) GotForTest(bool)                  {}
func (DefaultCallbacks) GotForIncrement(bool)             {}
func (DefaultCallbacks) BeginForLoopBody(Token)           {}
func (DefaultCallbacks) EndForLoopBody(Token, bool)       {}
func (DefaultCallbacks) EndForLoop(Token, bool)           {}
func (DefaultCallbacks) BeginTryCatchStmt(Token, bool)    {}
func (DefaultCallbacks) BeginTryBlock(Token)              {}
func (DefaultCallbacks) EndTryBlock(Token, bool)          {}
func (DefaultCallbacks) GotCatchFinally(Token)            {}
func (DefaultCallbacks) GotCatchVarName(Token)            {}
func (DefaultCallbacks) GotMultiCatch(Token)              {}
func (DefaultCallbacks) EndTryCatchStmt(Token, bool)      {}
func (DefaultCallbacks) BeginSynchronizedBlock(Token)     {}
func (DefaultCallbacks) EndSynchronizedBlock(Token, bool) {}
func (DefaultCallbacks) GotBreakContinue(Token, *Token)   {}
func (DefaultCallbacks) GotReturnStatement(bool)          {}
func (DefaultCallbacks) GotThrow(Token)                   {}
func (DefaultCallbacks) GotYieldStatement()               {}
func (DefaultCallbacks) GotAssert()                       {}
func (DefaultCallbacks) GotStatementExpression()          {}
func (DefaultCallbacks) BeginExpression(Token, bool)      {}
func (DefaultCallbacks) EndExpression(Token, bool)        {}
func (DefaultCallbacks) GotLiteral(Token)                 {}
func (DefaultCallbacks) GotIdentifier(Token)              {}
func (DefaultCallbacks) GotIdentifierEOF(Token)           {}
func (DefaultCallbacks) GotCompoundIdent(Token)           {}
func (DefaultCallbacks) GotCompoundComponent(Token)       {}
func (DefaultCallbacks) CompleteCompoundValue(Token)      {}
func (DefaultCallbacks) CompleteCompoundValueEOF(Token)   {}
func (DefaultCallbacks) CompleteCompoundClass(Token)      {}
func (DefaultCallbacks) GotParentIdentifier(Token)        {}
func (DefaultCallbacks) GotArrayTypeIdentifier(Token)     {}
func (DefaultCallbacks) GotPrimitiveTypeLiteral(Token)    {}
func (DefaultCallbacks) GotClassLiteral(Token)            {}
func (DefaultCallbacks) GotMethodCall(Token)              {}
func (DefaultCallbacks) GotMemberCall(Token, []Token)     {}
func (DefaultCallbacks) GotMemberAccess(Token)            {}
func (DefaultCallbacks) GotMemberAccessEOF(Token)         {}
func (DefaultCallbacks) GotDotEOF(Token)                  {}
func (DefaultCallbacks) GotBinaryOperator(Token)          {}
func (DefaultCallbacks) GotUnaryOperator(Token)           {}
func (DefaultCallbacks) GotPostOperator(Token)            {}
func (DefaultCallbacks) GotQuestionOperator(Token)        {}
func (DefaultCallbacks) GotQuestionColon(Token)           {}
func (DefaultCallbacks) GotInstanceOfOperator(Token)      {}
func (DefaultCallbacks) GotInstanceOfVar(Token)           {}
func (DefaultCallbacks) GotArrayElementAccess()           {}
func (DefaultCallbacks) GotTypeCast([]Token)              {}
func (DefaultCallbacks) GotExprNew(Token)                 {}
func (DefaultCallbacks) EndExprNew(Token, bool)           {}
func (DefaultCallbacks) BeginArrayInitList(Token)         {}
func (DefaultCallbacks) EndArrayInitList(Token)           {}
func (DefaultCallbacks) BeginArgumentList(Token)          {}
func (DefaultCallbacks) EndArgument()                     {}
func (DefaultCallbacks) EndArgumentList(Token)            {}
func (DefaultCallbacks) GotConstructorCall(Token)         {}
func (DefaultCallbacks) BeginLambdaBody(bool, *Token)     {}
func (DefaultCallbacks) EndLambdaBody(*Token)             {}
func (DefaultCallbacks) GotLambdaFormalParam()            {}
func (DefaultCallbacks) GotLambdaFormalName(Token)        {}
func (DefaultCallbacks) GotLambdaFormalType([]Token)      {}
