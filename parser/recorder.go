package parser

import (
	"fmt"
	"strings"
)

// Event is one recorded notification.
type Event struct {
	Name string
	Args []string
}

func (e Event) String() string {
	if len(e.Args) == 0 {
		return e.Name
	}
	return e.Name + "(" + strings.Join(e.Args, ", ") + ")"
}

// EventRecorder is a Callbacks implementation that records every
// notification as a printable trace. The trace preserves notification
// order, so Begin/End pairing and event sequence can be inspected
// after the parse.
type EventRecorder struct {
	Events []Event
}

var _ Callbacks = (*EventRecorder)(nil)

// Names returns just the notification names, in order.
func (r *EventRecorder) Names() []string {
	names := make([]string, len(r.Events))
	for i, e := range r.Events {
		names[i] = e.Name
	}
	return names
}

// Errors returns the recorded diagnostics.
func (r *EventRecorder) Errors() []Event {
	var errs []Event
	for _, e := range r.Events {
		if e.Name == "Error" {
			errs = append(errs, e)
		}
	}
	return errs
}

func (r *EventRecorder) String() string {
	var b strings.Builder
	for _, e := range r.Events {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *EventRecorder) record(name string, args ...string) {
	r.Events = append(r.Events, Event{Name: name, Args: args})
}

func evTok(tok Token) string {
	if tok.Literal == "" {
		return fmt.Sprintf("%s@%d:%d", tok.Kind, tok.Line(), tok.Column())
	}
	return fmt.Sprintf("%s(%s)@%d:%d", tok.Kind, tok.Literal, tok.Line(), tok.Column())
}

func evTokPtr(tok *Token) string {
	if tok == nil {
		return "nil"
	}
	return evTok(*tok)
}

func evToks(toks []Token) string {
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = evTok(t)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func evBool(v bool) string { return fmt.Sprintf("%t", v) }
func evInt(v int) string   { return fmt.Sprintf("%d", v) }

func (r *EventRecorder) Error(msg string, beginLine, beginColumn, endLine, endColumn int) {
	r.record("Error", msg, fmt.Sprintf("%d:%d-%d:%d", beginLine, beginColumn, endLine, endColumn))
}

func (r *EventRecorder) ReachedCUState(state int) { r.record("ReachedCUState", evInt(state)) }
func (r *EventRecorder) FinishedCU(state int)     { r.record("FinishedCU", evInt(state)) }

func (r *EventRecorder) BeginPackageStatement(tok Token) {
	r.record("BeginPackageStatement", evTok(tok))
}
func (r *EventRecorder) GotPackage(parts []Token) { r.record("GotPackage", evToks(parts)) }
func (r *EventRecorder) GotPackageSemi(tok Token) { r.record("GotPackageSemi", evTok(tok)) }

func (r *EventRecorder) GotImport(parts []Token, isStatic bool, importTok, semiTok Token) {
	r.record("GotImport", evToks(parts), evBool(isStatic))
}

func (r *EventRecorder) GotWildcardImport(parts []Token, isStatic bool, importTok, semiTok Token) {
	r.record("GotWildcardImport", evToks(parts), evBool(isStatic))
}
func (r *EventRecorder) GotImportStmtSemi(tok Token) { r.record("GotImportStmtSemi", evTok(tok)) }

func (r *EventRecorder) BeginElement(tok Token) { r.record("BeginElement", evTok(tok)) }
func (r *EventRecorder) EndElement(tok Token, included bool) {
	r.record("EndElement", evTok(tok), evBool(included))
}

func (r *EventRecorder) GotTopLevelDecl(tok Token) { r.record("GotTopLevelDecl", evTok(tok)) }
func (r *EventRecorder) GotDeclBegin(tok Token)    { r.record("GotDeclBegin", evTok(tok)) }
func (r *EventRecorder) EndDecl(tok Token)         { r.record("EndDecl", evTok(tok)) }

func (r *EventRecorder) GotModifier(tok Token) { r.record("GotModifier", evTok(tok)) }
func (r *EventRecorder) ModifiersConsumed()    { r.record("ModifiersConsumed") }
func (r *EventRecorder) GotAnnotation(name []Token, paramsFollow bool) {
	r.record("GotAnnotation", evToks(name), evBool(paramsFollow))
}
func (r *EventRecorder) GotComment(tok Token) { r.record("GotComment", evTok(tok)) }

func (r *EventRecorder) GotTypeDef(firstTok Token, tdType int) {
	r.record("GotTypeDef", evTok(firstTok), evInt(tdType))
}
func (r *EventRecorder) GotTypeDefName(tok Token)      { r.record("GotTypeDefName", evTok(tok)) }
func (r *EventRecorder) BeginTypeDefExtends(tok Token) { r.record("BeginTypeDefExtends", evTok(tok)) }
func (r *EventRecorder) EndTypeDefExtends()            { r.record("EndTypeDefExtends") }
func (r *EventRecorder) BeginTypeDefImplements(tok Token) {
	r.record("BeginTypeDefImplements", evTok(tok))
}
func (r *EventRecorder) EndTypeDefImplements()         { r.record("EndTypeDefImplements") }
func (r *EventRecorder) BeginTypeDefPermits(tok Token) { r.record("BeginTypeDefPermits", evTok(tok)) }
func (r *EventRecorder) EndTypeDefPermits()            { r.record("EndTypeDefPermits") }
func (r *EventRecorder) BeginTypeBody(lbrace Token)    { r.record("BeginTypeBody", evTok(lbrace)) }
func (r *EventRecorder) EndTypeBody(tok Token, included bool) {
	r.record("EndTypeBody", evTok(tok), evBool(included))
}
func (r *EventRecorder) GotTypeDefEnd(tok Token, included bool) {
	r.record("GotTypeDefEnd", evTok(tok), evBool(included))
}
func (r *EventRecorder) GotInnerType(tok Token) { r.record("GotInnerType", evTok(tok)) }

func (r *EventRecorder) GotTypeParam(tok Token) { r.record("GotTypeParam", evTok(tok)) }
func (r *EventRecorder) GotTypeParamBound(tokens []Token) {
	r.record("GotTypeParamBound", evToks(tokens))
}
func (r *EventRecorder) GotMethodTypeParamsBegin() { r.record("GotMethodTypeParamsBegin") }
func (r *EventRecorder) EndMethodTypeParams()      { r.record("EndMethodTypeParams") }

func (r *EventRecorder) BeginRecordParameters(lparen Token) {
	r.record("BeginRecordParameters", evTok(lparen))
}
func (r *EventRecorder) GotRecordParameter(first, idTok Token, varargsTok *Token) {
	r.record("GotRecordParameter", evTok(first), evTok(idTok), evTokPtr(varargsTok))
}
func (r *EventRecorder) EndRecordParameters(rparen Token) {
	r.record("EndRecordParameters", evTok(rparen))
}

func (r *EventRecorder) BeginFieldDeclarations(first Token) {
	r.record("BeginFieldDeclarations", evTok(first))
}
func (r *EventRecorder) GotField(first, idTok Token, initFollows bool) {
	r.record("GotField", evTok(first), evTok(idTok), evBool(initFollows))
}
func (r *EventRecorder) GotSubsequentField(first, idTok Token, initFollows bool) {
	r.record("GotSubsequentField", evTok(first), evTok(idTok), evBool(initFollows))
}
func (r *EventRecorder) EndField(tok Token, included bool) {
	r.record("EndField", evTok(tok), evBool(included))
}
func (r *EventRecorder) EndFieldDeclarations(tok Token, included bool) {
	r.record("EndFieldDeclarations", evTok(tok), evBool(included))
}

func (r *EventRecorder) BeginVariableDecl(first Token) { r.record("BeginVariableDecl", evTok(first)) }
func (r *EventRecorder) GotVariableDecl(first, idTok Token, initFollows bool) {
	r.record("GotVariableDecl", evTok(first), evTok(idTok), evBool(initFollows))
}
func (r *EventRecorder) GotSubsequentVar(first, idTok Token, initFollows bool) {
	r.record("GotSubsequentVar", evTok(first), evTok(idTok), evBool(initFollows))
}
func (r *EventRecorder) EndVariable(tok Token, included bool) {
	r.record("EndVariable", evTok(tok), evBool(included))
}
func (r *EventRecorder) EndVariableDecls(tok Token, included bool) {
	r.record("EndVariableDecls", evTok(tok), evBool(included))
}

func (r *EventRecorder) BeginForInitDecl(first Token) { r.record("BeginForInitDecl", evTok(first)) }
func (r *EventRecorder) GotForInit(first, idTok Token) {
	r.record("GotForInit", evTok(first), evTok(idTok))
}
func (r *EventRecorder) GotSubsequentForInit(first, idTok Token) {
	r.record("GotSubsequentForInit", evTok(first), evTok(idTok))
}
func (r *EventRecorder) EndForInit(tok Token, included bool) {
	r.record("EndForInit", evTok(tok), evBool(included))
}
func (r *EventRecorder) EndForInitDecls(tok Token, included bool) {
	r.record("EndForInitDecls", evTok(tok), evBool(included))
}

func (r *EventRecorder) GotConstructorDecl(tok Token, comment *Token) {
	r.record("GotConstructorDecl", evTok(tok))
}
func (r *EventRecorder) GotMethodDeclaration(tok Token, comment *Token) {
	r.record("GotMethodDeclaration", evTok(tok))
}
func (r *EventRecorder) GotMethodParameter(tok Token, varargsTok *Token) {
	r.record("GotMethodParameter", evTok(tok), evTokPtr(varargsTok))
}
func (r *EventRecorder) GotAllMethodParameters() { r.record("GotAllMethodParameters") }
func (r *EventRecorder) BeginThrows(tok Token)   { r.record("BeginThrows", evTok(tok)) }
func (r *EventRecorder) EndThrows()              { r.record("EndThrows") }
func (r *EventRecorder) BeginMethodBody(lbrace Token) {
	r.record("BeginMethodBody", evTok(lbrace))
}
func (r *EventRecorder) EndMethodBody(tok Token, included bool) {
	r.record("EndMethodBody", evTok(tok), evBool(included))
}
func (r *EventRecorder) EndMethodDecl(tok Token, included bool) {
	r.record("EndMethodDecl", evTok(tok), evBool(included))
}

func (r *EventRecorder) BeginInitBlock(first, lbrace Token) {
	r.record("BeginInitBlock", evTok(first), evTok(lbrace))
}
func (r *EventRecorder) EndInitBlock(rbrace Token, included bool) {
	r.record("EndInitBlock", evTok(rbrace), evBool(included))
}

func (r *EventRecorder) BeginAnonClassBody(lbrace Token, isEnumMember bool) {
	r.record("BeginAnonClassBody", evTok(lbrace), evBool(isEnumMember))
}
func (r *EventRecorder) EndAnonClassBody(rbrace Token, included bool) {
	r.record("EndAnonClassBody", evTok(rbrace), evBool(included))
}

func (r *EventRecorder) BeginFormalParameter(tok Token) {
	r.record("BeginFormalParameter", evTok(tok))
}
func (r *EventRecorder) GotTypeSpec(tokens []Token) { r.record("GotTypeSpec", evToks(tokens)) }
func (r *EventRecorder) GotArrayDeclarator()        { r.record("GotArrayDeclarator") }
func (r *EventRecorder) GotNewArrayDeclarator(withDimension bool) {
	r.record("GotNewArrayDeclarator", evBool(withDimension))
}

func (r *EventRecorder) BeginStmtBlockBody(lbrace Token) {
	r.record("BeginStmtBlockBody", evTok(lbrace))
}
func (r *EventRecorder) EndStmtBlockBody(rbrace Token, included bool) {
	r.record("EndStmtBlockBody", evTok(rbrace), evBool(included))
}
func (r *EventRecorder) GotEmptyStatement() { r.record("GotEmptyStatement") }

func (r *EventRecorder) BeginIfStmt(tok Token)      { r.record("BeginIfStmt", evTok(tok)) }
func (r *EventRecorder) BeginIfCondBlock(tok Token) { r.record("BeginIfCondBlock", evTok(tok)) }
func (r *EventRecorder) EndIfCondBlock(tok Token, included bool) {
	r.record("EndIfCondBlock", evTok(tok), evBool(included))
}
func (r *EventRecorder) GotElseIf(tok Token) { r.record("GotElseIf", evTok(tok)) }
func (r *EventRecorder) EndIfStmt(tok Token, included bool) {
	r.record("EndIfStmt", evTok(tok), evBool(included))
}

func (r *EventRecorder) BeginSwitchStmt(tok Token, isExpression bool) {
	r.record("BeginSwitchStmt", evTok(tok), evBool(isExpression))
}
func (r *EventRecorder) BeginSwitchBlock(lbrace Token) { r.record("BeginSwitchBlock", evTok(lbrace)) }
func (r *EventRecorder) BeginSwitchCase(tok Token)     { r.record("BeginSwitchCase", evTok(tok)) }
func (r *EventRecorder) GotSwitchCaseType(tok Token, arrow bool) {
	r.record("GotSwitchCaseType", evTok(tok), evBool(arrow))
}
func (r *EventRecorder) EndSwitchCase(tok Token, arrow bool) {
	r.record("EndSwitchCase", evTok(tok), evBool(arrow))
}
func (r *EventRecorder) GotSwitchDefault()            { r.record("GotSwitchDefault") }
func (r *EventRecorder) EndSwitchBlock(rbrace Token)  { r.record("EndSwitchBlock", evTok(rbrace)) }
func (r *EventRecorder) EndSwitchStmt(tok Token, included bool) {
	r.record("EndSwitchStmt", evTok(tok), evBool(included))
}

func (r *EventRecorder) BeginWhileLoop(tok Token)     { r.record("BeginWhileLoop", evTok(tok)) }
func (r *EventRecorder) BeginWhileLoopBody(tok Token) { r.record("BeginWhileLoopBody", evTok(tok)) }
func (r *EventRecorder) EndWhileLoopBody(tok Token, included bool) {
	r.record("EndWhileLoopBody", evTok(tok), evBool(included))
}
func (r *EventRecorder) EndWhileLoop(tok Token, included bool) {
	r.record("EndWhileLoop", evTok(tok), evBool(included))
}

func (r *EventRecorder) BeginDoWhile(tok Token)     { r.record("BeginDoWhile", evTok(tok)) }
func (r *EventRecorder) BeginDoWhileBody(tok Token) { r.record("BeginDoWhileBody", evTok(tok)) }
func (r *EventRecorder) EndDoWhileBody(tok Token, included bool) {
	r.record("EndDoWhileBody", evTok(tok), evBool(included))
}
func (r *EventRecorder) EndDoWhile(tok Token, included bool) {
	r.record("EndDoWhile", evTok(tok), evBool(included))
}

func (r *EventRecorder) BeginForLoop(tok Token) { r.record("BeginForLoop", evTok(tok)) }
func (r *EventRecorder) DeterminedForLoop(forEach, varDeclared bool) {
	r.record("DeterminedForLoop", evBool(forEach), evBool(varDeclared))
}
func (r *EventRecorder) GotForTest(present bool)      { r.record("GotForTest", evBool(present)) }
func (r *EventRecorder) GotForIncrement(present bool) { r.record("GotForIncrement", evBool(present)) }
func (r *EventRecorder) BeginForLoopBody(tok Token)   { r.record("BeginForLoopBody", evTok(tok)) }
func (r *EventRecorder) EndForLoopBody(tok Token, included bool) {
	r.record("EndForLoopBody", evTok(tok), evBool(included))
}
func (r *EventRecorder) EndForLoop(tok Token, included bool) {
	r.record("EndForLoop", evTok(tok), evBool(included))
}

func (r *EventRecorder) BeginTryCatchStmt(tok Token, hasResources bool) {
	r.record("BeginTryCatchStmt", evTok(tok), evBool(hasResources))
}
func (r *EventRecorder) BeginTryBlock(lbrace Token) { r.record("BeginTryBlock", evTok(lbrace)) }
func (r *EventRecorder) EndTryBlock(tok Token, included bool) {
	r.record("EndTryBlock", evTok(tok), evBool(included))
}
func (r *EventRecorder) GotCatchFinally(tok Token) { r.record("GotCatchFinally", evTok(tok)) }
func (r *EventRecorder) GotCatchVarName(tok Token) { r.record("GotCatchVarName", evTok(tok)) }
func (r *EventRecorder) GotMultiCatch(tok Token)   { r.record("GotMultiCatch", evTok(tok)) }
func (r *EventRecorder) EndTryCatchStmt(tok Token, included bool) {
	r.record("EndTryCatchStmt", evTok(tok), evBool(included))
}

func (r *EventRecorder) BeginSynchronizedBlock(tok Token) {
	r.record("BeginSynchronizedBlock", evTok(tok))
}
func (r *EventRecorder) EndSynchronizedBlock(tok Token, included bool) {
	r.record("EndSynchronizedBlock", evTok(tok), evBool(included))
}

func (r *EventRecorder) GotBreakContinue(keyword Token, label *Token) {
	r.record("GotBreakContinue", evTok(keyword), evTokPtr(label))
}
func (r *EventRecorder) GotReturnStatement(hasValue bool) {
	r.record("GotReturnStatement", evBool(hasValue))
}
func (r *EventRecorder) GotThrow(tok Token)      { r.record("GotThrow", evTok(tok)) }
func (r *EventRecorder) GotYieldStatement()      { r.record("GotYieldStatement") }
func (r *EventRecorder) GotAssert()              { r.record("GotAssert") }
func (r *EventRecorder) GotStatementExpression() { r.record("GotStatementExpression") }

func (r *EventRecorder) BeginExpression(tok Token, isLambdaBody bool) {
	r.record("BeginExpression", evTok(tok), evBool(isLambdaBody))
}
func (r *EventRecorder) EndExpression(tok Token, isEmpty bool) {
	r.record("EndExpression", evTok(tok), evBool(isEmpty))
}

func (r *EventRecorder) GotLiteral(tok Token)       { r.record("GotLiteral", evTok(tok)) }
func (r *EventRecorder) GotIdentifier(tok Token)    { r.record("GotIdentifier", evTok(tok)) }
func (r *EventRecorder) GotIdentifierEOF(tok Token) { r.record("GotIdentifierEOF", evTok(tok)) }
func (r *EventRecorder) GotCompoundIdent(tok Token) { r.record("GotCompoundIdent", evTok(tok)) }
func (r *EventRecorder) GotCompoundComponent(tok Token) {
	r.record("GotCompoundComponent", evTok(tok))
}
func (r *EventRecorder) CompleteCompoundValue(tok Token) {
	r.record("CompleteCompoundValue", evTok(tok))
}
func (r *EventRecorder) CompleteCompoundValueEOF(tok Token) {
	r.record("CompleteCompoundValueEOF", evTok(tok))
}
func (r *EventRecorder) CompleteCompoundClass(tok Token) {
	r.record("CompleteCompoundClass", evTok(tok))
}
func (r *EventRecorder) GotParentIdentifier(tok Token) { r.record("GotParentIdentifier", evTok(tok)) }
func (r *EventRecorder) GotArrayTypeIdentifier(tok Token) {
	r.record("GotArrayTypeIdentifier", evTok(tok))
}
func (r *EventRecorder) GotPrimitiveTypeLiteral(tok Token) {
	r.record("GotPrimitiveTypeLiteral", evTok(tok))
}
func (r *EventRecorder) GotClassLiteral(tok Token) { r.record("GotClassLiteral", evTok(tok)) }

func (r *EventRecorder) GotMethodCall(tok Token) { r.record("GotMethodCall", evTok(tok)) }
func (r *EventRecorder) GotMemberCall(tok Token, typeArgs []Token) {
	r.record("GotMemberCall", evTok(tok), evToks(typeArgs))
}
func (r *EventRecorder) GotMemberAccess(tok Token) { r.record("GotMemberAccess", evTok(tok)) }
func (r *EventRecorder) GotMemberAccessEOF(tok Token) {
	r.record("GotMemberAccessEOF", evTok(tok))
}
func (r *EventRecorder) GotDotEOF(tok Token) { r.record("GotDotEOF", evTok(tok)) }

func (r *EventRecorder) GotBinaryOperator(tok Token) { r.record("GotBinaryOperator", evTok(tok)) }
func (r *EventRecorder) GotUnaryOperator(tok Token)  { r.record("GotUnaryOperator", evTok(tok)) }
func (r *EventRecorder) GotPostOperator(tok Token)   { r.record("GotPostOperator", evTok(tok)) }
func (r *EventRecorder) GotQuestionOperator(tok Token) {
	r.record("GotQuestionOperator", evTok(tok))
}
func (r *EventRecorder) GotQuestionColon(tok Token) { r.record("GotQuestionColon", evTok(tok)) }
func (r *EventRecorder) GotInstanceOfOperator(tok Token) {
	r.record("GotInstanceOfOperator", evTok(tok))
}
func (r *EventRecorder) GotInstanceOfVar(tok Token) { r.record("GotInstanceOfVar", evTok(tok)) }
func (r *EventRecorder) GotArrayElementAccess()     { r.record("GotArrayElementAccess") }
func (r *EventRecorder) GotTypeCast(tokens []Token) { r.record("GotTypeCast", evToks(tokens)) }

func (r *EventRecorder) GotExprNew(tok Token) { r.record("GotExprNew", evTok(tok)) }
func (r *EventRecorder) EndExprNew(tok Token, included bool) {
	r.record("EndExprNew", evTok(tok), evBool(included))
}
func (r *EventRecorder) BeginArrayInitList(lbrace Token) {
	r.record("BeginArrayInitList", evTok(lbrace))
}
func (r *EventRecorder) EndArrayInitList(rbrace Token) {
	r.record("EndArrayInitList", evTok(rbrace))
}

func (r *EventRecorder) BeginArgumentList(lparen Token) {
	r.record("BeginArgumentList", evTok(lparen))
}
func (r *EventRecorder) EndArgument()                  { r.record("EndArgument") }
func (r *EventRecorder) EndArgumentList(rparen Token)  { r.record("EndArgumentList", evTok(rparen)) }
func (r *EventRecorder) GotConstructorCall(tok Token)  { r.record("GotConstructorCall", evTok(tok)) }

func (r *EventRecorder) BeginLambdaBody(isBlock bool, lbrace *Token) {
	r.record("BeginLambdaBody", evBool(isBlock), evTokPtr(lbrace))
}
func (r *EventRecorder) EndLambdaBody(rbrace *Token) { r.record("EndLambdaBody", evTokPtr(rbrace)) }
func (r *EventRecorder) GotLambdaFormalParam()       { r.record("GotLambdaFormalParam") }
func (r *EventRecorder) GotLambdaFormalName(tok Token) {
	r.record("GotLambdaFormalName", evTok(tok))
}
func (r *EventRecorder) GotLambdaFormalType(tokens []Token) {
	r.record("GotLambdaFormalType", evToks(tokens))
}
