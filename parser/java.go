package parser

// javaParser implements Behavior for the Java-family grammar. The
// grammar is parsed top-down with unbounded lookahead; ambiguous
// regions (type spec vs. expression, cast vs. lambda) are resolved by
// speculative parsing with pushback.
type javaParser struct {
	p *SourceParser
}

var _ Behavior = (*javaParser)(nil)

func (j *javaParser) next() Token          { return j.p.next() }
func (j *javaParser) la(n int) Token       { return j.p.la(n) }
func (j *javaParser) pushBack(tok Token)   { j.p.pushBack(tok) }
func (j *javaParser) pushBackAll(t []Token) { j.p.pushBackAll(t) }
func (j *javaParser) cb() Callbacks        { return j.p.cb }
func (j *javaParser) lastToken() Token     { return j.p.lastConsumed }

// error reports a diagnostic just behind the last consumed token.
func (j *javaParser) error(msg string) {
	j.p.errorBehind(msg, j.lastToken())
}

func (j *javaParser) errorAt(msg string, tok Token)     { j.p.errorAt(msg, tok) }
func (j *javaParser) errorBefore(msg string, tok Token) { j.p.errorBefore(msg, tok) }

func isTypeDeclarator(tok Token) bool {
	switch tok.Kind {
	case TokenClass, TokenEnum, TokenInterface, TokenRecord:
		return true
	}
	return false
}

func isPrimitiveType(tok Token) bool {
	switch tok.Kind {
	case TokenVoid, TokenBoolean, TokenByte, TokenChar, TokenShort,
		TokenInt, TokenLong, TokenFloat, TokenDouble:
		return true
	}
	return false
}

func isJavaModifier(tok Token) bool {
	switch tok.Kind {
	case TokenPublic, TokenPrivate, TokenProtected, TokenAbstract,
		TokenFinal, TokenStatic, TokenVolatile, TokenNative,
		TokenStrictfp, TokenTransient, TokenSynchronized, TokenAt,
		TokenDefault, TokenSealed, TokenNonSealed:
		return true
	}
	return false
}

// isOperator reports whether tok can act as an operator on a value.
// LPAREN is included (method call); "new" is not.
func isOperator(tok Token) bool {
	switch tok.Kind {
	case TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenLBracket,
		TokenLParen, TokenPlusAssign, TokenStarAssign, TokenMinusAssign,
		TokenSlashAssign, TokenDot, TokenEQ, TokenNE, TokenLT, TokenLE,
		TokenGT, TokenGE, TokenAssign, TokenBitNot, TokenNot,
		TokenIncrement, TokenDecrement, TokenBitOr, TokenOrAssign,
		TokenBitAnd, TokenAndAssign, TokenBitXor, TokenXorAssign,
		TokenOr, TokenAnd, TokenShl, TokenShlAssign, TokenShr,
		TokenShrAssign, TokenUShr, TokenUShrAssign, TokenPercent,
		TokenPercentAssign, TokenInstanceof:
		return true
	}
	return false
}

func isBinaryOperator(tok Token) bool {
	switch tok.Kind {
	case TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenPercent,
		TokenBitOr, TokenBitXor, TokenBitAnd, TokenShl, TokenShr,
		TokenUShr, TokenUShrAssign, TokenShrAssign, TokenShlAssign,
		TokenAndAssign, TokenXorAssign, TokenOrAssign,
		TokenPercentAssign, TokenSlashAssign, TokenStarAssign,
		TokenMinusAssign, TokenPlusAssign, TokenAssign, TokenDot,
		TokenEQ, TokenNE, TokenLT, TokenLE, TokenGT, TokenGE,
		TokenAnd, TokenOr, TokenColonColon:
		return true
	}
	return false
}

func isUnaryOperator(tok Token) bool {
	switch tok.Kind {
	case TokenPlus, TokenMinus, TokenNot, TokenBitNot,
		TokenIncrement, TokenDecrement:
		return true
	}
	return false
}

// isExpressionStart reports whether tok can lead an expression.
func isExpressionStart(tok Token) bool {
	switch tok.Kind {
	case TokenNew, TokenLBrace, TokenIdent, TokenThis, TokenSuper,
		TokenStringLiteral, TokenCharLiteral, TokenNumInt, TokenNumLong,
		TokenNumDouble, TokenNumFloat, TokenNull, TokenTrue, TokenFalse,
		TokenLParen, TokenSwitch,
		TokenPlus, TokenMinus, TokenNot, TokenBitNot,
		TokenIncrement, TokenDecrement:
		return true
	}
	return isPrimitiveType(tok)
}

// isExpressionTerminator reports whether tok legitimately ends an
// expression without being part of it.
func isExpressionTerminator(tok Token) bool {
	switch tok.Kind {
	case TokenRParen, TokenSemicolon, TokenRBracket, TokenComma,
		TokenColon, TokenEOF, TokenRBrace:
		return true
	}
	return false
}

// depthRef is a depth cell shared across nested generic-argument
// parses; compound close tokens decrement it by more than one level.
type depthRef struct {
	depth int
}

func (j *javaParser) ParseCU() {
	state := 0
	for j.la(1).Kind != TokenEOF {
		if j.la(1).Kind == TokenSemicolon {
			j.next()
			continue
		}
		state = j.ParseCUPart(state)
	}
	j.cb().FinishedCU(state)
}

func (j *javaParser) ParseCUPart(state int) int {
	token := j.next()
	switch {
	case token.Kind == TokenPackage:
		if state != 0 {
			j.errorAt("only one 'package' statement is allowed", token)
		}
		j.parsePackageStmt(token)
		j.cb().ReachedCUState(CUStateImports)
		state = CUStateImports
	case token.Kind == TokenImport:
		j.parseImportStatement(token)
		j.cb().ReachedCUState(CUStateImports)
		state = CUStateImports
	case isJavaModifier(token) || isTypeDeclarator(token):
		j.cb().GotTopLevelDecl(token)
		j.cb().GotDeclBegin(token)
		j.pushBack(token)
		j.parseModifiers()
		j.parseTypeDef(token)
		j.cb().ReachedCUState(CUStateTypeDefs)
		state = CUStateTypeDefs
	case token.Kind == TokenEOF:
		return state
	default:
		j.errorAt("expected a type definition (class, interface or enum)", token)
	}
	return state
}

// parsePackageStmt parses "package a.b.c;". The package keyword has
// already been consumed.
func (j *javaParser) parsePackageStmt(token Token) {
	j.cb().BeginPackageStatement(token)
	token = j.next()
	if token.Kind != TokenIdent {
		j.error("expected identifier after 'package'")
		return
	}
	pkgTokens := j.parseDottedIdent(token)
	j.cb().GotPackage(pkgTokens)
	lastPkgToken := j.lastToken()
	token = j.next()
	if token.Kind != TokenSemicolon {
		j.pushBack(token)
		j.p.errorBehind(errExpectedSemi, lastPkgToken)
		return
	}
	j.cb().GotPackageSemi(token)
}

func (j *javaParser) ParseImportStatement() {
	token := j.next()
	if token.Kind == TokenImport {
		j.parseImportStatement(token)
	} else {
		j.error("import statements must start with 'import'")
	}
}

func (j *javaParser) parseImportStatement(importToken Token) {
	j.cb().BeginElement(importToken)
	isStatic := false
	token := j.next()
	if token.Kind == TokenStatic {
		isStatic = true
		token = j.next()
	}
	if token.Kind != TokenIdent {
		j.pushBack(token)
		j.error("expected identifier (package containing element to be imported)")
		j.cb().EndElement(token, false)
		return
	}

	tokens := j.parseDottedIdent(token)
	lastIdentToken := j.lastToken()
	if j.la(1).Kind == TokenDot {
		dotToken := j.next()
		token = j.next()
		switch token.Kind {
		case TokenSemicolon:
			j.errorAt("trailing '.' in import statement", dotToken)
		case TokenStar:
			starToken := token
			token = j.next()
			if token.Kind != TokenSemicolon {
				j.pushBack(token)
				j.p.errorBehind("expected ';' following import statement", starToken)
			} else {
				j.cb().GotWildcardImport(tokens, isStatic, importToken, token)
				j.cb().GotImportStmtSemi(token)
			}
		default:
			j.error("expected package/class identifier, or '*', in import statement")
			if j.la(1).Kind == TokenSemicolon {
				j.next()
			}
		}
	} else {
		token = j.next()
		if token.Kind != TokenSemicolon {
			j.pushBack(token)
			j.p.errorBehind("expected ';' following import statement", lastIdentToken)
		} else {
			j.cb().GotImport(tokens, isStatic, importToken, token)
			j.cb().GotImportStmtSemi(token)
		}
	}
}

func (j *javaParser) ParseTypeDef() {
	j.parseModifiers()
	j.parseTypeDef(j.la(1))
}

// tdEpicFail marks input that does not look like a type definition at
// all; it is never reported through GotTypeDef.
const tdEpicFail = -2

func (j *javaParser) parseTypeDef(firstToken Token) {
	tdType := j.parseTypeDefBegin()
	if tdType != tdEpicFail {
		j.cb().GotTypeDef(firstToken, tdType)
	}
	j.cb().ModifiersConsumed()
	if tdType == tdEpicFail {
		j.cb().EndDecl(j.la(1))
		return
	}

	// Type name
	token := j.next()
	if token.Kind != TokenIdent {
		j.pushBack(token)
		j.cb().GotTypeDefEnd(token, false)
		j.error("expected identifier (in type definition)")
		return
	}
	j.cb().GotTypeDefName(token)

	opening, ok := j.parseTypeDefPart2(tdType == TypeDefRecord)
	if !ok {
		j.cb().GotTypeDefEnd(j.la(1), false)
		return
	}

	last := j.ParseTypeBody(tdType, opening)
	j.p.lastConsumed = last
	j.cb().GotTypeDefEnd(last, last.Kind == TokenRBrace)
}

func (j *javaParser) ParseTypeBody(tdType int, token Token) Token {
	j.cb().BeginTypeBody(token)

	if tdType == TypeDefEnum {
		j.parseEnumConstants()
	}
	j.ParseClassBody()

	token = j.next()
	if token.Kind != TokenRBrace {
		j.error("expected '}' (in class definition)")
	}

	j.cb().EndTypeBody(token, token.Kind == TokenRBrace)
	return token
}

func (j *javaParser) parseTypeDefBegin() int {
	j.parseModifiers()
	token := j.next()

	isAnnotation := token.Kind == TokenAt
	if isAnnotation {
		tdToken := j.next()
		if tdToken.Kind != TokenInterface {
			j.error("expected 'interface' after '@' in annotation definition")
			j.pushBack(tdToken)
			return tdEpicFail
		}
		token = tdToken
	}

	if !isTypeDeclarator(token) {
		j.error("expected type declarator: 'class', 'interface', or 'enum'")
		return tdEpicFail
	}

	switch token.Kind {
	case TokenClass:
		return TypeDefClass
	case TokenInterface:
		if isAnnotation {
			return TypeDefAnnotation
		}
		return TypeDefInterface
	case TokenRecord:
		return TypeDefRecord
	default:
		return TypeDefEnum
	}
}

// parseTypeDefPart2 parses everything between the type name and the
// opening brace: type parameters, record parameters, extends,
// implements and permits clauses. It returns the '{' token, or
// ok=false on failure.
func (j *javaParser) parseTypeDefPart2(isRecord bool) (Token, bool) {
	token := j.next()
	if token.Kind == TokenLT {
		j.parseTypeParams()
		token = j.next()
	}

	if isRecord {
		if token.Kind == TokenLParen {
			j.cb().BeginRecordParameters(token)
			j.parseParameterList(true)
			token = j.next()
			j.cb().EndRecordParameters(token)
			if token.Kind != TokenRParen {
				j.error("expected ')' at end of parameter list (in record declaration)")
				j.pushBack(token)
			}
			token = j.next()
		} else {
			j.pushBack(token)
			j.error("expected '(' (in record declaration)")
		}
	}

	if token.Kind == TokenExtends {
		j.cb().BeginTypeDefExtends(token)
		for {
			j.ParseTypeSpec(true)
			token = j.next()
			if token.Kind != TokenComma {
				break
			}
		}
		if token.Kind == TokenDot {
			// The dot really belongs to the (incomplete) type, so it
			// stays consumed.
			j.errorAt(errIncompleteTypeName, token)
			return Token{}, false
		}
		j.cb().EndTypeDefExtends()
	}

	if token.Kind == TokenImplements {
		j.cb().BeginTypeDefImplements(token)
		for {
			j.ParseTypeSpec(true)
			token = j.next()
			if token.Kind != TokenComma {
				break
			}
		}
		if token.Kind == TokenDot {
			j.errorAt(errIncompleteTypeName, token)
			return Token{}, false
		}
		j.cb().EndTypeDefImplements()
	}

	if token.Kind == TokenPermits {
		j.cb().BeginTypeDefPermits(token)
		for {
			j.ParseTypeSpec(true)
			token = j.next()
			if token.Kind != TokenComma {
				break
			}
		}
		if token.Kind == TokenDot {
			j.errorAt(errIncompleteTypeName, token)
			return Token{}, false
		}
		j.cb().EndTypeDefPermits()
	}

	if token.Kind == TokenLBrace {
		return token, true
	}
	j.pushBack(token)
	j.error("expected '{' (in type definition)")
	return Token{}, false
}

func (j *javaParser) parseEnumConstants() {
	token := j.next()
	for token.Kind == TokenIdent {
		// Constant name, possibly followed by constructor arguments.
		token = j.next()
		if token.Kind == TokenLParen {
			j.parseArgumentList(token)
			token = j.next()
		}

		// Constant body
		if token.Kind == TokenLBrace {
			j.cb().BeginAnonClassBody(token, true)
			j.ParseClassBody()
			token = j.next()
			if token.Kind != TokenRBrace {
				j.error("expected '}' at end of enum constant body")
				j.cb().EndAnonClassBody(token, false)
			} else {
				j.cb().EndAnonClassBody(token, true)
				token = j.next()
			}
		}

		switch token.Kind {
		case TokenSemicolon:
			return
		case TokenRBrace:
			j.pushBack(token)
			return
		case TokenComma:
			token = j.next()
		default:
			j.error("expected ',' or ';' after enum constant declaration")
			j.pushBack(token)
			return
		}
	}
	// An empty constant list, or a trailing comma before the '}'.
	j.pushBack(token)
}

// parseTypeParams parses formal type parameters; the opening '<' has
// been consumed.
func (j *javaParser) parseTypeParams() {
	dr := &depthRef{depth: 1}

	for {
		idToken := j.next()
		if idToken.Kind != TokenIdent {
			j.error("expected identifier (in type parameter list)")
			j.pushBack(idToken)
			return
		}
		j.cb().GotTypeParam(idToken)

		token := j.next()
		if token.Kind == TokenExtends {
			for {
				var boundTokens []Token
				if j.parseTargType(false, &boundTokens, dr) {
					j.cb().GotTypeParamBound(boundTokens)
				}
				if dr.depth <= 0 {
					return
				}
				token = j.next()
				if token.Kind != TokenBitAnd {
					break
				}
			}
		}

		if token.Kind != TokenComma {
			if token.Kind != TokenGT {
				j.error("expected '>' at end of type parameter list")
				j.pushBack(token)
			}
			return
		}
	}
}

func (j *javaParser) parseModifiers() []Token {
	var mods []Token

	token := j.next()
	for isJavaModifier(token) {
		if token.Kind == TokenAt {
			if j.la(1).Kind != TokenIdent {
				j.pushBack(token)
				return mods
			}
			j.parseAnnotation()
		} else {
			j.cb().GotModifier(token)
		}
		mods = append(mods, token)
		token = j.next()
	}
	j.pushBack(token)

	return mods
}

func (j *javaParser) ParseClassBody() {
	token := j.next()
	for token.Kind != TokenRBrace {
		if token.Kind == TokenEOF {
			j.errorAt("unexpected end of input in type body; missing '}'", token)
			return
		}
		j.parseClassElement(token)
		token = j.next()
	}
	j.pushBack(token)
}

func (j *javaParser) parseClassElement(token Token) {
	if token.Kind == TokenSemicolon {
		// A spurious semicolon.
		return
	}

	j.cb().GotDeclBegin(token)
	j.pushBack(token)
	var hidden *Token
	if n := len(token.HiddenBefore); n > 0 {
		hidden = &token.HiddenBefore[n-1]
	}

	// Field declaration, method declaration or inner type.
	mods := j.parseModifiers()
	var firstMod *Token
	if len(mods) > 0 {
		firstMod = &mods[0]
	}

	token = j.next()
	switch {
	case isTypeDeclarator(token) || token.Kind == TokenAt:
		j.cb().GotInnerType(token)
		j.pushBack(token)
		first := token
		if firstMod != nil {
			first = *firstMod
		}
		j.parseTypeDef(first)

	case token.Kind == TokenLBrace:
		// initialisation block
		firstToken := token
		if firstMod != nil {
			firstToken = *firstMod
		}
		j.cb().BeginInitBlock(firstToken, token)
		j.cb().ModifiersConsumed()
		j.parseStmtBlock()
		token = j.next()
		if token.Kind != TokenRBrace {
			j.error("expected '}' (at end of initialisation block)")
			j.pushBack(token)
			j.cb().EndInitBlock(token, false)
			j.cb().EndElement(token, false)
		} else {
			j.cb().EndInitBlock(token, true)
			j.cb().EndElement(token, true)
		}

	case token.Kind == TokenLT || token.Kind == TokenIdent || isPrimitiveType(token):
		// method, constructor or field
		first := token
		if firstMod != nil {
			first = *firstMod
		}
		if token.Kind == TokenLT {
			// generic method
			j.cb().GotMethodTypeParamsBegin()
			j.parseTypeParams()
			j.cb().EndMethodTypeParams()
		} else {
			j.pushBack(token)
		}

		isConstructor := j.la(1).Kind == TokenIdent && j.la(2).Kind == TokenLParen
		if !isConstructor && !j.ParseTypeSpec(true) {
			j.cb().EndDecl(j.la(1))
			return
		}
		idToken := j.next()
		if idToken.Kind != TokenIdent {
			j.cb().ModifiersConsumed()
			j.pushBack(idToken)
			j.errorBefore(errExpectedMemberName, idToken)
			j.cb().EndDecl(idToken)
			return
		}

		token = j.next()
		switch token.Kind {
		case TokenLBracket, TokenSemicolon, TokenAssign, TokenComma:
			// A field declaration.
			j.cb().BeginFieldDeclarations(first)
			if token.Kind == TokenLBracket {
				j.pushBack(token)
				j.parseArrayDeclarators()
				token = j.next()
			}
			j.cb().GotField(first, idToken, token.Kind == TokenAssign)
			switch token.Kind {
			case TokenSemicolon:
				j.cb().EndField(token, true)
				j.cb().EndFieldDeclarations(token, true)
			case TokenAssign:
				j.ParseExpression()
				j.parseSubsequentDeclarations(declTypeField, true)
			case TokenComma:
				j.pushBack(token)
				j.parseSubsequentDeclarations(declTypeField, true)
			default:
				j.error("expected ',', '=' or ';' after field declaration")
				j.pushBack(token)
				j.cb().EndField(token, false)
				j.cb().EndFieldDeclarations(token, false)
			}
			j.cb().ModifiersConsumed()
		case TokenLParen:
			// method declaration
			if isConstructor {
				j.cb().GotConstructorDecl(idToken, hidden)
			} else {
				j.cb().GotMethodDeclaration(idToken, hidden)
			}
			j.cb().ModifiersConsumed()
			j.ParseMethodParamsBody()
		default:
			j.cb().ModifiersConsumed()
			j.pushBack(token)
			j.error("expected ';' or '=' or '(' (in field or method declaration)")
			j.cb().EndDecl(token)
		}

	default:
		j.error("unexpected token " + token.Kind.String() + " in type declaration body")
		j.cb().EndDecl(j.la(1))
	}
}

func (j *javaParser) parseArrayDeclarators() {
	if j.la(1).Kind != TokenLBracket {
		return
	}

	token := j.next()
	for token.Kind == TokenLBracket {
		token = j.next()
		if token.Kind != TokenRBracket {
			j.errorBefore("expected ']' (to match '[')", token)
			if j.la(1).Kind == TokenRBracket {
				token = j.next()
			} else {
				j.pushBack(token)
				return
			}
		}
		j.cb().GotArrayDeclarator()
		token = j.next()
	}
	j.pushBack(token)
}

// ParseMethodParamsBody parses a method declaration from after the
// opening parenthesis: the parameter list, throws clause, and body or
// terminating semicolon.
func (j *javaParser) ParseMethodParamsBody() {
	j.parseParameterList(false)
	j.cb().GotAllMethodParameters()
	token := j.next()
	if token.Kind != TokenRParen {
		j.error("expected ')' at end of parameter list (in method declaration)")
		j.pushBack(token)
		j.cb().EndMethodDecl(token, false)
		return
	}
	token = j.next()
	if token.Kind == TokenThrows {
		j.cb().BeginThrows(token)
		for {
			j.ParseTypeSpec(true)
			token = j.next()
			if token.Kind != TokenComma {
				break
			}
		}
		j.cb().EndThrows()
	}
	if token.Kind == TokenLBrace {
		// method body
		j.cb().BeginMethodBody(token)
		j.parseStmtBlock()
		token = j.next()
		if token.Kind != TokenRBrace {
			j.error("expected '}' at end of method body")
			j.pushBack(token)
			j.cb().EndMethodBody(token, false)
			j.cb().EndMethodDecl(token, false)
		} else {
			j.cb().EndMethodBody(token, true)
			j.cb().EndMethodDecl(token, true)
		}
		return
	}
	if token.Kind == TokenDefault {
		// annotation element default value
		j.ParseExpression()
		token = j.next()
	}

	if token.Kind != TokenSemicolon {
		j.pushBack(token)
		j.error(errExpectedMethodBody)
		j.cb().EndMethodDecl(token, false)
	} else {
		j.cb().EndMethodDecl(token, true)
	}
}

// parseStmtBlock parses statements up to a closing '}' or EOF, which
// is left in the stream.
func (j *javaParser) parseStmtBlock() {
	for {
		token := j.next()
		if token.Kind == TokenEOF || token.Kind == TokenRBrace {
			j.pushBack(token)
			return
		}
		j.cb().BeginElement(token)
		ntoken := j.parseStatement(token, false)
		if ntoken != nil {
			j.cb().EndElement(*ntoken, true)
		} else {
			la1 := j.la(1)
			j.cb().EndElement(la1, false)
			if sameToken(la1, token) {
				j.next()
				j.errorAt("invalid beginning of statement", token)
				continue
			}
		}
	}
}

func (j *javaParser) ParseStatement() *Token {
	return j.parseStatement(j.next(), false)
}

// parseStatement parses one statement. token is its first token,
// already consumed. It returns the last token of the statement, or nil
// if an error was encountered. With allowComma, multiple
// comma-separated statements are accepted.
func (j *javaParser) parseStatement(token Token, allowComma bool) *Token {
	for {
		switch token.Kind {
		case TokenSemicolon:
			j.cb().GotEmptyStatement()
			return &token

		case TokenReturn:
			token = j.next()
			j.cb().GotReturnStatement(token.Kind != TokenSemicolon)
			if token.Kind != TokenSemicolon {
				j.pushBack(token)
				j.ParseExpression()
				token = j.next()
			}
			if token.Kind != TokenSemicolon {
				j.pushBack(token)
				j.error(errExpectedSemi)
				return nil
			}
			return &token

		case TokenFor:
			return j.parseForStatement(token)
		case TokenWhile:
			return j.parseWhileStatement(token)
		case TokenIf:
			return j.parseIfStatement(token)
		case TokenDo:
			return j.parseDoWhileStatement(token)
		case TokenAssert:
			return j.parseAssertStatement(token)
		case TokenSwitch:
			return j.parseSwitchStatement(token)

		case TokenCase:
			return j.parseSwitchCase()

		case TokenDefault:
			j.cb().GotSwitchDefault()
			token = j.next()
			if token.Kind != TokenColon && token.Kind != TokenArrow {
				j.error("expected ':' or '->' at end of case expression")
				j.pushBack(token)
				return nil
			}
			return &token

		case TokenContinue, TokenBreak:
			keyword := token
			token = j.next()
			if token.Kind == TokenIdent {
				label := token
				token = j.next()
				j.cb().GotBreakContinue(keyword, &label)
			} else {
				j.cb().GotBreakContinue(keyword, nil)
			}
			if token.Kind != TokenSemicolon {
				j.pushBack(token)
				j.error(errExpectedSemi)
				return nil
			}
			return &token

		case TokenThrow:
			j.cb().GotThrow(token)
			j.ParseExpression()
			token = j.next()
			if token.Kind != TokenSemicolon {
				j.pushBack(token)
				j.error(errExpectedSemi)
				return nil
			}
			return &token

		case TokenTry:
			return j.parseTryCatchStmt(token)

		case TokenYield:
			j.cb().GotYieldStatement()
			j.ParseExpression()
			token = j.next()
			if token.Kind != TokenSemicolon {
				j.pushBack(token)
				j.error(errExpectedSemi)
				return nil
			}
			return &token

		case TokenIdent:
			// A label?
			ctoken := j.next()
			if ctoken.Kind == TokenColon {
				return &ctoken
			}
			j.pushBack(ctoken)
			j.pushBack(token)

			// A declaration of a variable?
			var tlist []Token
			isTypeSpec := j.parseTypeSpecInternal(true, true, &tlist)
			la1 := j.la(1)
			j.pushBackAll(tlist)
			if isTypeSpec && la1.Kind == TokenIdent {
				first := tlist[0]
				j.cb().GotDeclBegin(first)
				return j.parseVariableDeclarations(first, true)
			}
			j.cb().GotStatementExpression()
			j.ParseExpression()
			token = j.next()
			if token.Kind == TokenComma && allowComma {
				token = j.next()
				continue
			}
			if token.Kind != TokenSemicolon {
				j.pushBack(token)
				j.error("expected ';' at end of previous statement")
				return nil
			}
			return &token

		case TokenSynchronized:
			j.cb().BeginSynchronizedBlock(token)
			token = j.next()
			if token.Kind == TokenLParen {
				j.ParseExpression()
				token = j.next()
				if token.Kind != TokenRParen {
					j.errorBefore("expected ')' at end of expression", token)
					j.pushBack(token)
					j.cb().EndSynchronizedBlock(token, false)
					return nil
				}
				token = j.next()
			}
			if token.Kind != TokenLBrace {
				j.error("expected statement block after 'synchronized'")
				j.pushBack(token)
				j.cb().EndSynchronizedBlock(token, false)
				return nil
			}
			j.cb().BeginStmtBlockBody(token)
			j.parseStmtBlock()
			token = j.next()
			if token.Kind != TokenRBrace {
				j.error("expected '}' at end of synchronized block")
				j.pushBack(token)
				j.cb().EndStmtBlockBody(token, false)
				j.cb().EndSynchronizedBlock(token, false)
				return nil
			}
			j.cb().EndStmtBlockBody(token, true)
			j.cb().EndSynchronizedBlock(token, true)
			return &token

		case TokenPublic, TokenPrivate, TokenProtected, TokenAbstract,
			TokenFinal, TokenStatic, TokenVolatile, TokenNative,
			TokenStrictfp, TokenTransient, TokenAt:
			j.pushBack(token)
			j.cb().GotDeclBegin(token)
			j.parseModifiers()
			if isTypeDeclarator(j.la(1)) || j.la(1).Kind == TokenAt {
				j.cb().GotInnerType(j.la(1))
				j.parseTypeDef(token)
			} else {
				j.parseVariableDeclarations(token, true)
			}
			return nil

		case TokenClass, TokenEnum, TokenInterface:
			j.pushBack(token)
			j.cb().GotDeclBegin(token)
			j.parseTypeDef(token)
			return nil

		case TokenVoid, TokenBoolean, TokenByte, TokenChar, TokenShort,
			TokenInt, TokenLong, TokenFloat, TokenDouble:
			j.pushBack(token)
			var tlist []Token
			j.parseTypeSpecInternal(false, true, &tlist)

			if j.la(1).Kind == TokenDot {
				// int.class or int[].class
				j.pushBackAll(tlist)
				j.ParseExpression()
				token = j.next()
				if token.Kind != TokenSemicolon {
					j.error("expected ';' after expression-statement")
					return nil
				}
				return &token
			}
			j.pushBackAll(tlist)
			j.cb().GotDeclBegin(token)
			return j.parseVariableDeclarations(token, true)

		case TokenLBrace:
			j.cb().BeginStmtBlockBody(token)
			j.parseStmtBlock()
			token = j.next()
			if token.Kind != TokenRBrace {
				j.error("expected '}' at end of statement block")
				if token.Kind != TokenRParen {
					j.pushBack(token)
				}
				j.cb().EndStmtBlockBody(token, false)
				return nil
			}
			j.cb().EndStmtBlockBody(token, true)
			return &token
		}

		// Expression, or not valid.
		if !isExpressionStart(token) {
			j.errorAt("not a valid statement beginning", token)
			return nil
		}

		j.pushBack(token)
		j.cb().GotStatementExpression()
		j.ParseExpression()
		token = j.next()
		if token.Kind != TokenSemicolon {
			j.pushBack(token)
			j.error("expected ';' at end of previous statement")
			return nil
		}
		return &token
	}
}

// parseSwitchCase parses a case arm after the 'case' keyword has been
// consumed. Both colon and arrow forms are handled, including pattern
// labels and "case null, default ->".
func (j *javaParser) parseSwitchCase() *Token {
	j.cb().BeginSwitchCase(j.la(1))
	hadCommas := false
	var token Token
	if j.la(1).Kind == TokenNull {
		j.next() // null
		token = j.next()
		if token.Kind == TokenComma {
			token = j.next()
			if token.Kind != TokenDefault {
				j.error("only default can follow null in a case")
			} else {
				token = j.next()
			}
		}
	} else {
		switch j.lookAheadParsePattern() {
		case patternRecord, patternTypeThenVar:
			if !j.parseRecordPattern(false) {
				j.error("failed to parse pattern in case label")
				token = j.la(1)
				j.cb().EndSwitchCase(token, true)
				return nil
			}
			token = j.next()
			if token.Kind == TokenWhen {
				j.parseExpression(false, false)
				token = j.next()
			}
		default:
			// No unparenthesized lambdas in a case expression.
			j.parseExpression(false, false)
			token = j.next()
			for token.Kind == TokenComma {
				j.parseExpression(false, false)
				token = j.next()
				hadCommas = true
			}
		}
	}
	j.cb().GotSwitchCaseType(token, token.Kind == TokenArrow)
	switch {
	case token.Kind == TokenArrow:
		// The arm body is an expression, a block, or a throw.
		la1 := j.la(1)
		if la1.Kind == TokenLBrace || la1.Kind == TokenThrow {
			stmt := j.ParseStatement()
			if stmt == nil {
				j.cb().EndSwitchCase(j.la(1), true)
				return nil
			}
			token = *stmt
		} else {
			j.ParseExpression()
			token = j.next()
			if token.Kind != TokenSemicolon {
				j.error("expected ';' after case body")
				j.pushBack(token)
				j.cb().EndSwitchCase(token, true)
				return nil
			}
		}
		j.cb().EndSwitchCase(token, true)
	case token.Kind != TokenColon:
		j.error("expected ':' at end of case expression")
		j.pushBack(token)
		j.cb().EndSwitchCase(token, false)
		return nil
	case hadCommas:
		j.error(errMalformedSwitchCase)
		j.pushBack(token)
		j.cb().EndSwitchCase(token, false)
		return nil
	default:
		j.cb().EndSwitchCase(token, false)
	}
	return &token
}

func (j *javaParser) parseTryCatchStmt(token Token) *Token {
	j.cb().BeginTryCatchStmt(token, j.la(1).Kind == TokenLParen)
	token = j.next()
	if token.Kind == TokenLParen {
		// try-with-resources
		for {
			la1 := j.la(1)
			if la1.Kind == TokenIdent {
				var tlist []Token
				isTypeSpec := j.parseTypeSpecInternal(true, true, &tlist)
				nextKind := j.la(1).Kind
				j.pushBackAll(tlist)
				if isTypeSpec && nextKind == TokenIdent {
					j.cb().GotDeclBegin(tlist[0])
					j.parseVariableDeclarations(tlist[0], false)
				} else {
					j.ParseExpression()
				}
			} else if isJavaModifier(la1) {
				j.next()
				j.ParseVariableDeclarations()
			} else {
				j.ParseExpression()
			}
			token = j.next()
			if token.Kind != TokenSemicolon {
				break
			}
		}
		if token.Kind != TokenRParen {
			j.errorBefore("missing closing ')' after resources in 'try' statement", token)
		}
		token = j.next()
	}
	if token.Kind != TokenLBrace {
		j.error("expected '{' after 'try'")
		j.pushBack(token)
		j.cb().EndTryCatchStmt(token, false)
		return nil
	}
	j.cb().BeginTryBlock(token)
	j.parseStmtBlock()
	token = j.next()
	if token.Kind == TokenRBrace {
		j.cb().EndTryBlock(token, true)
	} else if token.Kind == TokenCatch || token.Kind == TokenFinally {
		// Invalid, but recoverable.
		j.pushBack(token)
		j.error("missing '}' at end of 'try' block")
		j.cb().EndTryBlock(token, false)
	} else {
		j.pushBack(token)
		j.error("missing '}' at end of 'try' block")
		j.cb().EndTryBlock(token, false)
		j.cb().EndTryCatchStmt(token, false)
		return nil
	}

	result := &token
	laKind := j.la(1).Kind
	for laKind == TokenCatch || laKind == TokenFinally {
		token = j.next()
		j.cb().GotCatchFinally(token)
		if laKind == TokenCatch {
			token = j.next()
			if token.Kind != TokenLParen {
				j.error("expected '(' after 'catch'")
				j.pushBack(token)
				j.cb().EndTryCatchStmt(token, false)
				return nil
			}

			for {
				if j.la(1).Kind == TokenFinal {
					// final re-throw
					j.next()
				}

				j.ParseTypeSpec(true)
				token = j.next()
				if token.Kind != TokenBitOr {
					break
				}
				j.cb().GotMultiCatch(token)
			}

			if token.Kind != TokenIdent {
				j.error("expected identifier after type (in 'catch' expression)")
				j.pushBack(token)
				j.cb().EndTryCatchStmt(token, false)
				return nil
			}
			j.cb().GotCatchVarName(token)
			token = j.next()

			if token.Kind != TokenRParen {
				j.error("expected ')' after identifier (in 'catch' expression)")
				j.pushBack(token)
				j.cb().EndTryCatchStmt(token, false)
				return nil
			}
		}
		token = j.next()
		if token.Kind != TokenLBrace {
			j.error("expected '{' after 'catch'/'finally'")
			j.pushBack(token)
			j.cb().EndTryCatchStmt(token, false)
			return nil
		}
		result = j.parseStatement(token, false) // the block
		laKind = j.la(1).Kind
	}
	if result != nil {
		j.cb().EndTryCatchStmt(*result, true)
	} else {
		j.cb().EndTryCatchStmt(j.la(1), false)
	}
	return result
}

func (j *javaParser) parseAssertStatement(token Token) *Token {
	j.cb().GotAssert()
	j.ParseExpression()
	token = j.next()
	if token.Kind == TokenColon {
		// followed by a message expression
		j.ParseExpression()
		token = j.next()
	}
	if token.Kind != TokenSemicolon {
		j.error("expected ';' at end of assertion statement")
		j.pushBack(token)
		return nil
	}
	return &token
}

func (j *javaParser) parseSwitchStatement(token Token) *Token {
	return j.parseSwitch(token, false)
}

func (j *javaParser) parseSwitchExpression(token Token) *Token {
	return j.parseSwitch(token, true)
}

func (j *javaParser) parseSwitch(token Token, isExpression bool) *Token {
	j.cb().BeginSwitchStmt(token, isExpression)
	token = j.next()
	if token.Kind != TokenLParen {
		j.error("expected '(' after 'switch'")
		j.pushBack(token)
		j.cb().EndSwitchStmt(token, false)
		return nil
	}
	j.ParseExpression()
	token = j.next()
	if token.Kind != TokenRParen {
		j.error("expected ')' at end of expression (in 'switch(...)')")
		j.pushBack(token)
		j.cb().EndSwitchStmt(token, false)
		return nil
	}
	token = j.next()
	if token.Kind != TokenLBrace {
		j.error("expected '{' after 'switch(...)'")
		j.pushBack(token)
		j.cb().EndSwitchStmt(token, false)
		return nil
	}
	j.cb().BeginSwitchBlock(token)
	j.parseStmtBlock()
	token = j.next()
	if token.Kind != TokenRBrace {
		j.error("missing '}' at end of 'switch' statement block")
		j.pushBack(token)
		j.cb().EndSwitchBlock(token)
		j.cb().EndSwitchStmt(token, false)
		return nil
	}
	j.cb().EndSwitchBlock(token)
	j.cb().EndSwitchStmt(token, true)
	return &token
}

func (j *javaParser) parseDoWhileStatement(token Token) *Token {
	j.cb().BeginDoWhile(token)
	token = j.next() // '{' or a statement
	ntoken := j.parseStatement(token, false)
	if ntoken != nil || !sameToken(token, j.la(1)) {
		j.cb().BeginDoWhileBody(token)
		if ntoken == nil {
			j.cb().EndDoWhileBody(j.la(1), false)
		} else {
			j.cb().EndDoWhileBody(*ntoken, true)
		}
	}

	token = j.next()
	if token.Kind != TokenWhile {
		j.error(errExpectedWhile)
		j.pushBack(token)
		j.cb().EndDoWhile(token, false)
		return nil
	}
	token = j.next()
	if token.Kind != TokenLParen {
		j.error("expected '(' after 'while'")
		j.pushBack(token)
		j.cb().EndDoWhile(token, false)
		return nil
	}
	j.ParseExpression()
	token = j.next()
	if token.Kind != TokenRParen {
		j.error("expected ')' after conditional expression (in 'while' statement)")
		j.pushBack(token)
		j.cb().EndDoWhile(token, false)
		return nil
	}
	token = j.next() // should be ';'
	j.cb().EndDoWhile(token, true)
	return &token
}

func (j *javaParser) parseWhileStatement(token Token) *Token {
	j.cb().BeginWhileLoop(token)
	token = j.next()
	if token.Kind != TokenLParen {
		j.error("expected '(' after 'while'")
		j.pushBack(token)
		j.cb().EndWhileLoop(token, false)
		return nil
	}
	j.ParseExpression()
	token = j.next()
	if token.Kind != TokenRParen {
		j.error("expected ')' after conditional expression (in 'while' statement)")
		j.pushBack(token)
		j.cb().EndWhileLoop(token, false)
		return nil
	}
	token = j.next()
	j.cb().BeginWhileLoopBody(token)
	stmt := j.parseStatement(token, false)
	if stmt != nil {
		j.cb().EndWhileLoopBody(*stmt, true)
		j.cb().EndWhileLoop(*stmt, true)
		return stmt
	}
	la1 := j.la(1)
	j.cb().EndWhileLoopBody(la1, false)
	j.cb().EndWhileLoop(la1, false)
	return nil
}

func (j *javaParser) parseForStatement(forToken Token) *Token {
	j.cb().BeginForLoop(forToken)
	token := j.next()
	if token.Kind != TokenLParen {
		j.error("expected '(' after 'for'")
		j.pushBack(token)
		j.cb().EndForLoop(token, false)
		return nil
	}
	if j.la(1).Kind != TokenSemicolon {
		// Could be an old or new style for-loop.
		var tlist []Token

		first := j.la(1)
		var isTypeSpec bool
		if isJavaModifier(j.la(1)) {
			j.parseModifiers()
			isTypeSpec = true
			j.parseTypeSpecInternal(false, true, &tlist)
		} else {
			isTypeSpec = j.parseTypeSpecInternal(true, true, &tlist)
		}

		if isTypeSpec && j.la(1).Kind == TokenIdent {
			// for (type var ...
			j.cb().BeginForInitDecl(first)
			j.cb().GotTypeSpec(tlist)
			idToken := j.next()
			j.cb().GotForInit(first, idToken)
			j.parseArrayDeclarators()

			token = j.next()
			if token.Kind == TokenColon {
				// enhanced for loop
				j.cb().DeterminedForLoop(true, false)
				j.cb().EndForInit(idToken, true)
				j.cb().EndForInitDecls(idToken, true)
				j.cb().ModifiersConsumed()
				j.ParseExpression()
				token = j.next()
				if token.Kind != TokenRParen {
					j.error("expected ')' (in for statement)")
					j.pushBack(token)
					j.cb().EndForLoop(token, false)
					return nil
				}
				token = j.next()
				j.cb().BeginForLoopBody(token)
				stmt := j.parseStatement(token, false)
				j.endForLoopBody(stmt)
				j.endForLoop(stmt)
				return stmt
			}

			j.cb().DeterminedForLoop(false, token.Kind == TokenAssign)
			// Old style loop with initialiser
			if token.Kind == TokenAssign {
				j.ParseExpression()
			} else {
				j.pushBack(token)
			}
			if j.parseSubsequentDeclarations(declTypeForInit, true) == nil {
				j.cb().EndForLoop(j.la(1), false)
				j.cb().ModifiersConsumed()
				return nil
			}
			j.cb().ModifiersConsumed()
		} else {
			// Not a type spec; might be a general statement.
			j.pushBackAll(tlist)
			token = j.next()
			j.parseStatement(token, true)
		}
	} else {
		token = j.next() // SEMI
	}

	// Classic three-part header from here.
	semiFollows := j.la(1).Kind == TokenSemicolon
	j.cb().GotForTest(!semiFollows)
	if !semiFollows {
		j.ParseExpression()
	}
	token = j.next()
	if token.Kind != TokenSemicolon {
		j.pushBack(token)
		if token.Kind == TokenComma {
			j.errorAt(errExpectedSemi, token) // common mistake: ',' for ';'
		} else {
			j.error(errExpectedSemi)
		}
		j.cb().EndForLoop(token, false)
		return nil
	}
	bracketFollows := j.la(1).Kind == TokenRParen
	j.cb().GotForIncrement(!bracketFollows)
	if !bracketFollows {
		j.ParseExpression()
		for j.la(1).Kind == TokenComma {
			j.next()
			j.ParseExpression()
		}
	}
	token = j.next()
	if token.Kind != TokenRParen {
		j.error("expected ')' (or ',') after 'for(...'")
		j.pushBack(token)
		j.cb().EndForLoop(token, false)
		return nil
	}
	token = j.next()
	if token.Kind == TokenRBrace || token.Kind == TokenEOF {
		j.error("expected statement after 'for(...)'")
		j.pushBack(token)
		j.cb().EndForLoop(token, false)
		return nil
	}
	j.cb().BeginForLoopBody(token)
	stmt := j.parseStatement(token, false)
	j.endForLoopBody(stmt)
	j.endForLoop(stmt)
	return stmt
}

func (j *javaParser) endForLoop(token *Token) {
	if token == nil {
		j.cb().EndForLoop(j.la(1), false)
	} else {
		j.cb().EndForLoop(*token, true)
	}
}

func (j *javaParser) endForLoopBody(token *Token) {
	if token == nil {
		j.cb().EndForLoopBody(j.la(1), false)
	} else {
		j.cb().EndForLoopBody(*token, true)
	}
}

func (j *javaParser) parseIfStatement(token Token) *Token {
	j.cb().BeginIfStmt(token)

	for {
		token = j.next() // "("
		if token.Kind != TokenLParen {
			j.pushBack(token)
			if token.Kind == TokenLBrace {
				j.errorAt(errExpectedLParen, token)
			} else {
				j.errorBefore(errExpectedLParen, token)
			}
			j.cb().EndIfStmt(token, false)
			return nil
		}
		j.ParseExpression()
		token = j.next()
		if token.Kind != TokenRParen {
			j.error("expected ')' after conditional expression (in 'if' statement)")
			j.pushBack(token)
			if token.Kind != TokenLBrace {
				j.cb().EndIfStmt(token, false)
				return nil
			}
		}
		token = j.next()
		j.cb().BeginIfCondBlock(token)
		stmt := j.parseStatement(token, false)
		j.endIfCondBlock(stmt)
		if j.la(1).Kind == TokenElse {
			j.next() // "else"
			if j.la(1).Kind == TokenIf {
				if stmt != nil {
					j.cb().GotElseIf(*stmt)
				} else {
					j.cb().GotElseIf(j.la(1))
				}
				j.next() // "if"
				continue
			}
			token = j.next()
			j.cb().BeginIfCondBlock(token)
			stmt = j.parseStatement(token, false)
			j.endIfCondBlock(stmt)
		}
		j.endIfStmt(stmt)
		return stmt
	}
}

func (j *javaParser) endIfCondBlock(token *Token) {
	if token != nil {
		j.cb().EndIfCondBlock(*token, true)
	} else {
		j.cb().EndIfCondBlock(j.la(1), false)
	}
}

func (j *javaParser) endIfStmt(token *Token) {
	if token != nil {
		j.cb().EndIfStmt(*token, true)
	} else {
		j.cb().EndIfStmt(j.la(1), false)
	}
}

func (j *javaParser) ParseVariableDeclarations() *Token {
	first := j.la(1)
	j.cb().GotDeclBegin(first)
	return j.parseVariableDeclarations(first, true)
}

// parseVariableDeclarations parses one or more comma-separated
// variable declarations. With mustEndWithSemi false, the terminating
// token is left in the stream and nil is returned.
func (j *javaParser) parseVariableDeclarations(first Token, mustEndWithSemi bool) *Token {
	j.cb().BeginVariableDecl(first)
	j.parseModifiers()
	// The modifiers are consumed together with the type, not with the
	// individual variables.
	if j.parseVariableDeclaration(first) {
		return j.parseSubsequentDeclarations(declTypeVar, mustEndWithSemi)
	}
	j.cb().EndVariableDecls(j.la(1), false)
	return nil
}

const (
	declTypeForInit = 0
	declTypeVar     = 1
	declTypeField   = 2
)

// parseSubsequentDeclarations parses the remaining comma-separated
// declarators after the first one, and the terminating semicolon.
func (j *javaParser) parseSubsequentDeclarations(declType int, mustEndWithSemi bool) *Token {
	prevToken := j.lastToken()
	token := j.next()
	for token.Kind == TokenComma {
		j.endDeclaration(declType, token, false)
		first := token
		token = j.next()
		if token.Kind != TokenIdent {
			j.endDeclarationStmt(declType, token, false)
			j.error("expected variable identifier (or change ',' to ';')")
			return nil
		}
		j.parseArrayDeclarators()
		idToken := token
		prevToken = j.lastToken()
		token = j.next()
		j.gotSubsequentDecl(declType, first, idToken, token.Kind == TokenAssign)
		if token.Kind == TokenAssign {
			j.ParseExpression()
			prevToken = j.lastToken()
			token = j.next()
		}
	}

	if !mustEndWithSemi {
		j.pushBack(token)
		j.endDeclaration(declType, token, false)
		j.endDeclarationStmt(declType, token, false)
		return nil
	}

	if token.Kind != TokenSemicolon {
		j.pushBack(token)
		j.p.errorBehind(errExpectedSemi, prevToken)
		j.endDeclaration(declType, token, false)
		j.endDeclarationStmt(declType, token, false)
		return nil
	}
	j.endDeclaration(declType, token, true)
	j.endDeclarationStmt(declType, token, true)
	return &token
}

func (j *javaParser) endDeclaration(declType int, token Token, included bool) {
	switch declType {
	case declTypeField:
		j.cb().EndField(token, included)
	case declTypeVar:
		j.cb().EndVariable(token, included)
	default:
		j.cb().EndForInit(token, included)
	}
}

func (j *javaParser) endDeclarationStmt(declType int, token Token, included bool) {
	switch declType {
	case declTypeField:
		j.cb().EndFieldDeclarations(token, included)
	case declTypeVar:
		j.cb().EndVariableDecls(token, included)
	default:
		j.cb().EndForInitDecls(token, included)
	}
}

func (j *javaParser) gotSubsequentDecl(declType int, first, name Token, inited bool) {
	switch declType {
	case declTypeField:
		j.cb().GotSubsequentField(first, name, inited)
	case declTypeVar:
		j.cb().GotSubsequentVar(first, name, inited)
	default:
		j.cb().GotSubsequentForInit(first, name)
	}
}

// parseVariableDeclaration parses a single declarator with optional
// initializer, not including modifiers.
func (j *javaParser) parseVariableDeclaration(first Token) bool {
	var typeSpecTokens []Token
	if !j.parseTypeSpecInternal(false, true, &typeSpecTokens) {
		return false
	}
	j.cb().GotTypeSpec(typeSpecTokens)

	token := j.next()
	if token.Kind != TokenIdent {
		j.error("expected identifier (in variable/field declaration)")
		j.pushBack(token)
		return false
	}

	// Array declarators can follow the name.
	j.parseArrayDeclarators()

	idToken := token
	token = j.next()
	j.cb().GotVariableDecl(first, idToken, token.Kind == TokenAssign)
	j.cb().ModifiersConsumed()

	if token.Kind == TokenAssign {
		j.ParseExpression()
	} else {
		j.pushBack(token)
	}
	return true
}

// parseRecordPattern parses a pattern and declares any variables bound
// by it. Patterns nest: Rect(Point(int x, int y), Point b).
func (j *javaParser) parseRecordPattern(partOfInstanceof bool) bool {
	var typeSpecTokens []Token
	if !j.parseTypeSpecInternal(false, partOfInstanceof, &typeSpecTokens) {
		return false
	}
	j.cb().GotTypeSpec(typeSpecTokens)

	token := j.next()
	// instanceof has the array declarators parsed as part of the type;
	// case parses them separately here.
	if !partOfInstanceof && token.Kind == TokenLBracket {
		j.pushBack(token)
		j.parseArrayDeclarators()
		token = j.next()
	}
	switch token.Kind {
	case TokenLParen:
		// Nested component patterns.
		token = j.next()
		if token.Kind != TokenRParen {
			j.pushBack(token)
			if !j.parseRecordPattern(partOfInstanceof) {
				return false
			}
			token = j.next()
			for token.Kind == TokenComma {
				if !j.parseRecordPattern(partOfInstanceof) {
					return false
				}
				token = j.next()
			}
		}
		if token.Kind != TokenRParen {
			return false
		}
	case TokenIdent:
		// A variable name binding. instanceof bindings have different
		// scope rules, hence the separate notification.
		if partOfInstanceof {
			j.cb().GotInstanceOfVar(token)
		} else {
			j.cb().GotVariableDecl(typeSpecTokens[0], token, false)
			j.cb().EndVariable(token, true)
		}
	default:
		j.pushBack(token)
	}

	return true
}

func (j *javaParser) ParseTypeSpec(processArray bool) bool {
	var tokens []Token
	ok := j.parseTypeSpecInternal(false, processArray, &tokens)
	if ok {
		j.cb().GotTypeSpec(tokens)
	}
	return ok
}

// parseTypeSpecInternal parses a type specification: a primitive or a
// possibly-qualified class type with type arguments and array
// declarators. With speculative set, no diagnostics are emitted and
// false is returned when the tokens do not form a type; the consumed
// tokens accumulate in *ttokens either way, so the caller can push
// them back.
func (j *javaParser) parseTypeSpecInternal(speculative, processArray bool, ttokens *[]Token) bool {
	ttype := j.parseBaseType(speculative, ttokens)
	switch ttype {
	case typeError:
		return false
	case typePrimitive:
		speculative = false
	default:
		token := j.next()
		if token.Kind == TokenLT {
			*ttokens = append(*ttokens, token)

			// Type arguments, or a less-than comparison?
			dr := &depthRef{depth: 1}
			if !j.parseTargs(speculative, ttokens, dr) {
				return false
			}
		} else {
			j.pushBack(token)
		}
	}

	// Inner type?
	token := j.next()
	if token.Kind == TokenDot {
		if j.la(1).Kind == TokenIdent {
			*ttokens = append(*ttokens, token)
			return j.parseTypeSpecInternal(speculative, true, ttokens)
		}
		j.pushBack(token)
		return true
	}
	if processArray {
		for token.Kind == TokenLBracket && j.la(1).Kind == TokenRBracket {
			*ttokens = append(*ttokens, token)
			token = j.next() // ']'
			*ttokens = append(*ttokens, token)
			token = j.next()
		}
	}

	j.pushBack(token)
	return true
}

const (
	typePrimitive = 0
	typeOther     = 1
	typeError     = 2
)

func (j *javaParser) parseBaseType(speculative bool, ttokens *[]Token) int {
	token := j.next()
	if isPrimitiveType(token) {
		*ttokens = append(*ttokens, token)
		return typePrimitive
	}
	if token.Kind != TokenIdent {
		if !speculative {
			j.error(errExpectedTypeName)
		}
		j.pushBack(token)
		return typeError
	}
	*ttokens = append(*ttokens, j.parseDottedIdent(token)...)
	return typeOther
}

// parseTargs parses type arguments after the opening '<', which dr
// already accounts for.
func (j *javaParser) parseTargs(speculative bool, ttokens *[]Token, dr *depthRef) bool {
	beginDepth := dr.depth
	needBaseType := true

	for dr.depth >= beginDepth {
		if j.la(1).Kind == TokenQuestion {
			// Wildcard
			token := j.next()
			*ttokens = append(*ttokens, token)
			token = j.next()
			if token.Kind == TokenExtends || token.Kind == TokenSuper {
				*ttokens = append(*ttokens, token)
				needBaseType = true
			} else {
				j.pushBack(token)
				needBaseType = false
			}
		}

		if needBaseType {
			if !j.parseTargType(speculative, ttokens, dr) {
				return false
			}
			if dr.depth < beginDepth {
				break
			}
		}

		token := j.next()
		switch token.Kind {
		case TokenGT, TokenShr, TokenUShr:
			// Closing the parameter list; compound tokens close more
			// than one level.
			*ttokens = append(*ttokens, token)
			switch token.Kind {
			case TokenGT:
				dr.depth--
			case TokenShr:
				dr.depth -= 2
			case TokenUShr:
				dr.depth -= 3
			}
		case TokenComma:
			needBaseType = true
			*ttokens = append(*ttokens, token)
		default:
			if !speculative {
				j.error("expected '>' to close type parameter list")
			}
			j.pushBack(token)
			return false
		}
	}
	return true
}

// parseTargType parses the type part of one type argument; "? super"
// or "? extends" has already been handled.
func (j *javaParser) parseTargType(speculative bool, ttokens *[]Token, dr *depthRef) bool {
	beginDepth := dr.depth

	if j.la(1).Kind == TokenGT {
		// The diamond
		*ttokens = append(*ttokens, j.next())
		dr.depth--
		return true
	}

	ttype := j.parseBaseType(speculative, ttokens)
	if ttype == typeError {
		return false
	}

	var token Token
	if ttype == typeOther {
		// May itself have type arguments.
		if j.la(1).Kind == TokenLT {
			dr.depth++
			*ttokens = append(*ttokens, j.next())
			if !j.parseTargs(speculative, ttokens, dr) {
				return false
			}
			if dr.depth < beginDepth {
				return true
			}
		}

		token = j.next()
		if token.Kind == TokenDot && j.la(1).Kind == TokenIdent {
			*ttokens = append(*ttokens, token)
			return j.parseTargType(speculative, ttokens, dr)
		}
	} else {
		token = j.next()
	}

	// Array declarators?
	for token.Kind == TokenLBracket && j.la(1).Kind == TokenRBracket {
		*ttokens = append(*ttokens, token)
		token = j.next() // ']'
		*ttokens = append(*ttokens, token)
		token = j.next()
	}

	j.pushBack(token)
	return true
}

// parseDottedIdent parses a dotted name, first being the leading
// identifier (already consumed). The returned tokens include the dots.
func (j *javaParser) parseDottedIdent(first Token) []Token {
	rval := []Token{first}
	token := j.next()
	for token.Kind == TokenDot {
		ntoken := j.next()
		if ntoken.Kind != TokenIdent {
			// Could be, for example, "xyz.class".
			j.pushBack(ntoken)
			break
		}
		rval = append(rval, token, ntoken)
		token = j.next()
	}
	j.pushBack(token)
	return rval
}

// parseAnnotation parses an annotation whose '@' has been consumed and
// whose name is next in the stream.
func (j *javaParser) parseAnnotation() {
	token := j.next() // IDENT
	annName := j.parseDottedIdent(token)
	paramsFollow := j.la(1).Kind == TokenLParen
	j.cb().GotAnnotation(annName, paramsFollow)
	if paramsFollow {
		j.parseArgumentList(j.next())
	}
}

func (j *javaParser) parseLambdaBody() {
	blockFollows := j.la(1).Kind == TokenLBrace
	if blockFollows {
		lbrace := j.la(1)
		j.cb().BeginLambdaBody(true, &lbrace)
		j.cb().BeginStmtBlockBody(j.next())
		j.parseStmtBlock()
		token := j.next()
		if token.Kind != TokenRBrace {
			j.error("expected '}' at end of lambda block")
			j.pushBack(token)
			j.cb().EndStmtBlockBody(token, false)
			j.cb().EndLambdaBody(&token)
		} else {
			j.cb().EndStmtBlockBody(token, true)
			j.cb().EndLambdaBody(&token)
		}
	} else {
		j.cb().BeginLambdaBody(false, nil)
		j.parseExpression(true, true)
		j.cb().EndLambdaBody(nil)
	}
}

func (j *javaParser) ParseExpression() {
	j.parseExpression(false, true)
}

func (j *javaParser) parseExpression(isLambdaBody, lambdaAllowed bool) {
	token := j.next()
	j.cb().BeginExpression(token, isLambdaBody)

exprLoop:
	for {
		switch token.Kind {
		case TokenNew:
			if j.la(1).Kind == TokenEOF {
				j.cb().GotIdentifierEOF(token)
				j.cb().EndExpression(j.la(1), true)
				return
			}
			j.parseNewExpression(token)

		case TokenLBrace:
			// An array initialiser list.
			for {
				if j.la(1).Kind == TokenRBrace {
					token = j.next()
					break
				}
				j.ParseExpression()
				token = j.next()
				if token.Kind != TokenComma {
					break
				}
			}
			if token.Kind != TokenRBrace {
				j.errorBefore("expected '}' at end of initialiser list expression", token)
				j.pushBack(token)
			}

		case TokenIdent:
			j.parseIdentExpressionPart(token, lambdaAllowed)

		case TokenThis, TokenSuper:
			if j.la(1).Kind == TokenLParen {
				// Constructor or superclass constructor call.
				j.cb().GotConstructorCall(token)
				j.parseArgumentList(j.next())
			} else {
				j.cb().GotLiteral(token)
			}

		case TokenStringLiteral, TokenCharLiteral, TokenNumInt,
			TokenNumLong, TokenNumDouble, TokenNumFloat, TokenNull,
			TokenTrue, TokenFalse:
			j.cb().GotLiteral(token)

		case TokenLParen:
			operand, ok := j.parseParenExpressionPart(lambdaAllowed)
			if !ok {
				return
			}
			if operand != nil {
				// A cast was consumed; the operand follows.
				token = *operand
				continue exprLoop
			}

		case TokenVoid, TokenBoolean, TokenByte, TokenChar, TokenShort,
			TokenInt, TokenLong, TokenFloat, TokenDouble:
			// A primitive type can only be followed by .class, possibly
			// with array declarators: int.class, int[][].class.
			j.cb().GotPrimitiveTypeLiteral(token)
			j.parseArrayDeclarators()
			if j.la(1).Kind == TokenDot && j.la(2).Kind == TokenClass {
				j.next()
				token = j.next()
				j.cb().GotClassLiteral(token)
			} else {
				j.error("expected '.class'")
			}

		case TokenPlus, TokenMinus, TokenNot, TokenBitNot,
			TokenIncrement, TokenDecrement:
			j.cb().GotUnaryOperator(token)
			token = j.next()
			continue exprLoop

		case TokenSwitch:
			j.parseSwitchExpression(token)

		default:
			j.pushBack(token)
			j.errorAt("invalid expression token: "+token.Kind.String(), token)
			j.cb().EndExpression(token, true)
			return
		}

		// Now an operator, or the end of the expression.
		for {
			token = j.next()
			switch {
			case isExpressionTerminator(token):
				j.pushBack(token)
				j.cb().EndExpression(token, false)
				return

			case token.Kind == TokenLBracket:
				// Array subscript?
				if j.la(1).Kind == TokenRBracket {
					// No subscript: a type, as in Object[].class.
					token = j.next()
					continue
				}
				j.ParseExpression()
				token = j.next()
				if token.Kind != TokenRBracket {
					j.error("expected ']' after array subscript expression")
					j.pushBack(token)
				}
				j.cb().GotArrayElementAccess()

			case token.Kind == TokenInstanceof:
				j.cb().GotInstanceOfOperator(token)
				switch j.lookAheadParsePattern() {
				case patternTypeThenVar, patternRecord:
					j.parseRecordPattern(true)
				case patternOnlyType:
					j.ParseTypeSpec(true)
				default:
					j.error("expected type or pattern following instanceof")
				}

			case token.Kind == TokenDot:
				operand, stay := j.parseDotOperator(token)
				if stay {
					continue
				}
				token = *operand
				continue exprLoop

			case token.Kind == TokenColonColon && j.la(1).Kind == TokenNew:
				// method reference to a constructor
				j.next()

			case isBinaryOperator(token):
				j.cb().GotBinaryOperator(token)
				token = j.next()
				continue exprLoop

			case token.Kind == TokenIncrement || token.Kind == TokenDecrement:
				j.cb().GotPostOperator(token)

			case token.Kind == TokenQuestion:
				j.cb().GotQuestionOperator(token)
				j.ParseExpression()
				token = j.next()
				if token.Kind != TokenColon {
					j.error("expected ':' (in '?:' operator)")
					j.pushBack(token)
					j.cb().EndExpression(token, true)
					return
				}
				j.cb().GotQuestionColon(token)
				token = j.next()
				continue exprLoop

			default:
				j.pushBack(token)
				j.cb().EndExpression(token, false)
				return
			}
		}
	}
}

// parseIdentExpressionPart handles an identifier at a value position:
// a method call, a lambda shorthand, a compound dotted name, a class
// literal, or a plain identifier.
func (j *javaParser) parseIdentExpressionPart(token Token, lambdaAllowed bool) {
	switch {
	case j.la(1).Kind == TokenLParen:
		// Method call
		j.cb().GotMethodCall(token)
		j.parseArgumentList(j.next())

	case j.la(1).Kind == TokenArrow && lambdaAllowed:
		j.next() // '->'
		j.parseLambdaBody()

	case j.la(1).Kind == TokenDot && j.la(2).Kind == TokenIdent &&
		j.la(3).Kind != TokenLParen:
		j.cb().GotCompoundIdent(token)
		j.next() // dot
		token = j.next()
		for j.la(1).Kind == TokenDot && j.la(2).Kind == TokenIdent &&
			j.la(3).Kind != TokenLParen && j.la(3).Kind != TokenEOF {
			j.cb().GotCompoundComponent(token)
			j.next() // dot
			token = j.next()
		}

		// Either no dot follows, or a dot with no identifier after it.
		if j.la(1).Kind == TokenDot {
			dotToken := j.next()
			ntoken := j.next()
			switch ntoken.Kind {
			case TokenClass:
				j.cb().CompleteCompoundClass(token)
				j.cb().GotClassLiteral(ntoken)
			case TokenThis, TokenSuper:
				j.cb().CompleteCompoundClass(token)
			default:
				j.cb().CompleteCompoundValue(token)
				// Treat the dot as an operator.
				j.pushBack(ntoken)
				j.pushBack(dotToken)
			}
		} else if j.la(1).Kind == TokenEOF {
			j.cb().CompleteCompoundValueEOF(token)
		} else {
			if j.la(1).Kind == TokenLBracket && j.la(2).Kind == TokenRBracket {
				j.cb().CompleteCompoundClass(token)
				j.parseArrayDeclarators()
				if j.la(1).Kind == TokenDot && j.la(2).Kind == TokenClass {
					j.next()
					token = j.next()
					j.cb().GotClassLiteral(token)
				} else {
					j.error("expected '.class'")
				}
			}
			j.cb().CompleteCompoundValue(token)
		}

	case j.la(1).Kind == TokenDot:
		j.cb().GotParentIdentifier(token)
		if j.la(2).Kind == TokenClass {
			j.next() // dot
			token = j.next()
			j.cb().GotClassLiteral(token)
		}

	case j.la(1).Kind == TokenLBracket && j.la(2).Kind == TokenRBracket:
		j.cb().GotArrayTypeIdentifier(token)
		j.parseArrayDeclarators()
		if j.la(1).Kind == TokenDot && j.la(2).Kind == TokenClass {
			j.next()
			token = j.next()
			j.cb().GotClassLiteral(token)
		} else {
			j.error("expected '.class'")
		}

	case j.la(1).Kind == TokenEOF:
		j.cb().GotIdentifierEOF(token)

	default:
		j.cb().GotIdentifier(token)
	}
}

// parseParenExpressionPart resolves '(' at a value position into
// a type cast, a lambda, or a parenthesized expression. ok=false
// means the expression ended, with EndExpression already fired. On a
// cast, operand is the first token following it.
func (j *javaParser) parseParenExpressionPart(lambdaAllowed bool) (operand *Token, ok bool) {
	// Casts to primitive types are special: they can be followed by
	// +, ++, -, -- and still be casts.
	isPrimitive := isPrimitiveType(j.la(1))

	var tlist []Token
	isTypeSpec := j.parseTypeSpecInternal(true, true, &tlist)

	// We have a cast if
	// - it's a type spec
	// - it's followed by ')'
	// - it's not followed by an operator, OR the type is primitive
	//   and the following operator is unary, OR '(' follows the ')'
	// - it's not followed by an expression terminator
	tt2 := j.la(2)
	isCast := isTypeSpec && j.la(1).Kind == TokenRParen && tt2.Kind != TokenArrow
	if tt2.Kind != TokenLParen {
		isCast = isCast && (!isOperator(tt2) || (isPrimitive && isUnaryOperator(tt2)))
		isCast = isCast && !isExpressionTerminator(tt2) && tt2.Kind != TokenQuestion
	}

	if isCast {
		j.cb().GotTypeCast(tlist)
		j.next() // ')'
		tok := j.next()
		return &tok, true
	}

	// Not a cast: an expression or a lambda parameter list.
	isLambda := false
	if isTypeSpec {
		switch j.la(1).Kind {
		case TokenRParen:
			isLambda = tt2.Kind == TokenArrow
		case TokenIdent, TokenEllipsis:
			// A lambda parameter with type and name.
			isLambda = true
		}
	}
	j.pushBackAll(tlist)
	tt1 := j.la(1)
	tt2 = j.la(2)
	if !isLambda {
		if tt1.Kind == TokenRParen && tt2.Kind == TokenArrow {
			isLambda = true
		} else if isJavaModifier(tt1) {
			isLambda = true
		} else if tt1.Kind == TokenIdent && tt2.Kind == TokenComma {
			isLambda = true
		}
	}

	if isLambda && lambdaAllowed {
		j.parseLambdaParameterList()
		tok := j.next()
		if tok.Kind == TokenRParen {
			tok = j.next()
		}
		if tok.Kind != TokenArrow {
			j.error("expected '->' after lambda parameter list")
			j.cb().EndExpression(tok, false)
			return nil, false
		}
		j.parseLambdaBody()
		return nil, true
	}

	j.ParseExpression()
	tok := j.next()
	if tok.Kind != TokenRParen {
		j.pushBack(tok)
		j.error("unmatched '(' in expression; expected ')'")
		j.cb().EndExpression(tok, false)
		return nil, false
	}
	return nil, true
}

// parseDotOperator handles '.' at an operator position. With stay set
// the caller continues looking for operators; otherwise *operand is
// the first token of the next operand.
func (j *javaParser) parseDotOperator(opToken Token) (operand *Token, stay bool) {
	token := j.next()
	if token.Kind == TokenEOF {
		// Not valid, but useful for consumers doing completion. The
		// EOF propagates as an operand, which reports the error.
		j.cb().GotDotEOF(opToken)
		return &token, false
	}
	la1 := j.la(1)
	if la1.Kind == TokenEOF && la1.Column() == token.EndColumn() &&
		la1.Line() == token.EndLine() {
		// Something that looks like a keyword might be a partially
		// typed identifier.
		if token.Literal != "" && isIdentStart(token.Literal[0]) {
			j.cb().GotMemberAccessEOF(token)
			return nil, true
		}
	}

	switch token.Kind {
	case TokenClass:
		// Class literal: carry on looking for another operator.
		return nil, true
	case TokenIdent:
		if j.la(1).Kind == TokenLParen {
			j.cb().GotMemberCall(token, nil)
			j.parseArgumentList(j.next())
		} else {
			j.cb().GotMemberAccess(token)
		}
		return nil, true
	case TokenLT:
		// Generic method call
		dr := &depthRef{depth: 1}
		ttokens := []Token{token}
		if !j.parseTargs(false, &ttokens, dr) {
			return nil, true // we're a bit lost now really
		}
		token = j.next()
		if token.Kind != TokenIdent {
			j.error("expected method name (in call to generic method)")
			return nil, true
		}
		j.cb().GotMemberCall(token, ttokens)
		token = j.next()
		if token.Kind != TokenLParen {
			j.error("expected '(' after method name")
			return nil, true
		}
		j.parseArgumentList(token)
		return nil, true
	}
	j.cb().GotBinaryOperator(opToken)
	return &token, false
}

// Pattern classification for instanceof and case labels. The lookahead
// leaves the token stream untouched.
type patternParse int

const (
	patternOnlyType patternParse = iota
	patternTypeThenVar
	patternRecord
	patternOther
)

func (j *javaParser) lookAheadParsePattern() patternParse {
	var tlist []Token
	isTypeSpec := j.parseTypeSpecInternal(true, true, &tlist)
	laToken := j.la(1)
	j.pushBackAll(tlist)
	if !isTypeSpec {
		return patternOther
	}
	switch laToken.Kind {
	case TokenIdent:
		// A type then a variable name, e.g. String s.
		return patternTypeThenVar
	case TokenLParen:
		// A record pattern, e.g. Point(int x, int y).
		return patternRecord
	default:
		return patternOnlyType
	}
}

// parseArrayInitializerList parses "{ expr, expr, ... }"; token is the
// opening brace. Returns the last token consumed.
func (j *javaParser) parseArrayInitializerList(token Token) Token {
	for {
		if j.la(1).Kind == TokenRBrace {
			token = j.next()
			break
		}
		j.ParseExpression()
		token = j.next()
		if token.Kind != TokenComma {
			break
		}
	}
	if token.Kind != TokenRBrace {
		j.errorBefore("expected '}' at end of initialiser list expression", token)
		j.pushBack(token)
	}
	return token
}

func (j *javaParser) parseNewExpression(token Token) {
	j.cb().GotExprNew(token)
	token = j.next()
	if token.Kind != TokenIdent && !isPrimitiveType(token) {
		j.pushBack(token)
		j.error("expected type identifier after 'new' (in expression)")
		j.cb().EndExprNew(token, false)
		return
	}
	j.pushBack(token)
	j.ParseTypeSpec(false)
	token = j.next()

	if token.Kind == TokenLBracket {
		for {
			// array dimensions
			withDimension := false
			if j.la(1).Kind != TokenRBracket {
				withDimension = true
				j.ParseExpression()
			}
			token = j.next()
			if token.Kind != TokenRBracket {
				j.pushBack(token)
				j.errorBefore("expected ']' after array dimension (in 'new' expression)", token)
				j.cb().EndExprNew(token, false)
				return
			}
			j.cb().GotNewArrayDeclarator(withDimension)
			if j.la(1).Kind != TokenLBracket {
				break
			}
			token = j.next()
		}

		if j.la(1).Kind == TokenLBrace {
			token = j.next()
			j.cb().BeginArrayInitList(token)
			token = j.parseArrayInitializerList(token)
			j.cb().EndArrayInitList(token)
			j.cb().EndExprNew(token, token.Kind == TokenRBrace)
			return
		}

		j.cb().EndExprNew(token, true)
		return
	}

	if token.Kind != TokenLParen {
		j.pushBack(token)
		j.error("expected '(' or '[' after type name (in 'new' expression)")
		j.cb().EndExprNew(token, false)
		return
	}
	j.parseArgumentList(token)

	if j.la(1).Kind == TokenLBrace {
		// An anonymous class body.
		token = j.next()
		j.cb().BeginAnonClassBody(token, false)
		j.ParseClassBody()
		token = j.next()
		if token.Kind != TokenRBrace {
			j.error("expected '}' at end of anonymous class body")
			j.pushBack(token)
			j.cb().EndAnonClassBody(token, false)
			j.cb().EndExprNew(token, false)
			return
		}
		j.cb().EndAnonClassBody(token, true)
	}
	j.cb().EndExprNew(token, true)
}

// parseArgumentList parses a possibly-empty argument list, consuming
// the closing ')'. token is the '(' token.
func (j *javaParser) parseArgumentList(token Token) {
	j.cb().BeginArgumentList(token)
	token = j.next()
	if token.Kind != TokenRParen {
		j.pushBack(token)
		for {
			j.ParseExpression()
			token = j.next()
			j.cb().EndArgument()
			if token.Kind != TokenComma {
				break
			}
		}
		if token.Kind != TokenRParen {
			j.errorBefore("expected ',' or ')' (in argument list)", token)
			j.pushBack(token)
		}
	}
	j.cb().EndArgumentList(token)
}

func (j *javaParser) parseLambdaParameterList() {
	token := j.next()

	for token.Kind != TokenRParen && token.Kind != TokenRBrace {
		j.pushBack(token)
		j.cb().GotLambdaFormalParam()
		mods := j.parseModifiers()

		tt1 := j.la(1)
		tt2 := j.la(2)
		if tt1.Kind == TokenIdent && (tt2.Kind == TokenComma || tt2.Kind == TokenRParen) {
			token = j.next() // identifier
			j.cb().GotLambdaFormalName(token)
			token = j.next()
		} else {
			if !j.parseTypeSpecInternal(false, true, &mods) {
				j.cb().ModifiersConsumed()
				j.error("formal lambda parameter specified incorrectly")
				return
			}
			j.cb().GotLambdaFormalType(mods)
			token = j.next()
			if token.Kind == TokenEllipsis {
				token = j.next()
			}
			if token.Kind != TokenIdent {
				j.cb().ModifiersConsumed()
				j.error("formal lambda parameter lacks a name")
				return
			}
			j.cb().GotLambdaFormalName(token)
			j.parseArrayDeclarators()
			token = j.next()
		}

		j.cb().ModifiersConsumed()

		if token.Kind != TokenComma {
			break
		}
		token = j.next()
	}
	j.pushBack(token)
}

// parseParameterList parses a possibly-empty formal parameter list;
// the closing ')' is left in the stream.
func (j *javaParser) parseParameterList(areRecordParameters bool) {
	token := j.next()
	// A '{' here is the method body arriving early (unclosed parameter
	// list); leave it for the caller to diagnose.
	for token.Kind != TokenRParen && token.Kind != TokenRBrace &&
		token.Kind != TokenLBrace {
		j.pushBack(token)
		first := token

		j.cb().BeginFormalParameter(token)
		j.parseModifiers()
		j.ParseTypeSpec(true)
		idToken := j.next()
		var varargsToken *Token
		if idToken.Kind == TokenEllipsis {
			tok := idToken
			varargsToken = &tok
			idToken = j.next()
		}
		if idToken.Kind != TokenIdent {
			j.error("expected parameter identifier (in method/record parameter)")
			j.pushBack(idToken)
			return
		}
		j.parseArrayDeclarators()
		if areRecordParameters {
			j.cb().GotRecordParameter(first, idToken, varargsToken)
		} else {
			j.cb().GotMethodParameter(idToken, varargsToken)
		}

		j.cb().ModifiersConsumed()
		token = j.next()
		if token.Kind != TokenComma {
			break
		}
		token = j.next()
	}
	j.pushBack(token)
}
