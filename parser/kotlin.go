package parser

// kotlinParser implements Behavior for the Kotlin-family grammar. The
// grammar is recognized at declaration granularity: type definitions,
// functions, properties and object declarations produce full event
// sequences, while statement and expression interiors are consumed by
// delimiter matching. Semicolons and class-body braces are optional,
// so recovery leans on spotting the keywords that can only start a new
// declaration.
type kotlinParser struct {
	p *SourceParser
}

var _ Behavior = (*kotlinParser)(nil)

func (k *kotlinParser) next() Token        { return k.p.next() }
func (k *kotlinParser) la(n int) Token     { return k.p.la(n) }
func (k *kotlinParser) pushBack(tok Token) { k.p.pushBack(tok) }
func (k *kotlinParser) cb() Callbacks      { return k.p.cb }
func (k *kotlinParser) lastToken() Token   { return k.p.lastConsumed }

func (k *kotlinParser) error(msg string) {
	k.p.errorBehind(msg, k.lastToken())
}

func (k *kotlinParser) errorAt(msg string, tok Token) { k.p.errorAt(msg, tok) }

// Soft modifiers have no reserved token kind; they lex as identifiers
// and are recognized by spelling in modifier position only.
var kotlinSoftModifiers = map[string]bool{
	"actual":      true,
	"annotation":  true,
	"crossinline": true,
	"expect":      true,
	"external":    true,
	"infix":       true,
	"inline":      true,
	"lateinit":    true,
	"noinline":    true,
	"operator":    true,
	"override":    true,
	"reified":     true,
	"suspend":     true,
	"tailrec":     true,
	"vararg":      true,
}

func isKotlinModifier(tok Token) bool {
	switch tok.Kind {
	case TokenPublic, TokenPrivate, TokenProtected, TokenInternal,
		TokenAbstract, TokenFinal, TokenSealed, TokenOpen, TokenData,
		TokenConst, TokenInner, TokenAt:
		return true
	case TokenIdent:
		return kotlinSoftModifiers[tok.Literal]
	}
	return false
}

func isKotlinTypeDeclarator(tok Token) bool {
	switch tok.Kind {
	case TokenClass, TokenEnum, TokenInterface:
		return true
	}
	return false
}

// startsKotlinDecl reports whether tok can only begin a new
// declaration. These keywords delimit brace-less class headers.
func startsKotlinDecl(tok Token) bool {
	switch tok.Kind {
	case TokenClass, TokenInterface, TokenEnum, TokenFun,
		TokenVal, TokenVar, TokenOpen:
		return true
	}
	return false
}

func (k *kotlinParser) ParseCU() {
	state := 0
	for k.la(1).Kind != TokenEOF {
		if k.la(1).Kind == TokenSemicolon {
			k.next()
			continue
		}
		state = k.ParseCUPart(state)
	}
	k.cb().FinishedCU(state)
}

func (k *kotlinParser) ParseCUPart(state int) int {
	token := k.next()
	switch {
	case token.Kind == TokenPackage:
		if state != 0 {
			k.errorAt("only one 'package' statement is allowed", token)
		}
		k.parsePackageStmt(token)
		k.cb().ReachedCUState(CUStateImports)
		state = CUStateImports
	case token.Kind == TokenImport:
		k.parseImportStatement(token)
		k.cb().ReachedCUState(CUStateImports)
		state = CUStateImports
	case isKotlinModifier(token) || isKotlinTypeDeclarator(token):
		k.cb().GotTopLevelDecl(token)
		k.cb().GotDeclBegin(token)
		k.pushBack(token)
		k.parseModifiers()
		switch k.la(1).Kind {
		case TokenFun:
			k.processFunction(k.next(), true)
		case TokenVal, TokenVar:
			k.processProperty(k.next())
		case TokenObject:
			k.processObjectDeclaration(k.next())
		default:
			k.parseTypeDef(token)
		}
		k.cb().ReachedCUState(CUStateTypeDefs)
		state = CUStateTypeDefs
	case token.Kind == TokenFun:
		k.cb().GotTopLevelDecl(token)
		k.cb().GotDeclBegin(token)
		k.processFunction(token, true)
		k.cb().ReachedCUState(CUStateTypeDefs)
		state = CUStateTypeDefs
	case token.Kind == TokenVal || token.Kind == TokenVar:
		k.cb().GotTopLevelDecl(token)
		k.cb().GotDeclBegin(token)
		k.processProperty(token)
		k.cb().ReachedCUState(CUStateTypeDefs)
		state = CUStateTypeDefs
	case token.Kind == TokenObject:
		k.cb().GotTopLevelDecl(token)
		k.cb().GotDeclBegin(token)
		k.processObjectDeclaration(token)
		k.cb().ReachedCUState(CUStateTypeDefs)
		state = CUStateTypeDefs
	case token.Kind == TokenEOF:
		return state
	default:
		k.errorAt("expected a type definition (class, interface or enum)", token)
	}
	return state
}

func (k *kotlinParser) parseModifiers() []Token {
	var mods []Token

	token := k.next()
	for isKotlinModifier(token) {
		if token.Kind == TokenAt {
			if k.la(1).Kind != TokenIdent {
				k.pushBack(token)
				return mods
			}
			k.parseAnnotation()
		} else {
			k.cb().GotModifier(token)
		}
		mods = append(mods, token)
		token = k.next()
	}
	k.pushBack(token)

	return mods
}

// parseAnnotation skips an annotation and its arguments. Annotation
// interiors are not modeled for this grammar.
func (k *kotlinParser) parseAnnotation() {
	token := k.next()
	for token.Kind != TokenSemicolon && token.Kind != TokenLBrace &&
		token.Kind != TokenRBrace && token.Kind != TokenEOF {
		token = k.next()
	}
	k.pushBack(token)
}

func (k *kotlinParser) parsePackageStmt(token Token) {
	k.cb().BeginPackageStatement(token)

	var pkgTokens []Token
	foundSemi := false
	for {
		token = k.next()
		if token.Kind == TokenSemicolon || startsKotlinDecl(token) ||
			token.Kind == TokenEOF {
			if token.Kind == TokenSemicolon {
				foundSemi = true
			} else if token.Kind != TokenEOF {
				k.pushBack(token)
			}
			break
		}
		if token.Kind == TokenIdent {
			pkgTokens = append(pkgTokens, token)
		}
	}

	k.cb().GotPackage(pkgTokens)
	if foundSemi {
		k.cb().GotPackageSemi(token)
	}
}

func (k *kotlinParser) ParseImportStatement() {
	token := k.next()
	if token.Kind == TokenImport {
		k.parseImportStatement(token)
	} else {
		k.error("import statements must start with 'import'")
	}
}

func (k *kotlinParser) parseImportStatement(importToken Token) {
	k.cb().BeginElement(importToken)
	token := k.next()
	if token.Kind != TokenIdent {
		k.pushBack(token)
		k.error("expected identifier (package containing element to be imported)")
		k.cb().EndElement(token, false)
		return
	}

	tokens := k.parseDottedIdent(token)
	lastIdentToken := k.lastToken()
	if k.la(1).Kind == TokenDot {
		dotToken := k.next()
		token = k.next()
		switch token.Kind {
		case TokenSemicolon:
			k.errorAt("trailing '.' in import statement", dotToken)
		case TokenStar:
			starToken := token
			token = k.next()
			if token.Kind != TokenSemicolon {
				k.pushBack(token)
				k.p.errorBehind("expected ';' following import statement", starToken)
			} else {
				k.cb().GotWildcardImport(tokens, false, importToken, token)
				k.cb().GotImportStmtSemi(token)
			}
		default:
			k.error("expected package/class identifier, or '*', in import statement")
			if k.la(1).Kind == TokenSemicolon {
				k.next()
			}
		}
	} else {
		token = k.next()
		if token.Kind != TokenSemicolon {
			k.pushBack(token)
			k.p.errorBehind("expected ';' following import statement", lastIdentToken)
		} else {
			k.cb().GotImport(tokens, false, importToken, token)
			k.cb().GotImportStmtSemi(token)
		}
	}
}

func (k *kotlinParser) parseDottedIdent(first Token) []Token {
	rval := []Token{first}
	token := k.next()
	for token.Kind == TokenDot {
		ntoken := k.next()
		if ntoken.Kind != TokenIdent {
			k.pushBack(ntoken)
			break
		}
		rval = append(rval, token, ntoken)
		token = k.next()
	}
	k.pushBack(token)
	return rval
}

func (k *kotlinParser) ParseTypeDef() {
	k.parseModifiers()
	k.parseTypeDef(k.la(1))
}

func (k *kotlinParser) parseTypeDef(firstToken Token) {
	tdType := k.parseTypeDefBegin()
	if tdType != tdEpicFail {
		k.cb().GotTypeDef(firstToken, tdType)
	}
	k.cb().ModifiersConsumed()
	if tdType == tdEpicFail {
		k.cb().EndDecl(k.la(1))
		return
	}

	token := k.next()
	if token.Kind != TokenIdent {
		k.pushBack(token)
		k.cb().GotTypeDefEnd(token, false)
		k.error("expected identifier (in type definition)")
		return
	}
	k.cb().GotTypeDefName(token)

	opening, ok := k.parseTypeDefPart2()
	if !ok {
		// The header ran into the next declaration; the braceless
		// type definition ends here.
		k.cb().GotTypeDefEnd(k.lastToken(), true)
		return
	}
	if opening.Kind != TokenLBrace {
		// A body is optional.
		k.pushBack(opening)
		k.cb().GotTypeDefEnd(opening, false)
		return
	}

	last := k.ParseTypeBody(tdType, opening)
	k.cb().GotTypeDefEnd(last, last.Kind == TokenRBrace)
}

func (k *kotlinParser) parseTypeDefBegin() int {
	token := k.next()
	switch token.Kind {
	case TokenClass:
		return TypeDefClass
	case TokenInterface:
		return TypeDefInterface
	case TokenEnum:
		// "enum class Name"
		if k.la(1).Kind == TokenClass {
			k.next()
		}
		return TypeDefEnum
	}
	k.pushBack(token)
	return tdEpicFail
}

// parseTypeDefPart2 consumes the rest of a type definition header:
// type parameters, primary constructor parameters and superclass
// list. ok=false reports that a new declaration started before any
// '{' was found, meaning the current definition is braceless.
func (k *kotlinParser) parseTypeDefPart2() (Token, bool) {
	token := k.next()
	for token.Kind != TokenLBrace && token.Kind != TokenEOF {
		if token.Kind == TokenLParen {
			// Primary constructor parameters; val/var in here do not
			// start a declaration.
			depth := 1
			for depth > 0 && token.Kind != TokenEOF {
				token = k.next()
				switch token.Kind {
				case TokenLParen:
					depth++
				case TokenRParen:
					depth--
				}
			}
			token = k.next()
			continue
		}
		if startsKotlinDecl(token) {
			k.pushBack(token)
			return Token{}, false
		}

		if token.Kind == TokenColon {
			k.processInheritance()
			if startsKotlinDecl(k.la(1)) {
				return Token{}, false
			}
		}
		token = k.next()
	}
	return token, true
}

func (k *kotlinParser) ParseTypeBody(tdType int, token Token) Token {
	k.cb().BeginTypeBody(token)

	if tdType == TypeDefEnum {
		k.parseEnumConstants()
	}

	if k.la(1).Kind == TokenRBrace {
		token = k.next()
	} else {
		k.ParseClassBody()
		if k.la(1).Kind == TokenRBrace {
			token = k.next()
		} else {
			// Recover by brace balance; headers of nested sealed
			// subclasses can throw the element scan off.
			depth := 1
			token = k.la(1)
			for depth > 0 && token.Kind != TokenEOF {
				token = k.next()
				switch token.Kind {
				case TokenLBrace:
					depth++
				case TokenRBrace:
					depth--
				}
			}
			if depth > 0 {
				k.error("expected '}' (in class definition)")
			}
		}
	}

	k.cb().EndTypeBody(token, token.Kind == TokenRBrace)
	return token
}

// parseEnumConstants consumes the constant list of an enum class,
// reporting each constant as a field. Constructor arguments and
// constant bodies are skipped by delimiter matching.
func (k *kotlinParser) parseEnumConstants() {
	token := k.la(1)
	if token.Kind == TokenRBrace {
		return
	}

	k.cb().BeginFieldDeclarations(token)
	foundSemi := false

constLoop:
	for token.Kind != TokenRBrace && token.Kind != TokenEOF {
		if token.Kind == TokenSemicolon {
			foundSemi = true
			k.next()
			break
		}

		if token.Kind == TokenIdent {
			identToken := token
			k.cb().GotDeclBegin(identToken)
			k.next()
			k.cb().GotField(identToken, identToken, false)
			token = k.next()

			if token.Kind == TokenLParen {
				k.cb().BeginArgumentList(token)
				depth := 1
				for depth > 0 && token.Kind != TokenEOF {
					token = k.next()
					switch token.Kind {
					case TokenLParen:
						depth++
					case TokenRParen:
						depth--
					}
				}
				k.cb().EndArgumentList(token)
				token = k.next()
			}

			if token.Kind == TokenLBrace {
				k.cb().BeginAnonClassBody(token, true)
				depth := 1
				for depth > 0 && token.Kind != TokenEOF {
					token = k.next()
					switch token.Kind {
					case TokenLBrace:
						depth++
					case TokenRBrace:
						depth--
					}
				}
				k.cb().EndAnonClassBody(token, true)
				token = k.next()
			}

			k.cb().EndField(token, true)

			switch token.Kind {
			case TokenSemicolon:
				foundSemi = true
				break constLoop
			case TokenRBrace:
				k.pushBack(token)
				break constLoop
			}
		} else {
			k.next()
		}

		token = k.la(1)
	}

	k.cb().EndFieldDeclarations(token, foundSemi)
}

func (k *kotlinParser) ParseClassBody() {
	token := k.next()
	for token.Kind != TokenRBrace {
		if token.Kind == TokenEOF {
			k.errorAt("unexpected end of input in type body; missing '}'", token)
			return
		}
		k.parseClassElement(token)
		// The closing brace is left for the type body.
		if k.la(1).Kind == TokenRBrace {
			return
		}
		token = k.next()
	}
	k.pushBack(token)
}

func (k *kotlinParser) parseClassElement(token Token) {
	if token.Kind == TokenSemicolon {
		// A spurious semicolon.
		return
	}

	k.cb().GotDeclBegin(token)
	k.pushBack(token)

	mods := k.parseModifiers()
	var firstMod *Token
	if len(mods) > 0 {
		firstMod = &mods[0]
	}

	token = k.next()
	switch {
	case isKotlinTypeDeclarator(token):
		k.cb().GotInnerType(token)
		k.pushBack(token)
		first := token
		if firstMod != nil {
			first = *firstMod
		}
		k.parseTypeDef(first)
		k.cb().EndElement(k.lastToken(), true)

	case token.Kind == TokenCompanion:
		companionToken := token
		token = k.next()
		if token.Kind == TokenObject {
			k.processCompanionObject(companionToken, token)
		} else {
			k.errorAt("expected 'object' after 'companion'", token)
			k.pushBack(token)
			k.cb().EndDecl(token)
		}

	case token.Kind == TokenObject:
		k.processObjectDeclaration(token)

	case token.Kind == TokenFun:
		k.processFunction(token, false)

	case token.Kind == TokenVal || token.Kind == TokenVar ||
		token.Kind == TokenConst:
		k.processProperty(token)

	case token.Kind == TokenInit:
		initToken := token
		token = k.next()
		if token.Kind != TokenLBrace {
			k.errorAt("expected '{' after 'init'", token)
			k.pushBack(token)
			k.pushBack(initToken)
			return
		}
		firstToken := initToken
		if firstMod != nil {
			firstToken = *firstMod
		}
		k.cb().BeginInitBlock(firstToken, token)
		k.cb().ModifiersConsumed()
		k.pushBack(token)
		k.parseStmtBlock()
		token = k.next()
		if token.Kind != TokenRBrace {
			k.error("expected '}' (at end of init block)")
			k.pushBack(token)
			k.cb().EndInitBlock(token, false)
			k.cb().EndElement(token, false)
			return
		}
		k.cb().EndInitBlock(token, true)
		k.cb().EndElement(token, true)

	case token.Kind == TokenLBrace:
		firstToken := token
		if firstMod != nil {
			firstToken = *firstMod
		}
		k.cb().BeginInitBlock(firstToken, token)
		k.cb().ModifiersConsumed()
		k.pushBack(token)
		k.parseStmtBlock()
		token = k.next()
		if token.Kind != TokenRBrace {
			k.error("expected '}' (at end of initialisation block)")
			k.pushBack(token)
			k.cb().EndInitBlock(token, false)
			k.cb().EndElement(token, false)
			return
		}
		k.cb().EndInitBlock(token, true)
		k.cb().EndElement(token, true)

	case token.Kind == TokenIdent:
		// An enum constant inside an enum class body.
		identToken := token
		k.cb().GotField(identToken, identToken, false)

		token = k.next()
		switch token.Kind {
		case TokenComma, TokenSemicolon:
			k.cb().EndField(token, true)
		case TokenRBrace:
			k.pushBack(token)
			k.cb().EndField(token, true)
		default:
			k.pushBack(token)
			k.cb().EndField(token, false)
		}

	default:
		k.errorAt("unexpected token "+token.Kind.String()+" in class body", token)
		for token.Kind != TokenSemicolon && token.Kind != TokenRBrace &&
			token.Kind != TokenEOF {
			token = k.next()
		}
		if token.Kind == TokenRBrace {
			k.pushBack(token)
		}
		k.cb().EndElement(token, token.Kind == TokenSemicolon)
	}
}

// parseStmtBlock parses a brace-delimited statement block. The closing
// '}' is left in the stream.
func (k *kotlinParser) parseStmtBlock() {
	token := k.la(1)
	if token.Kind != TokenLBrace {
		k.error("expected '{' (at beginning of statement block)")
		return
	}

	token = k.next()
	k.cb().BeginStmtBlockBody(token)

	for k.la(1).Kind != TokenRBrace && k.la(1).Kind != TokenEOF {
		k.ParseStatement()
	}

	token = k.la(1)
	if token.Kind == TokenEOF {
		k.error("unexpected end of input in statement block; missing '}'")
		k.cb().EndStmtBlockBody(token, false)
		return
	}
	k.cb().EndStmtBlockBody(token, true)
}

func (k *kotlinParser) ParseStatement() *Token {
	return k.parseStatement(k.next())
}

// parseStatement consumes one statement by scanning for its ';' or the
// enclosing '}'. Statement interiors are not modeled for this grammar.
func (k *kotlinParser) parseStatement(token Token) *Token {
	for token.Kind != TokenSemicolon && token.Kind != TokenRBrace &&
		token.Kind != TokenEOF {
		token = k.next()
	}
	if token.Kind == TokenRBrace {
		k.pushBack(token)
	}
	return &token
}

func (k *kotlinParser) ParseTypeSpec(processArray bool) bool {
	// Type positions are not modeled for this grammar; the declaration
	// scanners pick the type tokens out themselves.
	return false
}

func (k *kotlinParser) ParseExpression() {
	token := k.next()
	for token.Kind != TokenSemicolon && token.Kind != TokenRBrace &&
		token.Kind != TokenEOF {
		token = k.next()
	}
	if token.Kind == TokenRBrace {
		k.pushBack(token)
	}
}

func (k *kotlinParser) ParseVariableDeclarations() *Token {
	token := k.next()
	for token.Kind != TokenSemicolon && token.Kind != TokenRBrace &&
		token.Kind != TokenEOF {
		token = k.next()
	}
	if token.Kind == TokenRBrace {
		k.pushBack(token)
	}
	return &token
}

// ParseMethodParamsBody consumes a parameter list and function body by
// brace matching.
func (k *kotlinParser) ParseMethodParamsBody() {
	token := k.next()
	depth := 0
	for token.Kind != TokenEOF {
		switch token.Kind {
		case TokenLBrace:
			depth++
		case TokenRBrace:
			depth--
			if depth == 0 {
				return
			}
		}
		token = k.next()
	}
}

// processInheritance consumes the supertype list after ':'. Each named
// supertype is reported through the extends callbacks; constructor
// arguments after a supertype are skipped by parenthesis matching.
func (k *kotlinParser) processInheritance() {
	token := k.next()

	for token.Kind != TokenLBrace && token.Kind != TokenEOF {
		if startsKotlinDecl(token) {
			k.pushBack(token)
			return
		}

		if token.Kind == TokenIdent {
			k.cb().BeginTypeDefExtends(token)
			k.cb().GotTypeSpec([]Token{token})
			k.cb().EndTypeDefExtends()

			token = k.next()
			switch {
			case token.Kind == TokenLParen:
				depth := 1
				for depth > 0 && token.Kind != TokenEOF {
					token = k.next()
					switch token.Kind {
					case TokenLParen:
						depth++
					case TokenRParen:
						depth--
					}
				}
				if token.Kind != TokenEOF {
					token = k.next()
				}
				continue
			case token.Kind == TokenComma:
				token = k.next()
				continue
			case token.Kind == TokenLBrace:
				k.pushBack(token)
				return
			case startsKotlinDecl(token):
				k.pushBack(token)
				return
			default:
				continue
			}
		} else if token.Kind == TokenComma {
			token = k.next()
			continue
		} else if token.Kind == TokenLBrace {
			k.pushBack(token)
			return
		}
		token = k.next()
	}

	k.pushBack(token)
}

// processFunction parses a "fun" declaration from after the keyword.
// topLevel selects the element-level end notifications used outside a
// type body.
func (k *kotlinParser) processFunction(funToken Token, topLevel bool) {
	nameToken := k.next()
	if nameToken.Kind != TokenIdent {
		k.pushBack(nameToken)
		k.error("expected identifier (function name)")
		k.cb().EndDecl(nameToken)
		return
	}

	var returnType []Token
	var paramNames []Token
	var paramTypes [][]Token

	token := k.next()
	if token.Kind == TokenLParen {
		token = k.next()
		for token.Kind != TokenRParen && token.Kind != TokenEOF {
			if token.Kind == TokenIdent {
				paramNames = append(paramNames, token)
				token = k.next()
				if token.Kind == TokenColon {
					token = k.next()
					if token.Kind == TokenIdent || isPrimitiveType(token) {
						paramTypes = append(paramTypes, []Token{token})
					} else {
						paramTypes = append(paramTypes, nil)
					}
				} else {
					paramTypes = append(paramTypes, nil)
					continue
				}
			}
			token = k.next()
			if token.Kind == TokenComma {
				token = k.next()
			}
		}

		token = k.next()
		if token.Kind == TokenColon {
			token = k.next()
			if token.Kind == TokenIdent || isPrimitiveType(token) {
				returnType = append(returnType, token)
			}
		}
		for token.Kind != TokenLBrace && token.Kind != TokenEOF {
			token = k.next()
		}
	} else if token.Kind == TokenColon {
		token = k.next()
		if token.Kind == TokenIdent || isPrimitiveType(token) {
			returnType = append(returnType, token)
		}
		for token.Kind != TokenLBrace && token.Kind != TokenEOF {
			token = k.next()
		}
	}

	if token.Kind == TokenEOF {
		k.cb().EndDecl(token)
		return
	}

	if len(returnType) > 0 {
		k.cb().GotTypeSpec(returnType)
	}
	var comment *Token
	if n := len(funToken.HiddenBefore); n > 0 {
		comment = &funToken.HiddenBefore[n-1]
	}
	k.cb().GotMethodDeclaration(nameToken, comment)
	k.cb().ModifiersConsumed()

	for i, name := range paramNames {
		if paramTypes[i] != nil {
			k.cb().GotTypeSpec(paramTypes[i])
		}
		k.cb().GotMethodParameter(name, nil)
	}
	k.cb().GotAllMethodParameters()

	k.cb().BeginMethodBody(token)
	k.processBody()
	last := k.lastToken()
	k.cb().EndMethodBody(last, last.Kind == TokenRBrace)
	if topLevel {
		k.cb().EndElement(last, last.Kind == TokenRBrace)
	} else {
		k.cb().EndMethodDecl(last, last.Kind == TokenRBrace)
	}
}

// processProperty parses a val/var/const declaration from after the
// keyword, reported through the field callbacks.
func (k *kotlinParser) processProperty(propertyToken Token) {
	nameToken := k.next()
	if nameToken.Kind != TokenIdent {
		k.pushBack(nameToken)
		k.error("expected identifier (property name)")
		k.cb().EndDecl(nameToken)
		return
	}

	k.cb().BeginFieldDeclarations(propertyToken)

	var token Token
	var typeTokens []Token

	for {
		token = k.next()
		if token.Kind == TokenSemicolon || token.Kind == TokenEOF {
			break
		}
		if token.Kind == TokenRBrace || startsKotlinDecl(token) {
			k.pushBack(token)
			break
		}
		if token.Kind == TokenColon {
			token = k.next()
			if token.Kind == TokenIdent || isPrimitiveType(token) {
				typeTokens = append(typeTokens, token)
			}
		} else if token.Kind == TokenAssign {
			break
		}
	}

	if len(typeTokens) > 0 {
		k.cb().GotTypeSpec(typeTokens)
	}
	k.cb().GotField(propertyToken, nameToken, true)

	if token.Kind == TokenAssign {
		k.cb().BeginExpression(token, false)
		k.skipToDeclBoundary()
		k.cb().EndExpression(k.lastToken(), false)
	}

	k.cb().EndField(token, true)
	k.cb().EndFieldDeclarations(token, true)
}

// processBody consumes a function body whose '{' has been consumed,
// recognizing nested declarations on the way.
func (k *kotlinParser) processBody() {
	depth := 1

	for depth > 0 {
		token := k.next()
		switch token.Kind {
		case TokenEOF:
			for depth > 1 {
				k.cb().EndStmtBlockBody(token, false)
				depth--
			}
			return
		case TokenLBrace:
			k.cb().BeginStmtBlockBody(token)
			depth++
		case TokenRBrace:
			depth--
			if depth > 0 {
				k.cb().EndStmtBlockBody(token, true)
			}
		case TokenClass, TokenInterface:
			k.cb().GotDeclBegin(token)
			k.pushBack(token)
			k.parseTypeDef(token)
		case TokenFun:
			k.cb().GotDeclBegin(token)
			k.processFunction(token, false)
		case TokenVal, TokenVar:
			k.cb().GotDeclBegin(token)
			k.processProperty(token)
		}
	}
}

// skipToDeclBoundary consumes an initializer expression. Semicolons
// are optional, so a declaration keyword also ends the expression.
func (k *kotlinParser) skipToDeclBoundary() {
	for {
		token := k.next()
		if token.Kind == TokenSemicolon || token.Kind == TokenEOF {
			return
		}
		switch token.Kind {
		case TokenVar, TokenVal, TokenFun, TokenClass, TokenInterface,
			TokenInit, TokenRBrace:
			k.pushBack(token)
			return
		}
	}
}

func (k *kotlinParser) processCompanionObject(companionToken, objectToken Token) {
	k.cb().GotInnerType(companionToken)
	k.cb().GotTypeDef(companionToken, TypeDefObject)
	k.cb().ModifiersConsumed()

	var token Token
	if k.la(1).Kind == TokenIdent {
		token = k.next()
		k.cb().GotTypeDefName(token)
		token = k.next()
	} else {
		// Anonymous; the object keyword stands in for the name.
		k.cb().GotTypeDefName(objectToken)
		token = k.next()
	}

	for token.Kind != TokenLBrace {
		if token.Kind == TokenColon {
			k.processInheritance()
		} else if token.Kind == TokenEOF {
			k.error("unexpected end of input in companion object definition")
			return
		}
		token = k.next()
	}

	k.cb().BeginTypeBody(token)
	k.ParseClassBody()
	token = k.next()
	if token.Kind != TokenRBrace {
		k.error("expected '}' (in companion object definition)")
	}
	k.cb().EndTypeBody(token, token.Kind == TokenRBrace)
	k.cb().GotTypeDefEnd(token, token.Kind == TokenRBrace)
}

func (k *kotlinParser) processObjectDeclaration(objectToken Token) {
	k.cb().GotInnerType(objectToken)
	k.cb().GotTypeDef(objectToken, TypeDefObject)
	k.cb().ModifiersConsumed()

	token := k.next()
	if token.Kind != TokenIdent {
		k.pushBack(token)
		k.cb().GotTypeDefEnd(token, false)
		k.error("expected identifier (in object declaration)")
		return
	}
	k.cb().GotTypeDefName(token)

	token = k.next()
	for token.Kind != TokenLBrace {
		if token.Kind == TokenColon {
			k.processInheritance()
		} else if token.Kind == TokenEOF {
			k.error("unexpected end of input in object declaration")
			return
		}
		token = k.next()
	}

	k.cb().BeginTypeBody(token)
	k.ParseClassBody()
	token = k.next()
	if token.Kind != TokenRBrace {
		k.error("expected '}' (in object declaration)")
	}
	k.cb().EndTypeBody(token, token.Kind == TokenRBrace)
	k.cb().GotTypeDefEnd(token, token.Kind == TokenRBrace)
}
