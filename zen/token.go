package zen

// TokenKind identifies the lexical category of a token.
type TokenKind string

const (
	tokenIdent       TokenKind = "IDENT"
	tokenIntValue    TokenKind = "INTVALUE"
	tokenFloatValue  TokenKind = "FLOATVALUE"
	tokenStringValue TokenKind = "STRINGVALUE"

	tokenAssign    TokenKind = "="
	tokenPlus      TokenKind = "+"
	tokenPlusAsgn  TokenKind = "+="
	tokenMinus     TokenKind = "-"
	tokenMinusAsgn TokenKind = "-="
	tokenMul       TokenKind = "*"
	tokenMulAsgn   TokenKind = "*="
	tokenDiv       TokenKind = "/"
	tokenDivAsgn   TokenKind = "/="
	tokenMod       TokenKind = "%"
	tokenModAsgn   TokenKind = "%="
	tokenCat       TokenKind = "~"
	tokenCatAsgn   TokenKind = "~="
	tokenOr        TokenKind = "|"
	tokenOrAsgn    TokenKind = "|="
	tokenOrOr      TokenKind = "||"
	tokenAnd       TokenKind = "&"
	tokenAndAsgn   TokenKind = "&="
	tokenAndAnd    TokenKind = "&&"
	tokenXor       TokenKind = "^"
	tokenXorAsgn   TokenKind = "^="
	tokenNot       TokenKind = "!"
	tokenEQ        TokenKind = "=="
	tokenNotEQ     TokenKind = "!="
	tokenLT        TokenKind = "<"
	tokenLTE       TokenKind = "<="
	tokenGT        TokenKind = ">"
	tokenGTE       TokenKind = ">="
	tokenQuestion  TokenKind = "?"
	tokenColon     TokenKind = ":"
	tokenSemicolon TokenKind = ";"
	tokenComma     TokenKind = ","
	tokenDot       TokenKind = "."
	tokenDotDot    TokenKind = ".."
	tokenLParen    TokenKind = "("
	tokenRParen    TokenKind = ")"
	tokenLBrace    TokenKind = "{"
	tokenRBrace    TokenKind = "}"
	tokenLBracket  TokenKind = "["
	tokenRBracket  TokenKind = "]"

	tokenAny        TokenKind = "ANY"
	tokenVoid       TokenKind = "VOID"
	tokenBool       TokenKind = "BOOL"
	tokenByte       TokenKind = "BYTE"
	tokenShort      TokenKind = "SHORT"
	tokenInt        TokenKind = "INT"
	tokenLong       TokenKind = "LONG"
	tokenFloat      TokenKind = "FLOAT"
	tokenDouble     TokenKind = "DOUBLE"
	tokenString     TokenKind = "STRING"
	tokenFunction   TokenKind = "FUNCTION"
	tokenIn         TokenKind = "IN"
	tokenAs         TokenKind = "AS"
	tokenInstanceof TokenKind = "INSTANCEOF"
	tokenIf         TokenKind = "IF"
	tokenElse       TokenKind = "ELSE"
	tokenFor        TokenKind = "FOR"
	tokenWhile      TokenKind = "WHILE"
	tokenBreak      TokenKind = "BREAK"
	tokenContinue   TokenKind = "CONTINUE"
	tokenReturn     TokenKind = "RETURN"
	tokenVar        TokenKind = "VAR"
	tokenVal        TokenKind = "VAL"
	tokenGlobal     TokenKind = "GLOBAL"
	tokenStatic     TokenKind = "STATIC"
	tokenImport     TokenKind = "IMPORT"
	tokenTrue       TokenKind = "TRUE"
	tokenFalse      TokenKind = "FALSE"
	tokenNull       TokenKind = "NULL"
	tokenClass      TokenKind = "ZENCLASS"
	tokenCtor       TokenKind = "ZENCONSTRUCTOR"
)

// Token captures lexical information for the parser. Offset is the byte
// offset of the token's first character in the original source.
type Token struct {
	Kind   TokenKind
	Text   string
	Offset int
}

// keywords maps keyword spellings to their token kinds. Several legacy
// spellings share a kind: `has` is an alias for `in`, and the friggin*
// forms are the historical spellings of zenClass/zenConstructor.
var keywords = map[string]TokenKind{
	"any":                tokenAny,
	"void":               tokenVoid,
	"bool":               tokenBool,
	"byte":               tokenByte,
	"short":              tokenShort,
	"int":                tokenInt,
	"long":               tokenLong,
	"float":              tokenFloat,
	"double":             tokenDouble,
	"string":             tokenString,
	"function":           tokenFunction,
	"in":                 tokenIn,
	"has":                tokenIn,
	"as":                 tokenAs,
	"instanceof":         tokenInstanceof,
	"if":                 tokenIf,
	"else":               tokenElse,
	"for":                tokenFor,
	"while":              tokenWhile,
	"break":              tokenBreak,
	"continue":           tokenContinue,
	"return":             tokenReturn,
	"var":                tokenVar,
	"val":                tokenVal,
	"global":             tokenGlobal,
	"static":             tokenStatic,
	"import":             tokenImport,
	"true":               tokenTrue,
	"false":              tokenFalse,
	"null":               tokenNull,
	"zenClass":           tokenClass,
	"frigginClass":       tokenClass,
	"zenConstructor":     tokenCtor,
	"frigginConstructor": tokenCtor,
}

// operators lists punctuation lexemes in match order: longer sequences
// first so `+=` wins over `+` and `..` over `.`.
var operators = []struct {
	text string
	kind TokenKind
}{
	{"+=", tokenPlusAsgn},
	{"-=", tokenMinusAsgn},
	{"*=", tokenMulAsgn},
	{"/=", tokenDivAsgn},
	{"%=", tokenModAsgn},
	{"~=", tokenCatAsgn},
	{"|=", tokenOrAsgn},
	{"||", tokenOrOr},
	{"&=", tokenAndAsgn},
	{"&&", tokenAndAnd},
	{"^=", tokenXorAsgn},
	{"==", tokenEQ},
	{"!=", tokenNotEQ},
	{"<=", tokenLTE},
	{">=", tokenGTE},
	{"..", tokenDotDot},
	{"{", tokenLBrace},
	{"}", tokenRBrace},
	{"[", tokenLBracket},
	{"]", tokenRBracket},
	{"(", tokenLParen},
	{")", tokenRParen},
	{",", tokenComma},
	{";", tokenSemicolon},
	{".", tokenDot},
	{"+", tokenPlus},
	{"-", tokenMinus},
	{"*", tokenMul},
	{"/", tokenDiv},
	{"%", tokenMod},
	{"~", tokenCat},
	{"|", tokenOr},
	{"&", tokenAnd},
	{"^", tokenXor},
	{"?", tokenQuestion},
	{":", tokenColon},
	{"<", tokenLT},
	{">", tokenGT},
	{"=", tokenAssign},
	{"!", tokenNot},
}
