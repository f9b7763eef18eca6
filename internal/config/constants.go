package config

const SourceFileExt = ".my"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".my", ".mython"}

// Indentation is measured in units of two spaces.
const IndentWidth = 2

// Specially-named methods dispatched implicitly by the runtime.
const (
	InitMethod = "__init__"
	StrMethod  = "__str__"
	EqMethod   = "__eq__"
	LtMethod   = "__lt__"
	AddMethod  = "__add__"
)

// SelfName is the identifier bound to the receiver in every method scope.
const SelfName = "self"

// StrFuncName is the stringify pseudo-function recognized by the parser.
const StrFuncName = "str"

// MaxEvalDepth bounds Eval nesting to fail cleanly instead of
// overflowing the goroutine stack on deeply recursive programs.
const MaxEvalDepth = 10000
