package token

// BinOps maps binary operator kinds to their tokens.
var BinOps = map[string]string{
	"Add":      "+",
	"Sub":      "-",
	"Mult":     "*",
	"MatMult":  "@",
	"Div":      "/",
	"Mod":      "%",
	"LShift":   "<<",
	"RShift":   ">>",
	"BitOr":    "|",
	"BitXor":   "^",
	"BitAnd":   "&",
	"FloorDiv": "//",
	"Pow":      "**",
}

var UnaryOps = map[string]string{
	"Invert": "~",
	"Not":    "not",
	"UAdd":   "+",
	"USub":   "-",
}

var CmpOps = map[string]string{
	"Eq":    "==",
	"NotEq": "!=",
	"Lt":    "<",
	"LtE":   "<=",
	"Gt":    ">",
	"GtE":   ">=",
	"Is":    "is",
	"IsNot": "is not",
	"In":    "in",
	"NotIn": "not in",
}

var BoolOps = map[string]string{
	"And": "and",
	"Or":  "or",
}
