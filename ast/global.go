package ast

var (
	Window   = Ident("window")
	Document = Ident("document")
	Console  = Ident("console")
	JSON     = Ident("JSON")
)

func ParseInt(e Expr) *CallExpression           { return Call("parseInt").Arg(e) }
func ParseFloat(e Expr) *CallExpression         { return Call("parseFloat").Arg(e) }
func IsNaN(e Expr) *CallExpression              { return Call("isNaN").Arg(e) }
func EncodeURIComponent(e Expr) *CallExpression { return Call("encodeURIComponent").Arg(e) }
func DecodeURIComponent(e Expr) *CallExpression { return Call("decodeURIComponent").Arg(e) }
func JSONParse(e Expr) *CallExpression          { return CallOn(JSON, "parse").Arg(e) }
func JSONStringify(e Expr) *CallExpression      { return CallOn(JSON, "stringify").Arg(e) }
func ConsoleLog(args ...Expr) *CallExpression   { return CallOn(Console, "log").Args(args...) }

// GetElementByID returns document.getElementById(id).
func GetElementByID(id string) *CallExpression {
	return CallOn(Document, "getElementById").Arg(String(id))
}
