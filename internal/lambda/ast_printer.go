package lambda

import "fmt"

// SexpPrinter renders an expression as an s-expression that shows the shape of
// the tree, which the canonical encoding hides. Bound variables are printed
// with their index, as in `x#0`.
type SexpPrinter struct{}

func (printer *SexpPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *SexpPrinter) VisitVarExpr(expr *VarExpr) (interface{}, error) {
	if expr.Idx != nil {
		return fmt.Sprintf("%s#%s", expr.Sym, expr.Idx), nil
	}
	return expr.Sym.String(), nil
}

func (printer *SexpPrinter) VisitUnvExpr(expr *UnvExpr) (interface{}, error) {
	if expr.Level == 0 {
		return "□", nil
	}
	return fmt.Sprintf("□%d", expr.Level), nil
}

func (printer *SexpPrinter) VisitAppExpr(expr *AppExpr) (interface{}, error) {
	fun, _ := expr.Fun.Accept(printer)
	arg, _ := expr.Arg.Accept(printer)
	return fmt.Sprintf("(app %s %s)", fun, arg), nil
}

func (printer *SexpPrinter) VisitAbsExpr(expr *AbsExpr) (interface{}, error) {
	return printer.binder(expr), nil
}

func (printer *SexpPrinter) VisitPrdExpr(expr *PrdExpr) (interface{}, error) {
	return printer.binder(expr), nil
}

func (printer *SexpPrinter) VisitSumExpr(expr *SumExpr) (interface{}, error) {
	return printer.binder(expr), nil
}

func (printer *SexpPrinter) binder(expr Binder) string {
	sym, typ, body := expr.Parts()
	typStr, _ := typ.Accept(printer)
	bodyStr, _ := body.Accept(printer)
	return fmt.Sprintf("(%s %s %s %s)", expr.Kind(), sym, typStr, bodyStr)
}
