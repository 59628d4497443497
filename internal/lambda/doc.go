/*
Package lambda turns source text of a small dependently-typed lambda calculus
into a syntax tree. The tree is what a type checker or a reducer works on, none
of which is done here.

Grammar

	expression  --> binder | application ;
	application --> function argument? ;
	function    --> object object* ;
	argument    --> binder ;
	binder      --> ( "λ" | "Π" | "Σ" ) IDENT ":" expression "." expression ;
	object      --> IDENT | "□" | "(" expression ")" ;

Application is left-associative: `f x y` is `(f x) y`. A binder is never the
function of an application unless it is parenthesized, and its body takes
everything up to the closing parenthesis or the end of input, so
`f λx : □ . x y` applies `f` to `λx : □ . (x y)`.

Binders are built through a BindPolicy which may reject them. The default one
gives every variable bound by the binder its De Bruijn index.
*/
package lambda

//go:generate go run ../cmd/ast_codegen .
