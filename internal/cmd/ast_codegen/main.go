package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: ast_codegen <output directory>")
		os.Exit(64)
	}

	outputDir, err := filepath.Abs(os.Args[1])
	if err != nil {
		panic(err)
	}
	// we do it the scripting way, instead of having types support from Go stdlib.
	// A '?' after the type name marks a node whose construction can fail, no
	// constructor is generated for it and one has to be written by hand.
	expressionTypes := []string{
		// Idx is nil as long as no binder has claimed the variable.
		"Var: Sym Symbol, Idx *Index",
		"Unv: Level uint64",
		"App: Fun Expr, Arg Expr",
		"Abs?: Sym Symbol, Typ Expr, Body Expr",
		"Prd?: Sym Symbol, Typ Expr, Body Expr",
		"Sum?: Sym Symbol, Typ Expr, Body Expr",
	}

	if err := defineAst(outputDir, "Expr", expressionTypes); err != nil {
		panic(err)
	}
}

func defineAst(outputDir string, baseName string, types []string) error {
	var buf bytes.Buffer

	packageName := filepath.Base(outputDir)
	fmt.Fprintf(&buf, "// Code generated by ast_codegen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", packageName)

	// Interface for Expr in AST
	fmt.Fprintf(&buf, "type %s interface {\n", baseName)
	fmt.Fprintf(&buf, "\tAccept(visitor %sVisitor) (interface{}, error)\n", baseName)
	fmt.Fprintf(&buf, "}\n\n")

	defineVisitor(&buf, baseName, types)

	// Generate struct for each AST type
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fields := strings.TrimSpace(strings.Split(t, ":")[1])
		fallible := strings.HasSuffix(typeName, "?")
		defineType(&buf, baseName, strings.TrimSuffix(typeName, "?"), fields, fallible)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return err
	}
	fpath := filepath.Join(
		outputDir,
		fmt.Sprintf("%s.go", strings.ToLower(baseName)),
	)
	return os.WriteFile(fpath, src, 0644)
}

func defineVisitor(writer io.Writer, baseName string, types []string) {
	// We have one method for each AST type
	fmt.Fprintf(writer, "type %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeName := strings.TrimSuffix(strings.TrimSpace(strings.Split(t, ":")[0]), "?")
		fmt.Fprintf(
			writer,
			"\tVisit%s%s(%s *%s%s) (interface{}, error)\n",
			typeName, baseName,
			strings.ToLower(baseName),
			typeName, baseName,
		)
	}
	fmt.Fprintf(writer, "}\n\n")
}

func defineType(
	writer io.Writer,
	baseName string,
	typeName string,
	fieldList string,
	fallible bool,
) {
	var fields []string
	for _, f := range strings.Split(fieldList, ",") {
		field := strings.TrimSpace(f)
		fields = append(fields, field)
	}

	// Struct definition
	fmt.Fprintf(writer, "type %s%s struct {\n", typeName, baseName)
	for _, f := range fields {
		fmt.Fprintf(writer, "\t%s\n", f)
	}
	fmt.Fprintf(writer, "}\n\n")

	// Constructor
	if !fallible {
		var params, fieldNames []string
		for _, field := range fields {
			parts := strings.SplitN(field, " ", 2)
			param := lowerFirst(parts[0])
			params = append(params, fmt.Sprintf("%s %s", param, parts[1]))
			fieldNames = append(fieldNames, param)
		}
		fmt.Fprintf(
			writer,
			"func New%s%s(%s) *%s%s {\n",
			typeName, baseName,
			strings.Join(params, ", "),
			typeName, baseName,
		)
		fmt.Fprintf(
			writer,
			"\treturn &%s%s{%s}\n",
			typeName, baseName,
			strings.Join(fieldNames, ", "),
		)
		fmt.Fprintf(writer, "}\n\n")
	}

	// Accept method
	fmt.Fprintf(
		writer,
		"func (%s *%s%s) Accept(visitor %sVisitor) (interface{}, error) {\n",
		strings.ToLower(baseName),
		typeName, baseName,
		baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn visitor.Visit%s%s(%s)\n",
		typeName, baseName,
		strings.ToLower(baseName),
	)
	fmt.Fprintf(writer, "}\n\n")
}

func lowerFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
