package ast

// Visitor is implemented by each pass over the AST: the semantic analyser
// (src/semantic/analyser.go), the code generator (src/codegen/generator.go),
// and the XML serializer (xml.go). Its shape mirrors the original
// Visitor.hpp one-to-one, with Program added as an explicit entry point
// instead of being the implicit root of an exec() static method.
type Visitor interface {
	VisitProgram(n *Program)
	VisitHeader(n *Header)
	VisitConstDecl(n *ConstDecl)
	VisitConstDeclaration(n *ConstDeclaration)
	VisitExpression(n *Expression)
	VisitBoolExpr(n *BoolExpr)
	VisitVarDecl(n *VarDecl)
	VisitDeclaration(n *Declaration)
	VisitSimpleType(n *SimpleType)
	VisitInterval(n *Interval)
	VisitArrayType(n *ArrayType)
	VisitBlock(n *Block)
	VisitFunctionCall(n *FunctionCall)
	VisitAssignment(n *Assignment)
	VisitWhile(n *While)
	VisitBranch(n *Branch)
	VisitOperation(n *Operation)
	VisitBoolOperation(n *BoolOperation)
	VisitModification(n *Modification)
	VisitFunctionName(n *FunctionName)
	VisitId(n *Id)
	VisitCell(n *Cell)
	VisitChar(n *Char)
	VisitStringLiteral(n *StringLiteral)
	VisitInt(n *Int)
}
