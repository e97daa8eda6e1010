// Package parser provides workbook parsing utilities for hyperlink extraction.
package parser

import (
	"strings"

	"github.com/xuri/efp"
)

// RangeArgument returns the text strictly between the first "(" and the
// first ")" of a formula. ok is false when either delimiter is missing.
// A ")" preceding the "(" yields an empty argument.
func RangeArgument(formula string) (arg string, ok bool) {
	open := strings.Index(formula, "(")
	closing := strings.Index(formula, ")")
	if open < 0 || closing < 0 {
		return "", false
	}
	if closing <= open {
		return "", true
	}
	return formula[open+1 : closing], true
}

// HyperlinkFormulaURL returns the URL argument of the first HYPERLINK call
// in a formula, e.g. =HYPERLINK("https://people.epfl.ch/?id=123456", "Name").
// Only literal string URLs are recognised.
func HyperlinkFormulaURL(formula string) (string, bool) {
	tokens := tokenize(formula)
	for i, token := range tokens {
		if token.TType != efp.TokenTypeFunction || token.TSubType != efp.TokenSubTypeStart {
			continue
		}
		if !strings.EqualFold(token.TValue, "HYPERLINK") || i+1 >= len(tokens) {
			continue
		}
		next := tokens[i+1]
		if next.TType == efp.TokenTypeOperand && next.TSubType == efp.TokenSubTypeText {
			return next.TValue, true
		}
	}
	return "", false
}

// IsRangeOperand reports whether ref tokenizes to a single range operand,
// i.e. a cell, rectangle, whole row/column span or defined name.
func IsRangeOperand(ref string) bool {
	tokens := tokenize(ref)
	if len(tokens) != 1 {
		return false
	}
	return tokens[0].TType == efp.TokenTypeOperand && tokens[0].TSubType == efp.TokenSubTypeRange
}

func tokenize(formula string) []efp.Token {
	formula = strings.TrimSpace(formula)
	if formula == "" {
		return nil
	}
	if !strings.HasPrefix(formula, "=") {
		formula = "=" + formula
	}
	ps := efp.ExcelParser()
	return ps.Parse(formula)
}
