package parser

import "testing"

func TestRangeArgument(t *testing.T) {
	tests := []struct {
		formula string
		arg     string
		ok      bool
	}{
		{"=GetSciper(A1:B2)", "A1:B2", true},
		{"GetSciper(A1:C5)", "A1:C5", true},
		{"=GetSciper(Sheet2!A1:A3)", "Sheet2!A1:A3", true},
		{"=GetSciper(A1:B2) + LEN(C1)", "A1:B2", true},
		{"=GetSciper()", "", true},
		{"=)GetSciper(A1", "", true},
		{"=GetSciper", "", false},
		{"=GetSciper(A1:B2", "", false},
		{"=GetSciper A1:B2)", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		arg, ok := RangeArgument(tt.formula)
		if arg != tt.arg || ok != tt.ok {
			t.Errorf("RangeArgument(%q) = (%q, %v), expected (%q, %v)",
				tt.formula, arg, ok, tt.arg, tt.ok)
		}
	}
}

func TestHyperlinkFormulaURL(t *testing.T) {
	tests := []struct {
		formula string
		url     string
		ok      bool
	}{
		{`HYPERLINK("https://people.epfl.ch/?id=123456","Alice")`, "https://people.epfl.ch/?id=123456", true},
		{`=hyperlink("https://example.com/?s=1")`, "https://example.com/?s=1", true},
		{`=IFERROR(HYPERLINK("https://example.com/?s=2","x"),"")`, "https://example.com/?s=2", true},
		{`=HYPERLINK(A1,"x")`, "", false},
		{`=SUM(A1:A3)`, "", false},
		{``, "", false},
	}

	for _, tt := range tests {
		url, ok := HyperlinkFormulaURL(tt.formula)
		if url != tt.url || ok != tt.ok {
			t.Errorf("HyperlinkFormulaURL(%q) = (%q, %v), expected (%q, %v)",
				tt.formula, url, ok, tt.url, tt.ok)
		}
	}
}

func TestIsRangeOperand(t *testing.T) {
	tests := []struct {
		ref      string
		expected bool
	}{
		{"A1", true},
		{"A1:B3", true},
		{"$A$1:$B$3", true},
		{"Sheet1!A1:B2", true},
		{"Scipers", true},
		{"", false},
		{"A1,B2", false},
		{"A1+B2", false},
		{`"A1"`, false},
		{"42", false},
	}

	for _, tt := range tests {
		if result := IsRangeOperand(tt.ref); result != tt.expected {
			t.Errorf("IsRangeOperand(%q) = %v, expected %v", tt.ref, result, tt.expected)
		}
	}
}
