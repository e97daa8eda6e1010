package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// LookupDefinedName returns what a defined name refers to as seen from
// sheetName. Sheet-scoped names shadow workbook-scoped ones.
func LookupDefinedName(f *excelize.File, sheetName, name string) (string, bool) {
	var workbookRef string
	found := false

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, name) {
			continue
		}
		if dn.Scope != "" && strings.EqualFold(dn.Scope, sheetName) {
			return dn.RefersTo, true
		}
		if dn.Scope == "" || strings.EqualFold(dn.Scope, "Workbook") {
			workbookRef, found = dn.RefersTo, true
		}
	}

	return workbookRef, found
}
