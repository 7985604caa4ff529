package inspect

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// validateXlsx opens the workbook and counts rows per sheet
func validateXlsx(content []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return "", fmt.Errorf("no sheets found in Excel file")
	}

	parts := make([]string, 0, len(sheetList))
	for _, sheetName := range sheetList {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return "", fmt.Errorf("unable to read sheet %s: %w", sheetName, err)
		}
		parts = append(parts, fmt.Sprintf("%s: %d rows", sheetName, len(rows)))
	}
	return strings.Join(parts, ", "), nil
}
