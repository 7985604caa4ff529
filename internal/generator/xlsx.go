// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package generator

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxSheet       = "Data"
	xlsxCellBytes   = 120 // approximate raw bytes per cell including markup
	xlsxColDivisor  = 100000
	xlsxMinCols     = 5
	xlsxMaxCols     = 15
	xlsxFillerItems = 4 // "XLSX_Data_<n>_<token>_" items per cell
	xlsxAttempts    = 12
	xlsxSafety      = 0.95
)

// CreateXlsx returns an XLSX workbook normalized to the target size
func (g *Generator) CreateXlsx() ([]byte, error) {
	return g.Create(FormatXLSX)
}

// encodeXlsx fills the Data sheet with rows of unique string cells
func (g *Generator) encodeXlsx(target int64) ([]byte, error) {
	cols := int(clamp(target/xlsxColDivisor, xlsxMinCols, xlsxMaxCols))
	plan := newFillPlan(target, int64(cols*xlsxCellBytes), deflateShrink, xlsxAttempts, xlsxSafety)

	next := func(row int) []interface{} {
		cells := make([]interface{}, cols)
		for col := 0; col < cols; col++ {
			var sb strings.Builder
			for k := 0; k < xlsxFillerItems; k++ {
				fmt.Fprintf(&sb, "XLSX_Data_%d_%s_", row*cols*xlsxFillerItems+col*xlsxFillerItems+k, token(8))
			}
			fmt.Fprintf(&sb, "R%d_C%d", row, col)
			cells[col] = sb.String()
		}
		return cells
	}

	data, kept, err := fitUnits(target, plan, next, encodeWorkbook)
	if err != nil {
		return nil, err
	}
	g.log.Debugf("xlsx: %d rows x %d cols, %d bytes encoded", kept, cols, len(data))
	return data, nil
}

func encodeWorkbook(rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(xlsxSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to open stream writer: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush rows: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write XLSX: %w", err)
	}
	return buf.Bytes(), nil
}
