// Package export turns an owner's record list into a spreadsheet.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/avdeev-m/finance-tracker/internal/model"
)

const dateFormat = "2006-01-02"

// Workbook builds an xlsx file with one sheet holding every transaction of
// the given kind, one row per record under a header row.
func Workbook(kind model.Kind, transactions []model.Transaction) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := "Income"
	headers := []string{"Source", "Amount", "Date"}
	if kind == model.KindExpense {
		sheet = "Expenses"
		headers = []string{"Category", "Amount", "Date"}
	}

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err = f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err = f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for i, transaction := range transactions {
		row := i + 2
		label := transaction.Source
		if kind == model.KindExpense {
			label = transaction.Category
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), transaction.Amount)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), transaction.Date.Format(dateFormat))
	}
	return f, nil
}
