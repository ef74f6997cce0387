// Package export writes recipe lists to spreadsheet files.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"recipefinder/internal/client/models"
)

const sheetName = "Recipes"

var headers = []string{
	"Name", "Category", "Difficulty",
	"Prep (min)", "Cook (min)", "Total (min)",
	"Rating", "Reviews", "Tags",
}

// WriteXLSX writes one workbook with a header row and one row per recipe.
func WriteXLSX(path string, recipes []models.Recipe) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for row, r := range recipes {
		category, difficulty := r.Category, r.Difficulty
		if category == "" {
			category = "Uncategorized"
		}
		if difficulty == "" {
			difficulty = "Medium"
		}
		values := []any{
			r.Name, category, difficulty,
			r.PrepTime, r.CookTime, r.TotalTime(),
			r.AvgRating, r.ReviewCount, strings.Join(r.Tags, ", "),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
