package cli

import (
	"context"
	"fmt"

	"recipefinder/internal/client/export"
)

// Export writes the current result list to an .xlsx workbook. With no search
// done yet, the full catalog snapshot is exported instead.
func (a *App) Export(ctx context.Context, path string) error {
	recipes := a.results
	if len(recipes) == 0 {
		recipes = a.catalog.Snapshot().Recipes
	}
	if len(recipes) == 0 {
		a.notifyError("Nothing to export yet")
		return nil
	}

	if err := export.WriteXLSX(path, recipes); err != nil {
		a.notifyError("Export failed")
		return err
	}
	fmt.Fprintf(a.out, "Exported %d recipes to %s\n", len(recipes), path)
	return nil
}
