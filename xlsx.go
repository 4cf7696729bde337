// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package gootl

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Interpolation results of one site
type SiteSol struct {
	Site *BLQSite
	Sols [3]*AdmSol // Indexed by Comp
}

// Column titles of the harmonics sheets
var XLSXHeader = []interface{}{"#", "Doodson", "freq(cpd)", "amp(m)", "phase(deg)"}

// Sheet name of a site and component ("ONSA_R")
func SheetName(site string, c Comp) string {
	return fmt.Sprintf("%s_%s", site, c)
}

// Write the interpolated harmonics as an Excel workbook, one sheet per site and component
func WriteXLSX(w io.Writer, res []SiteSol, comps []Comp) error {
	if len(res) == 0 || len(comps) == 0 {
		return fmt.Errorf("nothing to write")
	}

	f := excelize.NewFile()
	defer f.Close()
	first := -1
	for _, r := range res {
		for _, c := range comps {
			sol := r.Sols[c]
			if sol == nil {
				continue
			}
			sheet := SheetName(r.Site.Name, c)
			idx, err := f.NewSheet(sheet)
			if err != nil {
				return fmt.Errorf("sheet %s: %w", sheet, err)
			}
			if first < 0 {
				first = idx
			}
			if err := f.SetSheetRow(sheet, "A1", &XLSXHeader); err != nil {
				return fmt.Errorf("sheet %s: %w", sheet, err)
			}
			for j := 0; j <= sol.NOut; j++ {
				cell, err := excelize.CoordinatesToCellName(1, j+2)
				if err != nil {
					return err
				}
				row := []interface{}{j, sol.Doodson[j].Number(), sol.Freq[j], sol.Amp[j], sol.Phase[j]}
				if err := f.SetSheetRow(sheet, cell, &row); err != nil {
					return fmt.Errorf("sheet %s: %w", sheet, err)
				}
			}
			PrintD(3, "xlsx: sheet %s, %d rows\n", sheet, sol.Len())
		}
	}
	if first < 0 {
		return fmt.Errorf("nothing to write")
	}

	// The default sheet of a new workbook is not used
	f.SetActiveSheet(first)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.Write(w)
}
