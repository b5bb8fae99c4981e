// Package export writes ranking tables to spreadsheets.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/udisondev/buildcalc/internal/data"
	"github.com/udisondev/buildcalc/internal/game/scoring"
	"github.com/udisondev/buildcalc/internal/model"
)

// RankingSheet is the sheet name ranking exports are written to.
const RankingSheet = "Ranking"

var rankingHeaders = []string{"#", "Armor", "Rarity", "Score", "Slots", "Skills", "Defense", "Fire", "Water", "Thunder", "Ice", "Dragon"}

func colName(n int) string {
	// 1-indexed: 1 -> A, 26 -> Z, 27 -> AA
	if n <= 0 {
		return ""
	}
	out := ""
	for n > 0 {
		n--
		out = string(rune('A'+(n%26))) + out
		n /= 26
	}
	return out
}

func slotsString(slots []int) string {
	parts := make([]string, len(slots))
	for i, s := range slots {
		parts[i] = fmt.Sprint(s)
	}
	return strings.Join(parts, "-")
}

// ArmorRankingXLSX writes ranked armor to <dir>/ranking_<type>_<rank>_<timestamp>.xlsx
// and returns the file path.
func ArmorRankingXLSX(dir string, t data.ArmorType, r data.Rank, targets []string, ranked []scoring.Ranked) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", RankingSheet); err != nil {
		return "", fmt.Errorf("renaming sheet: %w", err)
	}
	sheet := RankingSheet

	f.SetCellValue(sheet, "A1", fmt.Sprintf("%s armor, %s", t, r))
	f.SetCellValue(sheet, "A2", "Targets: "+strings.Join(targets, ", "))

	const headerRow = 4
	for i, h := range rankingHeaders {
		f.SetCellValue(sheet, fmt.Sprintf("%s%d", colName(i+1), headerRow), h)
	}

	for i, item := range ranked {
		row := headerRow + 1 + i
		a := item.Armor
		values := []any{
			i + 1, a.Name, a.Rarity, item.Score, slotsString(a.Slots), model.SkillListString(a.Skills),
			a.Stats.Defense, a.Stats.FireRes, a.Stats.WaterRes, a.Stats.ThunderRes, a.Stats.IceRes, a.Stats.DragonRes,
		}
		for j, v := range values {
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", colName(j+1), row), v)
		}
	}

	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "F", "F", 40)
	_ = f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      headerRow,
		TopLeftCell: fmt.Sprintf("A%d", headerRow+1),
		ActivePane:  "bottomLeft",
	})

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir %s: %w", dir, err)
	}
	name := fmt.Sprintf("ranking_%s_%s_%s.xlsx", strings.ToLower(string(t)), string(r), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving %s: %w", path, err)
	}
	return path, nil
}
