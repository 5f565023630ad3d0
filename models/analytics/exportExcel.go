package analytics

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"bitbucket.org/gradways/crm_backend/utils"
	"github.com/xuri/excelize/v2"
)

// ExportLeaderboardExcel renders a ranked board to an xlsx workbook, uploads
// it to cloud storage, and returns the object's access URL.
func ExportLeaderboardExcel(ctx context.Context, view *LeaderboardView, month, year int) (string, error) {
	f := excelize.NewFile()
	sheet := "Sheet1"
	if _, err := f.NewSheet(sheet); err != nil {
		return "", err
	}

	f.SetCellValue(sheet, "A1", "Rank")
	f.SetCellValue(sheet, "B1", "Counsellor")
	f.SetCellValue(sheet, "C1", "Enrollments")
	f.SetCellValue(sheet, "D1", "Revenue")
	f.SetCellValue(sheet, "E1", "Target")
	f.SetCellValue(sheet, "F1", "Achieved")

	for i, row := range view.Leaderboard {
		n := fmt.Sprint(i + 2)
		f.SetCellValue(sheet, "A"+n, row.Rank)
		f.SetCellValue(sheet, "B"+n, row.CounsellorName)
		f.SetCellValue(sheet, "C"+n, row.Enrollments)
		f.SetCellValue(sheet, "D"+n, row.Revenue)
		f.SetCellValue(sheet, "E"+n, row.Target)
		f.SetCellValue(sheet, "F"+n, row.AchievedTarget)
	}

	summaryRow := fmt.Sprint(len(view.Leaderboard) + 3)
	f.SetCellValue(sheet, "B"+summaryRow, "Total")
	f.SetCellValue(sheet, "C"+summaryRow, view.Summary.TotalEnrollments)
	f.SetCellValue(sheet, "D"+summaryRow, view.Summary.TotalRevenue)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("exports/leaderboard-%04d-%02d-%d.xlsx", year, month, time.Now().UnixNano())
	if err := utils.UploadFileToGCS(ctx, objectName, &buf); err != nil {
		return "", err
	}
	return utils.BuildObjectAccessURL(objectName), nil
}
