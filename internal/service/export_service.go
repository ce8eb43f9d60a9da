package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"seouldream/backend/internal/dto"
	"seouldream/backend/internal/model"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoData       = errors.New("所选区间内没有可导出的数据")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// 单元格状态对应的显示符号
const (
	glyphPresent  = "○"
	glyphAbsent   = "✕"
	glyphUnmarked = "-"
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出复用统计模块的矩阵结果，两边口径天然一致
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - Excel 格式：行 = 成员，列 = 主日日期，末尾附出席次数与出席率列
type ExportService interface {
	// ExportAttendanceMatrix 导出考勤矩阵为 Excel
	ExportAttendanceMatrix(ctx context.Context, req *dto.AttendanceMatrixRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	stats  StatisticsService
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(stats StatisticsService, logger *zap.Logger) ExportService {
	return &exportService{stats: stats, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportAttendanceMatrix — 导出考勤矩阵为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 标题行：区间起止日期
//   - 表头：成员 | 各主日日期 | 出席次数 | 出席率
//   - 单元格：○（出席）/ ✕（缺席）/ -（未标记）
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportAttendanceMatrix(ctx context.Context, req *dto.AttendanceMatrixRequest) (*bytes.Buffer, string, error) {
	matrix, err := s.stats.AttendanceMatrix(ctx, req)
	if err != nil {
		return nil, "", err
	}
	if matrix.Range == nil || len(matrix.Rows) == 0 {
		return nil, "", ErrExportNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "출석현황"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("创建 Sheet 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	lastCol := 3 + len(matrix.Sundays) // 成员列 + 主日列 + 出席次数 + 出席率

	// 列宽
	f.SetColWidth(sheetName, "A", "A", 16)
	for i := range matrix.Sundays {
		col := colName(1 + i)
		f.SetColWidth(sheetName, col, col, 12)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1",
		fmt.Sprintf("주일출석 %s ~ %s", matrix.Range.StartDate, matrix.Range.EndDate))
	f.MergeCell(sheetName, "A1", cell(colName(lastCol-1), 1))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	row := 2
	f.SetCellValue(sheetName, cell("A", row), "성명")
	for i, d := range matrix.Sundays {
		f.SetCellValue(sheetName, cell(colName(1+i), row), d)
	}
	f.SetCellValue(sheetName, cell(colName(1+len(matrix.Sundays)), row), "출석")
	f.SetCellValue(sheetName, cell(colName(2+len(matrix.Sundays)), row), "출석률")

	// 数据行
	row = 3
	for _, r := range matrix.Rows {
		f.SetCellValue(sheetName, cell("A", row), r.MemberName)
		for i, status := range r.Cells {
			f.SetCellValue(sheetName, cell(colName(1+i), row), statusGlyph(status))
		}
		f.SetCellValue(sheetName, cell(colName(1+len(matrix.Sundays)), row), r.PresentCount)
		f.SetCellValue(sheetName, cell(colName(2+len(matrix.Sundays)), row),
			fmt.Sprintf("%d%%", r.AttendanceRate))
		row++
	}

	// 汇总行
	f.SetCellValue(sheetName, cell("A", row),
		fmt.Sprintf("출석 %d / 결석 %d / 미확인 %d",
			matrix.Summary.Present, matrix.Summary.Absent, matrix.Summary.Unchecked))

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("출석현황_%s_%s.xlsx", matrix.Range.StartDate, matrix.Range.EndDate)
	return buf, filename, nil
}

// ── 辅助函数 ──

func statusGlyph(status string) string {
	switch status {
	case model.AttendanceStatusPresent:
		return glyphPresent
	case model.AttendanceStatusAbsent:
		return glyphAbsent
	default:
		return glyphUnmarked
	}
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
