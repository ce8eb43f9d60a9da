package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"seouldream/backend/internal/dto"
	"seouldream/backend/internal/model"
	"seouldream/backend/internal/repository"
)

// ── 测试辅助 ──

func setupTestStatisticsService() (StatisticsService, *repository.Repository) {
	repo := newMockRepository()
	svc := NewStatisticsService(repo, zap.NewNop())
	return svc, repo
}

func seedMember(repo *repository.Repository, id, name string, createdAt time.Time) {
	m := &model.Member{MemberID: id, Name: name, IsActive: true}
	m.CreatedAt = createdAt
	repo.Member.(*mockMemberRepo).members[id] = m
}

func seedSemester(repo *repository.Repository, id string, start, end time.Time) {
	repo.Semester.(*mockSemesterRepo).semesters[id] = &model.Semester{
		SemesterID: id,
		Name:       "테스트학기",
		StartDate:  start,
		EndDate:    end,
		Status:     "active",
	}
}

func seedRecord(repo *repository.Repository, memberID string, date time.Time, status string) {
	_ = repo.Attendance.Upsert(context.Background(), &model.AttendanceRecord{
		MemberID:       memberID,
		AttendanceDate: date,
		Status:         status,
	})
}

func monthRequest(year, month int) *dto.AttendanceMatrixRequest {
	return &dto.AttendanceMatrixRequest{
		PeriodFilter: dto.PeriodFilter{
			FilterType: FilterTypeUnit,
			UnitType:   UnitTypeMonth,
			Year:       year,
			Month:      month,
		},
	}
}

// ── AttendanceMatrix ──

func TestStatisticsService_Matrix_Basic(t *testing.T) {
	svc, repo := setupTestStatisticsService()

	// 2024 年 3 月：主日 3,10,17,24,31
	seedSemester(repo, "s1", mkDate(2024, 3, 1), mkDate(2024, 3, 31))
	seedMember(repo, "m1", "김철수", mkDate(2024, 1, 1))
	seedRecord(repo, "m1", mkDate(2024, 3, 3), model.AttendanceStatusPresent)
	seedRecord(repo, "m1", mkDate(2024, 3, 10), model.AttendanceStatusAbsent)

	matrix, err := svc.AttendanceMatrix(context.Background(), monthRequest(2024, 3))
	if err != nil {
		t.Fatalf("AttendanceMatrix 应成功: %v", err)
	}

	if matrix.Range == nil {
		t.Fatal("Range 不应为 nil")
	}
	if matrix.Range.StartDate != "2024-03-01" || matrix.Range.EndDate != "2024-03-31" {
		t.Errorf("区间错误: %+v", matrix.Range)
	}
	if len(matrix.Sundays) != 5 {
		t.Fatalf("期望 5 个主日，实际=%d", len(matrix.Sundays))
	}
	if len(matrix.Rows) != 1 {
		t.Fatalf("期望 1 行，实际=%d", len(matrix.Rows))
	}

	row := matrix.Rows[0]
	want := []string{"PRESENT", "ABSENT", "UNMARKED", "UNMARKED", "UNMARKED"}
	for i, status := range want {
		if row.Cells[i] != status {
			t.Errorf("第 %d 列期望 %s，实际 %s", i, status, row.Cells[i])
		}
	}
	if row.PresentCount != 1 {
		t.Errorf("期望 PresentCount=1，实际=%d", row.PresentCount)
	}
	// 1/5 = 20%
	if row.AttendanceRate != 20 {
		t.Errorf("期望 AttendanceRate=20，实际=%d", row.AttendanceRate)
	}
}

func TestStatisticsService_Matrix_IncompleteFilterReturnsEmpty(t *testing.T) {
	svc, _ := setupTestStatisticsService()

	// 未选年份：空矩阵而非错误
	req := &dto.AttendanceMatrixRequest{
		PeriodFilter: dto.PeriodFilter{FilterType: FilterTypeUnit, UnitType: UnitTypeYear},
	}
	matrix, err := svc.AttendanceMatrix(context.Background(), req)
	if err != nil {
		t.Fatalf("条件不完整不应报错: %v", err)
	}
	if matrix.Range != nil {
		t.Error("条件不完整时 Range 应为 nil")
	}
	if len(matrix.Rows) != 0 || len(matrix.Sundays) != 0 {
		t.Errorf("应为空矩阵，实际 rows=%d sundays=%d", len(matrix.Rows), len(matrix.Sundays))
	}
}

func TestStatisticsService_Matrix_Summary(t *testing.T) {
	svc, repo := setupTestStatisticsService()

	seedSemester(repo, "s1", mkDate(2024, 3, 1), mkDate(2024, 3, 31))
	seedMember(repo, "m1", "김철수", mkDate(2024, 1, 1))  // 5 个应出席主日
	seedMember(repo, "m2", "이영희", mkDate(2024, 3, 15)) // 17,24,31 → 3 个
	seedRecord(repo, "m1", mkDate(2024, 3, 3), model.AttendanceStatusPresent)
	seedRecord(repo, "m1", mkDate(2024, 3, 10), model.AttendanceStatusPresent)
	seedRecord(repo, "m2", mkDate(2024, 3, 17), model.AttendanceStatusAbsent)

	matrix, err := svc.AttendanceMatrix(context.Background(), monthRequest(2024, 3))
	if err != nil {
		t.Fatalf("AttendanceMatrix 应成功: %v", err)
	}

	sum := matrix.Summary
	if sum.Present != 2 || sum.Absent != 1 {
		t.Errorf("期望 present=2 absent=1，实际 present=%d absent=%d", sum.Present, sum.Absent)
	}
	// 应出席合计 5+3=8，已记录 3 条 → 未签到 5
	if sum.Unchecked != 5 {
		t.Errorf("期望 Unchecked=5，实际=%d", sum.Unchecked)
	}
	// 2/(2+1) ≈ 67%
	if sum.Rate != 67 {
		t.Errorf("期望 Rate=67，实际=%d", sum.Rate)
	}
}

func TestStatisticsService_Matrix_ZeroColumnsZeroRate(t *testing.T) {
	svc, repo := setupTestStatisticsService()

	// 假期月份：无重叠学期且无主日记录 → 各项为 0，不出现除零
	seedSemester(repo, "s1", mkDate(2024, 3, 1), mkDate(2024, 3, 31))
	seedMember(repo, "m1", "김철수", mkDate(2024, 1, 1))

	// 2024-08 没有任何记录
	matrix, err := svc.AttendanceMatrix(context.Background(), monthRequest(2024, 8))
	if err != nil {
		t.Fatalf("AttendanceMatrix 应成功: %v", err)
	}

	if matrix.Summary.Rate != 0 {
		t.Errorf("无记录时 Rate 应为 0，实际=%d", matrix.Summary.Rate)
	}
	for _, row := range matrix.Rows {
		if row.AttendanceRate != 0 {
			t.Errorf("零列时行出席率应为 0，实际=%d", row.AttendanceRate)
		}
	}
}

func TestStatisticsService_Matrix_CellFilter(t *testing.T) {
	svc, repo := setupTestStatisticsService()

	seedSemester(repo, "s1", mkDate(2024, 3, 1), mkDate(2024, 3, 31))

	cellA, cellB := "cell-a", "cell-b"
	members := repo.Member.(*mockMemberRepo).members
	m1 := &model.Member{MemberID: "m1", Name: "김철수", IsActive: true, CellID: &cellA}
	m1.CreatedAt = mkDate(2024, 1, 1)
	m2 := &model.Member{MemberID: "m2", Name: "이영희", IsActive: true, CellID: &cellB}
	m2.CreatedAt = mkDate(2024, 1, 1)
	members["m1"] = m1
	members["m2"] = m2

	seedRecord(repo, "m1", mkDate(2024, 3, 3), model.AttendanceStatusPresent)
	seedRecord(repo, "m2", mkDate(2024, 3, 3), model.AttendanceStatusPresent)
	seedRecord(repo, "m2", mkDate(2024, 3, 10), model.AttendanceStatusAbsent)

	req := monthRequest(2024, 3)
	req.CellID = cellB

	matrix, err := svc.AttendanceMatrix(context.Background(), req)
	if err != nil {
		t.Fatalf("AttendanceMatrix 应成功: %v", err)
	}

	// 行与汇总都只统计所选小组
	if len(matrix.Rows) != 1 || matrix.Rows[0].MemberID != "m2" {
		t.Fatalf("期望只有 m2 一行，实际 rows=%+v", matrix.Rows)
	}
	if matrix.Summary.Present != 1 || matrix.Summary.Absent != 1 {
		t.Errorf("汇总应只含 cell-b 的记录，实际 present=%d absent=%d",
			matrix.Summary.Present, matrix.Summary.Absent)
	}
}

// ── Navigation ──

func TestStatisticsService_Matrix_MonthNavigation(t *testing.T) {
	svc, repo := setupTestStatisticsService()

	// 学期 3 月 ~ 6 月
	seedSemester(repo, "s1", mkDate(2026, 3, 1), mkDate(2026, 6, 30))

	// 3 月视图：上一月（2 月）不可用，下一月（4 月）可用
	matrix, err := svc.AttendanceMatrix(context.Background(), monthRequest(2026, 3))
	if err != nil {
		t.Fatalf("AttendanceMatrix 应成功: %v", err)
	}
	if matrix.Navigation == nil {
		t.Fatal("月视图应返回 Navigation")
	}
	if matrix.Navigation.PrevAvailable {
		t.Error("2 月不在学期内，PrevAvailable 应为 false")
	}
	if !matrix.Navigation.NextAvailable {
		t.Error("4 月在学期内，NextAvailable 应为 true")
	}

	// 年视图不返回 Navigation
	yearReq := &dto.AttendanceMatrixRequest{
		PeriodFilter: dto.PeriodFilter{FilterType: FilterTypeUnit, UnitType: UnitTypeYear, Year: 2026},
	}
	matrix, err = svc.AttendanceMatrix(context.Background(), yearReq)
	if err != nil {
		t.Fatalf("AttendanceMatrix 应成功: %v", err)
	}
	if matrix.Navigation != nil {
		t.Error("年视图不应返回 Navigation")
	}
}

// ── AttendanceSummary ──

func TestStatisticsService_Summary_MatchesMatrix(t *testing.T) {
	svc, repo := setupTestStatisticsService()

	seedSemester(repo, "s1", mkDate(2024, 3, 1), mkDate(2024, 3, 31))
	seedMember(repo, "m1", "김철수", mkDate(2024, 1, 1))
	seedRecord(repo, "m1", mkDate(2024, 3, 3), model.AttendanceStatusPresent)

	summary, err := svc.AttendanceSummary(context.Background(), monthRequest(2024, 3))
	if err != nil {
		t.Fatalf("AttendanceSummary 应成功: %v", err)
	}
	matrix, _ := svc.AttendanceMatrix(context.Background(), monthRequest(2024, 3))

	if *summary != matrix.Summary {
		t.Errorf("Summary 与 Matrix.Summary 应一致: %+v vs %+v", *summary, matrix.Summary)
	}
}
