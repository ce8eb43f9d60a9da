package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"seouldream/backend/internal/dto"
	"seouldream/backend/internal/model"
	"seouldream/backend/internal/repository"
	pkgerrors "seouldream/backend/pkg/errors"
)

func setupTestMemberService() (MemberService, *repository.Repository) {
	repo := newMockRepository()
	svc := NewMemberService(repo, zap.NewNop())
	return svc, repo
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

// ── Create ──

func TestMemberService_Create_Success(t *testing.T) {
	svc, _ := setupTestMemberService()

	result, err := svc.Create(context.Background(), "admin-001", &dto.CreateMemberRequest{
		Name:     "김철수",
		JoinYear: intPtr(2024),
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Name != "김철수" {
		t.Errorf("期望 Name=김철수，实际=%s", result.Name)
	}
	if !result.IsActive {
		t.Error("新成员应默认启用")
	}
}

func TestMemberService_Create_CellNotFound(t *testing.T) {
	svc, _ := setupTestMemberService()

	_, err := svc.Create(context.Background(), "admin-001", &dto.CreateMemberRequest{
		Name:   "김철수",
		CellID: strPtr("no-such-cell"),
	})
	if !errors.Is(err, ErrCellNotFound) {
		t.Errorf("期望 ErrCellNotFound，实际: %v", err)
	}
}

// ── Update / 乐观锁 ──

func TestMemberService_Update_Success(t *testing.T) {
	svc, repo := setupTestMemberService()
	m := &model.Member{MemberID: "m1", Name: "김철수", IsActive: true}
	m.Version = 1
	repo.Member.(*mockMemberRepo).members["m1"] = m

	result, err := svc.Update(context.Background(), "m1", "admin-001", &dto.UpdateMemberRequest{
		Name:    strPtr("김영수"),
		Version: intPtr(1),
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.Name != "김영수" {
		t.Errorf("期望 Name=김영수，实际=%s", result.Name)
	}
	if m.Version != 2 {
		t.Errorf("版本号应递增到 2，实际=%d", m.Version)
	}
}

func TestMemberService_Update_OptimisticLockConflict(t *testing.T) {
	svc, repo := setupTestMemberService()
	m := &model.Member{MemberID: "m1", Name: "김철수", IsActive: true}
	m.Version = 3
	repo.Member.(*mockMemberRepo).members["m1"] = m

	_, err := svc.Update(context.Background(), "m1", "admin-001", &dto.UpdateMemberRequest{
		Name:    strPtr("김영수"),
		Version: intPtr(1), // 过期版本
	})
	if !errors.Is(err, pkgerrors.ErrOptimisticLock) {
		t.Errorf("期望 ErrOptimisticLock，实际: %v", err)
	}
}

func TestMemberService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestMemberService()

	_, err := svc.Update(context.Background(), "no-such", "admin-001", &dto.UpdateMemberRequest{
		Name: strPtr("김영수"),
	})
	if !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("期望 ErrMemberNotFound，实际: %v", err)
	}
}

// ── Deactivate ──

func TestMemberService_Update_Deactivate(t *testing.T) {
	svc, repo := setupTestMemberService()
	m := &model.Member{MemberID: "m1", Name: "김철수", IsActive: true}
	repo.Member.(*mockMemberRepo).members["m1"] = m

	result, err := svc.Update(context.Background(), "m1", "admin-001", &dto.UpdateMemberRequest{
		IsActive: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.IsActive {
		t.Error("成员应被停用")
	}
}

// ── List 分页 ──

func TestMemberService_List_FiltersByActive(t *testing.T) {
	svc, repo := setupTestMemberService()
	members := repo.Member.(*mockMemberRepo).members
	members["m1"] = &model.Member{MemberID: "m1", Name: "가", IsActive: true}
	members["m2"] = &model.Member{MemberID: "m2", Name: "나", IsActive: false}

	result, total, err := svc.List(context.Background(), &dto.ListMembersRequest{
		Active: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 1 || len(result) != 1 {
		t.Errorf("期望 1 名启用成员，实际 total=%d len=%d", total, len(result))
	}
}

// ── Delete ──

func TestMemberService_Delete_NotFound(t *testing.T) {
	svc, _ := setupTestMemberService()

	if err := svc.Delete(context.Background(), "no-such", "admin-001"); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("期望 ErrMemberNotFound，实际: %v", err)
	}
}
