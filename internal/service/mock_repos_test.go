package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"seouldream/backend/internal/model"
	"seouldream/backend/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Email
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

// ── Mock MemberRepository ──

type mockMemberRepo struct {
	members map[string]*model.Member
	nextID  int
}

func newMockMemberRepo() *mockMemberRepo {
	return &mockMemberRepo{members: make(map[string]*model.Member)}
}

func (m *mockMemberRepo) Create(_ context.Context, member *model.Member) error {
	if member.MemberID == "" {
		m.nextID++
		member.MemberID = fmt.Sprintf("member-%03d", m.nextID)
	}
	member.CreatedAt = time.Now()
	m.members[member.MemberID] = member
	return nil
}

func (m *mockMemberRepo) GetByID(_ context.Context, id string) (*model.Member, error) {
	if mem, ok := m.members[id]; ok {
		return mem, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMemberRepo) matches(member *model.Member, filter repository.MemberFilter) bool {
	if filter.CellID != "" && (member.CellID == nil || *member.CellID != filter.CellID) {
		return false
	}
	if filter.Active != nil && member.IsActive != *filter.Active {
		return false
	}
	return true
}

func (m *mockMemberRepo) List(_ context.Context, filter repository.MemberFilter, offset, limit int) ([]model.Member, int64, error) {
	all, _ := m.ListAll(context.Background(), filter)
	total := int64(len(all))
	if offset >= len(all) {
		return []model.Member{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockMemberRepo) ListAll(_ context.Context, filter repository.MemberFilter) ([]model.Member, error) {
	var result []model.Member
	for _, mem := range m.members {
		if m.matches(mem, filter) {
			result = append(result, *mem)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockMemberRepo) Update(_ context.Context, member *model.Member) error {
	m.members[member.MemberID] = member
	return nil
}

func (m *mockMemberRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.members, id)
	return nil
}

func (m *mockMemberRepo) CountByCell(_ context.Context, cellID string) (int64, error) {
	var count int64
	for _, mem := range m.members {
		if mem.CellID != nil && *mem.CellID == cellID {
			count++
		}
	}
	return count, nil
}

// ── Mock CellRepository ──

type mockCellRepo struct {
	cells map[string]*model.Cell
}

func newMockCellRepo() *mockCellRepo {
	return &mockCellRepo{cells: make(map[string]*model.Cell)}
}

func (m *mockCellRepo) Create(_ context.Context, cell *model.Cell) error {
	if cell.CellID == "" {
		cell.CellID = "cell-" + cell.Name
	}
	m.cells[cell.CellID] = cell
	return nil
}

func (m *mockCellRepo) GetByID(_ context.Context, id string) (*model.Cell, error) {
	if c, ok := m.cells[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCellRepo) List(_ context.Context) ([]model.Cell, error) {
	var result []model.Cell
	for _, c := range m.cells {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockCellRepo) Update(_ context.Context, cell *model.Cell) error {
	m.cells[cell.CellID] = cell
	return nil
}

func (m *mockCellRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.cells, id)
	return nil
}

// ── Mock SemesterRepository ──

type mockSemesterRepo struct {
	semesters map[string]*model.Semester
}

func newMockSemesterRepo() *mockSemesterRepo {
	return &mockSemesterRepo{semesters: make(map[string]*model.Semester)}
}

func (m *mockSemesterRepo) Create(_ context.Context, semester *model.Semester) error {
	if semester.SemesterID == "" {
		semester.SemesterID = "sem-" + semester.Name
	}
	m.semesters[semester.SemesterID] = semester
	return nil
}

func (m *mockSemesterRepo) GetByID(_ context.Context, id string) (*model.Semester, error) {
	if s, ok := m.semesters[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) GetCurrent(_ context.Context) (*model.Semester, error) {
	for _, s := range m.semesters {
		if s.IsActive {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) List(_ context.Context, activeOnly bool) ([]model.Semester, error) {
	var result []model.Semester
	for _, s := range m.semesters {
		if activeOnly && s.Status != "active" {
			continue
		}
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartDate.After(result[j].StartDate) })
	return result, nil
}

func (m *mockSemesterRepo) Update(_ context.Context, semester *model.Semester) error {
	m.semesters[semester.SemesterID] = semester
	return nil
}

func (m *mockSemesterRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.semesters, id)
	return nil
}

func (m *mockSemesterRepo) ClearActive(_ context.Context) error {
	for _, s := range m.semesters {
		s.IsActive = false
	}
	return nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records map[string]*model.AttendanceRecord
	members *mockMemberRepo // 按小组过滤时联查成员
	nextID  int
}

func newMockAttendanceRepo(members *mockMemberRepo) *mockAttendanceRepo {
	return &mockAttendanceRepo{
		records: make(map[string]*model.AttendanceRecord),
		members: members,
	}
}

// memberInCell 成员当前是否属于指定小组
func (m *mockAttendanceRepo) memberInCell(memberID, cellID string) bool {
	mem, ok := m.members.members[memberID]
	return ok && mem.CellID != nil && *mem.CellID == cellID
}

func (m *mockAttendanceRepo) Upsert(_ context.Context, record *model.AttendanceRecord) error {
	// 模拟 (member_id, attendance_date) 唯一键覆盖
	for _, r := range m.records {
		if r.MemberID == record.MemberID && r.AttendanceDate.Equal(record.AttendanceDate) {
			r.Status = record.Status
			r.Memo = record.Memo
			r.UpdatedBy = record.UpdatedBy
			record.AttendanceID = r.AttendanceID
			return nil
		}
	}
	m.nextID++
	record.AttendanceID = fmt.Sprintf("att-%03d", m.nextID)
	m.records[record.AttendanceID] = record
	return nil
}

func (m *mockAttendanceRepo) GetByID(_ context.Context, id string) (*model.AttendanceRecord, error) {
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) List(_ context.Context, filter repository.AttendanceFilter) ([]model.AttendanceRecord, error) {
	var result []model.AttendanceRecord
	for _, r := range m.records {
		if r.AttendanceDate.Before(filter.StartDate) || r.AttendanceDate.After(filter.EndDate) {
			continue
		}
		if filter.MemberID != "" && r.MemberID != filter.MemberID {
			continue
		}
		if filter.CellID != "" && !m.memberInCell(r.MemberID, filter.CellID) {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].AttendanceDate.Before(result[j].AttendanceDate)
	})
	return result, nil
}

func (m *mockAttendanceRepo) Update(_ context.Context, record *model.AttendanceRecord) error {
	m.records[record.AttendanceID] = record
	return nil
}

func (m *mockAttendanceRepo) Delete(_ context.Context, id string) error {
	delete(m.records, id)
	return nil
}

// ── Mock PrayerRepository ──

type mockPrayerRepo struct {
	prayers map[string]*model.PrayerRequest
	members *mockMemberRepo
	nextID  int
}

func newMockPrayerRepo(members *mockMemberRepo) *mockPrayerRepo {
	return &mockPrayerRepo{
		prayers: make(map[string]*model.PrayerRequest),
		members: members,
	}
}

func (m *mockPrayerRepo) Create(_ context.Context, prayer *model.PrayerRequest) error {
	m.nextID++
	prayer.PrayerRequestID = fmt.Sprintf("prayer-%03d", m.nextID)
	prayer.CreatedAt = time.Now()
	m.prayers[prayer.PrayerRequestID] = prayer
	return nil
}

func (m *mockPrayerRepo) GetByID(_ context.Context, id string) (*model.PrayerRequest, error) {
	if p, ok := m.prayers[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPrayerRepo) List(_ context.Context, filter repository.PrayerFilter, offset, limit int) ([]model.PrayerRequest, int64, error) {
	var all []model.PrayerRequest
	for _, p := range m.prayers {
		if filter.MemberID != "" && p.MemberID != filter.MemberID {
			continue
		}
		if filter.CellID != "" {
			mem, ok := m.members.members[p.MemberID]
			if !ok || mem.CellID == nil || *mem.CellID != filter.CellID {
				continue
			}
		}
		if filter.Answered != nil && p.IsAnswered != *filter.Answered {
			continue
		}
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	if offset >= len(all) {
		return []model.PrayerRequest{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockPrayerRepo) Update(_ context.Context, prayer *model.PrayerRequest) error {
	m.prayers[prayer.PrayerRequestID] = prayer
	return nil
}

func (m *mockPrayerRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.prayers, id)
	return nil
}

func (m *mockPrayerRepo) CountByAnswered(_ context.Context) (int64, int64, error) {
	var total, answered int64
	for _, p := range m.prayers {
		total++
		if p.IsAnswered {
			answered++
		}
	}
	return total, answered, nil
}

// ── 聚合构建 ──

func newMockRepository() *repository.Repository {
	members := newMockMemberRepo()
	return &repository.Repository{
		User:       newMockUserRepo(),
		Member:     members,
		Cell:       newMockCellRepo(),
		Semester:   newMockSemesterRepo(),
		Attendance: newMockAttendanceRepo(members),
		Prayer:     newMockPrayerRepo(members),
	}
}
