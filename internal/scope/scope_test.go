package scope_test

import (
	"path/filepath"
	"testing"

	"worktrack-backend/config"
	"worktrack-backend/internal/model"
	"worktrack-backend/internal/scope"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db *gorm.DB

	admin, ceo, managerA, managerB *model.User
	karyA1, karyA2, karyB1         *model.User

	// Target: t1 dibuat managerA untuk karyA1, t2 dibuat admin untuk
	// karyA2, t3 dibuat managerB untuk karyB1, t4 dibuat managerA
	// untuk karyB1 (lintas tim).
	t1, t2, t3, t4 *model.WorkTarget
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	config.Migrate(db)

	env := &testEnv{db: db}

	mkUser := func(name, role string, managerID *uint) *model.User {
		u := &model.User{Name: name, Email: name + "@test.local", Role: role, ManagerID: managerID, IsActive: true}
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("seed user %s: %v", name, err)
		}
		return u
	}

	env.admin = mkUser("admin", model.RoleAdmin, nil)
	env.ceo = mkUser("ceo", model.RoleCeo, nil)
	env.managerA = mkUser("managerA", model.RoleManager, nil)
	env.managerB = mkUser("managerB", model.RoleManager, nil)
	env.karyA1 = mkUser("karyA1", model.RoleKaryawan, &env.managerA.ID)
	env.karyA2 = mkUser("karyA2", model.RoleKaryawan, &env.managerA.ID)
	env.karyB1 = mkUser("karyB1", model.RoleKaryawan, &env.managerB.ID)

	mkTarget := func(managerID, assignedTo uint, title string) *model.WorkTarget {
		wt := &model.WorkTarget{ManagerID: managerID, AssignedTo: assignedTo, Title: title, Status: model.TargetStatusPending}
		if err := db.Create(wt).Error; err != nil {
			t.Fatalf("seed target %s: %v", title, err)
		}
		return wt
	}

	env.t1 = mkTarget(env.managerA.ID, env.karyA1.ID, "t1")
	env.t2 = mkTarget(env.admin.ID, env.karyA2.ID, "t2")
	env.t3 = mkTarget(env.managerB.ID, env.karyB1.ID, "t3")
	env.t4 = mkTarget(env.managerA.ID, env.karyB1.ID, "t4")

	return env
}

func (e *testEnv) visibleTargets(t *testing.T, viewer *model.User) map[string]bool {
	t.Helper()
	var list []model.WorkTarget
	err := e.db.Scopes(scope.Visible(scope.WorkTargets, viewer)).Find(&list).Error
	if err != nil {
		t.Fatalf("query targets: %v", err)
	}
	got := make(map[string]bool)
	for _, wt := range list {
		got[wt.Title] = true
	}
	return got
}

func TestKaryawanSeesOnlyOwnTargets(t *testing.T) {
	env := newTestEnv(t)

	got := env.visibleTargets(t, env.karyA1)
	if len(got) != 1 || !got["t1"] {
		t.Fatalf("karyA1 harus lihat tepat t1, dapat %v", got)
	}

	got = env.visibleTargets(t, env.karyB1)
	if len(got) != 2 || !got["t3"] || !got["t4"] {
		t.Fatalf("karyB1 harus lihat t3 dan t4, dapat %v", got)
	}
}

func TestManagerSeesAuthoredOrSubordinateTargets(t *testing.T) {
	env := newTestEnv(t)

	// t1: bawahan sendiri; t2: bawahan sendiri tapi dibuat admin (bukti
	// OR, bukan AND); t4: dibuat sendiri untuk bawahan manager lain.
	got := env.visibleTargets(t, env.managerA)
	want := []string{"t1", "t2", "t4"}
	if len(got) != len(want) {
		t.Fatalf("managerA harus lihat %v, dapat %v", want, got)
	}
	for _, title := range want {
		if !got[title] {
			t.Fatalf("managerA tidak lihat %s; dapat %v", title, got)
		}
	}

	got = env.visibleTargets(t, env.managerB)
	if len(got) != 2 || !got["t3"] || !got["t4"] {
		t.Fatalf("managerB harus lihat t3 dan t4, dapat %v", got)
	}
}

func TestPrivilegedRolesSeeEverything(t *testing.T) {
	env := newTestEnv(t)

	for _, viewer := range []*model.User{env.admin, env.ceo} {
		got := env.visibleTargets(t, viewer)
		if len(got) != 4 {
			t.Fatalf("%s harus lihat semua 4 target, dapat %v", viewer.Role, got)
		}
	}
}

func TestLeaveVisibility(t *testing.T) {
	env := newTestEnv(t)

	mkLeave := func(userID uint) *model.Leave {
		l := &model.Leave{UserID: userID, Type: model.LeaveTypeAnnual, Status: model.LeaveStatusPending}
		if err := env.db.Create(l).Error; err != nil {
			t.Fatalf("seed leave: %v", err)
		}
		return l
	}
	mkLeave(env.karyA1.ID)
	mkLeave(env.karyB1.ID)
	lMA := mkLeave(env.managerA.ID)

	count := func(viewer *model.User) int64 {
		var n int64
		if err := env.db.Model(&model.Leave{}).Scopes(scope.Visible(scope.Leaves, viewer)).Count(&n).Error; err != nil {
			t.Fatalf("count leaves: %v", err)
		}
		return n
	}

	// Karyawan: hanya miliknya, tidak ada visibilitas transitif.
	if n := count(env.karyA1); n != 1 {
		t.Fatalf("karyA1 harus lihat 1 pengajuan, dapat %d", n)
	}
	// Manager: pengajuan bawahan plus miliknya sendiri.
	if n := count(env.managerA); n != 2 {
		t.Fatalf("managerA harus lihat 2 pengajuan, dapat %d", n)
	}
	if n := count(env.admin); n != 3 {
		t.Fatalf("admin harus lihat 3 pengajuan, dapat %d", n)
	}

	// GetOne di luar scope diperlakukan NotFound oleh repository.
	var hidden model.Leave
	err := env.db.Scopes(scope.Visible(scope.Leaves, env.karyA1)).First(&hidden, "leaves.id = ?", lMA.ID).Error
	if err != gorm.ErrRecordNotFound {
		t.Fatalf("pengajuan milik manager harus tersembunyi dari karyawan, err = %v", err)
	}
}
