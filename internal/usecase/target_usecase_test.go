package usecase_test

import (
	"errors"
	"testing"
	"time"

	"worktrack-backend/internal/model"
	"worktrack-backend/internal/usecase"
)

func (e *testEnv) assignedTarget(t *testing.T, manager, assignee *model.User) *model.WorkTarget {
	t.Helper()
	target, err := e.targets.Create(manager, usecase.CreateTargetInput{
		Title:      "Target uji",
		AssignedTo: assignee.ID,
		Deadline:   "2026-12-31",
	})
	if err != nil {
		t.Fatalf("create target: %v", err)
	}
	return target
}

func TestCreateTargetAuthorization(t *testing.T) {
	env := newTestEnv(t)

	// Karyawan tidak boleh membuat target.
	_, err := env.targets.Create(env.karyawan, usecase.CreateTargetInput{Title: "x", AssignedTo: env.karyawan.ID})
	if !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("karyawan create: mau Forbidden, dapat %v", err)
	}

	// Manager hanya boleh menugaskan bawahan langsungnya.
	_, err = env.targets.Create(env.manager, usecase.CreateTargetInput{Title: "x", AssignedTo: env.karyawanB.ID})
	if !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("manager lintas tim: mau Forbidden, dapat %v", err)
	}

	// Admin bebas menugaskan siapa pun; assignee dapat notifikasi.
	target, err := env.targets.Create(env.admin, usecase.CreateTargetInput{Title: "lintas tim", AssignedTo: env.karyawanB.ID})
	if err != nil {
		t.Fatalf("admin create: %v", err)
	}
	if target.Status != model.TargetStatusPending {
		t.Fatalf("status awal = %s, mau pending", target.Status)
	}
	last := env.notifs.messages[len(env.notifs.messages)-1]
	if last.UserID != env.karyawanB.ID || last.Type != model.NotifTargetAssigned {
		t.Fatalf("notifikasi penugasan salah alamat: %+v", last)
	}
}

func TestCreateTargetValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name string
		in   usecase.CreateTargetInput
	}{
		{"judul kosong", usecase.CreateTargetInput{AssignedTo: env.karyawan.ID}},
		{"prioritas tidak dikenal", usecase.CreateTargetInput{Title: "x", AssignedTo: env.karyawan.ID, Priority: "urgent"}},
		{"deadline salah format", usecase.CreateTargetInput{Title: "x", AssignedTo: env.karyawan.ID, Deadline: "31-12-2026"}},
		{"assignee tidak ada", usecase.CreateTargetInput{Title: "x", AssignedTo: 9999}},
	}
	for _, tc := range cases {
		_, err := env.targets.Create(env.manager, tc.in)
		var vErr *usecase.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("%s: mau ValidationError, dapat %v", tc.name, err)
		}
	}
}

func TestSubmitProgressDrivesStatus(t *testing.T) {
	env := newTestEnv(t)
	target := env.assignedTarget(t, env.manager, env.karyawan)

	// Persentase 0 tetap menggeser pending menjadi in_progress.
	updated, err := env.targets.SubmitProgress(env.karyawan, target.ID, usecase.SubmitProgressInput{Percentage: 0, Note: "baru mulai"})
	if err != nil {
		t.Fatalf("submit 0%%: %v", err)
	}
	if updated.Status != model.TargetStatusInProgress {
		t.Fatalf("status setelah 0%% = %s, mau in_progress", updated.Status)
	}

	updated, err = env.targets.SubmitProgress(env.karyawan, target.ID, usecase.SubmitProgressInput{Percentage: 60})
	if err != nil {
		t.Fatalf("submit 60%%: %v", err)
	}
	if updated.Status != model.TargetStatusInProgress {
		t.Fatalf("status setelah 60%% = %s, mau in_progress", updated.Status)
	}

	updated, err = env.targets.SubmitProgress(env.karyawan, target.ID, usecase.SubmitProgressInput{Percentage: 100})
	if err != nil {
		t.Fatalf("submit 100%%: %v", err)
	}
	if updated.Status != model.TargetStatusCompleted {
		t.Fatalf("status setelah 100%% = %s, mau completed", updated.Status)
	}

	// Manager pembuat target dapat notifikasi setiap laporan.
	last := env.notifs.messages[len(env.notifs.messages)-1]
	if last.UserID != env.manager.ID || last.Type != model.NotifProgressAdded {
		t.Fatalf("notifikasi progress salah alamat: %+v", last)
	}
}

// Status completed monoton: laporan lanjutan dengan persentase lebih
// rendah tetap dicatat tapi tidak menurunkan status.
func TestCompletedStatusIsMonotonic(t *testing.T) {
	env := newTestEnv(t)
	target := env.assignedTarget(t, env.manager, env.karyawan)

	if _, err := env.targets.SubmitProgress(env.karyawan, target.ID, usecase.SubmitProgressInput{Percentage: 100}); err != nil {
		t.Fatalf("submit 100%%: %v", err)
	}

	updated, err := env.targets.SubmitProgress(env.karyawan, target.ID, usecase.SubmitProgressInput{Percentage: 40, Note: "revisi"})
	if err != nil {
		t.Fatalf("submit 40%%: %v", err)
	}
	if updated.Status != model.TargetStatusCompleted {
		t.Fatalf("status turun jadi %s setelah completed", updated.Status)
	}

	list, err := env.progressRepo.GetByTargetID(target.ID)
	if err != nil {
		t.Fatalf("list progress: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("jumlah entri progress = %d, mau 2", len(list))
	}
}

func TestSubmitProgressAuthorization(t *testing.T) {
	env := newTestEnv(t)
	target := env.assignedTarget(t, env.manager, env.karyawan)

	// Selain pengerja target (termasuk manager pembuatnya) -> Forbidden.
	for _, actor := range []*model.User{env.manager, env.admin, env.karyawanB} {
		_, err := env.targets.SubmitProgress(actor, target.ID, usecase.SubmitProgressInput{Percentage: 10})
		if !errors.Is(err, usecase.ErrForbidden) {
			t.Fatalf("%s submit: mau Forbidden, dapat %v", actor.Name, err)
		}
	}

	if _, err := env.targets.SubmitProgress(env.karyawan, 9999, usecase.SubmitProgressInput{Percentage: 10}); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("target tidak ada: mau NotFound, dapat %v", err)
	}
}

func TestSubmitProgressValidation(t *testing.T) {
	env := newTestEnv(t)
	target := env.assignedTarget(t, env.manager, env.karyawan)

	for _, percentage := range []int{-1, 101} {
		_, err := env.targets.SubmitProgress(env.karyawan, target.ID, usecase.SubmitProgressInput{Percentage: percentage})
		var vErr *usecase.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("persentase %d: mau ValidationError, dapat %v", percentage, err)
		}
	}

	// Transisi yang ditolak tidak meninggalkan entri progress.
	list, err := env.progressRepo.GetByTargetID(target.ID)
	if err != nil {
		t.Fatalf("list progress: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("entri progress bocor: %d baris", len(list))
	}
}

// Tie-break deterministik untuk timestamp identik: id tertinggi menang.
func TestLatestProgressTieBreak(t *testing.T) {
	env := newTestEnv(t)
	target := env.assignedTarget(t, env.manager, env.karyawan)

	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	first := model.WorkProgress{WorkTargetID: target.ID, UserID: env.karyawan.ID, Percentage: 30}
	first.CreatedAt = now
	second := model.WorkProgress{WorkTargetID: target.ID, UserID: env.karyawan.ID, Percentage: 70}
	second.CreatedAt = now
	if err := env.db.Create(&first).Error; err != nil {
		t.Fatalf("seed progress: %v", err)
	}
	if err := env.db.Create(&second).Error; err != nil {
		t.Fatalf("seed progress: %v", err)
	}

	latest, err := env.progressRepo.Latest(target.ID)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.ID != second.ID || latest.Percentage != 70 {
		t.Fatalf("latest = id %d (%d%%), mau id %d (70%%)", latest.ID, latest.Percentage, second.ID)
	}
}

func TestMarkOverdue(t *testing.T) {
	env := newTestEnv(t)

	late := env.assignedTarget(t, env.manager, env.karyawan)
	env.db.Model(late).Update("deadline", "2026-01-01")

	done := env.assignedTarget(t, env.manager, env.karyawan)
	env.db.Model(done).Updates(map[string]interface{}{"deadline": "2026-01-01", "status": model.TargetStatusCompleted})

	if err := env.targetRepo.MarkOverdue("2026-02-01"); err != nil {
		t.Fatalf("mark overdue: %v", err)
	}

	reloaded, _ := env.targetRepo.GetByID(late.ID)
	if reloaded.Status != model.TargetStatusOverdue {
		t.Fatalf("target lewat deadline = %s, mau overdue", reloaded.Status)
	}
	reloaded, _ = env.targetRepo.GetByID(done.ID)
	if reloaded.Status != model.TargetStatusCompleted {
		t.Fatalf("target completed ikut jadi %s", reloaded.Status)
	}
}

func TestDeleteTargetCascades(t *testing.T) {
	env := newTestEnv(t)
	target := env.assignedTarget(t, env.manager, env.karyawan)

	if _, err := env.targets.SubmitProgress(env.karyawan, target.ID, usecase.SubmitProgressInput{Percentage: 50}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Manager lain tidak boleh menghapus target yang bukan buatannya.
	if err := env.targets.Delete(env.managerB, target.ID); !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("manager lain delete: mau Forbidden, dapat %v", err)
	}

	if err := env.targets.Delete(env.manager, target.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var count int64
	env.db.Unscoped().Model(&model.WorkProgress{}).Where("work_target_id = ?", target.ID).Count(&count)
	if count != 0 {
		t.Fatalf("progress yatim tersisa: %d baris", count)
	}
}
