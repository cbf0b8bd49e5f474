package routes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"worktrack-backend/config"
	"worktrack-backend/internal/model"
	"worktrack-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	config.Migrate(db)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	manager := &model.User{Name: "Manager", Email: "manager@test.local", Password: string(hashed), Role: model.RoleManager, IsActive: true}
	if err := db.Create(manager).Error; err != nil {
		t.Fatalf("seed manager: %v", err)
	}
	karyawan := &model.User{Name: "Karyawan", Email: "karyawan@test.local", Password: string(hashed), Role: model.RoleKaryawan, ManagerID: &manager.ID, IsActive: true}
	if err := db.Create(karyawan).Error; err != nil {
		t.Fatalf("seed karyawan: %v", err)
	}
	outsider := &model.User{Name: "Outsider", Email: "outsider@test.local", Password: string(hashed), Role: model.RoleKaryawan, IsActive: true}
	if err := db.Create(outsider).Error; err != nil {
		t.Fatalf("seed outsider: %v", err)
	}

	app := fiber.New()
	routes.SetupAuthRoutes(app, db)
	routes.SetupUserRoutes(app, db)
	routes.SetupDepartmentRoutes(app, db)
	routes.SetupTargetRoutes(app, db)
	routes.SetupLeaveRoutes(app, db)
	routes.SetupNotificationRoutes(app, db)
	routes.SetupLogRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)

	return app, db
}

// helper untuk menjalankan request dengan token auth
func performRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}

func login(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := performRequest(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": "password123",
	}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", email, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("login %s: token kosong", email)
	}
	return token
}

func TestAuthRequired(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := performRequest(t, app, http.MethodGet, "/api/leaves/", nil, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("tanpa token: status %d, mau 401", resp.StatusCode)
	}
}

// Alur lengkap lewat HTTP: pengajuan cuti oleh karyawan, approval oleh
// manager, keputusan ganda ditolak 409, notifikasi sampai ke pemohon.
func TestLeaveFlowOverHTTP(t *testing.T) {
	app, _ := setupTestApp(t)

	karyawanToken := login(t, app, "karyawan@test.local")
	managerToken := login(t, app, "manager@test.local")

	// 1. Karyawan mengajukan cuti
	resp := performRequest(t, app, http.MethodPost, "/api/leaves/", map[string]string{
		"type":       "annual",
		"start_date": "2026-03-02",
		"end_date":   "2026-03-04",
		"reason":     "acara keluarga tiga hari",
	}, karyawanToken)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("request leave: status %d", resp.StatusCode)
	}
	created := decodeBody(t, resp)
	data := created["data"].(map[string]interface{})
	leaveID := int(data["ID"].(float64))
	if data["status"] != "pending" {
		t.Fatalf("status awal = %v, mau pending", data["status"])
	}
	if int(data["days_count"].(float64)) != 3 {
		t.Fatalf("days_count = %v, mau 3", data["days_count"])
	}

	// 2. Manager melihat pengajuan bawahannya
	resp = performRequest(t, app, http.MethodGet, "/api/leaves/?status=pending", nil, managerToken)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list leaves: status %d", resp.StatusCode)
	}
	listBody := decodeBody(t, resp)
	if int(listBody["total"].(float64)) != 1 {
		t.Fatalf("manager harus lihat 1 pengajuan, dapat %v", listBody["total"])
	}

	// 3. Karyawan tidak boleh approve (ditahan Role middleware)
	resp = performRequest(t, app, http.MethodPost,
		"/api/leaves/"+strconv.Itoa(leaveID)+"/approve", nil, karyawanToken)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("karyawan approve: status %d, mau 403", resp.StatusCode)
	}

	// 4. Manager menyetujui
	resp = performRequest(t, app, http.MethodPost,
		"/api/leaves/"+strconv.Itoa(leaveID)+"/approve", nil, managerToken)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("approve: status %d", resp.StatusCode)
	}

	// 5. Keputusan kedua -> Conflict
	resp = performRequest(t, app, http.MethodPost,
		"/api/leaves/"+strconv.Itoa(leaveID)+"/reject", map[string]string{
			"reason": "alasan penolakan panjang",
		}, managerToken)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("keputusan kedua: status %d, mau 409", resp.StatusCode)
	}

	// 6. Pemohon menerima notifikasi approval
	resp = performRequest(t, app, http.MethodGet, "/api/notifications/unread-count", nil, karyawanToken)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unread-count: status %d", resp.StatusCode)
	}
	countBody := decodeBody(t, resp)
	unread := countBody["data"].(map[string]interface{})["unread"].(float64)
	if unread < 1 {
		t.Fatalf("karyawan tidak menerima notifikasi approval")
	}
}

// Target milik orang lain harus tampak tidak ada (404), bukan 403.
func TestForeignTargetHiddenOverHTTP(t *testing.T) {
	app, db := setupTestApp(t)

	managerToken := login(t, app, "manager@test.local")
	outsiderToken := login(t, app, "outsider@test.local")

	var karyawan model.User
	if err := db.Where("email = ?", "karyawan@test.local").First(&karyawan).Error; err != nil {
		t.Fatalf("load karyawan: %v", err)
	}

	resp := performRequest(t, app, http.MethodPost, "/api/targets/", map[string]interface{}{
		"title":       "Laporan bulanan",
		"assigned_to": karyawan.ID,
		"deadline":    "2026-12-31",
	}, managerToken)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create target: status %d", resp.StatusCode)
	}
	data := decodeBody(t, resp)["data"].(map[string]interface{})
	targetID := int(data["ID"].(float64))

	resp = performRequest(t, app, http.MethodGet, "/api/targets/"+strconv.Itoa(targetID), nil, outsiderToken)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("target asing: status %d, mau 404", resp.StatusCode)
	}

	// Sub-resource dengan parent yang ada tapi di luar scope -> 403.
	resp = performRequest(t, app, http.MethodGet, "/api/targets/"+strconv.Itoa(targetID)+"/progress", nil, outsiderToken)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("progress target asing: status %d, mau 403", resp.StatusCode)
	}
}

// GetOne: id tak dikenal -> 404, kegagalan database -> 500. Keduanya
// tidak boleh tertukar.
func TestGetOneErrorMapping(t *testing.T) {
	app, db := setupTestApp(t)

	managerToken := login(t, app, "manager@test.local")

	resp := performRequest(t, app, http.MethodGet, "/api/targets/9999", nil, managerToken)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("target tak dikenal: status %d, mau 404", resp.StatusCode)
	}
	resp = performRequest(t, app, http.MethodGet, "/api/leaves/9999", nil, managerToken)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("cuti tak dikenal: status %d, mau 404", resp.StatusCode)
	}

	// Tabel dihapus untuk mensimulasikan kegagalan query yang sebenarnya.
	if err := db.Migrator().DropTable(&model.WorkTarget{}); err != nil {
		t.Fatalf("drop table targets: %v", err)
	}
	if err := db.Migrator().DropTable(&model.Leave{}); err != nil {
		t.Fatalf("drop table leaves: %v", err)
	}

	resp = performRequest(t, app, http.MethodGet, "/api/targets/9999", nil, managerToken)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("query target gagal: status %d, mau 500", resp.StatusCode)
	}
	resp = performRequest(t, app, http.MethodGet, "/api/leaves/9999", nil, managerToken)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("query cuti gagal: status %d, mau 500", resp.StatusCode)
	}
}

func TestUserAdminOnlyOverHTTP(t *testing.T) {
	app, _ := setupTestApp(t)

	karyawanToken := login(t, app, "karyawan@test.local")

	resp := performRequest(t, app, http.MethodGet, "/api/users/", nil, karyawanToken)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("karyawan akses administrasi pegawai: status %d, mau 403", resp.StatusCode)
	}
}
