package handler

import (
	"strconv"

	"worktrack-backend/internal/model"
	"worktrack-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type UserHandler struct {
	repo repository.UserRepository
}

func NewUserHandler(repo repository.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	search := c.Query("search")

	users, err := h.repo.GetAll(search)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data pegawai"})
	}

	return c.JSON(fiber.Map{"data": users})
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	user, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	return c.JSON(fiber.Map{"data": user})
}

type CreateUserRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	Position     string `json:"position"`
	Phone        string `json:"phone"`
	ManagerID    *uint  `json:"manager_id"`
	DepartmentID *uint  `json:"department_id"`
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	if req.Name == "" || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama dan email wajib diisi"})
	}
	if !model.ValidRole(req.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Role harus salah satu dari: admin, ceo, manager, karyawan"})
	}
	if len(req.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password minimal 8 karakter"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengenkripsi password"})
	}

	user := model.User{
		Name:         req.Name,
		Email:        req.Email,
		Password:     string(hashedPassword),
		Role:         req.Role,
		Position:     req.Position,
		Phone:        req.Phone,
		ManagerID:    req.ManagerID,
		DepartmentID: req.DepartmentID,
		IsActive:     true,
	}
	if err := h.repo.Create(&user); err != nil {
		// Kemungkinan besar email sudah terdaftar (unique constraint)
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email sudah terdaftar"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Pegawai berhasil didaftarkan",
		"data":    user,
	})
}

type UpdateUserRequest struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Position     string `json:"position"`
	Phone        string `json:"phone"`
	ManagerID    *uint  `json:"manager_id"`
	DepartmentID *uint  `json:"department_id"`
	IsActive     *bool  `json:"is_active"`
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	user, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Role != "" {
		if !model.ValidRole(req.Role) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Role tidak dikenal"})
		}
		user.Role = req.Role
	}
	if req.Position != "" {
		user.Position = req.Position
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.ManagerID != nil {
		user.ManagerID = req.ManagerID
	}
	if req.DepartmentID != nil {
		user.DepartmentID = req.DepartmentID
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := h.repo.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update data pegawai"})
	}

	return c.JSON(fiber.Map{
		"message": "Data pegawai berhasil diperbarui",
		"data":    user,
	})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus pegawai"})
	}

	return c.JSON(fiber.Map{"message": "Pegawai berhasil dihapus"})
}

// GetSubordinates: daftar bawahan langsung dari user yang login.
func (h *UserHandler) GetSubordinates(c *fiber.Ctx) error {
	managerID := uint(c.Locals("user_id").(float64))

	users, err := h.repo.GetByManagerID(managerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data bawahan"})
	}

	return c.JSON(fiber.Map{"data": users})
}
