package handler

import (
	"strconv"

	"worktrack-backend/internal/model"
	"worktrack-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DepartmentHandler struct {
	repo repository.DepartmentRepository
}

func NewDepartmentHandler(repo repository.DepartmentRepository) *DepartmentHandler {
	return &DepartmentHandler{repo: repo}
}

func (h *DepartmentHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data departemen"})
	}
	return c.JSON(fiber.Map{"data": list})
}

type DepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var req DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama departemen wajib diisi"})
	}

	dept := model.Department{Name: req.Name, Description: req.Description}
	if err := h.repo.Create(&dept); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Nama departemen sudah dipakai"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Departemen berhasil dibuat",
		"data":    dept,
	})
}

func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	dept, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Departemen tidak ditemukan"})
	}

	if req.Name != "" {
		dept.Name = req.Name
	}
	if req.Description != "" {
		dept.Description = req.Description
	}

	if err := h.repo.Update(dept); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update departemen"})
	}

	return c.JSON(fiber.Map{
		"message": "Departemen berhasil diperbarui",
		"data":    dept,
	})
}

func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	// Departemen yang masih punya anggota tidak boleh dihapus.
	count, err := h.repo.CountMembers(uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa anggota departemen"})
	}
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Departemen masih memiliki anggota"})
	}

	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus departemen"})
	}

	return c.JSON(fiber.Map{"message": "Departemen berhasil dihapus"})
}
