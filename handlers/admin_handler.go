package handlers

import (
	"github.com/lessonbooker/server/database"
	"github.com/lessonbooker/server/models"
	"github.com/lessonbooker/server/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type GenerateKeyRequest struct {
	Role string `json:"role,omitempty" validate:"omitempty,oneof=student instructor"`
}

func GenerateRegistrationKey(c *fiber.Ctx) error {
	var req GenerateKeyRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	role := req.Role
	if role == "" {
		role = "student"
	}

	var newKey models.RegistrationKey
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		key, err := utils.GenerateUniqueRegistrationKey(tx)
		if err != nil {
			return err
		}
		newKey = models.RegistrationKey{Key: key, Role: role}
		return tx.Create(&newKey).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate registration key"})
	}

	return c.Status(fiber.StatusCreated).JSON(newKey)
}

func ListStudents(c *fiber.Ctx) error {
	var students []models.User
	err := database.DB.
		Where("role = ?", "student").
		Order("created_at desc").
		Find(&students).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve students"})
	}
	return c.JSON(students)
}

func RevokeAccess(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if user.Role == "admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Cannot revoke an admin account"})
	}

	user.IsActive = false
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to revoke access"})
	}

	return c.JSON(fiber.Map{"message": "Access revoked successfully"})
}

type AdminUpdateUserRequest struct {
	FullName    *string `json:"full_name,omitempty" validate:"omitempty,min=2"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	DisplayName *string `json:"display_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Address     *string `json:"address,omitempty"`
}

func AdminUpdateUser(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var req AdminUpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.DisplayName != nil {
		user.DisplayName = req.DisplayName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Address != nil {
		user.Address = req.Address
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(user)
}
