package handlers

import (
	"github.com/lessonbooker/server/database"
	"github.com/lessonbooker/server/models"
	"github.com/gofiber/fiber/v2"
)

func GetMyProfile(c *fiber.Ctx) error {
	actor := actorFrom(c)

	var user models.User
	if err := database.DB.First(&user, "id = ?", actor.AccountID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	}

	return c.JSON(fiber.Map{
		"id":               user.ID,
		"full_name":        user.FullName,
		"email":            user.Email,
		"role":             user.Role,
		"display_name":     user.DisplayName,
		"phone_number":     user.PhoneNumber,
		"address":          user.Address,
		"profile_complete": user.ProfileComplete(),
	})
}

type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Address     *string `json:"address,omitempty"`
}

func UpdateMyProfile(c *fiber.Ctx) error {
	actor := actorFrom(c)

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", actor.AccountID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
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
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{
		"message":          "Profile updated successfully",
		"profile_complete": user.ProfileComplete(),
	})
}
