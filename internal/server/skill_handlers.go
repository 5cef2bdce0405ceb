package server

import (
	"github.com/chandanraj-03/skill-bartering-system/internal/featureflags"
	"github.com/chandanraj-03/skill-bartering-system/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetSkillCategories handles GET /api/skills/categories
func (s *Server) GetSkillCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": models.SkillCategories()})
}

// CreateSkill handles POST /api/skills
// @Summary List a new skill
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{name=string,category=string,description=string,proficiency=string} true "Skill listing"
// @Success 201 {object} models.Skill
// @Failure 400 {object} models.ErrorResponse
// @Router /skills [post]
func (s *Server) CreateSkill(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Name        string `json:"name"`
		Category    string `json:"category"`
		Description string `json:"description"`
		Proficiency string `json:"proficiency"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	skill, err := s.skillService.AddSkill(c.Context(), userID, req.Name, req.Category, req.Description, req.Proficiency)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(skill)
}

// GetMySkills handles GET /api/skills
func (s *Server) GetMySkills(c *fiber.Ctx) error {
	userID := currentUserID(c)

	skills, err := s.skillService.ListSkills(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"skills": skills})
}

// SearchSkills handles GET /api/skills/search
// @Summary Search skill listings
// @Description Keyword search over other users' listings, optionally filtered by category
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param q query string false "Keyword"
// @Param category query string false "Category filter"
// @Success 200 {object} object{results=[]models.SkillSearchResult}
// @Router /skills/search [get]
func (s *Server) SearchSkills(c *fiber.Ctx) error {
	userID := currentUserID(c)

	results, err := s.skillService.Search(c.Context(), userID, c.Query("q"), c.Query("category"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"results": results})
}

// GetRecommendedSkills handles GET /api/skills/recommended
func (s *Server) GetRecommendedSkills(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if !s.featureFlags.EnabledDefault(featureflags.FlagRecommendations, userID, true) {
		return c.JSON(fiber.Map{"results": []models.SkillSearchResult{}})
	}

	limit := c.QueryInt("limit", 10)
	results, err := s.skillService.RecommendedSkills(c.Context(), userID, limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"results": results})
}

// DeleteSkill handles DELETE /api/skills/:id
func (s *Server) DeleteSkill(c *fiber.Ctx) error {
	userID := currentUserID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.skillService.DeleteSkill(c.Context(), userID, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Skill deleted"})
}
