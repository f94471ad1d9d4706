package country

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/grigorishin/course-platform-api/services"
	"github.com/grigorishin/course-platform-api/utils/response"
	"github.com/grigorishin/course-platform-api/utils/validation"
	"gorm.io/gorm"
)

// CountryHandler handles country and country block requests.
type CountryHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

func NewCountryHandler(db *gorm.DB) *CountryHandler {
	return &CountryHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateCountryRequest represents the request body for creating a country
type CreateCountryRequest struct {
	Name           string `json:"name" validate:"required,min=1"`
	CountryBlockID uint   `json:"country_block_id" validate:"required,min=1"`
}

// CreateCountryBlockRequest represents the request body for creating a block
type CreateCountryBlockRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// ListCountries handles GET /api/countries?country_block_id=
func (h *CountryHandler) ListCountries(c *fiber.Ctx) error {
	blockID, err := strconv.ParseUint(c.Query("country_block_id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "country_block_id query parameter is required")
	}

	svc := services.NewCountriesService(h.db)
	countries, err := svc.GetCountries(c.Context(), uint(blockID))
	if err != nil {
		if errors.Is(err, services.ErrCountriesNotFound) {
			return response.BadRequestCode(c, "Countries not found", "COUNTRIES_NOT_FOUND")
		}
		return response.InternalServerError(c, "Failed to fetch countries")
	}

	return response.Success(c, countries)
}

// CreateCountry handles POST /api/countries
func (h *CountryHandler) CreateCountry(c *fiber.Ctx) error {
	var req CreateCountryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	svc := services.NewCountriesService(h.db)
	country, err := svc.CreateCountry(c.Context(), validation.SanitizeString(req.Name), req.CountryBlockID)
	if err != nil {
		return response.InternalServerError(c, "Failed to create country")
	}

	return response.Created(c, country)
}

// UpdateCountry handles PATCH /api/countries/:id
func (h *CountryHandler) UpdateCountry(c *fiber.Ctx) error {
	countryID, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid country id")
	}

	var patch services.CountryPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	svc := services.NewCountriesService(h.db)
	country, err := svc.UpdateCountry(c.Context(), countryID, patch)
	if err != nil {
		if errors.Is(err, services.ErrCountryNotExist) {
			return response.NotFoundCode(c, "Country does not exist", "COUNTRY_NOT_EXIST")
		}
		return response.InternalServerError(c, "Failed to update country")
	}

	return response.Success(c, country)
}

// DeleteCountry handles DELETE /api/countries/:id
func (h *CountryHandler) DeleteCountry(c *fiber.Ctx) error {
	countryID, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid country id")
	}

	svc := services.NewCountriesService(h.db)
	if err := svc.DeleteCountry(c.Context(), countryID); err != nil {
		if errors.Is(err, services.ErrCountryNotExist) {
			return response.NotFoundCode(c, "Country does not exist", "COUNTRY_NOT_EXIST")
		}
		return response.InternalServerError(c, "Failed to delete country")
	}

	return response.NoContent(c)
}

// ListCountryBlocks handles GET /api/countries/blocks
func (h *CountryHandler) ListCountryBlocks(c *fiber.Ctx) error {
	svc := services.NewCountriesService(h.db)
	blocks, err := svc.GetCountryBlocks(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch country blocks")
	}

	return response.Success(c, blocks)
}

// CreateCountryBlock handles POST /api/countries/blocks
func (h *CountryHandler) CreateCountryBlock(c *fiber.Ctx) error {
	var req CreateCountryBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	svc := services.NewCountriesService(h.db)
	block, err := svc.CreateCountryBlock(c.Context(), validation.SanitizeString(req.Name))
	if err != nil {
		return response.InternalServerError(c, "Failed to create country block")
	}

	return response.Created(c, block)
}

// UpdateCountryBlock handles PATCH /api/countries/blocks/:id
func (h *CountryHandler) UpdateCountryBlock(c *fiber.Ctx) error {
	blockID, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid country block id")
	}

	var patch services.CountryBlockPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	svc := services.NewCountriesService(h.db)
	block, err := svc.UpdateCountryBlock(c.Context(), blockID, patch)
	if err != nil {
		if errors.Is(err, services.ErrCountryBlockNotExist) {
			return response.NotFoundCode(c, "Country block does not exist", "COUNTRY_BLOCK_NOT_EXIST")
		}
		return response.InternalServerError(c, "Failed to update country block")
	}

	return response.Success(c, block)
}

// DeleteCountryBlock handles DELETE /api/countries/blocks/:id
func (h *CountryHandler) DeleteCountryBlock(c *fiber.Ctx) error {
	blockID, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid country block id")
	}

	svc := services.NewCountriesService(h.db)
	if err := svc.DeleteCountryBlock(c.Context(), blockID); err != nil {
		if errors.Is(err, services.ErrCountryBlockNotExist) {
			return response.NotFoundCode(c, "Country block does not exist", "COUNTRY_BLOCK_NOT_EXIST")
		}
		return response.InternalServerError(c, "Failed to delete country block")
	}

	return response.NoContent(c)
}
