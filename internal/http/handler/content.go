package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bwdtc/bridgewater-dems/internal/model"
	"github.com/bwdtc/bridgewater-dems/internal/service"
)

// GetDocument returns the full merged content document.
//
// @Summary Full site content
// @Tags content
// @Produce json
// @Success 200 {object} model.ContentDocument
// @Router /api/content [get]
func GetDocument(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Document(c.UserContext()))
	}
}

// GetSection returns one named section of the content document.
//
// @Summary One content section
// @Tags content
// @Produce json
// @Param section path string true "Section name"
// @Success 200 {object} object
// @Failure 404 {object} errorPayload
// @Router /api/content/{section} [get]
func GetSection(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sec, ok := svc.Section(c.UserContext(), c.Params("section"))
		if !ok {
			return writeError(c, fiber.StatusNotFound, "UNKNOWN_SECTION", "unknown content section")
		}
		return c.JSON(sec)
	}
}

// GetDonationContent returns the merged donation document.
//
// @Summary Donation flow content
// @Tags content
// @Produce json
// @Success 200 {object} model.DonationContent
// @Router /api/donation-content [get]
func GetDonationContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Donation(c.UserContext()))
	}
}

// PutSiteContent overlays the body onto the stored site document. Keys
// missing from the body keep their current value; arrays in the body
// replace the stored arrays whole.
//
// @Summary Save site content
// @Tags admin
// @Accept json
// @Param document body model.SiteContent true "Full or partial site document"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Security BearerAuth
// @Router /api/admin/content [put]
func PutSiteContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return saveResult(c, svc.SaveDocument(c.UserContext(), c.Body()))
	}
}

// PutSection overlays the body onto one section and saves the document.
//
// @Summary Save one content section
// @Tags admin
// @Accept json
// @Param section path string true "Section name"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Security BearerAuth
// @Router /api/admin/content/{section} [put]
func PutSection(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return saveResult(c, svc.SaveSection(c.UserContext(), c.Params("section"), c.Body()))
	}
}

// ResetSiteContent drops the stored site document so reads return defaults.
//
// @Summary Reset site content to defaults
// @Tags admin
// @Success 204
// @Security BearerAuth
// @Router /api/admin/content [delete]
func ResetSiteContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		svc.ResetSite(c.UserContext())
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// PutDonationContent overlays the body onto the stored donation document,
// with the same rules as PutSiteContent.
//
// @Summary Save donation content
// @Tags admin
// @Accept json
// @Param document body model.DonationContent true "Full or partial donation document"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Security BearerAuth
// @Router /api/admin/donation-content [put]
func PutDonationContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return saveResult(c, svc.SaveDonationDocument(c.UserContext(), c.Body()))
	}
}

// ResetDonationContent drops the stored donation document so reads return defaults.
//
// @Summary Reset donation content to defaults
// @Tags admin
// @Success 204
// @Security BearerAuth
// @Router /api/admin/donation-content [delete]
func ResetDonationContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		svc.ResetDonation(c.UserContext())
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// saveResult maps a content write error onto the response.
func saveResult(c *fiber.Ctx, err error) error {
	var verr *model.ValidationError
	switch {
	case err == nil:
		return c.SendStatus(fiber.StatusNoContent)
	case errors.As(err, &verr):
		return writeValidation(c, verr)
	case errors.Is(err, service.ErrUnknownSection):
		return writeError(c, fiber.StatusNotFound, "UNKNOWN_SECTION", "unknown content section")
	case errors.Is(err, service.ErrInvalidContent):
		return writeError(c, fiber.StatusBadRequest, "INVALID_JSON", "body must be a JSON object")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
