package handler

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bwdtc/bridgewater-dems/internal/model"
	"github.com/bwdtc/bridgewater-dems/internal/service"
)

type recipientsBody struct {
	Recipients []string `json:"recipients"`
}

// GetRecipients lists the admin notification recipients.
func GetRecipients(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(recipientsBody{Recipients: svc.Recipients(c.UserContext())})
	}
}

// PutRecipients replaces the admin notification recipients.
func PutRecipients(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body recipientsBody
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_JSON", `body must be {"recipients": [...]}`)
		}
		if err := svc.SetRecipients(c.UserContext(), body.Recipients); err != nil {
			var verr *model.ValidationError
			if errors.As(err, &verr) {
				return writeValidation(c, verr)
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ListSubmissions pages through the submission archive with limit & offset.
func ListSubmissions(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "20"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return archiveError(c, err)
		}
		return c.JSON(res)
	}
}

// GetSubmission returns one archived submission.
func GetSubmission(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sub, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return archiveError(c, err)
		}
		return c.JSON(sub)
	}
}

func archiveError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrArchiveDisabled):
		return writeError(c, fiber.StatusNotImplemented, "ARCHIVE_DISABLED", "submission archive is not configured")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "submission not found")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
