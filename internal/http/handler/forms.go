package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bwdtc/bridgewater-dems/internal/model"
	"github.com/bwdtc/bridgewater-dems/internal/service"
)

// ThankYouPath is where the site sends donors after a contributor form.
const ThankYouPath = "/thankyou"

type seecResponse struct {
	ID               string `json:"id"`
	NotificationSent bool   `json:"notificationSent"`
	ConfirmationSent bool   `json:"confirmationSent"`
	Redirect         string `json:"redirect"`
}

type formResponse struct {
	Message string `json:"message"`
}

// SubmitSEEC accepts the SEEC contributor form.
//
// @Summary Submit the SEEC contributor form
// @Tags forms
// @Accept json
// @Produce json
// @Param record body model.SubmissionRecord true "Contributor form"
// @Success 201 {object} seecResponse
// @Failure 400 {object} errorPayload
// @Router /api/forms/seec [post]
func SubmitSEEC(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rec model.SubmissionRecord
		if err := json.Unmarshal(c.Body(), &rec); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_JSON", "body must be a contributor form")
		}

		snap, err := svc.Submit(c.UserContext(), rec)
		if err != nil {
			var verr *model.ValidationError
			if errors.As(err, &verr) {
				return writeValidation(c, verr)
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		return c.Status(fiber.StatusCreated).JSON(seecResponse{
			ID:               snap.ID,
			NotificationSent: snap.NotificationSent,
			ConfirmationSent: snap.ConfirmationSent,
			Redirect:         ThankYouPath,
		})
	}
}

// GetSEECSnapshot returns the snapshot the thank-you page renders. The id is
// the one SubmitSEEC returned to the submitter.
//
// @Summary Contributor form snapshot
// @Tags forms
// @Produce json
// @Param id path string true "Submission id"
// @Success 200 {object} model.LastSubmission
// @Failure 404 {object} errorPayload
// @Router /api/forms/seec/{id} [get]
func GetSEECSnapshot(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, ok := svc.Snapshot(c.UserContext(), c.Params("id"))
		if !ok {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "no submission recorded")
		}
		return c.JSON(snap)
	}
}

// SubmitContact relays the contact form.
func SubmitContact(svc service.FormService) fiber.Handler {
	return relayForm(svc.Contact)
}

// SubmitVolunteer relays the volunteer sign-up form.
func SubmitVolunteer(svc service.FormService) fiber.Handler {
	return relayForm(svc.Volunteer)
}

func relayForm(submit func(ctx context.Context, values url.Values) (string, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		values, err := formValues(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_FORM", "body must be form encoded")
		}

		msg, err := submit(c.UserContext(), values)
		if err != nil {
			var verr *model.ValidationError
			if errors.As(err, &verr) {
				return writeValidation(c, verr)
			}
			return writeError(c, fiber.StatusBadGateway, "FORM_RELAY_FAILED", "form could not be delivered, please try again")
		}
		return c.JSON(formResponse{Message: msg})
	}
}

// formValues reads url-encoded or multipart bodies into url.Values.
func formValues(c *fiber.Ctx) (url.Values, error) {
	values := url.Values{}
	if strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		mf, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		for k, vs := range mf.Value {
			values[k] = vs
		}
		return values, nil
	}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		values.Add(string(k), string(v))
	})
	return values, nil
}
