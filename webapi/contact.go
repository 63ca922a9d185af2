package webapi

import (
	contactsvc "github.com/cdacbank/onlinebanking/pkg/service/contact"
	"github.com/gofiber/fiber/v2"
)

// ContactRoutes registers the public contact-form endpoint.
func ContactRoutes(app *fiber.App, contactSvc *contactsvc.Service) {
	app.Post("/contact", SubmitContact(contactSvc))
}

// SubmitContact stores a contact-form message.
// @Summary Submit a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact message"
// @Success 201 {object} Response
// @Failure 400 {object} ProblemDetails
// @Router /contact [post]
func SubmitContact(contactSvc *contactsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[ContactRequest](c)
		if input == nil {
			return err
		}
		msg, err := contactSvc.Submit(
			c.UserContext(),
			input.Name, input.Email, input.Phone, input.Subject, input.Message,
		)
		if err != nil {
			return DomainErrorJSON(c, "Contact submission failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Message received", msg)
	}
}
