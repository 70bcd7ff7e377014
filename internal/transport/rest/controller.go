package rest

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/MdShadmanLabib/phonevalue-backend/internal/quote"
)

type quoteController struct {
	svc       *quote.Service
	validator *validator.Validate
}

func newQuoteController(svc *quote.Service) *quoteController {
	return &quoteController{
		svc:       svc,
		validator: validator.New(),
	}
}

func (qc *quoteController) getQuoteHandler(c *fiber.Ctx) error {
	var req quoteRequest
	if err := qc.parse(c, &req); err != nil {
		return err
	}

	res := qc.svc.QuoteByCondition(c.UserContext(),
		quote.Device{Brand: req.Brand, Model: req.Model, Storage: req.Storage},
		quote.Condition{
			Screen:          req.Condition.Screen,
			Body:            req.Condition.Body,
			FullyFunctional: req.Condition.FullyFunctional,
			CameraWorks:     req.Condition.CameraWorks,
			BatteryHealthy:  req.Condition.BatteryHealth,
			OriginalBox:     req.Condition.OriginalBox,
			ChargerIncluded: req.Condition.ChargerIncluded,
		})

	return qc.respond(c, res)
}

func (qc *quoteController) getQuoteV2Handler(c *fiber.Ctx) error {
	var req quoteRequestV2
	if err := qc.parse(c, &req); err != nil {
		return err
	}

	res := qc.svc.QuoteByGrade(c.UserContext(),
		quote.Device{Brand: req.Brand, Model: req.Model, Storage: req.Storage},
		req.Grade)

	return qc.respond(c, res)
}

// parse decodes and validates the request body. A failure here means no
// lookup is attempted at all.
func (qc *quoteController) parse(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body")
	}
	if err := qc.validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, validationMessage(err))
	}
	return nil
}

func (qc *quoteController) respond(c *fiber.Ctx, res quote.Result) error {
	log.Printf("[rest] %v quote ourPrice=%d cex=%.2f musicmagpie=%.2f",
		c.Locals("requestid"), res.OurPrice, res.CexPrice, res.MusicMagpiePrice)

	return c.JSON(quoteResponse{
		OurPrice:         res.OurPrice,
		CexPrice:         res.CexPrice,
		MusicMagpiePrice: res.MusicMagpiePrice,
		Message:          res.Message,
	})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := strings.ToLower(verrs[0].Field())
		if verrs[0].Tag() == "required" {
			return fmt.Sprintf("missing required field: %s", field)
		}
		return fmt.Sprintf("invalid value for field: %s", field)
	}
	return "invalid request"
}
