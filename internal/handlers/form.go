package handlers

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/jjenkins/waiver/internal/release"
)

//go:embed form.html
var formHTML string

var formPage = template.Must(template.New("form").Parse(formHTML))

type formPageData struct {
	FormID        string
	Title         string
	Description   string
	LiabilityText string
}

// FormHandler serves the release form page with the form id and the current
// legal text injected. The page carries the text in a hidden field so the
// submission captures exactly what the signer saw.
func FormHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		err := formPage.Execute(&buf, formPageData{
			FormID:        release.FormID,
			Title:         release.Title,
			Description:   release.Description,
			LiabilityText: release.Text,
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Error loading form")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(buf.Bytes())
	}
}
