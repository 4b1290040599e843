package graphql

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	gql "github.com/graphql-go/graphql"

	"github.com/mkhalfin/accounts/api/http/presenter"
)

// Handler executes GraphQL requests over Fiber.
type Handler struct {
	schema gql.Schema
}

func NewHandler(schema gql.Schema) *Handler {
	return &Handler{schema: schema}
}

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// Execute runs a GraphQL operation. Resolver failures land in the response's
// errors array; only an unparseable body is an HTTP-level error.
func (h *Handler) Execute(c *fiber.Ctx) error {
	var req request
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	result := gql.Do(gql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        withRequest(c.UserContext(), c),
	})
	return presenter.JSON(c, http.StatusOK, result)
}

// Playground serves the interactive GraphQL UI.
func (h *Handler) Playground(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(playgroundHTML)
}
