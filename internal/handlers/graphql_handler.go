package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
)

// GraphQLHandler serves the single GraphQL endpoint.
type GraphQLHandler struct {
	schema graphql.Schema
}

// NewGraphQLHandler creates a new GraphQLHandler.
func NewGraphQLHandler(schema graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{
		schema: schema,
	}
}

// RegisterRoutes registers the GraphQL route with the Fiber app.
func (h *GraphQLHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/graphql", h.HandleQuery)
}

// graphQLRequest is the standard GraphQL-over-HTTP POST body.
type graphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// HandleQuery executes a GraphQL query or mutation. The response is
// always HTTP 200 with the GraphQL result body: business failures ride
// inside resolver payloads, malformed queries come back in the
// result's errors list.
func (h *GraphQLHandler) HandleQuery(c *fiber.Ctx) error {
	var req graphQLRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing GraphQL request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        c.UserContext(),
	})
	return c.JSON(result)
}
