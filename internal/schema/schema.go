// Package schema defines the GraphQL schema: queries over the catalog
// and orders, plus the login/register/verifyEmail mutations.
//
// Business-rule violations never become GraphQL errors: the auth
// mutations always resolve to an AuthPayload whose success flag and
// message describe the outcome. Only malformed requests and
// infrastructure failures surface in the response's errors list.
package schema

import (
	"github.com/graphql-go/graphql"

	"store2070/internal/services"
)

// Resolvers bundles the services the schema resolves against.
type Resolvers struct {
	Catalog *services.CatalogService
	Orders  *services.OrderService
	Auth    *services.AuthService
}

// New builds the executable schema.
func New(r Resolvers) (graphql.Schema, error) {
	productType := newProductType()
	categoryType := newCategoryType(productType)
	orderItemType := newOrderItemType()
	orderType := newOrderType(orderItemType)
	dashboardStatsType := newDashboardStatsType()
	authPayloadType := newAuthPayloadType()

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(productType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Catalog.Products()
				},
			},
			"categories": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(categoryType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Catalog.Categories()
				},
			},
			"orders": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Orders.Orders()
				},
			},
			"dashboardStats": &graphql.Field{
				Type: graphql.NewNonNull(dashboardStatsType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Orders.Stats()
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"login": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					username, _ := p.Args["username"].(string)
					password, _ := p.Args["password"].(string)
					return r.Auth.Login(username, password)
				},
			},
			"register": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					username, _ := p.Args["username"].(string)
					password, _ := p.Args["password"].(string)
					return r.Auth.Register(username, password)
				},
			},
			"verifyEmail": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"token": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					token, _ := p.Args["token"].(string)
					return r.Auth.VerifyEmail(token)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
