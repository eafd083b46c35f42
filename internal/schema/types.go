package schema

import "github.com/graphql-go/graphql"

// Output types mirror the service view structs; fields resolve through
// the default resolver against the views' json tags.

func newProductType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"price":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"imageUrl":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"stock":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"categoryId":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})
}

func newCategoryType(product *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"products":    &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(product)))},
		},
	})
}

func newOrderItemType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "OrderItem",
		Fields: graphql.Fields{
			"productName": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"quantity":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"price":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		},
	})
}

func newOrderType(item *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Order",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"userId":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"totalPrice": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"status":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"items":      &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(item)))},
		},
	})
}

func newDashboardStatsType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "DashboardStats",
		Fields: graphql.Fields{
			"dailyRevenue":      &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"weeklyVolume":      &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"monthlyThroughput": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"dailyChange":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"weeklyChange":      &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"monthlyChange":     &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		},
	})
}

// AuthPayload is the uniform mutation result. success and message are
// always present; the rest are empty on failure.
func newAuthPayloadType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"success":       &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"token":         &graphql.Field{Type: graphql.String},
			"userId":        &graphql.Field{Type: graphql.Int},
			"username":      &graphql.Field{Type: graphql.String},
			"isAdmin":       &graphql.Field{Type: graphql.Int},
			"emailVerified": &graphql.Field{Type: graphql.Boolean},
			"message":       &graphql.Field{Type: graphql.String},
		},
	})
}
