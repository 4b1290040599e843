package graphql

import (
	"time"

	"github.com/gofiber/fiber/v2"
	gql "github.com/graphql-go/graphql"

	"github.com/mkhalfin/accounts/pkg/auth"
	"github.com/mkhalfin/accounts/pkg/security/jwt"
)

// NewSchema builds the GraphQL schema: the User type, the me query, and the
// createUser/login mutations. tokenTTL bounds the access token cookie set by
// login.
func NewSchema(uc auth.AuthUseCase, tokenTTL time.Duration) (gql.Schema, error) {
	userType := gql.NewObject(gql.ObjectConfig{
		Name: "User",
		Fields: gql.Fields{
			"_id": &gql.Field{
				Type: gql.NewNonNull(gql.String),
				Resolve: func(p gql.ResolveParams) (any, error) {
					user, ok := p.Source.(auth.User)
					if !ok {
						return nil, nil
					}
					return user.ID.String(), nil
				},
			},
			"name": &gql.Field{
				Type: gql.NewNonNull(gql.String),
				Resolve: func(p gql.ResolveParams) (any, error) {
					user, ok := p.Source.(auth.User)
					if !ok {
						return nil, nil
					}
					return user.Name, nil
				},
			},
			"email": &gql.Field{
				Type: gql.NewNonNull(gql.String),
				Resolve: func(p gql.ResolveParams) (any, error) {
					user, ok := p.Source.(auth.User)
					if !ok {
						return nil, nil
					}
					return user.Email, nil
				},
			},
		},
	})

	createUserInput := gql.NewInputObject(gql.InputObjectConfig{
		Name: "CreateUserInput",
		Fields: gql.InputObjectConfigFieldMap{
			"name":     &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"email":    &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"password": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		},
	})

	loginInput := gql.NewInputObject(gql.InputObjectConfig{
		Name: "LoginInput",
		Fields: gql.InputObjectConfigFieldMap{
			"email":    &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"password": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		},
	})

	query := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"me": &gql.Field{
				Type: userType,
				Resolve: func(p gql.ResolveParams) (any, error) {
					// Pure context read; anonymous callers get null.
					user, ok := auth.FromContext(p.Context)
					if !ok {
						return nil, nil
					}
					return user, nil
				},
			},
		},
	})

	mutation := gql.NewObject(gql.ObjectConfig{
		Name: "Mutation",
		Fields: gql.Fields{
			"createUser": &gql.Field{
				Type: gql.NewNonNull(userType),
				Args: gql.FieldConfigArgument{
					"input": &gql.ArgumentConfig{Type: gql.NewNonNull(createUserInput)},
				},
				Resolve: func(p gql.ResolveParams) (any, error) {
					in, _ := p.Args["input"].(map[string]any)
					name, _ := in["name"].(string)
					email, _ := in["email"].(string)
					pass, _ := in["password"].(string)
					return uc.Register(p.Context, name, email, pass)
				},
			},
			"login": &gql.Field{
				Type: gql.NewNonNull(gql.String),
				Args: gql.FieldConfigArgument{
					"input": &gql.ArgumentConfig{Type: gql.NewNonNull(loginInput)},
				},
				Resolve: func(p gql.ResolveParams) (any, error) {
					in, _ := p.Args["input"].(map[string]any)
					email, _ := in["email"].(string)
					pass, _ := in["password"].(string)
					token, err := uc.Login(p.Context, email, pass)
					if err != nil {
						return nil, err
					}
					if c, ok := requestFrom(p.Context); ok {
						c.Cookie(&fiber.Cookie{
							Name:     jwt.AccessTokenCookie,
							Value:    token,
							Expires:  time.Now().Add(tokenTTL),
							HTTPOnly: true,
							SameSite: fiber.CookieSameSiteLaxMode,
						})
					}
					return token, nil
				},
			},
		},
	})

	return gql.NewSchema(gql.SchemaConfig{Query: query, Mutation: mutation})
}
