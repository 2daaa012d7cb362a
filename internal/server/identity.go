package server

import (
	"context"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"net/http"
	"strings"
)

// Identity is who a request is acting as. With no authentication configured
// every request is the anonymous guest, a real auth layer can be substituted
// by swapping the IdentityResolver without touching route logic.
type Identity struct {
	ID    string
	Name  string
	Email string
	Guest bool
}

type IdentityResolver interface {
	Resolve(r *http.Request) Identity
}

// GuestResolver resolves every request to the anonymous guest. This is the
// documented no-auth implementation.
type GuestResolver struct{}

func (GuestResolver) Resolve(*http.Request) Identity {
	return Identity{Name: "Guest", Guest: true}
}

// TokenResolver reads an optional Bearer token signed with Key. A valid token
// yields the subject identity, a missing or invalid token falls back to the
// guest. Nothing is ever rejected, authentication is not enforced here.
type TokenResolver struct {
	Key jwk.Key
}

func (tr TokenResolver) Resolve(r *http.Request) Identity {
	lt := r.Header.Get("Authorization")
	if !strings.HasPrefix(lt, "Bearer ") {
		return GuestResolver{}.Resolve(r)
	}
	lt = strings.TrimPrefix(lt, "Bearer ")

	token, err := jwt.Parse([]byte(lt), jwt.WithKey(jwa.HS256, tr.Key), jwt.WithValidate(true))
	if err != nil {
		return GuestResolver{}.Resolve(r)
	}

	id := Identity{ID: token.Subject()}
	if v, ok := token.Get("name"); ok {
		if name, ok := v.(string); ok {
			id.Name = name
		}
	}
	if v, ok := token.Get("email"); ok {
		if email, ok := v.(string); ok {
			id.Email = email
		}
	}
	return id
}

type identityContextKey struct{}

func setIdentityContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

func getIdentityContext(ctx context.Context) Identity {
	id, ok := ctx.Value(identityContextKey{}).(Identity)
	if !ok {
		return Identity{Name: "Guest", Guest: true}
	}
	return id
}
