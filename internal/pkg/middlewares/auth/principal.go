package auth

import (
	"context"
	"fmt"
)

type Role string

const (
	RoleCourier Role = "courier"
	RoleAdmin   Role = "admin"
)

// Principal - вызывающий, извлеченный из JWT. CourierID заполнен только для роли courier.
type Principal struct {
	Subject   string
	Role      Role
	CourierID int64
}

// Key используется как ключ лимитера запросов.
func (p Principal) Key() string {
	if p.Role == RoleCourier {
		return fmt.Sprintf("courier:%d", p.CourierID)
	}
	return fmt.Sprintf("%s:%s", p.Role, p.Subject)
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// CourierFromContext возвращает id курьера, если запрос сделан от его имени.
func CourierFromContext(ctx context.Context) (int64, bool) {
	p, ok := FromContext(ctx)
	if !ok || p.Role != RoleCourier {
		return 0, false
	}
	return p.CourierID, true
}
