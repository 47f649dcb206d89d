package entity

import (
	"context"
	"fmt"
)

type ctxKey int8

const (
	ctxKeyUser ctxKey = iota
)

func CtxWithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, ctxKeyUser, user)
}

func UserFromCtx(ctx context.Context) (User, error) {
	user, ok := ctx.Value(ctxKeyUser).(User)
	if !ok {
		return User{}, fmt.Errorf("%w: no user in context", ErrUnauthenticated)
	}

	return user, nil
}
