package test

import (
	"errors"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var ErrNoSession = errors.New("没有登录")

// 测试里面的 session 都放在 gin.Context 里面
func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

var _ session.Provider = &SessionProvider{}

// SessionProvider 不校验 token，session 直接从 gin.Context 里面读写
type SessionProvider struct {
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	sess := session.NewMemorySession(session.Claims{Uid: uid, Data: jwtData})
	for key, val := range sessData {
		if err := sess.Set(ctx, key, val); err != nil {
			return nil, err
		}
	}
	ctx.Set(session.CtxSessionKey, sess)
	return sess, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, _ := ctx.Get(session.CtxSessionKey)
	sess, ok := val.(session.Session)
	if !ok {
		return nil, ErrNoSession
	}
	return sess, nil
}

// Destroy gin.Context 不能删除 key，只能覆盖成 nil
func (s *SessionProvider) Destroy(ctx *gctx.Context) error {
	sess, err := s.Get(ctx)
	if err != nil {
		return err
	}
	ctx.Set(session.CtxSessionKey, nil)
	return sess.Destroy(ctx)
}

func (s *SessionProvider) UpdateClaims(ctx *gctx.Context, claims session.Claims) error {
	if _, err := s.Get(ctx); err != nil {
		return err
	}
	ctx.Set(session.CtxSessionKey, session.NewMemorySession(claims))
	return nil
}

func (s *SessionProvider) RenewAccessToken(ctx *gctx.Context) error {
	_, err := s.Get(ctx)
	return err
}

// LoginAs 模拟 uid 已经登录
func LoginAs(uid int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		_, _ = session.NewSession(&gctx.Context{Context: ctx}, uid, nil, nil)
	}
}
