package httpserver

import (
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avekshin/microfeed/internal/token"
)

const claimsKey = "mf.claims"

// claimsFrom returns the claims the auth middleware stored, or nil on public
// routes and unauthenticated requests.
func claimsFrom(c *gin.Context) *token.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	cl, ok := v.(*token.Claims)
	if !ok {
		return nil
	}
	return cl
}

// authenticate extracts the bearer token, parses the claim and stores it in
// the request context. Missing or invalid tokens abort with 401.
func (s *Server) authenticate(c *gin.Context) {
	tok, err := token.BearerToken(c.GetHeader("Authorization"))
	if err != nil {
		s.abortError(c, err)
		return
	}
	cl, err := s.codec.Parse(tok)
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.Set(claimsKey, cl)
	c.Next()
}

// logging emits one structured line per request; only metadata, no payloads.
func (s *Server) logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("dur", time.Since(start)),
			zap.String("peer", c.ClientIP()),
		)
	}
}

// recovery converts panics into plain 500s without leaking internals.
func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("panic",
					zap.Any("reason", r),
					zap.ByteString("stack", debug.Stack()),
					zap.String("path", c.FullPath()),
				)
				c.AbortWithStatusJSON(500, gin.H{"detail": "Internal server error"})
			}
		}()
		c.Next()
	}
}
