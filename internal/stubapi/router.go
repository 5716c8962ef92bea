package stubapi

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// Router wires the stub endpoints. CORS is open because the real gateway
// sits in front of a browser app.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), cors.Default())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := router.Group("/", s.authMiddleware())
	authed.GET("/products", s.listProducts)
	authed.GET("/profile", s.getProfile)
	authed.PUT("/profile", s.updateProfile)
	authed.GET("/orders", s.listOrders)
	authed.POST("/orders", s.createOrder)

	return router
}

func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "missing bearer token"})
			return
		}
		user, ok := s.lookupSession(strings.TrimSpace(token))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid token"})
			return
		}
		c.Set(claimsKey, user)
		c.Next()
	}
}

func currentClaims(c *gin.Context) claims {
	v, _ := c.Get(claimsKey)
	user, _ := v.(claims)
	return user
}
