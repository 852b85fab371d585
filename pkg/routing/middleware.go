package routing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jawwad-codes/BizTrackr-sub001/pkg/auth"
	"github.com/Jawwad-codes/BizTrackr-sub001/pkg/logger"
)

const loginPath = "/login"

// ClassificationKey is the gin context key holding the request's route
// classification
const ClassificationKey = "route_class"

// Middleware creates the routing filter. It classifies every inbound
// path and forwards it; under PolicyEnforced, protected paths without a
// resolvable identity are redirected to the login page instead.
func Middleware(classifier *Classifier, policy AuthorizationPolicy, resolver auth.Resolver, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if ShouldSkip(path) {
			c.Next()
			return
		}

		class := classifier.Classify(path)
		c.Set(ClassificationKey, class)

		if class == ClassificationProtected && policy == PolicyEnforced {
			user, err := resolver.Resolve(c.Request)
			if err != nil {
				log.Error("Identity resolution failed on protected path",
					"path", path,
					"error", err)
			}
			if user == nil {
				log.Info("Redirecting unauthenticated request",
					"path", path,
					"classification", class.String())
				c.Redirect(http.StatusTemporaryRedirect, loginPath)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
