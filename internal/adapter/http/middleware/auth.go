package middleware

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"time"

	"letterpress_ops/internal/config"
	"letterpress_ops/internal/domain/entities"
	"letterpress_ops/pkg"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"

	// HeaderRole is read instead of a token when AUTH_DISABLED=true.
	HeaderRole = "X-Role"
)

// CustomClaims carries the application role issued by Auth0. The role is
// added to the token by a login action under either claim name.
type CustomClaims struct {
	Role           string `json:"role"`
	NamespacedRole string `json:"https://letterpress/role"`
}

func (c CustomClaims) Validate(ctx context.Context) error {
	return nil
}

// AppRole returns the parsed role, preferring the plain claim.
func (c CustomClaims) AppRole() entities.Role {
	if c.Role != "" {
		return entities.ParseRole(c.Role)
	}
	return entities.ParseRole(c.NamespacedRole)
}

// Authenticate validates the bearer token and stores the caller's id and role
// in the gin context.
func Authenticate(cfg *config.Config) gin.HandlerFunc {
	if cfg.AuthDisabled {
		log.Printf("[auth][middleware] authentication disabled, trusting %s header", HeaderRole)
		return headerRole
	}

	issuerURL, err := url.Parse("https://" + cfg.Auth0Domain + "/")
	if err != nil {
		log.Fatalf("Failed to parse the issuer url: %v", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)

	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{cfg.Auth0Audience},
		validator.WithCustomClaims(
			func() validator.CustomClaims {
				return &CustomClaims{}
			},
		),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		log.Fatalf("Failed to set up the jwt validator: %v", err)
	}

	return tokenAuth(jwtValidator.ValidateToken)
}

func tokenAuth(validate jwtmiddleware.ValidateToken) gin.HandlerFunc {
	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		log.Printf("[auth][middleware] invalid token err=%v", err)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		if _, writeErr := w.Write([]byte(`{"error":{"code":"INVALID_TOKEN","message":"Failed to validate JWT."}}`)); writeErr != nil {
			log.Printf("[auth][middleware] failed to write error response err=%v", writeErr)
		}
	}

	mw := jwtmiddleware.New(
		validate,
		jwtmiddleware.WithErrorHandler(errorHandler),
	)

	return func(c *gin.Context) {
		passed := false
		var handler http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			token := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)

			c.Set(ContextUserID, token.RegisteredClaims.Subject)
			if claims, ok := token.CustomClaims.(*CustomClaims); ok {
				c.Set(ContextRole, claims.AppRole())
			}
			c.Request = r
			passed = true
		}

		mw.CheckJWT(handler).ServeHTTP(c.Writer, c.Request)
		if !passed {
			c.Abort()
			return
		}
		c.Next()
	}
}

func headerRole(c *gin.Context) {
	c.Set(ContextUserID, "dev")
	c.Set(ContextRole, entities.ParseRole(c.GetHeader(HeaderRole)))
	c.Next()
}

// GetRole returns the caller's role, or "" when none was resolved.
func GetRole(c *gin.Context) entities.Role {
	v, ok := c.Get(ContextRole)
	if !ok {
		return ""
	}
	role, _ := v.(entities.Role)
	return role
}

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) (string, error) {
	userID, exists := c.Get(ContextUserID)
	if !exists {
		return "", &AuthError{Code: "MISSING_USER_ID", Message: "User ID not found in context"}
	}

	userIDStr, ok := userID.(string)
	if !ok {
		return "", &AuthError{Code: "INVALID_USER_ID", Message: "User ID is not a string"}
	}

	return userIDStr, nil
}

// RequireRole rejects callers whose role is not one of roles.
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetRole(c)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient permissions to access this resource", http.StatusForbidden)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
