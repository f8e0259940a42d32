package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/tuffahtayn/delivery-api/models"
)

// SessionClaims is the payload of a session token: the active role and the
// id of the store or courier acting under it (zero for supervisors).
type SessionClaims struct {
	Role    models.Role `json:"role"`
	ActorID uint        `json:"actor_id"`
	jwt.RegisteredClaims
}

// IssueToken signs a session token for the given role and actor.
func IssueToken(secret string, role models.Role, actorID uint, ttl time.Duration) (string, error) {
	claims := SessionClaims{
		Role:    role,
		ActorID: actorID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// EnsureValidToken is a middleware that will check the validity of the
// session token and store its claims in the Gin context.
func EnsureValidToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			abortUnauthorized(c, "Missing bearer token")
			return
		}

		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid || !claims.Role.Valid() {
			abortUnauthorized(c, "Failed to validate session token")
			return
		}

		c.Set("session_role", claims.Role)
		c.Set("actor_id", claims.ActorID)
		c.Next()
	}
}

// RequireRole rejects sessions whose role does not match the route's role.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		active, err := GetRole(c)
		if err != nil || active != role {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "This action is not available to the active role",
				},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetRole extracts the session role from the Gin context.
func GetRole(c *gin.Context) (models.Role, error) {
	v, exists := c.Get("session_role")
	if !exists {
		return "", &AuthError{Code: "MISSING_ROLE", Message: "Role not found in context"}
	}
	role, ok := v.(models.Role)
	if !ok {
		return "", &AuthError{Code: "INVALID_ROLE", Message: "Role is not in the expected format"}
	}
	return role, nil
}

// GetActorID extracts the acting store or courier id from the Gin context.
func GetActorID(c *gin.Context) (uint, error) {
	v, exists := c.Get("actor_id")
	if !exists {
		return 0, &AuthError{Code: "MISSING_ACTOR_ID", Message: "Actor ID not found in context"}
	}
	id, ok := v.(uint)
	if !ok {
		return 0, &AuthError{Code: "INVALID_ACTOR_ID", Message: "Actor ID is not in the expected format"}
	}
	return id, nil
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "INVALID_TOKEN",
			"message": message,
		},
	})
	c.Abort()
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
