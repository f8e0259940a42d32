package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tuffahtayn/delivery-api/config"
	"github.com/tuffahtayn/delivery-api/middleware"
	"github.com/tuffahtayn/delivery-api/models"
	"github.com/tuffahtayn/delivery-api/repository"
)

// AuthController handles the login surface. Credentials are accepted but
// never checked against anything: the prototype's session is defined
// entirely by the selected role and acting entity.
type AuthController struct {
	cfg       *config.Config
	directory *repository.Directory
	logger    *zap.SugaredLogger
}

// NewAuthController wires the auth controller.
func NewAuthController(cfg *config.Config, directory *repository.Directory, logger *zap.SugaredLogger) *AuthController {
	return &AuthController{cfg: cfg, directory: directory, logger: logger}
}

// LoginRequest represents the request body for logging in. Username and
// password are part of the form contract but any submission succeeds.
type LoginRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Role      string `json:"role" binding:"required"`
	StoreID   *uint  `json:"store_id"`
	CourierID *uint  `json:"courier_id"`
}

// Login handles POST /api/v1/auth/login - starts a role-scoped session
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Role must be one of: store, courier, supervisor",
			},
		})
		return
	}

	var actorID uint
	data := gin.H{"role": role}

	switch role {
	case models.RoleStore:
		store, err := a.resolveStore(req.StoreID)
		if err != nil {
			a.failActorLookup(c, err)
			return
		}
		actorID = store.ID
		data["store"] = store
	case models.RoleCourier:
		courier, err := a.resolveCourier(req.CourierID)
		if err != nil {
			a.failActorLookup(c, err)
			return
		}
		actorID = courier.ID
		data["courier"] = courier
	case models.RoleSupervisor:
		// Supervisors act on the whole platform, no entity to resolve.
	}

	token, err := middleware.IssueToken(a.cfg.JWTSecret, role, actorID, a.cfg.SessionTTL)
	if err != nil {
		a.logger.Errorw("Failed to issue session token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "TOKEN_ERROR",
				"message": "Failed to start session",
			},
		})
		return
	}
	data["token"] = token

	a.logger.Infow("Session started", "role", role, "actor_id", actorID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// Logout handles POST /api/v1/auth/logout - ends the session. Tokens are
// stateless, so this only confirms the client-side discard; the session's
// order data stays in memory for the lifetime of the process.
func (a *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out",
	})
}

func (a *AuthController) resolveStore(id *uint) (models.Store, error) {
	if id != nil {
		return a.directory.FindStore(*id)
	}
	return a.directory.DefaultStore()
}

func (a *AuthController) resolveCourier(id *uint) (models.Courier, error) {
	if id != nil {
		return a.directory.FindCourier(*id)
	}
	return a.directory.DefaultCourier()
}

func (a *AuthController) failActorLookup(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrStoreNotFound) || errors.Is(err, repository.ErrCourierNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ACTOR_NOT_FOUND",
				"message": "No such store or courier is registered",
			},
		})
		return
	}
	a.logger.Errorw("Failed to resolve login actor", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "DATABASE_ERROR",
			"message": "Failed to resolve the acting entity",
		},
	})
}
