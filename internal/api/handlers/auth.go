package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/carbazaar/admin-gateway/internal/audit"
	"github.com/carbazaar/admin-gateway/internal/backend"
	"github.com/carbazaar/admin-gateway/internal/middleware"
	"github.com/carbazaar/admin-gateway/internal/models"
	"github.com/carbazaar/admin-gateway/internal/panel"
	"github.com/carbazaar/admin-gateway/internal/session"
	"github.com/carbazaar/admin-gateway/internal/validation"
)

// AuthHandler drives the authorization gate: login against the marketplace
// backend, the admin-role check, session persistence, profile re-sync, and
// logout.
type AuthHandler struct {
	authClient *backend.Client
	sessions   *session.Manager
	panels     *panel.Registry
	recorder   audit.Recorder
	jwtSecret  string
	sessionTTL time.Duration
}

func NewAuthHandler(authClient *backend.Client, sessions *session.Manager, panels *panel.Registry, recorder audit.Recorder, jwtSecret string, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authClient: authClient,
		sessions:   sessions,
		panels:     panels,
		recorder:   recorder,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
	}
}

func (h *AuthHandler) record(c *fiber.Ctx, entry audit.Entry) {
	if err := h.recorder.Record(c.Context(), entry); err != nil {
		log.Warn().Err(err).Str("entity", entry.Entity).Msg("failed to record audit entry")
	}
}

// Login exchanges admin credentials for a gateway session. A valid credential
// with a non-admin role is discarded client-side: nothing is persisted and
// the caller stays unauthenticated.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
			"state": session.Unauthenticated,
		})
	}

	if err := validation.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
			"state": session.Unauthenticated,
		})
	}

	state, _ := session.Transition(session.Unauthenticated, session.Authenticating)

	var loginResp models.LoginResponse
	if err := h.authClient.PostJSON(c.Context(), "/auth/login", "", req, &loginResp); err != nil {
		state, _ = session.Transition(state, session.Unauthenticated)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": backend.ErrorMessage(err, "Unable to login. Please try again."),
			"state": state,
		})
	}

	if loginResp.Token == "" || loginResp.User.Email == "" {
		state, _ = session.Transition(state, session.Unauthenticated)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Unexpected login response",
			"state": state,
		})
	}

	if !session.IsAdminRole(loginResp.User.Role) {
		state, _ = session.Transition(state, session.Unauthenticated)
		h.record(c, audit.Entry{
			ActorEmail: req.Email,
			Entity:     "session",
			Action:     "login",
			Outcome:    audit.OutcomeFailure,
			Message:    "access denied for role " + loginResp.User.Role,
		})
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Access denied. Only admin or administrator can use this panel.",
			"state": state,
		})
	}

	state, _ = session.Transition(state, session.Authorized)

	sessionID := uuid.New().String()
	h.sessions.Persist(c.Context(), sessionID, models.Session{
		Token: loginResp.Token,
		User:  loginResp.User,
	})

	gatewayToken, err := h.generateToken(sessionID, loginResp.User)
	if err != nil {
		h.sessions.Clear(c.Context(), sessionID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
			"state": session.Unauthenticated,
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    gatewayToken,
		Expires:  time.Now().Add(h.sessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	h.record(c, audit.Entry{
		ActorEmail: loginResp.User.Email,
		Entity:     "session",
		Action:     "login",
		Outcome:    audit.OutcomeSuccess,
	})

	log.Info().Str("email", loginResp.User.Email).Msg("administrator signed in")

	return c.JSON(fiber.Map{
		"token": gatewayToken,
		"user":  loginResp.User,
		"state": state,
	})
}

func (h *AuthHandler) generateToken(sessionID string, user models.AdminUser) (string, error) {
	claims := models.Claims{
		SessionID: sessionID,
		Email:     user.Email,
		Role:      user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(h.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}

// Session re-validates the persisted session against the backend profile
// endpoint. The shell calls this on every mount of the authenticated area.
// A rejected sync or a downgraded role expires the session immediately.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)
	sess := middleware.SessionFromCtx(c)

	var profile models.AdminUser
	if err := h.authClient.GetJSON(c.Context(), "/profile", sess.Token, nil, &profile); err != nil {
		return h.expire(c, claims, backend.ErrorMessage(err, "Session expired, please sign in again."))
	}

	if !session.IsAdminRole(profile.Role) {
		return h.expire(c, claims, "Access revoked: administrator role required.")
	}

	h.sessions.RefreshUser(c.Context(), claims.SessionID, profile)

	return c.JSON(fiber.Map{
		"user":  profile,
		"state": session.Authorized,
	})
}

func (h *AuthHandler) expire(c *fiber.Ctx, claims *models.Claims, message string) error {
	state, _ := session.Transition(session.Authorized, session.Expired)
	h.sessions.Clear(c.Context(), claims.SessionID)
	h.panels.Drop(claims.SessionID)
	c.ClearCookie(middleware.SessionCookie)

	h.record(c, audit.Entry{
		ActorEmail: claims.Email,
		Entity:     "session",
		Action:     "expire",
		Outcome:    audit.OutcomeFailure,
		Message:    message,
	})

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
		"state": state,
	})
}

// Logout destroys the session. Idempotent from the caller's point of view.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)

	state, _ := session.Transition(session.Authorized, session.LoggedOut)
	h.sessions.Clear(c.Context(), claims.SessionID)
	h.panels.Drop(claims.SessionID)
	c.ClearCookie(middleware.SessionCookie)

	h.record(c, audit.Entry{
		ActorEmail: claims.Email,
		Entity:     "session",
		Action:     "logout",
		Outcome:    audit.OutcomeSuccess,
	})

	return c.JSON(fiber.Map{
		"status": "logged_out",
		"state":  state,
	})
}

// SendOTP forwards an OTP issue request to the backend on behalf of the admin.
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	return h.forwardOTP(c, "/auth/send-otp")
}

// VerifyOTP forwards an OTP verification to the backend.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	return h.forwardOTP(c, "/auth/verify-otp")
}

func (h *AuthHandler) forwardOTP(c *fiber.Ctx, path string) error {
	sess := middleware.SessionFromCtx(c)

	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var out map[string]any
	if err := h.authClient.PostJSON(c.Context(), path, sess.Token, body, &out); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": backend.ErrorMessage(err, "OTP request failed."),
		})
	}
	return c.JSON(out)
}
