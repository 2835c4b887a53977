package handlers

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/carbazaar/admin-gateway/internal/audit"
	"github.com/carbazaar/admin-gateway/internal/backend"
	"github.com/carbazaar/admin-gateway/internal/middleware"
	"github.com/carbazaar/admin-gateway/internal/models"
	"github.com/carbazaar/admin-gateway/internal/panel"
)

// PanelHandler exposes the generic resource-panel contract over HTTP: list
// with filters, create, edit, delete with confirmation, and detail view. Each
// entity shares the exact same interaction shape; only its endpoint path,
// update verb, and required fields differ.
type PanelHandler struct {
	apiClient *backend.Client
	panels    *panel.Registry
	recorder  audit.Recorder
}

func NewPanelHandler(apiClient *backend.Client, panels *panel.Registry, recorder audit.Recorder) *PanelHandler {
	return &PanelHandler{
		apiClient: apiClient,
		panels:    panels,
		recorder:  recorder,
	}
}

func (h *PanelHandler) record(c *fiber.Ctx, entity, action, recordID string, outcome audit.Outcome, message string) {
	claims := middleware.ClaimsFromCtx(c)
	actor := ""
	if claims != nil {
		actor = claims.Email
	}
	err := h.recorder.Record(c.Context(), audit.Entry{
		ActorEmail: actor,
		Entity:     entity,
		Action:     action,
		RecordID:   recordID,
		Outcome:    outcome,
		Message:    message,
	})
	if err != nil {
		log.Warn().Err(err).Str("entity", entity).Msg("failed to record audit entry")
	}
}

func queryFilters(c *fiber.Ctx) url.Values {
	filters := url.Values{}
	for key, value := range c.Queries() {
		filters.Set(key, value)
	}
	return filters
}

// checkRequired enforces the panel's client-side validation: required fields
// must be present and non-empty before any backend call is made.
func checkRequired(body map[string]any, required []string) error {
	for _, field := range required {
		value, exists := body[field]
		if !exists {
			return fmt.Errorf("%s is required", field)
		}
		if text, ok := value.(string); ok && text == "" {
			return fmt.Errorf("%s is required", field)
		}
	}
	return nil
}

// RegisterPanelRoutes wires the uniform operation set for one entity under
// its own route group.
func RegisterPanelRoutes[T any](h *PanelHandler, group fiber.Router, entity string, required []string, pick func(*panel.Set) *panel.Controller[T]) {
	controller := func(c *fiber.Ctx) *panel.Controller[T] {
		claims := middleware.ClaimsFromCtx(c)
		return pick(h.panels.Get(claims.SessionID))
	}

	group.Get("/", func(c *fiber.Ctx) error {
		sess := middleware.SessionFromCtx(c)
		items, err := controller(c).Load(c.Context(), sess.Token, queryFilters(c))
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": backend.ErrorMessage(err, "Failed to load "+entity+"."),
			})
		}
		return c.JSON(fiber.Map{"items": items})
	})

	group.Get("/state", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"items": controller(c).Snapshot()})
	})

	group.Post("/", func(c *fiber.Ctx) error {
		sess := middleware.SessionFromCtx(c)

		var body map[string]any
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
		if err := checkRequired(body, required); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		created, err := controller(c).Create(c.Context(), sess.Token, body)
		if err != nil {
			h.record(c, entity, "create", "", audit.OutcomeFailure, backend.ErrorMessage(err, ""))
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": backend.ErrorMessage(err, "Failed to create "+entity+" record."),
			})
		}

		h.record(c, entity, "create", "", audit.OutcomeSuccess, "")
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	group.Get("/:id", func(c *fiber.Ctx) error {
		sess := middleware.SessionFromCtx(c)
		record, err := controller(c).Detail(c.Context(), sess.Token, c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": backend.ErrorMessage(err, "Failed to load "+entity+" details."),
			})
		}
		return c.JSON(record)
	})

	group.Patch("/:id", func(c *fiber.Ctx) error {
		sess := middleware.SessionFromCtx(c)

		var body map[string]any
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}

		updated, err := controller(c).Update(c.Context(), sess.Token, c.Params("id"), body)
		if err != nil {
			h.record(c, entity, "update", c.Params("id"), audit.OutcomeFailure, backend.ErrorMessage(err, ""))
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": backend.ErrorMessage(err, "Failed to update "+entity+" record."),
			})
		}

		h.record(c, entity, "update", c.Params("id"), audit.OutcomeSuccess, "")
		return c.JSON(updated)
	})

	group.Delete("/:id", func(c *fiber.Ctx) error {
		sess := middleware.SessionFromCtx(c)
		confirmed := c.QueryBool("confirm")

		err := controller(c).Remove(c.Context(), sess.Token, c.Params("id"), confirmed)
		if errors.Is(err, panel.ErrCanceled) {
			h.record(c, entity, "delete", c.Params("id"), audit.OutcomeCanceled, "confirmation declined")
			return c.JSON(fiber.Map{"status": "canceled"})
		}
		if err != nil {
			h.record(c, entity, "delete", c.Params("id"), audit.OutcomeFailure, backend.ErrorMessage(err, ""))
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": backend.ErrorMessage(err, "Failed to delete "+entity+" record."),
			})
		}

		h.record(c, entity, "delete", c.Params("id"), audit.OutcomeSuccess, "")
		return c.JSON(fiber.Map{"status": "deleted"})
	})
}

// FAQCategories proxies the category summary used by the FAQ panel's filter.
func (h *PanelHandler) FAQCategories(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	var out map[string]any
	if err := h.apiClient.GetJSON(c.Context(), "/faqs/categories", sess.Token, nil, &out); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": backend.ErrorMessage(err, "Failed to load FAQ categories."),
		})
	}
	return c.JSON(out)
}

// TestDriveSlots answers availability lookups. Both car_id and date are
// required before the backend is consulted.
func (h *PanelHandler) TestDriveSlots(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	carID := c.Query("car_id")
	date := c.Query("date")
	if carID == "" || date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "car_id and date are required for slots lookup.",
		})
	}

	query := url.Values{}
	query.Set("car_id", carID)
	query.Set("date", date)

	var slots models.TestDriveSlots
	if err := h.apiClient.GetJSON(c.Context(), "/test-drives/slots", sess.Token, query, &slots); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": backend.ErrorMessage(err, "Failed to fetch test drive slots."),
		})
	}
	return c.JSON(slots)
}

// CarTestDrives lists the bookings attached to a single car.
func (h *PanelHandler) CarTestDrives(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	var out map[string]any
	path := "/cars/" + c.Params("id") + "/test-drives"
	if err := h.apiClient.GetJSON(c.Context(), path, sess.Token, nil, &out); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": backend.ErrorMessage(err, "Failed to load test drives for car."),
		})
	}
	return c.JSON(out)
}

// UserRecentCarViews proxies a user's recent listing views for the users
// panel's detail drawer.
func (h *PanelHandler) UserRecentCarViews(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	path := "/users/" + c.Params("id") + "/recent-car-views"
	var out map[string]any
	if err := h.apiClient.GetJSON(c.Context(), path, sess.Token, queryFilters(c), &out); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": backend.ErrorMessage(err, "Failed to load recent car views."),
		})
	}
	return c.JSON(out)
}

// AuditTrail lists the gateway's own recent audit entries.
func (h *PanelHandler) AuditTrail(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	entries, err := h.recorder.ListRecent(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load audit trail",
		})
	}
	return c.JSON(fiber.Map{"items": entries})
}
