package handlers

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/carbazaar/admin-gateway/internal/audit"
	"github.com/carbazaar/admin-gateway/internal/backend"
	"github.com/carbazaar/admin-gateway/internal/carform"
	"github.com/carbazaar/admin-gateway/internal/middleware"
	"github.com/carbazaar/admin-gateway/internal/models"
	"github.com/carbazaar/admin-gateway/internal/validation"
)

// CarsHandler owns the one panel with real payload complexity: the flat
// ~90-field form becomes a deeply nested wire payload, and media can arrive
// either as direct URLs or as uploaded files. File uploads run as a second
// multipart call scoped to the id the primary call returned; a media failure
// after a successful primary call is surfaced but never rolled back.
type CarsHandler struct {
	apiClient *backend.Client
	panels    *PanelHandler
}

func NewCarsHandler(apiClient *backend.Client, panels *PanelHandler) *CarsHandler {
	return &CarsHandler{
		apiClient: apiClient,
		panels:    panels,
	}
}

// carSubmission is one parsed create/edit request: the flat form plus any
// uploaded media.
type carSubmission struct {
	form       carform.Form
	images     []mediaUpload
	reportFile *backend.FilePart
}

type mediaUpload struct {
	file            backend.FilePart
	viewType        string
	galleryCategory string
	kind            string
}

func (s *carSubmission) hasFileUploads() bool {
	return len(s.images) > 0 || s.reportFile != nil
}

func (s *carSubmission) hasMediaURLs() bool {
	return s.form.PrimaryImageURL != "" && s.form.InspectionReportURL != ""
}

func readFilePart(field string, header *multipart.FileHeader) (backend.FilePart, error) {
	file, err := header.Open()
	if err != nil {
		return backend.FilePart{}, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return backend.FilePart{}, err
	}

	return backend.FilePart{
		Field:    field,
		Filename: header.Filename,
		Content:  content,
	}, nil
}

// parseSubmission accepts either a plain JSON form or multipart/form-data
// with a "form" JSON field plus "images" and "inspection_report" file parts.
func parseSubmission(c *fiber.Ctx) (*carSubmission, error) {
	submission := &carSubmission{}

	multipartForm, err := c.MultipartForm()
	if err != nil {
		// Not multipart: the body is the JSON form itself.
		if err := c.BodyParser(&submission.form); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		return submission, nil
	}

	formValues := multipartForm.Value["form"]
	if len(formValues) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Missing form field")
	}
	if err := json.Unmarshal([]byte(formValues[0]), &submission.form); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid form field")
	}

	firstValue := func(key string) string {
		values := multipartForm.Value[key]
		if len(values) == 0 {
			return ""
		}
		return values[0]
	}

	for i, header := range multipartForm.File["images"] {
		part, err := readFilePart("images", header)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Unreadable image upload")
		}
		index := strconv.Itoa(i)
		submission.images = append(submission.images, mediaUpload{
			file:            part,
			viewType:        firstValue("images_view_type_" + index),
			galleryCategory: firstValue("images_gallery_category_" + index),
			kind:            firstValue("images_kind_" + index),
		})
	}

	if reports := multipartForm.File["inspection_report"]; len(reports) > 0 {
		part, err := readFilePart("inspection_report", reports[0])
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Unreadable inspection report upload")
		}
		submission.reportFile = &part
	}

	return submission, nil
}

func validateCarForm(f carform.Form) error {
	if err := validation.ValidateStruct(f); err != nil {
		return err
	}

	checks := []struct {
		field   string
		value   string
		allowed []string
	}{
		{"status", f.Status, models.CarStatuses},
		{"visibility", f.Visibility, models.CarVisibilities},
		{"fuel_type", f.FuelType, models.FuelTypes},
		{"transmission", f.Transmission, models.Transmissions},
		{"body_type", f.BodyType, models.BodyTypes},
		{"ownership", f.Ownership, models.Ownerships},
		{"insurance_type", f.InsuranceType, models.InsuranceTypes},
		{"drivetrain", f.Drivetrain, models.Drivetrains},
		{"tyre_condition", f.TyreCondition, models.TyreConditions},
		{"media_view_type", f.MediaViewType, models.MediaViewTypes},
		{"media_gallery_category", f.MediaGalleryCategory, models.MediaGalleryCategories},
		{"inspection_report_type", f.InspectionReportType, models.MediaReportTypes},
	}
	for _, check := range checks {
		if err := validation.OneOf(check.field, check.value, check.allowed); err != nil {
			return err
		}
	}
	return nil
}

// mediaFields produces the indexed multipart metadata the backend expects.
// The kind field is only written for gallery images, mirroring the admin
// form's behavior.
func mediaFields(images []mediaUpload) ([]backend.FilePart, [][2]string) {
	files := make([]backend.FilePart, 0, len(images))
	fields := make([][2]string, 0, len(images)*3)

	for i, image := range images {
		files = append(files, image.file)
		index := strconv.Itoa(i)

		viewType := image.viewType
		if viewType == "" {
			viewType = "gallery"
		}
		galleryCategory := image.galleryCategory
		if galleryCategory == "" {
			galleryCategory = image.kind
		}
		if galleryCategory == "" {
			galleryCategory = "other"
		}

		fields = append(fields, [2]string{"images_view_type_" + index, viewType})
		fields = append(fields, [2]string{"images_gallery_category_" + index, galleryCategory})
		if viewType == "gallery" {
			kind := image.kind
			if kind == "" {
				kind = image.galleryCategory
			}
			if kind == "" {
				kind = "other"
			}
			fields = append(fields, [2]string{"images_kind_" + index, kind})
		}
	}
	return files, fields
}

func (h *CarsHandler) uploadMedia(c *fiber.Ctx, token, carID string, submission *carSubmission) (map[string]any, error) {
	files, fields := mediaFields(submission.images)
	if submission.reportFile != nil {
		files = append(files, *submission.reportFile)
	}

	var out map[string]any
	err := h.apiClient.PostMultipart(c.Context(), "/cars/"+carID+"/media", token, files, fields, &out)
	return out, err
}

// Create runs the two-phase flow: primary JSON create, then the media upload
// scoped to the returned car_id when files were attached.
func (h *CarsHandler) Create(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	submission, err := parseSubmission(c)
	if err != nil {
		return err
	}

	if err := validateCarForm(submission.form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !submission.hasFileUploads() && !submission.hasMediaURLs() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Provide media URLs or upload files in Media section.",
		})
	}

	payload := carform.Build(submission.form)
	if submission.hasFileUploads() {
		payload = carform.WithPlaceholderMedia(payload, submission.form)
	}

	claims := middleware.ClaimsFromCtx(c)
	controller := h.panels.panels.Get(claims.SessionID).Cars

	created, err := controller.Create(c.Context(), sess.Token, payload)
	if err != nil {
		h.panels.record(c, "cars", "create", "", audit.OutcomeFailure, backend.ErrorMessage(err, ""))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": backend.ErrorMessage(err, "Failed to create car."),
		})
	}

	if !submission.hasFileUploads() {
		h.panels.record(c, "cars", "create", created.CarID, audit.OutcomeSuccess, "")
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"created_car":  created,
			"media_upload": nil,
		})
	}

	mediaResult, err := h.uploadMedia(c, sess.Token, created.CarID, submission)
	if err != nil {
		// The listing exists; only its media is missing. Not rolled back.
		h.panels.record(c, "cars", "create", created.CarID, audit.OutcomePartial, backend.ErrorMessage(err, ""))
		log.Warn().Str("car_id", created.CarID).Err(err).Msg("media upload failed after car create")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":       backend.ErrorMessage(err, "Car created but media upload failed."),
			"partial":     true,
			"created_car": created,
		})
	}

	h.panels.record(c, "cars", "create", created.CarID, audit.OutcomeSuccess, "")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"created_car":  created,
		"media_upload": mediaResult,
	})
}

// Update applies the same transform-and-submit flow against the update
// endpoint, then the optional media upload.
func (h *CarsHandler) Update(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	carID := c.Params("id")

	submission, err := parseSubmission(c)
	if err != nil {
		return err
	}

	if err := validateCarForm(submission.form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	payload := carform.Build(submission.form)
	if submission.hasFileUploads() {
		payload = carform.WithPlaceholderMedia(payload, submission.form)
	}

	claims := middleware.ClaimsFromCtx(c)
	controller := h.panels.panels.Get(claims.SessionID).Cars

	updated, err := controller.Update(c.Context(), sess.Token, carID, payload)
	if err != nil {
		h.panels.record(c, "cars", "update", carID, audit.OutcomeFailure, backend.ErrorMessage(err, ""))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": backend.ErrorMessage(err, "Failed to update car."),
		})
	}

	if !submission.hasFileUploads() {
		h.panels.record(c, "cars", "update", carID, audit.OutcomeSuccess, "")
		return c.JSON(fiber.Map{
			"updated_car":  updated,
			"media_upload": nil,
		})
	}

	mediaResult, err := h.uploadMedia(c, sess.Token, carID, submission)
	if err != nil {
		h.panels.record(c, "cars", "update", carID, audit.OutcomePartial, backend.ErrorMessage(err, ""))
		log.Warn().Str("car_id", carID).Err(err).Msg("media upload failed after car update")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":       backend.ErrorMessage(err, "Car updated but media upload failed."),
			"partial":     true,
			"updated_car": updated,
		})
	}

	h.panels.record(c, "cars", "update", carID, audit.OutcomeSuccess, "")
	return c.JSON(fiber.Map{
		"updated_car":  updated,
		"media_upload": mediaResult,
	})
}

// EditForm returns the full record mapped back onto the flat edit form, so
// the shell can prefill without duplicating the inverse mapping.
func (h *CarsHandler) EditForm(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	claims := middleware.ClaimsFromCtx(c)
	controller := h.panels.panels.Get(claims.SessionID).Cars

	car, err := controller.Detail(c.Context(), sess.Token, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": backend.ErrorMessage(err, "Failed to load car details."),
		})
	}

	return c.JSON(fiber.Map{
		"car":  car,
		"form": carform.FormFromCar(car),
	})
}
