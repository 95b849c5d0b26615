package washer

import (
	"net/http"
	"washly/infras/otel"
	"washly/internal/domains/washer/model/dto"
	"washly/internal/domains/washer/service"
	"washly/shared/constant"
	gDto "washly/shared/dto"
	"washly/shared/failure"
	"washly/shared/validator"
	"washly/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Washer
	otel    otel.Otel
}

func New(service service.Washer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/washers", func(routerGroup chi.Router) {
		routerGroup.Post("/register", handler.RegisterWasher)
		routerGroup.Get("/profile", handler.GetProfile)
		routerGroup.Get("/", handler.GetWashers)
		routerGroup.Patch("/profile", handler.UpdateProfile)
		routerGroup.Post("/kyc/photo", handler.UploadKYCPhoto)
		routerGroup.Patch("/kyc/review/{id}", handler.ReviewKYC)
	})
}

func userFromContext(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := r.Context().Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return "", false
	}

	return userID, true
}

// RegisterWasher creates a washer profile for the caller.
// @Summary Register as a washer
// @Tags Washer
// @Accept json
// @Produce json
// @Param request body dto.CreateWasherRequest true "Create Washer Request"
// @Success 201 {object} response.Message "Washer registered successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/washers/register [post]
// @Security BearerAuth
func (handler *Handler) RegisterWasher(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterWasher")
	defer scope.End()

	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	req := dto.CreateWasherRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Register(ctx, req, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register washer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Washer registered successfully for user " + userID)

	response.WithMessage(w, http.StatusCreated, "Washer registered successfully")
}

// GetProfile returns the caller's washer profile.
// @Summary Get my washer profile
// @Tags Washer
// @Produce json
// @Success 200 {object} response.Data[dto.WasherResponse]
// @Failure 404 {object} response.Error
// @Router /v1/washers/profile [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	profile, err := handler.service.GetProfile(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get washer profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Washer profile retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, profile)
}

// GetWashers lists washer profiles.
// @Summary Get all washers
// @Tags Washer
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetWashersResponse]
// @Failure 500 {object} response.Error
// @Router /v1/washers [get]
// @Security BearerAuth
func (handler *Handler) GetWashers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWashers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	washers, err := handler.service.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get washers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Washers retrieved successfully")

	response.WithJSON(w, http.StatusOK, washers)
}

// UpdateProfile updates the caller's washer profile.
// @Summary Update my washer profile
// @Tags Washer
// @Accept json
// @Produce json
// @Param request body dto.UpdateWasherRequest true "Update Washer Request"
// @Success 200 {object} response.Message "Washer profile updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/washers/profile [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	req := dto.UpdateWasherRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update washer profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Washer profile updated successfully for user " + userID)

	response.WithMessage(w, http.StatusOK, "Washer profile updated successfully")
}

// UploadKYCPhoto stores the caller's identity document and resets the review.
// @Summary Upload a KYC photo
// @Tags Washer
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Identity document photo"
// @Success 200 {object} response.Data[dto.UploadKYCPhotoResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/washers/kyc/photo [post]
// @Security BearerAuth
func (handler *Handler) UploadKYCPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadKYCPhoto")
	defer scope.End()

	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded file")

		response.WithError(w, failure.BadRequestFromString("file is required"))

		return
	}
	defer file.Close()

	url, err := handler.service.UploadKYCPhoto(ctx, userID, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload KYC photo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("KYC photo uploaded successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, dto.UploadKYCPhotoResponse{URL: url})
}

// ReviewKYC records an admin decision on a washer's KYC submission.
// @Summary Review a washer's KYC
// @Tags Washer
// @Accept json
// @Produce json
// @Param id path string true "Washer ID"
// @Param request body dto.ReviewKYCRequest true "Review KYC Request"
// @Success 200 {object} response.Message "KYC review recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/washers/kyc/review/{id} [patch]
// @Security BearerAuth
func (handler *Handler) ReviewKYC(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReviewKYC")
	defer scope.End()

	adminID, ok := userFromContext(w, r)
	if !ok {
		return
	}

	washerID := chi.URLParam(r, constant.RequestParamID)

	req := dto.ReviewKYCRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ReviewKYC(ctx, req, washerID, adminID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to review KYC")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("KYC review recorded by admin " + adminID)

	response.WithMessage(w, http.StatusOK, "KYC review recorded successfully")
}
