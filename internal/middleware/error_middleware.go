package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/pkg/apperrors"
	"github.com/campushub/campushub/internal/pkg/auth"
	"github.com/campushub/campushub/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Unrecognized errors
// become a generic 500 so internal details never reach the client.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classifyError(err)

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
	}

	c.JSON(status, dto.NewErrorResponse(detail))
}

func classifyError(err error) (int, *dto.ErrorDetail) {
	// A CustomError carries a request-specific message; the wrapped sentinel
	// still decides the status code.
	message := ""
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		message = custom.Message
	}

	withMessage := func(detail *dto.ErrorDetail) *dto.ErrorDetail {
		if message != "" {
			detail.Message = message
		}
		if custom != nil && custom.Details != nil {
			detail.WithDetails(custom.Details)
		}
		return detail
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest,
			withMessage(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed"))

	case errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token has expired")

	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenNotFound),
		errors.Is(err, apperrors.ErrTokenRevoked),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidFormat):
		return http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid or revoked token")

	case errors.Is(err, apperrors.ErrAccountDisabled):
		return http.StatusForbidden,
			dto.NewErrorDetail(dto.ErrorCodeAccountDisabled, "Account is disabled")

	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden,
			withMessage(dto.NewErrorDetail(dto.ErrorCodeForbidden,
				"You do not have permission to perform this action"))

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrCategoryNotFound),
		errors.Is(err, apperrors.ErrRegistrationAbsent),
		errors.Is(err, apperrors.ErrAnnouncementNotFound),
		errors.Is(err, apperrors.ErrFavoriteNotFound),
		errors.Is(err, apperrors.ErrNotificationNotFound):
		return http.StatusNotFound,
			withMessage(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrUIDAlreadyExists),
		errors.Is(err, apperrors.ErrFavoriteExists),
		errors.Is(err, apperrors.ErrAlreadyRegistered):
		return http.StatusConflict,
			withMessage(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()))

	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrEventFull),
		errors.Is(err, apperrors.ErrEventNotApproved),
		errors.Is(err, apperrors.ErrEventNotPending),
		errors.Is(err, apperrors.ErrEventRejected),
		errors.Is(err, apperrors.ErrUserHasEvents):
		return http.StatusConflict,
			withMessage(dto.NewErrorDetail(dto.ErrorCodeConflict, err.Error()))

	default:
		return http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An unexpected error occurred").
				WithSeverity(dto.ErrorSeverityCritical)
	}
}
