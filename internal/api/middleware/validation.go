package middleware

import (
	stderrors "errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"lucidscript/internal/api/errors"
)

// Validator is implemented by requests with rules beyond struct tags.
type Validator interface {
	Validate() error
}

// ValidateRequest binds a JSON body and runs tag and domain validation.
func ValidateRequest(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return bindingError(err, "request", "invalid JSON format")
	}
	return validateDomain(req)
}

// ValidateQuery binds query parameters.
func ValidateQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return bindingError(err, "query", "invalid query parameters")
		}
		return errors.NewBadRequestError("Invalid query parameters")
	}
	return validateDomain(req)
}

// ValidateForm binds multipart or urlencoded form fields.
func ValidateForm(c *gin.Context, req interface{}) error {
	if err := c.ShouldBind(req); err != nil {
		if isTooLarge(err) {
			return &errors.APIError{Kind: errors.KindPayloadTooLarge, Message: "Request body too large"}
		}
		return bindingError(err, "form", "invalid form data")
	}
	return validateDomain(req)
}

func bindingError(err error, fallbackField, fallbackMsg string) error {
	details := make(map[string]string)

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrs {
			field := toSnake(fieldError.Field())

			switch fieldError.Tag() {
			case "required":
				details[field] = "is required"
			case "min", "gte":
				details[field] = "is too small"
			case "max", "lte":
				details[field] = "is too large"
			case "oneof":
				details[field] = "must be one of the allowed values"
			default:
				details[field] = "is invalid"
			}
		}
	} else {
		details[fallbackField] = fallbackMsg
	}

	return errors.NewValidationError("Validation failed", details)
}

func validateDomain(req interface{}) error {
	if v, ok := req.(Validator); ok {
		return v.Validate()
	}
	return nil
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if stderrors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}

// toSnake turns a Go field name such as RawText into raw_text.
func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// RequireFormFile returns the named multipart file. A missing file is a
// validation error and an oversized body is a 413.
func RequireFormFile(c *gin.Context, name string) (*multipart.FileHeader, error) {
	file, err := c.FormFile(name)
	if err == nil {
		return file, nil
	}
	if isTooLarge(err) {
		return nil, &errors.APIError{Kind: errors.KindPayloadTooLarge, Message: "Request body too large"}
	}
	return nil, errors.NewValidationError("Validation failed", map[string]string{name: "is required"})
}
