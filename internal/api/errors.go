package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"hostel-management-backend/internal/model"
	"hostel-management-backend/internal/mw"
	"hostel-management-backend/internal/store"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func badRequest(c *gin.Context, field, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Message: message, Field: field})
}

// respondError maps store errors to status codes. Unknown errors are logged
// and reported as 500 without detail.
func (h *Handler) respondError(c *gin.Context, err error) {
	var se *store.Error
	if errors.As(err, &se) {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(se.Kind, store.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(se.Kind, store.ErrConflict):
			status = http.StatusConflict
		case errors.Is(se.Kind, store.ErrNotFound):
			status = http.StatusNotFound
		}
		c.AbortWithStatusJSON(status, errorResponse{Message: se.Message, Field: se.Field})
		return
	}

	h.logger.Printf("[%s] %s %s: %v", mw.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Message: "internal server error"})
}

// bind decodes the JSON body into req and writes a 400 when it does not fit.
func bind(c *gin.Context, req any) bool {
	return bindResult(c, c.ShouldBindJSON(req))
}

// bindOptional is bind for endpoints that accept an empty body, whether it
// arrives with a zero Content-Length or as an empty chunked stream.
func bindOptional(c *gin.Context, req any) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	err := c.ShouldBindJSON(req)
	if errors.Is(err, io.EOF) {
		return true
	}
	return bindResult(c, err)
}

func bindResult(c *gin.Context, err error) bool {
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &verrs) && len(verrs) > 0:
		fe := verrs[0]
		badRequest(c, fe.Field(), describe(fe))
	case errors.As(err, &typeErr):
		badRequest(c, typeErr.Field, describeType(typeErr))
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		badRequest(c, "", "request body must be valid JSON")
	default:
		badRequest(c, "", err.Error())
	}
	return false
}

var (
	decimalType = reflect.TypeOf(decimal.Decimal{})
	dateType    = reflect.TypeOf(model.Date{})
)

func describeType(err *json.UnmarshalTypeError) string {
	switch err.Type {
	case decimalType:
		return err.Field + " must be a decimal number"
	case dateType:
		return err.Field + " must be a date in " + model.DateLayout + " format"
	default:
		return err.Field + " has the wrong type"
	}
}

// money is a decimal request field. Decode failures surface as
// *json.UnmarshalTypeError so the decoder attaches the field name.
type money struct {
	decimal.Decimal
}

func (m *money) UnmarshalJSON(b []byte) error {
	if err := m.Decimal.UnmarshalJSON(b); err != nil {
		return &json.UnmarshalTypeError{Value: string(b), Type: decimalType}
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return fe.Field() + " must be a valid email address"
	default:
		return fe.Field() + " is invalid"
	}
}

// idParam reads a positive numeric path parameter.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		badRequest(c, name, "invalid "+name)
		return 0, false
	}
	return id, true
}

// optionalIDQuery reads an optional positive numeric query parameter.
func optionalIDQuery(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		badRequest(c, name, "invalid "+name)
		return nil, false
	}
	return &id, true
}
