package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"gamestore/internal/core/application/usecases/queries"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// requestValidator runs the struct tags of request bodies.
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *requestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fmt.Sprintf("%s: failed on the %q rule", fe.Field(), fe.Tag()))
	}
	return errs.NewValidationError(messages...)
}

// jsonSerializer swaps encoding/json for json-iterator in echo.
type jsonSerializer struct {
	api jsoniter.API
}

func (s jsonSerializer) Serialize(c echo.Context, i any, indent string) error {
	enc := s.api.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (s jsonSerializer) Deserialize(c echo.Context, i any) error {
	err := s.api.NewDecoder(c.Request().Body).Decode(i)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}
	return nil
}

// bind decodes and validates a request body.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return errs.NewValidationError("invalid request body")
		}
		return err
	}
	return c.Validate(req)
}

func pathID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValidationError(name + " is not a valid uuid")
	}
	return id, nil
}

func pagingParams(c echo.Context) (queries.Paging, error) {
	page, size := 1, queries.DefaultPageSize
	err := echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("size", &size).
		BindError()
	if err != nil {
		return queries.Paging{}, errs.NewValidationError("page and size must be integers")
	}
	return queries.NewPaging(page, size)
}

func optionalString(c echo.Context, name string) *string {
	if v := c.QueryParam(name); v != "" {
		return &v
	}
	return nil
}

func optionalBool(c echo.Context, name string) (*bool, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return nil, errs.NewValidationError(name + " must be true or false")
	}
	return &parsed, nil
}

func optionalDecimal(c echo.Context, name string) (*decimal.Decimal, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	parsed, err := decimal.NewFromString(v)
	if err != nil {
		return nil, errs.NewValidationError(name + " must be a decimal number")
	}
	return &parsed, nil
}

func optionalUUID(c echo.Context, name string) (*kernel.UUID, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromString(v)
	if err != nil {
		return nil, errs.NewValidationError(name + " is not a valid uuid")
	}
	return &parsed, nil
}
