package http

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// OpenAPIValidator rejects requests that do not match doc with 400 before they
// reach a handler. Requests for paths the document does not describe, such as
// /health or /metrics, pass through untouched.
func OpenAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	// match on path only; the document's server URLs are deployment specific
	doc.Servers = nil

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if isUndescribed(err) {
				return next(ctx)
			}
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}

			err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}

			return next(ctx)
		}
	}, nil
}

// isUndescribed reports whether FindRoute failed because doc has no operation
// for the request. The router returns fresh RouteError values, so they are
// matched by reason.
func isUndescribed(err error) bool {
	var routeErr *routers.RouteError
	if !errors.As(err, &routeErr) {
		return false
	}
	return routeErr.Reason == routers.ErrPathNotFound.Error() ||
		routeErr.Reason == routers.ErrMethodNotAllowed.Error()
}

// RequestValidator implements echo.Validator with go-playground/validator.
// It checks the validate tags of the request body types.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator for request bodies.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate returns a 400 HTTP error describing the first failed rule.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return echo.NewHTTPError(http.StatusBadRequest,
				"Invalid field "+first.Field()+": failed "+first.Tag()+" "+first.Param())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
