package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"warehouse/internal/apierror"
	"warehouse/internal/dto"
	"warehouse/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Field errors are keyed by JSON name.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Decimals are validated through their textual form so the digit checks
	// see the scale the client sent ("1.500" has three places).
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			return decimalText(v)
		}
		return nil
	}, decimal.Decimal{})

	_ = validate.RegisterValidation("maxdigits", digitLimit(func(whole, places int) int { return whole + places }))
	_ = validate.RegisterValidation("maxplaces", digitLimit(func(_, places int) int { return places }))
	_ = validate.RegisterValidation("maxwhole", digitLimit(func(whole, _ int) int { return whole }))
}

func decimalText(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// splitDigits counts significant whole digits and decimal places of a
// decimal literal.
func splitDigits(s string) (whole, places int) {
	s = strings.TrimLeft(s, "+-")
	intPart, frac, _ := strings.Cut(s, ".")
	intPart = strings.TrimLeft(intPart, "0")
	return len(intPart), len(frac)
}

func digitLimit(count func(whole, places int) int) validator.Func {
	return func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return count(splitDigits(fl.Field().String())) <= limit
	}
}

// fieldMessage renders one validator failure in client-facing wording.
func fieldMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		if isString {
			if fe.Param() == "1" {
				return "This field may not be blank."
			}
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	case "maxdigits":
		return fmt.Sprintf("Ensure that there are no more than %s digits in total.", fe.Param())
	case "maxplaces":
		return fmt.Sprintf("Ensure that there are no more than %s decimal places.", fe.Param())
	case "maxwhole":
		return fmt.Sprintf("Ensure that there are no more than %s digits before the decimal point.", fe.Param())
	default:
		return "Invalid value."
	}
}

// requestBody returns the raw request body, caching it on the context so a
// handler can decode it more than once. An empty body reads as "{}".
func requestBody(c *gin.Context) ([]byte, error) {
	if cached, ok := c.Get(gin.BodyBytesKey); ok {
		if body, ok := cached.([]byte); ok {
			return body, nil
		}
	}
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	c.Set(gin.BodyBytesKey, body)
	return body, nil
}

// bindJSON decodes the JSON body onto req, keeping any values req already
// holds for keys the body omits.
// Returns false and writes the error response if decoding fails.
func bindJSON(c *gin.Context, req interface{}) bool {
	body, err := requestBody(c)
	if err == nil {
		err = binding.JSON.BindBody(body, req)
	}
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		c.JSON(http.StatusBadRequest, apierror.NewValidation(map[string][]string{
			typeErr.Field: {fmt.Sprintf("Incorrect type. Expected %s, received %s.", typeErr.Type, typeErr.Value)},
		}))
		return false
	}
	c.JSON(http.StatusBadRequest, apierror.New("JSON parse error - "+err.Error()))
	return false
}

// validateRequest runs go-playground/validator tags on req.
// Returns false and writes the error response if validation fails.
func validateRequest(c *gin.Context, req interface{}) bool {
	err := validate.Struct(req)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		_ = c.Error(err)
		return false
	}
	fields := make(map[string][]string)
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
	}
	c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
	return false
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails,
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	return bindJSON(c, req) && validateRequest(c, req)
}

// writeError maps a service error onto its HTTP response. Unknown errors go
// to the ErrorHandler middleware, which logs them and answers 500.
func writeError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, apierror.NewValidation(verr.Fields))
	case errors.Is(err, service.ErrInvalidPage):
		c.JSON(http.StatusNotFound, apierror.New(apierror.MsgInvalidPage))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New(apierror.MsgNotFound))
	case errors.Is(err, service.ErrIntegrity):
		c.JSON(http.StatusBadRequest, apierror.New("The request conflicts with existing data."))
	default:
		_ = c.Error(err)
	}
}

// parseID reads a positive integer path parameter. Anything else cannot name
// a row, so it answers 404.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, apierror.New(apierror.MsgNotFound))
		return 0, false
	}
	return uint(id), true
}

// parsePage reads the page query parameter; absent or empty means page 1.
func parsePage(c *gin.Context) (int, bool) {
	raw := c.Query("page")
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		c.JSON(http.StatusNotFound, apierror.New(apierror.MsgInvalidPage))
		return 0, false
	}
	return page, true
}

// absoluteURL rebuilds the request URL with the given path, honouring
// X-Forwarded-Proto from a terminating proxy.
func absoluteURL(c *gin.Context, path string) *url.URL {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return &url.URL{Scheme: scheme, Host: c.Request.Host, Path: path}
}

// pageLink points at page n of the current listing. Page 1 drops the page
// parameter altogether.
func pageLink(c *gin.Context, n int) *string {
	u := absoluteURL(c, c.Request.URL.Path)
	q := c.Request.URL.Query()
	if n == 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(n))
	}
	u.RawQuery = q.Encode()
	link := u.String()
	return &link
}

func listResponse[T any](c *gin.Context, res *dto.PageResult[T]) dto.ListResponse[T] {
	out := dto.ListResponse[T]{Count: res.Count, Results: res.Results}
	if res.HasNext() {
		out.Next = pageLink(c, res.Page+1)
	}
	if res.HasPrevious() {
		out.Previous = pageLink(c, res.Page-1)
	}
	return out
}
