package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"reflect"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetURLFields returns the names of all fields of filter whose
// query parameter is set in the URL.
func GetURLFields(url *url.URL, filter any) []string {
	var setFields []string

	query := url.Query()
	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)
		param := field.Tag.Get("form")

		if param != "" && query.Has(param) {
			setFields = append(setFields, field.Name)
		}
	}

	return setFields
}

// BodyFields maps the field names of resource to whether the field
// is set in the request body and, if it is, whether it is null.
type BodyFields map[string]bool

// Has reports if the field is present in the body.
func (f BodyFields) Has(field string) bool {
	_, ok := f[field]
	return ok
}

// IsNull reports if the field is present in the body with a null value.
func (f BodyFields) IsNull(field string) bool {
	return f[field]
}

// GetBodyFields returns the fields of resource that are set in the body.
//
// The body is read and restored, so this must be called before
// binding the body.
func GetBodyFields(c *gin.Context, resource any) (BodyFields, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, ErrInvalidBody
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrRequestBodyEmpty
	}

	var mapBody map[string]json.RawMessage
	if err := json.Unmarshal(body, &mapBody); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return nil, ErrInvalidBody
	}

	fields := BodyFields{}
	val := reflect.Indirect(reflect.ValueOf(resource))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)
		param, _, _ := strings.Cut(field.Tag.Get("json"), ",")

		if value, ok := mapBody[param]; ok {
			fields[field.Name] = string(bytes.TrimSpace(value)) == "null"
		}
	}

	return fields, nil
}
