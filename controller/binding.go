// Package controller holds the helpers shared by the route packages below it.
package controller

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"ppdb/apierror"
)

const MsgInvalidRequest = "Invalid request format"

var tagNames sync.Once

// useJSONNames makes validation errors report the json field name.
func useJSONNames() {
	tagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
}

// BindJSON decodes the body into req and writes a 400 envelope under key
// when that fails. It reports whether the handler should continue.
func BindJSON(c *gin.Context, req any, key string) bool {
	useJSONNames()
	if err := c.ShouldBindJSON(req); err != nil {
		apierror.RespondAs(c, apierror.Validation(bindMessage(err)), key)
		return false
	}
	return true
}

func bindMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return fmt.Sprintf("%s is required", fe.Field())
		}
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
	return MsgInvalidRequest
}
