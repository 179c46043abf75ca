package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"oncologyassistant/internal/app/middleware"
)

type validationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

var tagNameOnce sync.Once

// registerJSONFieldNames: validator сообщает имена из json-тегов, а не имена полей Go.
func registerJSONFieldNames() {
	tagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindJSON разбирает тело запроса в obj. При ошибке отвечает 422 и возвращает false.
func (h *Handler) bindJSON(ctx *gin.Context, obj interface{}) bool {
	err := ctx.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	issues := describeBindError(err)
	logrus.WithFields(logrus.Fields{
		"request_id": middleware.GetRequestID(ctx),
		"path":       ctx.FullPath(),
		"issues":     len(issues),
	}).Info("request body rejected: ", err)

	ctx.JSON(http.StatusUnprocessableEntity, gin.H{"detail": issues})
	return false
}

func describeBindError(err error) []validationIssue {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		issues := make([]validationIssue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, validationIssue{
				Loc:  []string{"body", fe.Field()},
				Msg:  "Field required",
				Type: "missing",
			})
		}
		return issues
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		return []validationIssue{{
			Loc:  loc,
			Msg:  fmt.Sprintf("Input should be a valid %s", typeErr.Type.Kind()),
			Type: "type_error",
		}}
	}

	return []validationIssue{{
		Loc:  []string{"body"},
		Msg:  "JSON decode error: " + err.Error(),
		Type: "json_invalid",
	}}
}
