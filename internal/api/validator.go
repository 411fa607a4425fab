package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator はEcho用のカスタムバリデーター
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator は新しいバリデーターを作成する
// エラーメッセージにはJSONのフィールド名を使う
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate はリクエストのバリデーションを実行する
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return echo.NewHTTPError(http.StatusBadRequest, strings.Join(msgs, ", "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s は必須です", fe.Field())
	case "email":
		return fmt.Sprintf("%s はメールアドレスの形式である必要があります", fe.Field())
	case "gt", "gte", "min":
		return fmt.Sprintf("%s は %s 以上である必要があります", fe.Field(), lowerBound(fe))
	case "lte", "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s は %s 文字以下である必要があります", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s は %s 以下である必要があります", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s が不正です（%s）", fe.Field(), fe.Tag())
}

// lowerBound は gt の場合に1を加えた下限を返す（整数フィールドのみ）
func lowerBound(fe validator.FieldError) string {
	if fe.Tag() != "gt" {
		return fe.Param()
	}
	var n int
	if _, err := fmt.Sscanf(fe.Param(), "%d", &n); err != nil {
		return fe.Param()
	}
	return fmt.Sprint(n + 1)
}
