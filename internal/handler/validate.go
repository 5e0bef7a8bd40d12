package handler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one entry of the 400 validation envelope.
type FieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields under their wire names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// friendly names for params whose wire name reads poorly in a message
var paramNames = map[string]string{
	"fieldofstudy": "field of study",
	"from":         "from date",
}

func checkRequest(req interface{}) []FieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Param: "", Msg: "invalid request body"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Param: fe.Field(), Msg: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	name := fe.Field()
	if friendly, ok := paramNames[name]; ok {
		name = friendly
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "email":
		return "please include a valid email"
	case "min":
		return fmt.Sprintf("please enter a %s with %s or more characters", name, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}
