package datafiles

import (
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// LinkInput is the URL and display name of a datafile link.
type LinkInput struct {
	URL  string `json:"url" validate:"required,http_url"`
	Name string `json:"name" validate:"required,max=255"`
}

// LinkInputFromValues reads the link fields from form values, using the same
// key lookup as DatePartInputFromValues.
func LinkInputFromValues(values url.Values) LinkInput {
	return LinkInput{
		URL:  lookupValue(values, string(FieldURL)),
		Name: lookupValue(values, string(FieldName)),
	}
}

// Get returns the raw value of a link field.
func (in LinkInput) Get(f Field) string {
	switch f {
	case FieldURL:
		return in.URL
	case FieldName:
		return in.Name
	}
	return ""
}

var linkMessages = map[Field]string{
	FieldURL:  msgURL,
	FieldName: msgName,
}

// LinkValidator checks link inputs. It is independent of the date resolver
// and safe for concurrent use.
type LinkValidator struct {
	validate *validator.Validate
	messages map[Field]string
}

// NewLinkValidator builds a LinkValidator with the built-in messages.
func NewLinkValidator() *LinkValidator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		return name
	})
	printer := NewPrinter()
	messages := make(map[Field]string, len(linkMessages))
	for f, key := range linkMessages {
		messages[f] = printer.Sprintf(key)
	}
	return &LinkValidator{validate: validate, messages: messages}
}

// Validate returns ValidationErrors naming each invalid link field, or nil.
func (v *LinkValidator) Validate(in LinkInput) error {
	in.URL = strings.TrimSpace(in.URL)
	in.Name = strings.TrimSpace(in.Name)
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var errs ValidationErrors
	for _, fe := range fieldErrs {
		f := Field(fe.Field())
		errs.add(f, v.messages[f])
	}
	return errs.sorted()
}
