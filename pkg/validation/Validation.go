package validation

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/kre8/kre8/pkg/kinds"
	"github.com/mitchellh/mapstructure"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

var defaultEngine = New()

func New() *Engine {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]

		if name == "-" {
			return ""
		}

		return name
	})

	return &Engine{
		validate: validate,
		schemas: map[kinds.Kind]*Schema{
			kinds.Pod:        PodSchema,
			kinds.Deployment: DeploymentSchema,
			kinds.Service:    ServiceSchema,
		},
	}
}

// Validate runs the default engine.
func Validate(kind kinds.Kind, raw map[string]string) (Payload, FieldErrors) {
	return defaultEngine.Validate(kind, raw)
}

func (e *Engine) Schema(kind kinds.Kind) (*Schema, bool) {
	schema, ok := e.schemas[kind]
	return schema, ok
}

// Validate normalizes raw into the payload of kind. Every failing field is reported in the
// same pass; a nil FieldErrors means the payload is valid.
func (e *Engine) Validate(kind kinds.Kind, raw map[string]string) (Payload, FieldErrors) {
	schema, ok := e.schemas[kind]

	if !ok {
		return nil, FieldErrors{"kind": fmt.Sprintf("%s kind does not exist", kind)}
	}

	fieldErrors := FieldErrors{}
	normalized := make(map[string]interface{}, len(schema.Fields))

	for name := range raw {
		if _, declared := schema.Lookup(name); !declared {
			fieldErrors[name] = fmt.Sprintf("%s is not an allowed field", name)
		}
	}

	for _, field := range schema.Fields {
		value := raw[field.Name]

		switch field.Type {
		case Number:
			number, message := parseNumber(field.Name, value)

			if message != "" {
				fieldErrors[field.Name] = message
				continue
			}

			normalized[field.Name] = number
		default:
			if field.Lowercase {
				value = strings.ToLower(value)
			}

			normalized[field.Name] = value
		}
	}

	payload := schema.new()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  payload,
	})

	if err == nil {
		err = decoder.Decode(normalized)
	}

	if err != nil {
		return nil, FieldErrors{"kind": err.Error()}
	}

	for field, message := range e.Check(payload) {
		// Parse failures already carry the more precise message.
		if _, exists := fieldErrors[field]; !exists {
			fieldErrors[field] = message
		}
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}

	return payload, nil
}

// Check validates an already typed payload, such as one decoded from an event.
func (e *Engine) Check(payload Payload) FieldErrors {
	err := e.validate.Struct(payload)

	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors

	if !errors.As(err, &validationErrors) {
		return FieldErrors{"kind": err.Error()}
	}

	fieldErrors := FieldErrors{}

	for _, fieldError := range validationErrors {
		fieldErrors[fieldError.Field()] = message(fieldError)
	}

	return fieldErrors
}

// NewPayload returns an empty payload of kind to decode into.
func (e *Engine) NewPayload(kind kinds.Kind) (Payload, error) {
	schema, ok := e.schemas[kind]

	if !ok {
		return nil, fmt.Errorf("%s kind does not exist", kind)
	}

	return schema.new(), nil
}

func parseNumber(name string, value string) (int, string) {
	value = strings.TrimSpace(value)

	if value == "" {
		return 0, fmt.Sprintf("%s is a required field", name)
	}

	number, err := strconv.ParseFloat(value, 64)

	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, fmt.Sprintf("%s must be a number", name)
	}

	if number != math.Trunc(number) {
		return 0, fmt.Sprintf("%s must be an integer", name)
	}

	if number > math.MaxInt32 {
		return 0, fmt.Sprintf("%s must be less than or equal to %d", name, math.MaxInt32)
	}

	return int(number), ""
}

func message(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is a required field", fieldError.Field())
	case "lowercase":
		return fmt.Sprintf("%s must be a lowercase string", fieldError.Field())
	case "gt":
		return fmt.Sprintf("%s must be a positive number", fieldError.Field())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", fieldError.Field(), fieldError.Param())
	default:
		return fmt.Sprintf("%s failed on the %s rule", fieldError.Field(), fieldError.Tag())
	}
}

// Fields returns the failed field names sorted.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))

	for field := range fe {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	return fields
}

func (fe FieldErrors) Error() string {
	messages := make([]string, 0, len(fe))

	for _, field := range fe.Fields() {
		messages = append(messages, fe[field])
	}

	return strings.Join(messages, "; ")
}
