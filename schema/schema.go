// Package schema declares the accepted input shape of every entity and
// validates raw JSON request bodies against it.
//
// Each entity has an input struct with pointer fields. A nil pointer means
// the field was absent (or null for nullable fields). Struct tags drive the
// rules:
//
//	json:"name"          wire name of the field
//	validate:"..."       go-playground/validator rules (required, the enum
//	                     rules below, money, ...)
//	nullable:"true"      JSON null is accepted and clears the column
//	sanitize:"true"      free text, HTML markup is stripped before storage
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"legal_case_app_go/models"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

// DefaultLocation is used for timestamps sent without a UTC offset
var DefaultLocation = time.UTC

// Accepted timestamp layouts, most specific first
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// enum validation rules, backed by the allowed values declared in models
type enumRule struct {
	values []string
	valid  func(string) bool
}

var enumRules = map[string]enumRule{
	"casestatus":        {models.CaseStatuses, models.IsValidCaseStatus},
	"activitytype":      {models.ActivityTypes, models.IsValidActivityType},
	"priority":          {models.Priorities, models.IsValidPriority},
	"hearingtype":       {models.HearingTypes, models.IsValidHearingType},
	"financialtype":     {models.FinancialTypes, models.IsValidFinancialType},
	"financialstatus":   {models.FinancialStatuses, models.IsValidFinancialStatus},
	"communicationtype": {models.CommunicationTypes, models.IsValidCommunicationType},
}

// Money columns are decimal(15,2): at most 13 integer digits and 2 decimals
const (
	moneyScale         = 2
	moneyIntegerDigits = 13
)

var maxMoney = decimal.New(1, moneyIntegerDigits)

var (
	validate     = newValidator()
	stripPolicy  = bluemonday.StrictPolicy()
	timePtrType  = reflect.TypeOf(&time.Time{})
	stringPtrTyp = reflect.TypeOf(new(string))
)

func newValidator() *validator.Validate {
	v := validator.New()

	// Report JSON names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Money rules see the exact decimal text, never a rounded float
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	mustRegister(v, "nonnegative", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && !d.IsNegative()
	})
	mustRegister(v, "money", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && isMoney(d)
	})

	for tag, rule := range enumRules {
		valid := rule.valid
		mustRegister(v, tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		})
	}
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("schema: register %s rule: %v", tag, err))
	}
}

// isMoney reports whether d fits a decimal(15,2) column without rounding
func isMoney(d decimal.Decimal) bool {
	return d.Equal(d.Round(moneyScale)) && d.Abs().LessThan(maxMoney)
}

// Patch maps model field names to their new values. A nil value clears a
// nullable column.
type Patch map[string]interface{}

// Fields returns the patched field names in sorted order
func (p Patch) Fields() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type field struct {
	index    int
	goName   string
	jsonName string
	typ      reflect.Type
	nullable bool
	sanitize bool
}

// Schema validates request bodies for the input struct T
type Schema[T any] struct {
	fields []field
	byJSON map[string]*field
}

// New builds a schema from the tags of the input struct T
func New[T any](entity string) *Schema[T] {
	var zero T
	t := reflect.TypeOf(zero)
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("schema: %s input must be a struct, got %s", entity, t.Kind()))
	}

	s := &Schema[T]{byJSON: make(map[string]*field)}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Type.Kind() != reflect.Ptr {
			panic(fmt.Sprintf("schema: %s.%s must be a pointer", entity, sf.Name))
		}
		name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		s.fields = append(s.fields, field{
			index:    i,
			goName:   sf.Name,
			jsonName: name,
			typ:      sf.Type,
			nullable: sf.Tag.Get("nullable") == "true",
			sanitize: sf.Tag.Get("sanitize") == "true",
		})
	}
	for i := range s.fields {
		s.byJSON[s.fields[i].jsonName] = &s.fields[i]
	}
	return s
}

// Insert validates a create payload. Unknown fields are ignored, required
// fields must be present.
func (s *Schema[T]) Insert(body []byte) (*T, error) {
	out, present, reasons, err := s.decode(body, false)
	if err != nil {
		return nil, err
	}
	s.normalize(out, present)

	if err := validate.Struct(out); err != nil {
		collectRuleErrors(err, reasons)
	}

	if verr := s.buildError(reasons); verr != nil {
		return nil, verr
	}
	return out, nil
}

// Partial validates an update payload. Any subset of fields is accepted,
// unknown fields are rejected.
func (s *Schema[T]) Partial(body []byte) (Patch, error) {
	out, present, reasons, err := s.decode(body, true)
	if err != nil {
		return nil, err
	}
	s.normalize(out, present)

	var names []string
	for _, f := range s.fields {
		if _, ok := present[f.jsonName]; ok {
			if _, bad := reasons[f.jsonName]; !bad {
				names = append(names, f.goName)
			}
		}
	}
	if len(names) > 0 {
		if err := validate.StructPartial(out, names...); err != nil {
			collectRuleErrors(err, reasons)
		}
	}

	if verr := s.buildError(reasons); verr != nil {
		return nil, verr
	}

	patch := make(Patch, len(present))
	v := reflect.ValueOf(out).Elem()
	for _, f := range s.fields {
		if _, ok := present[f.jsonName]; !ok {
			continue
		}
		fv := v.Field(f.index)
		if fv.IsNil() {
			patch[f.goName] = nil
			continue
		}
		patch[f.goName] = fv.Elem().Interface()
	}
	return patch, nil
}

// decode parses the body into T, recording type and nullability problems
func (s *Schema[T]) decode(body []byte, rejectUnknown bool) (*T, map[string]struct{}, map[string]string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, nil, nil, &ValidationError{Errors: []FieldError{{Field: "body", Reason: "must be a JSON object"}}}
	}

	out := new(T)
	v := reflect.ValueOf(out).Elem()
	present := make(map[string]struct{}, len(raw))
	reasons := make(map[string]string)

	for key, msg := range raw {
		f, ok := s.byJSON[key]
		if !ok {
			if rejectUnknown {
				reasons[key] = ReasonUnknown
			}
			continue
		}
		present[key] = struct{}{}

		if bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
			if !f.nullable {
				reasons[key] = ReasonNotNull
			}
			continue
		}

		ptr, err := decodeValue(f.typ, msg)
		if err != nil {
			reasons[key] = ReasonInvalidType
			continue
		}
		v.Field(f.index).Set(ptr)
	}

	return out, present, reasons, nil
}

func decodeValue(typ reflect.Type, msg json.RawMessage) (reflect.Value, error) {
	if typ == timePtrType {
		var str string
		if err := json.Unmarshal(msg, &str); err != nil {
			return reflect.Value{}, err
		}
		t, err := parseTime(str)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(&t), nil
	}

	ptr := reflect.New(typ.Elem())
	if err := json.Unmarshal(msg, ptr.Interface()); err != nil {
		return reflect.Value{}, err
	}
	return ptr, nil
}

func parseTime(str string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, str, DefaultLocation); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", str)
}

// normalize converts timestamps to UTC, strips markup from free text and
// turns empty optional strings into nulls
func (s *Schema[T]) normalize(out *T, present map[string]struct{}) {
	v := reflect.ValueOf(out).Elem()
	for _, f := range s.fields {
		if _, ok := present[f.jsonName]; !ok {
			continue
		}
		fv := v.Field(f.index)
		if fv.IsNil() {
			continue
		}

		switch f.typ {
		case timePtrType:
			t := fv.Interface().(*time.Time).UTC()
			fv.Set(reflect.ValueOf(&t))
		case stringPtrTyp:
			str := *fv.Interface().(*string)
			if f.sanitize {
				str = html.UnescapeString(stripPolicy.Sanitize(str))
			}
			if f.nullable && strings.TrimSpace(str) == "" {
				fv.Set(reflect.Zero(f.typ))
				continue
			}
			fv.Set(reflect.ValueOf(&str))
		}
	}
}

func (s *Schema[T]) buildError(reasons map[string]string) error {
	if len(reasons) == 0 {
		return nil
	}

	verr := &ValidationError{}
	for _, f := range s.fields {
		if reason, ok := reasons[f.jsonName]; ok {
			verr.Errors = append(verr.Errors, FieldError{Field: f.jsonName, Reason: reason})
			delete(reasons, f.jsonName)
		}
	}

	// Remaining keys are unknown fields
	unknown := make([]string, 0, len(reasons))
	for key := range reasons {
		unknown = append(unknown, key)
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		verr.Errors = append(verr.Errors, FieldError{Field: key, Reason: reasons[key]})
	}
	return verr
}

// collectRuleErrors merges validator failures, keeping earlier reasons
func collectRuleErrors(err error, reasons map[string]string) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		reasons["body"] = err.Error()
		return
	}
	for _, fe := range verrs {
		if _, exists := reasons[fe.Field()]; exists {
			continue
		}
		reasons[fe.Field()] = ruleReason(fe)
	}
}

func ruleReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return ReasonRequired
	case "nonnegative":
		return "must not be negative"
	case "money":
		return fmt.Sprintf("must have at most %d integer digits and %d decimal places", moneyIntegerDigits, moneyScale)
	case "email":
		return "invalid email"
	case "min":
		return "must not be empty"
	case "gt":
		return "must be a positive number"
	default:
		if rule, ok := enumRules[fe.Tag()]; ok {
			return "must be one of: " + strings.Join(rule.values, ", ")
		}
		return "failed " + fe.Tag() + " rule"
	}
}
