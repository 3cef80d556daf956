// Package bind provides JSON bind and validation helpers for handlers
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "patchgate/internal/platform/errors"
	"patchgate/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldLevel aliases validator.FieldLevel
type FieldLevel = validator.FieldLevel

// FieldError aliases validator.FieldError
type FieldError = validator.FieldError

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce    sync.Once
	vSvc     *ValidatorSvc
	jsonMore = func(dec *json.Decoder) bool { return dec.More() } // seam
)

// Init initializes the singleton validator with english translations and json tag names
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages and field lists
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		registerShortMin(v, trans)
		registerShortMax(v, trans)

		// whitespace-only strings count as missing
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		registerNotBlank(v, trans)

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc { return Init() }

// RegisterValidation registers a custom tag
func RegisterValidation(tag string, fn validator.Func) error {
	return Get().Validator.RegisterValidation(tag, fn)
}

// JSONOptions controls parsing behavior
type JSONOptions struct {
	MaxBytes        int64 // default 1MB
	DisallowUnknown bool  // default true
	AllowEmptyBody  bool  // default false
	SkipValidate    bool  // caller runs its own validation after decode
}

// DefaultJSONOptions returns the options ParseJSON uses when none are given
func DefaultJSONOptions() JSONOptions {
	return JSONOptions{
		MaxBytes:        1 << 20,
		DisallowUnknown: true,
		AllowEmptyBody:  false,
	}
}

// ParseJSON decodes JSON into T, validates it, and maps failures to project errors
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := DefaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("failed to close request body")
		}
	}()

	body := io.Reader(r.Body)
	if o.MaxBytes > 0 {
		body = io.LimitReader(r.Body, o.MaxBytes)
	}

	if !o.AllowEmptyBody {
		buf := make([]byte, 1)
		n, _ := io.ReadFull(body, buf)
		if n == 0 {
			return zero, perr.JSONErrf("empty body")
		}
		body = io.MultiReader(bytes.NewReader(buf[:n]), body)
	}

	dec := json.NewDecoder(body)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		if o.AllowEmptyBody && errors.Is(err, io.EOF) {
			return dst, nil
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}

	if jsonMore(dec) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if o.SkipValidate {
		return dst, nil
	}
	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Validate runs struct validation and maps the first failure to a validation error
func Validate(v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.JSONErrf("validation error")
	}
	field, msg := ValidationFieldAndMessage(err)
	return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
}

// ValidationFieldAndMessage returns the first field and translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		return "", inv.Error()
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			return fe.Field(), fe.Translate(Get().Translator)
		}
	}
	return "", err.Error()
}

// FailedFields lists every failing field name in struct declaration order, without duplicates
func FailedFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	seen := make(map[string]struct{}, len(verrs))
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if _, dup := seen[fe.Field()]; dup {
			continue
		}
		seen[fe.Field()] = struct{}{}
		out = append(out, fe.Field())
	}
	return out
}

// custom translations with short messages

func registerShortMin(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterTranslation("min", trans,
		func(ut ut.Translator) error {
			return ut.Add("min", "{0} must be at least {1}", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("min", fe.Field(), fe.Param())
			return msg
		},
	)
}

func registerShortMax(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterTranslation("max", trans,
		func(ut ut.Translator) error {
			return ut.Add("max", "{0} must be at most {1}", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("max", fe.Field(), fe.Param())
			return msg
		},
	)
}

func registerNotBlank(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterTranslation("notblank", trans,
		func(ut ut.Translator) error {
			return ut.Add("notblank", "{0} is required", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("notblank", fe.Field())
			return msg
		},
	)
}
