package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/SscSPs/grn_tracker/internal/apperrors"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// decimalValue hands decimal.Decimal fields to validators in their exact string form.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// fieldDecimal parses the (already converted) field value. Non-decimal fields fail.
func fieldDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	if fl.Field().Kind() != reflect.String {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func compareDecimal(fl validator.FieldLevel, ok func(cmp int) bool) bool {
	value, valid := fieldDecimal(fl)
	if !valid {
		return false
	}
	bound, err := decimal.NewFromString(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("bad decimal bound %q on %s", fl.Param(), fl.FieldName()))
	}
	return ok(value.Cmp(bound))
}

// decimalRules compare decimals exactly; gte and lte would go through float64.
var decimalRules = map[string]validator.Func{
	"dgte": func(fl validator.FieldLevel) bool {
		return compareDecimal(fl, func(cmp int) bool { return cmp >= 0 })
	},
	"dlte": func(fl validator.FieldLevel) bool {
		return compareDecimal(fl, func(cmp int) bool { return cmp <= 0 })
	},
	// dscale=N rejects values with more than N significant fractional digits.
	"dscale": func(fl validator.FieldLevel) bool {
		value, valid := fieldDecimal(fl)
		if !valid {
			return false
		}
		places, err := strconv.Atoi(fl.Param())
		if err != nil {
			panic(fmt.Sprintf("bad dscale %q on %s", fl.Param(), fl.FieldName()))
		}
		return value.Equal(value.Truncate(int32(places)))
	},
}

func registerDecimalRules(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	for tag, fn := range decimalRules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("registering %s: %w", tag, err)
		}
	}
	return nil
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// Validator returns the shared validator. It reads the same "binding" tags gin does,
// so request DTOs are validated identically at the edge and in services.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.SetTagName("binding")
		validate.RegisterTagNameFunc(jsonFieldName)
		if err := registerDecimalRules(validate); err != nil {
			panic(err)
		}
	})
	return validate
}

// RegisterGinValidator teaches gin's binding validator about decimal.Decimal.
func RegisterGinValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator is not go-playground/validator")
	}
	v.RegisterTagNameFunc(jsonFieldName)
	return registerDecimalRules(v)
}

// Struct validates s and wraps any failure in apperrors.ErrValidation.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.Validationf("%s", Describe(verrs))
	}
	return apperrors.Validationf("%s", err.Error())
}

// Describe renders validation errors as "field: rule" pairs.
func Describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: must satisfy %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
