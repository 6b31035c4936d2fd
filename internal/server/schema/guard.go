// Package schema validates record and request shapes before any other
// component trusts them. Failed validations reject fail-fast with
// common.ErrMalformedInput.
package schema

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/radblock/gifgate/internal/common"
	"github.com/radblock/gifgate/internal/server/models"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// ValidateStruct validates a struct using registered rules. On failure
// the returned error wraps common.ErrMalformedInput and lists the
// offending fields.
func ValidateStruct(s interface{}) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	if ve, ok := err.(validator.ValidationErrors); ok {
		parts := make([]string, len(ve))
		for i, fe := range ve {
			if fe.Param() != "" {
				parts[i] = fe.Field() + " failed on " + fe.Tag() + "=" + fe.Param()
			} else {
				parts[i] = fe.Field() + " failed on " + fe.Tag()
			}
		}
		return fmt.Errorf("%w: %s", common.ErrMalformedInput, strings.Join(parts, "; "))
	}

	return fmt.Errorf("%w: %v", common.ErrMalformedInput, err)
}

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := fld.Tag.Get("json")
			if name == "" {
				return fld.Name
			}

			comma := strings.Index(name, ",")
			if comma != -1 {
				name = name[:comma]
			}

			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		validate.RegisterStructValidation(userRecordStructLevel, models.UserRecord{})
	})
	return validate
}

// userRecordStructLevel enforces the code-iff-pending invariant: a
// verification code exists exactly when the record is pending.
func userRecordStructLevel(sl validator.StructLevel) {
	rec := sl.Current().Interface().(models.UserRecord)

	if rec.State == models.StatePending && rec.VerificationCode == "" {
		sl.ReportError(rec.VerificationCode, "verification_code", "VerificationCode", "required_when_pending", "")
	}
	if rec.State != models.StatePending && rec.VerificationCode != "" {
		sl.ReportError(rec.VerificationCode, "verification_code", "VerificationCode", "excluded_unless_pending", "")
	}
}
