package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translation "github.com/go-playground/validator/v10/translations/en"
)

const defaultLocale = "en"

var (
	validate   *validator.Validate
	translator ut.Translator
	once       sync.Once
	initErr    error
)

type message struct {
	text   string
	params func(fe validator.FieldError) []string
}

// messages override the default english translations. Placeholders must
// appear in index order.
var messages = map[string]message{
	"required": {text: "{0} is required", params: pathParam},
	"oneof": {
		text: `value "{0}" for {1} not recognized, only support "{2}"`,
		params: func(fe validator.FieldError) []string {
			return []string{fmt.Sprint(fe.Value()), strconv.Quote(fieldPath(fe)), fe.Param()}
		},
	},
	"min": {text: "{0} needs at least {1} item(s)", params: pathParam},
	"gte": {text: "{0} cannot be less than {1}", params: pathParam},
}

func pathParam(fe validator.FieldError) []string {
	return []string{strconv.Quote(fieldPath(fe)), fe.Param()}
}

func newTranslator() ut.Translator {
	universalTranslator := ut.New(en.New(), en.New())
	trans, _ := universalTranslator.GetTranslator(defaultLocale)
	return trans
}

func newValidator(trans ut.Translator) (*validator.Validate, error) {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := en_translation.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}
	for tag, msg := range messages {
		tag, msg := tag, msg
		registerFn := func(trans ut.Translator) error {
			return trans.Add(tag, msg.text, true)
		}
		transFn := func(trans ut.Translator, fe validator.FieldError) string {
			t, err := trans.T(fe.Tag(), msg.params(fe)...)
			if err != nil {
				return fe.Error()
			}
			return t
		}
		if err := validate.RegisterTranslation(tag, trans, registerFn, transFn); err != nil {
			return nil, fmt.Errorf("register %q translation: %w", tag, err)
		}
	}
	return validate, nil
}

// ValidateStruct checks the validate tags of v. Fields are reported by their
// yaml path, every violation joined into the returned error.
func ValidateStruct(v interface{}) error {
	validate, trans, err := getValidator()
	if err != nil {
		return err
	}
	return checkError(validate.Struct(v), trans)
}

func getValidator() (*validator.Validate, ut.Translator, error) {
	once.Do(func() {
		translator = newTranslator()
		validate, initErr = newValidator(translator)
	})
	return validate, translator, initErr
}

func checkError(err error, trans ut.Translator) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errors.Join(errs...)
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}
	return path
}
