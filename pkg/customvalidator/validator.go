// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"handover-crm/pkg/constants"
)

var (
	innRegex = regexp.MustCompile(`^(\d{10}|\d{12})$`)
	kppRegex = regexp.MustCompile(`^\d{9}$`)
)

// enums - перечисления, на которые ссылаются теги enum=<имя> и enum_filter=<имя>.
var enums = map[string][]constants.StatusMeta{
	"handover":  constants.HandoverStatuses,
	"equipment": constants.EquipmentStatuses,
	"task":      constants.TaskStatuses,
	"priority":  constants.TaskPriorities,
}

// RegisterCustomValidations регистрирует все кастомные правила в переданном валидаторе.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("inn", isINN); err != nil {
		return err
	}
	if err := v.RegisterValidation("kpp", isKPP); err != nil {
		return err
	}
	if err := v.RegisterValidation("iso_date", isISODate); err != nil {
		return err
	}
	if err := v.RegisterValidation("enum", isEnumValue); err != nil {
		return err
	}
	if err := v.RegisterValidation("enum_filter", isEnumFilter); err != nil {
		return err
	}
	return nil
}

// New создаёт валидатор с уже зарегистрированными правилами.
func New() (*validator.Validate, error) {
	v := validator.New()
	if err := RegisterCustomValidations(v); err != nil {
		return nil, err
	}
	return v, nil
}

// ИНН юрлица - 10 цифр, ИП - 12.
func isINN(fl validator.FieldLevel) bool {
	return innRegex.MatchString(fl.Field().String())
}

func isKPP(fl validator.FieldLevel) bool {
	return kppRegex.MatchString(fl.Field().String())
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func isEnumValue(fl validator.FieldLevel) bool {
	metas, ok := enums[fl.Param()]
	if !ok {
		return false
	}
	return constants.IsValid(metas, fl.Field().String())
}

// Как enum, но пустое значение и "all" тоже допустимы.
func isEnumFilter(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" || value == constants.FilterAll {
		return true
	}
	return isEnumValue(fl)
}
