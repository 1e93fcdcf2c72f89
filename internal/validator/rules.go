package validator

import (
	"log"
	"regexp"

	"foodboard_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// Телефон как его хранит доска: +7... или 8..., 10-15 цифр.
var phoneRe = regexp.MustCompile(`^\+?\d{10,15}$`)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Если правило не удалось зарегистрировать, приложение
			// не должно запускаться.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'phone': Проверяет телефонный номер
	mustRegister("phone", validatePhone)

	// 'is-report-reason': Проверяет причину жалобы
	mustRegister("is-report-reason", validateReportReason)

	// 'is-post-category': Проверяет категорию поста
	mustRegister("is-post-category", validatePostCategory)

	// 'is-user-role': Проверяет роль пользователя
	mustRegister("is-user-role", validateUserRole)
}

// --- Функции валидации ---

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Пустые значения ловит 'required'
	}
	return phoneRe.MatchString(value)
}

func validateReportReason(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ReportReason(value) {
	case models.ReportReasonSpam, models.ReportReasonFraud,
		models.ReportReasonInappropriate, models.ReportReasonOffensive,
		models.ReportReasonOther:
		return true
	default:
		return false
	}
}

func validatePostCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.PostCategory(value) {
	case models.PostCategoryOther, models.PostCategoryPies,
		models.PostCategoryJams, models.PostCategoryVegetables,
		models.PostCategoryDairy, models.PostCategoryMeat,
		models.PostCategoryBakery:
		return true
	default:
		return false
	}
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleUser, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}
