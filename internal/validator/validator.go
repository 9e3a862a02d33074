// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"centavo/internal/models"
	"centavo/internal/report"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("time_range", validateTimeRange)
		_ = v.RegisterValidation("bill_status", validateBillStatus)
		_ = v.RegisterValidation("label_kind", validateLabelKind)
	}
}

func validateTimeRange(fl validator.FieldLevel) bool {
	switch report.Range(fl.Field().String()) {
	case report.RangeWeek, report.RangeMonth, report.RangeYear:
		return true
	}
	return false
}

func validateBillStatus(fl validator.FieldLevel) bool {
	switch models.BillStatus(fl.Field().String()) {
	case models.BillStatusPaid, models.BillStatusUnpaid:
		return true
	}
	return false
}

func validateLabelKind(fl validator.FieldLevel) bool {
	return models.ValidKind(fl.Field().String())
}
