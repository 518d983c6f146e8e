package http

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"activities-service/internal/service"
)

// Validate проверяет, что параметры /auth/login переданы. Пустые значения
// допустимы и отклоняются уже проверкой учётных данных.
func (r loginRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.NotNil),
		validation.Field(&r.Password, validation.NotNil),
	)
	if err != nil {
		return service.ErrBadRequest(err.Error())
	}
	return nil
}

// Validate проверяет только наличие параметров: формат email не навязывается,
// а отсутствие кружка решает сервис.
func (r enrollmentRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Activity, validation.Required),
		validation.Field(&r.Email, validation.Required),
	)
	if err != nil {
		return service.ErrBadRequest(err.Error())
	}
	return nil
}
