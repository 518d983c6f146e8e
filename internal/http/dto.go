// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import (
	"github.com/iancoleman/orderedmap"

	"activities-service/internal/model"
)

// errorResponse несёт detail для веб-клиента и структурированную ошибку.
type errorResponse struct {
	Detail string    `json:"detail"`
	Error  errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// loginRequest: nil означает, что параметр не передан вовсе.
type loginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	TeacherName string `json:"teacher_name"`
}

type verifyResponse struct {
	Username      string `json:"username"`
	TeacherName   string `json:"teacher_name"`
	Authenticated bool   `json:"authenticated"`
}

type enrollmentRequest struct {
	Activity string `json:"activity"`
	Email    string `json:"email"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// newActivitiesResponse собирает объект имя кружка → запись. Ключи идут в порядке
// реестра: веб-клиент рисует карточки в порядке ключей.
func newActivitiesResponse(list []model.Activity) *orderedmap.OrderedMap {
	resp := orderedmap.New()
	for _, a := range list {
		if a.Participants == nil {
			a.Participants = []string{}
		}
		resp.Set(a.Name, a)
	}
	return resp
}
