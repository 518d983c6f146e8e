package model

// Teacher описывает учётную запись учителя из файла учётных данных.
// Пароль хранится в том виде, в каком он задан в файле.
type Teacher struct {
	Username string `json:"-"`
	Password string `json:"password"`
	Name     string `json:"name"`
}
