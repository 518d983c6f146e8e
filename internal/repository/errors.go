package repository

import "errors"

var (
	// ErrTeacherNotFound возвращается, если учителя нет в файле учётных данных.
	ErrTeacherNotFound = errors.New("teacher not found")

	// ErrActivityNotFound возвращается, если кружка нет в реестре.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAlreadySignedUp возвращается при повторной записи того же email.
	ErrAlreadySignedUp = errors.New("participant already signed up")

	// ErrActivityFull возвращается, если в кружке не осталось мест.
	ErrActivityFull = errors.New("activity is full")

	// ErrNotSignedUp возвращается при попытке отписать того, кто не записан.
	ErrNotSignedUp = errors.New("participant not signed up")
)
