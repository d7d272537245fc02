package repository

import "errors"

var (
	// ErrEmailTaken адрес уже занят другим участником
	ErrEmailTaken = errors.New("email is already registered")
	// ErrMemberNotFound обновление не затронуло ни одной строки
	ErrMemberNotFound = errors.New("member not found")
)
