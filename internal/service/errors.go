package service

import "errors"

// Ошибки, по которым вызывающий код отличает "уже обработано" от "сломано".
// Все прочие ошибки считаются сбоем хранилища.
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrNotFound            = errors.New("not found")
	ErrAlreadyAcknowledged = errors.New("alert already acknowledged")
	ErrAlreadyResolved     = errors.New("alert already resolved")
	ErrDuplicateKey        = errors.New("duplicate key")
)
