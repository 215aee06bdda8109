package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrEmailNotUnique        = errors.New("this email address is already registered")
	ErrCategoryNameNotUnique = errors.New("a category with this name already exists")

	ErrAmountNotPositive      = errors.New("the transaction amount must be positive")
	ErrTransactionTypeInvalid = errors.New("the transaction type must be \"debit\" or \"credit\"")
)
