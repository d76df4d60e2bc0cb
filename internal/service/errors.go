package service

import "fmt"

// здесь происходит проверка ошибок бизнес-логики

const CodeNotFound = "NOT_FOUND"
const CodeAlreadyCompleted = "ALREADY_COMPLETED"
const CodeValidationError = "VALIDATION_ERROR"

type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func NewNotFound(id int) *BusinessError {
	return &BusinessError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("задача %d не найдена", id),
		Details: map[string]any{
			"id": id,
		},
	}
}

func NewAlreadyCompleted(id int) *BusinessError {
	return &BusinessError{
		Code:    CodeAlreadyCompleted,
		Message: fmt.Sprintf("задача %d уже выполнена", id),
		Details: map[string]any{
			"id": id,
		},
	}
}

func NewValidationError(field, reason string) *BusinessError {
	return &BusinessError{
		Code:    CodeValidationError,
		Message: fmt.Sprintf("Неверное значение поля '%s': %s", field, reason),
		Details: map[string]any{
			"field":  field,
			"reason": reason,
		},
	}
}
