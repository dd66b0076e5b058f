// Package apperr — единый контракт ошибок фронтенда: тип ошибки (сеть,
// отказ сервера, валидация) и Result, который показывают все страницы.
package apperr

import (
	"context"
	"errors"
	"fmt"
)

type Kind int

const (
	KindNetwork Kind = iota + 1
	KindRejected
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindRejected:
		return "rejected"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Op      string
	Status  int    // HTTP-статус ответа API (только для KindRejected)
	Message string // текст для пользователя, если сервер его прислал
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindRejected && e.Message != "":
		return fmt.Sprintf("%s: API error (status %d): %s", e.Op, e.Status, e.Message)
	case e.Kind == KindRejected:
		return fmt.Sprintf("%s: API error (status %d)", e.Op, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func Network(op string, err error) *Error {
	return &Error{Kind: KindNetwork, Op: op, Err: err}
}

func Rejected(op string, status int, message string) *Error {
	return &Error{Kind: KindRejected, Op: op, Status: status, Message: message}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Op: "validate", Message: message}
}

// KindOf возвращает тип ошибки; для чужих ошибок — 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// StatusOf — HTTP-статус отказа API или 0.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindRejected {
		return e.Status
	}
	return 0
}

// Canceled — запрос прерван, потому что клиент ушёл со страницы.
func Canceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

// UserMessage выбирает текст для пользователя: валидация и сообщение сервера
// показываются как есть, сетевые ошибки — общим текстом, остальное — fallback.
func UserMessage(err error, fallback string) string {
	var e *Error
	if !errors.As(err, &e) {
		return fallback
	}
	switch e.Kind {
	case KindValidation:
		return e.Message
	case KindRejected:
		if e.Message != "" {
			return e.Message
		}
		return fallback
	case KindNetwork:
		return "No response from the server. Please try again later."
	}
	return fallback
}

// Result — то, что видит пользователь после любого действия.
type Result struct {
	OK      bool
	Message string
}

func Success(message string) Result {
	return Result{OK: true, Message: message}
}

func Failure(err error, fallback string) Result {
	return Result{OK: false, Message: UserMessage(err, fallback)}
}
