package cli

import "errors"

// Ошибки клиента. Таксономия закрытая: каждая ошибка операции
// оборачивает ровно одну из этих через %w.
var (
	// ErrTransport — запрос не удалось выполнить: соединение,
	// DNS, таймаут. Транспортные проблемы дальше не различаются.
	ErrTransport = errors.New("request failed")

	// ErrDecode — тело ответа не соответствует ожидаемой форме:
	// некорректный JSON, неверный тип или отсутствующее поле.
	ErrDecode = errors.New("unexpected response format")

	// ErrInvalidInput — не передано ни одного корректного значения
	// признака, сетевой запрос не выполнялся.
	ErrInvalidInput = errors.New("invalid features format")
)
