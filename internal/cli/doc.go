// Package cli реализует инструмент командной строки Predictor.
//
// # Обзор
//
// CLI — клиентская утилита для prediction API. Работает через HTTP,
// не импортирует internal/api: формы ответов фиксированы протоколом
// и дублируются здесь как локальные типы.
//
// # Ключевые компоненты
//
// ## Client
//
// HTTP-клиент prediction API. Одна операция — ровно один запрос.
// Декодирование строгое, «всё или ничего»: отсутствие обязательного
// поля в ответе — это ErrDecode, а не запись с нулевым значением.
// Ошибки образуют закрытую таксономию (errors.go): ErrTransport,
// ErrDecode, ErrInvalidInput — вызывающий код ветвится через
// errors.Is, а не по тексту сообщения.
//
//	client := cli.NewClient("http://localhost:8080")
//	health, err := client.CheckHealth()
//
// ## Output
//
// Форматирование вывода. Чистые функции Format* дают фиксированные
// текстовые блоки; Output печатает их в stdout, а с флагом --json —
// декодированную запись как JSON. Сообщения об ошибках идут в stderr.
//
// ## Commands
//
// Cobra-команды: health, list, predict, metrics. Каждая создаётся
// через фабричную функцию (NewHealthCmd и т.д.), принимающую
// clientFn и outputFn — замыкания для ленивого создания Client и
// Output после парсинга PersistentFlags.
package cli
