package errors

import "fmt"

var (
	// Общие
	ErrNotFound = fmt.Errorf("запись не найдена")

	// Загрузка данных
	ErrInvalidSeed = fmt.Errorf("некорректный файл с данными")

	// Кеш
	ErrCacheMiss = fmt.Errorf("значение отсутствует в кеше")
)

// HttpError связывает ошибку с HTTP-кодом и сообщением для клиента.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}
