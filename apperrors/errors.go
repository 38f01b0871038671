package apperrors

import "fmt"

// Kind menentukan pemetaan error ke status code HTTP di layer transport.
type Kind int

const (
	KindInvalidData Kind = iota + 1
	KindNotFound
	KindAlreadyExists
	KindConflict
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Sentinel errors per entity, dipakai dengan errors.Is di controller dan test.
var (
	ErrOrderNotFound       = &Error{Kind: KindNotFound, Message: "order not found"}
	ErrTableNotFound       = &Error{Kind: KindNotFound, Message: "table not found"}
	ErrUserNotFound        = &Error{Kind: KindNotFound, Message: "user not found"}
	ErrMenuNotFound        = &Error{Kind: KindNotFound, Message: "menu item not found"}
	ErrReservationNotFound = &Error{Kind: KindNotFound, Message: "reservation not found"}
	ErrStatusNotFound      = &Error{Kind: KindNotFound, Message: "status not found"}

	ErrTableLabelExists    = &Error{Kind: KindAlreadyExists, Message: "table label already exists"}
	ErrTimeSlotUnavailable = &Error{Kind: KindConflict, Message: "time slot unavailable for this table"}
)

// InvalidData membuat error validasi input dengan pesan spesifik.
func InvalidData(format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindInvalidData,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf mengambil Kind dari error; 0 jika bukan *Error.
func KindOf(err error) Kind {
	if appErr, ok := err.(*Error); ok {
		return appErr.Kind
	}
	return 0
}
