package middleware

import (
	"errors"

	"github.com/MrSnakeDoc/tailwhip/internal/errs"
	"github.com/MrSnakeDoc/tailwhip/internal/logger"
)

var ErrLogged = errors.New("already logged")

func FlagComboError(code errs.Code, a ...any) error {
	return Logged(code, a...)
}

// Logged logs the catalogue message for code and returns ErrLogged so the
// caller exits non-zero without printing it twice.
func Logged(code errs.Code, a ...any) error {
	msg := errs.Msg(code, a...)
	logger.LogError("%s", msg)
	return ErrLogged
}
