package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidMobile = errors.New("invalid mobile number")
)

// Dígitos com prefixo internacional opcional. Sem formatação local —
// o gateway de SMS é quem resolve o roteamento.
var mobilePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// Mobile é um value object para números de celular
type Mobile struct {
	value string
}

// NewMobile cria um novo Mobile validado
func NewMobile(mobile string) (Mobile, error) {
	mobile = strings.TrimSpace(mobile)
	mobile = strings.ReplaceAll(mobile, " ", "")
	mobile = strings.ReplaceAll(mobile, "-", "")

	if !mobilePattern.MatchString(mobile) {
		return Mobile{}, ErrInvalidMobile
	}

	return Mobile{value: mobile}, nil
}

// String retorna o valor do número
func (m Mobile) String() string {
	return m.value
}
