package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ErrorResponse cuerpo de error HTTP. Error sólo se llena fuera de producción.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse respuesta con sólo un mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// OptionalNumber número opcional enviado por formularios: acepta number, string numérico,
// "" o null. Raw guarda el texto recibido (sin comillas) para parsearlo como float o entero.
type OptionalNumber struct {
	Raw string
}

// NewOptionalNumber construye un OptionalNumber a partir de un float (tests, importadores).
func NewOptionalNumber(f float64) OptionalNumber {
	return OptionalNumber{Raw: strconv.FormatFloat(f, 'f', -1, 64)}
}

// UnmarshalJSON implementa json.Unmarshaler.
func (n *OptionalNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		n.Raw = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n.Raw = strings.TrimSpace(s)
		return nil
	}
	n.Raw = string(b)
	return nil
}

// MarshalJSON escribe el número tal cual, o null si no se envió.
func (n OptionalNumber) MarshalJSON() ([]byte, error) {
	if n.Raw == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseFloat(n.Raw, 64); err != nil {
		return json.Marshal(n.Raw)
	}
	return []byte(n.Raw), nil
}

// Present indica si se envió un valor no vacío.
func (n OptionalNumber) Present() bool {
	return n.Raw != ""
}

// Float devuelve el valor y si es un número finito.
func (n OptionalNumber) Float() (float64, bool) {
	if n.Raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(n.Raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int devuelve el valor como entero (acepta "9171234567" y "9171234567.0").
func (n OptionalNumber) Int() (int64, bool) {
	if n.Raw == "" {
		return 0, false
	}
	if i, err := strconv.ParseInt(n.Raw, 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(n.Raw, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}
