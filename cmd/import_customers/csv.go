package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/rider-tracker/internal/application/dto"
)

// columnas aceptadas; name y address son obligatorias.
var knownColumns = map[string]bool{
	"name": true, "address": true, "phone": true, "lat": true, "lng": true, "remarks": true,
}

// row fila del CSV ya convertida al DTO de alta, con su número de línea para el reporte.
type row struct {
	line int
	req  dto.CustomerRequest
}

// decoderFor devuelve el decodificador del encoding del archivo (planillas exportadas
// desde Excel suelen venir en Windows-1252).
func decoderFor(name string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM.NewDecoder(), nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	}
	return nil, fmt.Errorf("encoding no soportado: %q", name)
}

// readRows lee el CSV con cabecera. El orden de las columnas es libre.
func readRows(r io.Reader, enc string, comma rune) ([]row, error) {
	dec, err := decoderFor(enc)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("archivo vacío")
		}
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		if knownColumns[h] {
			idx[h] = i
		}
	}
	for _, required := range []string{"name", "address"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("falta la columna %q", required)
		}
	}

	var out []row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		get := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		if isBlank(rec) {
			continue
		}
		out = append(out, row{line: line, req: dto.CustomerRequest{
			Name:    get("name"),
			Address: get("address"),
			Phone:   dto.OptionalNumber{Raw: get("phone")},
			Lat:     dto.OptionalNumber{Raw: get("lat")},
			Lng:     dto.OptionalNumber{Raw: get("lng")},
			Remarks: get("remarks"),
		}})
	}
	return out, nil
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
