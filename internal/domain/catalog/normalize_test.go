package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Ventas-api/internal/domain/catalog"
)

func TestNormalizeNeedle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Café", "cafe"},
		{"  LECHE ENTERA  ", "leche entera"},
		{"Panadería", "panaderia"},
		{"ñoño", "nono"}, // NFD descompone la ñ en n + tilde combinante
		{"123", "123"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, catalog.NormalizeNeedle(c.in), "entrada %q", c.in)
	}
}
