package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/pkg/normalize"
)

func TestFold_QuitaTildesYMayusculas(t *testing.T) {
	assert.Equal(t, "tuberia pvc", normalize.Fold("Tubería PVC"))
	assert.Equal(t, "almacen central", normalize.Fold("  Almacén Central "))
}

func TestFold_TextoYaNormalizado(t *testing.T) {
	assert.Equal(t, "cable 2.5mm", normalize.Fold("cable 2.5mm"))
}
