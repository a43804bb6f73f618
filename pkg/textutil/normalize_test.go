package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/pkg/textutil"
)

func TestFold_QuitaAcentosYMayusculas(t *testing.T) {
	assert.Equal(t, "lampara", textutil.Fold("Lámpara"))
	assert.Equal(t, "nino", textutil.Fold("NIÑO"))
	assert.Equal(t, "cafe con azucar", textutil.Fold("Café con Azúcar"))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, textutil.ContainsFold("Lámpara de techo", "lampara"))
	assert.True(t, textutil.ContainsFold("Tornillos", "TORNI"))
	assert.False(t, textutil.ContainsFold("Tornillos", "tuerca"))
}
