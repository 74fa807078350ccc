package inventory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-ledger/internal/domain"
	"github.com/jhoicas/inventory-ledger/internal/domain/inventory"
)

func TestNormalizeLocation(t *testing.T) {
	assert.Nil(t, inventory.NormalizeLocation(""))
	assert.Nil(t, inventory.NormalizeLocation("   "))

	got := inventory.NormalizeLocation(" L001 ")
	require.NotNil(t, got)
	assert.Equal(t, "L001", *got)
}

func TestValidateMovement_Valido(t *testing.T) {
	verr := inventory.ValidateMovement(mov("M1", "P001", nil, loc("L001"), 1))
	assert.True(t, verr.Empty())
	assert.NoError(t, verr.OrNil())
}

func TestValidateMovement_SinExtremos(t *testing.T) {
	verr := inventory.ValidateMovement(mov("M1", "P001", nil, nil, 10))
	assert.True(t, verr.Has(domain.ReasonMissingBothEndpoints))
	assert.True(t, errors.Is(verr.OrNil(), domain.ErrInvalidInput))
}

func TestValidateMovement_MismoOrigenYDestino(t *testing.T) {
	verr := inventory.ValidateMovement(mov("M1", "P001", loc("L001"), loc("L001"), 10))
	assert.True(t, verr.Has(domain.ReasonSameSourceAndDestination))
	assert.False(t, verr.Has(domain.ReasonMissingBothEndpoints))
}

func TestValidateMovement_CantidadNoPositiva(t *testing.T) {
	for _, qty := range []int{0, -1, -50} {
		verr := inventory.ValidateMovement(mov("M1", "P001", nil, loc("L001"), qty))
		assert.True(t, verr.Has(domain.ReasonInvalidQuantity), "qty=%d debe rechazarse", qty)
	}
}

// Se reportan todos los campos inválidos a la vez para que el formulario los muestre juntos.
func TestValidateMovement_AcumulaErrores(t *testing.T) {
	verr := inventory.ValidateMovement(mov("", "", nil, nil, 0))

	fields := make(map[string]string)
	for _, f := range verr.Fields {
		fields[f.Field] = f.Reason
	}
	assert.Equal(t, domain.ReasonRequired, fields["movement_id"])
	assert.Equal(t, domain.ReasonRequired, fields["product_id"])
	assert.Equal(t, domain.ReasonMissingBothEndpoints, fields["from_location"])
	assert.Equal(t, domain.ReasonInvalidQuantity, fields["qty"])
}
