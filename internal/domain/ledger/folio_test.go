package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sanmartincomanda/inventario/internal/domain/entity"
	"github.com/sanmartincomanda/inventario/internal/domain/ledger"
)

func TestFolio_Formato(t *testing.T) {
	casos := []struct {
		prefix   string
		seq, pad int
		want     string
	}{
		{ledger.PrefixEntrada, 1, 4, "E-0001"},
		{ledger.PrefixEntrada, 2, 4, "E-0002"},
		{ledger.PrefixSalida, 1, 4, "S-0001"},
		{ledger.PrefixSalida, 123, 4, "S-0123"},
		{ledger.PrefixSalida, 99999, 4, "S-99999"}, // el consecutivo nunca se trunca
		{ledger.PrefixEntrada, 7, 6, "E-000007"},
		{ledger.PrefixEntrada, 7, 0, "E-0007"}, // pad <= 0 usa DefaultPad
	}
	for _, c := range casos {
		assert.Equal(t, c.want, ledger.Folio(c.prefix, c.seq, c.pad))
	}
}

func TestPrefixFor(t *testing.T) {
	assert.Equal(t, "E", ledger.PrefixFor(entity.MovementTypeEntrada))
	assert.Equal(t, "S", ledger.PrefixFor(entity.MovementTypeSalida))
}
