package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_TypicalEmail(t *testing.T) {
	raw := `Hi team,

Rotterdam DC here. We need 12k cases of COLA_330ML_CASE24 delivered
by 2026-03-04 at the latest.

Thanks`

	fields := NewRegexExtractor().Extract(raw)

	assert.Equal(t, "COLA_330ML_CASE24", fields.SKU)
	assert.Equal(t, 12000, fields.Quantity)
	assert.Equal(t, "2026-03-04", fields.DueDate)
	assert.Equal(t, "Rotterdam DC", fields.Requester)
}

func TestExtract_PlainQuantity(t *testing.T) {
	fields := NewRegexExtractor().Extract("please send 4500 cases of WATER_500ML_CASE12")

	assert.Equal(t, 4500, fields.Quantity)
	assert.Equal(t, "WATER_500ML_CASE12", fields.SKU)
}

func TestExtract_ShorthandBeatsPlain(t *testing.T) {
	fields := NewRegexExtractor().Extract("need 5k, not the 2000 from last week")

	assert.Equal(t, 5000, fields.Quantity)
}

func TestExtract_DateDigitsNotMistakenForQuantity(t *testing.T) {
	fields := NewRegexExtractor().Extract("can you deliver by 2026-03-04?")

	assert.Equal(t, "2026-03-04", fields.DueDate)
	assert.Equal(t, 0, fields.Quantity)
}

func TestExtract_MissingFieldsStayEmpty(t *testing.T) {
	fields := NewRegexExtractor().Extract("hello, do you still carry cola?")

	assert.Empty(t, fields.SKU)
	assert.Zero(t, fields.Quantity)
	assert.Empty(t, fields.DueDate)
	assert.Empty(t, fields.Requester)
}
