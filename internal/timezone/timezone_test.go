package timezone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdssystems/UniStyle-sub001/internal/timezone"
)

func TestIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, timezone.IsValid("America/Sao_Paulo"))
	assert.True(t, timezone.IsValid("UTC"))
	assert.False(t, timezone.IsValid(""))
	assert.False(t, timezone.IsValid("Marte/Olympus"))
}

func TestLocation_FallsBackToDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "America/Recife", timezone.Location("America/Recife").String())
	assert.Equal(t, timezone.DefaultTimezone, timezone.Location("").String())
	assert.Equal(t, timezone.DefaultTimezone, timezone.Location("inválido").String())
}
