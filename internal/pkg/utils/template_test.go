package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMessageFillsPlaceholders(t *testing.T) {
	out, err := RenderMessage(
		"Olá {{.Name}}, parcela de {{.Amount}} vencida em {{.DueDate}}.",
		map[string]string{"Name": "Maria", "Amount": "350.50", "DueDate": "01/06/2024"},
	)
	require.NoError(t, err)
	assert.Equal(t, "Olá Maria, parcela de 350.50 vencida em 01/06/2024.", out)
}

func TestRenderMessageMissingKeyRendersEmpty(t *testing.T) {
	out, err := RenderMessage("Olá {{.Name}}, valor {{.Amount}}.", map[string]string{"Name": "Maria"})
	require.NoError(t, err)
	assert.Equal(t, "Olá Maria, valor .", out)
}

func TestRenderMessageBrokenTemplateFails(t *testing.T) {
	_, err := RenderMessage("Olá {{.Name", nil)
	require.Error(t, err)
}
