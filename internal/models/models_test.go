package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFetchResult(t *testing.T) {
	fr := NewFetchResult("https://example.com", 200, "<HTML>Stripe.JS</HTML>", nil, nil)

	assert.Equal(t, "<html>stripe.js</html>", fr.LowerBody)
	assert.Equal(t, "<HTML>Stripe.JS</HTML>", fr.Body)
	assert.NotNil(t, fr.Headers)
}

func TestIsLightlyProtected_TruthTable(t *testing.T) {
	for _, challenge := range []bool{false, true} {
		for _, edge := range []bool{false, true} {
			for _, query := range []bool{false, true} {
				expected := !(challenge || edge || query)
				assert.Equal(t, expected, IsLightlyProtected(challenge, edge, query),
					"challenge=%v edge=%v query=%v", challenge, edge, query)
			}
		}
	}
}

func TestClassificationResult_HasGateway(t *testing.T) {
	r := ClassificationResult{Gateways: []string{"Paypal", "Stripe"}}

	assert.True(t, r.HasGateway("Stripe"))
	assert.False(t, r.HasGateway("stripe"))
	assert.False(t, r.HasGateway("Adyen"))
}
