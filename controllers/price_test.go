package controllers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceUnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: `5.5`, want: 5.5},
		{in: `0`, want: 0},
		{in: `"5.5"`, want: 5.5},
		{in: `" 7 "`, want: 7},
		{in: `"cheap"`, wantErr: true},
		{in: `""`, wantErr: true},
		{in: `"NaN"`, wantErr: true},
		{in: `"Inf"`, wantErr: true},
		{in: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var p Price
			err := json.Unmarshal([]byte(tt.in), &p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, float64(p))
		})
	}
}

func TestPriceFloat64Ptr(t *testing.T) {
	var nilPrice *Price
	assert.Nil(t, nilPrice.float64Ptr())

	p := Price(2.25)
	assert.Equal(t, 2.25, *p.float64Ptr())
}
