package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil is falsy", Nil{}, false},
		{"false is falsy", Bool(false), false},
		{"true is truthy", Bool(true), true},
		{"zero number is truthy", Number(0), true},
		{"empty string is truthy", String(""), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truthy(tt.v))
		})
	}
}

func TestEqual(t *testing.T) {
	nan := Number(nanValue())
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"nil equals nil", Nil{}, Nil{}, true},
		{"same numbers", Number(1), Number(1), true},
		{"different numbers", Number(1), Number(2), false},
		{"nan never equal", nan, nan, false},
		{"mixed type never equal", Number(1), String("1"), false},
		{"strings equal", String("a"), String("a"), true},
		{"bools equal", Bool(true), Bool(true), true},
		{"nil vs bool false never equal", Nil{}, Bool(false), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestNumberString(t *testing.T) {
	tests := []struct {
		name string
		n    Number
		want string
	}{
		{"integer valued", Number(42), "42"},
		{"fractional", Number(1.01), "1.01"},
		{"zero", Number(0), "0"},
		{"negative integer valued", Number(-3), "-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.n.String())
		})
	}
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}
