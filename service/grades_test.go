package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterGrade(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{5, "A"},
		{4, "B"},
		{3, "C"},
		{2, "D"},
		{1, "E"},
		{0, "F"},
		{6, NotApplicable},
		{-1, NotApplicable},
		{2.5, NotApplicable},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LetterGrade(tt.value), "LetterGrade(%v)", tt.value)
	}
}

func TestClosestGrade_Boundaries(t *testing.T) {
	tests := []struct {
		average float64
		want    string
	}{
		{4.5, "A"},
		{4.49, "B"},
		{3.5, "B"},
		{3.49, "C"},
		{2.5, "C"},
		{1.5, "D"},
		{0.5, "E"},
		{0.49, "F"},
		{-1, "F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClosestGrade(tt.average).Letter, "ClosestGrade(%v)", tt.average)
	}
}

func TestGradeBand_String(t *testing.T) {
	assert.Equal(t, "B (4.0)", ClosestGrade(4.1667).String())
	assert.Equal(t, "F (0.0)", ClosestGrade(0.2).String())
}
