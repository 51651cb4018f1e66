package ghs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivePPECode_RuleOrderPrecedence(t *testing.T) {
	// Mentions both a full supplied-air requirement and a stray "safety
	// glasses"; the most protective rule must win, not the weakest.
	text := "Use supplied air with full face piece, impervious gloves and apron. " +
		"Safety glasses are acceptable for incidental contact."
	assert.Equal(t, "K", DerivePPECode(text))
}

func TestDerivePPECode_Idempotent(t *testing.T) {
	text := "Wear safety glasses and nitrile gloves."
	first := DerivePPECode(text)
	second := DerivePPECode(text)
	assert.Equal(t, first, second)
	assert.Equal(t, "B", first)
}

func TestDerivePPECode_Ladder(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"glasses only", "safety glasses required", "A"},
		{"glasses and gloves", "safety glasses and gloves", "B"},
		{"glasses gloves apron", "safety glasses, gloves and a rubber apron", "C"},
		{"face shield combo", "face shield, gloves and apron for splash work", "D"},
		{"dust respirator", "safety glasses, gloves and a dust mask", "E"},
		{"dust plus apron", "safety glasses, gloves, apron and dust mask", "F"},
		{"vapor respirator", "safety glasses, gloves, organic vapor cartridge respirator", "G"},
		{"goggles vapor apron", "splash goggles, gloves, apron and vapor respirator", "H"},
		{"dust and vapor", "safety glasses, gloves, dust mask and vapor respirator", "I"},
		{"goggles dust vapor apron", "splash goggles, gloves, apron, dust mask and vapor respirator", "J"},
		{"supplied air", "full face supplied air respirator, gloves and protective suit", "K"},
		{"nothing recognized", "see industrial hygiene plan", "X"},
		{"empty", "", "X"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DerivePPECode(tc.text))
		})
	}
}
