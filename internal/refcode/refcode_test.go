package refcode

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var codePattern = regexp.MustCompile(`^(ORD|QUO|INQ)-[0-9A-Z]+$`)

func TestGenerate_Format(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		prefix string
	}{
		{"order", NewOrderNumber(), "ORD-"},
		{"quote", NewQuoteReference(), "QUO-"},
		{"inquiry", NewInquiryReference(), "INQ-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Regexp(t, codePattern, tt.code)
			assert.Contains(t, tt.code, tt.prefix)
		})
	}
}

func TestGenerate_DiffersAcrossMilliseconds(t *testing.T) {
	first := NewOrderNumber()
	time.Sleep(2 * time.Millisecond)
	second := NewOrderNumber()

	assert.NotEqual(t, first, second)
}

func TestGenerate_CustomPrefix(t *testing.T) {
	code := Generate("ORD")
	assert.Regexp(t, codePattern, code)
}
