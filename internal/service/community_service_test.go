package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAnonymousUsername(t *testing.T) {
	pattern := regexp.MustCompile(`^(Agile|Bright|Creative|Daring|Eager|Flying|Gentle|Happy|Jolly|Kind)(Panda|Tiger|Lion|Bear|Wolf|Eagle|Shark|Dragon|Unicorn|Phoenix)\d{1,2}$`)

	for i := 0; i < 100; i++ {
		username := generateAnonymousUsername()
		assert.Regexp(t, pattern, username)
	}
}
