package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullName(t *testing.T) {
	assert.Equal(t, "Sergey Paramoshkin", Person{FirstName: "Sergey", LastName: "Paramoshkin"}.FullName())
	assert.Equal(t, "Sergey", Person{FirstName: "Sergey"}.FullName())
	assert.Equal(t, "Paramoshkin", Person{LastName: "Paramoshkin"}.FullName())
	assert.Equal(t, "", Person{}.FullName())
}
